package dag

// reachable reports whether dst can be reached from src by following zero or
// more outgoing edges. A node is always reachable from itself.
//
// The search is an iterative depth-first walk over the forward adjacency
// maps; recursion would otherwise stack as deep as the longest path in the
// graph. Worst case O(V+E).
func (g *Graph[K, N, E]) reachable(src, dst K) bool {
	if src == dst {
		return true
	}
	if g.reach != nil {
		if hit, ok := g.reach.Get(pair[K]{src, dst}); ok {
			return hit
		}
	}

	visited := map[K]struct{}{src: {}}
	stack := []K{src}
	found := false
	for len(stack) > 0 && !found {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for child := range g.out[top] {
			if child == dst {
				found = true
				break
			}
			if _, seen := visited[child]; seen {
				continue
			}
			visited[child] = struct{}{}
			stack = append(stack, child)
		}
	}

	if g.reach != nil {
		g.reach.Add(pair[K]{src, dst}, found)
	}
	return found
}

// invalidate drops all memoized reachability answers. Called after every
// mutation that changes the edge set; payload updates and rejected
// operations leave the cache alone because they cannot change reachability.
func (g *Graph[K, N, E]) invalidate() {
	if g.reach != nil {
		g.reach.Purge()
	}
}
