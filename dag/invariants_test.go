package dag

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

// buildRandomDAG inserts a random node set and then attempts a random batch
// of edges, keeping whichever ones the graph accepts.
func buildRandomDAG(t *rapid.T) *Graph[int, int, int] {
	g := New[int, int, int]()

	numNodes := rapid.IntRange(2, 12).Draw(t, "num_nodes")
	for id := range numNodes {
		require.NoError(t, g.InsertNode(id, id*10))
	}

	numAttempts := rapid.IntRange(0, 50).Draw(t, "num_attempts")
	for i := range numAttempts {
		from := rapid.IntRange(0, numNodes-1).Draw(t, "from")
		to := rapid.IntRange(0, numNodes-1).Draw(t, "to")
		_ = g.InsertEdge(from, to, i)
	}
	return g
}

// selfReachable reports whether id can reach itself through one or more
// edges, using a walk independent of the implementation under test.
func selfReachable(g *Graph[int, int, int], id int) bool {
	visited := map[int]struct{}{}
	stack := []int{}
	for child := range g.out[id] {
		stack = append(stack, child)
	}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if top == id {
			return true
		}
		if _, seen := visited[top]; seen {
			continue
		}
		visited[top] = struct{}{}
		for child := range g.out[top] {
			stack = append(stack, child)
		}
	}
	return false
}

// snapshot captures the full observable state: every node payload and every
// edge with its payload.
func snapshot(g *Graph[int, int, int]) (map[int]int, []Edge[int, int]) {
	nodes := map[int]int{}
	for id, payload := range g.Nodes() {
		nodes[id] = payload
	}
	edges := []Edge[int, int]{}
	for edge := range g.Edges() {
		edges = append(edges, edge)
	}
	return nodes, edges
}

func TestProperty_AcyclicityHolds(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		g := New[int, int, int]()
		numNodes := rapid.IntRange(2, 10).Draw(t, "num_nodes")
		for id := range numNodes {
			require.NoError(t, g.InsertNode(id, id))
		}

		numAttempts := rapid.IntRange(1, 40).Draw(t, "num_attempts")
		for i := range numAttempts {
			from := rapid.IntRange(0, numNodes-1).Draw(t, "from")
			to := rapid.IntRange(0, numNodes-1).Draw(t, "to")

			err := g.InsertEdge(from, to, i)
			if err != nil {
				isExpected := errors.Is(err, ErrSelfLoop) ||
					errors.Is(err, ErrDuplicateEdge) ||
					errors.Is(err, ErrWouldCycle)
				require.True(t, isExpected, "unexpected rejection: %v", err)
			}

			for id := range g.nodes {
				require.False(t, selfReachable(g, id), "node %d is on a cycle after inserting %d -> %d", id, from, to)
			}
		}
	})
}

func TestProperty_RejectionLeavesStateUnchanged(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		g := buildRandomDAG(t)
		nodesBefore, edgesBefore := snapshot(g)

		existing := rapid.IntRange(0, g.Len()-1).Draw(t, "existing")

		// Every failure mode the API has, fired against the same state.
		failing := []func() error{
			func() error { return g.InsertNode(existing, -1) },
			func() error { _, err := g.RemoveNode(g.Len() + 100); return err },
			func() error { return g.InsertEdge(existing, existing, -1) },
			func() error { return g.InsertEdge(existing, g.Len()+100, -1) },
			func() error { return g.InsertEdge(g.Len()+100, existing, -1) },
			func() error { _, err := g.RemoveEdge(g.Len()+100, existing); return err },
			func() error { return g.UpdateNode(g.Len() + 100, -1) },
			func() error { return g.UpdateEdge(g.Len()+100, existing, -1) },
		}
		for _, edge := range edgesBefore {
			failing = append(failing,
				func() error { return g.InsertEdge(edge.From, edge.To, -1) }, // duplicate
				func() error { return g.InsertEdge(edge.To, edge.From, -1) }, // direct cycle
			)
		}

		for _, op := range failing {
			require.Error(t, op())

			nodesAfter, edgesAfter := snapshot(g)
			require.Equal(t, nodesBefore, nodesAfter)
			require.Equal(t, edgesBefore, edgesAfter)
		}
	})
}

func TestProperty_RootsLeavesMatchDegrees(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		g := buildRandomDAG(t)

		indegree := map[int]int{}
		outdegree := map[int]int{}
		for edge := range g.Edges() {
			outdegree[edge.From]++
			indegree[edge.To]++
		}

		wantRoots := map[int]bool{}
		wantLeaves := map[int]bool{}
		for id := range g.Nodes() {
			if indegree[id] == 0 {
				wantRoots[id] = true
			}
			if outdegree[id] == 0 {
				wantLeaves[id] = true
			}
		}

		gotRoots := map[int]bool{}
		for id := range g.Roots() {
			gotRoots[id] = true
		}
		gotLeaves := map[int]bool{}
		for id := range g.Leaves() {
			gotLeaves[id] = true
		}

		require.Equal(t, wantRoots, gotRoots)
		require.Equal(t, wantLeaves, gotLeaves)
	})
}

func TestProperty_CascadeRemovesExactlyIncidentEdges(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		g := buildRandomDAG(t)
		victim := rapid.IntRange(0, g.Len()-1).Draw(t, "victim")

		_, edgesBefore := snapshot(g)
		survivors := []Edge[int, int]{}
		for _, edge := range edgesBefore {
			if edge.From != victim && edge.To != victim {
				survivors = append(survivors, edge)
			}
		}

		_, err := g.RemoveNode(victim)
		require.NoError(t, err)

		_, edgesAfter := snapshot(g)
		require.Equal(t, survivors, edgesAfter)

		_, err = g.RemoveNode(victim)
		require.ErrorIs(t, err, ErrNodeNotFound)
	})
}
