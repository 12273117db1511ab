package dag

import (
	"cmp"
	"fmt"
	"iter"
	"maps"
	"slices"
)

// Edge is one directed edge together with its payload, as yielded by Edges.
type Edge[K cmp.Ordered, E any] struct {
	From    K
	To      K
	Payload E
}

// Nodes yields every node identifier and payload in ascending key order.
// The sequence is finite and restartable: ranging over it again re-reads
// the graph's current state.
func (g *Graph[K, N, E]) Nodes() iter.Seq2[K, N] {
	return func(yield func(K, N) bool) {
		for _, id := range slices.Sorted(maps.Keys(g.nodes)) {
			if !yield(id, g.nodes[id]) {
				return
			}
		}
	}
}

// Roots yields every node with no incoming edges, in ascending key order.
// A node with no edges at all is both a root and a leaf.
func (g *Graph[K, N, E]) Roots() iter.Seq2[K, N] {
	return func(yield func(K, N) bool) {
		for _, id := range slices.Sorted(maps.Keys(g.nodes)) {
			if len(g.in[id]) != 0 {
				continue
			}
			if !yield(id, g.nodes[id]) {
				return
			}
		}
	}
}

// Leaves yields every node with no outgoing edges, in ascending key order.
func (g *Graph[K, N, E]) Leaves() iter.Seq2[K, N] {
	return func(yield func(K, N) bool) {
		for _, id := range slices.Sorted(maps.Keys(g.nodes)) {
			if len(g.out[id]) != 0 {
				continue
			}
			if !yield(id, g.nodes[id]) {
				return
			}
		}
	}
}

// Children returns a sequence of the node's direct successors, each paired
// with the payload of the connecting edge, in ascending key order. It
// returns ErrNodeNotFound if the node is absent.
func (g *Graph[K, N, E]) Children(id K) (iter.Seq2[K, E], error) {
	if _, ok := g.nodes[id]; !ok {
		return nil, fmt.Errorf("%w: %v", ErrNodeNotFound, id)
	}
	return func(yield func(K, E) bool) {
		children := g.out[id]
		for _, child := range slices.Sorted(maps.Keys(children)) {
			if !yield(child, children[child]) {
				return
			}
		}
	}, nil
}

// Parents returns a sequence of the node's direct predecessors, each paired
// with the payload of the connecting edge, in ascending key order. It
// returns ErrNodeNotFound if the node is absent.
func (g *Graph[K, N, E]) Parents(id K) (iter.Seq2[K, E], error) {
	if _, ok := g.nodes[id]; !ok {
		return nil, fmt.Errorf("%w: %v", ErrNodeNotFound, id)
	}
	return func(yield func(K, E) bool) {
		for _, parent := range slices.Sorted(maps.Keys(g.in[id])) {
			if !yield(parent, g.out[parent][id]) {
				return
			}
		}
	}, nil
}

// Edges yields every edge in ascending (From, To) order.
func (g *Graph[K, N, E]) Edges() iter.Seq[Edge[K, E]] {
	return func(yield func(Edge[K, E]) bool) {
		for _, from := range slices.Sorted(maps.Keys(g.out)) {
			children := g.out[from]
			for _, to := range slices.Sorted(maps.Keys(children)) {
				if !yield(Edge[K, E]{From: from, To: to, Payload: children[to]}) {
					return
				}
			}
		}
	}
}
