package inmemorydag

import (
	"cmp"
	"context"
	"iter"
	"sync"

	"github.com/specialistvlad/daggo/dag"
	"github.com/specialistvlad/daggo/dagstore"
	"github.com/specialistvlad/daggo/internal/ctxlog"
)

// Store implements dagstore.Store by guarding a dag.Graph with a RWMutex.
type Store[K cmp.Ordered, N, E any] struct {
	mu    sync.RWMutex
	graph *dag.Graph[K, N, E]
}

// New creates a new, empty in-memory store. Options are forwarded to
// dag.New, so WithCycleCache works here too.
func New[K cmp.Ordered, N, E any](opts ...dag.Option) dagstore.Store[K, N, E] {
	return &Store[K, N, E]{
		graph: dag.New[K, N, E](opts...),
	}
}

// InsertNode adds a node with no incident edges.
func (s *Store[K, N, E]) InsertNode(ctx context.Context, id K, payload N) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.graph.InsertNode(id, payload); err != nil {
		return err
	}
	ctxlog.FromContext(ctx).Debug("node inserted", "id", id)
	return nil
}

// RemoveNode removes a node and every edge incident to it.
func (s *Store[K, N, E]) RemoveNode(ctx context.Context, id K) (N, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	payload, err := s.graph.RemoveNode(id)
	if err != nil {
		return payload, err
	}
	ctxlog.FromContext(ctx).Debug("node removed", "id", id)
	return payload, nil
}

// InsertEdge adds a directed edge between two present nodes.
func (s *Store[K, N, E]) InsertEdge(ctx context.Context, from, to K, payload E) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.graph.InsertEdge(from, to, payload); err != nil {
		return err
	}
	ctxlog.FromContext(ctx).Debug("edge inserted", "from", from, "to", to)
	return nil
}

// RemoveEdge removes the edge over the ordered (from, to) pair.
func (s *Store[K, N, E]) RemoveEdge(ctx context.Context, from, to K) (E, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	payload, err := s.graph.RemoveEdge(from, to)
	if err != nil {
		return payload, err
	}
	ctxlog.FromContext(ctx).Debug("edge removed", "from", from, "to", to)
	return payload, nil
}

// Node returns a node's payload and whether the node exists.
func (s *Store[K, N, E]) Node(ctx context.Context, id K) (N, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.graph.Node(id)
}

// Edge returns an edge's payload and whether the edge exists.
func (s *Store[K, N, E]) Edge(ctx context.Context, from, to K) (E, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.graph.Edge(from, to)
}

// ContainsNode reports whether a node with the given identifier exists.
func (s *Store[K, N, E]) ContainsNode(ctx context.Context, id K) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.graph.ContainsNode(id)
}

// ContainsEdge reports whether an edge exists over the ordered (from, to) pair.
func (s *Store[K, N, E]) ContainsEdge(ctx context.Context, from, to K) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.graph.ContainsEdge(from, to)
}

// Roots returns a snapshot of every node with no incoming edges.
func (s *Store[K, N, E]) Roots(ctx context.Context) []dagstore.NodeRef[K, N] {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return collect(s.graph.Roots())
}

// Leaves returns a snapshot of every node with no outgoing edges.
func (s *Store[K, N, E]) Leaves(ctx context.Context) []dagstore.NodeRef[K, N] {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return collect(s.graph.Leaves())
}

// Children returns a snapshot of a node's direct successors with the
// connecting edge payloads.
func (s *Store[K, N, E]) Children(ctx context.Context, id K) ([]dagstore.NodeRef[K, E], error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	seq, err := s.graph.Children(id)
	if err != nil {
		return nil, err
	}
	return collect(seq), nil
}

// Parents returns a snapshot of a node's direct predecessors with the
// connecting edge payloads.
func (s *Store[K, N, E]) Parents(ctx context.Context, id K) ([]dagstore.NodeRef[K, E], error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	seq, err := s.graph.Parents(id)
	if err != nil {
		return nil, err
	}
	return collect(seq), nil
}

// AllNodes returns a snapshot of every node.
func (s *Store[K, N, E]) AllNodes(ctx context.Context) []dagstore.NodeRef[K, N] {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return collect(s.graph.Nodes())
}

// AllEdges returns a snapshot of every edge.
func (s *Store[K, N, E]) AllEdges(ctx context.Context) []dag.Edge[K, E] {
	s.mu.RLock()
	defer s.mu.RUnlock()

	edges := make([]dag.Edge[K, E], 0, s.graph.EdgeLen())
	for edge := range s.graph.Edges() {
		edges = append(edges, edge)
	}
	return edges
}

// Len returns the number of nodes currently in the graph.
func (s *Store[K, N, E]) Len(ctx context.Context) int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.graph.Len()
}

// collect drains a key/payload sequence into a snapshot slice. The caller
// must hold the store's lock for the duration.
func collect[K cmp.Ordered, V any](seq iter.Seq2[K, V]) []dagstore.NodeRef[K, V] {
	refs := []dagstore.NodeRef[K, V]{}
	for id, payload := range seq {
		refs = append(refs, dagstore.NodeRef[K, V]{ID: id, Payload: payload})
	}
	return refs
}
