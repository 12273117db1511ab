package dag

import (
	"cmp"
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"
)

// Graph is an in-memory directed acyclic graph. Nodes are keyed by K and
// carry one payload of type N each; edges are keyed by their ordered
// (source, target) pair and carry one payload of type E each.
//
// All relationships are stored as lookups by identifier, never as direct
// node-to-node references:
//   - nodes: id -> node payload
//   - out:   id -> successor id -> edge payload
//   - in:    id -> set of predecessor ids
//
// K is constrained to cmp.Ordered so that every enumeration can be produced
// in ascending key order, which keeps iteration deterministic across calls
// on the same graph state.
//
// A Graph is not safe for concurrent use. Queries may run concurrently with
// each other, but never with a mutation; external serialization is the
// caller's responsibility (see the inmemorydag package).
type Graph[K cmp.Ordered, N, E any] struct {
	nodes map[K]N
	out   map[K]map[K]E
	in    map[K]map[K]struct{}

	// reach memoizes reachability answers consulted by the InsertEdge cycle
	// check. Nil unless WithCycleCache was given; purged on every structural
	// mutation so stale answers are never served.
	reach *lru.Cache[pair[K], bool]
}

// pair is an ordered (from, to) key for the reachability cache.
type pair[K cmp.Ordered] struct {
	from, to K
}

// Option configures a Graph at construction time.
type Option func(*settings)

type settings struct {
	cacheSize int
}

// WithCycleCache attaches a bounded LRU cache of the given size that
// memoizes reachability answers computed by the InsertEdge cycle check.
// The cache is purged whenever the edge set changes, so it only pays off
// for workloads that retry rejected insertions or probe the same region of
// the graph repeatedly. Sizes below 1 disable the cache.
func WithCycleCache(size int) Option {
	return func(s *settings) {
		s.cacheSize = size
	}
}

// New creates an empty graph.
func New[K cmp.Ordered, N, E any](opts ...Option) *Graph[K, N, E] {
	var cfg settings
	for _, opt := range opts {
		opt(&cfg)
	}

	g := &Graph[K, N, E]{
		nodes: make(map[K]N),
		out:   make(map[K]map[K]E),
		in:    make(map[K]map[K]struct{}),
	}
	if cfg.cacheSize > 0 {
		// lru.New only fails for a non-positive size, which is guarded above.
		cache, _ := lru.New[pair[K], bool](cfg.cacheSize)
		g.reach = cache
	}
	return g
}

// InsertNode adds a node with the given identifier and payload. The new node
// has no incident edges. It returns ErrDuplicateNode if the identifier is
// already present, leaving the graph unchanged.
func (g *Graph[K, N, E]) InsertNode(id K, payload N) error {
	if _, ok := g.nodes[id]; ok {
		return fmt.Errorf("%w: %v", ErrDuplicateNode, id)
	}

	g.nodes[id] = payload
	g.out[id] = make(map[K]E)
	g.in[id] = make(map[K]struct{})
	return nil
}

// RemoveNode removes the node with the given identifier together with every
// edge where it is source or target, and returns the node's payload. The
// cascade is atomic: either the node and all incident edges are gone, or
// (on ErrNodeNotFound) nothing changed.
func (g *Graph[K, N, E]) RemoveNode(id K) (N, error) {
	payload, ok := g.nodes[id]
	if !ok {
		var zero N
		return zero, fmt.Errorf("%w: %v", ErrNodeNotFound, id)
	}

	for child := range g.out[id] {
		delete(g.in[child], id)
	}
	for parent := range g.in[id] {
		delete(g.out[parent], id)
	}
	delete(g.out, id)
	delete(g.in, id)
	delete(g.nodes, id)
	g.invalidate()
	return payload, nil
}

// InsertEdge adds a directed edge from one node to another with the given
// payload. Preconditions are checked in this order, and the first failing
// one determines the error:
//
//  1. from == to                      -> ErrSelfLoop
//  2. either endpoint absent          -> ErrNodeNotFound
//  3. the ordered pair already exists -> ErrDuplicateEdge
//  4. the edge would close a cycle    -> ErrWouldCycle
//
// The cycle check is a bounded depth-first reachability search from the
// target looking for the source, run before anything is mutated, so a
// rejected insertion leaves the graph untouched. Worst case O(V+E).
func (g *Graph[K, N, E]) InsertEdge(from, to K, payload E) error {
	if from == to {
		return fmt.Errorf("%w: %v", ErrSelfLoop, from)
	}
	if _, ok := g.nodes[from]; !ok {
		return fmt.Errorf("%w: %v", ErrNodeNotFound, from)
	}
	if _, ok := g.nodes[to]; !ok {
		return fmt.Errorf("%w: %v", ErrNodeNotFound, to)
	}
	if _, ok := g.out[from][to]; ok {
		return fmt.Errorf("%w: %v -> %v", ErrDuplicateEdge, from, to)
	}
	if g.reachable(to, from) {
		return fmt.Errorf("%w: %v -> %v", ErrWouldCycle, from, to)
	}

	g.out[from][to] = payload
	g.in[to][from] = struct{}{}
	g.invalidate()
	return nil
}

// RemoveEdge removes the edge over the ordered (from, to) pair and returns
// its payload. It returns ErrEdgeNotFound if no such edge exists, including
// when either endpoint is absent. Node presence is unaffected.
func (g *Graph[K, N, E]) RemoveEdge(from, to K) (E, error) {
	payload, ok := g.out[from][to]
	if !ok {
		var zero E
		return zero, fmt.Errorf("%w: %v -> %v", ErrEdgeNotFound, from, to)
	}

	delete(g.out[from], to)
	delete(g.in[to], from)
	g.invalidate()
	return payload, nil
}

// UpdateNode replaces the payload of an existing node. It returns
// ErrNodeNotFound if the node is absent.
func (g *Graph[K, N, E]) UpdateNode(id K, payload N) error {
	if _, ok := g.nodes[id]; !ok {
		return fmt.Errorf("%w: %v", ErrNodeNotFound, id)
	}
	g.nodes[id] = payload
	return nil
}

// UpdateEdge replaces the payload of an existing edge. It returns
// ErrEdgeNotFound if no edge exists over the ordered (from, to) pair.
func (g *Graph[K, N, E]) UpdateEdge(from, to K, payload E) error {
	if _, ok := g.out[from][to]; !ok {
		return fmt.Errorf("%w: %v -> %v", ErrEdgeNotFound, from, to)
	}
	g.out[from][to] = payload
	return nil
}

// Node returns the payload of the node with the given identifier, and
// whether such a node exists.
func (g *Graph[K, N, E]) Node(id K) (N, bool) {
	payload, ok := g.nodes[id]
	return payload, ok
}

// Edge returns the payload of the edge over the ordered (from, to) pair,
// and whether such an edge exists.
func (g *Graph[K, N, E]) Edge(from, to K) (E, bool) {
	payload, ok := g.out[from][to]
	return payload, ok
}

// ContainsNode reports whether a node with the given identifier exists.
func (g *Graph[K, N, E]) ContainsNode(id K) bool {
	_, ok := g.nodes[id]
	return ok
}

// ContainsEdge reports whether an edge exists over the ordered (from, to) pair.
func (g *Graph[K, N, E]) ContainsEdge(from, to K) bool {
	_, ok := g.out[from][to]
	return ok
}

// Len returns the number of nodes in the graph.
func (g *Graph[K, N, E]) Len() int {
	return len(g.nodes)
}

// EdgeLen returns the number of edges in the graph.
func (g *Graph[K, N, E]) EdgeLen() int {
	total := 0
	for _, children := range g.out {
		total += len(children)
	}
	return total
}
