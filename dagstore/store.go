package dagstore

import (
	"cmp"
	"context"

	"github.com/specialistvlad/daggo/dag"
)

// NodeRef pairs an identifier with a payload in snapshot results. For node
// enumerations (AllNodes, Roots, Leaves) the payload is the node's; for
// adjacency enumerations (Children, Parents) it is the connecting edge's.
type NodeRef[K cmp.Ordered, V any] struct {
	ID      K
	Payload V
}

// Store is the interface for a shared directed-acyclic-graph container.
//
// A Store upholds the same structural invariants as dag.Graph — unique node
// identifiers, no duplicate edges, no self-loops, acyclicity, no dangling
// edge endpoints — and reports violations with the dag package's sentinel
// errors, so errors.Is works identically against either layer.
//
// # Thread-Safety Requirements
//
// Implementations MUST be safe for concurrent use. Mutating methods
// (InsertNode, RemoveNode, InsertEdge, RemoveEdge) must be serialized
// against each other and against queries; query methods may run
// concurrently with each other. Every snapshot returned by an enumeration
// method is owned by the caller and reflects one consistent graph state.
type Store[K cmp.Ordered, N, E any] interface {
	// InsertNode adds a node with no incident edges.
	// Fails with dag.ErrDuplicateNode if the identifier is taken.
	InsertNode(ctx context.Context, id K, payload N) error

	// RemoveNode removes a node and, atomically, every edge incident to it,
	// returning the node's payload.
	// Fails with dag.ErrNodeNotFound if the node is absent.
	RemoveNode(ctx context.Context, id K) (N, error)

	// InsertEdge adds a directed edge between two present nodes. The
	// precondition order is dag.Graph's: self-loop, endpoint presence,
	// duplicate pair, cycle.
	InsertEdge(ctx context.Context, from, to K, payload E) error

	// RemoveEdge removes the edge over the ordered (from, to) pair and
	// returns its payload. Node presence is unaffected.
	// Fails with dag.ErrEdgeNotFound if the edge is absent.
	RemoveEdge(ctx context.Context, from, to K) (E, error)

	// Node returns a node's payload and whether the node exists.
	Node(ctx context.Context, id K) (N, bool)

	// Edge returns an edge's payload and whether the edge exists.
	Edge(ctx context.Context, from, to K) (E, bool)

	// ContainsNode reports whether a node with the given identifier exists.
	ContainsNode(ctx context.Context, id K) bool

	// ContainsEdge reports whether an edge exists over the ordered
	// (from, to) pair.
	ContainsEdge(ctx context.Context, from, to K) bool

	// Roots returns a snapshot of every node with no incoming edges, in
	// ascending key order.
	Roots(ctx context.Context) []NodeRef[K, N]

	// Leaves returns a snapshot of every node with no outgoing edges, in
	// ascending key order. An isolated node appears in both Roots and
	// Leaves.
	Leaves(ctx context.Context) []NodeRef[K, N]

	// Children returns a snapshot of a node's direct successors, each
	// paired with the connecting edge's payload, in ascending key order.
	// Fails with dag.ErrNodeNotFound if the node is absent.
	Children(ctx context.Context, id K) ([]NodeRef[K, E], error)

	// Parents returns a snapshot of a node's direct predecessors, each
	// paired with the connecting edge's payload, in ascending key order.
	// Fails with dag.ErrNodeNotFound if the node is absent.
	Parents(ctx context.Context, id K) ([]NodeRef[K, E], error)

	// AllNodes returns a snapshot of every node, in ascending key order.
	AllNodes(ctx context.Context) []NodeRef[K, N]

	// AllEdges returns a snapshot of every edge, in ascending (From, To)
	// order.
	AllEdges(ctx context.Context) []dag.Edge[K, E]

	// Len returns the number of nodes currently in the graph.
	Len(ctx context.Context) int
}
