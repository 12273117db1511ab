package dag

import "errors"

// Sentinel errors for graph operations. Every error returned by this package
// wraps exactly one of these, so callers can dispatch with errors.Is.
var (
	// ErrDuplicateNode is returned when inserting a node whose identifier
	// is already present in the graph.
	ErrDuplicateNode = errors.New("dag: node already exists")

	// ErrNodeNotFound is returned when an operation references a node that
	// is not present in the graph.
	ErrNodeNotFound = errors.New("dag: node not found")

	// ErrEdgeNotFound is returned when an operation references an edge that
	// is not present in the graph.
	ErrEdgeNotFound = errors.New("dag: edge not found")

	// ErrSelfLoop is returned when inserting an edge whose source and
	// target are the same node.
	ErrSelfLoop = errors.New("dag: self-referential edge not allowed")

	// ErrDuplicateEdge is returned when inserting an edge over an ordered
	// (source, target) pair that already carries one.
	ErrDuplicateEdge = errors.New("dag: edge already exists")

	// ErrWouldCycle is returned when inserting an edge that would create a
	// directed cycle.
	ErrWouldCycle = errors.New("dag: edge would create a cycle")
)
