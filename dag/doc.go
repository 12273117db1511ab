// Package dag provides an in-memory container for directed acyclic graphs.
//
// A Graph stores nodes and directed edges, each carrying an arbitrary
// payload, and rejects any mutation that would break one of its structural
// invariants: unique node identifiers, no duplicate edges, no self-loops,
// no directed cycles, and no edges to absent nodes. Acyclicity is enforced
// incrementally with a bounded reachability search on every edge insertion,
// so the graph is valid after every successful call.
//
// The package deliberately contains no graph algorithms. Topological sort,
// path-finding, and any traversal beyond direct adjacency are the caller's
// business, built on top of Children, Parents, Roots, and Leaves.
//
// A Graph is a plain value with no internal locking. Callers that share one
// graph across goroutines must serialize mutations themselves, or use the
// inmemorydag package, which wraps a Graph in a single-writer/multi-reader
// lock behind the dagstore.Store interface.
package dag
