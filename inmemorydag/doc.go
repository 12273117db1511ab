// Package inmemorydag provides a thread-safe, in-memory implementation of
// the dagstore.Store interface.
//
// The store wraps a dag.Graph in a single sync.RWMutex: mutations take the
// write lock, queries take the read lock. This is the single-writer/
// multi-reader discipline the core graph expects its callers to provide,
// packaged once instead of re-implemented at every call site.
//
// Mutations are logged at debug level through the logger carried in the
// context (internal/ctxlog); queries are not logged. Errors from the
// underlying graph pass through unwrapped, so errors.Is against the dag
// sentinels behaves the same as on a bare dag.Graph.
package inmemorydag
