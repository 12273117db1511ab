// Package dagstore defines the interface for a shared, concurrency-safe DAG
// container.
//
// # Why Dagstore Exists
//
// The core dag.Graph is a plain value with no internal locking: the cheapest
// possible representation when one goroutine owns the graph. Components that
// share one graph across goroutines need a different contract, and that is
// what this package specifies:
//   - Every method takes a context.Context, so a slog.Logger can travel with
//     the call (see internal/ctxlog). No call blocks or suspends; the context
//     is plumbing, not a cancellation point.
//   - Implementations must be safe for concurrent use: mutations serialized,
//     queries free to run in parallel with each other.
//   - Enumerations return snapshot slices rather than lazy sequences, because
//     a lazy sequence cannot hold a read lock across caller-controlled
//     iteration.
//
// # Typical Implementation
//
// See the inmemorydag package for the reference implementation: a dag.Graph
// behind a single sync.RWMutex.
package dagstore
