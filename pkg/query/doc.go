// Package query is the eager evaluator over lock-wrapped collections.
//
// A Query is a chain of predicates over a collection source. Terminal
// operations scan the source's handles in order, acquire each element's
// lock exactly once, evaluate the full predicate chain against the value
// while the lock is held, and release before moving to the next element.
// Matching values are copied out as snapshots; the lock is never held
// across two elements.
//
// Terminals come in two shapes:
//
//   - Methods (Count, Exists, First, All, Limit) for operations whose
//     result type is fixed by T.
//   - Package functions (Select, OrderBy, GroupBy, Sum, Avg, Min, Max and
//     the float variants) for operations parameterized by a field type,
//     since Go methods cannot introduce type parameters. These take the
//     query as their first argument and a field accessor.
//
// An element whose lock is unavailable (see lockq/pkg/guard) is silently
// excluded, exactly as if it had failed the predicate chain. Results are
// point-in-time snapshots: a concurrently mutated collection can yield a
// mix of pre- and post-mutation states across different elements.
//
// Sorting and grouping need an owned working set, so those terminals
// materialize all qualifying snapshots first and then operate lock-free.
// Aggregates accumulate in a single pass without materializing.
package query
