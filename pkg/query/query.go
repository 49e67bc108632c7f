package query

import (
	"lockq/pkg/collection"
	"lockq/pkg/guard"
)

// Query filters a locked collection through an ordered predicate chain.
// The zero predicate chain matches everything.
//
// Predicates must be pure: no side effects, and in particular no
// acquisition of another guard, which would risk nested-lock deadlock.
type Query[T any] struct {
	src   collection.Source[T]
	preds []func(v T) bool
}

// New creates a query over src with an empty predicate chain.
func New[T any](src collection.Source[T]) *Query[T] {
	return &Query[T]{src: src}
}

// Where returns a new query with pred appended to the chain. The receiver
// is left unchanged, so partially built queries can be shared and extended
// independently.
func (q *Query[T]) Where(pred func(v T) bool) *Query[T] {
	preds := make([]func(v T) bool, len(q.preds), len(q.preds)+1)
	copy(preds, q.preds)
	return &Query[T]{src: q.src, preds: append(preds, pred)}
}

// matches evaluates the full predicate chain against v.
func (q *Query[T]) matches(v T) bool {
	for _, pred := range q.preds {
		if !pred(v) {
			return false
		}
	}
	return true
}

// scan drives one pass over the source: each element's lock is acquired
// once, the predicate chain runs against the value while the lock is held,
// and matching snapshots are handed to emit. Emit returning false stops
// the pass. Elements with unavailable locks are skipped.
func (q *Query[T]) scan(emit func(v T) bool) {
	q.src.Seq(func(g guard.Guard[T]) bool {
		more := true
		g.View(func(v T) {
			if q.matches(v) {
				more = emit(v)
			}
		})
		return more
	})
}
