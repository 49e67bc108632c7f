// Package stream is the lazy evaluator over lock-wrapped collections.
//
// Where the eager evaluator (lockq/pkg/query) runs a full scan per
// terminal, a Stream threads every stage through a single fused pass:
// stages wrap the upstream yield function, so no intermediate buffers are
// built and no lock is acquired until a terminal pulls. Terminals that can
// answer early (First, Any, All, Take-bounded Collect) stop the pass — and
// with it all further lock acquisition — the moment the answer is
// determined. The number of locks acquired by First is exactly the
// position of the first satisfying element.
//
// Streams are re-entrant: each terminal call drives a fresh pass with
// fresh stage state, so one composed Stream can be evaluated repeatedly.
//
// Sorting and grouping are deliberately absent here, since they need an
// owned working set; Collect into a slice first, or use pkg/query.
package stream

import (
	"lockq/pkg/collection"
	"lockq/pkg/guard"
)

// Stream is a composable pipeline over a locked collection. The zero
// Stream is not usable; build one with New.
type Stream[T any] struct {
	seq func(yield func(v T) bool)
}

// New creates a stream over src. Each element's lock is acquired once per
// pass, the downstream stages run against the copied value, and the lock
// is released before the next element is touched. Elements with
// unavailable locks are skipped.
func New[T any](src collection.Source[T]) *Stream[T] {
	return &Stream[T]{seq: func(yield func(v T) bool) {
		src.Seq(func(g guard.Guard[T]) bool {
			more := true
			g.View(func(v T) {
				more = yield(v)
			})
			return more
		})
	}}
}

// Where appends a predicate stage. Non-matching elements are dropped
// without leaving the current pass.
func (s *Stream[T]) Where(pred func(v T) bool) *Stream[T] {
	prev := s.seq
	return &Stream[T]{seq: func(yield func(v T) bool) {
		prev(func(v T) bool {
			if !pred(v) {
				return true
			}
			return yield(v)
		})
	}}
}

// Take passes through at most n elements and then stops the pass, so no
// further locks are acquired once n elements have been produced.
func (s *Stream[T]) Take(n int) *Stream[T] {
	prev := s.seq
	return &Stream[T]{seq: func(yield func(v T) bool) {
		if n <= 0 {
			return
		}
		taken := 0
		prev(func(v T) bool {
			taken++
			if !yield(v) {
				return false
			}
			return taken < n
		})
	}}
}

// Skip drops the first n elements reaching this stage.
func (s *Stream[T]) Skip(n int) *Stream[T] {
	prev := s.seq
	return &Stream[T]{seq: func(yield func(v T) bool) {
		skipped := 0
		prev(func(v T) bool {
			if skipped < n {
				skipped++
				return true
			}
			return yield(v)
		})
	}}
}

// Select maps the stream through a field accessor, producing a stream of
// projected values. Only the projected field flows downstream.
func Select[T, F any](s *Stream[T], field func(v T) F) *Stream[F] {
	prev := s.seq
	return &Stream[F]{seq: func(yield func(f F) bool) {
		prev(func(v T) bool {
			return yield(field(v))
		})
	}}
}
