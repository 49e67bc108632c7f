// Package collection adapts ordinary Go collections of lock-wrapped
// elements into the handle sequences the evaluators consume.
//
// An adapter is purely structural: it enumerates guards in the backing
// collection's natural order and never acquires a lock itself. The handles
// it yields are only valid for the duration of one pass.
package collection

import "lockq/pkg/guard"

// Source yields the lock handles of a collection, one per element, in the
// collection's natural iteration order.
type Source[T any] interface {
	// Seq calls yield once per element guard until yield returns false
	// or the collection is exhausted. Seq itself acquires no locks.
	Seq(yield func(g guard.Guard[T]) bool)
}

// sourceFunc lets a plain closure act as a Source.
type sourceFunc[T any] func(yield func(g guard.Guard[T]) bool)

func (f sourceFunc[T]) Seq(yield func(g guard.Guard[T]) bool) { f(yield) }

// Slice adapts a slice of guards. Iteration order is the slice order, so
// first-match semantics are deterministic.
func Slice[T any, G guard.Guard[T]](guards []G) Source[T] {
	return sourceFunc[T](func(yield func(g guard.Guard[T]) bool) {
		for _, g := range guards {
			if !yield(g) {
				return
			}
		}
	})
}

// Map adapts the values of a map of guards. Go map iteration order is
// unspecified, so first-match and take-n results over a Map source are
// nondeterministic; use OrderedMap when those must be stable.
func Map[K comparable, T any, G guard.Guard[T]](m map[K]G) Source[T] {
	return sourceFunc[T](func(yield func(g guard.Guard[T]) bool) {
		for _, g := range m {
			if !yield(g) {
				return
			}
		}
	})
}
