package query

// Count returns the number of elements satisfying the predicate chain.
// Every element's lock is acquired exactly once.
func (q *Query[T]) Count() int {
	n := 0
	q.scan(func(T) bool {
		n++
		return true
	})
	return n
}

// Exists reports whether any element satisfies the predicate chain,
// stopping at the first hit so no further locks are acquired.
func (q *Query[T]) Exists() bool {
	found := false
	q.scan(func(T) bool {
		found = true
		return false
	})
	return found
}

// First returns a snapshot of the first element, in iteration order, that
// satisfies the predicate chain. The scan stops at the first hit.
// Determinism depends on the source: slices and OrderedMap iterate in a
// defined order, plain maps do not.
func (q *Query[T]) First() (T, bool) {
	var first T
	found := false
	q.scan(func(v T) bool {
		first = v
		found = true
		return false
	})
	return first, found
}

// All returns snapshots of every element satisfying the predicate chain,
// cloned inside each element's lock scope.
func (q *Query[T]) All() []T {
	var out []T
	q.scan(func(v T) bool {
		out = append(out, v)
		return true
	})
	return out
}

// Limit returns snapshots of at most n qualifying elements, stopping the
// scan as soon as n have been collected.
func (q *Query[T]) Limit(n int) []T {
	if n <= 0 {
		return nil
	}
	out := make([]T, 0, n)
	q.scan(func(v T) bool {
		out = append(out, v)
		return len(out) < n
	})
	return out
}

// Select returns the designated field of every qualifying element. Only
// the projected field is retained, not the whole snapshot.
func Select[T, F any](q *Query[T], field func(v T) F) []F {
	var out []F
	q.scan(func(v T) bool {
		out = append(out, field(v))
		return true
	})
	return out
}
