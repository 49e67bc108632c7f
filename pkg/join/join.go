// Package join evaluates hash joins across two independently locked
// collections.
//
// Holding one collection's locks while probing the other risks
// lock-ordering deadlock and inconsistent reads, so a join never does
// that: Of first snapshots each side independently, one lock at a time,
// and the join itself then runs purely over the two owned snapshot sets.
// The price is strict cross-collection consistency — the two snapshots
// are point samples taken at slightly different times — which is a
// deliberate trade for safety.
//
// The join variants are package functions rather than methods because the
// key and output types are type parameters of the operation, not of the
// table pair.
package join

import (
	"lockq/pkg/collection"
	"lockq/pkg/functools"
	"lockq/pkg/logging"
	"lockq/pkg/query"
)

// Tables holds the owned snapshot sets of the two join sides.
type Tables[L, R any] struct {
	left  []L
	right []R
}

// Of snapshots both collections with the single-lock-at-a-time scan
// discipline and returns the join input pair.
func Of[L, R any](left collection.Source[L], right collection.Source[R]) *Tables[L, R] {
	t := &Tables[L, R]{
		left:  query.New(left).All(),
		right: query.New(right).All(),
	}
	logging.WithJoin(len(t.left), len(t.right)).Debug("join sides snapshotted")
	return t
}

// OfQueries is like Of but snapshots only the rows qualifying under each
// side's predicate chain.
func OfQueries[L, R any](left *query.Query[L], right *query.Query[R]) *Tables[L, R] {
	return &Tables[L, R]{left: left.All(), right: right.All()}
}

// Inner emits combine(l, r) for every left row and right row whose keys
// are equal. Matching is many-to-many. The right side is indexed by key,
// so cost is O(len(left) + len(right)) plus the output size.
func Inner[L, R any, K comparable, Out any](
	t *Tables[L, R],
	leftKey func(L) K,
	rightKey func(R) K,
	combine func(L, R) Out,
) []Out {
	index := functools.GroupBy(t.right, rightKey)
	var out []Out
	for _, l := range t.left {
		for _, r := range index[leftKey(l)] {
			out = append(out, combine(l, r))
		}
	}
	return out
}

// InnerWhere is Inner with an extra pairwise predicate evaluated on each
// key-matched pair before the combiner runs.
func InnerWhere[L, R any, K comparable, Out any](
	t *Tables[L, R],
	leftKey func(L) K,
	rightKey func(R) K,
	where func(L, R) bool,
	combine func(L, R) Out,
) []Out {
	index := functools.GroupBy(t.right, rightKey)
	var out []Out
	for _, l := range t.left {
		for _, r := range index[leftKey(l)] {
			if where(l, r) {
				out = append(out, combine(l, r))
			}
		}
	}
	return out
}

// Left is Inner, except that a left row with no key match still emits
// once, with a nil right pointer handed to the combiner.
func Left[L, R any, K comparable, Out any](
	t *Tables[L, R],
	leftKey func(L) K,
	rightKey func(R) K,
	combine func(L, *R) Out,
) []Out {
	index := functools.GroupBy(t.right, rightKey)
	var out []Out
	for _, l := range t.left {
		matches := index[leftKey(l)]
		if len(matches) == 0 {
			out = append(out, combine(l, nil))
			continue
		}
		for i := range matches {
			r := matches[i]
			out = append(out, combine(l, &r))
		}
	}
	return out
}

// Right is the mirror of Left: every right row emits at least once, with
// a nil left pointer when no left row shares its key.
func Right[L, R any, K comparable, Out any](
	t *Tables[L, R],
	leftKey func(L) K,
	rightKey func(R) K,
	combine func(*L, R) Out,
) []Out {
	index := functools.GroupBy(t.left, leftKey)
	var out []Out
	for _, r := range t.right {
		matches := index[rightKey(r)]
		if len(matches) == 0 {
			out = append(out, combine(nil, r))
			continue
		}
		for i := range matches {
			l := matches[i]
			out = append(out, combine(&l, r))
		}
	}
	return out
}

// Cross emits combine for every pair, O(len(left) × len(right)). Callers
// are responsible for bounding input sizes.
func Cross[L, R any, Out any](t *Tables[L, R], combine func(L, R) Out) []Out {
	out := make([]Out, 0, len(t.left)*len(t.right))
	for _, l := range t.left {
		for _, r := range t.right {
			out = append(out, combine(l, r))
		}
	}
	return out
}
