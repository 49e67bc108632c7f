package query

import (
	"cmp"
	"math"
	"sort"
)

// float is the constraint for the NaN-aware sort and aggregate variants.
type float interface {
	~float32 | ~float64
}

// OrderBy materializes all qualifying snapshots and sorts them ascending
// by the designated field. The sort is stable: elements with equal keys
// keep their original relative order.
func OrderBy[T any, F cmp.Ordered](q *Query[T], field func(v T) F) []T {
	out := q.All()
	sort.SliceStable(out, func(i, j int) bool {
		return field(out[i]) < field(out[j])
	})
	return out
}

// OrderByDesc sorts descending. It uses the inverted comparator with the
// same stable sort, so equal keys still keep their original relative order
// (reversing the ascending output would reverse ties instead).
func OrderByDesc[T any, F cmp.Ordered](q *Query[T], field func(v T) F) []T {
	out := q.All()
	sort.SliceStable(out, func(i, j int) bool {
		return field(out[j]) < field(out[i])
	})
	return out
}

// OrderByFloat sorts ascending by a floating-point field with an explicit
// NaN policy: NaN keys sort after every ordered value.
func OrderByFloat[T any, F float](q *Query[T], field func(v T) F) []T {
	out := q.All()
	sort.SliceStable(out, func(i, j int) bool {
		return floatLess(field(out[i]), field(out[j]))
	})
	return out
}

// OrderByFloatDesc sorts descending by a floating-point field. NaN keys
// still sort last, after the smallest ordered value.
func OrderByFloatDesc[T any, F float](q *Query[T], field func(v T) F) []T {
	out := q.All()
	sort.SliceStable(out, func(i, j int) bool {
		a, b := field(out[i]), field(out[j])
		if math.IsNaN(float64(a)) {
			return false
		}
		if math.IsNaN(float64(b)) {
			return true
		}
		return b < a
	})
	return out
}

// floatLess orders floats with NaN after all ordered values.
func floatLess[F float](a, b F) bool {
	if math.IsNaN(float64(a)) {
		return false
	}
	if math.IsNaN(float64(b)) {
		return true
	}
	return a < b
}

// GroupBy materializes all qualifying snapshots and partitions them by the
// designated field. Within each group, snapshots keep iteration order.
// Group keys use the field's natural equality.
func GroupBy[T any, K comparable](q *Query[T], key func(v T) K) map[K][]T {
	groups := make(map[K][]T)
	q.scan(func(v T) bool {
		k := key(v)
		groups[k] = append(groups[k], v)
		return true
	})
	return groups
}
