package query

import (
	"cmp"
	"math"
)

// number is the constraint for the additive aggregates.
type number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Sum adds the designated field across all qualifying elements in a single
// pass, without materializing snapshots. An empty set sums to zero.
func Sum[T any, N number](q *Query[T], field func(v T) N) N {
	var total N
	q.scan(func(v T) bool {
		total += field(v)
		return true
	})
	return total
}

// Avg returns the mean of the designated field across all qualifying
// elements. The second return is false when no element qualifies; there is
// no sentinel numeric value for the empty case.
func Avg[T any, N number](q *Query[T], field func(v T) N) (float64, bool) {
	var total float64
	n := 0
	q.scan(func(v T) bool {
		total += float64(field(v))
		n++
		return true
	})
	if n == 0 {
		return 0, false
	}
	return total / float64(n), true
}

// Min returns the smallest value of the designated field, or false when no
// element qualifies.
func Min[T any, F cmp.Ordered](q *Query[T], field func(v T) F) (F, bool) {
	var best F
	found := false
	q.scan(func(v T) bool {
		f := field(v)
		if !found || f < best {
			best = f
		}
		found = true
		return true
	})
	return best, found
}

// Max returns the largest value of the designated field, or false when no
// element qualifies.
func Max[T any, F cmp.Ordered](q *Query[T], field func(v T) F) (F, bool) {
	var best F
	found := false
	q.scan(func(v T) bool {
		f := field(v)
		if !found || best < f {
			best = f
		}
		found = true
		return true
	})
	return best, found
}

// MinFloat returns the smallest value of a floating-point field. Floats
// are only partially ordered, so NaN values are ignored; the second return
// is false when no qualifying element has an ordered value.
func MinFloat[T any, F float](q *Query[T], field func(v T) F) (F, bool) {
	best := F(math.Inf(1))
	found := false
	q.scan(func(v T) bool {
		f := field(v)
		if math.IsNaN(float64(f)) {
			return true
		}
		if f < best || !found {
			best = f
		}
		found = true
		return true
	})
	if !found {
		var zero F
		return zero, false
	}
	return best, true
}

// MaxFloat returns the largest value of a floating-point field, ignoring
// NaN values. The second return is false when no qualifying element has an
// ordered value.
func MaxFloat[T any, F float](q *Query[T], field func(v T) F) (F, bool) {
	best := F(math.Inf(-1))
	found := false
	q.scan(func(v T) bool {
		f := field(v)
		if math.IsNaN(float64(f)) {
			return true
		}
		if best < f || !found {
			best = f
		}
		found = true
		return true
	})
	if !found {
		var zero F
		return zero, false
	}
	return best, true
}
