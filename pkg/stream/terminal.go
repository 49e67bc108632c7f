package stream

import (
	"cmp"
	"math"
)

type number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

type float interface {
	~float32 | ~float64
}

// Count consumes the stream and returns the number of elements.
func (s *Stream[T]) Count() int {
	n := 0
	s.seq(func(T) bool {
		n++
		return true
	})
	return n
}

// First returns the first element, stopping the pass immediately so that
// no lock beyond the first satisfying element's is acquired.
func (s *Stream[T]) First() (T, bool) {
	var first T
	found := false
	s.seq(func(v T) bool {
		first = v
		found = true
		return false
	})
	return first, found
}

// Any reports whether the stream produces at least one element, stopping
// at the first.
func (s *Stream[T]) Any() bool {
	_, found := s.First()
	return found
}

// All reports whether every element satisfies pred, stopping at the first
// counterexample.
func (s *Stream[T]) All(pred func(v T) bool) bool {
	ok := true
	s.seq(func(v T) bool {
		if !pred(v) {
			ok = false
			return false
		}
		return true
	})
	return ok
}

// Collect consumes the stream into an owned slice.
func (s *Stream[T]) Collect() []T {
	var out []T
	s.seq(func(v T) bool {
		out = append(out, v)
		return true
	})
	return out
}

// Fold consumes the stream, threading an accumulator through fn.
func Fold[T, A any](s *Stream[T], init A, fn func(acc A, v T) A) A {
	acc := init
	s.seq(func(v T) bool {
		acc = fn(acc, v)
		return true
	})
	return acc
}

// Sum adds a field across the whole stream. Early termination does not
// apply to aggregates; the full stream is consumed.
func Sum[T any, N number](s *Stream[T], field func(v T) N) N {
	return Fold(s, N(0), func(acc N, v T) N { return acc + field(v) })
}

// Avg returns the mean of a field, or false for an empty stream.
func Avg[T any, N number](s *Stream[T], field func(v T) N) (float64, bool) {
	var total float64
	n := 0
	s.seq(func(v T) bool {
		total += float64(field(v))
		n++
		return true
	})
	if n == 0 {
		return 0, false
	}
	return total / float64(n), true
}

// Min returns the smallest field value, or false for an empty stream.
func Min[T any, F cmp.Ordered](s *Stream[T], field func(v T) F) (F, bool) {
	var best F
	found := false
	s.seq(func(v T) bool {
		f := field(v)
		if !found || f < best {
			best = f
		}
		found = true
		return true
	})
	return best, found
}

// Max returns the largest field value, or false for an empty stream.
func Max[T any, F cmp.Ordered](s *Stream[T], field func(v T) F) (F, bool) {
	var best F
	found := false
	s.seq(func(v T) bool {
		f := field(v)
		if !found || best < f {
			best = f
		}
		found = true
		return true
	})
	return best, found
}

// MinFloat returns the smallest ordered value of a floating-point field,
// ignoring NaN; false when no ordered value was seen.
func MinFloat[T any, F float](s *Stream[T], field func(v T) F) (F, bool) {
	best := F(math.Inf(1))
	found := false
	s.seq(func(v T) bool {
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

// MaxFloat returns the largest ordered value of a floating-point field,
// ignoring NaN; false when no ordered value was seen.
func MaxFloat[T any, F float](s *Stream[T], field func(v T) F) (F, bool) {
	best := F(math.Inf(-1))
	found := false
	s.seq(func(v T) bool {
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
