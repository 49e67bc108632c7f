// Package functools provides small generic slice helpers used by the join
// and view layers. All functions treat a nil slice as empty and never
// mutate their input.
package functools

// Map transforms each element of the slice with fn.
func Map[T, R any](slice []T, fn func(T) R) []R {
	if slice == nil {
		return nil
	}
	result := make([]R, 0, len(slice))
	for _, v := range slice {
		result = append(result, fn(v))
	}
	return result
}

// Filter keeps the elements for which pred returns true.
func Filter[T any](slice []T, pred func(T) bool) []T {
	if slice == nil {
		return nil
	}
	result := make([]T, 0, len(slice))
	for _, v := range slice {
		if pred(v) {
			result = append(result, v)
		}
	}
	return result
}

// Reduce folds the slice into a single value, threading the accumulator
// through fn from left to right.
func Reduce[T, A any](slice []T, initial A, fn func(A, T) A) A {
	acc := initial
	for _, v := range slice {
		acc = fn(acc, v)
	}
	return acc
}

// GroupBy partitions the slice by key, preserving element order within
// each group.
func GroupBy[T any, K comparable](slice []T, key func(T) K) map[K][]T {
	groups := make(map[K][]T)
	for _, v := range slice {
		k := key(v)
		groups[k] = append(groups[k], v)
	}
	return groups
}
