package query

import (
	"lockq/pkg/collection"
	"lockq/pkg/guard"
)

// item is the record type shared by the query tests.
type item struct {
	ID    int
	Name  string
	Price int
	Score float64
}

// countingGuard wraps a guard and counts lock acquisitions, for asserting
// the early-termination guarantees.
type countingGuard[T any] struct {
	inner    guard.Guard[T]
	acquires *int
}

func (c countingGuard[T]) View(fn func(v T)) bool {
	*c.acquires++
	return c.inner.View(fn)
}

// newItemSource builds an ordered source over the given items, one RW
// guard per element.
func newItemSource(items []item) collection.Source[item] {
	guards := make([]*guard.RW[item], len(items))
	for i, it := range items {
		guards[i] = guard.NewRW(it)
	}
	return collection.Slice[item](guards)
}

// newCountingSource is like newItemSource but counts every lock
// acquisition across all elements through the shared counter.
func newCountingSource(items []item, acquires *int) collection.Source[item] {
	guards := make([]countingGuard[item], len(items))
	for i, it := range items {
		guards[i] = countingGuard[item]{inner: guard.NewRW(it), acquires: acquires}
	}
	return collection.Slice[item](guards)
}

// collectionSlice adapts a heterogeneous guard slice.
func collectionSlice(guards []guard.Guard[item]) collection.Source[item] {
	return collection.Slice[item](guards)
}

// poisonedGuard builds a guard whose View always fails.
func poisonedGuard(it item) *guard.RW[item] {
	g := guard.NewRW(it)
	func() {
		defer func() { _ = recover() }()
		g.Update(func(*item) { panic("poison") })
	}()
	return g
}

var priceItems = []item{
	{ID: 1, Name: "bolt", Price: 10, Score: 1.5},
	{ID: 2, Name: "gear", Price: 50, Score: 3.0},
	{ID: 3, Name: "cam", Price: 999, Score: 2.25},
}
