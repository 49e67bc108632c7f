package collection

import (
	"cmp"

	"github.com/google/btree"

	"lockq/pkg/guard"
)

// btreeDegree matches the default used elsewhere for small in-memory
// trees; entries are two words, so nodes stay cache-friendly.
const btreeDegree = 32

type entry[K cmp.Ordered, T any] struct {
	key K
	g   guard.Guard[T]
}

// OrderedMap is a keyed collection of guards with ascending-key iteration
// order, for callers that need deterministic first-match and take-n
// semantics over a keyed container.
//
// The map structure itself is not synchronized: concurrent Set/Delete
// against a running query pass is the caller's responsibility. The
// elements' values are still individually protected by their guards.
type OrderedMap[K cmp.Ordered, T any] struct {
	tree *btree.BTreeG[entry[K, T]]
}

// NewOrderedMap creates an empty OrderedMap.
func NewOrderedMap[K cmp.Ordered, T any]() *OrderedMap[K, T] {
	less := func(a, b entry[K, T]) bool { return a.key < b.key }
	return &OrderedMap[K, T]{tree: btree.NewG(btreeDegree, less)}
}

// Set inserts or replaces the guard stored under key.
func (m *OrderedMap[K, T]) Set(key K, g guard.Guard[T]) {
	m.tree.ReplaceOrInsert(entry[K, T]{key: key, g: g})
}

// Get returns the guard stored under key.
func (m *OrderedMap[K, T]) Get(key K) (guard.Guard[T], bool) {
	e, ok := m.tree.Get(entry[K, T]{key: key})
	if !ok {
		return nil, false
	}
	return e.g, true
}

// Delete removes the guard stored under key, reporting whether it existed.
func (m *OrderedMap[K, T]) Delete(key K) bool {
	_, ok := m.tree.Delete(entry[K, T]{key: key})
	return ok
}

// Len returns the number of elements.
func (m *OrderedMap[K, T]) Len() int {
	return m.tree.Len()
}

// Source returns an adapter that yields guards in ascending key order.
func (m *OrderedMap[K, T]) Source() Source[T] {
	return sourceFunc[T](func(yield func(g guard.Guard[T]) bool) {
		m.tree.Ascend(func(e entry[K, T]) bool {
			return yield(e.g)
		})
	})
}
