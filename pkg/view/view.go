// Package view provides materialized views: cached query results served
// without any lock acquisition until explicitly refreshed.
//
// A View owns a snapshot slice plus the closure that recomputes it. Reads
// return the current snapshot; Refresh re-invokes the closure and swaps
// the cached slice wholesale. There is no automatic invalidation and no
// incremental maintenance — staleness is entirely the caller's concern,
// a deliberate simplicity/performance trade.
package view

import (
	"fmt"
	"sync"

	"golang.org/x/sync/singleflight"

	"lockq/pkg/logging"
)

// View caches the result of a query closure.
type View[T any] struct {
	name    string
	refresh func() []T

	mu   sync.RWMutex
	snap []T

	group singleflight.Group
}

// New creates a view and populates it by invoking refresh once. The
// refresh closure is typically a composition of query and join operations
// over live locked collections.
func New[T any](name string, refresh func() []T) (*View[T], error) {
	if refresh == nil {
		return nil, fmt.Errorf("view %q: refresh function cannot be nil", name)
	}
	v := &View[T]{name: name, refresh: refresh}
	v.snap = refresh()
	return v, nil
}

// Name returns the view's name.
func (v *View[T]) Name() string { return v.name }

// Get returns the cached snapshot without acquiring any collection lock.
// The returned slice is replaced wholesale on Refresh and never mutated in
// place, so holders of an earlier Get result keep a consistent snapshot.
// Callers must not modify it.
func (v *View[T]) Get() []T {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.snap
}

// Count returns the cached snapshot's length.
func (v *View[T]) Count() int {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return len(v.snap)
}

// Refresh re-invokes the refresh closure and replaces the cached snapshot.
// Concurrent Refresh calls collapse into a single recompute; every caller
// returns once that recompute's result is installed.
func (v *View[T]) Refresh() {
	v.group.Do("refresh", func() (interface{}, error) {
		snap := v.refresh()
		v.mu.Lock()
		v.snap = snap
		v.mu.Unlock()
		logging.WithView(v.name).Debug("materialized view refreshed", "rows", len(snap))
		return nil, nil
	})
}
