package view

import (
	"sort"
	"sync"

	"github.com/golang/groupcache/lru"
)

// Refresher is the type-erased surface the registry needs from a view.
// *View[T] implements it for every T.
type Refresher interface {
	Name() string
	Count() int
	Refresh()
}

// Registry holds named materialized views with least-recently-used
// eviction, bounding how many cached snapshots the process retains.
// Evicted views are simply dropped; they hold no resources beyond their
// snapshot slice.
type Registry struct {
	mu    sync.Mutex
	cache *lru.Cache
	names map[string]struct{}
}

// NewRegistry creates a registry keeping at most maxViews views;
// maxViews <= 0 means unbounded.
func NewRegistry(maxViews int) *Registry {
	r := &Registry{
		cache: lru.New(maxViews),
		names: make(map[string]struct{}),
	}
	r.cache.OnEvicted = r.onEvicted
	return r
}

// onEvicted keeps the name set in sync with the LRU cache. Called with
// r.mu held, since all cache mutation happens under it.
func (r *Registry) onEvicted(key lru.Key, _ interface{}) {
	delete(r.names, key.(string))
}

// Add registers v under its name, replacing any previous entry.
func (r *Registry) Add(v Refresher) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cache.Add(v.Name(), v)
	r.names[v.Name()] = struct{}{}
}

// Get returns the view registered under name, marking it recently used.
func (r *Registry) Get(name string) (Refresher, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	v, ok := r.cache.Get(name)
	if !ok {
		return nil, false
	}
	return v.(Refresher), true
}

// Len returns the number of registered views.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.cache.Len()
}

// RefreshAll refreshes every registered view, in name order for
// determinism. Refreshes run outside the registry lock so that a slow
// recompute does not block Get.
func (r *Registry) RefreshAll() {
	r.mu.Lock()
	names := make([]string, 0, len(r.names))
	for name := range r.names {
		names = append(names, name)
	}
	sort.Strings(names)

	views := make([]Refresher, 0, len(names))
	for _, name := range names {
		if v, ok := r.cache.Get(name); ok {
			views = append(views, v.(Refresher))
		}
	}
	r.mu.Unlock()

	for _, v := range views {
		v.Refresh()
	}
}
