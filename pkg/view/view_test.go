package view

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lockq/pkg/collection"
	"lockq/pkg/guard"
	"lockq/pkg/query"
)

type item struct {
	ID    int
	Price int
}

func TestNewRequiresRefreshFunc(t *testing.T) {
	_, err := New[int]("bad", nil)
	require.Error(t, err)
}

func TestViewServesCacheUntilRefresh(t *testing.T) {
	guards := []*guard.RW[item]{
		guard.NewRW(item{ID: 1, Price: 10}),
		guard.NewRW(item{ID: 2, Price: 50}),
	}
	src := collection.Slice[item](guards)

	v, err := New("expensive", func() []item {
		return query.New(src).Where(func(i item) bool { return i.Price > 20 }).All()
	})
	require.NoError(t, err)
	require.Equal(t, 1, v.Count())

	// Mutate the live collection; the view must keep serving the old
	// snapshot until an explicit refresh.
	guards[0].Update(func(i *item) { i.Price = 100 })
	assert.Equal(t, 1, v.Count())
	assert.Equal(t, 2, v.Get()[0].ID)

	v.Refresh()
	require.Equal(t, 2, v.Count())
}

func TestGetEqualsFreshClosureInvocation(t *testing.T) {
	guards := []*guard.RW[item]{
		guard.NewRW(item{ID: 1, Price: 10}),
		guard.NewRW(item{ID: 2, Price: 50}),
	}
	src := collection.Slice[item](guards)
	refresh := func() []item { return query.New(src).All() }

	v, err := New("all", refresh)
	require.NoError(t, err)

	guards[1].Update(func(i *item) { i.Price = 51 })
	v.Refresh()

	assert.Equal(t, refresh(), v.Get())
}

// An earlier Get result stays intact across a refresh; the snapshot slice
// is replaced, never mutated in place.
func TestOldSnapshotSurvivesRefresh(t *testing.T) {
	n := 0
	v, err := New("counter", func() []int {
		n++
		return []int{n}
	})
	require.NoError(t, err)

	before := v.Get()
	v.Refresh()

	assert.Equal(t, []int{1}, before)
	assert.Equal(t, []int{2}, v.Get())
}

func TestConcurrentRefreshIsSafe(t *testing.T) {
	var mu sync.Mutex
	calls := 0
	v, err := New("concurrent", func() []int {
		mu.Lock()
		calls++
		c := calls
		mu.Unlock()
		return []int{c}
	})
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			v.Refresh()
		}()
	}
	wg.Wait()

	mu.Lock()
	defer mu.Unlock()
	// Concurrent refreshes collapse; at most one recompute per wave of
	// callers plus the construction call.
	assert.GreaterOrEqual(t, calls, 2)
	assert.LessOrEqual(t, calls, 17)
	assert.Equal(t, 1, v.Count())
}

func TestRegistryAddGet(t *testing.T) {
	r := NewRegistry(0)

	v, err := New("prices", func() []int { return []int{1, 2, 3} })
	require.NoError(t, err)
	r.Add(v)

	got, ok := r.Get("prices")
	require.True(t, ok)
	assert.Equal(t, 3, got.Count())

	_, ok = r.Get("missing")
	assert.False(t, ok)
}

func TestRegistryLRUEviction(t *testing.T) {
	r := NewRegistry(2)

	for _, name := range []string{"a", "b", "c"} {
		v, err := New(name, func() []int { return nil })
		require.NoError(t, err)
		r.Add(v)
	}

	assert.Equal(t, 2, r.Len())
	_, ok := r.Get("a")
	assert.False(t, ok, "oldest view should have been evicted")
	_, ok = r.Get("c")
	assert.True(t, ok)
}

func TestRegistryRefreshAll(t *testing.T) {
	r := NewRegistry(0)

	counts := make(map[string]*int)
	for _, name := range []string{"x", "y"} {
		n := new(int)
		counts[name] = n
		v, err := New(name, func() []int {
			*n++
			return nil
		})
		require.NoError(t, err)
		r.Add(v)
	}

	r.RefreshAll()

	for name, n := range counts {
		// One call at construction, one from RefreshAll.
		assert.Equal(t, 2, *n, "view %s", name)
	}
}
