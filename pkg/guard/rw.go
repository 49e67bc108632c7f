package guard

import "sync"

// RW guards a value with a read/write lock. Concurrent View calls share
// the read side; Set and Update take the write side.
type RW[T any] struct {
	mu       sync.RWMutex
	poisoned bool
	value    T
}

// NewRW creates an RW guard holding v.
func NewRW[T any](v T) *RW[T] {
	return &RW[T]{value: v}
}

// View runs fn against a copy of the guarded value under the read lock.
// Returns false if the guard has been poisoned by an earlier writer panic.
func (g *RW[T]) View(fn func(v T)) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if g.poisoned {
		return false
	}
	fn(g.value)
	return true
}

// Set replaces the guarded value and clears poisoning.
func (g *RW[T]) Set(v T) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.value = v
	g.poisoned = false
}

// Update mutates the guarded value under the write lock. A panic inside fn
// marks the guard poisoned and is re-raised.
func (g *RW[T]) Update(fn func(v *T)) {
	g.mu.Lock()
	defer g.mu.Unlock()
	defer func() {
		if r := recover(); r != nil {
			g.poisoned = true
			panic(r)
		}
	}()
	fn(&g.value)
}

// NoPoison guards a value with a read/write lock that never rejects
// readers. A panic in an Update callback still propagates, but the value
// stays readable afterwards; callers who want that panic to quarantine the
// element should use RW instead.
type NoPoison[T any] struct {
	mu    sync.RWMutex
	value T
}

// NewNoPoison creates a NoPoison guard holding v.
func NewNoPoison[T any](v T) *NoPoison[T] {
	return &NoPoison[T]{value: v}
}

// View runs fn against a copy of the guarded value under the read lock.
// Always returns true.
func (g *NoPoison[T]) View(fn func(v T)) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	fn(g.value)
	return true
}

// Set replaces the guarded value.
func (g *NoPoison[T]) Set(v T) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.value = v
}

// Update mutates the guarded value under the write lock.
func (g *NoPoison[T]) Update(fn func(v *T)) {
	g.mu.Lock()
	defer g.mu.Unlock()
	fn(&g.value)
}
