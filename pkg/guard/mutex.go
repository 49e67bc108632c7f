package guard

import "sync"

// Mutex guards a value with a blocking exclusive lock. Readers and writers
// serialize against each other; use RW when reads dominate.
type Mutex[T any] struct {
	mu       sync.Mutex
	poisoned bool
	value    T
}

// NewMutex creates a Mutex guard holding v.
func NewMutex[T any](v T) *Mutex[T] {
	return &Mutex[T]{value: v}
}

// View runs fn against a copy of the guarded value while the lock is held.
// Returns false if the guard has been poisoned by an earlier writer panic.
func (m *Mutex[T]) View(fn func(v T)) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.poisoned {
		return false
	}
	fn(m.value)
	return true
}

// Set replaces the guarded value. Setting a fresh value clears poisoning,
// since the corrupted state has been fully overwritten.
func (m *Mutex[T]) Set(v T) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.value = v
	m.poisoned = false
}

// Update mutates the guarded value in place. A panic inside fn marks the
// guard poisoned and is re-raised to the caller.
func (m *Mutex[T]) Update(fn func(v *T)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	defer func() {
		if r := recover(); r != nil {
			m.poisoned = true
			panic(r)
		}
	}()
	fn(&m.value)
}
