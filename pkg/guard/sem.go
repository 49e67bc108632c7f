package guard

import (
	"context"

	"golang.org/x/sync/semaphore"
)

// semReaders is the semaphore capacity of a Sem guard. Readers acquire one
// unit each, writers acquire all of them, giving read/write semantics.
const semReaders = 64

// Sem guards a value with a weighted semaphore, the lock kind to use when
// the surrounding program coordinates through context-aware primitives.
//
// View is a synchronous bridge: it blocks the calling goroutine until the
// semaphore is acquired, with no context and no timeout. Do not call it
// from a single-threaded cooperative scheduler (for example inside an
// event-loop callback that every other acquirer also runs on) — the
// blocked acquire can stall that scheduler indefinitely. Callers in that
// position should use ViewContext with a cancellable context instead.
type Sem[T any] struct {
	sem      *semaphore.Weighted
	poisoned bool
	value    T
}

// NewSem creates a Sem guard holding v.
func NewSem[T any](v T) *Sem[T] {
	return &Sem[T]{
		sem:   semaphore.NewWeighted(semReaders),
		value: v,
	}
}

// View blocks until read access is acquired, then runs fn against a copy
// of the guarded value. Returns false if the guard is poisoned.
func (g *Sem[T]) View(fn func(v T)) bool {
	ok, _ := g.ViewContext(context.Background(), fn)
	return ok
}

// ViewContext is like View but gives up when ctx is done before the
// semaphore is acquired, returning false and the context's error.
func (g *Sem[T]) ViewContext(ctx context.Context, fn func(v T)) (bool, error) {
	if err := g.sem.Acquire(ctx, 1); err != nil {
		return false, err
	}
	defer g.sem.Release(1)
	if g.poisoned {
		return false, nil
	}
	fn(g.value)
	return true, nil
}

// Set replaces the guarded value and clears poisoning. Blocks until all
// readers have released.
func (g *Sem[T]) Set(v T) {
	if err := g.sem.Acquire(context.Background(), semReaders); err != nil {
		return
	}
	defer g.sem.Release(semReaders)
	g.value = v
	g.poisoned = false
}

// Update mutates the guarded value with exclusive access. A panic inside
// fn marks the guard poisoned and is re-raised.
func (g *Sem[T]) Update(fn func(v *T)) {
	if err := g.sem.Acquire(context.Background(), semReaders); err != nil {
		return
	}
	defer g.sem.Release(semReaders)
	defer func() {
		if r := recover(); r != nil {
			g.poisoned = true
			panic(r)
		}
	}()
	fn(&g.value)
}
