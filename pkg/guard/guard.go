// Package guard provides per-element lock wrappers and the read capability
// that the query layer is built on.
//
// A Guard owns one value of type T behind a lock. The query packages never
// see the lock itself; they only call View, which acquires read access,
// hands the callback a copy of the value taken while the lock is held, and
// releases the lock before returning. A Guard whose value is unavailable
// (poisoned by a writer panic, or unreachable through its acquisition
// primitive) answers View with false without invoking the callback.
//
// Writes go through Set and Update on the concrete guard types. Update
// treats a panic in the mutating callback as corruption: the guard is
// marked poisoned and the panic is re-raised. Poisoned guards keep
// rejecting reads until the value is wholly replaced with Set; they never
// panic readers.
//
// The copy handed to View callbacks is a shallow value copy. Types whose
// fields share underlying storage (slices, maps, pointers) need a
// deep-copying field accessor on the caller's side if snapshots must not
// alias live data.
package guard

// Guard is the read capability over one lock-wrapped value.
//
// View acquires read access, invokes fn with the current value, releases
// the lock, and returns true. It returns false without calling fn when the
// value is unavailable. Exactly one acquire/release pair per call; there
// are no retries. View must never be called from inside another guard's
// View or Update callback, since holding two element locks at once risks
// lock-ordering deadlock.
type Guard[T any] interface {
	View(fn func(v T)) bool
}
