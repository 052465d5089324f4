package casloop

import "sync/atomic"

// Cell is a single-word atomic reference to an immutable snapshot.
// All shared mutable state in the engine lives behind a Cell: readers
// load a snapshot, writers publish a replacement by CAS. A snapshot,
// once published, is never modified.
type Cell[T any] struct {
	p atomic.Pointer[T]
}

func (c *Cell[T]) Load() *T {
	return c.p.Load()
}

// Store publishes unconditionally. Only used to seed a Cell before it
// is shared.
func (c *Cell[T]) Store(v *T) {
	c.p.Store(v)
}

func (c *Cell[T]) CompareAndSwap(old, new *T) bool {
	return c.p.CompareAndSwap(old, new)
}

// Retry runs attempt until it reports success. An attempt is expected
// to read fresh shared state, compute a replacement locally, and try a
// single CAS; returning false discards all local state and starts over.
//
// Retries are unbounded. Progress is guaranteed system-wide: an attempt
// only fails because some other attempt's CAS won.
func Retry(attempt func() bool) {
	for !attempt() {
	}
}

// Update applies fn to the cell's current value until the proposed
// replacement lands, and returns the value that was installed. fn must
// be pure: it may run any number of times.
func Update[T any](c *Cell[T], fn func(old *T) *T) *T {
	for {
		old := c.Load()
		next := fn(old)
		if c.CompareAndSwap(old, next) {
			return next
		}
	}
}
