// Package ring provides the lock-free SPSC buffer that carries
// executions from the matcher job to the broadcaster.
package ring

import "sync/atomic"

// Buffer is a single-producer single-consumer ring. The producer owns
// head, the consumer owns tail; each side only atomically loads the
// other's counter.
type Buffer[T any] struct {
	head  uint64
	_pad1 [56]byte
	tail  uint64
	_pad2 [56]byte
	buf   []T
	mask  uint64
}

// New allocates a ring. size must be a power of two.
func New[T any](size uint64) *Buffer[T] {
	if size == 0 || size&(size-1) != 0 {
		panic("ring: size must be a power of two")
	}
	return &Buffer[T]{buf: make([]T, size), mask: size - 1}
}

// Push adds an element; returns false if the ring is full.
func (r *Buffer[T]) Push(item T) bool {
	h := r.head
	t := atomic.LoadUint64(&r.tail)
	if h-t == uint64(len(r.buf)) {
		return false
	}
	r.buf[h&r.mask] = item
	atomic.StoreUint64(&r.head, h+1)
	return true
}

// Pop removes one element; ok is false when the ring is empty.
func (r *Buffer[T]) Pop() (item T, ok bool) {
	t := r.tail
	h := atomic.LoadUint64(&r.head)
	if t == h {
		return item, false
	}
	item = r.buf[t&r.mask]
	var zero T
	r.buf[t&r.mask] = zero
	atomic.StoreUint64(&r.tail, t+1)
	return item, true
}

func (r *Buffer[T]) Len() int {
	return int(atomic.LoadUint64(&r.head) - atomic.LoadUint64(&r.tail))
}

func (r *Buffer[T]) Cap() int { return len(r.buf) }
