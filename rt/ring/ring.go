package ring

import (
	"errors"
	"fmt"
	"sync/atomic"
)

// ErrCapacity is returned by New when the requested capacity is not a
// power of two or is too small to hold any item.
var ErrCapacity = errors.New("ring: capacity must be a power of two >= 2")

// Ring is a lock-free SPSC queue over a power-of-two slot array.
//
// head is owned by the consumer and tail by the producer; each side only
// ever writes its own index. One slot stays permanently unused so that
// head == tail means empty and never full: a Ring created with capacity N
// holds at most N-1 items.
type Ring[T any] struct {
	slots []T
	mask  uint64

	head atomic.Uint64 // next slot to pop, consumer-owned
	tail atomic.Uint64 // next slot to fill, producer-owned
}

// New creates a Ring with the given slot count, which must be a power of
// two and at least 2. Usable capacity is capacity-1.
func New[T any](capacity int) (*Ring[T], error) {
	if capacity < 2 || capacity&(capacity-1) != 0 {
		return nil, fmt.Errorf("%w: %d", ErrCapacity, capacity)
	}

	return &Ring[T]{
		slots: make([]T, capacity),
		mask:  uint64(capacity - 1),
	}, nil
}

// Push appends item and returns true, or returns false without side
// effects when the ring is full. Producer goroutine only; never blocks,
// never allocates.
func (r *Ring[T]) Push(item T) bool {
	tail := r.tail.Load()
	next := (tail + 1) & r.mask

	if next == r.head.Load() {
		return false // full
	}

	r.slots[tail] = item
	r.tail.Store(next) // publish after the slot write

	return true
}

// Pop removes the oldest item into out and returns true, or returns false
// when the ring is empty. Consumer goroutine only; never blocks, never
// allocates.
func (r *Ring[T]) Pop(out *T) bool {
	head := r.head.Load()

	if head == r.tail.Load() {
		return false // empty
	}

	*out = r.slots[head]

	var zero T
	r.slots[head] = zero // drop the reference for pointer-carrying T

	r.head.Store((head + 1) & r.mask)

	return true
}

// Len returns a snapshot of the number of buffered items. It may be stale
// under concurrent use but always corresponds to some valid past state.
func (r *Ring[T]) Len() int {
	head := r.head.Load()
	tail := r.tail.Load()
	return int((tail - head) & r.mask)
}

// Cap returns the usable capacity (slot count minus the reserved slot).
func (r *Ring[T]) Cap() int {
	return len(r.slots) - 1
}

// Empty reports whether the ring held no items at snapshot time.
func (r *Ring[T]) Empty() bool {
	return r.head.Load() == r.tail.Load()
}

// Full reports whether the ring had no free slot at snapshot time.
func (r *Ring[T]) Full() bool {
	next := (r.tail.Load() + 1) & r.mask
	return next == r.head.Load()
}
