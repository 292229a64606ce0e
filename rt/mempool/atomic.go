package mempool

import "sync/atomic"

// AtomicPool is a lock-free bump arena: each allocation reserves its span
// with one atomic add, so it never blocks and is safe to reach from a
// deadline-bound goroutine.
//
// To keep the reservation a single add, the pool over-reserves by up to
// align-1 bytes per allocation and aligns inside the reserved span. Reset
// requires external quiescence, exactly as with Pool.
type AtomicPool struct {
	arena []byte
	off   atomic.Int64
}

// NewAtomic creates an AtomicPool backed by a fresh arena of size bytes.
func NewAtomic(size int) (*AtomicPool, error) {
	if size <= 0 {
		return nil, ErrInvalidSize
	}
	return &AtomicPool{arena: make([]byte, size)}, nil
}

// Alloc returns a size-byte span aligned to align (a power of two;
// 0 means DefaultAlign), or nil when the arena is exhausted.
// Never blocks, never allocates.
func (p *AtomicPool) Alloc(size, align int) []byte {
	if size <= 0 || !validAlign(&align) {
		return nil
	}

	// Reserve enough for worst-case alignment in one atomic add. A failed
	// reservation may leave the offset past the arena end; that is fine,
	// every later Alloc fails the same way until Reset.
	reserve := int64(size + align - 1)
	end := p.off.Add(reserve)
	if end > int64(len(p.arena)) {
		return nil // exhausted
	}

	start := alignUp(int(end-reserve), align)

	return p.arena[start : start+size : start+size]
}

// Reset rewinds the arena, invalidating every span handed out so far.
// The caller must guarantee no concurrent Alloc and no outstanding use.
func (p *AtomicPool) Reset() {
	p.off.Store(0)
}

// BytesUsed returns the reserved byte count, clamped to the arena size.
// It includes alignment padding.
func (p *AtomicPool) BytesUsed() int {
	used := p.off.Load()
	if used > int64(len(p.arena)) {
		return len(p.arena)
	}
	return int(used)
}

// BytesAvailable returns the unreserved byte count.
func (p *AtomicPool) BytesAvailable() int {
	return len(p.arena) - p.BytesUsed()
}

// Cap returns the total arena size in bytes.
func (p *AtomicPool) Cap() int {
	return len(p.arena)
}
