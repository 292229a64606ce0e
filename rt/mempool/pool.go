package mempool

import (
	"errors"
	"sync"
)

// ErrInvalidSize is returned by constructors for non-positive arena sizes.
var ErrInvalidSize = errors.New("mempool: arena size must be positive")

// DefaultAlign is used when an allocation passes alignment 0. It matches
// the strictest alignment of the primitive numeric types.
const DefaultAlign = 8

// Allocator hands out aligned byte spans from a fixed-capacity region.
// A nil return means the region is exhausted (or the arguments were
// invalid); callers must handle it, typically by falling back to a
// pre-sized buffer or skipping the work.
type Allocator interface {
	Alloc(size, align int) []byte
}

// Pool is a mutex-guarded bump arena. Alloc and Reset may be called from
// any goroutine, but the lock makes it suitable only for control-context
// or warm-up allocation; use AtomicPool where a deadline-bound goroutine
// can reach the allocation.
type Pool struct {
	mu    sync.Mutex
	arena []byte
	off   int
}

// New creates a Pool backed by a fresh arena of size bytes.
func New(size int) (*Pool, error) {
	if size <= 0 {
		return nil, ErrInvalidSize
	}
	return &Pool{arena: make([]byte, size)}, nil
}

// Alloc returns a size-byte span aligned to align (a power of two;
// 0 means DefaultAlign), or nil when the remaining arena cannot fit it.
// The span stays valid until the next Reset.
func (p *Pool) Alloc(size, align int) []byte {
	if size <= 0 || !validAlign(&align) {
		return nil
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	aligned := alignUp(p.off, align)
	if aligned+size > len(p.arena) {
		return nil // exhausted
	}

	p.off = aligned + size

	return p.arena[aligned:p.off:p.off]
}

// Reset rewinds the arena, invalidating every span handed out so far.
// The caller must guarantee no outstanding span is still in use.
func (p *Pool) Reset() {
	p.mu.Lock()
	p.off = 0
	p.mu.Unlock()
}

// BytesUsed returns the number of arena bytes consumed, including
// alignment padding.
func (p *Pool) BytesUsed() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.off
}

// BytesAvailable returns the number of arena bytes still allocatable
// (before alignment padding).
func (p *Pool) BytesAvailable() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.arena) - p.off
}

// Cap returns the total arena size in bytes.
func (p *Pool) Cap() int {
	return len(p.arena)
}

func validAlign(align *int) bool {
	if *align == 0 {
		*align = DefaultAlign
	}
	return *align > 0 && *align&(*align-1) == 0
}

func alignUp(off, align int) int {
	return (off + align - 1) &^ (align - 1)
}
