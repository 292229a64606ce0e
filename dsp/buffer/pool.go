package buffer

import "sync"

// Pool recycles Buffers through a sync.Pool so control-side scratch work
// stops allocating once warm. It is not for the processing path, which
// must use preallocated storage instead.
type Pool struct {
	pool sync.Pool
}

// NewPool returns an empty Pool.
func NewPool() *Pool {
	return &Pool{
		pool: sync.Pool{
			New: func() any { return &Buffer{} },
		},
	}
}

// Get returns a zeroed Buffer of the requested length. Return it with Put
// once done.
func (p *Pool) Get(length int) *Buffer {
	b := p.pool.Get().(*Buffer)
	b.Resize(length)
	b.Zero()
	return b
}

// Put hands b back for reuse. Putting nil is a no-op; using b after Put is
// a caller bug.
func (p *Pool) Put(b *Buffer) {
	if b == nil {
		return
	}
	p.pool.Put(b)
}
