package biquad

import "sync/atomic"

// Swap hands complete coefficient sets from a control goroutine to a
// processing goroutine. Store publishes a private copy through one atomic
// pointer exchange, so a concurrent Load observes either the previous set
// or the new one, never a partial update.
//
// Exactly one goroutine may call Store and any number may call Load.
type Swap struct {
	ptr atomic.Pointer[Coefficients]
}

// NewSwap returns a Swap holding the given initial coefficients.
func NewSwap(c Coefficients) *Swap {
	s := &Swap{}
	s.ptr.Store(&c)
	return s
}

// Store publishes a new coefficient set. Control context only.
func (s *Swap) Store(c Coefficients) {
	s.ptr.Store(&c)
}

// Load returns the most recently published coefficient set.
// Never allocates; safe from the audio context.
func (s *Swap) Load() Coefficients {
	if p := s.ptr.Load(); p != nil {
		return *p
	}
	return Identity()
}
