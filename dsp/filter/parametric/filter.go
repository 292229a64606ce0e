package parametric

import (
	"sync"
	"sync/atomic"

	"github.com/cwbudde/algo-rtdsp/dsp/filter/biquad"
	"github.com/cwbudde/algo-rtdsp/dsp/filter/design"
)

// Filter is a parametric biquad filter whose response can be reconfigured
// while audio is running.
//
// Configure, Descriptor and Response may be called from any goroutine.
// ProcessSample, ProcessBlock, ProcessBlockTo and Reset belong to the single
// processing goroutine; they pick up the most recently published coefficient
// set and are allocation-free.
type Filter struct {
	swap         biquad.Swap
	resetPending atomic.Bool

	mu   sync.Mutex
	desc design.Descriptor

	section biquad.Section // owned by the processing goroutine
}

// New creates a Filter from the given descriptor.
// Returns a design validation error if the descriptor is out of range.
func New(d design.Descriptor) (*Filter, error) {
	f := &Filter{}
	if err := f.Configure(d); err != nil {
		return nil, err
	}
	return f, nil
}

// Configure validates d, derives the five coefficients as one unit and
// publishes them atomically. On error the previous configuration stays
// active untouched. Control context only; a sample-rate change schedules a
// state reset that the processing goroutine applies before its next sample.
func (f *Filter) Configure(d design.Descriptor) error {
	coeffs, err := design.FromDescriptor(d)
	if err != nil {
		return err
	}

	f.mu.Lock()
	if f.desc.SampleRate != 0 && f.desc.SampleRate != d.SampleRate {
		f.resetPending.Store(true)
	}
	f.desc = d
	f.mu.Unlock()

	f.swap.Store(coeffs)

	return nil
}

// Descriptor returns a snapshot of the most recently accepted configuration.
func (f *Filter) Descriptor() design.Descriptor {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.desc
}

// Coefficients returns the currently published coefficient set.
func (f *Filter) Coefficients() biquad.Coefficients {
	return f.swap.Load()
}

// ProcessSample filters one sample. Never allocates, never fails.
func (f *Filter) ProcessSample(x float64) float64 {
	f.sync()
	return f.section.ProcessSample(x)
}

// ProcessBlock filters a block of samples in-place. The coefficient set is
// picked up once at the block boundary; the output is bit-identical to
// per-sample processing of the same block.
func (f *Filter) ProcessBlock(buf []float64) {
	f.sync()
	f.section.ProcessBlock(buf)
}

// ProcessBlockTo filters src into dst. Both slices must have the same length.
func (f *Filter) ProcessBlockTo(dst, src []float64) {
	f.sync()
	f.section.ProcessBlockTo(dst, src)
}

// Reset zeroes the filter history. Coefficients are unaffected.
// Processing goroutine only.
func (f *Filter) Reset() {
	f.resetPending.Store(false)
	f.section.Reset()
}

// sync pulls pending control-side changes into the processing-side section.
func (f *Filter) sync() {
	if f.resetPending.CompareAndSwap(true, false) {
		f.section.Reset()
	}
	f.section.Coefficients = f.swap.Load()
}

// Response evaluates the complex transfer function at freq (Hz) using the
// currently published coefficients and the configured sample rate. Safe from
// any goroutine; a call concurrent with Configure sees either the old or the
// new coefficient set, never a mixture.
func (f *Filter) Response(freq float64) complex128 {
	c := f.swap.Load()

	f.mu.Lock()
	sampleRate := f.desc.SampleRate
	f.mu.Unlock()

	return c.Response(freq, sampleRate)
}

// MagnitudeDB returns the magnitude response in dB at freq (Hz).
func (f *Filter) MagnitudeDB(freq float64) float64 {
	c := f.swap.Load()

	f.mu.Lock()
	sampleRate := f.desc.SampleRate
	f.mu.Unlock()

	return c.MagnitudeDB(freq, sampleRate)
}
