package biquad

import (
	"math/cmplx"

	"github.com/cwbudde/algo-rtdsp/dsp/core"
)

// Chain is an ordered cascade of biquad sections processed in series.
// Multi-band equalizers and higher-order filters are built this way:
// each section's output feeds the next, and the overall transfer
// function is the product of the per-section transfer functions.
//
// Like Section, a Chain is owned by exactly one goroutine.
type Chain struct {
	sections []Section
}

// NewChain creates a cascade with one Section per coefficient set, all
// with zero state. An empty chain passes input through unchanged.
func NewChain(coeffs ...Coefficients) *Chain {
	c := &Chain{sections: make([]Section, len(coeffs))}
	for i := range coeffs {
		c.sections[i].Coefficients = coeffs[i]
	}
	return c
}

// ProcessSample cascades one input sample through all sections in order.
func (c *Chain) ProcessSample(x float64) float64 {
	for i := range c.sections {
		x = c.sections[i].ProcessSample(x)
	}
	return x
}

// ProcessBlock filters a block of samples in-place through the full
// cascade. Zero-alloc.
func (c *Chain) ProcessBlock(buf []float64) {
	for i := range c.sections {
		c.sections[i].ProcessBlock(buf)
	}
}

// ProcessBlockTo filters src into dst through the full cascade. Both
// slices must have the same length. Zero-alloc.
func (c *Chain) ProcessBlockTo(dst, src []float64) {
	if len(c.sections) == 0 {
		copy(dst, src)
		return
	}

	c.sections[0].ProcessBlockTo(dst, src)
	for i := 1; i < len(c.sections); i++ {
		c.sections[i].ProcessBlock(dst[:len(src)])
	}
}

// Reset clears the state of every section. Coefficients are unaffected.
func (c *Chain) Reset() {
	for i := range c.sections {
		c.sections[i].Reset()
	}
}

// NumSections returns the number of biquad sections in the cascade.
func (c *Chain) NumSections() int {
	return len(c.sections)
}

// Order returns the total filter order, two per section.
func (c *Chain) Order() int {
	return 2 * len(c.sections)
}

// Section returns the i-th section for inspection or modification, or
// nil when i is out of range.
func (c *Chain) Section(i int) *Section {
	if i < 0 || i >= len(c.sections) {
		return nil
	}
	return &c.sections[i]
}

// UpdateCoefficients replaces the coefficients of the whole cascade.
// When the section count is unchanged the delay-line state of each
// section is preserved, avoiding the output discontinuity of restarting
// from zero state. When the count changes the sections are rebuilt with
// zero state.
func (c *Chain) UpdateCoefficients(coeffs []Coefficients) {
	if len(coeffs) == len(c.sections) {
		for i := range c.sections {
			c.sections[i].Coefficients = coeffs[i]
		}
		return
	}

	c.sections = make([]Section, len(coeffs))
	for i := range coeffs {
		c.sections[i].Coefficients = coeffs[i]
	}
}

// Response returns the combined complex frequency response of the
// cascade: the product of the per-section responses.
func (c *Chain) Response(freqHz, sampleRate float64) complex128 {
	h := complex(1, 0)
	for i := range c.sections {
		h *= c.sections[i].Response(freqHz, sampleRate)
	}
	return h
}

// MagnitudeDB returns the combined magnitude response of the cascade
// in dB.
func (c *Chain) MagnitudeDB(freqHz, sampleRate float64) float64 {
	return core.LinearToDB(cmplx.Abs(c.Response(freqHz, sampleRate)))
}
