// Package biquad provides biquad (second-order IIR) filter runtime primitives.
//
// A [Section] implements Direct Form I processing for a single second-order
// section defined by [Coefficients]. [Swap] hands a complete coefficient set
// from a control goroutine to the processing goroutine through one atomic
// pointer exchange. [FixedSection] is a parallel fixed-point pipeline for
// int32 sample streams. [Chain] cascades sections in series for multi-band
// equalizers and higher-order filters.
//
// This package provides the processing runtime only. Coefficient design
// (lowpass, shelving, peaking EQ, etc.) lives in dsp/filter/design.
package biquad
