// Package parametric provides a runtime-configurable biquad filter engine.
//
// A [Filter] couples coefficient design (dsp/filter/design) with the
// Direct Form I runtime (dsp/filter/biquad) and splits its API across two
// execution contexts: Configure runs on a control goroutine and publishes
// each newly derived coefficient set through one atomic pointer exchange,
// while ProcessSample/ProcessBlock/Reset run on the processing goroutine
// and never allocate, block, or fail.
package parametric
