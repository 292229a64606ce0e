// Package design derives biquad coefficients for the classical parametric
// filter responses (RBJ Audio EQ Cookbook formulas).
//
// A [Descriptor] is a validated, immutable snapshot of filter type,
// center frequency, Q, gain and sample rate; [FromDescriptor] turns it into
// a normalized biquad.Coefficients set. The individual design functions
// (Lowpass, Highpass, ...) are also exported for callers that manage their
// own parameter validation; those fall back to safe defaults instead of
// returning errors.
package design
