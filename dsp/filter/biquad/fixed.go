package biquad

import (
	"errors"
	"math"
)

// fixedShift is the fractional bit count of the Q4.28 coefficient format.
const fixedShift = 28

// fixedOne is 1.0 in Q4.28.
const fixedOne = 1 << fixedShift

// ErrCoefficientRange is returned by QuantizeCoefficients when a coefficient
// falls outside the representable Q4.28 range of (-8, 8).
var ErrCoefficientRange = errors.New("biquad: coefficient outside fixed-point range")

// FixedCoefficients holds biquad coefficients quantized to signed Q4.28.
// a0 is normalized to 1 (fixedOne) and not stored.
type FixedCoefficients struct {
	B0, B1, B2 int32
	A1, A2     int32
}

// QuantizeCoefficients converts floating-point coefficients to Q4.28.
// Values are rounded to nearest; coefficients outside (-8, 8) cannot be
// represented and yield ErrCoefficientRange.
func QuantizeCoefficients(c Coefficients) (FixedCoefficients, error) {
	var fc FixedCoefficients
	var err error

	quant := func(v float64) int32 {
		if v >= 8 || v < -8 || math.IsNaN(v) {
			err = ErrCoefficientRange
			return 0
		}
		r := math.RoundToEven(v * fixedOne)
		// Values just below 8 can still round up to 2^31.
		if r > math.MaxInt32 || r < math.MinInt32 {
			err = ErrCoefficientRange
			return 0
		}
		return int32(r)
	}

	fc.B0 = quant(c.B0)
	fc.B1 = quant(c.B1)
	fc.B2 = quant(c.B2)
	fc.A1 = quant(c.A1)
	fc.A2 = quant(c.A2)

	if err != nil {
		return FixedCoefficients{}, err
	}
	return fc, nil
}

// Float returns the floating-point equivalent of the quantized coefficients.
func (fc FixedCoefficients) Float() Coefficients {
	return Coefficients{
		B0: float64(fc.B0) / fixedOne,
		B1: float64(fc.B1) / fixedOne,
		B2: float64(fc.B2) / fixedOne,
		A1: float64(fc.A1) / fixedOne,
		A2: float64(fc.A2) / fixedOne,
	}
}

// FixedSection is the integer twin of Section: a Direct Form I biquad over
// int32 samples with Q4.28 coefficients and a widened int64 accumulator, so
// intermediate products cannot overflow. Outputs saturate at the int32 range
// instead of wrapping.
//
// Like Section, a FixedSection is owned by exactly one goroutine and its
// processing methods never allocate and never fail.
type FixedSection struct {
	FixedCoefficients

	x1, x2 int32
	y1, y2 int32
}

// NewFixedSection returns a FixedSection with the given coefficients and
// zero state.
func NewFixedSection(fc FixedCoefficients) *FixedSection {
	return &FixedSection{FixedCoefficients: fc}
}

// ProcessSample filters one int32 sample and returns the output.
func (s *FixedSection) ProcessSample(x int32) int32 {
	acc := int64(s.B0)*int64(x) +
		int64(s.B1)*int64(s.x1) +
		int64(s.B2)*int64(s.x2) -
		int64(s.A1)*int64(s.y1) -
		int64(s.A2)*int64(s.y2)

	// Round to nearest before dropping the fractional bits.
	y := saturate32((acc + 1<<(fixedShift-1)) >> fixedShift)

	s.x2 = s.x1
	s.x1 = x
	s.y2 = s.y1
	s.y1 = y

	return y
}

// ProcessBlock filters a block of samples in-place. Zero-alloc, and
// bit-identical to sequential ProcessSample calls.
func (s *FixedSection) ProcessBlock(buf []int32) {
	for i, x := range buf {
		buf[i] = s.ProcessSample(x)
	}
}

// Reset clears the input/output history to zero.
func (s *FixedSection) Reset() {
	s.x1, s.x2 = 0, 0
	s.y1, s.y2 = 0, 0
}

func saturate32(v int64) int32 {
	if v > math.MaxInt32 {
		return math.MaxInt32
	}
	if v < math.MinInt32 {
		return math.MinInt32
	}
	return int32(v)
}
