package design

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-rtdsp/dsp/filter/biquad"
)

// Type selects one of the classical second-order filter responses.
type Type int

const (
	TypeLowPass Type = iota
	TypeHighPass
	TypeBandPass
	TypeNotch
	TypeAllPass
	TypeLowShelf
	TypeHighShelf
	TypePeak
)

// String returns the canonical lowercase name of the filter type.
func (t Type) String() string {
	switch t {
	case TypeLowPass:
		return "lowpass"
	case TypeHighPass:
		return "highpass"
	case TypeBandPass:
		return "bandpass"
	case TypeNotch:
		return "notch"
	case TypeAllPass:
		return "allpass"
	case TypeLowShelf:
		return "lowshelf"
	case TypeHighShelf:
		return "highshelf"
	case TypePeak:
		return "peak"
	default:
		return fmt.Sprintf("Type(%d)", int(t))
	}
}

// ParseType maps a canonical type name to its Type value.
func ParseType(name string) (Type, error) {
	for t := TypeLowPass; t <= TypePeak; t++ {
		if t.String() == name {
			return t, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidType, name)
}

// Validation errors returned by Descriptor.Validate and FromDescriptor.
var (
	ErrInvalidType       = errors.New("design: unknown filter type")
	ErrInvalidFrequency  = errors.New("design: frequency must satisfy 0 < f < sampleRate/2")
	ErrInvalidQ          = errors.New("design: Q must be positive and finite")
	ErrInvalidSampleRate = errors.New("design: sample rate must be positive and finite")
)

// Descriptor is an immutable snapshot of the parameters a biquad is
// designed from. GainDB only affects the shelf and peak types.
type Descriptor struct {
	Type       Type
	Frequency  float64 // center/corner frequency in Hz
	Q          float64 // quality factor
	GainDB     float64 // shelf/peak gain in dB
	SampleRate float64 // Hz
}

// Validate checks the descriptor preconditions: a known type, a positive
// finite sample rate, 0 < Frequency < SampleRate/2 and Q > 0.
func (d Descriptor) Validate() error {
	if d.Type < TypeLowPass || d.Type > TypePeak {
		return fmt.Errorf("%w: %d", ErrInvalidType, int(d.Type))
	}

	if d.SampleRate <= 0 || math.IsNaN(d.SampleRate) || math.IsInf(d.SampleRate, 0) {
		return fmt.Errorf("%w: %v", ErrInvalidSampleRate, d.SampleRate)
	}

	nyquist := d.SampleRate / 2
	if d.Frequency <= 0 || d.Frequency >= nyquist ||
		math.IsNaN(d.Frequency) || math.IsInf(d.Frequency, 0) {
		return fmt.Errorf("%w: %v (sample rate %v)", ErrInvalidFrequency, d.Frequency, d.SampleRate)
	}

	if d.Q <= 0 || math.IsNaN(d.Q) || math.IsInf(d.Q, 0) {
		return fmt.Errorf("%w: %v", ErrInvalidQ, d.Q)
	}

	return nil
}

// FromDescriptor validates d and derives the normalized coefficient set.
// The five coefficients are always derived together from one snapshot,
// never patched individually.
func FromDescriptor(d Descriptor) (biquad.Coefficients, error) {
	if err := d.Validate(); err != nil {
		return biquad.Coefficients{}, err
	}

	switch d.Type {
	case TypeLowPass:
		return Lowpass(d.Frequency, d.Q, d.SampleRate), nil
	case TypeHighPass:
		return Highpass(d.Frequency, d.Q, d.SampleRate), nil
	case TypeBandPass:
		return Bandpass(d.Frequency, d.Q, d.SampleRate), nil
	case TypeNotch:
		return Notch(d.Frequency, d.Q, d.SampleRate), nil
	case TypeAllPass:
		return Allpass(d.Frequency, d.Q, d.SampleRate), nil
	case TypeLowShelf:
		return LowShelf(d.Frequency, d.GainDB, d.Q, d.SampleRate), nil
	case TypeHighShelf:
		return HighShelf(d.Frequency, d.GainDB, d.Q, d.SampleRate), nil
	case TypePeak:
		return Peak(d.Frequency, d.GainDB, d.Q, d.SampleRate), nil
	default:
		return biquad.Coefficients{}, fmt.Errorf("%w: %d", ErrInvalidType, int(d.Type))
	}
}
