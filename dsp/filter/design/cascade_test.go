package design

import (
	"errors"
	"testing"

	"github.com/cwbudde/algo-rtdsp/dsp/core"
	"github.com/cwbudde/algo-rtdsp/dsp/filter/biquad"
)

func eqBands() []Descriptor {
	return []Descriptor{
		{Type: TypeHighPass, Frequency: 80, Q: defaultQ, SampleRate: 48000},
		{Type: TypePeak, Frequency: 250, Q: 1, GainDB: -3, SampleRate: 48000},
		{Type: TypePeak, Frequency: 1000, Q: 1, GainDB: 4, SampleRate: 48000},
		{Type: TypeLowPass, Frequency: 12000, Q: defaultQ, SampleRate: 48000},
	}
}

func TestCascade_MatchesFromDescriptor(t *testing.T) {
	bands := eqBands()

	coeffs, err := Cascade(bands...)
	if err != nil {
		t.Fatalf("Cascade: %v", err)
	}
	if len(coeffs) != len(bands) {
		t.Fatalf("len = %d, want %d", len(coeffs), len(bands))
	}

	for i, d := range bands {
		want, err := FromDescriptor(d)
		if err != nil {
			t.Fatalf("band %d: %v", i, err)
		}
		if coeffs[i] != want {
			t.Fatalf("band %d: got %+v, want %+v", i, coeffs[i], want)
		}
	}
}

func TestCascade_Empty(t *testing.T) {
	coeffs, err := Cascade()
	if err != nil {
		t.Fatalf("Cascade: %v", err)
	}
	if coeffs != nil {
		t.Fatalf("coeffs = %v, want nil", coeffs)
	}
}

func TestCascade_InvalidBandAborts(t *testing.T) {
	bands := eqBands()
	bands[2].Frequency = -1

	coeffs, err := Cascade(bands...)
	if !errors.Is(err, ErrInvalidFrequency) {
		t.Fatalf("err = %v, want ErrInvalidFrequency", err)
	}
	if coeffs != nil {
		t.Fatalf("coeffs = %v, want nil on error", coeffs)
	}
}

func TestCascade_CombinedPeakGain(t *testing.T) {
	// A chain built from the cascade reports the sum of the per-band
	// gains in dB at every frequency.
	bands := eqBands()

	coeffs, err := Cascade(bands...)
	if err != nil {
		t.Fatalf("Cascade: %v", err)
	}
	chain := biquad.NewChain(coeffs...)

	for _, f := range []float64{50, 250, 1000, 4000, 16000} {
		sum := 0.0
		for i := range coeffs {
			sum += coeffs[i].MagnitudeDB(f, 48000)
		}
		if got := chain.MagnitudeDB(f, 48000); !core.NearlyEqual(got, sum, 1e-9) {
			t.Fatalf("f=%v: chain %v dB, bands sum %v dB", f, got, sum)
		}
	}
}
