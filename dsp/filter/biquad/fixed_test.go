package biquad

import (
	"errors"
	"math"
	"testing"
)

func TestQuantizeCoefficients_RoundTrip(t *testing.T) {
	c := Coefficients{B0: 0.25, B1: 0.5, B2: 0.25, A1: -0.2, A2: 0.04}

	fc, err := QuantizeCoefficients(c)
	if err != nil {
		t.Fatalf("QuantizeCoefficients: %v", err)
	}

	back := fc.Float()
	const tol = 1.0 / fixedOne
	for i, pair := range [][2]float64{
		{c.B0, back.B0}, {c.B1, back.B1}, {c.B2, back.B2},
		{c.A1, back.A1}, {c.A2, back.A2},
	} {
		if !almostEqual(pair[0], pair[1], tol) {
			t.Fatalf("coefficient %d: %v -> %v", i, pair[0], pair[1])
		}
	}
}

func TestQuantizeCoefficients_Range(t *testing.T) {
	tests := []struct {
		name string
		c    Coefficients
		ok   bool
	}{
		{name: "in-range", c: Coefficients{B0: 7.99, A1: -7.99}, ok: true},
		{name: "too-large", c: Coefficients{B0: 8}, ok: false},
		{name: "too-small", c: Coefficients{A2: -8.01}, ok: false},
		{name: "nan", c: Coefficients{B1: math.NaN()}, ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := QuantizeCoefficients(tt.c)
			if tt.ok && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !tt.ok && !errors.Is(err, ErrCoefficientRange) {
				t.Fatalf("err = %v, want ErrCoefficientRange", err)
			}
		})
	}
}

func TestFixedSection_Passthrough(t *testing.T) {
	s := NewFixedSection(FixedCoefficients{B0: fixedOne})
	for i, x := range []int32{1, -1, 1 << 20, math.MaxInt32, math.MinInt32} {
		if y := s.ProcessSample(x); y != x {
			t.Fatalf("sample %d: got %d, want %d", i, y, x)
		}
	}
}

func TestFixedSection_MatchesFloat(t *testing.T) {
	c := Coefficients{B0: 0.25, B1: 0.5, B2: 0.25, A1: -0.2, A2: 0.04}

	fc, err := QuantizeCoefficients(c)
	if err != nil {
		t.Fatalf("QuantizeCoefficients: %v", err)
	}

	fixed := NewFixedSection(fc)
	ref := NewSection(c)

	const amplitude = 1 << 20
	const n = 512
	// Per-sample rounding plus coefficient quantization stays far below
	// this for a well-damped filter.
	const tol = 64.0

	for i := range n {
		x := int32(amplitude * math.Sin(2*math.Pi*float64(i)/64))

		got := float64(fixed.ProcessSample(x))
		want := ref.ProcessSample(float64(x))

		if math.Abs(got-want) > tol {
			t.Fatalf("sample %d: fixed %v, float %v", i, got, want)
		}
	}
}

func TestFixedSection_BlockMatchesSample(t *testing.T) {
	fc, err := QuantizeCoefficients(Coefficients{B0: 0.25, B1: 0.5, B2: 0.25, A1: -0.2, A2: 0.04})
	if err != nil {
		t.Fatalf("QuantizeCoefficients: %v", err)
	}

	input := make([]int32, 128)
	for i := range input {
		input[i] = int32((i*7919)%4096 - 2048)
	}

	s1 := NewFixedSection(fc)
	ref := make([]int32, len(input))
	for i, x := range input {
		ref[i] = s1.ProcessSample(x)
	}

	s2 := NewFixedSection(fc)
	block := make([]int32, len(input))
	copy(block, input)
	s2.ProcessBlock(block)

	for i := range block {
		if block[i] != ref[i] {
			t.Fatalf("sample %d: block %d != sample %d", i, block[i], ref[i])
		}
	}
}

func TestFixedSection_Saturates(t *testing.T) {
	// Gain of 4 drives a full-scale input far past the int32 range.
	s := NewFixedSection(FixedCoefficients{B0: 4 * fixedOne})

	if y := s.ProcessSample(math.MaxInt32); y != math.MaxInt32 {
		t.Fatalf("positive overflow: got %d, want MaxInt32", y)
	}

	s.Reset()
	if y := s.ProcessSample(math.MinInt32); y != math.MinInt32 {
		t.Fatalf("negative overflow: got %d, want MinInt32", y)
	}
}

func TestFixedSection_Reset(t *testing.T) {
	fc, _ := QuantizeCoefficients(Coefficients{B0: 0.5, B1: 0.5})
	s := NewFixedSection(fc)

	first := s.ProcessSample(1 << 16)
	s.ProcessSample(1 << 10)

	s.Reset()
	if got := s.ProcessSample(1 << 16); got != first {
		t.Fatalf("after reset: got %d, want %d", got, first)
	}
}
