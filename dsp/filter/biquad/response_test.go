package biquad

import (
	"math"
	"math/cmplx"
	"testing"
)

func TestResponse_PassthroughIsUnity(t *testing.T) {
	c := passthrough()
	for _, f := range []float64{0, 100, 1000, 10000, 22049} {
		h := c.Response(f, 44100)
		if !almostEqual(cmplx.Abs(h), 1, 1e-12) {
			t.Fatalf("|H(%v)| = %v, want 1", f, cmplx.Abs(h))
		}
	}
}

func TestResponse_TwoTapAverage(t *testing.T) {
	// H(z) = 0.5*(1 + z^-1): unity at DC, zero at Nyquist.
	c := simpleLowpass()

	if got := cmplx.Abs(c.Response(0, 48000)); !almostEqual(got, 1, 1e-12) {
		t.Fatalf("|H(0)| = %v, want 1", got)
	}
	if got := cmplx.Abs(c.Response(24000, 48000)); !almostEqual(got, 0, 1e-12) {
		t.Fatalf("|H(Nyquist)| = %v, want 0", got)
	}
}

func TestMagnitudeSquared_MatchesResponse(t *testing.T) {
	c := Coefficients{B0: 0.25, B1: 0.5, B2: 0.25, A1: -0.2, A2: 0.04}
	const sampleRate = 44100.0

	for _, f := range []float64{1, 20, 100, 440, 1000, 5000, 12000, 22000} {
		direct := c.MagnitudeSquared(f, sampleRate)
		viaComplex := cmplx.Abs(c.Response(f, sampleRate))
		viaComplex *= viaComplex

		if !almostEqual(direct, viaComplex, 1e-10) {
			t.Fatalf("f=%v: closed-form %v, complex %v", f, direct, viaComplex)
		}
	}
}

func TestMagnitudeDB(t *testing.T) {
	c := passthrough()
	if db := c.MagnitudeDB(1000, 44100); !almostEqual(db, 0, 1e-10) {
		t.Fatalf("passthrough magnitude = %v dB, want 0", db)
	}

	half := Coefficients{B0: 0.5}
	if db := half.MagnitudeDB(1000, 44100); !almostEqual(db, -6.0206, 1e-3) {
		t.Fatalf("half-gain magnitude = %v dB, want about -6.02", db)
	}
}

func TestResponse_HandComputedValue(t *testing.T) {
	// At 1 kHz with a 48 kHz rate, w = pi/24. Evaluating
	// (0.2 + 0.3*e^{jw} + 0.1*e^{2jw}) / (1 - 0.5*e^{jw} + 0.2*e^{2jw})
	// by hand gives 0.849573 + 0.109695i.
	c := Coefficients{B0: 0.2, B1: 0.3, B2: 0.1, A1: -0.5, A2: 0.2}

	h := c.Response(1000, 48000)
	if !almostEqual(real(h), 0.849573, 1e-4) || !almostEqual(imag(h), 0.109695, 1e-4) {
		t.Fatalf("H = %v, want 0.849573+0.109695i", h)
	}
}

func TestPhase_PositiveExponentConvention(t *testing.T) {
	// H(z) = 0.5*(1 + z^-1) has phase +w/2 when the polynomials are
	// evaluated at e^{jw}.
	c := simpleLowpass()

	w := 2 * math.Pi * 1000 / 48000
	if p := c.Phase(1000, 48000); !almostEqual(p, w/2, 1e-12) {
		t.Fatalf("phase = %v, want %v", p, w/2)
	}
}

func TestPhase_ZeroAtDCForLowpass(t *testing.T) {
	c := simpleLowpass()
	if p := c.Phase(0, 48000); !almostEqual(p, 0, 1e-12) {
		t.Fatalf("phase at DC = %v, want 0", p)
	}
}

func TestImpulseResponse(t *testing.T) {
	c := Coefficients{B0: 0.25, B1: 0.5, B2: 0.25, A1: -0.2, A2: 0.04}
	s := NewSection(c)

	ir := s.ImpulseResponse(4)
	want := []float64{0.25, 0.55, 0.35, 0.048}
	for i := range want {
		if !almostEqual(ir[i], want[i], eps) {
			t.Fatalf("h[%d] = %v, want %v", i, ir[i], want[i])
		}
	}

	if s.ImpulseResponse(0) != nil {
		t.Fatal("expected nil for n <= 0")
	}
}

func TestImpulseResponse_PreservesState(t *testing.T) {
	s := NewSection(simpleLowpass())
	s.ProcessSample(1)
	s.ProcessSample(0.5)

	before := s.State()
	s.ImpulseResponse(16)
	after := s.State()

	if before != after {
		t.Fatalf("state changed: %v -> %v", before, after)
	}
}

func TestImpulseResponse_SumMatchesDCGain(t *testing.T) {
	// For a stable filter the impulse response sum converges to H(0).
	c := Coefficients{B0: 0.25, B1: 0.5, B2: 0.25, A1: -0.2, A2: 0.04}
	s := NewSection(c)

	ir := s.ImpulseResponse(512)
	sum := 0.0
	for _, v := range ir {
		sum += v
	}

	dc := cmplx.Abs(c.Response(0, 48000))
	if !almostEqual(sum, dc, 1e-9) {
		t.Fatalf("sum(h) = %v, |H(0)| = %v", sum, dc)
	}
}
