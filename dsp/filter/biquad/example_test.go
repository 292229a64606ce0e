package biquad_test

import (
	"fmt"

	"github.com/cwbudde/algo-rtdsp/dsp/filter/biquad"
)

func ExampleSection_ProcessSample() {
	// Create a lowpass-like biquad section.
	s := biquad.NewSection(biquad.Coefficients{
		B0: 0.25, B1: 0.5, B2: 0.25,
		A1: -0.2, A2: 0.04,
	})

	// Process an impulse.
	for i := range 6 {
		var x float64
		if i == 0 {
			x = 1
		}

		y := s.ProcessSample(x)
		fmt.Printf("y[%d] = %.6f\n", i, y)
	}
	// Output:
	// y[0] = 0.250000
	// y[1] = 0.550000
	// y[2] = 0.350000
	// y[3] = 0.048000
	// y[4] = -0.004400
	// y[5] = -0.002800
}

func ExampleChain() {
	// Two half-gain sections in series: the magnitudes multiply, so the
	// combined response is -12 dB.
	c := biquad.NewChain(
		biquad.Coefficients{B0: 0.5},
		biquad.Coefficients{B0: 0.5},
	)

	fmt.Printf("%.2f\n", c.ProcessSample(1))
	fmt.Printf("%.2f\n", c.MagnitudeDB(1000, 48000))
	// Output:
	// 0.25
	// -12.04
}

func ExampleSwap() {
	// A control goroutine publishes complete coefficient sets; the
	// processing goroutine picks them up before each block.
	swap := biquad.NewSwap(biquad.Identity())
	swap.Store(biquad.Coefficients{B0: 0.5, B1: 0.5})

	s := biquad.NewSection(swap.Load())
	fmt.Printf("%.2f\n", s.ProcessSample(1))
	fmt.Printf("%.2f\n", s.ProcessSample(1))
	// Output:
	// 0.50
	// 1.00
}
