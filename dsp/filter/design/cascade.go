package design

import (
	"fmt"

	"github.com/cwbudde/algo-rtdsp/dsp/filter/biquad"
)

// Cascade derives one coefficient set per descriptor, in order, for use
// with biquad.NewChain. A typical multi-band equalizer combines a
// highpass band, several peak bands and a lowpass band this way.
//
// The first invalid descriptor aborts the whole cascade; bands are
// never designed from a partially valid parameter set.
func Cascade(bands ...Descriptor) ([]biquad.Coefficients, error) {
	if len(bands) == 0 {
		return nil, nil
	}

	coeffs := make([]biquad.Coefficients, len(bands))
	for i, d := range bands {
		c, err := FromDescriptor(d)
		if err != nil {
			return nil, fmt.Errorf("band %d: %w", i, err)
		}
		coeffs[i] = c
	}
	return coeffs, nil
}
