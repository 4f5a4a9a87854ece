package spectral

import (
	"fmt"
	"math"
)

// KonnoOhmachi applies Konno-Ohmachi smoothing to linear-domain spectral
// values: each output bin is the weighted average of all input bins with
// weight ((sin(b*log10(f/fc)) / (b*log10(f/fc)))^4, centered on the bin
// frequency fc. This suppresses narrow spectral peaks while preserving the
// broad spectrum shape.
//
// A bin at f = fc has weight 1. Bins where exactly one of f, fc is zero get
// weight 0, so the DC bin smooths only with itself.
//
// freqHz and values must have equal length and freqHz must be non-negative
// and ascending. bandwidth must be > 0.
func KonnoOhmachi(freqHz, values []float64, bandwidth float64) ([]float64, error) {
	if len(freqHz) == 0 || len(values) == 0 {
		return nil, fmt.Errorf("konno-ohmachi smoothing requires non-empty inputs")
	}

	if len(freqHz) != len(values) {
		return nil, fmt.Errorf("konno-ohmachi input length mismatch: %d != %d", len(freqHz), len(values))
	}

	if bandwidth <= 0 {
		return nil, fmt.Errorf("konno-ohmachi bandwidth must be > 0: %f", bandwidth)
	}

	for i := range freqHz {
		if freqHz[i] < 0 {
			return nil, fmt.Errorf("konno-ohmachi frequencies must be >= 0 at index %d", i)
		}

		if i > 0 && freqHz[i] < freqHz[i-1] {
			return nil, fmt.Errorf("konno-ohmachi frequencies must be ascending at index %d", i)
		}
	}

	out := make([]float64, len(values))

	for i, fc := range freqHz {
		var sum, weightSum float64

		for j, f := range freqHz {
			w := smoothingWeight(f, fc, bandwidth)
			sum += w * values[j]
			weightSum += w
		}

		if weightSum == 0 {
			out[i] = values[i]
			continue
		}

		out[i] = sum / weightSum
	}

	return out, nil
}

func smoothingWeight(f, fc, bandwidth float64) float64 {
	if f == fc {
		return 1
	}

	if f == 0 || fc == 0 {
		return 0
	}

	x := bandwidth * math.Log10(f/fc)

	s := math.Sin(x) / x
	s2 := s * s

	return s2 * s2
}
