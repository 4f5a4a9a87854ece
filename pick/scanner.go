package pick

import (
	"errors"
	"math"

	"github.com/cwbudde/algo-seismic/dsp/spectral"
)

var ErrGridMismatch = errors.New("pick: signal and noise curves must share one frequency grid")

// Band is a frequency interval over which the signal exceeds the noise by at
// least the SNR threshold.
type Band struct {
	Low  float64
	High float64
}

// ScanCorners searches two spectra sharing a frequency grid for a band where
// (signal - noise) / noise stays at or above threshold.
//
// Walking the grid in ascending order, each upward threshold crossing opens a
// candidate band at that frequency and each downward crossing closes it. A
// band still open at the end of the grid is closed with the maximum grid
// frequency. A candidate (low, high) pair is valid when low <= maxLowFreq and
// high > minHighFreq; among valid pairs the last one found wins.
//
// ok is false when no candidate band was opened or no candidate pair is
// valid. Curves on differing grids violate the caller contract and return
// [ErrGridMismatch].
func ScanCorners(signal, noise spectral.Curve, threshold, maxLowFreq, minHighFreq float64) (Band, bool, error) {
	if !signal.SameGrid(noise) {
		return Band{}, false, ErrGridMismatch
	}

	denoised := make([]float64, signal.Len())
	for i := range denoised {
		denoised[i] = signal.Amps[i] - noise.Amps[i]
	}

	var lows, highs []float64

	inside := false

	for i, freq := range signal.Freqs {
		ratio := snrAt(denoised[i], noise.Amps[i])

		if !inside {
			if ratio >= threshold {
				lows = append(lows, freq)
				inside = true
			}
		} else if ratio < threshold {
			highs = append(highs, freq)
			inside = false
		}
	}

	if len(lows) == 0 {
		return Band{}, false, nil
	}

	if len(lows) > len(highs) {
		highs = append(highs, signal.MaxFreq())
	}

	var band Band

	found := false

	// A later valid pair replaces an earlier one.
	for i, low := range lows {
		if low <= maxLowFreq && highs[i] > minHighFreq {
			band = Band{Low: low, High: highs[i]}
			found = true
		}
	}

	return band, found, nil
}

// snrAt guards zero-amplitude noise bins: the ratio is +Inf there, which
// always passes the threshold, keeping degenerate spectra deterministic.
func snrAt(denoised, noise float64) float64 {
	if noise == 0 {
		return math.Inf(1)
	}

	return denoised / noise
}
