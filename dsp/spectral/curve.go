package spectral

// Curve is a one-sided amplitude spectrum sampled on an ascending frequency
// grid. Freqs and Amps always have equal length. Curves are value types
// produced fresh per window; nothing shares their backing slices.
type Curve struct {
	Freqs []float64
	Amps  []float64
}

// Len returns the number of frequency bins.
func (c Curve) Len() int {
	return len(c.Freqs)
}

// MaxFreq returns the highest grid frequency, or 0 for an empty curve.
func (c Curve) MaxFreq() float64 {
	if len(c.Freqs) == 0 {
		return 0
	}

	return c.Freqs[len(c.Freqs)-1]
}

// SameGrid reports whether both curves are sampled on an identical frequency
// grid (same length and same bin frequencies).
func (c Curve) SameGrid(other Curve) bool {
	if len(c.Freqs) != len(other.Freqs) {
		return false
	}

	for i := range c.Freqs {
		if c.Freqs[i] != other.Freqs[i] {
			return false
		}
	}

	return true
}
