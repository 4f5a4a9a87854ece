package spectral

import (
	"errors"
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-seismic/dsp/taper"
)

var ErrEmptyWindow = errors.New("spectral: window must not be empty")

// Config holds spectral estimation parameters.
type Config struct {
	SampleRate    float64
	Bandwidth     float64
	TaperFraction float64
}

// Option mutates a Config.
type Option func(*Config)

// WithBandwidth sets the Konno-Ohmachi bandwidth coefficient b.
func WithBandwidth(b float64) Option {
	return func(cfg *Config) {
		if b > 0 {
			cfg.Bandwidth = b
		}
	}
}

// WithTaperFraction sets the fractional Hann taper width per window edge.
func WithTaperFraction(v float64) Option {
	return func(cfg *Config) {
		if v >= 0 && v <= 0.5 {
			cfg.TaperFraction = v
		}
	}
}

// Estimator turns time windows into smoothed amplitude spectra on the
// one-sided FFT frequency grid.
type Estimator struct {
	cfg Config
}

// NewEstimator creates an estimator for windows sampled at sampleRate Hz.
// Defaults: Konno-Ohmachi bandwidth 20, taper fraction 0.05.
func NewEstimator(sampleRate float64, opts ...Option) (*Estimator, error) {
	if sampleRate <= 0 {
		return nil, fmt.Errorf("spectral: sample rate must be > 0: %f", sampleRate)
	}

	cfg := Config{
		SampleRate:    sampleRate,
		Bandwidth:     20,
		TaperFraction: taper.DefaultFraction,
	}

	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return &Estimator{cfg: cfg}, nil
}

// Estimate computes the smoothed amplitude spectrum of window.
//
// The window is Hann-tapered at both edges, zero-padded (or truncated) to
// fftSize samples, and transformed. Bin magnitudes are normalized by fftSize
// and smoothed with Konno-Ohmachi smoothing. The returned curve holds
// fftSize/2+1 bins on the grid f_i = i*sampleRate/fftSize, so two windows
// estimated with the same fftSize share an identical grid regardless of their
// original lengths.
//
// An empty window is a caller contract violation and returns
// [ErrEmptyWindow].
func (e *Estimator) Estimate(window []float64, fftSize int) (Curve, error) {
	if len(window) == 0 {
		return Curve{}, ErrEmptyWindow
	}

	if fftSize < 1 {
		return Curve{}, fmt.Errorf("spectral: fft size must be >= 1: %d", fftSize)
	}

	tapered := append([]float64(nil), window...)
	taper.Apply(tapered, taper.WithFraction(e.cfg.TaperFraction))

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return Curve{}, fmt.Errorf("spectral: failed to create FFT plan: %w", err)
	}

	padded := make([]complex128, fftSize)

	n := len(tapered)
	if n > fftSize {
		n = fftSize
	}

	for i := 0; i < n; i++ {
		padded[i] = complex(tapered[i], 0)
	}

	bins := make([]complex128, fftSize)
	if err := plan.Forward(bins, padded); err != nil {
		return Curve{}, fmt.Errorf("spectral: forward FFT failed: %w", err)
	}

	// One-sided spectrum: bins 0 (DC) through Nyquist.
	binCount := fftSize/2 + 1

	re := make([]float64, binCount)
	im := make([]float64, binCount)

	for i := 0; i < binCount; i++ {
		re[i] = real(bins[i])
		im[i] = imag(bins[i])
	}

	mags := make([]float64, binCount)
	vecmath.Magnitude(mags, re, im)

	amps := make([]float64, binCount)
	vecmath.ScaleBlock(amps, mags, 1/float64(fftSize))

	freqs := make([]float64, binCount)

	step := e.cfg.SampleRate / float64(fftSize)
	for i := range freqs {
		freqs[i] = float64(i) * step
	}

	smoothed, err := KonnoOhmachi(freqs, amps, e.cfg.Bandwidth)
	if err != nil {
		return Curve{}, err
	}

	return Curve{Freqs: freqs, Amps: smoothed}, nil
}

// NextPow2 returns the smallest power of two greater than or equal to n.
func NextPow2(n int) int {
	if n <= 1 {
		return 1
	}

	p := 1
	for p < n {
		p <<= 1
	}

	return p
}
