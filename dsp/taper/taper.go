// Package taper applies Hann-shaped edge tapers to time windows before
// spectral estimation, limiting leakage from the window edges.
package taper

import (
	"math"

	"github.com/cwbudde/algo-vecmath"
)

// Side controls which edge(s) of the window are tapered.
type Side int

const (
	SideBoth Side = iota
	SideLeft
	SideRight
)

// DefaultFraction is the fractional taper width per edge.
const DefaultFraction = 0.05

// Option configures taper generation.
type Option func(*config)

type config struct {
	fraction float64
	side     Side
}

func defaultConfig() config {
	return config{
		fraction: DefaultFraction,
		side:     SideBoth,
	}
}

// WithFraction sets the fractional taper width per edge, clamped to [0, 0.5].
func WithFraction(v float64) Option {
	return func(c *config) {
		if v >= 0 && v <= 0.5 {
			c.fraction = v
		}
	}
}

// WithSide configures which edge(s) are tapered.
func WithSide(s Side) Option {
	return func(c *config) {
		c.side = s
	}
}

// Coefficients returns multiplicative taper coefficients of the given length.
// Coefficients ramp from 0 at a tapered edge to 1 over fraction*length
// samples following a raised-cosine (Hann) shape, and are 1 elsewhere.
func Coefficients(length int, opts ...Option) []float64 {
	if length <= 0 {
		return nil
	}

	cfg := defaultConfig()

	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	out := make([]float64, length)
	for i := range out {
		out[i] = 1
	}

	width := int(cfg.fraction * float64(length))
	if width == 0 {
		return out
	}

	for i := 0; i < width; i++ {
		ramp := 0.5 * (1 - math.Cos(math.Pi*float64(i)/float64(width)))

		if cfg.side != SideRight {
			out[i] *= ramp
		}

		if cfg.side != SideLeft {
			out[length-1-i] *= ramp
		}
	}

	return out
}

// Apply multiplies buf in place by the taper coefficients for its length.
// An empty buf is a no-op.
func Apply(buf []float64, opts ...Option) {
	if len(buf) == 0 {
		return
	}

	coeffs := Coefficients(len(buf), opts...)

	vecmath.MulBlockInPlace(buf, coeffs)
}
