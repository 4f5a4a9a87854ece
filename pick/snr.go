package pick

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/cwbudde/algo-seismic/dsp/spectral"
	"github.com/cwbudde/algo-seismic/waveform"
)

// SNRConfig holds SNR picker parameters.
type SNRConfig struct {
	// Threshold is the minimum required SNR for a usable frequency band.
	Threshold float64
	// MaxLowFreq is the highest frequency at which a usable band may start.
	MaxLowFreq float64
	// MinHighFreq is the lowest frequency at which a usable band may end.
	MinHighFreq float64
	// Bandwidth is the Konno-Ohmachi bandwidth coefficient b.
	Bandwidth float64
	// Logger receives one informational event per rejected record.
	Logger zerolog.Logger
}

// DefaultSNRConfig returns the standard picker parameters.
func DefaultSNRConfig() SNRConfig {
	return SNRConfig{
		Threshold:   3.0,
		MaxLowFreq:  0.1,
		MinHighFreq: 5.0,
		Bandwidth:   20.0,
		Logger:      zerolog.Nop(),
	}
}

// SNROption mutates an SNRConfig.
type SNROption func(*SNRConfig)

// WithThreshold sets the minimum required SNR.
func WithThreshold(v float64) SNROption {
	return func(cfg *SNRConfig) {
		if v > 0 {
			cfg.Threshold = v
		}
	}
}

// WithMaxLowFreq sets the highest allowed band start frequency.
func WithMaxLowFreq(v float64) SNROption {
	return func(cfg *SNRConfig) {
		if v > 0 {
			cfg.MaxLowFreq = v
		}
	}
}

// WithMinHighFreq sets the lowest allowed band end frequency.
func WithMinHighFreq(v float64) SNROption {
	return func(cfg *SNRConfig) {
		if v > 0 {
			cfg.MinHighFreq = v
		}
	}
}

// WithBandwidth sets the Konno-Ohmachi bandwidth coefficient.
func WithBandwidth(v float64) SNROption {
	return func(cfg *SNRConfig) {
		if v > 0 {
			cfg.Bandwidth = v
		}
	}
}

// WithLogger sets the logger for rejection events.
func WithLogger(l zerolog.Logger) SNROption {
	return func(cfg *SNRConfig) {
		cfg.Logger = l
	}
}

// SNR selects per-record corner frequencies by comparing each record's
// smoothed signal amplitude spectrum against its noise spectrum. Each picker
// instance is pure given its configuration and inputs; there is no shared
// state across instances.
type SNR struct {
	cfg SNRConfig
}

// NewSNR creates an SNR picker. Defaults: threshold 3.0, max low frequency
// 0.1 Hz, min high frequency 5.0 Hz, bandwidth 20.0, no logging.
func NewSNR(opts ...SNROption) *SNR {
	cfg := DefaultSNRConfig()

	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return &SNR{cfg: cfg}
}

// Apply selects corner frequencies for every record in st, mutating it in
// place. Records with a qualifying band are annotated with
// [CornerFrequencies]; records without one are removed from the collection
// after the pass and logged. Every surviving record carries exactly one
// corner-frequency result.
//
// A record whose split time or windows violate the upstream contract aborts
// the pass with a hard error, since that indicates a pipeline bug rather
// than noisy data.
func (p *SNR) Apply(st *waveform.Collection) error {
	var rejected []*waveform.Record

	for _, rec := range st.Records() {
		band, ok, err := p.pick(rec)
		if err != nil {
			return fmt.Errorf("pick: record %s: %w", rec.ID, err)
		}

		if !ok {
			p.cfg.Logger.Info().
				Str("record", rec.ID).
				Msg("removing record: failed SNR check")

			rejected = append(rejected, rec)

			continue
		}

		rec.SetParam(waveform.StageCornerFrequencies, CornerFrequencies{
			Method:   MethodSNR,
			Highpass: band.Low,
			Lowpass:  band.High,
		})
	}

	// Removal is deferred so the scan never mutates what it iterates.
	for _, rec := range rejected {
		st.Remove(rec)
	}

	return nil
}

func (p *SNR) pick(rec *waveform.Record) (Band, bool, error) {
	noiseWin, signalWin, err := rec.SplitWindows()
	if err != nil {
		return Band{}, false, err
	}

	est, err := spectral.NewEstimator(rec.SampleRate, spectral.WithBandwidth(p.cfg.Bandwidth))
	if err != nil {
		return Band{}, false, err
	}

	// Both windows share one FFT size so the ratio is element-wise on an
	// identical frequency grid.
	fftSize := max(spectral.NextPow2(len(noiseWin)), spectral.NextPow2(len(signalWin)))

	noise, err := est.Estimate(noiseWin, fftSize)
	if err != nil {
		return Band{}, false, err
	}

	signal, err := est.Estimate(signalWin, fftSize)
	if err != nil {
		return Band{}, false, err
	}

	return ScanCorners(signal, noise, p.cfg.Threshold, p.cfg.MaxLowFreq, p.cfg.MinHighFreq)
}
