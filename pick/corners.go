package pick

import "github.com/cwbudde/algo-seismic/waveform"

// Method identifies how a record's corner frequencies were selected.
type Method string

const (
	MethodConstant Method = "constant"
	MethodSNR      Method = "snr"
)

// CornerFrequencies is the per-record outcome of corner selection, stored on
// the record under [waveform.StageCornerFrequencies]. Highpass and Lowpass
// bound the frequency band over which the record is trustworthy.
type CornerFrequencies struct {
	Method   Method
	Highpass float64
	Lowpass  float64
}

// Corners returns the corner frequencies attached to rec, if any.
func Corners(rec *waveform.Record) (CornerFrequencies, bool) {
	v, ok := rec.Param(waveform.StageCornerFrequencies)
	if !ok {
		return CornerFrequencies{}, false
	}

	cf, ok := v.(CornerFrequencies)

	return cf, ok
}
