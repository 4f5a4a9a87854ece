package pick

import "github.com/cwbudde/algo-seismic/waveform"

// Constant assigns fixed configured corner frequencies to every record.
type Constant struct {
	Highpass float64
	Lowpass  float64
}

// NewConstant creates a constant picker with the given corner frequencies.
func NewConstant(highpass, lowpass float64) Constant {
	return Constant{Highpass: highpass, Lowpass: lowpass}
}

// Apply attaches the configured corners to every record in st,
// unconditionally. No record is ever rejected.
func (p Constant) Apply(st *waveform.Collection) {
	for _, rec := range st.Records() {
		rec.SetParam(waveform.StageCornerFrequencies, CornerFrequencies{
			Method:   MethodConstant,
			Highpass: p.Highpass,
			Lowpass:  p.Lowpass,
		})
	}
}
