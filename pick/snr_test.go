package pick

import (
	"bytes"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-seismic/internal/testutil"
	"github.com/cwbudde/algo-seismic/waveform"
)

// quietRecord has a silent noise window followed by a strong sine, the
// cleanest possible pick: SNR is infinite everywhere.
func quietRecord(id string) *waveform.Record {
	data := make([]float64, 0, 2001)
	data = append(data, make([]float64, 1000)...)
	data = append(data, testutil.DeterministicSine(5, 100, 1.0, 1001)...)

	rec := &waveform.Record{
		ID:         id,
		SampleRate: 100,
		StartTime:  testutil.RecordStart,
		Data:       data,
	}
	rec.SetSplitTime(testutil.RecordStart.Add(10 * time.Second))

	return rec
}

// noisyRecord repeats the same noise pattern in both windows, so the signal
// spectrum equals the noise spectrum and the SNR is zero everywhere.
func noisyRecord(id string) *waveform.Record {
	pattern := testutil.DeterministicNoise(3, 1.0, 500)

	data := make([]float64, 1001)
	for i := range data {
		data[i] = pattern[i%500]
	}

	rec := &waveform.Record{
		ID:         id,
		SampleRate: 100,
		StartTime:  testutil.RecordStart,
		Data:       data,
	}
	rec.SetSplitTime(testutil.RecordStart.Add(5 * time.Second))

	return rec
}

func TestSNRDefaults(t *testing.T) {
	cfg := DefaultSNRConfig()

	assert.Equal(t, 3.0, cfg.Threshold)
	assert.Equal(t, 0.1, cfg.MaxLowFreq)
	assert.Equal(t, 5.0, cfg.MinHighFreq)
	assert.Equal(t, 20.0, cfg.Bandwidth)
}

func TestSNRAcceptsCleanRecord(t *testing.T) {
	rec := quietRecord("CI.CLC.HNZ")
	st := waveform.NewCollection(rec)

	require.NoError(t, NewSNR().Apply(st))
	require.Equal(t, 1, st.Len())

	cf, ok := Corners(rec)
	require.True(t, ok, "surviving record must carry corner frequencies")

	assert.Equal(t, MethodSNR, cf.Method)
	// Silent noise window: the band spans the whole grid, DC to Nyquist.
	assert.Equal(t, 0.0, cf.Highpass)
	assert.Equal(t, 50.0, cf.Lowpass)
}

func TestSNRRejectsNoisyRecord(t *testing.T) {
	var buf bytes.Buffer

	keep := quietRecord("CI.CLC.HNZ")
	drop := noisyRecord("CI.TOW2.HNE")

	st := waveform.NewCollection(keep, drop)

	picker := NewSNR(WithLogger(zerolog.New(&buf)))
	require.NoError(t, picker.Apply(st))

	require.Equal(t, 1, st.Len(), "collection must shrink by exactly one")
	assert.Same(t, keep, st.Records()[0])

	_, ok := Corners(drop)
	assert.False(t, ok, "rejected record must carry no corner frequencies")

	assert.Contains(t, buf.String(), "CI.TOW2.HNE")
	assert.Contains(t, buf.String(), "failed SNR check")
}

func TestSNRMissingSplitTimeIsHardError(t *testing.T) {
	rec := &waveform.Record{
		ID:         "CI.CLC.HNZ",
		SampleRate: 100,
		StartTime:  testutil.RecordStart,
		Data:       testutil.Ones(1000),
	}

	st := waveform.NewCollection(rec)

	err := NewSNR().Apply(st)
	require.ErrorIs(t, err, waveform.ErrNoSplitTime)

	// A pipeline bug must not silently drop records.
	assert.Equal(t, 1, st.Len())
}

func TestSNRSplitOutOfRangeIsHardError(t *testing.T) {
	rec := quietRecord("CI.CLC.HNZ")
	rec.SetSplitTime(testutil.RecordStart.Add(time.Hour))

	st := waveform.NewCollection(rec)

	err := NewSNR().Apply(st)
	require.ErrorIs(t, err, waveform.ErrSplitOutOfRange)
	assert.ErrorContains(t, err, "CI.CLC.HNZ")
}

func TestSNRResultRoundTrip(t *testing.T) {
	rec := quietRecord("CI.CLC.HNZ")
	st := waveform.NewCollection(rec)

	require.NoError(t, NewSNR().Apply(st))

	first, ok := Corners(rec)
	require.True(t, ok)

	second, ok := Corners(rec)
	require.True(t, ok)

	assert.Equal(t, first, second)
}

func TestSNROptions(t *testing.T) {
	picker := NewSNR(
		WithThreshold(2.0),
		WithMaxLowFreq(0.2),
		WithMinHighFreq(4.0),
		WithBandwidth(40.0),
	)

	assert.Equal(t, 2.0, picker.cfg.Threshold)
	assert.Equal(t, 0.2, picker.cfg.MaxLowFreq)
	assert.Equal(t, 4.0, picker.cfg.MinHighFreq)
	assert.Equal(t, 40.0, picker.cfg.Bandwidth)
}

func TestSNRApplyEmptyCollection(t *testing.T) {
	st := waveform.NewCollection()

	require.NoError(t, NewSNR().Apply(st))
	assert.Equal(t, 0, st.Len())
}
