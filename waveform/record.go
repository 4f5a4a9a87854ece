package waveform

import (
	"errors"
	"fmt"
	"math"
	"time"
)

// Stage names for processing parameters attached to records.
const (
	StageSignalSplit       = "signal_split"
	StageCornerFrequencies = "corner_frequencies"
)

var (
	ErrEmptyRecord       = errors.New("waveform: record has no samples")
	ErrInvalidSampleRate = errors.New("waveform: sample rate must be > 0")
	ErrNoSplitTime       = errors.New("waveform: record has no signal split time")
	ErrSplitOutOfRange   = errors.New("waveform: split time outside record time span")
)

// SignalSplit marks the boundary between a record's pre-event noise segment
// and its signal segment. It is attached by an upstream signal detection
// stage under [StageSignalSplit].
type SignalSplit struct {
	SplitTime time.Time
}

// Record holds one channel's time series plus the metadata the processing
// pipeline needs: an identifier (network.station.channel code), sampling rate,
// start time, and a per-stage parameter store mutated in place as the record
// moves through the pipeline.
type Record struct {
	ID         string
	SampleRate float64
	StartTime  time.Time
	Data       []float64

	params map[string]any
}

// EndTime returns the timestamp of the last sample.
func (r *Record) EndTime() time.Time {
	if len(r.Data) == 0 || r.SampleRate <= 0 {
		return r.StartTime
	}

	seconds := float64(len(r.Data)-1) / r.SampleRate

	return r.StartTime.Add(time.Duration(seconds * float64(time.Second)))
}

// SetParam stores a processing stage's output on the record.
func (r *Record) SetParam(stage string, value any) {
	if r.params == nil {
		r.params = make(map[string]any)
	}

	r.params[stage] = value
}

// Param returns a processing stage's stored output.
func (r *Record) Param(stage string) (any, bool) {
	v, ok := r.params[stage]
	return v, ok
}

// SetSplitTime attaches the noise/signal boundary under [StageSignalSplit].
func (r *Record) SetSplitTime(t time.Time) {
	r.SetParam(StageSignalSplit, SignalSplit{SplitTime: t})
}

// SplitTime returns the noise/signal boundary attached by the upstream
// signal detection stage.
func (r *Record) SplitTime() (time.Time, error) {
	v, ok := r.Param(StageSignalSplit)
	if !ok {
		return time.Time{}, ErrNoSplitTime
	}

	split, ok := v.(SignalSplit)
	if !ok {
		return time.Time{}, ErrNoSplitTime
	}

	return split.SplitTime, nil
}

// SplitWindows returns the noise window (record start up to and including the
// split sample) and the signal window (split sample through record end). Both
// windows share the boundary sample. The returned slices view the record's
// data; callers must copy before mutating.
//
// The split time must lie strictly within the record's time span. A split on
// or outside the record bounds indicates an upstream pipeline bug and is
// returned as [ErrSplitOutOfRange].
func (r *Record) SplitWindows() (noise, signal []float64, err error) {
	if len(r.Data) == 0 {
		return nil, nil, ErrEmptyRecord
	}

	if r.SampleRate <= 0 {
		return nil, nil, fmt.Errorf("%w: %f", ErrInvalidSampleRate, r.SampleRate)
	}

	split, err := r.SplitTime()
	if err != nil {
		return nil, nil, err
	}

	if !split.After(r.StartTime) || !split.Before(r.EndTime()) {
		return nil, nil, fmt.Errorf("%w: split %s, record %s to %s",
			ErrSplitOutOfRange, split.Format(time.RFC3339),
			r.StartTime.Format(time.RFC3339), r.EndTime().Format(time.RFC3339))
	}

	idx := int(math.Round(split.Sub(r.StartTime).Seconds() * r.SampleRate))
	if idx < 0 {
		idx = 0
	}

	if idx > len(r.Data)-1 {
		idx = len(r.Data) - 1
	}

	return r.Data[:idx+1], r.Data[idx:], nil
}
