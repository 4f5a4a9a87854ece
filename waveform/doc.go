// Package waveform provides the record and collection containers shared by
// the ground-motion processing stages.
//
// A Record carries one channel's time series plus a per-stage parameter store;
// stages annotate records in place or remove them from their Collection when
// they fail a quality check. Waveform I/O and station metadata live with
// external collaborators, not here.
package waveform
