// Package pick selects, per seismic waveform record, the corner frequencies
// delimiting the band over which the recorded signal is trustworthy.
//
// Two strategies share one contract (annotate or reject a record): Constant
// assigns configured fixed corners to every record, SNR compares the smoothed
// signal spectrum against a noise estimate and walks the resulting SNR curve
// for a qualifying band. Downstream stages filter records to the selected
// band before computing intensity measures; the filtering itself is outside
// this package.
package pick
