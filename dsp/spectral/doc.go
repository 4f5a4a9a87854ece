// Package spectral estimates smoothed amplitude spectra for noise and signal
// windows of seismic waveform records.
//
// The estimator tapers a window, computes the one-sided FFT magnitude
// spectrum on a shared frequency grid, and stabilizes it with Konno-Ohmachi
// smoothing, the standard seismological log-frequency smoothing for Fourier
// amplitude spectra.
package spectral
