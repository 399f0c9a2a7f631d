// Package spectrum provides the frequency-domain measurement tools
// used to verify EQ behavior: a [Goertzel] single-bin analyzer for
// tone-level checks and an FFT-based [Analyzer] for full magnitude
// spectra.
package spectrum
