package spectrum

import (
	"fmt"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"
)

// Analyzer computes single-sided magnitude spectra of real signals
// with a reusable FFT plan. It backs the offline verification tools;
// for single-frequency checks on the real-time path [Goertzel] is
// cheaper.
type Analyzer struct {
	plan    *algofft.Plan[complex128]
	fftSize int

	in  []complex128
	out []complex128
	re  []float64
	im  []float64
}

// NewAnalyzer creates an analyzer for the given FFT size
// (power of two, >= 2).
func NewAnalyzer(fftSize int) (*Analyzer, error) {
	if fftSize < 2 {
		return nil, fmt.Errorf("spectrum: fft size must be >= 2: %d", fftSize)
	}

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil, fmt.Errorf("spectrum: fft plan: %w", err)
	}

	half := fftSize/2 + 1

	return &Analyzer{
		plan:    plan,
		fftSize: fftSize,
		in:      make([]complex128, fftSize),
		out:     make([]complex128, fftSize),
		re:      make([]float64, half),
		im:      make([]float64, half),
	}, nil
}

// FFTSize returns the configured FFT size.
func (a *Analyzer) FFTSize() int {
	return a.fftSize
}

// Magnitudes computes |X[k]| for the non-negative-frequency bins
// [0..fftSize/2] of samples. Inputs shorter than the FFT size are
// zero-padded; longer inputs are an error.
func (a *Analyzer) Magnitudes(samples []float64) ([]float64, error) {
	if len(samples) > a.fftSize {
		return nil, fmt.Errorf("spectrum: input length %d exceeds fft size %d", len(samples), a.fftSize)
	}

	for i := range a.in {
		if i < len(samples) {
			a.in[i] = complex(samples[i], 0)
		} else {
			a.in[i] = 0
		}
	}

	if err := a.plan.Forward(a.out, a.in); err != nil {
		return nil, fmt.Errorf("spectrum: fft forward: %w", err)
	}

	for i := range a.re {
		a.re[i] = real(a.out[i])
		a.im[i] = imag(a.out[i])
	}

	mags := make([]float64, len(a.re))
	vecmath.Magnitude(mags, a.re, a.im)

	return mags, nil
}

// PeakBin returns the index and magnitude of the largest non-DC bin.
func PeakBin(mags []float64) (int, float64) {
	bin := 0
	peak := 0.0

	for i := 1; i < len(mags); i++ {
		if mags[i] > peak {
			bin = i
			peak = mags[i]
		}
	}

	return bin, peak
}

// BinFrequency returns the center frequency in Hz of bin i for the
// given FFT size and sample rate.
func BinFrequency(i, fftSize int, sampleRate float64) float64 {
	if fftSize <= 0 {
		return math.NaN()
	}

	return float64(i) * sampleRate / float64(fftSize)
}
