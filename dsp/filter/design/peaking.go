package design

import (
	"math"

	"github.com/cwbudde/algo-eq/dsp/core"
	"github.com/cwbudde/algo-eq/dsp/filter/biquad"
)

// Peaking designs a peaking-EQ biquad for band at the given sample rate
// using the RBJ audio-EQ cookbook transform.
//
// The returned coefficients are the raw cookbook form; a0 is not yet
// normalized out (that happens in biquad.NewFilter). A disabled band
// yields the exact identity set regardless of its other parameters.
// Frequency is clamped into [MinFrequency, MaxFrequency(sampleRate)]
// and Q floored at MinQ, so the function never fails; a non-positive or
// non-finite sample rate also yields the identity set.
func Peaking(band Band, sampleRate float64) biquad.RawCoefficients {
	if !band.Enabled {
		return biquad.Identity()
	}

	if sampleRate <= 0 || math.IsNaN(sampleRate) || math.IsInf(sampleRate, 0) {
		return biquad.Identity()
	}

	freq := core.Clamp(band.Frequency, MinFrequency, MaxFrequency(sampleRate))
	q := math.Max(MinQ, band.Q)

	a := math.Pow(10, band.GainDB/40)
	w := 2 * math.Pi * freq / sampleRate
	cw := math.Cos(w)
	alpha := math.Sin(w) / (2 * q)

	return biquad.RawCoefficients{
		B0: 1 + alpha*a,
		B1: -2 * cw,
		B2: 1 - alpha*a,
		A0: 1 + alpha/a,
		A1: -2 * cw,
		A2: 1 - alpha/a,
	}
}

// PeakingFilter designs and builds a ready-to-run multi-channel filter
// for band. It fails only on an invalid channel count.
func PeakingFilter(band Band, sampleRate float64, channels int) (*biquad.Filter, error) {
	return biquad.NewFilter(Peaking(band, sampleRate), channels)
}
