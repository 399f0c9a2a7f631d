package design

import "github.com/cwbudde/algo-eq/dsp/core"

const (
	// MinFrequency is the lowest usable center frequency in Hz.
	MinFrequency = 20.0

	// MinQ is the quality-factor floor applied before design to avoid
	// division blow-up in the bandwidth term.
	MinQ = 0.05

	// nyquistMargin keeps the clamped frequency strictly below Nyquist
	// so the bilinear transform stays well-conditioned.
	nyquistMargin = 2.1
)

// MaxFrequency returns the highest usable center frequency for the
// given sample rate: sampleRate / 2.1.
func MaxFrequency(sampleRate float64) float64 {
	return sampleRate / nyquistMargin
}

// Band describes a single parametric peaking filter band.
//
// Band is a plain value: copies are independent, so a control surface
// can hand its own copies to the engine without aliasing. A disabled
// band designs to the identity filter rather than being skipped, so
// its position in a chain stays stable for indexing.
type Band struct {
	Frequency float64 // center frequency, Hz
	GainDB    float64 // boost/cut in dB
	Q         float64 // quality factor
	Enabled   bool
}

// Clamp returns a copy with Frequency constrained to [minFreq, maxFreq].
func (b Band) Clamp(minFreq, maxFreq float64) Band {
	b.Frequency = core.Clamp(b.Frequency, minFreq, maxFreq)
	return b
}

// ClampForRate returns a copy with Frequency constrained to the usable
// range for the given sample rate.
func (b Band) ClampForRate(sampleRate float64) Band {
	return b.Clamp(MinFrequency, MaxFrequency(sampleRate))
}
