package eq

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/dsp/fourier"

	"github.com/cwbudde/algo-eq/dsp/core"
	"github.com/cwbudde/algo-eq/dsp/filter/design"
	"github.com/cwbudde/algo-eq/dsp/spectrum"
	"github.com/cwbudde/algo-eq/internal/testutil"
)

// TestEndToEndBoost pushes a 1 kHz sine through a +6 dB band at 1 kHz
// for two seconds of audio and verifies the measured boost at the tone
// frequency, once with a Goertzel single-bin ratio and once with an
// independent FFT.
func TestEndToEndBoost(t *testing.T) {
	const (
		sampleRate = 48000.0
		freq       = 1000.0
		seconds    = 2
		blockSize  = 1024
	)

	engine, err := NewEngine(
		WithSampleRate(sampleRate),
		WithChannels(2),
		WithOutputGainDB(0),
		WithMaxBlockFrames(blockSize),
		WithBands([]design.Band{{Frequency: freq, GainDB: 6, Q: 1.5, Enabled: true}}),
	)
	require.NoError(t, err)

	samples := int(sampleRate) * seconds
	mono := testutil.DeterministicSine(freq, sampleRate, 0.5, samples)
	input := testutil.StereoBlock(mono)
	output := make([]float64, samples)

	block := make([][]float64, 2)
	for pos := 0; pos < samples; pos += blockSize {
		end := pos + blockSize
		if end > samples {
			end = samples
		}

		for ch := range block {
			block[ch] = input[ch][pos:end]
		}

		out, err := engine.ProcessBlock(block)
		require.NoError(t, err)
		copy(output[pos:end], out[0])
	}

	// Analyze the second half only so the filter transient has died out.
	// 48000 samples hold exactly 1000 cycles of the tone, so the bin
	// lands exactly on the tone frequency.
	window := samples / 2
	inTail := mono[samples-window:]
	outTail := output[samples-window:]

	inAmp, err := spectrum.ToneAmplitude(inTail, freq, sampleRate)
	require.NoError(t, err)
	outAmp, err := spectrum.ToneAmplitude(outTail, freq, sampleRate)
	require.NoError(t, err)

	boostDB := core.LinearToDB(outAmp / inAmp)
	assert.InDelta(t, 6.0, boostDB, 0.5)

	// Independent cross-check with gonum's FFT on the same window.
	fft := fourier.NewFFT(window)
	inBins := fft.Coefficients(nil, inTail)
	outBins := fft.Coefficients(nil, outTail)

	bin := int(freq * float64(window) / sampleRate)
	fftBoostDB := core.LinearToDB(cabs(outBins[bin]) / cabs(inBins[bin]))
	assert.InDelta(t, 6.0, fftBoostDB, 0.5)

	// The two measurements must agree with each other as well.
	assert.InDelta(t, boostDB, fftBoostDB, 0.1)
}

func cabs(c complex128) float64 {
	return math.Hypot(real(c), imag(c))
}
