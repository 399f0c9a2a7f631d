package spectrum

import (
	"fmt"
	"math"
)

// Goertzel evaluates a single DFT bin without computing a full FFT,
// which is all the EQ verification path needs: measuring how much a
// known test tone was boosted or cut.
//
// The analyzer is stateful and accumulates every processed sample;
// Power and Magnitude evaluate the component over all samples since
// the last Reset. The main lobe width is 4π/N for N processed samples,
// so longer captures resolve the target frequency more sharply.
type Goertzel struct {
	frequency  float64
	sampleRate float64
	coeff      float64
	s0, s1     float64
	samples    int
}

// NewGoertzel creates an analyzer for the target frequency.
// frequency must be between 0 and sampleRate/2.
func NewGoertzel(frequency, sampleRate float64) (*Goertzel, error) {
	if sampleRate <= 0 || math.IsNaN(sampleRate) || math.IsInf(sampleRate, 0) {
		return nil, fmt.Errorf("goertzel: sample rate must be > 0: %v", sampleRate)
	}

	if frequency < 0 || frequency > sampleRate/2 || math.IsNaN(frequency) || math.IsInf(frequency, 0) {
		return nil, fmt.Errorf("goertzel: frequency must be between 0 and sampleRate/2: %v", frequency)
	}

	g := &Goertzel{
		frequency:  frequency,
		sampleRate: sampleRate,
		coeff:      2 * math.Cos(2*math.Pi*frequency/sampleRate),
	}

	return g, nil
}

// Reset clears the internal state.
func (g *Goertzel) Reset() {
	g.s0 = 0
	g.s1 = 0
	g.samples = 0
}

// ProcessSample updates the state with one input sample.
func (g *Goertzel) ProcessSample(input float64) {
	s := input + g.coeff*g.s0 - g.s1
	g.s1 = g.s0
	g.s0 = s
	g.samples++
}

// ProcessBlock updates the state with a block of samples.
func (g *Goertzel) ProcessBlock(input []float64) {
	s0, s1 := g.s0, g.s1

	coeff := g.coeff
	for _, x := range input {
		s := x + coeff*s0 - s1
		s1 = s0
		s0 = s
	}

	g.s0, g.s1 = s0, s1
	g.samples += len(input)
}

// Power returns the squared magnitude of the frequency component,
// equivalent to |X[k]|^2 of a DFT over the processed samples.
func (g *Goertzel) Power() float64 {
	return g.s0*g.s0 + g.s1*g.s1 - g.coeff*g.s0*g.s1
}

// Magnitude returns the magnitude of the frequency component.
func (g *Goertzel) Magnitude() float64 {
	p := g.Power()
	if p <= 0 {
		return 0
	}

	return math.Sqrt(p)
}

// Amplitude returns the estimated peak amplitude of a sinusoid at the
// target frequency: 2|X[k]|/N. Returns 0 before any sample has been
// processed.
func (g *Goertzel) Amplitude() float64 {
	if g.samples == 0 {
		return 0
	}

	return 2 * g.Magnitude() / float64(g.samples)
}

// PowerDB returns the power in dB with a safe floor at -300 dB.
func (g *Goertzel) PowerDB() float64 {
	p := g.Power()
	if p <= 1e-30 {
		return -300
	}

	return 10 * math.Log10(p)
}

// ToneAmplitude measures the peak amplitude of the freq component in
// samples using a one-shot Goertzel pass.
func ToneAmplitude(samples []float64, freq, sampleRate float64) (float64, error) {
	g, err := NewGoertzel(freq, sampleRate)
	if err != nil {
		return 0, err
	}

	g.ProcessBlock(samples)

	return g.Amplitude(), nil
}
