// Command eqsim runs the EQ engine offline against a synthetic sine and
// reports meter levels and the measured boost at the band frequency.
//
// Usage:
//
//	eqsim [flags]
//
// Examples:
//
//	eqsim
//	eqsim -freq 1000 -gain 6 -q 1.5
//	eqsim -rate 44100 -freq 250 -gain -12 -bypass
package main

import (
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/cwbudde/algo-eq/dsp/core"
	"github.com/cwbudde/algo-eq/dsp/eq"
	"github.com/cwbudde/algo-eq/dsp/filter/design"
	"github.com/cwbudde/algo-eq/dsp/signal"
	"github.com/cwbudde/algo-eq/dsp/spectrum"
)

func main() {
	freq := flag.Float64("freq", 1000, "test sine and band center frequency in Hz")
	gain := flag.Float64("gain", 6, "band gain in dB")
	q := flag.Float64("q", 1.5, "band quality factor")
	duration := flag.Float64("duration", 2, "seconds of audio to process")
	rate := flag.Float64("rate", 48000, "sample rate in Hz")
	channels := flag.Int("channels", 2, "channel count")
	blockSize := flag.Int("blocksize", 1024, "frames per processing block")
	outGain := flag.Float64("outgain", 0, "output gain in dB")
	bypass := flag.Bool("bypass", false, "bypass the filter cascade")
	flag.Parse()

	if err := run(*freq, *gain, *q, *duration, *rate, *outGain, *channels, *blockSize, *bypass); err != nil {
		fmt.Fprintf(os.Stderr, "eqsim: %v\n", err)
		os.Exit(1)
	}
}

func run(freq, gain, q, duration, rate, outGain float64, channels, blockSize int, bypass bool) error {
	if duration <= 0 {
		return fmt.Errorf("duration must be > 0: %v", duration)
	}

	if blockSize < 1 {
		return fmt.Errorf("blocksize must be >= 1: %d", blockSize)
	}

	band := design.Band{Frequency: freq, GainDB: gain, Q: q, Enabled: true}

	engine, err := eq.NewEngine(
		eq.WithSampleRate(rate),
		eq.WithChannels(channels),
		eq.WithOutputGainDB(outGain),
		eq.WithMaxBlockFrames(blockSize),
		eq.WithBands([]design.Band{band}),
		eq.WithBypass(bypass),
	)
	if err != nil {
		return err
	}

	gen := signal.NewGenerator([]core.ProcessorOption{core.WithSampleRate(rate)})

	samples := int(rate * duration)
	mono, err := gen.Sine(freq, 0.5, samples)
	if err != nil {
		return err
	}

	input := signal.Duplicate(mono, channels)

	inTone, err := spectrum.NewGoertzel(freq, rate)
	if err != nil {
		return err
	}

	outTone, err := spectrum.NewGoertzel(freq, rate)
	if err != nil {
		return err
	}

	block := make([][]float64, channels)
	for pos := 0; pos < samples; pos += blockSize {
		end := pos + blockSize
		if end > samples {
			end = samples
		}

		for ch := range block {
			block[ch] = input[ch][pos:end]
		}

		out, err := engine.ProcessBlock(block)
		if err != nil {
			return err
		}

		inTone.ProcessBlock(block[0])
		outTone.ProcessBlock(out[0])
	}

	measuredDB := 0.0
	if inTone.Amplitude() > 0 {
		measuredDB = core.LinearToDB(outTone.Amplitude() / inTone.Amplitude())
	}

	expectedDB := engine.ResponseCurveDB([]float64{freq})[0] + outGain
	if bypass {
		expectedDB = outGain
	}

	meter := engine.Meter()

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "sample rate\t%.0f Hz\n", rate)
	fmt.Fprintf(w, "band\t%.1f Hz, %+.1f dB, Q %.2f\n", freq, gain, q)
	fmt.Fprintf(w, "bypass\t%v\n", bypass)
	fmt.Fprintf(w, "input level\t%.2f dBFS\n", meter.InputDBFS())
	fmt.Fprintf(w, "output level\t%.2f dBFS\n", meter.OutputDBFS())
	fmt.Fprintf(w, "measured boost\t%+.2f dB\n", measuredDB)
	fmt.Fprintf(w, "expected boost\t%+.2f dB\n", expectedDB)

	return w.Flush()
}
