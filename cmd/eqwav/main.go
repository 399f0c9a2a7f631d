// Command eqwav applies the parametric EQ engine to a WAV file.
//
// Usage:
//
//	eqwav [flags] input.wav output.wav
//
// Examples:
//
//	eqwav -band 1000:6:1.5 input.wav output.wav
//	eqwav -band 100:4:0.7 -band 8000:-3:2 -gain -1.5 input.wav output.wav
//	eqwav -bypass input.wav output.wav
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/sirupsen/logrus"

	"github.com/cwbudde/algo-eq/dsp/buffer"
	"github.com/cwbudde/algo-eq/dsp/eq"
)

func main() {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	var bands bandList
	flag.Var(&bands, "band", "EQ band as freq:gain:q[:off]; repeatable")
	gain := flag.Float64("gain", 0, "output gain in dB")
	bypass := flag.Bool("bypass", false, "bypass the filter cascade")
	blockSize := flag.Int("blocksize", 1024, "frames per processing block")
	verbose := flag.Bool("v", false, "verbose output")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: eqwav [flags] input.wav output.wav\n\n")
		fmt.Fprintf(os.Stderr, "Applies a chain of parametric peaking filters to a WAV file.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  eqwav -band 1000:6:1.5 input.wav output.wav\n")
		fmt.Fprintf(os.Stderr, "  eqwav -band 100:4:0.7 -band 8000:-3:2 in.wav out.wav\n")
	}
	flag.Parse()

	if *verbose {
		log.SetLevel(logrus.DebugLevel)
	}

	args := flag.Args()
	if len(args) != 2 {
		flag.Usage()
		os.Exit(2)
	}

	if err := run(log, args[0], args[1], bands, *gain, *blockSize, *bypass); err != nil {
		log.WithError(err).Fatal("processing failed")
	}
}

func run(log *logrus.Logger, inputPath, outputPath string, bands bandList, gainDB float64, blockSize int, bypass bool) error {
	if blockSize < 1 {
		return fmt.Errorf("blocksize must be >= 1: %d", blockSize)
	}

	inFile, err := os.Open(inputPath)
	if err != nil {
		return fmt.Errorf("open input: %w", err)
	}
	defer inFile.Close()

	decoder := wav.NewDecoder(inFile)
	if !decoder.IsValidFile() {
		return fmt.Errorf("invalid WAV file: %s", inputPath)
	}

	buf, err := decoder.FullPCMBuffer()
	if err != nil {
		return fmt.Errorf("decode input: %w", err)
	}

	format := buf.Format
	bitDepth := int(decoder.BitDepth)

	log.WithFields(logrus.Fields{
		"input":     inputPath,
		"rate":      format.SampleRate,
		"channels":  format.NumChannels,
		"bit_depth": bitDepth,
		"frames":    buf.NumFrames(),
	}).Info("decoded input")

	engine, err := eq.NewEngine(
		eq.WithSampleRate(float64(format.SampleRate)),
		eq.WithChannels(format.NumChannels),
		eq.WithOutputGainDB(gainDB),
		eq.WithMaxBlockFrames(blockSize),
		eq.WithBands(bands),
		eq.WithBypass(bypass),
	)
	if err != nil {
		return fmt.Errorf("configure engine: %w", err)
	}

	for i, band := range engine.Bands() {
		log.WithFields(logrus.Fields{
			"band":    i,
			"freq":    band.Frequency,
			"gain_db": band.GainDB,
			"q":       band.Q,
			"enabled": band.Enabled,
		}).Debug("band configured")
	}

	samples, err := intToFloat(buf.Data, bitDepth)
	if err != nil {
		return err
	}

	planar := buffer.FromInterleaved(samples, format.NumChannels)
	if err := processBlocks(engine, planar, blockSize); err != nil {
		return err
	}

	meter := engine.Meter()
	log.WithFields(logrus.Fields{
		"input_dbfs":  fmt.Sprintf("%.2f", meter.InputDBFS()),
		"output_dbfs": fmt.Sprintf("%.2f", meter.OutputDBFS()),
	}).Info("processed")

	buf.Data, err = floatToInt(planar.Interleave(samples), bitDepth)
	if err != nil {
		return err
	}

	return writeWAV(outputPath, buf, format, bitDepth)
}

// processBlocks runs the planar block through the engine blockSize
// frames at a time, writing results back in place.
func processBlocks(engine *eq.Engine, planar *buffer.Block, blockSize int) error {
	channels := planar.Channels()
	frames := planar.Frames()

	block := make([][]float64, channels)
	for pos := 0; pos < frames; pos += blockSize {
		end := pos + blockSize
		if end > frames {
			end = frames
		}

		for ch := range block {
			block[ch] = planar.Channel(ch)[pos:end]
		}

		out, err := engine.ProcessBlock(block)
		if err != nil {
			return err
		}

		for ch := range block {
			copy(block[ch], out[ch])
		}
	}

	return nil
}

func writeWAV(path string, buf *audio.IntBuffer, format *audio.Format, bitDepth int) error {
	outFile, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}

	encoder := wav.NewEncoder(outFile, format.SampleRate, bitDepth, format.NumChannels, 1)
	if err := encoder.Write(buf); err != nil {
		_ = outFile.Close()
		return fmt.Errorf("encode output: %w", err)
	}

	if err := encoder.Close(); err != nil {
		_ = outFile.Close()
		return fmt.Errorf("finalize output: %w", err)
	}

	return outFile.Close()
}
