package eq

import (
	"fmt"
	"math"
	"sync"
	"sync/atomic"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-eq/dsp/core"
	"github.com/cwbudde/algo-eq/dsp/filter/design"
)

// Engine is the top-level EQ facade: a filter-chain cascade plus
// bypass, output-gain staging and RMS metering. ProcessBlock is the
// single real-time entry point, invoked once per hardware period.
//
// Concurrency contract: ProcessBlock runs on the audio thread and
// never blocks. Control-thread updates (SetBands, SetBypass,
// SetOutputGain) prepare their state off the audio thread and publish
// it with a single atomic store; a mutex serializes the writers only.
// Configure rebuilds everything, including the audio-thread scratch,
// and therefore must only be called while the stream is stopped.
type Engine struct {
	mu sync.Mutex // serializes control-side writers

	// Stream format. Written by Configure only, which by contract does
	// not run concurrently with ProcessBlock.
	sampleRate float64
	channels   int

	chain    atomic.Pointer[Chain]
	bypass   atomic.Bool
	gainBits atomic.Uint64 // linear output gain, math.Float64bits
	gainDB   atomic.Uint64 // output gain in dB, for readback

	// Meter levels, published per block. The two stores are not joint
	// so a reader may see input and output from adjacent blocks; meters
	// are advisory display data, so the race is benign.
	meterIn  atomic.Uint64
	meterOut atomic.Uint64

	maxBlockFrames int
	scratch        [][]float64 // audio-thread-owned output buffer
}

// NewEngine builds and configures an Engine in one step.
func NewEngine(opts ...Option) (*Engine, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	e := &Engine{maxBlockFrames: cfg.maxBlockFrames}
	if err := e.Configure(cfg.sampleRate, cfg.channels, cfg.outputGainDB); err != nil {
		return nil, err
	}

	if len(cfg.bands) > 0 {
		if err := e.SetBands(cfg.bands); err != nil {
			return nil, err
		}
	}

	e.SetBypass(cfg.bypass)

	return e, nil
}

// Configure (re)builds the engine for a stream format. It must be
// called before the first ProcessBlock and may be called again when
// the sample rate or channel count changes; any stored bands are
// re-designed for the new format and all filter delay-line state is
// discarded. Must not run concurrently with ProcessBlock.
func (e *Engine) Configure(sampleRate float64, channels int, outputGainDB float64) error {
	if sampleRate <= 0 || math.IsNaN(sampleRate) || math.IsInf(sampleRate, 0) {
		return fmt.Errorf("%w: sample rate must be > 0: %v", ErrInvalidConfiguration, sampleRate)
	}

	if channels < 1 {
		return fmt.Errorf("%w: channel count must be >= 1: %d", ErrInvalidConfiguration, channels)
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	var bands []design.Band
	if old := e.chain.Load(); old != nil {
		bands = old.Bands()
	}

	chain, err := NewChain(sampleRate, channels, bands)
	if err != nil {
		return err
	}

	scratch := make([][]float64, channels)
	for i := range scratch {
		scratch[i] = make([]float64, 0, e.maxBlockFrames)
	}

	e.sampleRate = sampleRate
	e.channels = channels
	e.scratch = scratch
	e.chain.Store(chain)
	e.setOutputGainLocked(outputGainDB)
	e.meterIn.Store(0)
	e.meterOut.Store(0)

	return nil
}

// SetBands atomically replaces the active band list. The new chain is
// built here, off the audio thread, and published with a pointer swap;
// the audio thread picks it up on its next block. All previous filter
// state is discarded.
func (e *Engine) SetBands(bands []design.Band) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.channels == 0 {
		return fmt.Errorf("%w: engine not configured", ErrInvalidConfiguration)
	}

	chain, err := NewChain(e.sampleRate, e.channels, bands)
	if err != nil {
		return err
	}

	e.chain.Store(chain)

	return nil
}

// SetBypass enables or disables the filter cascade. Metering and gain
// staging still run in bypass so the meters behave consistently.
func (e *Engine) SetBypass(bypass bool) {
	e.bypass.Store(bypass)
}

// SetOutputGain sets the output gain in dB. The linear factor is
// computed once here, not per block.
func (e *Engine) SetOutputGain(gainDB float64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.setOutputGainLocked(gainDB)
}

func (e *Engine) setOutputGainLocked(gainDB float64) {
	e.gainDB.Store(math.Float64bits(gainDB))
	e.gainBits.Store(math.Float64bits(core.DBToLinear(gainDB)))
}

// ProcessBlock runs one audio period through the engine:
// shape validation, input metering, bypass or cascade, gain staging,
// output metering, hard clip to [-1, 1].
//
// The returned block is engine-owned scratch, independent of the
// input and valid until the next ProcessBlock call. The input block is
// never modified. Blocks up to the configured maximum frame count are
// processed without allocation; a larger block grows the scratch once.
func (e *Engine) ProcessBlock(block [][]float64) ([][]float64, error) {
	if e.channels == 0 {
		return nil, fmt.Errorf("%w: engine not configured", ErrInvalidConfiguration)
	}

	if err := e.checkShape(block); err != nil {
		return nil, err
	}

	inputRMS := RMS(block)

	frames := len(block[0])
	out := e.scratch
	for ch := range out {
		out[ch] = core.EnsureLen(out[ch], frames)
		copy(out[ch], block[ch])
	}

	if !e.bypass.Load() {
		if chain := e.chain.Load(); chain != nil {
			if err := chain.Process(out); err != nil {
				return nil, err
			}
		}
	}

	gain := math.Float64frombits(e.gainBits.Load())
	if gain != 1 {
		for _, ch := range out {
			vecmath.ScaleBlockInPlace(ch, gain)
		}
	}

	e.meterIn.Store(math.Float64bits(inputRMS))
	e.meterOut.Store(math.Float64bits(RMS(out)))

	for _, ch := range out {
		clip(ch)
	}

	return out, nil
}

func (e *Engine) checkShape(block [][]float64) error {
	if len(block) != e.channels {
		return fmt.Errorf("%w: got %d channels, configured %d", ErrShapeMismatch, len(block), e.channels)
	}

	frames := len(block[0])
	for ch, buf := range block[1:] {
		if len(buf) != frames {
			return fmt.Errorf("%w: channel %d has %d frames, channel 0 has %d", ErrShapeMismatch, ch+1, len(buf), frames)
		}
	}

	return nil
}

// clip hard-clamps samples to [-1, 1]. Out-of-range samples become
// exactly the boundary value.
func clip(buf []float64) {
	for i, v := range buf {
		if v > 1 {
			buf[i] = 1
		} else if v < -1 {
			buf[i] = -1
		}
	}
}

// Meter returns the most recent meter levels. Non-blocking; may see
// input and output from adjacent blocks under concurrent processing.
func (e *Engine) Meter() MeterSnapshot {
	return MeterSnapshot{
		InputRMS:  math.Float64frombits(e.meterIn.Load()),
		OutputRMS: math.Float64frombits(e.meterOut.Load()),
	}
}

// Bands returns a copy of the active (clamped) band list.
func (e *Engine) Bands() []design.Band {
	if chain := e.chain.Load(); chain != nil {
		return chain.Bands()
	}

	return nil
}

// Bypass reports whether the cascade is bypassed.
func (e *Engine) Bypass() bool {
	return e.bypass.Load()
}

// OutputGainDB returns the current output gain in dB.
func (e *Engine) OutputGainDB() float64 {
	return math.Float64frombits(e.gainDB.Load())
}

// SampleRate returns the configured sample rate.
func (e *Engine) SampleRate() float64 {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.sampleRate
}

// Channels returns the configured channel count.
func (e *Engine) Channels() int {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.channels
}

// ResponseCurveDB evaluates the combined magnitude response of the
// active cascade at each frequency, in dB, for curve plotting. Output
// gain is not included. An empty chain is flat at 0 dB.
func (e *Engine) ResponseCurveDB(freqs []float64) []float64 {
	out := make([]float64, len(freqs))

	chain := e.chain.Load()
	if chain == nil {
		return out
	}

	for i, f := range freqs {
		out[i] = chain.MagnitudeDB(f)
	}

	return out
}
