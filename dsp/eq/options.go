package eq

import "github.com/cwbudde/algo-eq/dsp/filter/design"

// Defaults used by NewEngine when no option overrides them.
const (
	DefaultSampleRate = 48000.0
	DefaultChannels   = 2

	// DefaultOutputGainDB leaves a little headroom before the clip stage.
	DefaultOutputGainDB = -3.0

	// DefaultMaxBlockFrames sizes the pre-allocated output scratch.
	DefaultMaxBlockFrames = 8192
)

type config struct {
	sampleRate     float64
	channels       int
	outputGainDB   float64
	maxBlockFrames int
	bands          []design.Band
	bypass         bool
}

func defaultConfig() config {
	return config{
		sampleRate:     DefaultSampleRate,
		channels:       DefaultChannels,
		outputGainDB:   DefaultOutputGainDB,
		maxBlockFrames: DefaultMaxBlockFrames,
	}
}

// Option configures an Engine at construction time.
type Option func(*config)

// WithSampleRate sets the stream sample rate in Hz.
func WithSampleRate(sampleRate float64) Option {
	return func(cfg *config) { cfg.sampleRate = sampleRate }
}

// WithChannels sets the stream channel count.
func WithChannels(channels int) Option {
	return func(cfg *config) { cfg.channels = channels }
}

// WithOutputGainDB sets the initial output gain in dB.
func WithOutputGainDB(gainDB float64) Option {
	return func(cfg *config) { cfg.outputGainDB = gainDB }
}

// WithMaxBlockFrames sets the expected maximum frames per ProcessBlock
// call. The output scratch is pre-allocated to this size; larger blocks
// still work but grow the scratch on first sight.
func WithMaxBlockFrames(frames int) Option {
	return func(cfg *config) {
		if frames > 0 {
			cfg.maxBlockFrames = frames
		}
	}
}

// WithBands sets the initial band list.
func WithBands(bands []design.Band) Option {
	return func(cfg *config) { cfg.bands = bands }
}

// WithBypass sets the initial bypass state.
func WithBypass(bypass bool) Option {
	return func(cfg *config) { cfg.bypass = bypass }
}
