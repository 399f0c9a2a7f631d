package eq

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-eq/dsp/filter/biquad"
	"github.com/cwbudde/algo-eq/dsp/filter/design"
)

// Chain is the ordered cascade of peaking filters for one EQ setup.
// It owns one multi-channel [biquad.Filter] per enabled band; disabled
// bands are stored for indexing but produce no filter, so they carry no
// delay-line state at all.
//
// A Chain is not safe for concurrent use. The engine never mutates a
// published chain: band changes build a fresh Chain and swap it in.
type Chain struct {
	sampleRate float64
	channels   int
	bands      []design.Band
	filters    []*biquad.Filter
}

// NewChain builds a cascade for the given stream format and bands.
// Bands are clamped and copied; the caller keeps ownership of its slice.
func NewChain(sampleRate float64, channels int, bands []design.Band) (*Chain, error) {
	if sampleRate <= 0 || math.IsNaN(sampleRate) || math.IsInf(sampleRate, 0) {
		return nil, fmt.Errorf("%w: sample rate must be > 0: %v", ErrInvalidConfiguration, sampleRate)
	}

	if channels < 1 {
		return nil, fmt.Errorf("%w: channel count must be >= 1: %d", ErrInvalidConfiguration, channels)
	}

	c := &Chain{
		sampleRate: sampleRate,
		channels:   channels,
	}
	if err := c.SetBands(bands); err != nil {
		return nil, err
	}

	return c, nil
}

// SetBands replaces the active band list wholesale. Each band is
// clamped to the usable frequency range and stored; one filter is built
// per enabled band. The previous filters and all their accumulated
// delay-line state are discarded as a unit, so a band edit causes a
// brief transient on the live signal.
func (c *Chain) SetBands(bands []design.Band) error {
	clamped := make([]design.Band, len(bands))
	filters := make([]*biquad.Filter, 0, len(bands))

	for i, band := range bands {
		band = band.ClampForRate(c.sampleRate)
		clamped[i] = band

		if !band.Enabled {
			continue
		}

		f, err := design.PeakingFilter(band, c.sampleRate, c.channels)
		if err != nil {
			return fmt.Errorf("band %d: %w", i, err)
		}

		filters = append(filters, f)
	}

	c.bands = clamped
	c.filters = filters

	return nil
}

// Process cascades the block through all active filters in order,
// in-place, each filter's output feeding the next. Cascade order
// matters for overlapping bands. With no active filters the block is
// left untouched. Zero-alloc.
func (c *Chain) Process(block [][]float64) error {
	for _, f := range c.filters {
		if err := f.ProcessBlock(block); err != nil {
			return err
		}
	}

	return nil
}

// Bands returns a copy of the stored (clamped) band list, including
// disabled bands.
func (c *Chain) Bands() []design.Band {
	out := make([]design.Band, len(c.bands))
	copy(out, c.bands)

	return out
}

// NumFilters returns the number of active (enabled-band) filters.
func (c *Chain) NumFilters() int {
	return len(c.filters)
}

// SampleRate returns the sample rate the chain was designed for.
func (c *Chain) SampleRate() float64 {
	return c.sampleRate
}

// Channels returns the configured channel count.
func (c *Chain) Channels() int {
	return c.channels
}

// Reset clears the delay lines of all active filters.
func (c *Chain) Reset() {
	for _, f := range c.filters {
		f.Reset()
	}
}

// MagnitudeDB returns the combined magnitude response of the cascade at
// the given frequency, in dB. An empty chain is flat at 0 dB.
func (c *Chain) MagnitudeDB(freqHz float64) float64 {
	total := 0.0

	for _, f := range c.filters {
		coeffs := f.Coefficients()
		total += coeffs.MagnitudeDB(freqHz, c.sampleRate)
	}

	return total
}
