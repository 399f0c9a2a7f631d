package biquad

import "fmt"

// Filter applies one biquad coefficient set to planar multi-channel
// audio. Each channel owns an independent [Section], so delay-line
// state persists per channel across successive ProcessBlock calls.
type Filter struct {
	coeffs   Coefficients
	sections []Section
}

// NewFilter builds a Filter from raw cookbook coefficients and a
// channel count. The coefficients are normalized (divided by a0) here;
// per-channel delay state starts at zero.
func NewFilter(raw RawCoefficients, channels int) (*Filter, error) {
	if channels < 1 {
		return nil, fmt.Errorf("%w: channel count must be >= 1: %d", ErrInvalidConfiguration, channels)
	}

	coeffs, err := raw.Normalize()
	if err != nil {
		return nil, err
	}

	f := &Filter{
		coeffs:   coeffs,
		sections: make([]Section, channels),
	}
	for i := range f.sections {
		f.sections[i].Coefficients = coeffs
	}

	return f, nil
}

// Channels returns the configured channel count.
func (f *Filter) Channels() int {
	return len(f.sections)
}

// Coefficients returns the normalized coefficient set.
func (f *Filter) Coefficients() Coefficients {
	return f.coeffs
}

// ProcessBlock filters a planar block in-place, each channel through its
// own section. The block must have exactly the configured channel count
// and all channels must have equal length; zero frames is valid.
// Zero-alloc.
func (f *Filter) ProcessBlock(block [][]float64) error {
	if err := f.checkShape(block); err != nil {
		return err
	}

	for ch := range f.sections {
		f.sections[ch].ProcessBlock(block[ch])
	}

	return nil
}

func (f *Filter) checkShape(block [][]float64) error {
	if len(block) != len(f.sections) {
		return fmt.Errorf("%w: got %d channels, configured %d", ErrShapeMismatch, len(block), len(f.sections))
	}

	frames := len(block[0])
	for ch, buf := range block[1:] {
		if len(buf) != frames {
			return fmt.Errorf("%w: channel %d has %d frames, channel 0 has %d", ErrShapeMismatch, ch+1, len(buf), frames)
		}
	}

	return nil
}

// Reset clears the delay lines of all channels.
func (f *Filter) Reset() {
	for i := range f.sections {
		f.sections[i].Reset()
	}
}

// Section returns a pointer to the section of channel ch for inspection.
func (f *Filter) Section(ch int) *Section {
	return &f.sections[ch]
}

// State returns a snapshot of all per-channel delay-line states.
func (f *Filter) State() [][2]float64 {
	states := make([][2]float64, len(f.sections))
	for i := range f.sections {
		states[i] = f.sections[i].State()
	}

	return states
}

// SetState restores previously saved per-channel states.
// The slice length must match Channels.
func (f *Filter) SetState(states [][2]float64) {
	for i := range f.sections {
		f.sections[i].SetState(states[i])
	}
}
