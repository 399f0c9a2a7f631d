package buffer

// Block holds planar multi-channel audio: one sample slice per channel,
// all channels of equal length (the frame count). DSP functions accept
// raw [][]float64; use Planar() to bridge.
type Block struct {
	channels [][]float64
}

// New returns a zero-filled Block with the given channel and frame counts.
func New(channels, frames int) *Block {
	if channels < 0 {
		channels = 0
	}
	if frames < 0 {
		frames = 0
	}
	chs := make([][]float64, channels)
	for i := range chs {
		chs[i] = make([]float64, frames)
	}
	return &Block{channels: chs}
}

// FromPlanar wraps existing per-channel slices without copying.
// Mutations to the slices are visible through the Block and vice versa.
// All slices should have equal length; Frames() reports the shortest.
func FromPlanar(channels [][]float64) *Block {
	return &Block{channels: channels}
}

// FromInterleaved deinterleaves frame-major samples (L R L R ... for
// stereo) into a new planar Block. Trailing samples that do not form a
// complete frame are dropped.
func FromInterleaved(data []float64, channels int) *Block {
	if channels <= 0 {
		return &Block{}
	}
	frames := len(data) / channels
	b := New(channels, frames)
	for f := 0; f < frames; f++ {
		base := f * channels
		for ch := 0; ch < channels; ch++ {
			b.channels[ch][f] = data[base+ch]
		}
	}
	return b
}

// Planar returns the underlying per-channel slices.
func (b *Block) Planar() [][]float64 {
	return b.channels
}

// Channel returns the samples of channel i.
func (b *Block) Channel(i int) []float64 {
	return b.channels[i]
}

// Channels returns the channel count.
func (b *Block) Channels() int {
	return len(b.channels)
}

// Frames returns the frame count (length of the shortest channel).
func (b *Block) Frames() int {
	if len(b.channels) == 0 {
		return 0
	}
	frames := len(b.channels[0])
	for _, ch := range b.channels[1:] {
		if len(ch) < frames {
			frames = len(ch)
		}
	}
	return frames
}

// Resize sets every channel to n frames, reusing capacity when possible.
// Newly exposed frames are zeroed.
func (b *Block) Resize(n int) {
	if n < 0 {
		n = 0
	}
	for i, ch := range b.channels {
		oldLen := len(ch)
		if n <= cap(ch) {
			ch = ch[:n]
		} else {
			grown := make([]float64, n)
			copy(grown, ch)
			ch = grown
		}
		// Zero frames that may hold stale data from previous use of the
		// backing array.
		for j := oldLen; j < n; j++ {
			ch[j] = 0
		}
		b.channels[i] = ch
	}
}

// Zero sets all samples to 0.
func (b *Block) Zero() {
	for _, ch := range b.channels {
		for i := range ch {
			ch[i] = 0
		}
	}
}

// Copy returns a deep copy of the block.
func (b *Block) Copy() *Block {
	chs := make([][]float64, len(b.channels))
	for i, ch := range b.channels {
		chs[i] = make([]float64, len(ch))
		copy(chs[i], ch)
	}
	return &Block{channels: chs}
}

// Interleave writes the block into dst as frame-major samples and
// returns it. If dst is too small a new slice is allocated.
func (b *Block) Interleave(dst []float64) []float64 {
	channels := len(b.channels)
	frames := b.Frames()
	need := channels * frames
	if cap(dst) < need {
		dst = make([]float64, need)
	}
	dst = dst[:need]
	for f := 0; f < frames; f++ {
		base := f * channels
		for ch := 0; ch < channels; ch++ {
			dst[base+ch] = b.channels[ch][f]
		}
	}
	return dst
}
