package eq

import (
	"testing"

	"github.com/cwbudde/algo-eq/dsp/filter/design"
	"github.com/cwbudde/algo-eq/internal/testutil"
)

func benchBands() []design.Band {
	return []design.Band{
		{Frequency: 80, GainDB: 4, Q: 0.7, Enabled: true},
		{Frequency: 250, GainDB: -3, Q: 1.0, Enabled: true},
		{Frequency: 1000, GainDB: 6, Q: 1.5, Enabled: true},
		{Frequency: 4000, GainDB: -2, Q: 2.0, Enabled: true},
		{Frequency: 12000, GainDB: 3, Q: 1.0, Enabled: true},
	}
}

func BenchmarkEngineProcessBlock(b *testing.B) {
	engine, err := NewEngine(
		WithSampleRate(48000),
		WithChannels(2),
		WithOutputGainDB(-3),
		WithMaxBlockFrames(1024),
		WithBands(benchBands()),
	)
	if err != nil {
		b.Fatal(err)
	}

	block := testutil.StereoBlock(testutil.DeterministicNoise(1, 0.5, 1024))

	b.ReportAllocs()
	b.SetBytes(int64(2 * 1024 * 8))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err := engine.ProcessBlock(block); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkEngineProcessBlockBypass(b *testing.B) {
	engine, err := NewEngine(
		WithSampleRate(48000),
		WithChannels(2),
		WithOutputGainDB(0),
		WithMaxBlockFrames(1024),
		WithBands(benchBands()),
		WithBypass(true),
	)
	if err != nil {
		b.Fatal(err)
	}

	block := testutil.StereoBlock(testutil.DeterministicNoise(1, 0.5, 1024))

	b.ReportAllocs()
	b.SetBytes(int64(2 * 1024 * 8))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err := engine.ProcessBlock(block); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkSetBands(b *testing.B) {
	engine, err := NewEngine(WithSampleRate(48000), WithChannels(2))
	if err != nil {
		b.Fatal(err)
	}

	bands := benchBands()

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if err := engine.SetBands(bands); err != nil {
			b.Fatal(err)
		}
	}
}
