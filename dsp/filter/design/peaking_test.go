package design

import (
	"math"
	"testing"
)

func TestPeakingDisabledBandIsIdentity(t *testing.T) {
	bands := []Band{
		{Frequency: 1000, GainDB: 12, Q: 1.5},
		{Frequency: -500, GainDB: -24, Q: 0},
		{Frequency: 1e9, GainDB: 3, Q: 100},
	}

	for _, band := range bands {
		got := Peaking(band, 48000)
		if !got.IsIdentity() {
			t.Fatalf("disabled band %+v: coefficients %+v, want identity", band, got)
		}
	}
}

func TestPeakingZeroGainIsUnity(t *testing.T) {
	band := Band{Frequency: 1000, GainDB: 0, Q: 1.5, Enabled: true}

	coeffs, err := Peaking(band, 48000).Normalize()
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}

	for _, freq := range []float64{20, 100, 1000, 5000, 20000} {
		mag := coeffs.MagnitudeSquared(freq, 48000)
		if math.Abs(mag-1) > 1e-9 {
			t.Fatalf("|H(%v)|^2 = %v, want 1", freq, mag)
		}
	}
}

func TestPeakingFrequencyClamp(t *testing.T) {
	const sampleRate = 48000.0

	tests := []struct {
		name    string
		freq    float64
		clamped float64
	}{
		{"below range", 5, MinFrequency},
		{"negative", -100, MinFrequency},
		{"above range", 40000, MaxFrequency(sampleRate)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := Band{Frequency: tt.freq, GainDB: 6, Q: 1, Enabled: true}
			ref := Band{Frequency: tt.clamped, GainDB: 6, Q: 1, Enabled: true}

			if Peaking(out, sampleRate) != Peaking(ref, sampleRate) {
				t.Fatalf("frequency %v not clamped to %v", tt.freq, tt.clamped)
			}
		})
	}
}

func TestPeakingQFloor(t *testing.T) {
	for _, q := range []float64{0, -1, 0.01} {
		out := Band{Frequency: 1000, GainDB: 6, Q: q, Enabled: true}
		ref := Band{Frequency: 1000, GainDB: 6, Q: MinQ, Enabled: true}

		if Peaking(out, 48000) != Peaking(ref, 48000) {
			t.Fatalf("Q = %v not floored to %v", q, MinQ)
		}
	}
}

func TestPeakingDegenerateSampleRate(t *testing.T) {
	band := Band{Frequency: 1000, GainDB: 6, Q: 1, Enabled: true}

	for _, rate := range []float64{0, -48000, math.NaN(), math.Inf(1)} {
		if got := Peaking(band, rate); !got.IsIdentity() {
			t.Fatalf("sample rate %v: coefficients %+v, want identity", rate, got)
		}
	}
}

func TestPeakingGainAtCenter(t *testing.T) {
	for _, gainDB := range []float64{-12, -6, 3, 6, 12} {
		band := Band{Frequency: 1000, GainDB: gainDB, Q: 1.5, Enabled: true}

		coeffs, err := Peaking(band, 48000).Normalize()
		if err != nil {
			t.Fatalf("Normalize: %v", err)
		}

		got := coeffs.MagnitudeDB(1000, 48000)
		if math.Abs(got-gainDB) > 0.01 {
			t.Fatalf("gain %v dB: response at center %v dB", gainDB, got)
		}
	}
}

func TestPeakingBoostCutSymmetry(t *testing.T) {
	boost := Band{Frequency: 2000, GainDB: 9, Q: 2, Enabled: true}
	cut := Band{Frequency: 2000, GainDB: -9, Q: 2, Enabled: true}

	boostCoeffs, err := Peaking(boost, 48000).Normalize()
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	cutCoeffs, err := Peaking(cut, 48000).Normalize()
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}

	for _, freq := range []float64{500, 1000, 2000, 4000, 8000} {
		sum := boostCoeffs.MagnitudeDB(freq, 48000) + cutCoeffs.MagnitudeDB(freq, 48000)
		if math.Abs(sum) > 1e-6 {
			t.Fatalf("freq %v: boost+cut = %v dB, want 0", freq, sum)
		}
	}
}

func TestBandClampForRate(t *testing.T) {
	b := Band{Frequency: 100000, GainDB: 3, Q: 1, Enabled: true}

	got := b.ClampForRate(48000)
	if got.Frequency != MaxFrequency(48000) {
		t.Fatalf("Frequency = %v, want %v", got.Frequency, MaxFrequency(48000))
	}
	// Clamp returns a copy; the original band is untouched.
	if b.Frequency != 100000 {
		t.Fatalf("original mutated: %v", b.Frequency)
	}
}

func TestPeakingFilterBuilds(t *testing.T) {
	band := Band{Frequency: 1000, GainDB: 6, Q: 1.5, Enabled: true}

	f, err := PeakingFilter(band, 48000, 2)
	if err != nil {
		t.Fatalf("PeakingFilter: %v", err)
	}
	if f.Channels() != 2 {
		t.Fatalf("Channels = %d, want 2", f.Channels())
	}

	if _, err := PeakingFilter(band, 48000, 0); err == nil {
		t.Fatal("PeakingFilter with 0 channels did not fail")
	}
}
