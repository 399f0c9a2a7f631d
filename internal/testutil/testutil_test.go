package testutil

import (
	"math"
	"testing"
)

func TestDeterministicSine(t *testing.T) {
	a := DeterministicSine(440, 44100, 0.5, 100)
	b := DeterministicSine(440, 44100, 0.5, 100)
	if len(a) != 100 {
		t.Fatalf("len = %d, want 100", len(a))
	}
	if math.Abs(a[0]) > 1e-15 {
		t.Fatalf("a[0] = %v, want 0", a[0])
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("non-deterministic at index %d", i)
		}
	}
}

func TestDeterministicNoise(t *testing.T) {
	a := DeterministicNoise(42, 1.0, 64)
	b := DeterministicNoise(42, 1.0, 64)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("noise not deterministic at index %d", i)
		}
	}
}

func TestImpulse(t *testing.T) {
	imp := Impulse(8, 3)
	for i, v := range imp {
		want := 0.0
		if i == 3 {
			want = 1
		}
		if v != want {
			t.Fatalf("imp[%d] = %v, want %v", i, v, want)
		}
	}
}

func TestStereoBlockIndependent(t *testing.T) {
	mono := []float64{1, 2}
	block := StereoBlock(mono)

	block[0][0] = 9
	if mono[0] != 1 || block[1][0] != 1 {
		t.Fatal("channels alias the source or each other")
	}
}

func TestMaxAbsDiff(t *testing.T) {
	d, err := MaxAbsDiff([]float64{1, 2}, []float64{1, 2.5})
	if err != nil {
		t.Fatalf("MaxAbsDiff: %v", err)
	}
	if d != 0.5 {
		t.Fatalf("diff = %v, want 0.5", d)
	}

	if _, err := MaxAbsDiff([]float64{1}, []float64{1, 2}); err == nil {
		t.Fatal("length mismatch did not fail")
	}
}
