package biquad

import (
	"errors"
	"math"
	"testing"
)

func TestIdentity(t *testing.T) {
	id := Identity()
	if id.B0 != 1 || id.B1 != 0 || id.B2 != 0 || id.A0 != 1 || id.A1 != 0 || id.A2 != 0 {
		t.Fatalf("Identity() = %+v", id)
	}
	if !id.IsIdentity() {
		t.Fatal("IsIdentity() = false for Identity()")
	}
	if (RawCoefficients{B0: 1, A0: 2}).IsIdentity() {
		t.Fatal("IsIdentity() = true for non-identity set")
	}
}

func TestNormalize(t *testing.T) {
	raw := RawCoefficients{B0: 2, B1: 4, B2: 6, A0: 2, A1: 1, A2: 0.5}

	got, err := raw.Normalize()
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}

	want := Coefficients{B0: 1, B1: 2, B2: 3, A1: 0.5, A2: 0.25}
	if got != want {
		t.Fatalf("Normalize = %+v, want %+v", got, want)
	}
}

func TestNormalizeRejectsDegenerateA0(t *testing.T) {
	for _, a0 := range []float64{0, math.NaN(), math.Inf(1)} {
		raw := RawCoefficients{B0: 1, A0: a0}
		if _, err := raw.Normalize(); !errors.Is(err, ErrInvalidConfiguration) {
			t.Fatalf("a0 = %v: err = %v, want ErrInvalidConfiguration", a0, err)
		}
	}
}
