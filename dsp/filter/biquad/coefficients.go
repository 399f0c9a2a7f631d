package biquad

import (
	"fmt"
	"math"
)

// Coefficients holds the transfer function coefficients for a single
// second-order section (biquad). a0 is normalized to 1 and not stored.
//
// The sign convention follows Direct Form II Transposed:
//
//	y  = B0*x + d0
//	= B1*x - A1*y + d1
//	= B2*x - A2*y
type Coefficients struct {
	B0, B1, B2 float64 // feedforward (numerator)
	A1, A2     float64 // feedback (denominator)
}

// RawCoefficients holds an un-normalized second-order transfer function
// as produced by the cookbook designers in dsp/filter/design: two
// coefficient triples with A0 still present.
type RawCoefficients struct {
	B0, B1, B2 float64 // feedforward (numerator)
	A0, A1, A2 float64 // feedback (denominator)
}

// Identity returns the unity pass-through coefficient set
// (b = [1 0 0], a = [1 0 0]).
func Identity() RawCoefficients {
	return RawCoefficients{B0: 1, A0: 1}
}

// IsIdentity reports whether r is exactly the unity pass-through set.
func (r RawCoefficients) IsIdentity() bool {
	return r == Identity()
}

// Normalize divides both triples by A0 and drops it, yielding the form
// the runtime processes. It fails if A0 is zero or non-finite.
func (r RawCoefficients) Normalize() (Coefficients, error) {
	if r.A0 == 0 || math.IsNaN(r.A0) || math.IsInf(r.A0, 0) {
		return Coefficients{}, fmt.Errorf("%w: a0 must be finite and non-zero: %v", ErrInvalidConfiguration, r.A0)
	}

	return Coefficients{
		B0: r.B0 / r.A0,
		B1: r.B1 / r.A0,
		B2: r.B2 / r.A0,
		A1: r.A1 / r.A0,
		A2: r.A2 / r.A0,
	}, nil
}
