// Package biquad provides biquad (second-order IIR) filter runtime primitives.
//
// A [Section] implements Direct Form II Transposed processing for a single
// channel. A [Filter] binds one coefficient set to a per-channel set of
// sections for planar multi-channel blocks, which is the unit the EQ
// cascade in dsp/eq is built from.
//
// This package provides the processing runtime only. Coefficient design
// (the peaking EQ) lives in dsp/filter/design and hands its raw cookbook
// output to [NewFilter], which normalizes it.
package biquad
