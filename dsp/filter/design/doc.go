// Package design provides parametric EQ band description and peaking
// filter coefficient design.
//
// [Peaking] maps a [Band] and a sample rate to the raw RBJ audio-EQ
// cookbook transfer function. Design is pure and never fails: all
// inputs are defensively clamped, so it is safe to call from any
// thread, including ahead of a real-time swap. Normalization of the
// raw coefficients is deferred to filter construction in
// dsp/filter/biquad.
package design
