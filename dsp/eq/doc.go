// Package eq implements a real-time parametric equalizer core.
//
// An [Engine] combines a cascade of peaking filters ([Chain]) with
// bypass, output-gain staging and RMS metering. Engine.ProcessBlock is
// designed to run inside a hard real-time audio callback: it performs
// no I/O, takes no locks, and in steady state allocates nothing.
// Parameter changes from a control thread build new state off the
// audio thread and publish it atomically.
//
// Band parameters and coefficient design live in dsp/filter/design;
// the per-band runtime is dsp/filter/biquad.
package eq
