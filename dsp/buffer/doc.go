// Package buffer provides reusable planar multi-channel audio blocks.
//
// A [Block] stores frames × channels audio channel-major, matching the
// layout the filter runtime in dsp/filter/biquad processes. Interleave
// and FromInterleaved bridge to the frame-major layout used by audio
// file and device I/O.
package buffer
