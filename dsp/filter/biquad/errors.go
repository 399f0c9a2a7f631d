package biquad

import "errors"

// Errors returned by filter construction and processing.
var (
	// ErrInvalidConfiguration reports an unusable filter configuration
	// (bad channel count, degenerate coefficients). It is returned at
	// construction time only, never from the processing path.
	ErrInvalidConfiguration = errors.New("biquad: invalid configuration")

	// ErrShapeMismatch reports a block whose shape disagrees with the
	// filter configuration. It signals a caller contract violation, not
	// a recoverable runtime condition.
	ErrShapeMismatch = errors.New("biquad: block shape mismatch")
)
