package eq

import "errors"

// Errors returned by engine configuration and block processing.
var (
	// ErrInvalidConfiguration reports unusable engine parameters
	// (non-positive sample rate, bad channel count). It is returned
	// from Configure and construction only, never from ProcessBlock.
	ErrInvalidConfiguration = errors.New("eq: invalid configuration")

	// ErrShapeMismatch reports a block whose shape disagrees with the
	// configured channel count. It signals a caller contract violation.
	ErrShapeMismatch = errors.New("eq: block shape mismatch")
)
