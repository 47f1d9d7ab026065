package erasure

import "errors"

// Error kinds for the erasure package. These mirror the taxonomy carried
// through the whole coding stack: callers branch on the error value, never
// on a formatted message.
var (
	// ErrInvalidParameters indicates invalid (n, m) or empty input data.
	ErrInvalidParameters = errors.New("erasure: invalid parameters")

	// ErrMismatchedFragments indicates the fragments passed to Decode
	// disagree on block id, n, m, original length, or payload length.
	ErrMismatchedFragments = errors.New("erasure: mismatched fragments")

	// ErrInsufficientFragments indicates fewer than m fragments were
	// supplied to Decode.
	ErrInsufficientFragments = errors.New("erasure: insufficient fragments")

	// ErrDecodingFailure indicates the selected m fragments' generator
	// sub-matrix was not invertible. A well-formed Cauchy matrix never
	// triggers this; its presence indicates fragment or matrix corruption.
	ErrDecodingFailure = errors.New("erasure: decoding failure")
)
