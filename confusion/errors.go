package confusion

import "errors"

// Sentinel errors returned by Matrices and WeightedMatrices. All messages
// carry the "confusion: ..." prefix; match with errors.Is. Inputs are
// validated up front, before any matrix is allocated, so a non-nil error
// means nothing was computed.
var (
	// ErrBadClassCount indicates numClasses <= 0.
	ErrBadClassCount = errors.New("confusion: number of classes must be positive")

	// ErrLengthMismatch indicates the target/bias/marginal sequences differ in length.
	ErrLengthMismatch = errors.New("confusion: input sequences differ in length")

	// ErrLabelOutOfRange indicates a label index outside [0, numClasses).
	ErrLabelOutOfRange = errors.New("confusion: label index out of range")

	// ErrNegativeMarginal indicates a marginal weight below zero.
	ErrNegativeMarginal = errors.New("confusion: marginal weight must be non-negative")
)
