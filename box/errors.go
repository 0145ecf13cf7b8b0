package box

import "errors"

var (
	// ErrEmptyBox indicates a box with zero dimensions where at least one
	// dimension is required.
	ErrEmptyBox = errors.New("box: box must have at least one dimension")

	// ErrInvertedInterval indicates an interval with Lo > Hi.
	ErrInvertedInterval = errors.New("box: interval lower bound exceeds upper bound")

	// ErrNaNInf indicates a NaN or ±Inf endpoint where finite values are required.
	ErrNaNInf = errors.New("box: NaN or Inf bound encountered")

	// ErrDimensionMismatch indicates operands with incompatible dimension counts.
	ErrDimensionMismatch = errors.New("box: dimension mismatch")

	// ErrBadSampleCount indicates a non-positive draw count passed to Sample.
	ErrBadSampleCount = errors.New("box: sample count must be positive")

	// ErrNoVertices indicates an empty point batch passed to FromVertices.
	ErrNoVertices = errors.New("box: at least one vertex is required")
)
