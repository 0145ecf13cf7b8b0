package zonotope

import "errors"

var (
	// ErrShapeMismatch indicates incompatible matrix/vector dimensions at
	// construction or in an affine transform. Never silently reshaped.
	ErrShapeMismatch = errors.New("zonotope: shape mismatch")

	// ErrNilValue indicates a nil zonotope receiver or operand.
	ErrNilValue = errors.New("zonotope: nil value")

	// ErrBadClampBounds indicates clamp bounds with lo >= hi or a
	// non-finite endpoint.
	ErrBadClampBounds = errors.New("zonotope: invalid clamp bounds")
)
