package czonotope

import "errors"

var (
	// ErrShapeMismatch indicates incompatible matrix/vector dimensions at
	// construction or in an affine transform. Never silently reshaped.
	ErrShapeMismatch = errors.New("czonotope: shape mismatch")

	// ErrNilValue indicates a nil constrained zonotope receiver or operand.
	ErrNilValue = errors.New("czonotope: nil value")

	// ErrBadClampBounds indicates clamp bounds with lo >= hi or a
	// non-finite endpoint.
	ErrBadClampBounds = errors.New("czonotope: invalid clamp bounds")

	// ErrBadVariant indicates an unknown constraint-encoding variant.
	ErrBadVariant = errors.New("czonotope: unknown encoding variant")

	// ErrSolverFailed indicates the LP for one dimension's bound did not
	// converge. The polytope is a subset of the unit box, so apparent
	// unboundedness or infeasibility signals a numerical fault; it is
	// reported, never mapped to ±Inf.
	ErrSolverFailed = errors.New("czonotope: bound solver failed")

	// ErrConstraintWidth indicates a stored constraint referencing a noise
	// symbol beyond the current generator width. Unreachable under the
	// append-with-arena discipline; checked defensively before solving.
	ErrConstraintWidth = errors.New("czonotope: constraint exceeds generator width")
)
