package czonotope

import "fmt"

// Variant selects the constraint encoding used by the nonlinear
// transformers.
type Variant uint8

const (
	// Standard keeps the zonotope row update and adds two inequalities per
	// mixed dimension tying the relaxed row to the pre-transform row.
	Standard Variant = iota

	// Rectangle replaces the mixed dimension's row with a fresh symbol
	// fixed at the midpoint of the output sub-range (a box approximation
	// along the new direction) plus inequalities tying it back to the
	// pre-transform row.
	Rectangle
)

// String implements fmt.Stringer for diagnostics.
func (v Variant) String() string {
	switch v {
	case Standard:
		return "standard"
	case Rectangle:
		return "rectangle"
	default:
		return fmt.Sprintf("variant(%d)", uint8(v))
	}
}

func (v Variant) valid() bool { return v == Standard || v == Rectangle }

// Constraint is one stored inequality over noise symbols:
//
//	Σ_k Coeff[k]·eps[Index[k]] <= Bound
//
// Rows are sparse: only symbols with non-zero coefficients are listed.
// Symbol indices refer to the shared noise-symbol arena of one
// propagation, so a constraint written when the generator had m columns
// remains valid after the arena grows beyond m.
type Constraint struct {
	Index []int
	Coeff []float64
	Bound float64
}

// Bound is the exact bound-extraction result for one output dimension.
// When Err is nil, [Lo, Hi] is the LP-certified enclosure. When Err is
// non-nil the failed side(s) are NaN; the dimension failed, others may
// still have succeeded (partial-success result).
type Bound struct {
	Lo  float64
	Hi  float64
	Err error
}

// OK reports whether the dimension's bound was solved on both sides.
func (b Bound) OK() bool { return b.Err == nil }

// sparseOf collects the non-zero entries of a dense row into a Constraint
// with the given bound.
func sparseOf(row []float64, bound float64) Constraint {
	var idx []int
	var coef []float64
	for j, v := range row {
		if v != 0 {
			idx = append(idx, j)
			coef = append(coef, v)
		}
	}

	return Constraint{Index: idx, Coeff: coef, Bound: bound}
}
