package czonotope

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/Robert-Debbas/zonotopes/internal/relax"
)

// mixedBranch records which side of the saturation window a mixed
// dimension straddles. It selects the constraint set of the dimension.
type mixedBranch uint8

const (
	branchLower mixedBranch = iota // crosses the lower saturation bound only
	branchUpper                    // crosses the upper saturation bound only
	branchBoth                     // crosses both saturation bounds
)

// ReLU applies the sound abstract transformer of max(0, x) per dimension.
// Stable dimensions are rewritten exactly; each unstable dimension gets
// one fresh noise symbol and two constraints tying the output to the
// input, with the row update chosen by the encoding variant.
// Returns ErrBadVariant for an unknown variant.
func (cz *ConstrainedZonotope) ReLU(variant Variant) (*ConstrainedZonotope, error) {
	if !variant.valid() {
		return nil, fmt.Errorf("variant %d: %w", variant, ErrBadVariant)
	}

	bounds := cz.Concretize()
	results := make([]relax.Result, cz.Dim())
	branches := make([]mixedBranch, cz.Dim())
	for i := range results {
		results[i] = relax.ReLU(bounds[i].Lo, bounds[i].Hi)
		branches[i] = branchLower
	}

	return cz.applyRelaxed(results, branches, 0, math.Inf(1), variant), nil
}

// Clamp applies the sound abstract transformer of clamp(x, lo, hi).
// A non-zero lo is handled through the shift identity
// clamp(x, lo, hi) = lo + clamp(x-lo, 0, hi-lo).
// Returns ErrBadClampBounds unless lo < hi with finite endpoints, and
// ErrBadVariant for an unknown variant.
func (cz *ConstrainedZonotope) Clamp(lo, hi float64, variant Variant) (*ConstrainedZonotope, error) {
	if !variant.valid() {
		return nil, fmt.Errorf("variant %d: %w", variant, ErrBadVariant)
	}
	if err := checkClampBounds(lo, hi); err != nil {
		return nil, err
	}

	bounds := cz.Concretize()
	results := make([]relax.Result, cz.Dim())
	branches := make([]mixedBranch, cz.Dim())
	for i := range results {
		l, u := bounds[i].Lo-lo, bounds[i].Hi-lo
		results[i] = relax.Clamp(l, u, hi-lo)
		switch {
		case l < 0 && hi-lo <= u:
			branches[i] = branchBoth
		case l < 0:
			branches[i] = branchLower
		default:
			branches[i] = branchUpper
		}
	}

	return cz.applyRelaxed(results, branches, lo, hi, variant), nil
}

// Round appends, per dimension, a fresh noise symbol with coefficient
// 0.5. The fresh symbols stay unconstrained: the rounding error is
// independent of the input value at this granularity.
func (cz *ConstrainedZonotope) Round() *ConstrainedZonotope {
	return cz.withErrorBand(0)
}

// Floor is Round with the center shifted by -0.5 so the error band of
// floor(x) ∈ (x-1, x] is symmetric around the new center.
func (cz *ConstrainedZonotope) Floor() *ConstrainedZonotope {
	return cz.withErrorBand(-0.5)
}

// applyRelaxed rebuilds the value from per-dimension relaxation results.
// shift is the lower clamp bound added back after a shifted clamp
// analysis (0 for ReLU); ceil is the absolute upper saturation bound.
// Fresh symbols are allocated only for Mixed dimensions, in dimension
// order; each Mixed dimension contributes two constraints.
func (cz *ConstrainedZonotope) applyRelaxed(results []relax.Result, branches []mixedBranch, shift, ceil float64, variant Variant) *ConstrainedZonotope {
	d, m := cz.w.Dims()
	fresh := 0
	for _, r := range results {
		if r.Kind == relax.Mixed {
			fresh++
		}
	}

	nw := mat.NewDense(d, m+fresh, nil)
	nb := mat.NewVecDense(d, nil)
	cons := append([]Constraint(nil), cz.cons...)
	next := m
	for i := 0; i < d; i++ {
		switch r := results[i]; r.Kind {
		case relax.Zero:
			nb.SetVec(i, shift)
		case relax.Saturate:
			nb.SetVec(i, shift+r.Value)
		case relax.Identity:
			for j := 0; j < m; j++ {
				nw.Set(i, j, cz.w.At(i, j))
			}
			nb.SetVec(i, cz.b.AtVec(i))
		case relax.Mixed:
			oldRow := make([]float64, m+fresh)
			mat.Row(oldRow[:m], i, cz.w)
			oldB := cz.b.AtVec(i)

			newRow := make([]float64, m+fresh)
			var newB float64
			if variant == Standard {
				for j := 0; j < m; j++ {
					newRow[j] = r.Slope * oldRow[j]
				}
				newRow[next] = r.Half
				newB = r.Slope*(oldB-shift) + r.Center + shift
			} else {
				newRow[next] = (r.OutHi - r.OutLo) / 2
				newB = shift + (r.OutLo+r.OutHi)/2
			}
			nw.SetRow(i, newRow)
			nb.SetVec(i, newB)
			cons = appendTies(cons, variant, branches[i], oldRow, newRow, oldB, newB, r, shift, ceil)
			next++
		}
	}

	return &ConstrainedZonotope{w: nw, b: nb, cons: cons}
}

// appendTies emits the two constraints of one mixed dimension.
//
// Standard encoding keeps the relaxed row, so the constraints restate
// the exact one-sided facts the relaxation loses: which saturation
// bounds the output respects and on which side of the input it lies.
// Rectangle encoding replaces the row with a free interval, so the
// constraints must re-tie the output to the input: the ReLU-shaped
// branch by the identity floor and the chord of the relaxation, the
// other branches by the hull of f(x)-x.
func appendTies(cons []Constraint, variant Variant, br mixedBranch, oldRow, newRow []float64, oldB, newB float64, r relax.Result, shift, ceil float64) []Constraint {
	row := make([]float64, len(newRow))
	switch {
	case variant == Standard && br == branchLower:
		// y >= shift
		for j := range row {
			row[j] = -newRow[j]
		}
		cons = append(cons, sparseOf(row, newB-shift))
		// y >= x
		for j := range row {
			row[j] = oldRow[j] - newRow[j]
		}
		cons = append(cons, sparseOf(row, newB-oldB))
	case variant == Standard && br == branchUpper:
		// y <= ceil
		cons = append(cons, sparseOf(newRow, ceil-newB))
		// y <= x
		for j := range row {
			row[j] = newRow[j] - oldRow[j]
		}
		cons = append(cons, sparseOf(row, oldB-newB))
	case variant == Standard && br == branchBoth:
		// y >= shift
		for j := range row {
			row[j] = -newRow[j]
		}
		cons = append(cons, sparseOf(row, newB-shift))
		// y <= ceil
		cons = append(cons, sparseOf(newRow, ceil-newB))
	case variant == Rectangle && br == branchLower:
		// y >= x
		for j := range row {
			row[j] = oldRow[j] - newRow[j]
		}
		cons = append(cons, sparseOf(row, newB-oldB))
		// y lies under the chord of the relaxation, slope a and
		// intercept 2*Half in shifted coordinates.
		for j := range row {
			row[j] = newRow[j] - r.Slope*oldRow[j]
		}
		cons = append(cons, sparseOf(row, r.Slope*oldB+2*r.Half+shift*(1-r.Slope)-newB))
	default:
		// Rectangle, branchUpper or branchBoth: f(x)-x stays within
		// [GapLo, GapHi], which is invariant under the coordinate shift.
		deltaB := newB - oldB
		for j := range row {
			row[j] = newRow[j] - oldRow[j]
		}
		cons = append(cons, sparseOf(row, r.GapHi-deltaB))
		for j := range row {
			row[j] = oldRow[j] - newRow[j]
		}
		cons = append(cons, sparseOf(row, deltaB-r.GapLo))
	}

	return cons
}

// withErrorBand appends one fresh 0.5-coefficient symbol per dimension
// and shifts the center by centerShift. The constraint store is shared
// with the receiver: it is append-only and this path appends nothing.
func (cz *ConstrainedZonotope) withErrorBand(centerShift float64) *ConstrainedZonotope {
	d, m := cz.w.Dims()
	nw := mat.NewDense(d, m+d, nil)
	nb := mat.NewVecDense(d, nil)
	for i := 0; i < d; i++ {
		for j := 0; j < m; j++ {
			nw.Set(i, j, cz.w.At(i, j))
		}
		nw.Set(i, m+i, 0.5)
		nb.SetVec(i, cz.b.AtVec(i)+centerShift)
	}

	return &ConstrainedZonotope{w: nw, b: nb, cons: cz.cons}
}

func checkClampBounds(lo, hi float64) error {
	if math.IsNaN(lo) || math.IsInf(lo, 0) || math.IsNaN(hi) || math.IsInf(hi, 0) || lo >= hi {
		return fmt.Errorf("clamp [%v, %v]: %w", lo, hi, ErrBadClampBounds)
	}

	return nil
}
