package czonotope

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/Robert-Debbas/zonotopes/box"
)

// ConstrainedZonotope is an abstract value: center b (length d),
// generator W (d rows, m columns over the noise-symbol arena) and an
// append-only store of linear inequality constraints on the symbols.
type ConstrainedZonotope struct {
	w    *mat.Dense
	b    *mat.VecDense
	cons []Constraint
}

// New builds a constrained zonotope from a generator matrix, center
// vector and an initial constraint store, copying all three.
// Returns ErrShapeMismatch unless rows(w) == len(b).
func New(w *mat.Dense, b *mat.VecDense, cons []Constraint) (*ConstrainedZonotope, error) {
	if w == nil || b == nil {
		return nil, ErrNilValue
	}

	rows, _ := w.Dims()
	if rows != b.Len() {
		return nil, fmt.Errorf("generator has %d rows, center has %d entries: %w", rows, b.Len(), ErrShapeMismatch)
	}

	return &ConstrainedZonotope{
		w:    mat.DenseCopyOf(w),
		b:    mat.VecDenseCopyOf(b),
		cons: append([]Constraint(nil), cons...),
	}, nil
}

// FromBox lifts a box into a constrained zonotope with an empty store:
// center = per-dimension midpoint, generator = diagonal half-ranges.
func FromBox(b box.Box) (*ConstrainedZonotope, error) {
	if err := b.Validate(); err != nil {
		return nil, err
	}

	d := b.Dim()
	w := mat.NewDense(d, d, nil)
	c := mat.NewVecDense(d, b.Midpoints())
	for i, hr := range b.HalfRanges() {
		w.Set(i, i, hr)
	}

	return &ConstrainedZonotope{w: w, b: c}, nil
}

// Dim returns the number of value-space dimensions d.
func (cz *ConstrainedZonotope) Dim() int {
	rows, _ := cz.w.Dims()

	return rows
}

// Symbols returns the current noise-symbol count m (generator width).
func (cz *ConstrainedZonotope) Symbols() int {
	_, cols := cz.w.Dims()

	return cols
}

// Generator returns a copy of the generator matrix.
func (cz *ConstrainedZonotope) Generator() *mat.Dense { return mat.DenseCopyOf(cz.w) }

// Center returns a copy of the center vector.
func (cz *ConstrainedZonotope) Center() *mat.VecDense { return mat.VecDenseCopyOf(cz.b) }

// Constraints returns a copy of the constraint store.
func (cz *ConstrainedZonotope) Constraints() []Constraint {
	return append([]Constraint(nil), cz.cons...)
}

// Linear applies the exact affine transformer: center ← W'·b + b',
// generator ← W'·W. Constraints restrict noise symbols, not values, so
// the store passes through unchanged.
func (cz *ConstrainedZonotope) Linear(weights *mat.Dense, bias *mat.VecDense) (*ConstrainedZonotope, error) {
	if weights == nil || bias == nil {
		return nil, ErrNilValue
	}

	rows, cols := weights.Dims()
	if cols != cz.Dim() {
		return nil, fmt.Errorf("weights have %d columns, value has %d dimensions: %w", cols, cz.Dim(), ErrShapeMismatch)
	}
	if bias.Len() != rows {
		return nil, fmt.Errorf("weights have %d rows, bias has %d entries: %w", rows, bias.Len(), ErrShapeMismatch)
	}

	nw := new(mat.Dense)
	nw.Mul(weights, cz.w)

	nb := mat.NewVecDense(rows, nil)
	nb.MulVec(weights, cz.b)
	nb.AddVec(nb, bias)

	return &ConstrainedZonotope{w: nw, b: nb, cons: cz.cons}, nil
}

// Concretize returns the cheap interval enclosure b_i ± Σ_j |W_ij|,
// ignoring the constraint store. Sound but loose; this is the tier used
// by transformers to decide case splits — the exact tier is
// ConcretizeExact.
func (cz *ConstrainedZonotope) Concretize() box.Box {
	d := cz.Dim()
	out := make(box.Box, d)
	row := make([]float64, cz.Symbols())
	for i := 0; i < d; i++ {
		mat.Row(row, i, cz.w)
		radius := floats.Norm(row, 1)
		c := cz.b.AtVec(i)
		out[i] = box.Interval{Lo: c - radius, Hi: c + radius}
	}

	return out
}
