package zonotope

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/Robert-Debbas/zonotopes/box"
)

// Zonotope is an abstract value: center b (length d) and generator W
// (d rows, m columns). Column j corresponds to an independent noise
// symbol ranging over [-1, 1].
type Zonotope struct {
	w *mat.Dense
	b *mat.VecDense
}

// New builds a zonotope from a generator matrix and center vector,
// copying both. Returns ErrShapeMismatch unless rows(w) == len(b).
func New(w *mat.Dense, b *mat.VecDense) (*Zonotope, error) {
	if w == nil || b == nil {
		return nil, ErrNilValue
	}

	rows, _ := w.Dims()
	if rows != b.Len() {
		return nil, fmt.Errorf("generator has %d rows, center has %d entries: %w", rows, b.Len(), ErrShapeMismatch)
	}

	return &Zonotope{w: mat.DenseCopyOf(w), b: mat.VecDenseCopyOf(b)}, nil
}

// FromBox lifts a box into a zonotope: center = per-dimension midpoint,
// generator = diagonal matrix of half-ranges (one noise symbol per input
// dimension).
func FromBox(b box.Box) (*Zonotope, error) {
	if err := b.Validate(); err != nil {
		return nil, err
	}

	d := b.Dim()
	w := mat.NewDense(d, d, nil)
	c := mat.NewVecDense(d, b.Midpoints())
	for i, hr := range b.HalfRanges() {
		w.Set(i, i, hr)
	}

	return &Zonotope{w: w, b: c}, nil
}

// Dim returns the number of value-space dimensions d.
func (z *Zonotope) Dim() int {
	rows, _ := z.w.Dims()

	return rows
}

// Symbols returns the current noise-symbol count m (generator width).
func (z *Zonotope) Symbols() int {
	_, cols := z.w.Dims()

	return cols
}

// Generator returns a copy of the generator matrix.
func (z *Zonotope) Generator() *mat.Dense { return mat.DenseCopyOf(z.w) }

// Center returns a copy of the center vector.
func (z *Zonotope) Center() *mat.VecDense { return mat.VecDenseCopyOf(z.b) }

// Linear applies the exact affine transformer: center ← W'·b + b',
// generator ← W'·W. Returns ErrShapeMismatch when cols(W') != d or
// len(b') != rows(W').
func (z *Zonotope) Linear(weights *mat.Dense, bias *mat.VecDense) (*Zonotope, error) {
	if weights == nil || bias == nil {
		return nil, ErrNilValue
	}

	rows, cols := weights.Dims()
	if cols != z.Dim() {
		return nil, fmt.Errorf("weights have %d columns, value has %d dimensions: %w", cols, z.Dim(), ErrShapeMismatch)
	}
	if bias.Len() != rows {
		return nil, fmt.Errorf("weights have %d rows, bias has %d entries: %w", rows, bias.Len(), ErrShapeMismatch)
	}

	nw := new(mat.Dense)
	nw.Mul(weights, z.w)

	nb := mat.NewVecDense(rows, nil)
	nb.MulVec(weights, z.b)
	nb.AddVec(nb, bias)

	return &Zonotope{w: nw, b: nb}, nil
}

// Concretize returns the interval enclosure of the zonotope:
// per dimension i, b_i ± Σ_j |W_ij|. Exact for the zonotope's own shape.
func (z *Zonotope) Concretize() box.Box {
	d := z.Dim()
	out := make(box.Box, d)
	row := make([]float64, z.Symbols())
	for i := 0; i < d; i++ {
		mat.Row(row, i, z.w)
		radius := floats.Norm(row, 1)
		c := z.b.AtVec(i)
		out[i] = box.Interval{Lo: c - radius, Hi: c + radius}
	}

	return out
}
