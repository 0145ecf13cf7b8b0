package network

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/Robert-Debbas/zonotopes/box"
	"github.com/Robert-Debbas/zonotopes/czonotope"
	"github.com/Robert-Debbas/zonotopes/zonotope"
)

// Layer is one affine map followed by an activation: y = act(W·x + b).
// Layers are immutable after construction.
type Layer struct {
	w   *mat.Dense
	b   *mat.VecDense
	act Activation
}

// NewLayer validates and copies the layer parameters.
// Returns ErrShapeMismatch unless rows(w) == len(b) and ErrBadActivation
// for a malformed activation.
func NewLayer(w *mat.Dense, b *mat.VecDense, act Activation) (Layer, error) {
	if w == nil || b == nil {
		return Layer{}, ErrNilValue
	}

	rows, _ := w.Dims()
	if rows != b.Len() {
		return Layer{}, fmt.Errorf("weights have %d rows, bias has %d entries: %w", rows, b.Len(), ErrShapeMismatch)
	}
	if err := act.validate(); err != nil {
		return Layer{}, err
	}

	return Layer{w: mat.DenseCopyOf(w), b: mat.VecDenseCopyOf(b), act: act}, nil
}

// InDim returns the layer's input width.
func (l Layer) InDim() int {
	_, cols := l.w.Dims()

	return cols
}

// OutDim returns the layer's output width.
func (l Layer) OutDim() int {
	rows, _ := l.w.Dims()

	return rows
}

// Weights returns a copy of the weight matrix.
func (l Layer) Weights() *mat.Dense { return mat.DenseCopyOf(l.w) }

// Bias returns a copy of the bias vector.
func (l Layer) Bias() *mat.VecDense { return mat.VecDenseCopyOf(l.b) }

// Act returns the layer's activation.
func (l Layer) Act() Activation { return l.act }

// applyVector evaluates the layer on one concrete point.
func (l Layer) applyVector(x []float64) []float64 {
	out, in := l.w.Dims()
	y := make([]float64, out)
	for i := 0; i < out; i++ {
		acc := l.b.AtVec(i)
		for j := 0; j < in; j++ {
			acc += l.w.At(i, j) * x[j]
		}
		y[i] = l.act.apply(acc)
	}

	return y
}

// applyVertices evaluates the layer on a batch of concrete points.
func (l Layer) applyVertices(points [][]float64) [][]float64 {
	out := make([][]float64, len(points))
	for k, p := range points {
		out[k] = l.applyVector(p)
	}

	return out
}

// applyBox pushes an interval vector through the layer. The affine part
// uses sign-aware interval arithmetic: each weight contributes the
// interval endpoint matching its sign. Every activation kind is
// monotone nondecreasing, so its interval extension by endpoint
// evaluation is exact; the whole step over-approximates only through
// the affine part's loss of input correlations.
func (l Layer) applyBox(in box.Box) box.Box {
	out, cols := l.w.Dims()
	res := make(box.Box, out)
	for i := 0; i < out; i++ {
		lo, hi := l.b.AtVec(i), l.b.AtVec(i)
		for j := 0; j < cols; j++ {
			w := l.w.At(i, j)
			if w >= 0 {
				lo += w * in[j].Lo
				hi += w * in[j].Hi
			} else {
				lo += w * in[j].Hi
				hi += w * in[j].Lo
			}
		}
		res[i] = box.Interval{Lo: l.act.apply(lo), Hi: l.act.apply(hi)}
	}

	return res
}

// applyZonotope pushes a zonotope through the layer: affine map, then
// the activation's abstract transformer. Clamp rounds before saturating,
// matching the concrete semantics.
func (l Layer) applyZonotope(z *zonotope.Zonotope) (*zonotope.Zonotope, error) {
	z, err := z.Linear(l.w, l.b)
	if err != nil {
		return nil, err
	}

	switch l.act.Kind {
	case ReLU:
		return z.ReLU(), nil
	case Clamp:
		switch l.act.Round {
		case RoundNearest:
			z = z.Round()
		case RoundFloor:
			z = z.Floor()
		}

		return z.Clamp(l.act.Lo, l.act.Hi)
	default:
		return z, nil
	}
}

// applyConstrained is applyZonotope in the constrained domain.
func (l Layer) applyConstrained(cz *czonotope.ConstrainedZonotope, variant czonotope.Variant) (*czonotope.ConstrainedZonotope, error) {
	cz, err := cz.Linear(l.w, l.b)
	if err != nil {
		return nil, err
	}

	switch l.act.Kind {
	case ReLU:
		return cz.ReLU(variant)
	case Clamp:
		switch l.act.Round {
		case RoundNearest:
			cz = cz.Round()
		case RoundFloor:
			cz = cz.Floor()
		}

		return cz.Clamp(l.act.Lo, l.act.Hi, variant)
	default:
		return cz, nil
	}
}
