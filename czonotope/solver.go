package czonotope

import (
	"context"
	"fmt"
	"math"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/optimize/convex/lp"

	"github.com/Robert-Debbas/zonotopes/box"
	"github.com/Robert-Debbas/zonotopes/logger"
)

// ConcretizeExact returns, per output dimension, the tightest interval
// containing the dimension's value over all noise-symbol assignments
// that satisfy the constraint store. Each side of each dimension is one
// linear program over the constrained unit box.
//
// The result always has Dim() entries. A dimension whose LP did not
// converge carries a non-nil Err wrapping ErrSolverFailed with NaN on
// the failed side(s); other dimensions are unaffected. The returned
// error is non-nil only for invalid stores or a cancelled context.
//
// With an empty store the LP answer equals the cheap enclosure, so
// Concretize is returned directly.
func (cz *ConstrainedZonotope) ConcretizeExact(ctx context.Context, opts ...Option) ([]Bound, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	d, m := cz.w.Dims()
	if len(cz.cons) == 0 {
		out := make([]Bound, d)
		for i, iv := range cz.Concretize() {
			out[i] = Bound{Lo: iv.Lo, Hi: iv.Hi}
		}

		return out, nil
	}

	for k, c := range cz.cons {
		for _, j := range c.Index {
			if j < 0 || j >= m {
				return nil, fmt.Errorf("constraint %d references symbol %d of %d: %w", k, j, m, ErrConstraintWidth)
			}
		}
	}

	a, rhs := cz.standardForm()

	out := make([]Bound, d)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.workers)
	for i := 0; i < d; i++ {
		i := i
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			out[i] = cz.solveDim(i, a, rhs, o.tol)

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}

// standardForm builds the equality-form feasible region shared by every
// per-dimension LP. The substitution x = eps + 1 maps eps ∈ [-1, 1]^m
// onto x ∈ [0, 2]^m; with slack variables s (box) and t (constraints)
// the region is
//
//	x_j + s_j = 2                       j = 1..m
//	Σ_k A_kj·x_j + t_k = c_k + Σ_j A_kj k = 1..K
//
// over nonnegative variables [x, s, t], as lp.Simplex expects.
func (cz *ConstrainedZonotope) standardForm() (*mat.Dense, []float64) {
	_, m := cz.w.Dims()
	kk := len(cz.cons)

	a := mat.NewDense(m+kk, 2*m+kk, nil)
	rhs := make([]float64, m+kk)
	for j := 0; j < m; j++ {
		a.Set(j, j, 1)
		a.Set(j, m+j, 1)
		rhs[j] = 2
	}
	for k, c := range cz.cons {
		for t, j := range c.Index {
			a.Set(m+k, j, c.Coeff[t])
		}
		a.Set(m+k, 2*m+k, 1)
		rhs[m+k] = c.Bound + floats.Sum(c.Coeff)
	}

	return a, rhs
}

// solveDim extracts one dimension's bound. In the substituted variables
// the objective row α gives
//
//	lower = min αᵀx - Σα + β
//	upper = β - min (-α)ᵀx - Σα
//
// where β is the dimension's center. The feasible region is a subset of
// the unit box, so any solver failure is numerical and reported as is;
// bounds are never widened to ±Inf.
func (cz *ConstrainedZonotope) solveDim(i int, a *mat.Dense, rhs []float64, tol float64) Bound {
	_, m := cz.w.Dims()
	_, n := a.Dims()

	alpha := make([]float64, m)
	mat.Row(alpha, i, cz.w)
	sum := floats.Sum(alpha)
	beta := cz.b.AtVec(i)

	obj := make([]float64, n)
	copy(obj, alpha)
	lo, hi := math.NaN(), math.NaN()
	var errLo, errHi error
	if optF, _, err := lp.Simplex(obj, a, rhs, tol, nil); err != nil {
		errLo = err
	} else {
		lo = optF - sum + beta
	}
	for j := 0; j < m; j++ {
		obj[j] = -alpha[j]
	}
	if optF, _, err := lp.Simplex(obj, a, rhs, tol, nil); err != nil {
		errHi = err
	} else {
		hi = beta - optF - sum
	}

	if errLo != nil || errHi != nil {
		log := logger.Logger()
		log.Debug().
			Int("dim", i).
			AnErr("lower", errLo).
			AnErr("upper", errHi).
			Msg("bound extraction LP failed")

		return Bound{Lo: lo, Hi: hi, Err: fmt.Errorf("dimension %d: %w", i, ErrSolverFailed)}
	}

	return Bound{Lo: lo, Hi: hi}
}

// ExactBox is ConcretizeExact flattened to a box. It fails on the first
// dimension whose LP failed, so callers that need partial results
// should use ConcretizeExact directly.
func (cz *ConstrainedZonotope) ExactBox(ctx context.Context, opts ...Option) (box.Box, error) {
	bounds, err := cz.ConcretizeExact(ctx, opts...)
	if err != nil {
		return nil, err
	}

	out := make(box.Box, len(bounds))
	for i, b := range bounds {
		if !b.OK() {
			return nil, b.Err
		}
		out[i] = box.Interval{Lo: b.Lo, Hi: b.Hi}
	}

	return out, nil
}
