package zonotope

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/Robert-Debbas/zonotopes/internal/relax"
)

// ReLU applies the sound abstract transformer of max(0, x) per dimension.
// Stable dimensions (fully dead or fully active under the current interval
// enclosure) are rewritten exactly; each unstable dimension gets the
// minimal-area relaxation and one fresh noise symbol.
func (z *Zonotope) ReLU() *Zonotope {
	bounds := z.Concretize()
	results := make([]relax.Result, z.Dim())
	for i := range results {
		results[i] = relax.ReLU(bounds[i].Lo, bounds[i].Hi)
	}

	return z.applyRelaxed(results, 0)
}

// Clamp applies the sound abstract transformer of clamp(x, lo, hi).
// A non-zero lo is handled through the shift identity
// clamp(x, lo, hi) = lo + clamp(x-lo, 0, hi-lo).
// Returns ErrBadClampBounds unless lo < hi with finite endpoints.
func (z *Zonotope) Clamp(lo, hi float64) (*Zonotope, error) {
	if err := checkClampBounds(lo, hi); err != nil {
		return nil, err
	}

	bounds := z.Concretize()
	results := make([]relax.Result, z.Dim())
	for i := range results {
		results[i] = relax.Clamp(bounds[i].Lo-lo, bounds[i].Hi-lo, hi-lo)
	}

	return z.applyRelaxed(results, lo), nil
}

// Round appends, per dimension, a fresh noise symbol with coefficient 0.5:
// the maximum error of rounding to nearest, as an independent symbol.
func (z *Zonotope) Round() *Zonotope {
	return z.withErrorBand(0)
}

// Floor is Round with the center shifted by -0.5 so the error band of
// floor(x) ∈ (x-1, x] is symmetric around the new center.
func (z *Zonotope) Floor() *Zonotope {
	return z.withErrorBand(-0.5)
}

// applyRelaxed rebuilds the zonotope from per-dimension relaxation
// results. shift is the lower clamp bound added back after a shifted
// clamp analysis (0 for ReLU). Fresh symbols are allocated only for
// Mixed dimensions, in dimension order.
func (z *Zonotope) applyRelaxed(results []relax.Result, shift float64) *Zonotope {
	d, m := z.w.Dims()
	fresh := 0
	for _, r := range results {
		if r.Kind == relax.Mixed {
			fresh++
		}
	}

	nw := mat.NewDense(d, m+fresh, nil)
	nb := mat.NewVecDense(d, nil)
	next := m
	for i := 0; i < d; i++ {
		switch r := results[i]; r.Kind {
		case relax.Zero:
			nb.SetVec(i, shift)
		case relax.Saturate:
			nb.SetVec(i, shift+r.Value)
		case relax.Identity:
			for j := 0; j < m; j++ {
				nw.Set(i, j, z.w.At(i, j))
			}
			nb.SetVec(i, z.b.AtVec(i))
		case relax.Mixed:
			for j := 0; j < m; j++ {
				nw.Set(i, j, r.Slope*z.w.At(i, j))
			}
			nw.Set(i, next, r.Half)
			nb.SetVec(i, r.Slope*(z.b.AtVec(i)-shift)+r.Center+shift)
			next++
		}
	}

	return &Zonotope{w: nw, b: nb}
}

// withErrorBand appends one fresh 0.5-coefficient symbol per dimension
// and shifts the center by centerShift.
func (z *Zonotope) withErrorBand(centerShift float64) *Zonotope {
	d, m := z.w.Dims()
	nw := mat.NewDense(d, m+d, nil)
	nb := mat.NewVecDense(d, nil)
	for i := 0; i < d; i++ {
		for j := 0; j < m; j++ {
			nw.Set(i, j, z.w.At(i, j))
		}
		nw.Set(i, m+i, 0.5)
		nb.SetVec(i, z.b.AtVec(i)+centerShift)
	}

	return &Zonotope{w: nw, b: nb}
}

func checkClampBounds(lo, hi float64) error {
	if math.IsNaN(lo) || math.IsInf(lo, 0) || math.IsNaN(hi) || math.IsInf(hi, 0) || lo >= hi {
		return fmt.Errorf("clamp [%v, %v]: %w", lo, hi, ErrBadClampBounds)
	}

	return nil
}
