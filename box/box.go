package box

import (
	"fmt"
	"math"
)

// Interval is a closed interval [Lo, Hi] on one dimension.
type Interval struct {
	Lo float64
	Hi float64
}

// Width returns Hi - Lo.
func (iv Interval) Width() float64 { return iv.Hi - iv.Lo }

// Mid returns the midpoint (Lo + Hi) / 2.
func (iv Interval) Mid() float64 { return (iv.Lo + iv.Hi) / 2 }

// HalfRange returns (Hi - Lo) / 2.
func (iv Interval) HalfRange() float64 { return (iv.Hi - iv.Lo) / 2 }

// Contains reports whether x lies in [Lo-eps, Hi+eps].
func (iv Interval) Contains(x, eps float64) bool {
	return x >= iv.Lo-eps && x <= iv.Hi+eps
}

// Box is an ordered list of intervals, one per dimension.
type Box []Interval

// New builds a validated Box from intervals.
// Returns ErrEmptyBox, ErrNaNInf or ErrInvertedInterval on invalid input.
func New(intervals ...Interval) (Box, error) {
	b := Box(append([]Interval(nil), intervals...))
	if err := b.Validate(); err != nil {
		return nil, err
	}

	return b, nil
}

// MustNew is New that panics on error; intended for tests and literals.
func MustNew(intervals ...Interval) Box {
	b, err := New(intervals...)
	if err != nil {
		panic(err)
	}

	return b
}

// FromPairs builds a Box from [lower, upper] pairs.
func FromPairs(pairs [][2]float64) (Box, error) {
	intervals := make([]Interval, len(pairs))
	for i, p := range pairs {
		intervals[i] = Interval{Lo: p[0], Hi: p[1]}
	}

	return New(intervals...)
}

// Validate checks the box invariants: at least one dimension, finite
// endpoints, Lo <= Hi per dimension.
func (b Box) Validate() error {
	if len(b) == 0 {
		return ErrEmptyBox
	}
	for i, iv := range b {
		if math.IsNaN(iv.Lo) || math.IsInf(iv.Lo, 0) || math.IsNaN(iv.Hi) || math.IsInf(iv.Hi, 0) {
			return fmt.Errorf("dimension %d: %w", i, ErrNaNInf)
		}
		if iv.Lo > iv.Hi {
			return fmt.Errorf("dimension %d: %w", i, ErrInvertedInterval)
		}
	}

	return nil
}

// Dim returns the number of dimensions.
func (b Box) Dim() int { return len(b) }

// Midpoints returns the per-dimension midpoints.
func (b Box) Midpoints() []float64 {
	mids := make([]float64, len(b))
	for i, iv := range b {
		mids[i] = iv.Mid()
	}

	return mids
}

// HalfRanges returns the per-dimension half-widths.
func (b Box) HalfRanges() []float64 {
	hr := make([]float64, len(b))
	for i, iv := range b {
		hr[i] = iv.HalfRange()
	}

	return hr
}

// Widths returns the per-dimension widths Hi - Lo.
func (b Box) Widths() []float64 {
	w := make([]float64, len(b))
	for i, iv := range b {
		w[i] = iv.Width()
	}

	return w
}

// Contains reports whether the point x lies inside the box within eps
// per dimension. Returns false on dimension mismatch.
func (b Box) Contains(x []float64, eps float64) bool {
	if len(x) != len(b) {
		return false
	}
	for i, iv := range b {
		if !iv.Contains(x[i], eps) {
			return false
		}
	}

	return true
}

// Vertices enumerates all 2^d corner points of the box in a fixed order:
// dimension 0 toggles slowest, matching binary counting on the corner index.
// Cost is exponential in d; callers own the blowup.
func (b Box) Vertices() [][]float64 {
	d := len(b)
	n := 1 << d
	vertices := make([][]float64, n)
	for k := 0; k < n; k++ {
		v := make([]float64, d)
		for i := 0; i < d; i++ {
			// Bit i of k selects Lo or Hi on dimension i.
			if k&(1<<(d-1-i)) == 0 {
				v[i] = b[i].Lo
			} else {
				v[i] = b[i].Hi
			}
		}
		vertices[k] = v
	}

	return vertices
}

// FromVertices returns the tightest box enclosing every point in the batch.
// Returns ErrNoVertices on an empty batch and ErrDimensionMismatch when the
// points disagree on dimension count.
func FromVertices(points [][]float64) (Box, error) {
	if len(points) == 0 {
		return nil, ErrNoVertices
	}

	d := len(points[0])
	if d == 0 {
		return nil, ErrEmptyBox
	}

	out := make(Box, d)
	for i := 0; i < d; i++ {
		out[i] = Interval{Lo: math.Inf(1), Hi: math.Inf(-1)}
	}
	for _, p := range points {
		if len(p) != d {
			return nil, ErrDimensionMismatch
		}
		for i, x := range p {
			out[i].Lo = math.Min(out[i].Lo, x)
			out[i].Hi = math.Max(out[i].Hi, x)
		}
	}

	return out, nil
}
