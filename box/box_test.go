package box_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Robert-Debbas/zonotopes/box"
)

// TestNew_Valid verifies construction of a well-formed box.
func TestNew_Valid(t *testing.T) {
	b, err := box.New(box.Interval{Lo: -1, Hi: 2}, box.Interval{Lo: 0, Hi: 0})
	require.NoError(t, err, "well-formed box must construct")
	assert.Equal(t, 2, b.Dim(), "dimension count")
}

// TestNew_Empty verifies that a zero-dimensional box is rejected.
func TestNew_Empty(t *testing.T) {
	_, err := box.New()
	assert.ErrorIs(t, err, box.ErrEmptyBox, "empty box must error")
}

// TestNew_Inverted verifies that Lo > Hi is rejected.
func TestNew_Inverted(t *testing.T) {
	_, err := box.New(box.Interval{Lo: 1, Hi: 0})
	assert.ErrorIs(t, err, box.ErrInvertedInterval, "inverted interval must error")
}

// TestNew_NonFinite verifies that NaN and Inf endpoints are rejected.
func TestNew_NonFinite(t *testing.T) {
	_, err := box.New(box.Interval{Lo: math.NaN(), Hi: 1})
	assert.ErrorIs(t, err, box.ErrNaNInf, "NaN lower bound must error")

	_, err = box.New(box.Interval{Lo: 0, Hi: math.Inf(1)})
	assert.ErrorIs(t, err, box.ErrNaNInf, "+Inf upper bound must error")
}

// TestMidpointsHalfRanges verifies the lift decomposition of a box.
func TestMidpointsHalfRanges(t *testing.T) {
	b := box.MustNew(box.Interval{Lo: 0.5, Hi: 1.5}, box.Interval{Lo: 1.5, Hi: 2.5})

	assert.Equal(t, []float64{1.0, 2.0}, b.Midpoints(), "midpoints")
	assert.Equal(t, []float64{0.5, 0.5}, b.HalfRanges(), "half-ranges")
	assert.Equal(t, []float64{1.0, 1.0}, b.Widths(), "widths")
}

// TestVertices verifies corner enumeration order and count.
func TestVertices(t *testing.T) {
	b := box.MustNew(box.Interval{Lo: 0, Hi: 1}, box.Interval{Lo: 2, Hi: 3})

	vs := b.Vertices()
	require.Len(t, vs, 4, "2^2 corners expected")
	assert.Equal(t, []float64{0, 2}, vs[0], "corner 00")
	assert.Equal(t, []float64{0, 3}, vs[1], "corner 01")
	assert.Equal(t, []float64{1, 2}, vs[2], "corner 10")
	assert.Equal(t, []float64{1, 3}, vs[3], "corner 11")
}

// TestFromVertices verifies bounding-box reconstruction.
func TestFromVertices(t *testing.T) {
	pts := [][]float64{{1, -2}, {0, 5}, {3, 0}}

	b, err := box.FromVertices(pts)
	require.NoError(t, err)
	assert.Equal(t, box.Interval{Lo: 0, Hi: 3}, b[0], "dimension 0 hull")
	assert.Equal(t, box.Interval{Lo: -2, Hi: 5}, b[1], "dimension 1 hull")
}

// TestFromVertices_Errors verifies empty-batch and ragged-batch rejection.
func TestFromVertices_Errors(t *testing.T) {
	_, err := box.FromVertices(nil)
	assert.ErrorIs(t, err, box.ErrNoVertices, "empty batch must error")

	_, err = box.FromVertices([][]float64{{1, 2}, {1}})
	assert.ErrorIs(t, err, box.ErrDimensionMismatch, "ragged batch must error")
}

// TestVertices_RoundTrip verifies that the hull of the corners is the box itself.
func TestVertices_RoundTrip(t *testing.T) {
	b := box.MustNew(box.Interval{Lo: -1, Hi: 4}, box.Interval{Lo: 2, Hi: 2}, box.Interval{Lo: 0, Hi: 9})

	back, err := box.FromVertices(b.Vertices())
	require.NoError(t, err)
	assert.Equal(t, b, back, "corner hull must reproduce the box")
}

// TestContains verifies point membership with tolerance.
func TestContains(t *testing.T) {
	b := box.MustNew(box.Interval{Lo: 0, Hi: 1})

	assert.True(t, b.Contains([]float64{0.5}, 0), "interior point")
	assert.True(t, b.Contains([]float64{1.0000000001}, 1e-9), "boundary within eps")
	assert.False(t, b.Contains([]float64{2}, 0), "exterior point")
	assert.False(t, b.Contains([]float64{0.5, 0.5}, 0), "dimension mismatch")
}
