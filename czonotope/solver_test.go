package czonotope_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/Robert-Debbas/zonotopes/box"
	"github.com/Robert-Debbas/zonotopes/czonotope"
)

// TestConcretizeExact_EmptyStore verifies the LP tier degenerates to the
// cheap enclosure when no constraints are stored.
func TestConcretizeExact_EmptyStore(t *testing.T) {
	cz := lift(t, box.Box{{Lo: -3, Hi: 7}, {Lo: 2, Hi: 2}})

	bounds, err := cz.ConcretizeExact(context.Background())
	require.NoError(t, err)
	require.Len(t, bounds, 2)

	cheap := cz.Concretize()
	for i, b := range bounds {
		require.True(t, b.OK())
		assert.InDelta(t, cheap[i].Lo, b.Lo, 1e-12)
		assert.InDelta(t, cheap[i].Hi, b.Hi, 1e-12)
	}
}

// TestConcretizeExact_ConstraintWidth verifies a store referencing a
// symbol beyond the generator width is rejected before solving.
func TestConcretizeExact_ConstraintWidth(t *testing.T) {
	cz, err := czonotope.New(
		mat.NewDense(1, 2, []float64{1, 0.5}),
		mat.NewVecDense(1, []float64{0}),
		[]czonotope.Constraint{{Index: []int{5}, Coeff: []float64{1}, Bound: 0}},
	)
	require.NoError(t, err)

	_, err = cz.ConcretizeExact(context.Background())
	assert.ErrorIs(t, err, czonotope.ErrConstraintWidth)
}

// TestConcretizeExact_HalfSpace verifies a single hand-written cut: the
// constraint eps_0 <= 0 halves a symmetric one-symbol value.
func TestConcretizeExact_HalfSpace(t *testing.T) {
	cz, err := czonotope.New(
		mat.NewDense(1, 1, []float64{2}),
		mat.NewVecDense(1, []float64{1}),
		[]czonotope.Constraint{{Index: []int{0}, Coeff: []float64{1}, Bound: 0}},
	)
	require.NoError(t, err)

	cheap := cz.Concretize()
	assert.InDelta(t, -1.0, cheap[0].Lo, 1e-12)
	assert.InDelta(t, 3.0, cheap[0].Hi, 1e-12)

	bounds, err := cz.ConcretizeExact(context.Background())
	require.NoError(t, err)
	require.True(t, bounds[0].OK())
	assert.InDelta(t, -1.0, bounds[0].Lo, 1e-9)
	assert.InDelta(t, 1.0, bounds[0].Hi, 1e-9, "cut removes the eps_0 > 0 half")
}

// TestConcretizeExact_Workers verifies the parallel path returns the
// same bounds as the sequential one.
func TestConcretizeExact_Workers(t *testing.T) {
	cz := lift(t, box.Box{{Lo: -2, Hi: 3}, {Lo: -1, Hi: 1}, {Lo: 0, Hi: 4}})
	relu, err := cz.ReLU(czonotope.Standard)
	require.NoError(t, err)

	seq, err := relu.ConcretizeExact(context.Background())
	require.NoError(t, err)
	par, err := relu.ConcretizeExact(context.Background(), czonotope.WithWorkers(4))
	require.NoError(t, err)

	require.Len(t, par, len(seq))
	for i := range seq {
		assert.InDelta(t, seq[i].Lo, par[i].Lo, 1e-9, "dimension %d lower", i)
		assert.InDelta(t, seq[i].Hi, par[i].Hi, 1e-9, "dimension %d upper", i)
	}
}

// TestConcretizeExact_Cancelled verifies a cancelled context aborts a
// solve that has constraints to process.
func TestConcretizeExact_Cancelled(t *testing.T) {
	cz := lift(t, box.Box{{Lo: -1, Hi: 1}})
	relu, err := cz.ReLU(czonotope.Standard)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = relu.ConcretizeExact(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

// TestExactBox_Flattens verifies the box helper matches the bound slice.
func TestExactBox_Flattens(t *testing.T) {
	cz := lift(t, box.Box{{Lo: -1, Hi: 2}})
	relu, err := cz.ReLU(czonotope.Rectangle)
	require.NoError(t, err)

	bounds, err := relu.ConcretizeExact(context.Background())
	require.NoError(t, err)
	b, err := relu.ExactBox(context.Background())
	require.NoError(t, err)

	require.Equal(t, len(bounds), b.Dim())
	assert.InDelta(t, bounds[0].Lo, b[0].Lo, 1e-12)
	assert.InDelta(t, bounds[0].Hi, b[0].Hi, 1e-12)
}

// TestOptions_Panics verifies nonsense option values panic at option
// construction time.
func TestOptions_Panics(t *testing.T) {
	assert.Panics(t, func() { czonotope.WithTolerance(0) })
	assert.Panics(t, func() { czonotope.WithTolerance(-1) })
	assert.Panics(t, func() { czonotope.WithWorkers(0) })
}
