package zonotope_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Robert-Debbas/zonotopes/box"
	"github.com/Robert-Debbas/zonotopes/zonotope"
)

func lift(t *testing.T, iv box.Interval) *zonotope.Zonotope {
	t.Helper()
	z, err := zonotope.FromBox(box.Box{iv})
	require.NoError(t, err)

	return z
}

// TestReLU_Dead verifies a fully negative dimension collapses to zero
// without allocating a fresh symbol.
func TestReLU_Dead(t *testing.T) {
	z := lift(t, box.Interval{Lo: -3, Hi: -1})

	out := z.ReLU()
	assert.Equal(t, z.Symbols(), out.Symbols(), "stable dimension must not allocate a symbol")

	bounds := out.Concretize()
	assert.Equal(t, 0.0, bounds[0].Lo)
	assert.Equal(t, 0.0, bounds[0].Hi)
}

// TestReLU_Active verifies a fully non-negative dimension passes unchanged.
func TestReLU_Active(t *testing.T) {
	z := lift(t, box.Interval{Lo: 1, Hi: 5})

	out := z.ReLU()
	assert.Equal(t, z.Symbols(), out.Symbols())

	bounds := out.Concretize()
	assert.InDelta(t, 1.0, bounds[0].Lo, 1e-12)
	assert.InDelta(t, 5.0, bounds[0].Hi, 1e-12)
}

// TestReLU_DegenerateZero verifies l=u=0 takes the dead branch with no
// division by zero.
func TestReLU_DegenerateZero(t *testing.T) {
	z := lift(t, box.Interval{Lo: 0, Hi: 0})

	out := z.ReLU()
	bounds := out.Concretize()
	assert.Equal(t, 0.0, bounds[0].Lo)
	assert.Equal(t, 0.0, bounds[0].Hi)
	assert.False(t, math.IsNaN(out.Center().AtVec(0)), "no NaN from the degenerate case")
}

// TestReLU_Unstable verifies the minimal-area relaxation on [-1, 1]:
// slope 1/2, offset 1/2, fresh coefficient 1/4, enclosure [-1/2, 1].
func TestReLU_Unstable(t *testing.T) {
	z := lift(t, box.Interval{Lo: -1, Hi: 1})

	out := z.ReLU()
	require.Equal(t, z.Symbols()+1, out.Symbols(), "one fresh symbol for the unstable dimension")

	w := out.Generator()
	assert.InDelta(t, 0.5, w.At(0, 0), 1e-12, "scaled old row")
	assert.InDelta(t, 0.25, w.At(0, 1), 1e-12, "fresh coefficient c/2")
	assert.InDelta(t, 0.25, out.Center().AtVec(0), 1e-12, "center a·b + c/2")

	bounds := out.Concretize()
	assert.InDelta(t, -0.5, bounds[0].Lo, 1e-12)
	assert.InDelta(t, 1.0, bounds[0].Hi, 1e-12)
}

// TestReLU_Soundness verifies relu(x) stays inside the enclosure for every
// sampled input of the pre-transform range.
func TestReLU_Soundness(t *testing.T) {
	z := lift(t, box.Interval{Lo: -2.5, Hi: 4})

	bounds := z.ReLU().Concretize()
	for x := -2.5; x <= 4; x += 0.05 {
		y := math.Max(0, x)
		assert.True(t, bounds[0].Contains(y, 1e-12), "relu(%v)=%v outside enclosure", x, y)
	}
}

// TestClamp_StableBranches verifies the three stable clamp branches.
func TestClamp_StableBranches(t *testing.T) {
	dead, err := lift(t, box.Interval{Lo: -4, Hi: -2}).Clamp(0, 3)
	require.NoError(t, err)
	assert.Equal(t, box.Interval{Lo: 0, Hi: 0}, dead.Concretize()[0], "fully below maps to 0")

	sat, err := lift(t, box.Interval{Lo: 5, Hi: 9}).Clamp(0, 3)
	require.NoError(t, err)
	assert.Equal(t, box.Interval{Lo: 3, Hi: 3}, sat.Concretize()[0], "fully above maps to hi")

	id, err := lift(t, box.Interval{Lo: 1, Hi: 2}).Clamp(0, 3)
	require.NoError(t, err)
	got := id.Concretize()[0]
	assert.InDelta(t, 1.0, got.Lo, 1e-12, "fully inside is identity")
	assert.InDelta(t, 2.0, got.Hi, 1e-12, "fully inside is identity")
}

// TestClamp_ShiftedBounds verifies a non-zero lower clamp bound through the
// shift identity on a hand-computed case: clamp(x, 1, 3) on x ∈ [0, 5].
func TestClamp_ShiftedBounds(t *testing.T) {
	z := lift(t, box.Interval{Lo: 0, Hi: 5})

	out, err := z.Clamp(1, 3)
	require.NoError(t, err)
	require.Equal(t, z.Symbols()+1, out.Symbols())

	// Shifted analysis: l'=-1, u'=4, hi'=2 ⇒ a = min(2/3, 1/2) = 1/2,
	// c = max(1, 1/2) = 1; row 1/2·2.5, fresh 1/2, center 2.25.
	w := out.Generator()
	assert.InDelta(t, 1.25, w.At(0, 0), 1e-12)
	assert.InDelta(t, 0.5, w.At(0, 1), 1e-12)
	assert.InDelta(t, 2.25, out.Center().AtVec(0), 1e-12)

	bounds := out.Concretize()
	assert.InDelta(t, 0.5, bounds[0].Lo, 1e-12)
	assert.InDelta(t, 4.0, bounds[0].Hi, 1e-12)

	// Soundness sweep against the concrete clamp.
	for x := 0.0; x <= 5; x += 0.05 {
		y := math.Min(math.Max(x, 1), 3)
		assert.True(t, bounds[0].Contains(y, 1e-12), "clamp(%v)=%v outside enclosure", x, y)
	}
}

// TestClamp_BadBounds verifies bound validation.
func TestClamp_BadBounds(t *testing.T) {
	z := lift(t, box.Interval{Lo: 0, Hi: 1})

	_, err := z.Clamp(3, 3)
	assert.ErrorIs(t, err, zonotope.ErrBadClampBounds, "lo == hi must error")

	_, err = z.Clamp(0, math.Inf(1))
	assert.ErrorIs(t, err, zonotope.ErrBadClampBounds, "infinite hi must error")

	_, err = z.Clamp(math.NaN(), 1)
	assert.ErrorIs(t, err, zonotope.ErrBadClampBounds, "NaN lo must error")
}

// TestRound verifies the ±0.5 error band with one fresh symbol per dimension.
func TestRound(t *testing.T) {
	z, err := zonotope.FromBox(box.MustNew(
		box.Interval{Lo: 0, Hi: 1},
		box.Interval{Lo: 2, Hi: 4},
	))
	require.NoError(t, err)

	out := z.Round()
	assert.Equal(t, z.Symbols()+2, out.Symbols(), "one fresh symbol per dimension")

	bounds := out.Concretize()
	assert.InDelta(t, -0.5, bounds[0].Lo, 1e-12)
	assert.InDelta(t, 1.5, bounds[0].Hi, 1e-12)
	assert.InDelta(t, 1.5, bounds[1].Lo, 1e-12)
	assert.InDelta(t, 4.5, bounds[1].Hi, 1e-12)

	// Independence: the two error symbols occupy distinct columns.
	w := out.Generator()
	assert.Equal(t, 0.5, w.At(0, 2))
	assert.Equal(t, 0.0, w.At(0, 3))
	assert.Equal(t, 0.0, w.At(1, 2))
	assert.Equal(t, 0.5, w.At(1, 3))
}

// TestFloor verifies the center shift: floor(x) ∈ (x-1, x] is covered by
// the band x - 0.5 ± 0.5.
func TestFloor(t *testing.T) {
	z := lift(t, box.Interval{Lo: 1.2, Hi: 1.2})

	bounds := z.Floor().Concretize()
	assert.InDelta(t, 0.2, bounds[0].Lo, 1e-12)
	assert.InDelta(t, 1.2, bounds[0].Hi, 1e-12)
	assert.True(t, bounds[0].Contains(math.Floor(1.2), 1e-12), "floor must be covered")
}

// TestTransformers_Immutable verifies value semantics: the input zonotope
// is untouched by a transformer.
func TestTransformers_Immutable(t *testing.T) {
	z := lift(t, box.Interval{Lo: -1, Hi: 1})
	before := z.Generator()

	_ = z.ReLU()
	_, err := z.Clamp(0, 1)
	require.NoError(t, err)
	_ = z.Round()

	assert.Equal(t, before.RawMatrix().Data, z.Generator().RawMatrix().Data, "receiver must not mutate")
	assert.Equal(t, z.Symbols(), 1, "symbol count of the receiver unchanged")
}
