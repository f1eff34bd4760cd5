package operator_test

import (
	"testing"

	"github.com/katalvlaran/quantik/operator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTensorDimsAndSize(t *testing.T) {
	a := MustPauli(t, "X")
	b := MustPauli(t, "ZY")

	ab, err := operator.Tensor(a, b)
	require.NoError(t, err)
	assert.Equal(t, 8, ab.Rows())                       // size(A)·size(B)
	assert.Equal(t, []int{2, 2, 2}, ab.InputDims())     // concatenation
	assert.True(t, operator.Equal(ab, MustPauli(t, "XZY")))

	// Mixed dimensions: B's dims come first in subsystem order.
	q3, err := operator.Identity(3)
	require.NoError(t, err)
	mixed, err := operator.Tensor(q3, a)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 3}, mixed.InputDims())
	assert.Equal(t, 6, mixed.Cols())
}

func TestExpandMirrorsTensor(t *testing.T) {
	pairs := [][2]string{{"X", "Z"}, {"Y", "XI"}, {"ZZ", "Y"}}
	for _, p := range pairs {
		a, b := MustPauli(t, p[0]), MustPauli(t, p[1])
		e, err := operator.Expand(a, b)
		require.NoError(t, err)
		tba, err := operator.Tensor(b, a)
		require.NoError(t, err)
		assert.True(t, operator.Equal(e, tba), "Expand(%s,%s)", p[0], p[1])

		tab, err := operator.Tensor(a, b)
		require.NoError(t, err)
		if p[0] != p[1] && len(p[0]) == len(p[1]) {
			assert.False(t, operator.Equal(e, tab))
		}
	}
}

func TestComposeIdentityLaws(t *testing.T) {
	a := hadamard(t)
	id, err := operator.QubitIdentity(1)
	require.NoError(t, err)

	for _, front := range []bool{false, true} {
		left, err := operator.Compose(a, id, front)
		require.NoError(t, err)
		assert.True(t, operator.Equal(left, a))

		right, err := operator.Compose(id, a, front)
		require.NoError(t, err)
		assert.True(t, operator.Equal(right, a))
	}
}

func TestComposeFrontOrdering(t *testing.T) {
	x, z := MustPauli(t, "X"), MustPauli(t, "Z")

	back, err := operator.Compose(x, z, false) // X·Z
	require.NoError(t, err)
	front, err := operator.Compose(x, z, true) // Z·X
	require.NoError(t, err)

	assert.False(t, operator.Equal(back, front))
	assert.True(t, operator.Equal(back, MustRows(t, [][]complex128{{0, -1}, {1, 0}})))
	assert.True(t, operator.Equal(front, MustRows(t, [][]complex128{{0, 1}, {-1, 0}})))

	_, err = operator.Compose(x, MustPauli(t, "XX"), false)
	require.ErrorIs(t, err, operator.ErrDimensionMismatch)
	_, err = operator.Compose(nil, x, false)
	require.ErrorIs(t, err, operator.ErrNilOperator)
}

func TestComposeRectangularDims(t *testing.T) {
	// a: 2 → 4 (in [2], out [2,2]); b: 4 → 2.
	a := MustRows(t, [][]complex128{{1, 0}, {0, 1}, {0, 0}, {0, 0}})
	b := MustRows(t, [][]complex128{{1, 0, 0, 0}, {0, 1, 0, 0}})

	ab, err := operator.Compose(a, b, false) // a·b: 4 → 4
	require.NoError(t, err)
	assert.Equal(t, []int{2, 2}, ab.InputDims())
	assert.Equal(t, []int{2, 2}, ab.OutputDims())

	ba, err := operator.Compose(a, b, true) // b·a: 2 → 2
	require.NoError(t, err)
	assert.Equal(t, []int{2}, ba.InputDims())
	assert.True(t, operator.IsUnitary(ba))
}

func TestComposeSubsystemMatchesTensor(t *testing.T) {
	id2, err := operator.QubitIdentity(2)
	require.NoError(t, err)
	x := MustPauli(t, "X")

	onQ0, err := operator.ComposeSubsystem(id2, x, []int{0}, false)
	require.NoError(t, err)
	assert.True(t, operator.Equal(onQ0, MustPauli(t, "IX")))

	onQ1, err := operator.ComposeSubsystem(id2, x, []int{1}, true)
	require.NoError(t, err)
	assert.True(t, operator.Equal(onQ1, MustPauli(t, "XI")))

	// qargs order: qargs[0] carries the least-significant subsystem of B.
	xz := MustPauli(t, "XZ") // Z on B's subsystem 0, X on subsystem 1
	id3, err := operator.QubitIdentity(3)
	require.NoError(t, err)
	placed, err := operator.ComposeSubsystem(id3, xz, []int{2, 0}, false)
	require.NoError(t, err)
	assert.True(t, operator.Equal(placed, MustPauli(t, "ZIX")))
}

func TestComposeSubsystemOrderingWithBase(t *testing.T) {
	z := MustPauli(t, "IZ")
	x := MustPauli(t, "X")

	back, err := operator.ComposeSubsystem(z, x, []int{0}, false) // (IZ)·(IX)
	require.NoError(t, err)
	want, err := operator.Compose(z, MustPauli(t, "IX"), false)
	require.NoError(t, err)
	assert.True(t, operator.Equal(back, want))

	front, err := operator.ComposeSubsystem(z, x, []int{0}, true) // (IX)·(IZ)
	require.NoError(t, err)
	want, err = operator.Compose(z, MustPauli(t, "IX"), true)
	require.NoError(t, err)
	assert.True(t, operator.Equal(front, want))
	assert.False(t, operator.Equal(front, back))
}

func TestComposeSubsystemErrors(t *testing.T) {
	id2, err := operator.QubitIdentity(2)
	require.NoError(t, err)

	_, err = operator.ComposeSubsystem(id2, MustPauli(t, "XX"), []int{0}, false)
	require.ErrorIs(t, err, operator.ErrSubsystemSizeMismatch)

	rect := MustRows(t, [][]complex128{{1, 0}})
	_, err = operator.ComposeSubsystem(id2, rect, []int{0}, false)
	require.ErrorIs(t, err, operator.ErrSubsystemSizeMismatch)

	_, err = operator.ComposeSubsystem(id2, MustPauli(t, "XX"), []int{1, 1}, false)
	require.ErrorIs(t, err, operator.ErrInvalidQargs)

	_, err = operator.ComposeSubsystem(id2, MustPauli(t, "X"), []int{2}, false)
	require.ErrorIs(t, err, operator.ErrInvalidQargs)

	_, err = operator.ComposeSubsystem(id2, MustPauli(t, "X"), nil, false)
	require.ErrorIs(t, err, operator.ErrInvalidQargs)
}

func TestComposeSubsystemMixedDims(t *testing.T) {
	// Qutrit ⊗ qubit space; embed a qutrit cycle on subsystem 1.
	base, err := operator.Identity(2, 3)
	require.NoError(t, err)
	cycle := MustRows(t, [][]complex128{{0, 0, 1}, {1, 0, 0}, {0, 1, 0}})

	got, err := operator.ComposeSubsystem(base, cycle, []int{1}, false)
	require.NoError(t, err)
	id2, err := operator.QubitIdentity(1)
	require.NoError(t, err)
	want, err := operator.Tensor(cycle, id2)
	require.NoError(t, err)
	assert.True(t, operator.Equal(got, want))
	assert.Equal(t, []int{2, 3}, got.InputDims())

	_, err = operator.ComposeSubsystem(base, MustPauli(t, "X"), []int{1}, false)
	require.ErrorIs(t, err, operator.ErrSubsystemSizeMismatch)
}

func TestPower(t *testing.T) {
	h := hadamard(t)

	p0, err := operator.Power(h, 0)
	require.NoError(t, err)
	id, err := operator.QubitIdentity(1)
	require.NoError(t, err)
	assert.True(t, operator.Equal(p0, id))

	p2, err := operator.Power(h, 2)
	require.NoError(t, err)
	assert.True(t, operator.Equal(p2, id))

	s := MustRows(t, [][]complex128{{1, 0}, {0, 1i}})
	p5, err := operator.Power(s, 5) // S^5 = S
	require.NoError(t, err)
	assert.True(t, operator.Equal(p5, s))

	_, err = operator.Power(h, -1)
	require.ErrorIs(t, err, operator.ErrNegativePower)

	_, err = operator.Power(MustRows(t, [][]complex128{{1, 0}}), 2)
	require.ErrorIs(t, err, operator.ErrNotSquare)
}

func TestLinearCombination(t *testing.T) {
	xx, yy := MustPauli(t, "XX"), MustPauli(t, "YY")

	sum, err := operator.Add(xx, yy)
	require.NoError(t, err)
	scaled, err := operator.Scale(sum, 0.5)
	require.NoError(t, err)
	// (XX + YY)/2 swaps |01⟩ and |10⟩ and annihilates |00⟩, |11⟩.
	want := MustRows(t, [][]complex128{
		{0, 0, 0, 0},
		{0, 0, 1, 0},
		{0, 1, 0, 0},
		{0, 0, 0, 0},
	})
	assert.True(t, operator.Equal(scaled, want))
	assert.False(t, operator.IsUnitary(scaled))

	diff, err := operator.Sub(xx, xx)
	require.NoError(t, err)
	zero := MustRows(t, [][]complex128{{0, 0, 0, 0}, {0, 0, 0, 0}, {0, 0, 0, 0}, {0, 0, 0, 0}})
	assert.True(t, operator.Equal(diff, zero))

	_, err = operator.Add(xx, MustPauli(t, "X"))
	require.ErrorIs(t, err, operator.ErrDimensionMismatch)
}

func TestAdjoint(t *testing.T) {
	s := MustRows(t, [][]complex128{{1, 0}, {0, 1i}})
	sdg, err := operator.Adjoint(s)
	require.NoError(t, err)
	assert.True(t, operator.Equal(sdg, MustRows(t, [][]complex128{{1, 0}, {0, -1i}})))

	rect := MustRows(t, [][]complex128{{1, 0, 0, 0}, {0, 1, 0, 0}})
	adj, err := operator.Adjoint(rect)
	require.NoError(t, err)
	assert.Equal(t, []int{2}, adj.InputDims())
	assert.Equal(t, []int{2, 2}, adj.OutputDims())
}
