package operator_test

import (
	"testing"

	"github.com/katalvlaran/quantik/operator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromPauliOrdering(t *testing.T) {
	xz := MustPauli(t, "XZ")
	want, err := operator.Tensor(MustPauli(t, "X"), MustPauli(t, "Z"))
	require.NoError(t, err)
	assert.True(t, operator.Equal(xz, want))

	// XZ|00⟩: Z on qubit 0 leaves it, X on qubit 1 flips it → |10⟩ (index 2).
	out, err := operator.Apply(xz, operator.ZeroState(4))
	require.NoError(t, err)
	assert.Equal(t, []complex128{0, 0, 1, 0}, out)

	minusIY := MustPauli(t, "-iY")
	assert.True(t, operator.Equal(minusIY, MustRows(t, [][]complex128{{0, -1}, {1, 0}})))

	for _, bad := range []string{"", "-", "XA", "x"} {
		_, err := operator.FromPauli(bad)
		require.ErrorIs(t, err, operator.ErrInvalidPauli, bad)
	}
}

func TestProbabilities(t *testing.T) {
	h := hadamard(t)
	p, err := operator.Probabilities(h)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{0.5, 0.5}, p, 1e-12)

	p, err = operator.Probabilities(MustPauli(t, "XI"))
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0, 1, 0}, p)
}

func TestExpectation(t *testing.T) {
	// Bell state (|00⟩ + |11⟩)/√2.
	bell := []complex128{invSqrt2, 0, 0, invSqrt2}
	cases := map[string]float64{
		"ZZ": 1, "ZI": 0, "IZ": 0,
		"XX": 1, "XI": 0, "IX": 0,
		"YY": -1,
	}
	for label, want := range cases {
		v, err := operator.Expectation(MustPauli(t, label), bell)
		require.NoError(t, err)
		assert.InDelta(t, want, real(v), 1e-12, label)
		assert.InDelta(t, 0, imag(v), 1e-12, label)
	}

	_, err := operator.Expectation(MustPauli(t, "ZZ"), []complex128{1, 0})
	require.ErrorIs(t, err, operator.ErrDimensionMismatch)

	_, err = operator.Expectation(MustRows(t, [][]complex128{{1, 0}}), []complex128{1, 0})
	require.ErrorIs(t, err, operator.ErrNotSquare)
}
