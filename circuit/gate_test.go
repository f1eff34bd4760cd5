package circuit_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/quantik/circuit"
	"github.com/katalvlaran/quantik/operator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// MustOp materialises a gate or fails the test.
func MustOp(tb testing.TB, g circuit.Gate) *operator.Operator {
	tb.Helper()
	op, err := g.Operator()
	require.NoError(tb, err)

	return op
}

func mustPauli(tb testing.TB, label string) *operator.Operator {
	tb.Helper()
	op, err := operator.FromPauli(label)
	require.NoError(tb, err)

	return op
}

func TestFixedGatesAreUnitary(t *testing.T) {
	gates := []circuit.Gate{
		circuit.H(), circuit.X(), circuit.Y(), circuit.Z(), circuit.S(), circuit.Sdg(),
		circuit.T(), circuit.Tdg(), circuit.SX(), circuit.CX(), circuit.CZ(),
		circuit.SWAP(), circuit.CCX(),
		circuit.RX(0.3), circuit.RY(1.1), circuit.RZ(-2), circuit.Phase(math.Pi / 3),
	}
	for _, g := range gates {
		op := MustOp(t, g)
		assert.Equal(t, g.NumQubits(), op.NumQubits(), g.Name())
		assert.True(t, operator.IsUnitary(op), g.Name())
	}
}

func TestPauliGatesMatchOperatorPaulis(t *testing.T) {
	assert.True(t, operator.Equal(MustOp(t, circuit.X()), mustPauli(t, "X")))
	assert.True(t, operator.Equal(MustOp(t, circuit.Y()), mustPauli(t, "Y")))
	assert.True(t, operator.Equal(MustOp(t, circuit.Z()), mustPauli(t, "Z")))
}

func TestSquareRoots(t *testing.T) {
	cases := []struct {
		root, full circuit.Gate
	}{
		{circuit.S(), circuit.Z()},
		{circuit.T(), circuit.S()},
		{circuit.SX(), circuit.X()},
	}
	for _, tc := range cases {
		sq, err := operator.Power(MustOp(t, tc.root), 2)
		require.NoError(t, err)
		assert.True(t, operator.Equal(sq, MustOp(t, tc.full)), tc.root.Name())
	}

	sdg, err := operator.Adjoint(MustOp(t, circuit.S()))
	require.NoError(t, err)
	assert.True(t, operator.Equal(sdg, MustOp(t, circuit.Sdg())))
}

func TestRotationsUpToPhase(t *testing.T) {
	// RX(π) = -iX, RZ(π) = -iZ, Phase(π) = Z.
	assert.True(t, operator.EqualUpToGlobalPhase(MustOp(t, circuit.RX(math.Pi)), mustPauli(t, "X")))
	assert.True(t, operator.EqualUpToGlobalPhase(MustOp(t, circuit.RY(math.Pi)), mustPauli(t, "Y")))
	assert.True(t, operator.EqualUpToGlobalPhase(MustOp(t, circuit.RZ(math.Pi)), mustPauli(t, "Z")))
	assert.True(t, operator.Equal(MustOp(t, circuit.Phase(math.Pi)), mustPauli(t, "Z")))
	assert.False(t, operator.Equal(MustOp(t, circuit.RZ(math.Pi)), mustPauli(t, "Z")))
}

func TestCXMatrixLittleEndian(t *testing.T) {
	cx := MustOp(t, circuit.CX())
	// Control on qubit 0: |01⟩ (index 1) ↔ |11⟩ (index 3).
	want, err := operator.FromRows([][]complex128{
		{1, 0, 0, 0},
		{0, 0, 0, 1},
		{0, 0, 1, 0},
		{0, 1, 0, 0},
	})
	require.NoError(t, err)
	assert.True(t, operator.Equal(cx, want))

	ccx := MustOp(t, circuit.CCX())
	out, err := operator.Apply(ccx, []complex128{0, 0, 0, 1, 0, 0, 0, 0}) // |011⟩
	require.NoError(t, err)
	assert.Equal(t, complex128(1), out[7]) // → |111⟩
}

func TestControlledMatchesFixed(t *testing.T) {
	cx, err := circuit.Controlled(circuit.X(), 1)
	require.NoError(t, err)
	assert.Equal(t, "cx", cx.Name())
	assert.True(t, operator.Equal(MustOp(t, cx), MustOp(t, circuit.CX())))

	ccx, err := circuit.Controlled(circuit.X(), 2)
	require.NoError(t, err)
	assert.Equal(t, "mcx", ccx.Name())
	assert.Equal(t, 3, ccx.NumQubits())
	assert.True(t, operator.Equal(MustOp(t, ccx), MustOp(t, circuit.CCX())))

	_, err = circuit.Controlled(circuit.X(), 0)
	require.ErrorIs(t, err, circuit.ErrInvalidControls)
	_, err = circuit.Controlled(nil, 1)
	require.ErrorIs(t, err, circuit.ErrNilGate)
}

func TestMCZDiagonal(t *testing.T) {
	for k := 0; k <= 3; k++ {
		g, err := circuit.MCZ(k)
		require.NoError(t, err)
		op := MustOp(t, g)
		n := op.Rows()
		require.Equal(t, 1<<(k+1), n)
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				v, err := op.At(i, j)
				require.NoError(t, err)
				switch {
				case i != j:
					assert.Equal(t, complex128(0), v)
				case i == n-1:
					assert.Equal(t, complex128(-1), v)
				default:
					assert.Equal(t, complex128(1), v)
				}
			}
		}
	}
	_, err := circuit.MCZ(-1)
	require.ErrorIs(t, err, circuit.ErrInvalidControls)
}

func TestUnitaryGate(t *testing.T) {
	g, err := circuit.NewUnitaryGate("", mustPauli(t, "XY"))
	require.NoError(t, err)
	assert.Equal(t, "unitary", g.Name())
	assert.Equal(t, 2, g.NumQubits())

	rect, err := operator.FromRows([][]complex128{{1, 0}})
	require.NoError(t, err)
	_, err = circuit.NewUnitaryGate("u", rect)
	require.ErrorIs(t, err, circuit.ErrNotQubitOperator)
	_, err = circuit.NewUnitaryGate("u", nil)
	require.ErrorIs(t, err, circuit.ErrNilGate)
}
