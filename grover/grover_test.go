package grover_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/quantik/grover"
	"github.com/katalvlaran/quantik/matrix"
	"github.com/katalvlaran/quantik/operator"
	"github.com/katalvlaran/quantik/oracle"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptimalIterations(t *testing.T) {
	cases := []struct {
		n, m, want int
	}{
		{3, 1, 2},
		{3, 8, 0},
		{3, 2, 1},
		{2, 1, 1},
		{2, 2, 1},
		{1, 1, 1},
		{1, 2, 0},
		{4, 1, 3},
		{10, 1, 25},
	}
	for _, tc := range cases {
		got, err := grover.OptimalIterations(tc.n, tc.m)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got, "n=%d m=%d", tc.n, tc.m)
	}

	_, err := grover.OptimalIterations(3, 0)
	require.ErrorIs(t, err, grover.ErrInvalidMarkedCount)
	_, err = grover.OptimalIterations(3, 9)
	require.ErrorIs(t, err, grover.ErrInvalidMarkedCount)
	_, err = grover.OptimalIterations(0, 1)
	require.ErrorIs(t, err, grover.ErrInvalidQubitCount)
}

func TestSuccessProbability(t *testing.T) {
	p, err := grover.SuccessProbability(3, 2, 1)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, p, 1e-12)

	p, err = grover.SuccessProbability(3, 1, 0)
	require.NoError(t, err)
	assert.InDelta(t, 0.125, p, 1e-12) // no amplification: M/N

	_, err = grover.SuccessProbability(3, 1, -1)
	require.ErrorIs(t, err, grover.ErrInvalidIterations)
}

func TestDiffusionOperator(t *testing.T) {
	for n := 1; n <= 3; n++ {
		o, err := oracle.ZeroStateOracle(n)
		require.NoError(t, err)
		d, err := grover.BuildDiffusionOperator(o)
		require.NoError(t, err)

		size := 1 << n
		rows := make([][]complex128, size)
		for i := range rows {
			rows[i] = make([]complex128, size)
			for j := range rows[i] {
				rows[i][j] = complex(2/float64(size), 0)
			}
			rows[i][i] -= 1
		}
		m, err := matrix.NewFromRows(rows)
		require.NoError(t, err)
		want, err := operator.New(m)
		require.NoError(t, err)

		assert.True(t, operator.Equal(d, want), "n=%d", n)
		assert.True(t, operator.IsUnitary(d))
	}

	_, err := grover.BuildDiffusionOperator(nil)
	require.ErrorIs(t, err, grover.ErrNilOracle)
}

func TestGroverOperatorOrder(t *testing.T) {
	o, err := oracle.Synthesize([]string{"01"})
	require.NoError(t, err)
	g, err := grover.GroverOperator(o)
	require.NoError(t, err)

	oOp, err := o.ToOperator()
	require.NoError(t, err)
	d, err := grover.BuildDiffusionOperator(o)
	require.NoError(t, err)
	want, err := operator.Compose(d, oOp, false)
	require.NoError(t, err)
	assert.True(t, operator.Equal(g, want))

	// For n = 2, M = 1 a single step reaches the marked state exactly.
	h := 0.5 + 0i
	psi := []complex128{h, h, h, h}
	out, err := operator.Apply(g, psi)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, math.Abs(real(out[1])), 1e-12)
}

// searchProbabilities builds the search circuit for marked and returns the
// measurement distribution on |0…0⟩.
func searchProbabilities(t *testing.T, marked []string) ([]float64, int) {
	t.Helper()
	c, k, err := grover.Search(marked)
	require.NoError(t, err)
	op, err := c.ToOperator()
	require.NoError(t, err)
	require.True(t, operator.IsUnitary(op))
	probs, err := operator.Probabilities(op)
	require.NoError(t, err)

	return probs, k
}

func TestSearchTwoQubitsEndToEnd(t *testing.T) {
	probs, k := searchProbabilities(t, []string{"00", "11"})
	assert.Equal(t, 1, k)

	// Marked states 00 (index 0) and 11 (index 3) are among the two highest.
	for _, marked := range []int{0, 3} {
		for other := range probs {
			assert.GreaterOrEqual(t, probs[marked]+1e-12, probs[other])
		}
	}
	var total float64
	for _, p := range probs {
		total += p
	}
	assert.InDelta(t, 1.0, total, 1e-12)
}

func TestSearchThreeQubits(t *testing.T) {
	probs, k := searchProbabilities(t, []string{"000", "111"})
	assert.Equal(t, 1, k)
	assert.InDelta(t, 0.5, probs[0], 1e-9)
	assert.InDelta(t, 0.5, probs[7], 1e-9)

	probs, k = searchProbabilities(t, []string{"101"})
	assert.Equal(t, 2, k)
	want, err := grover.SuccessProbability(3, 1, 2)
	require.NoError(t, err)
	assert.InDelta(t, want, probs[5], 1e-9)
	assert.InDelta(t, 0.9453125, probs[5], 1e-9)
}

func TestExpandedMatchesCompact(t *testing.T) {
	o, err := oracle.Synthesize([]string{"110"})
	require.NoError(t, err)

	for k := 0; k <= 2; k++ {
		compact, err := grover.BuildSearchCircuit(o, k)
		require.NoError(t, err)
		expanded, err := grover.BuildExpandedSearchCircuit(o, k)
		require.NoError(t, err)
		assert.Equal(t, 3, expanded.NumClbits())

		a, err := compact.ToOperator()
		require.NoError(t, err)
		b, err := expanded.ToOperator()
		require.NoError(t, err)
		assert.True(t, operator.Equal(a, b), "k=%d", k)
	}

	_, err = grover.BuildSearchCircuit(o, -1)
	require.ErrorIs(t, err, grover.ErrInvalidIterations)
	_, err = grover.BuildExpandedSearchCircuit(nil, 1)
	require.ErrorIs(t, err, grover.ErrNilOracle)
}

func TestSearchMalformed(t *testing.T) {
	_, _, err := grover.Search([]string{"01", "1"})
	require.ErrorIs(t, err, oracle.ErrMalformedMarkedState)
}
