// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic test fixtures and utilities for kernels.
//   • Keep all data finite and well-formed to avoid numeric-policy interference.

package matrix_test

import (
	"math/rand/v2"
	"testing"

	"github.com/katalvlaran/quantik/matrix"
	"github.com/stretchr/testify/require"
)

// Tolerances used when comparing floating-point results.
const (
	testAtol = 1e-12
	testRtol = 1e-12
)

// hide wraps any Matrix to hide its concrete type from type assertions.
// Use hide{X} in tests to force the non-*Dense (At/Set) path in the code under test.
type hide struct{ matrix.Matrix }

// MustDense allocates an r×c *Dense or fails the test.
func MustDense(tb testing.TB, r, c int) *matrix.Dense {
	tb.Helper()
	m, err := matrix.NewDense(r, c)
	require.NoError(tb, err)

	return m
}

// MustRows builds a Dense from row literals or fails the test.
func MustRows(tb testing.TB, rows [][]complex128) *matrix.Dense {
	tb.Helper()
	m, err := matrix.NewFromRows(rows)
	require.NoError(tb, err)

	return m
}

// fillDenseRand fills m with deterministic pseudo-random complex values in [-1,1)².
func fillDenseRand(tb testing.TB, m *matrix.Dense, seed uint64) {
	tb.Helper()
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	for i := 0; i < m.Rows(); i++ {
		for j := 0; j < m.Cols(); j++ {
			v := complex(rng.Float64()*2-1, rng.Float64()*2-1)
			require.NoError(tb, m.Set(i, j, v))
		}
	}
}

// requireClose fails the test when a and b differ beyond the test tolerances.
func requireClose(tb testing.TB, want, got matrix.Matrix) {
	tb.Helper()
	ok, err := matrix.AllClose(got, want, testRtol, testAtol)
	require.NoError(tb, err)
	require.Truef(tb, ok, "want:\n%vgot:\n%v", want, got)
}
