// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide tolerance-based comparison kernels shared by higher layers
//     (operator equality, phase alignment).
//   - Keep all loops deterministic and cache-friendly with Dense fast-paths.
//
// Determinism & Performance:
//   - Fixed flat loop order 0..n-1; no allocations for *Dense operands.

package matrix

import (
	"math"
	"math/cmplx"
)

const (
	opAllClose  = "AllClose"
	opArgMaxAbs = "ArgMaxAbs"
)

// AllClose reports whether every pair of entries satisfies
// |a[i,j] − b[i,j]| ≤ atol + rtol·|b[i,j]|.
//
// The test is asymmetric in the same way as the usual numeric convention:
// b is the reference whose magnitude scales the relative tolerance.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (from ValidateBinarySameShape).
//
// Complexity:
//   - Time O(r*c), Space O(1) for *Dense operands.
func AllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	da, err := asDense(a)
	if err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	db, err := asDense(b)
	if err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	for idx := range da.data {
		if cmplx.Abs(da.data[idx]-db.data[idx]) > atol+rtol*cmplx.Abs(db.data[idx]) {
			return false, nil
		}
	}

	return true, nil
}

// ArgMaxAbs returns the (row, col) of the entry with the largest magnitude.
// Ties resolve to the first entry in row-major order.
//
// Errors: ErrNilMatrix.
// Complexity: O(r*c).
func ArgMaxAbs(m Matrix) (row, col int, err error) {
	if err = ValidateNotNil(m); err != nil {
		return 0, 0, matrixErrorf(opArgMaxAbs, err)
	}
	d, err := asDense(m)
	if err != nil {
		return 0, 0, matrixErrorf(opArgMaxAbs, err)
	}
	best, bestIdx := -math.MaxFloat64, 0
	var mag float64
	for idx, v := range d.data {
		mag = cmplx.Abs(v)
		if mag > best {
			best, bestIdx = mag, idx
		}
	}

	return bestIdx / d.c, bestIdx % d.c, nil
}

// MaxAbsDiff returns max |a[i,j] − b[i,j]| over all entries.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(r*c).
func MaxAbsDiff(a, b Matrix) (float64, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return 0, matrixErrorf("MaxAbsDiff", err)
	}
	da, err := asDense(a)
	if err != nil {
		return 0, matrixErrorf("MaxAbsDiff", err)
	}
	db, err := asDense(b)
	if err != nil {
		return 0, matrixErrorf("MaxAbsDiff", err)
	}
	var worst float64
	for idx := range da.data {
		worst = math.Max(worst, cmplx.Abs(da.data[idx]-db.data[idx]))
	}

	return worst, nil
}
