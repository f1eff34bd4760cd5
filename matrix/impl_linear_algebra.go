// SPDX-License-Identifier: MIT
// Package matrix provides universal operations on any Matrix implementation,
// including element-wise addition, subtraction, matrix multiplication,
// Kronecker products, conjugate transposition and scalar scaling. All
// functions perform strict fail-fast validation and return clear errors on
// dimension mismatches.
//
// Notes:
//   - Every kernel allocates a fresh *Dense; operands are never mutated.
//   - Non-*Dense operands are materialised once through At (asDense) so the
//     arithmetic itself always runs on flat slices in a fixed loop order.

package matrix

import (
	"fmt"
	"math/cmplx"
)

// ZeroSum is the initial value for accumulations.
const ZeroSum complex128 = 0

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opAdd       = "Add"
	opSub       = "Sub"
	opMul       = "Mul"
	opTranspose = "Transpose"
	opConj      = "Conj"
	opAdjoint   = "Adjoint"
	opScale     = "Scale"
	opKron      = "Kron"
	opTrace     = "Trace"
	opMatVec    = "MatVec"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
// Complexity: O(1).
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// asDense returns m itself when it is a *Dense, otherwise a Dense copy read
// through At in i→j order.
// Complexity: O(1) for *Dense, O(r*c) otherwise.
func asDense(m Matrix) (*Dense, error) {
	if d, ok := m.(*Dense); ok {
		return d, nil
	}
	rows, cols := m.Rows(), m.Cols()
	out, err := NewDense(rows, cols)
	if err != nil {
		return nil, err
	}
	var i, j int
	var v complex128
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, fmt.Errorf("At(%d,%d): %w", i, j, err)
			}
			out.data[i*cols+j] = v
		}
	}

	return out, nil
}

// addSub computes elementwise out = a + sign*b for sign ∈ {+1, -1}.
// Inputs must have identical shapes. A fresh Dense is allocated.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (from ValidateBinarySameShape).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func addSub(a, b Matrix, sign complex128, opTag string) (*Dense, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	da, err := asDense(a)
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	db, err := asDense(b)
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	res, err := NewDense(da.r, da.c)
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	for idx := range res.data {
		res.data[idx] = da.data[idx] + sign*db.data[idx]
	}

	return res, nil
}

// Add computes the element-wise sum C = A + B and returns a fresh Dense result.
// Errors: ErrNilMatrix (nil input), ErrDimensionMismatch (shape mismatch).
// Complexity: O(r*c).
func Add(a, b Matrix) (*Dense, error) { return addSub(a, b, 1, opAdd) }

// Sub computes the element-wise difference C = A − B.
// Errors: ErrNilMatrix (nil input), ErrDimensionMismatch (shape mismatch).
// Complexity: O(r*c).
func Sub(a, b Matrix) (*Dense, error) { return addSub(a, b, -1, opSub) }

// Mul computes the matrix product C = A × B.
//
// Implementation:
//   - Stage 1: ValidateMulCompatible(a, b).
//   - Stage 2: i→k→j triple loop over flat slices, skipping zero A[i,k].
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (inner mismatch).
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func Mul(a, b Matrix) (*Dense, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	da, err := asDense(a)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	db, err := asDense(b)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	aRows, aCols, bCols := da.r, da.c, db.c
	res, err := NewDense(aRows, bCols)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	var (
		i, j, k                            int
		av                                 complex128
		rowOffsetA, rowOffsetB, rowOffsetR int
	)
	for i = 0; i < aRows; i++ {
		rowOffsetA = i * aCols
		rowOffsetR = i * bCols
		for k = 0; k < aCols; k++ {
			av = da.data[rowOffsetA+k]
			if av == 0 {
				continue
			}
			rowOffsetB = k * bCols
			for j = 0; j < bCols; j++ {
				res.data[rowOffsetR+j] += av * db.data[rowOffsetB+j]
			}
		}
	}

	return res, nil
}

// transform applies f to every element of m while writing element (i,j) to
// position (j,i) when swap is set. Shared by Transpose, Conj and Adjoint.
func transform(m Matrix, swap bool, f func(complex128) complex128, opTag string) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	dm, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	rows, cols := dm.r, dm.c
	outRows, outCols := rows, cols
	if swap {
		outRows, outCols = cols, rows
	}
	res, err := NewDense(outRows, outCols)
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	var i, j, base int
	for i = 0; i < rows; i++ {
		base = i * cols
		for j = 0; j < cols; j++ {
			if swap {
				res.data[j*rows+i] = f(dm.data[base+j])
			} else {
				res.data[base+j] = f(dm.data[base+j])
			}
		}
	}

	return res, nil
}

func identity(v complex128) complex128 { return v }

// Transpose returns mᵀ without conjugation.
// Errors: ErrNilMatrix.
// Complexity: O(r*c).
func Transpose(m Matrix) (*Dense, error) { return transform(m, true, identity, opTranspose) }

// Conj returns the elementwise complex conjugate of m.
// Errors: ErrNilMatrix.
// Complexity: O(r*c).
func Conj(m Matrix) (*Dense, error) { return transform(m, false, cmplx.Conj, opConj) }

// Adjoint returns the conjugate transpose m† (c×r for an r×c input).
// Errors: ErrNilMatrix.
// Complexity: O(r*c).
func Adjoint(m Matrix) (*Dense, error) { return transform(m, true, cmplx.Conj, opAdjoint) }

// Scale returns a new matrix whose elements are alpha * m[i,j].
//
// Errors:
//   - ErrNilMatrix (from ValidateNotNil).
//   - ErrNaNInf when alpha has a non-finite component.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Scale(m Matrix, alpha complex128) (*Dense, error) {
	if !isFinite(alpha) {
		return nil, matrixErrorf(opScale, ErrNaNInf)
	}
	a := alpha

	return transform(m, false, func(v complex128) complex128 { return a * v }, opScale)
}

// Kron computes the Kronecker product A ⊗ B.
//
// Implementation:
//   - Result is (ra·rb)×(ca·cb); element (ia·rb+ib, ja·cb+jb) = A[ia,ja]·B[ib,jb].
//   - A selects the block, B fills it: A varies slowest in the flat index.
//
// Errors:
//   - ErrNilMatrix (nil input).
//
// Complexity:
//   - Time O(ra·ca·rb·cb), Space O(ra·ca·rb·cb).
func Kron(a, b Matrix) (*Dense, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opKron, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return nil, matrixErrorf(opKron, err)
	}
	da, err := asDense(a)
	if err != nil {
		return nil, matrixErrorf(opKron, err)
	}
	db, err := asDense(b)
	if err != nil {
		return nil, matrixErrorf(opKron, err)
	}
	rows, cols := da.r*db.r, da.c*db.c
	res, err := NewDense(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opKron, err)
	}

	var ia, ja, ib, jb, rowBase int
	var av complex128
	for ia = 0; ia < da.r; ia++ {
		for ja = 0; ja < da.c; ja++ {
			av = da.data[ia*da.c+ja]
			if av == 0 {
				continue
			}
			for ib = 0; ib < db.r; ib++ {
				rowBase = (ia*db.r+ib)*cols + ja*db.c
				for jb = 0; jb < db.c; jb++ {
					res.data[rowBase+jb] = av * db.data[ib*db.c+jb]
				}
			}
		}
	}

	return res, nil
}

// Trace returns Σ m[i,i] for a square matrix.
// Errors: ErrNilMatrix, ErrNonSquare.
// Complexity: O(n).
func Trace(m Matrix) (complex128, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return 0, matrixErrorf(opTrace, err)
	}
	sum := ZeroSum
	var v complex128
	var err error
	for i := 0; i < m.Rows(); i++ {
		if v, err = m.At(i, i); err != nil {
			return 0, matrixErrorf(opTrace, err)
		}
		sum += v
	}

	return sum, nil
}

// MatVec computes y = m * x for a column vector x.
//
// Contract: m non-nil; x non-nil; len(x) == m.Cols().
// Determinism: fixed i→j loop order.
// Complexity: Time O(r*c), Space O(r) for y.
func MatVec(m Matrix, x []complex128) ([]complex128, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if err := ValidateVecLen(x, m.Cols()); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	d, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	y := make([]complex128, d.r)
	var i, j, base int
	var acc complex128
	for i = 0; i < d.r; i++ {
		acc = ZeroSum
		base = i * d.c
		for j = 0; j < d.c; j++ {
			if x[j] != 0 {
				acc += d.data[base+j] * x[j]
			}
		}
		y[i] = acc
	}

	return y, nil
}
