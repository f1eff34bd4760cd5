// SPDX-License-Identifier: MIT
// Package matrix: public API facades.
//
// Purpose:
//   - Provide thin entry points for neutral elements (identity, zeros, diagonal).
//   - Each facade delegates to the canonical constructor.

package matrix

// NewZeros returns a new zero-initialized *Dense of size rows×cols.
// It is a thin alias of NewDense with an intention-revealing name.
// Complexity: O(r*c).
func NewZeros(rows, cols int) (*Dense, error) {
	return NewDense(rows, cols)
}

// NewIdentity returns I_n (n×n identity; ones on the diagonal, zeros elsewhere).
// Complexity: O(n^2) zeroing + O(n) diagonal writes.
func NewIdentity(n int) (*Dense, error) {
	I, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		I.data[i*n+i] = 1
	}

	return I, nil
}

// NewDiagonal returns the n×n matrix with diag on its main diagonal.
// Errors: ErrInvalidDimensions for an empty diag, ErrNaNInf for non-finite entries.
// Complexity: O(n^2).
func NewDiagonal(diag []complex128) (*Dense, error) {
	n := len(diag)
	D, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	for i, v := range diag {
		if err = D.Set(i, i, v); err != nil {
			return nil, err
		}
	}

	return D, nil
}

// CloneMatrix returns a structural clone of m (same type if m is *Dense).
// Complexity: O(r*c).
func CloneMatrix(m Matrix) Matrix {
	if m == nil {
		return nil
	}

	return m.Clone()
}

// IdentityLike returns an identity with the same row count as m.
// Errors: ErrNilMatrix, ErrNonSquare.
func IdentityLike(m Matrix) (*Dense, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, err
	}

	return NewIdentity(m.Rows())
}

// DenseCopy returns an independent *Dense holding the entries of m.
// Errors: ErrNilMatrix.
// Complexity: O(r*c).
func DenseCopy(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, err
	}
	if d, ok := m.(*Dense); ok {
		cp, _ := d.Clone().(*Dense)

		return cp, nil
	}

	return asDense(m)
}
