// SPDX-License-Identifier: MIT
// Package operator - algebra over dimensioned operators.
//
// Purpose:
//   - Tensor/Expand: Kronecker products in both subsystem orderings.
//   - Compose/ComposeSubsystem: matrix products, optionally after embedding a
//     smaller operator on selected subsystems.
//   - Linear combination, adjoint and integer powers.
//
// Determinism:
//   - All loops run in fixed index order; results never alias operands.

package operator

import (
	"fmt"

	"github.com/katalvlaran/quantik/matrix"
)

// Tensor returns a ⊗ b: the matrix kron(a, b) with a on the higher-index
// subsystems. In subsystem order the dims are dims(b) ++ dims(a).
//
// Errors: ErrNilOperator.
// Complexity: O(size(a)·size(b)).
func Tensor(a, b *Operator) (*Operator, error) {
	if err := validatePair(a, b); err != nil {
		return nil, operatorErrorf(opTensor, err)
	}
	k, err := matrix.Kron(a.data, b.data)
	if err != nil {
		return nil, operatorErrorf(opTensor, err)
	}

	return newUnchecked(k, concatDims(b.inDims, a.inDims), concatDims(b.outDims, a.outDims)), nil
}

// Expand returns b ⊗ a, placing a on the lower-index subsystems.
// Expand(a, b) equals Tensor(b, a); dims are dims(a) ++ dims(b).
func Expand(a, b *Operator) (*Operator, error) {
	return Tensor(b, a)
}

// Compose returns the product of a and b.
//
// Implementation:
//   - front=false: a·b (apply b first, then a). a's input dims must equal
//     b's output dims; the result maps b's input to a's output.
//   - front=true: b·a (apply a first, then b). b's input dims must equal
//     a's output dims; the result maps a's input to b's output.
//
// Errors:
//   - ErrNilOperator, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(r·n·c) for the dense product.
func Compose(a, b *Operator, front bool) (*Operator, error) {
	if err := validatePair(a, b); err != nil {
		return nil, operatorErrorf(opCompose, err)
	}
	first, second := b, a // second·first
	if front {
		first, second = a, b
	}
	if !equalDims(second.inDims, first.outDims) {
		return nil, operatorErrorf(opCompose,
			fmt.Errorf("input dims %v vs output dims %v: %w", second.inDims, first.outDims, ErrDimensionMismatch))
	}
	p, err := matrix.Mul(second.data, first.data)
	if err != nil {
		return nil, operatorErrorf(opCompose, err)
	}

	return newUnchecked(p, copyDims(first.inDims), copyDims(second.outDims)), nil
}

// ComposeSubsystem embeds the square operator b on the subsystems qargs of a,
// with identity on the remaining subsystems, then composes as in Compose.
//
// Implementation:
//   - Stage 1: validate b is square and qargs are distinct indices into a's
//     input dims (output dims when front is set).
//   - Stage 2: check size(b) == Π dims[qargs]; qargs[0] carries b's
//     least-significant subsystem.
//   - Stage 3: build the embedded matrix E column by column: split each
//     column index into the qarg digits (selecting b's column) and the rest
//     (kept as the base), then scatter b's column over the qarg digits.
//   - Stage 4: Compose(a, E, front).
//
// Errors:
//   - ErrNilOperator.
//   - ErrSubsystemSizeMismatch when b is not square or its size differs from
//     the targeted subsystems.
//   - ErrInvalidQargs for empty, duplicate or out-of-range indices.
//
// Complexity:
//   - Embedding O(D·size(b)) for D = Π dims; composition O(D³).
func ComposeSubsystem(a, b *Operator, qargs []int, front bool) (*Operator, error) {
	if err := validatePair(a, b); err != nil {
		return nil, operatorErrorf(opComposeSubsystem, err)
	}
	if b.Rows() != b.Cols() {
		return nil, operatorErrorf(opComposeSubsystem, ErrSubsystemSizeMismatch)
	}
	dims := a.inDims
	if front {
		dims = a.outDims
	}
	if err := validateQargs(qargs, len(dims)); err != nil {
		return nil, operatorErrorf(opComposeSubsystem, err)
	}
	sub := make([]int, len(qargs))
	for k, q := range qargs {
		sub[k] = dims[q]
	}
	if product(sub) != b.Rows() {
		return nil, operatorErrorf(opComposeSubsystem,
			fmt.Errorf("size %d on subsystems %v (dims %v): %w", b.Rows(), qargs, sub, ErrSubsystemSizeMismatch))
	}

	e, err := embed(b.data, dims, qargs)
	if err != nil {
		return nil, operatorErrorf(opComposeSubsystem, err)
	}

	return Compose(a, newUnchecked(e, copyDims(dims), copyDims(dims)), front)
}

// validateQargs checks indices are non-empty, in [0,n) and pairwise distinct.
func validateQargs(qargs []int, n int) error {
	if len(qargs) == 0 {
		return ErrInvalidQargs
	}
	seen := make(map[int]struct{}, len(qargs))
	for _, q := range qargs {
		if q < 0 || q >= n {
			return fmt.Errorf("index %d outside [0,%d): %w", q, n, ErrInvalidQargs)
		}
		if _, dup := seen[q]; dup {
			return fmt.Errorf("duplicate index %d: %w", q, ErrInvalidQargs)
		}
		seen[q] = struct{}{}
	}

	return nil
}

// embed builds the D×D matrix acting as b on subsystems qargs of dims and as
// identity elsewhere. Preconditions are checked by ComposeSubsystem.
func embed(b *matrix.Dense, dims, qargs []int) (*matrix.Dense, error) {
	size := product(dims)
	bs := b.Rows()
	full := strides(dims)

	// offsets[rq] is the flat-index contribution of b's basis state rq.
	offsets := make([]int, bs)
	var rq, k, rem, d int
	for rq = 0; rq < bs; rq++ {
		rem = rq
		for k = 0; k < len(qargs); k++ {
			d = dims[qargs[k]]
			offsets[rq] += (rem % d) * full[qargs[k]]
			rem /= d
		}
	}

	bv := b.Values()
	out := make([]complex128, size*size)
	var c, cq, base, place, digit int
	for c = 0; c < size; c++ {
		cq, base, place = 0, c, 1
		for k = 0; k < len(qargs); k++ {
			d = dims[qargs[k]]
			digit = (c / full[qargs[k]]) % d
			cq += digit * place
			base -= digit * full[qargs[k]]
			place *= d
		}
		for rq = 0; rq < bs; rq++ {
			out[(base+offsets[rq])*size+c] = bv[rq*bs+cq]
		}
	}

	return matrix.NewFromData(size, size, out)
}

// Power returns a composed with itself k times (identity for k = 0).
//
// Implementation:
//   - Binary exponentiation: O(log k) products.
//
// Errors:
//   - ErrNilOperator, ErrNegativePower, ErrNotSquare (input dims ≠ output dims).
//
// Complexity:
//   - Time O(n³·log k).
func Power(a *Operator, k int) (*Operator, error) {
	if a == nil {
		return nil, operatorErrorf(opPower, ErrNilOperator)
	}
	if k < 0 {
		return nil, operatorErrorf(opPower, ErrNegativePower)
	}
	if !a.IsSquare() {
		return nil, operatorErrorf(opPower, ErrNotSquare)
	}
	result, err := matrix.NewIdentity(a.Rows())
	if err != nil {
		return nil, operatorErrorf(opPower, err)
	}
	base := a.data
	for k > 0 {
		if k&1 == 1 {
			if result, err = matrix.Mul(result, base); err != nil {
				return nil, operatorErrorf(opPower, err)
			}
		}
		k >>= 1
		if k > 0 {
			if base, err = matrix.Mul(base, base); err != nil {
				return nil, operatorErrorf(opPower, err)
			}
		}
	}

	return newUnchecked(result, copyDims(a.inDims), copyDims(a.outDims)), nil
}

// Add returns a + b. Both operands must have identical input and output dims.
// Errors: ErrNilOperator, ErrDimensionMismatch.
func Add(a, b *Operator) (*Operator, error) {
	return linear(a, b, matrix.Add, opAdd)
}

// Sub returns a − b. Both operands must have identical input and output dims.
// Errors: ErrNilOperator, ErrDimensionMismatch.
func Sub(a, b *Operator) (*Operator, error) {
	return linear(a, b, matrix.Sub, opSub)
}

func linear(a, b *Operator, kernel func(x, y matrix.Matrix) (*matrix.Dense, error), tag string) (*Operator, error) {
	if err := validatePair(a, b); err != nil {
		return nil, operatorErrorf(tag, err)
	}
	if !equalDims(a.inDims, b.inDims) || !equalDims(a.outDims, b.outDims) {
		return nil, operatorErrorf(tag, ErrDimensionMismatch)
	}
	m, err := kernel(a.data, b.data)
	if err != nil {
		return nil, operatorErrorf(tag, err)
	}

	return newUnchecked(m, copyDims(a.inDims), copyDims(a.outDims)), nil
}

// Scale returns alpha·a.
// Errors: ErrNilOperator; matrix.ErrNaNInf for a non-finite alpha.
func Scale(a *Operator, alpha complex128) (*Operator, error) {
	if a == nil {
		return nil, operatorErrorf(opScale, ErrNilOperator)
	}
	m, err := matrix.Scale(a.data, alpha)
	if err != nil {
		return nil, operatorErrorf(opScale, err)
	}

	return newUnchecked(m, copyDims(a.inDims), copyDims(a.outDims)), nil
}

// Adjoint returns the conjugate transpose a†, with input and output dims swapped.
func Adjoint(a *Operator) (*Operator, error) {
	if a == nil {
		return nil, operatorErrorf(opAdjoint, ErrNilOperator)
	}
	m, err := matrix.Adjoint(a.data)
	if err != nil {
		return nil, operatorErrorf(opAdjoint, err)
	}

	return newUnchecked(m, copyDims(a.outDims), copyDims(a.inDims)), nil
}
