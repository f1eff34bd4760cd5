// SPDX-License-Identifier: MIT

package operator

import (
	"math"
	"math/cmplx"

	"github.com/katalvlaran/quantik/matrix"
)

// phaseFloor is the magnitude below which a reference entry is treated as zero
// when estimating a global phase.
const phaseFloor = 1e-300

// Equal reports whether a and b have identical dims and every entry satisfies
// |a − b| ≤ atol + rtol·|b| (WithTolerance, WithRelTolerance).
// Equal is not phase-invariant. Nil operands compare unequal.
func Equal(a, b *Operator, opts ...Option) bool {
	if a == nil || b == nil {
		return false
	}
	if !equalDims(a.inDims, b.inDims) || !equalDims(a.outDims, b.outDims) {
		return false
	}
	o := gatherOptions(opts...)
	ok, err := matrix.AllClose(a.data, b.data, o.rtol, o.atol)

	return err == nil && ok
}

// EqualUpToGlobalPhase reports whether a ≈ φ·b for some unit-modulus φ.
//
// Implementation:
//   - Stage 1: locate b's largest-magnitude entry (first in row-major order on ties).
//   - Stage 2: φ = a/b at that entry, normalised to |φ| = 1.
//   - Stage 3: Equal(a, φ·b, opts...).
//
// When b is the zero operator, or a vanishes at the reference entry, no phase
// can be estimated and the result is Equal(a, b).
func EqualUpToGlobalPhase(a, b *Operator, opts ...Option) bool {
	if a == nil || b == nil {
		return false
	}
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		return false
	}
	r, c, err := matrix.ArgMaxAbs(b.data)
	if err != nil {
		return false
	}
	bv, _ := b.data.At(r, c)
	av, _ := a.data.At(r, c)
	if cmplx.Abs(bv) < phaseFloor || cmplx.Abs(av) < phaseFloor {
		return Equal(a, b, opts...)
	}
	phi := av / bv
	phi /= complex(cmplx.Abs(phi), 0)

	scaled, err := Scale(b, phi)
	if err != nil {
		return false
	}

	return Equal(a, scaled, opts...)
}

// IsUnitary reports whether a is square and a†·a ≈ I within the tolerances.
func IsUnitary(a *Operator, opts ...Option) bool {
	if a == nil || a.Rows() != a.Cols() {
		return false
	}
	adj, err := matrix.Adjoint(a.data)
	if err != nil {
		return false
	}
	p, err := matrix.Mul(adj, a.data)
	if err != nil {
		return false
	}
	id, err := matrix.NewIdentity(a.Cols())
	if err != nil {
		return false
	}
	o := gatherOptions(opts...)
	ok, err := matrix.AllClose(p, id, o.rtol, o.atol)

	return err == nil && ok
}

// ProcessFidelity returns |Tr(a†·b)|² / d², d being the input dimension,
// clamped to [0, 1]. It is 1 for a = φ·b with |φ| = 1 and unitary b.
//
// Errors:
//   - ErrNilOperator; ErrDimensionMismatch when the shapes differ.
//
// Complexity:
//   - Time O(r·c): only the diagonal of a†·b is formed.
func ProcessFidelity(a, b *Operator) (float64, error) {
	if err := validatePair(a, b); err != nil {
		return 0, operatorErrorf(opFidelity, err)
	}
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		return 0, operatorErrorf(opFidelity, ErrDimensionMismatch)
	}
	av, bv := a.data.Values(), b.data.Values()
	// Tr(a†b) = Σ_ij conj(a_ij)·b_ij.
	var tr complex128
	for idx := range av {
		tr += cmplx.Conj(av[idx]) * bv[idx]
	}
	d := float64(a.Cols())
	abs := cmplx.Abs(tr)
	f := abs * abs / (d * d)

	return math.Min(1, math.Max(0, f)), nil
}
