// SPDX-License-Identifier: MIT

package operator

import (
	"math/cmplx"

	"github.com/katalvlaran/quantik/matrix"
)

// ZeroState returns the basis vector |0…0⟩ of length dim.
func ZeroState(dim int) []complex128 {
	if dim <= 0 {
		return nil
	}
	v := make([]complex128, dim)
	v[0] = 1

	return v
}

// Apply returns a·state. len(state) must equal a.Cols().
// Errors: ErrNilOperator, ErrDimensionMismatch.
func Apply(a *Operator, state []complex128) ([]complex128, error) {
	if a == nil {
		return nil, operatorErrorf(opApply, ErrNilOperator)
	}
	if len(state) != a.Cols() {
		return nil, operatorErrorf(opApply, ErrDimensionMismatch)
	}
	out, err := matrix.MatVec(a.data, state)
	if err != nil {
		return nil, operatorErrorf(opApply, err)
	}

	return out, nil
}

// Probabilities returns |⟨k|a|0⟩|² for every output basis state k, i.e. the
// measurement distribution after a acts on the all-zero state.
func Probabilities(a *Operator) ([]float64, error) {
	if a == nil {
		return nil, operatorErrorf(opApply, ErrNilOperator)
	}
	probs := make([]float64, a.Rows())
	var amp complex128
	for k := range probs {
		amp, _ = a.data.At(k, 0)
		probs[k] = real(amp)*real(amp) + imag(amp)*imag(amp)
	}

	return probs, nil
}

// Expectation returns ⟨state|obs|state⟩. obs must be square with
// obs.Cols() == len(state).
// Errors: ErrNilOperator, ErrNotSquare, ErrDimensionMismatch.
func Expectation(obs *Operator, state []complex128) (complex128, error) {
	if obs == nil {
		return 0, operatorErrorf(opExpectation, ErrNilOperator)
	}
	if obs.Rows() != obs.Cols() {
		return 0, operatorErrorf(opExpectation, ErrNotSquare)
	}
	v, err := Apply(obs, state)
	if err != nil {
		return 0, operatorErrorf(opExpectation, err)
	}
	var sum complex128
	for i := range v {
		sum += cmplx.Conj(state[i]) * v[i]
	}

	return sum, nil
}
