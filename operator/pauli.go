// SPDX-License-Identifier: MIT

package operator

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/quantik/matrix"
)

// Single-qubit Pauli matrices, row-major.
var pauliData = map[byte][]complex128{
	'I': {1, 0, 0, 1},
	'X': {0, 1, 1, 0},
	'Y': {0, -1i, 1i, 0},
	'Z': {1, 0, 0, -1},
}

// Recognised phase prefixes for Pauli labels.
var pauliPhases = []struct {
	prefix string
	phase  complex128
}{
	{"-i", -1i},
	{"+i", 1i},
	{"i", 1i},
	{"-", -1},
	{"+", 1},
}

// Pauli returns the single-qubit Pauli operator for one of 'I', 'X', 'Y', 'Z'.
// Errors: ErrInvalidPauli.
func Pauli(p byte) (*Operator, error) {
	data, ok := pauliData[p]
	if !ok {
		return nil, operatorErrorf(opPauli, fmt.Errorf("label %q: %w", p, ErrInvalidPauli))
	}
	m, err := matrix.NewFromData(2, 2, data)
	if err != nil {
		return nil, operatorErrorf(opPauli, err)
	}

	return newUnchecked(m, []int{2}, []int{2}), nil
}

// FromPauli builds the tensor product named by a Pauli label such as "XZ" or
// "-iYI". The leftmost letter acts on the highest qubit, so FromPauli("XZ")
// equals Tensor(X, Z) and Z acts on qubit 0. An optional phase prefix
// ("-", "+", "i", "+i", "-i") multiplies the result.
//
// Errors: ErrInvalidPauli for an empty label or unknown letters.
// Complexity: O(4^n) for n letters.
func FromPauli(label string) (*Operator, error) {
	phase := complex128(1)
	body := label
	for _, p := range pauliPhases {
		if strings.HasPrefix(body, p.prefix) {
			phase, body = p.phase, body[len(p.prefix):]
			break
		}
	}
	if body == "" {
		return nil, operatorErrorf(opPauli, fmt.Errorf("label %q: %w", label, ErrInvalidPauli))
	}

	acc, err := Pauli(body[0])
	if err != nil {
		return nil, err
	}
	for i := 1; i < len(body); i++ {
		next, err := Pauli(body[i])
		if err != nil {
			return nil, err
		}
		if acc, err = Tensor(acc, next); err != nil {
			return nil, operatorErrorf(opPauli, err)
		}
	}
	if phase == 1 {
		return acc, nil
	}

	return Scale(acc, phase)
}
