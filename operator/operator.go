// SPDX-License-Identifier: MIT

package operator

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/quantik/matrix"
)

// Operation tags for uniform error wrapping.
const (
	opNew              = "New"
	opIdentity         = "Identity"
	opTensor           = "Tensor"
	opCompose          = "Compose"
	opComposeSubsystem = "ComposeSubsystem"
	opPower            = "Power"
	opAdd              = "Add"
	opSub              = "Sub"
	opScale            = "Scale"
	opAdjoint          = "Adjoint"
	opFidelity         = "ProcessFidelity"
	opApply            = "Apply"
	opExpectation      = "Expectation"
	opPauli            = "FromPauli"
)

// operatorErrorf wraps err with an operation tag, preserving it for errors.Is.
func operatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Operator is an immutable complex matrix with subsystem dimension structure.
//   - data is never exposed; accessors hand out copies.
//   - inDims multiply to data.Cols(), outDims to data.Rows().
type Operator struct {
	data    *matrix.Dense
	inDims  []int
	outDims []int
}

var _ fmt.Stringer = (*Operator)(nil)

// New builds an Operator from a copy of m.
//
// Implementation:
//   - Stage 1: copy m into a fresh Dense (later changes to m are not observed).
//   - Stage 2: take dims from WithInputDims/WithOutputDims/WithDims or infer
//     them from the shape (list of 2's for powers of two, else one subsystem).
//   - Stage 3: validate every dim ≥ 2 and the products match the shape.
//
// Errors:
//   - ErrNilOperator for a nil matrix.
//   - ErrInvalidDims for a dim < 2.
//   - ErrDimensionMismatch when a dims product disagrees with the shape.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func New(m matrix.Matrix, opts ...Option) (*Operator, error) {
	if err := matrix.ValidateNotNil(m); err != nil {
		return nil, operatorErrorf(opNew, ErrNilOperator)
	}
	o := gatherOptions(opts...)

	in, out := o.inDims, o.outDims
	if in == nil {
		in = defaultDims(m.Cols())
	}
	if out == nil {
		out = defaultDims(m.Rows())
	}
	if err := validateDims(in, m.Cols()); err != nil {
		return nil, operatorErrorf(opNew, fmt.Errorf("input dims %v for %d columns: %w", in, m.Cols(), err))
	}
	if err := validateDims(out, m.Rows()); err != nil {
		return nil, operatorErrorf(opNew, fmt.Errorf("output dims %v for %d rows: %w", out, m.Rows(), err))
	}

	d, err := matrix.DenseCopy(m)
	if err != nil {
		return nil, operatorErrorf(opNew, err)
	}

	return &Operator{data: d, inDims: copyDims(in), outDims: copyDims(out)}, nil
}

// FromRows builds an Operator from row literals; see New for options and errors.
func FromRows(rows [][]complex128, opts ...Option) (*Operator, error) {
	m, err := matrix.NewFromRows(rows)
	if err != nil {
		return nil, operatorErrorf(opNew, err)
	}

	return New(m, opts...)
}

// Identity returns the identity on the given subsystem dimensions.
// An empty dims list yields the 1×1 identity.
// Errors: ErrInvalidDims for a dim < 2.
func Identity(dims ...int) (*Operator, error) {
	n := product(dims)
	if err := validateDims(dims, n); err != nil {
		return nil, operatorErrorf(opIdentity, err)
	}
	id, err := matrix.NewIdentity(n)
	if err != nil {
		return nil, operatorErrorf(opIdentity, err)
	}

	return &Operator{data: id, inDims: copyDims(dims), outDims: copyDims(dims)}, nil
}

// QubitIdentity returns the identity on n qubits (n ≥ 0).
func QubitIdentity(n int) (*Operator, error) {
	if n < 0 {
		return nil, operatorErrorf(opIdentity, ErrInvalidDims)
	}
	dims := make([]int, n)
	for i := range dims {
		dims[i] = 2
	}

	return Identity(dims...)
}

// newUnchecked wraps an owned Dense without copying or validation.
func newUnchecked(d *matrix.Dense, in, out []int) *Operator {
	return &Operator{data: d, inDims: in, outDims: out}
}

// Rows returns the output dimension (number of matrix rows).
func (op *Operator) Rows() int { return op.data.Rows() }

// Cols returns the input dimension (number of matrix columns).
func (op *Operator) Cols() int { return op.data.Cols() }

// InputDims returns a copy of the input subsystem dimensions.
func (op *Operator) InputDims() []int { return copyDims(op.inDims) }

// OutputDims returns a copy of the output subsystem dimensions.
func (op *Operator) OutputDims() []int { return copyDims(op.outDims) }

// IsSquare reports whether input and output dims are identical.
func (op *Operator) IsSquare() bool { return equalDims(op.inDims, op.outDims) }

// NumQubits returns the number of subsystems when the operator is square and
// every subsystem is a qubit, otherwise 0.
func (op *Operator) NumQubits() int {
	if !op.IsSquare() {
		return 0
	}
	for _, d := range op.inDims {
		if d != 2 {
			return 0
		}
	}

	return len(op.inDims)
}

// At returns the matrix entry at (row, col).
// Errors: matrix.ErrOutOfRange for invalid indices.
func (op *Operator) At(row, col int) (complex128, error) { return op.data.At(row, col) }

// Matrix returns a deep copy of the underlying matrix.
func (op *Operator) Matrix() *matrix.Dense {
	cp, _ := op.data.Clone().(*matrix.Dense)

	return cp
}

// Data returns a row-major copy of the matrix entries.
func (op *Operator) Data() []complex128 { return op.data.Values() }

// String renders the operator as "Operator(in=[...], out=[...])" followed by
// its matrix rows.
func (op *Operator) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Operator(in=%v, out=%v)\n", op.inDims, op.outDims)
	b.WriteString(op.data.String())

	return b.String()
}

// validatePair rejects nil operands.
func validatePair(a, b *Operator) error {
	if a == nil || b == nil {
		return ErrNilOperator
	}

	return nil
}
