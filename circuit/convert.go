// SPDX-License-Identifier: MIT

package circuit

import (
	"fmt"

	"github.com/katalvlaran/quantik/operator"
)

// ToOperator computes the circuit's unitary on NumQubits qubits.
//
// Implementation:
//   - Stage 1: start from the identity.
//   - Stage 2: for each gate placement, materialise the gate and apply it
//     after everything so far: acc = ComposeSubsystem(acc, gate, qubits, front=true).
//   - Measurements are terminal: they are skipped, and a later gate on a
//     measured qubit fails.
//
// Errors:
//   - ErrMeasuredQubitReused; gate materialisation and operator errors (wrapped).
//
// Complexity:
//   - O(p·4^n) embedding plus O(p·8^n) products for p placements.
func (c *Circuit) ToOperator() (*operator.Operator, error) {
	acc, err := operator.QubitIdentity(c.numQubits)
	if err != nil {
		return nil, err
	}
	measured := make([]bool, c.numQubits)
	for idx, in := range c.instructions {
		if in.IsMeasurement() {
			measured[in.Qubits[0]] = true
			continue
		}
		for _, q := range in.Qubits {
			if measured[q] {
				return nil, fmt.Errorf("instruction %d (%s) on q[%d]: %w", idx, in.Name(), q, ErrMeasuredQubitReused)
			}
		}
		op, err := in.Gate.Operator()
		if err != nil {
			return nil, fmt.Errorf("instruction %d (%s): %w", idx, in.Name(), err)
		}
		if acc, err = operator.ComposeSubsystem(acc, op, in.Qubits, true); err != nil {
			return nil, fmt.Errorf("instruction %d (%s): %w", idx, in.Name(), err)
		}
	}

	return acc, nil
}

// HasMeasurements reports whether any placement is a measurement.
func (c *Circuit) HasMeasurements() bool {
	for _, in := range c.instructions {
		if in.IsMeasurement() {
			return true
		}
	}

	return false
}

// MeasuredClbits returns, for each classical bit, the qubit last measured into
// it, or -1 when the bit is never written.
func (c *Circuit) MeasuredClbits() []int {
	out := make([]int, c.numClbits)
	for i := range out {
		out[i] = -1
	}
	for _, in := range c.instructions {
		if in.IsMeasurement() {
			out[in.Clbits[0]] = in.Qubits[0]
		}
	}

	return out
}
