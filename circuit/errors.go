// SPDX-License-Identifier: MIT
// Package circuit: sentinel error set.

package circuit

import "errors"

var (
	// ErrInvalidQubitCount indicates a circuit with fewer than one qubit.
	ErrInvalidQubitCount = errors.New("circuit: qubit count must be >= 1")

	// ErrNilGate indicates a nil gate passed to a placement or wrapper.
	ErrNilGate = errors.New("circuit: nil gate")

	// ErrArityMismatch indicates a target list whose length differs from the gate arity.
	ErrArityMismatch = errors.New("circuit: target count does not match gate arity")

	// ErrQubitOutOfRange indicates a qubit index outside [0, NumQubits).
	ErrQubitOutOfRange = errors.New("circuit: qubit index out of range")

	// ErrDuplicateQubit indicates the same qubit listed twice in one placement.
	ErrDuplicateQubit = errors.New("circuit: duplicate qubit in placement")

	// ErrClbitOutOfRange indicates a classical bit index outside [0, NumClbits).
	ErrClbitOutOfRange = errors.New("circuit: classical bit index out of range")

	// ErrQubitCountMismatch indicates a Compose whose target list length differs
	// from the spliced circuit's qubit count.
	ErrQubitCountMismatch = errors.New("circuit: target count does not match circuit qubit count")

	// ErrMeasuredQubitReused indicates a gate acting on a qubit after its measurement.
	ErrMeasuredQubitReused = errors.New("circuit: gate after measurement on the same qubit")

	// ErrMeasurementInGate indicates an attempt to wrap a measuring circuit as a gate.
	ErrMeasurementInGate = errors.New("circuit: circuit with measurements cannot become a gate")

	// ErrInvalidControls indicates a non-positive number of control qubits.
	ErrInvalidControls = errors.New("circuit: number of controls must be >= 1")

	// ErrNotQubitOperator indicates an operator that is not a square qubit operator.
	ErrNotQubitOperator = errors.New("circuit: operator is not a square multi-qubit operator")
)
