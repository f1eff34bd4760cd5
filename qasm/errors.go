// SPDX-License-Identifier: MIT
// Package qasm: sentinel error set.

package qasm

import "errors"

var (
	// ErrNilCircuit indicates a nil circuit passed to an exporter.
	ErrNilCircuit = errors.New("qasm: nil circuit")

	// ErrUnsupportedGate indicates a gate with no OpenQASM 3 representation.
	ErrUnsupportedGate = errors.New("qasm: gate has no OpenQASM representation")
)
