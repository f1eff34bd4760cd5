// SPDX-License-Identifier: MIT
// Package grover: sentinel error set.

package grover

import "errors"

var (
	// ErrInvalidMarkedCount indicates numMarked ≤ 0 or numMarked > 2^numQubits.
	ErrInvalidMarkedCount = errors.New("grover: invalid marked count")

	// ErrInvalidQubitCount indicates a qubit count outside the supported range.
	ErrInvalidQubitCount = errors.New("grover: invalid qubit count")

	// ErrInvalidIterations indicates a negative iteration count.
	ErrInvalidIterations = errors.New("grover: negative iteration count")

	// ErrNilOracle indicates a nil oracle circuit.
	ErrNilOracle = errors.New("grover: nil oracle circuit")
)
