// SPDX-License-Identifier: MIT
// Package operator: sentinel error set.
// All functions return these sentinels (possibly wrapped with an operation
// tag); callers match them via errors.Is.

package operator

import "errors"

var (
	// ErrNilOperator indicates that a nil *Operator or nil matrix was supplied.
	ErrNilOperator = errors.New("operator: nil operator")

	// ErrDimensionMismatch indicates that subsystem dimensions disagree with
	// the matrix shape, or that two operands cannot be combined.
	ErrDimensionMismatch = errors.New("operator: dimension mismatch")

	// ErrInvalidDims indicates a subsystem dimension smaller than 2.
	ErrInvalidDims = errors.New("operator: subsystem dimensions must be >= 2")

	// ErrSubsystemSizeMismatch indicates that an embedded operator is not square
	// or its size differs from the product of the targeted subsystem dimensions.
	ErrSubsystemSizeMismatch = errors.New("operator: subsystem size mismatch")

	// ErrInvalidQargs indicates empty, duplicate or out-of-range subsystem indices.
	ErrInvalidQargs = errors.New("operator: invalid subsystem indices")

	// ErrNegativePower indicates a negative exponent in Power.
	ErrNegativePower = errors.New("operator: negative power")

	// ErrNotSquare indicates an operation that needs equal input and output dimensions.
	ErrNotSquare = errors.New("operator: operator is not square")

	// ErrInvalidPauli indicates a malformed Pauli label.
	ErrInvalidPauli = errors.New("operator: invalid Pauli label")
)
