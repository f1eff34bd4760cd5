// SPDX-License-Identifier: MIT
// Package gateway: sentinel error set.

package gateway

import "github.com/cockroachdb/errors"

var (
	// ErrBackendUnavailable indicates a transport failure, a 5xx response, a
	// failed or cancelled job, or no operational backend to select.
	ErrBackendUnavailable = errors.New("gateway: backend unavailable")

	// ErrAuthenticationFailed indicates a missing token or a 401/403 response.
	ErrAuthenticationFailed = errors.New("gateway: authentication failed")

	// ErrRequestRejected indicates any other non-2xx response.
	ErrRequestRejected = errors.New("gateway: request rejected")

	// ErrInvalidShots indicates a non-positive shot count.
	ErrInvalidShots = errors.New("gateway: shots must be >= 1")

	// ErrNilCircuit indicates a nil circuit passed to Run or Submit.
	ErrNilCircuit = errors.New("gateway: nil circuit")

	// ErrNoMeasurements indicates a circuit that writes no classical bit.
	ErrNoMeasurements = errors.New("gateway: circuit has no measurements")

	// ErrCircuitTooLarge indicates a circuit wider than the simulator accepts.
	ErrCircuitTooLarge = errors.New("gateway: circuit exceeds simulator qubit limit")
)
