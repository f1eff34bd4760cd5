// SPDX-License-Identifier: MIT

package logger

// Standard field names for structured logging.
const (
	FieldComponent = "component"
	FieldJobID     = "job_id"
	FieldBackend   = "backend"
	FieldStatus    = "status"
	FieldShots     = "shots"
	FieldQubits    = "qubits"
	FieldCount     = "count"
	FieldURL       = "url"
	FieldError     = "error"

	FieldDurationMS = "duration_ms"
	FieldIterations = "iterations"
	FieldPending    = "pending_jobs"
)
