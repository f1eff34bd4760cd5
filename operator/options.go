// SPDX-License-Identifier: MIT

// Package operator: functional configuration for construction and numeric
// comparison. This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal).
//
// Design goals:
//   - Deterministic behavior: no global state.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//   - Options fields are unexported; public APIs consume ...Option.
package operator

import "math"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultTolerance is the absolute tolerance used by Equal, IsUnitary and
	// EqualUpToGlobalPhase.
	DefaultTolerance = 1e-8

	// DefaultRelTolerance is the relative tolerance scaled by |b| in elementwise checks.
	DefaultRelTolerance = 1e-5
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicToleranceInvalid    = "operator: WithTolerance: atol must be finite, non-negative"
	panicRelToleranceInvalid = "operator: WithRelTolerance: rtol must be finite, non-negative"
)

// Option mutates internal options. Safe to apply repeatedly (last one wins).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	atol    float64 // >= 0; DefaultTolerance
	rtol    float64 // >= 0; DefaultRelTolerance
	inDims  []int   // nil ⇒ inferred from the column count
	outDims []int   // nil ⇒ inferred from the row count
}

// WithTolerance sets the absolute tolerance atol.
// Panics when atol is NaN, ±Inf or negative.
// Complexity: O(1).
func WithTolerance(atol float64) Option {
	if math.IsNaN(atol) || math.IsInf(atol, 0) || atol < 0 {
		panic(panicToleranceInvalid)
	}

	return func(o *Options) { o.atol = atol }
}

// WithRelTolerance sets the relative tolerance rtol.
// Panics when rtol is NaN, ±Inf or negative.
func WithRelTolerance(rtol float64) Option {
	if math.IsNaN(rtol) || math.IsInf(rtol, 0) || rtol < 0 {
		panic(panicRelToleranceInvalid)
	}

	return func(o *Options) { o.rtol = rtol }
}

// WithInputDims declares the input subsystem dimensions (subsystem order).
// Validation happens in New, which reports ErrInvalidDims/ErrDimensionMismatch.
func WithInputDims(dims ...int) Option {
	cp := copyDims(dims)

	return func(o *Options) { o.inDims = cp }
}

// WithOutputDims declares the output subsystem dimensions (subsystem order).
func WithOutputDims(dims ...int) Option {
	cp := copyDims(dims)

	return func(o *Options) { o.outDims = cp }
}

// WithDims declares identical input and output subsystem dimensions.
func WithDims(dims ...int) Option {
	cp := copyDims(dims)

	return func(o *Options) {
		o.inDims = cp
		o.outDims = cp
	}
}

// gatherOptions applies opts over the defaults.
func gatherOptions(opts ...Option) Options {
	o := Options{atol: DefaultTolerance, rtol: DefaultRelTolerance}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
