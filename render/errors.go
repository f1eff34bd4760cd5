// SPDX-License-Identifier: MIT
// Package render: sentinel error set.

package render

import "errors"

var (
	// ErrUnknownFormat indicates a distribution format other than chart, json or yaml.
	ErrUnknownFormat = errors.New("render: unknown output format")

	// ErrNilInput indicates a nil circuit or result.
	ErrNilInput = errors.New("render: nil input")
)
