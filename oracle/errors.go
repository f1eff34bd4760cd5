// SPDX-License-Identifier: MIT
// Package oracle: sentinel error set.

package oracle

import "errors"

// ErrMalformedMarkedState indicates an empty marked set, an empty string,
// strings of unequal length or characters other than '0' and '1'.
var ErrMalformedMarkedState = errors.New("oracle: malformed marked state")
