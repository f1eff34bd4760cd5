// SPDX-License-Identifier: MIT

package operator

// defaultDims infers subsystem dimensions for a space of the given size:
// a list of 2's for an exact power of two, the whole size otherwise, and an
// empty list for the trivial one-dimensional space.
func defaultDims(size int) []int {
	if size <= 1 {
		return []int{}
	}
	if size&(size-1) == 0 {
		dims := make([]int, 0, 8)
		for s := size; s > 1; s >>= 1 {
			dims = append(dims, 2)
		}

		return dims
	}

	return []int{size}
}

// validateDims checks every dim is ≥ 2 and the product equals size.
func validateDims(dims []int, size int) error {
	for _, d := range dims {
		if d < 2 {
			return ErrInvalidDims
		}
	}
	if product(dims) != size {
		return ErrDimensionMismatch
	}

	return nil
}

// product returns Π dims (1 for an empty list).
func product(dims []int) int {
	p := 1
	for _, d := range dims {
		p *= d
	}

	return p
}

// strides returns the place value of each subsystem digit in a flat index.
func strides(dims []int) []int {
	out := make([]int, len(dims))
	s := 1
	for i, d := range dims {
		out[i] = s
		s *= d
	}

	return out
}

func equalDims(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}

func copyDims(dims []int) []int {
	if dims == nil {
		return nil
	}
	cp := make([]int, len(dims))
	copy(cp, dims)

	return cp
}

// concatDims returns lo ++ hi as a fresh slice.
func concatDims(lo, hi []int) []int {
	out := make([]int, 0, len(lo)+len(hi))
	out = append(out, lo...)

	return append(out, hi...)
}
