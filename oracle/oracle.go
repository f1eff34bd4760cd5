// SPDX-License-Identifier: MIT

package oracle

import (
	"fmt"

	"github.com/katalvlaran/quantik/circuit"
)

// OracleName is the name given to synthesised oracle circuits.
const OracleName = "oracle"

// Validate checks marked is a non-empty list of equal-length, non-empty
// {0,1} strings and returns their common length.
// Errors: ErrMalformedMarkedState.
func Validate(marked []string) (int, error) {
	if len(marked) == 0 {
		return 0, fmt.Errorf("empty marked set: %w", ErrMalformedMarkedState)
	}
	n := len(marked[0])
	if n == 0 {
		return 0, fmt.Errorf("empty marked state: %w", ErrMalformedMarkedState)
	}
	for i, s := range marked {
		if len(s) != n {
			return 0, fmt.Errorf("state %d %q has length %d, want %d: %w", i, s, len(s), n, ErrMalformedMarkedState)
		}
		for j := 0; j < len(s); j++ {
			if s[j] != '0' && s[j] != '1' {
				return 0, fmt.Errorf("state %d %q: character %q: %w", i, s, s[j], ErrMalformedMarkedState)
			}
		}
	}

	return n, nil
}

// Dedupe returns marked without repeated strings, keeping first occurrences.
func Dedupe(marked []string) []string {
	seen := make(map[string]struct{}, len(marked))
	out := make([]string, 0, len(marked))
	for _, s := range marked {
		if _, dup := seen[s]; dup {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}

	return out
}

// Synthesize builds the phase oracle for marked.
//
// Implementation:
//   - Stage 1: Validate; n is the common string length.
//   - Stage 2: for each string, reverse it so position i is qubit i and
//     collect the positions holding '0'.
//   - Stage 3: build the reflection X(zeros) · MCZ(all n qubits) · X(zeros);
//     an all-ones string gets the bare MCZ, and n = 1 uses a plain Z.
//   - Stage 4: compose the reflections in input order.
//
// Reflections are diagonal ±1 operators, so a string listed twice flips its
// state twice and cancels. Callers that want set semantics pass Dedupe(marked).
//
// Errors: ErrMalformedMarkedState.
// Complexity: O(|marked|·n) placements.
func Synthesize(marked []string) (*circuit.Circuit, error) {
	n, err := Validate(marked)
	if err != nil {
		return nil, err
	}
	oracle, err := circuit.New(n, circuit.WithName(OracleName))
	if err != nil {
		return nil, err
	}
	all := make([]int, n)
	for i := range all {
		all[i] = i
	}
	for _, s := range marked {
		reflection, err := markState(s, all)
		if err != nil {
			return nil, err
		}
		if err = oracle.Compose(reflection, all); err != nil {
			return nil, err
		}
	}

	return oracle, nil
}

// ZeroStateOracle returns the oracle marking only |0…0⟩ on n qubits.
func ZeroStateOracle(n int) (*circuit.Circuit, error) {
	if n < 1 {
		return nil, circuit.ErrInvalidQubitCount
	}
	zeros := make([]byte, n)
	for i := range zeros {
		zeros[i] = '0'
	}

	return Synthesize([]string{string(zeros)})
}

// markState builds the reflection for one validated bit string.
func markState(s string, all []int) (*circuit.Circuit, error) {
	n := len(s)
	c, err := circuit.New(n, circuit.WithName("mark_"+s))
	if err != nil {
		return nil, err
	}
	zeros := make([]int, 0, n)
	for q := 0; q < n; q++ {
		if s[n-1-q] == '0' {
			zeros = append(zeros, q)
		}
	}
	flip := func() error {
		for _, q := range zeros {
			if err := c.X(q); err != nil {
				return err
			}
		}

		return nil
	}
	if err = flip(); err != nil {
		return nil, err
	}
	if err = c.MCZ(all...); err != nil {
		return nil, err
	}
	if err = flip(); err != nil {
		return nil, err
	}

	return c, nil
}
