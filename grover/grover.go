// SPDX-License-Identifier: MIT

package grover

import (
	"fmt"
	"math"

	"github.com/katalvlaran/quantik/circuit"
	"github.com/katalvlaran/quantik/operator"
	"github.com/katalvlaran/quantik/oracle"
)

// maxQubits bounds n so 2^n stays representable and dense operators stay feasible.
const maxQubits = 30

// Gate names used in search circuits.
const (
	DiffusionName = "diffusion"
	StepName      = "grover"
	PowerName     = "grover_pow"
	SearchName    = "search"
)

// OptimalIterations returns floor(π/4 · sqrt(2^numQubits / numMarked)).
//
// Errors:
//   - ErrInvalidQubitCount for numQubits outside [1, 30].
//   - ErrInvalidMarkedCount for numMarked ≤ 0 or numMarked > 2^numQubits.
func OptimalIterations(numQubits, numMarked int) (int, error) {
	if numQubits < 1 || numQubits > maxQubits {
		return 0, fmt.Errorf("%d qubits: %w", numQubits, ErrInvalidQubitCount)
	}
	space := 1 << numQubits
	if numMarked <= 0 || numMarked > space {
		return 0, fmt.Errorf("%d marked of %d: %w", numMarked, space, ErrInvalidMarkedCount)
	}

	return int(math.Floor(math.Pi / 4 * math.Sqrt(float64(space)/float64(numMarked)))), nil
}

// SuccessProbability returns sin²((2k+1)θ) with sin²θ = numMarked/2^numQubits:
// the probability of measuring a marked state after k iterations.
func SuccessProbability(numQubits, numMarked, iterations int) (float64, error) {
	if _, err := OptimalIterations(numQubits, numMarked); err != nil {
		return 0, err
	}
	if iterations < 0 {
		return 0, fmt.Errorf("%d iterations: %w", iterations, ErrInvalidIterations)
	}
	theta := math.Asin(math.Sqrt(float64(numMarked) / float64(int(1)<<numQubits)))
	s := math.Sin(float64(2*iterations+1) * theta)

	return s * s, nil
}

// DiffusionCircuit returns H^n · O₀ · H^n on n qubits, where O₀ flips the
// phase of |0…0⟩. Its operator is I − 2|ψ⟩⟨ψ| for the uniform superposition |ψ⟩.
func DiffusionCircuit(n int) (*circuit.Circuit, error) {
	if n < 1 || n > maxQubits {
		return nil, ErrInvalidQubitCount
	}
	zero, err := oracle.ZeroStateOracle(n)
	if err != nil {
		return nil, err
	}
	d, err := circuit.New(n, circuit.WithName(DiffusionName))
	if err != nil {
		return nil, err
	}
	all := allQubits(n)
	if err = hadamardAll(d); err != nil {
		return nil, err
	}
	if err = d.Compose(zero, all); err != nil {
		return nil, err
	}
	if err = hadamardAll(d); err != nil {
		return nil, err
	}

	return d, nil
}

// BuildDiffusionOperator returns 2|ψ⟩⟨ψ| − I on the oracle's qubits: the
// diffusion circuit's operator scaled by −1.
func BuildDiffusionOperator(oracleCircuit *circuit.Circuit) (*operator.Operator, error) {
	if oracleCircuit == nil {
		return nil, ErrNilOracle
	}
	d, err := DiffusionCircuit(oracleCircuit.NumQubits())
	if err != nil {
		return nil, err
	}
	op, err := d.ToOperator()
	if err != nil {
		return nil, err
	}

	return operator.Scale(op, -1)
}

// GroverOperator returns D·O: the oracle first, then the diffusion.
func GroverOperator(oracleCircuit *circuit.Circuit) (*operator.Operator, error) {
	if oracleCircuit == nil {
		return nil, ErrNilOracle
	}
	o, err := oracleCircuit.ToOperator()
	if err != nil {
		return nil, fmt.Errorf("oracle: %w", err)
	}
	d, err := BuildDiffusionOperator(oracleCircuit)
	if err != nil {
		return nil, err
	}

	return operator.Compose(d, o, false)
}

// BuildSearchCircuit returns H on every qubit, one UnitaryGate holding
// GroverOperator^iterations, then a measurement of every qubit.
// The Grover matrix is computed once and raised with operator.Power.
//
// Errors: ErrNilOracle, ErrInvalidIterations, plus conversion errors.
func BuildSearchCircuit(oracleCircuit *circuit.Circuit, iterations int) (*circuit.Circuit, error) {
	if iterations < 0 {
		return nil, ErrInvalidIterations
	}
	g, err := GroverOperator(oracleCircuit)
	if err != nil {
		return nil, err
	}
	gk, err := operator.Power(g, iterations)
	if err != nil {
		return nil, err
	}
	step, err := circuit.NewUnitaryGate(PowerName, gk)
	if err != nil {
		return nil, err
	}

	return searchCircuit(oracleCircuit.NumQubits(), func(c *circuit.Circuit) error {
		return c.Append(step, allQubits(c.NumQubits())...)
	})
}

// BuildExpandedSearchCircuit returns the same search as BuildSearchCircuit
// with the Grover step placed iterations times as a gate built from the
// oracle and diffusion circuits, so the circuit exports to OpenQASM.
func BuildExpandedSearchCircuit(oracleCircuit *circuit.Circuit, iterations int) (*circuit.Circuit, error) {
	if oracleCircuit == nil {
		return nil, ErrNilOracle
	}
	if iterations < 0 {
		return nil, ErrInvalidIterations
	}
	n := oracleCircuit.NumQubits()
	all := allQubits(n)
	d, err := DiffusionCircuit(n)
	if err != nil {
		return nil, err
	}
	stepCircuit, err := circuit.New(n, circuit.WithName(StepName))
	if err != nil {
		return nil, err
	}
	if err = stepCircuit.Compose(oracleCircuit, all); err != nil {
		return nil, err
	}
	if err = stepCircuit.Compose(d, all); err != nil {
		return nil, err
	}
	step, err := stepCircuit.ToGate()
	if err != nil {
		return nil, err
	}

	return searchCircuit(n, func(c *circuit.Circuit) error {
		for i := 0; i < iterations; i++ {
			if err := c.Append(step, all...); err != nil {
				return err
			}
		}

		return nil
	})
}

// Search synthesises the oracle for marked, computes the optimal iteration
// count and builds the search circuit.
func Search(marked []string) (*circuit.Circuit, int, error) {
	o, err := oracle.Synthesize(marked)
	if err != nil {
		return nil, 0, err
	}
	k, err := OptimalIterations(o.NumQubits(), len(marked))
	if err != nil {
		return nil, 0, err
	}
	c, err := BuildSearchCircuit(o, k)
	if err != nil {
		return nil, 0, err
	}

	return c, k, nil
}

// searchCircuit wraps body between the uniform-superposition layer and the
// final measurement.
func searchCircuit(n int, body func(*circuit.Circuit) error) (*circuit.Circuit, error) {
	c, err := circuit.New(n, circuit.WithName(SearchName))
	if err != nil {
		return nil, err
	}
	if err = hadamardAll(c); err != nil {
		return nil, err
	}
	if err = body(c); err != nil {
		return nil, err
	}
	c.MeasureAll()

	return c, nil
}

func hadamardAll(c *circuit.Circuit) error {
	for q := 0; q < c.NumQubits(); q++ {
		if err := c.H(q); err != nil {
			return err
		}
	}

	return nil
}

func allQubits(n int) []int {
	all := make([]int, n)
	for i := range all {
		all[i] = i
	}

	return all
}
