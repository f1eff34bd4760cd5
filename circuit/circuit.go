// SPDX-License-Identifier: MIT
// Package circuit - ordered gate placements over a fixed qubit register.
//
// Purpose:
//   - Record placements lazily (no matrix work until ToOperator).
//   - Validate every placement at append time so a stored circuit is always
//     well-formed: arity matches, indices in range, no repeated qubit.
//
// Notes:
//   - Qubit lists are copied on placement and never mutated afterwards.

package circuit

import (
	"fmt"
)

const defaultName = "circuit"

// Instruction is one placement: a gate on Qubits, or a measurement of
// Qubits[0] into Clbits[0] (Gate == nil).
type Instruction struct {
	Gate   Gate
	Qubits []int
	Clbits []int
}

// IsMeasurement reports whether the instruction is a measurement.
func (in Instruction) IsMeasurement() bool { return in.Gate == nil }

// Name returns the gate name or "measure".
func (in Instruction) Name() string {
	if in.IsMeasurement() {
		return "measure"
	}

	return in.Gate.Name()
}

func (in Instruction) clone() Instruction {
	return Instruction{Gate: in.Gate, Qubits: copyInts(in.Qubits), Clbits: copyInts(in.Clbits)}
}

// Circuit is an ordered list of placements on NumQubits qubits and
// NumClbits classical bits.
type Circuit struct {
	name         string
	numQubits    int
	numClbits    int
	instructions []Instruction
}

// Option configures a new Circuit.
type Option func(*Circuit)

// WithName sets the circuit name (used as the gate name by ToGate).
func WithName(name string) Option {
	return func(c *Circuit) {
		if name != "" {
			c.name = name
		}
	}
}

// WithClbits reserves n classical bits. Negative values panic.
func WithClbits(n int) Option {
	if n < 0 {
		panic("circuit: WithClbits: n must be non-negative")
	}

	return func(c *Circuit) { c.numClbits = n }
}

// New returns an empty circuit on numQubits qubits.
// Errors: ErrInvalidQubitCount for numQubits < 1.
func New(numQubits int, opts ...Option) (*Circuit, error) {
	if numQubits < 1 {
		return nil, ErrInvalidQubitCount
	}
	c := &Circuit{name: defaultName, numQubits: numQubits}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}

	return c, nil
}

// Name returns the circuit name.
func (c *Circuit) Name() string { return c.name }

// NumQubits returns the number of qubits.
func (c *Circuit) NumQubits() int { return c.numQubits }

// NumClbits returns the number of classical bits.
func (c *Circuit) NumClbits() int { return c.numClbits }

// Len returns the number of placements.
func (c *Circuit) Len() int { return len(c.instructions) }

// Instructions returns a deep copy of the placements in order.
func (c *Circuit) Instructions() []Instruction {
	out := make([]Instruction, len(c.instructions))
	for i, in := range c.instructions {
		out[i] = in.clone()
	}

	return out
}

// Clone returns an independent copy of the circuit.
func (c *Circuit) Clone() *Circuit {
	return &Circuit{
		name:         c.name,
		numQubits:    c.numQubits,
		numClbits:    c.numClbits,
		instructions: c.Instructions(),
	}
}

// Append places g on qubits (gate qubit i ↦ circuit qubit qubits[i]).
//
// Errors:
//   - ErrNilGate, ErrArityMismatch, ErrQubitOutOfRange, ErrDuplicateQubit.
func (c *Circuit) Append(g Gate, qubits ...int) error {
	if g == nil {
		return ErrNilGate
	}
	if len(qubits) != g.NumQubits() {
		return fmt.Errorf("%s on %v: %w", g.Name(), qubits, ErrArityMismatch)
	}
	if err := c.validateQubits(qubits); err != nil {
		return fmt.Errorf("%s on %v: %w", g.Name(), qubits, err)
	}
	c.instructions = append(c.instructions, Instruction{Gate: g, Qubits: copyInts(qubits)})

	return nil
}

// AppendControlled places Controlled(g, 1) on [control] ++ targets.
// The target list is not modified.
func (c *Circuit) AppendControlled(g Gate, control int, targets ...int) error {
	cg, err := Controlled(g, 1)
	if err != nil {
		return err
	}
	qubits := make([]int, 0, len(targets)+1)
	qubits = append(qubits, control)
	qubits = append(qubits, targets...)

	return c.Append(cg, qubits...)
}

// H appends a Hadamard on q.
func (c *Circuit) H(q int) error { return c.Append(H(), q) }

// X appends a Pauli-X on q.
func (c *Circuit) X(q int) error { return c.Append(X(), q) }

// Y appends a Pauli-Y on q.
func (c *Circuit) Y(q int) error { return c.Append(Y(), q) }

// Z appends a Pauli-Z on q.
func (c *Circuit) Z(q int) error { return c.Append(Z(), q) }

// S appends an S gate on q.
func (c *Circuit) S(q int) error { return c.Append(S(), q) }

// T appends a T gate on q.
func (c *Circuit) T(q int) error { return c.Append(T(), q) }

// RX appends an X rotation on q.
func (c *Circuit) RX(theta float64, q int) error { return c.Append(RX(theta), q) }

// RY appends a Y rotation on q.
func (c *Circuit) RY(theta float64, q int) error { return c.Append(RY(theta), q) }

// RZ appends a Z rotation on q.
func (c *Circuit) RZ(theta float64, q int) error { return c.Append(RZ(theta), q) }

// CX appends a CNOT with the given control and target.
func (c *Circuit) CX(control, target int) error { return c.Append(CX(), control, target) }

// CZ appends a controlled-Z.
func (c *Circuit) CZ(control, target int) error { return c.Append(CZ(), control, target) }

// Swap appends a SWAP of a and b.
func (c *Circuit) Swap(a, b int) error { return c.Append(SWAP(), a, b) }

// MCZ appends a multi-controlled Z over qubits (all but the last are controls;
// a single qubit gets a plain Z).
func (c *Circuit) MCZ(qubits ...int) error {
	if len(qubits) == 0 {
		return fmt.Errorf("mcz: %w", ErrArityMismatch)
	}
	g, err := MCZ(len(qubits) - 1)
	if err != nil {
		return err
	}

	return c.Append(g, qubits...)
}

// Measure records a measurement of qubit into clbit.
// Errors: ErrQubitOutOfRange, ErrClbitOutOfRange.
func (c *Circuit) Measure(qubit, clbit int) error {
	if err := c.validateQubits([]int{qubit}); err != nil {
		return fmt.Errorf("measure: %w", err)
	}
	if clbit < 0 || clbit >= c.numClbits {
		return fmt.Errorf("measure q[%d] -> c[%d]: %w", qubit, clbit, ErrClbitOutOfRange)
	}
	c.instructions = append(c.instructions, Instruction{Qubits: []int{qubit}, Clbits: []int{clbit}})

	return nil
}

// MeasureAll grows the classical register by NumQubits bits and measures
// qubit i into the i-th new bit.
func (c *Circuit) MeasureAll() {
	offset := c.numClbits
	c.numClbits += c.numQubits
	for q := 0; q < c.numQubits; q++ {
		c.instructions = append(c.instructions, Instruction{Qubits: []int{q}, Clbits: []int{offset + q}})
	}
}

// Compose splices other's placements into c, mapping other's qubit i to
// targets[i]. Classical bits map identically. c is unchanged on error.
//
// Errors:
//   - ErrQubitCountMismatch when len(targets) != other.NumQubits().
//   - ErrQubitOutOfRange, ErrDuplicateQubit for invalid targets.
//   - ErrClbitOutOfRange when other measures into a bit c does not have.
func (c *Circuit) Compose(other *Circuit, targets []int) error {
	if other == nil {
		return ErrNilGate
	}
	if len(targets) != other.numQubits {
		return fmt.Errorf("compose %q onto %v: %w", other.name, targets, ErrQubitCountMismatch)
	}
	if err := c.validateQubits(targets); err != nil {
		return fmt.Errorf("compose %q: %w", other.name, err)
	}

	spliced := make([]Instruction, 0, len(other.instructions))
	for _, in := range other.instructions {
		mapped := in.clone()
		for i, q := range in.Qubits {
			mapped.Qubits[i] = targets[q]
		}
		for _, cl := range in.Clbits {
			if cl >= c.numClbits {
				return fmt.Errorf("compose %q: c[%d]: %w", other.name, cl, ErrClbitOutOfRange)
			}
		}
		spliced = append(spliced, mapped)
	}
	c.instructions = append(c.instructions, spliced...)

	return nil
}

// ToGate wraps a copy of c as a CircuitGate.
// Errors: ErrMeasurementInGate when c contains measurements.
func (c *Circuit) ToGate() (*CircuitGate, error) {
	for _, in := range c.instructions {
		if in.IsMeasurement() {
			return nil, ErrMeasurementInGate
		}
	}

	return &CircuitGate{circ: c.Clone()}, nil
}

// ToControlledGate wraps c as a gate with numControls control qubits
// prepended (controls become the gate's qubits 0..numControls-1).
func (c *Circuit) ToControlledGate(numControls int) (*ControlledGate, error) {
	g, err := c.ToGate()
	if err != nil {
		return nil, err
	}

	return Controlled(g, numControls)
}

// Decompose returns a copy with every CircuitGate placement replaced by its
// inner placements (one level deep).
func (c *Circuit) Decompose() *Circuit {
	out := &Circuit{name: c.name, numQubits: c.numQubits, numClbits: c.numClbits}
	for _, in := range c.instructions {
		cg, ok := in.Gate.(*CircuitGate)
		if !ok {
			out.instructions = append(out.instructions, in.clone())
			continue
		}
		for _, inner := range cg.circ.instructions {
			mapped := inner.clone()
			for i, q := range inner.Qubits {
				mapped.Qubits[i] = in.Qubits[q]
			}
			out.instructions = append(out.instructions, mapped)
		}
	}

	return out
}

// Depth returns the number of layers when every placement starts right after
// the latest placement touching any of its qubits or classical bits.
func (c *Circuit) Depth() int {
	qLevel := make([]int, c.numQubits)
	cLevel := make([]int, c.numClbits)
	depth := 0
	for _, in := range c.instructions {
		level := 0
		for _, q := range in.Qubits {
			level = max(level, qLevel[q])
		}
		for _, cl := range in.Clbits {
			level = max(level, cLevel[cl])
		}
		level++
		for _, q := range in.Qubits {
			qLevel[q] = level
		}
		for _, cl := range in.Clbits {
			cLevel[cl] = level
		}
		depth = max(depth, level)
	}

	return depth
}

// validateQubits checks indices are in range and pairwise distinct.
func (c *Circuit) validateQubits(qubits []int) error {
	for i, q := range qubits {
		if q < 0 || q >= c.numQubits {
			return fmt.Errorf("q[%d]: %w", q, ErrQubitOutOfRange)
		}
		for _, p := range qubits[:i] {
			if p == q {
				return fmt.Errorf("q[%d]: %w", q, ErrDuplicateQubit)
			}
		}
	}

	return nil
}

func copyInts(s []int) []int {
	if s == nil {
		return nil
	}
	cp := make([]int, len(s))
	copy(cp, s)

	return cp
}
