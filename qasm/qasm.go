// SPDX-License-Identifier: MIT
// Package qasm - OpenQASM 3 serialisation.

package qasm

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/quantik/circuit"
)

const (
	// Version is the OpenQASM language version written in the header.
	Version = "3.0"
	// QubitRegister and ClbitRegister name the declared registers.
	QubitRegister = "q"
	ClbitRegister = "c"
)

// Export returns the OpenQASM 3 program for c.
// Errors: ErrNilCircuit, ErrUnsupportedGate.
func Export(c *circuit.Circuit) (string, error) {
	var sb strings.Builder
	if err := Write(&sb, c); err != nil {
		return "", err
	}

	return sb.String(), nil
}

// Write writes the OpenQASM 3 program for c to w.
//
// Layout:
//
//	OPENQASM 3.0;
//	include "stdgates.inc";
//	qubit[n] q;
//	bit[m] c;        (only when m > 0)
//	<statements>
//
// The body is rendered completely before anything is written, so a failing
// export leaves w untouched.
func Write(w io.Writer, c *circuit.Circuit) error {
	if c == nil {
		return ErrNilCircuit
	}
	var body strings.Builder
	for i, in := range c.Instructions() {
		if in.IsMeasurement() {
			fmt.Fprintf(&body, "%s[%d] = measure %s[%d];\n", ClbitRegister, in.Clbits[0], QubitRegister, in.Qubits[0])
			continue
		}
		if err := writeGate(&body, in.Gate, in.Qubits, ""); err != nil {
			return fmt.Errorf("instruction %d (%s): %w", i, in.Name(), err)
		}
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "OPENQASM %s;\n", Version)
	sb.WriteString("include \"stdgates.inc\";\n")
	fmt.Fprintf(&sb, "qubit[%d] %s;\n", c.NumQubits(), QubitRegister)
	if c.NumClbits() > 0 {
		fmt.Fprintf(&sb, "bit[%d] %s;\n", c.NumClbits(), ClbitRegister)
	}
	sb.WriteString(body.String())
	_, err := io.WriteString(w, sb.String())

	return err
}

// writeGate renders g on qubits with the modifier prefix accumulated so far.
//
// Implementation:
//   - ControlledGate: append "ctrl(k) @ " and recurse into the base with the
//     same qubit list (controls are the low gate qubits in both conventions).
//   - CircuitGate: for every inner placement, map its qubits through qubits
//     and recurse; controls stay in front of the mapped list.
//   - FixedGate / RotationGate: emit the statement.
func writeGate(sb *strings.Builder, g circuit.Gate, qubits []int, prefix string) error {
	switch gate := g.(type) {
	case *circuit.FixedGate:
		writeStatement(sb, prefix+gate.Name(), qubits)
	case *circuit.RotationGate:
		writeStatement(sb, prefix+gate.Name()+"("+FormatAngle(gate.Theta)+")", qubits)
	case *circuit.ControlledGate:
		return writeGate(sb, gate.Base, qubits, prefix+ctrlModifier(gate.NumControls))
	case *circuit.CircuitGate:
		return writeCircuitGate(sb, gate, qubits, prefix)
	default:
		return fmt.Errorf("%s: %w", g.Name(), ErrUnsupportedGate)
	}

	return nil
}

// writeCircuitGate inlines the placements of gate; the last
// gate.NumQubits() entries of qubits are the wrapped circuit's qubits and the
// leading entries are controls inherited from enclosing modifiers.
func writeCircuitGate(sb *strings.Builder, gate *circuit.CircuitGate, qubits []int, prefix string) error {
	inner := gate.Circuit()
	controls := qubits[:len(qubits)-inner.NumQubits()]
	targets := qubits[len(controls):]
	for _, in := range inner.Instructions() {
		mapped := make([]int, 0, len(controls)+len(in.Qubits))
		mapped = append(mapped, controls...)
		for _, q := range in.Qubits {
			mapped = append(mapped, targets[q])
		}
		if err := writeGate(sb, in.Gate, mapped, prefix); err != nil {
			return fmt.Errorf("%s: %w", gate.Name(), err)
		}
	}

	return nil
}

func ctrlModifier(k int) string {
	if k == 1 {
		return "ctrl @ "
	}

	return "ctrl(" + strconv.Itoa(k) + ") @ "
}

func writeStatement(sb *strings.Builder, head string, qubits []int) {
	sb.WriteString(head)
	for i, q := range qubits {
		if i == 0 {
			sb.WriteByte(' ')
		} else {
			sb.WriteString(", ")
		}
		fmt.Fprintf(sb, "%s[%d]", QubitRegister, q)
	}
	sb.WriteString(";\n")
}

// FormatAngle renders theta with the shortest representation that parses back
// to the same float64.
func FormatAngle(theta float64) string {
	return strconv.FormatFloat(theta, 'g', -1, 64)
}
