// SPDX-License-Identifier: MIT

package render

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/katalvlaran/quantik/circuit"
	"github.com/katalvlaran/quantik/qasm"
)

// Wire glyphs.
const (
	wire    = "─"
	cross   = "┼"
	control = "●"
	target  = "⊕"
	swapped = "x"
)

// Circuit writes a text drawing of c: one line per qubit, one column per
// placement, qubit 0 on top. Controls draw as ●, X targets as ⊕ and wires
// crossed by a multi-qubit placement as ┼.
func Circuit(w io.Writer, c *circuit.Circuit) error {
	if c == nil {
		return ErrNilInput
	}
	n := c.NumQubits()
	names := make([]string, n)
	nameWidth := 0
	for q := range names {
		names[q] = fmt.Sprintf("q%d: ", q)
		nameWidth = max(nameWidth, len(names[q]))
	}
	lines := make([]strings.Builder, n)
	for q := range lines {
		lines[q].WriteString(names[q])
		lines[q].WriteString(strings.Repeat(" ", nameWidth-len(names[q])))
	}

	for _, in := range c.Instructions() {
		cells := columnCells(in, n)
		width := 0
		for _, cell := range cells {
			width = max(width, utf8.RuneCountInString(cell))
		}
		for q, cell := range cells {
			lines[q].WriteString(pad(cell, width))
		}
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "%s (%d qubits, %d clbits)\n", c.Name(), n, c.NumClbits())
	for q := range lines {
		sb.WriteString(lines[q].String())
		sb.WriteString(wire + "\n")
	}
	_, err := io.WriteString(w, sb.String())

	return err
}

// columnCells returns the label of every qubit for one placement; idle
// qubits get a wire, or a crossing when the placement spans them.
func columnCells(in circuit.Instruction, n int) []string {
	cells := make([]string, n)
	for q := range cells {
		cells[q] = wire
	}
	if in.IsMeasurement() {
		cells[in.Qubits[0]] = fmt.Sprintf("[M%d]", in.Clbits[0])
		return cells
	}

	lo, hi := in.Qubits[0], in.Qubits[0]
	for _, q := range in.Qubits {
		lo, hi = min(lo, q), max(hi, q)
	}
	for q := lo + 1; q < hi; q++ {
		cells[q] = cross
	}
	for i, label := range gateLabels(in.Gate) {
		cells[in.Qubits[i]] = label
	}

	return cells
}

// gateLabels returns one label per gate qubit in gate-qubit order.
func gateLabels(g circuit.Gate) []string {
	k := g.NumQubits()
	labels := make([]string, k)
	switch gate := g.(type) {
	case *circuit.ControlledGate:
		for i := 0; i < gate.NumControls; i++ {
			labels[i] = control
		}
		copy(labels[gate.NumControls:], gateLabels(gate.Base))
		return labels
	case *circuit.RotationGate:
		labels[0] = "[" + gate.Name() + "(" + qasm.FormatAngle(gate.Theta) + ")]"
		return labels
	}

	if _, fixed := g.(*circuit.FixedGate); fixed {
		switch g.Name() {
		case "x":
			return []string{target}
		case "cx":
			return []string{control, target}
		case "ccx":
			return []string{control, control, target}
		case "cz":
			return []string{control, control}
		case "swap":
			return []string{swapped, swapped}
		}
	}
	if k == 1 {
		labels[0] = "[" + g.Name() + "]"
		return labels
	}
	for i := range labels {
		labels[i] = fmt.Sprintf("[%s:%d]", g.Name(), i)
	}

	return labels
}

// pad centres s in a field of width runes, filled with wire, plus one wire
// on each side.
func pad(s string, width int) string {
	gap := width - utf8.RuneCountInString(s)
	left := gap / 2

	return strings.Repeat(wire, left+1) + s + strings.Repeat(wire, gap-left+1)
}
