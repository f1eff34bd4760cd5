// SPDX-License-Identifier: MIT
// Package circuit - the closed set of gate variants.
//
// Purpose:
//   - Describe a gate by name and arity without computing its matrix.
//   - Materialise the matrix only on demand (Operator), which ToOperator calls
//     once per placement.
//
// Variants:
//   - FixedGate: named constant matrix (h, x, cx, ccx, ...).
//   - RotationGate: single-parameter rotation (rx, ry, rz, p).
//   - ControlledGate: k controls over a base gate.
//   - CircuitGate: a circuit used as a gate.
//   - UnitaryGate: an arbitrary qubit Operator used as a gate.

package circuit

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/katalvlaran/quantik/matrix"
	"github.com/katalvlaran/quantik/operator"
)

// Gate is a placeable unitary of fixed arity. The set of implementations is
// closed: only the variants of this package satisfy it.
type Gate interface {
	// Name returns the lower-case mnemonic used in drawings and OpenQASM.
	Name() string
	// NumQubits returns the gate arity.
	NumQubits() int
	// Operator materialises the gate's matrix on NumQubits qubits; qubit 0 of
	// the gate is the least-significant subsystem.
	Operator() (*operator.Operator, error)

	isGate()
}

// Compile-time checks.
var (
	_ Gate = (*FixedGate)(nil)
	_ Gate = (*RotationGate)(nil)
	_ Gate = (*ControlledGate)(nil)
	_ Gate = (*CircuitGate)(nil)
	_ Gate = (*UnitaryGate)(nil)
)

// qubitOperator wraps a row-major 2^n×2^n buffer as an n-qubit operator.
func qubitOperator(data []complex128) (*operator.Operator, error) {
	dim := int(math.Sqrt(float64(len(data))))
	m, err := matrix.NewFromData(dim, dim, data)
	if err != nil {
		return nil, err
	}

	return operator.New(m)
}

// ---------- FixedGate ----------

// FixedGate is a gate with a constant matrix.
type FixedGate struct {
	name   string
	qubits int
	data   []complex128 // row-major, (2^qubits)²
}

func (g *FixedGate) Name() string   { return g.name }
func (g *FixedGate) NumQubits() int { return g.qubits }
func (*FixedGate) isGate()          {}

// Operator returns the gate matrix as an Operator.
func (g *FixedGate) Operator() (*operator.Operator, error) { return qubitOperator(g.data) }

// ---------- RotationGate ----------

// RotationKind selects the rotation axis of a RotationGate.
type RotationKind int

const (
	// RotX is exp(-iθX/2).
	RotX RotationKind = iota
	// RotY is exp(-iθY/2).
	RotY
	// RotZ is exp(-iθZ/2).
	RotZ
	// RotPhase is diag(1, e^{iθ}).
	RotPhase
)

var rotationNames = [...]string{RotX: "rx", RotY: "ry", RotZ: "rz", RotPhase: "p"}

// RotationGate is a single-qubit rotation by Theta radians.
type RotationGate struct {
	Kind  RotationKind
	Theta float64
}

func (g *RotationGate) Name() string   { return rotationNames[g.Kind] }
func (g *RotationGate) NumQubits() int { return 1 }
func (*RotationGate) isGate()          {}

// Operator returns the 2×2 rotation matrix.
func (g *RotationGate) Operator() (*operator.Operator, error) {
	c, s := math.Cos(g.Theta/2), math.Sin(g.Theta/2)
	var data []complex128
	switch g.Kind {
	case RotX:
		data = []complex128{complex(c, 0), complex(0, -s), complex(0, -s), complex(c, 0)}
	case RotY:
		data = []complex128{complex(c, 0), complex(-s, 0), complex(s, 0), complex(c, 0)}
	case RotZ:
		data = []complex128{cmplx.Exp(complex(0, -g.Theta/2)), 0, 0, cmplx.Exp(complex(0, g.Theta/2))}
	case RotPhase:
		data = []complex128{1, 0, 0, cmplx.Exp(complex(0, g.Theta))}
	default:
		return nil, fmt.Errorf("circuit: unknown rotation kind %d", g.Kind)
	}

	return qubitOperator(data)
}

// ---------- ControlledGate ----------

// ControlledGate applies Base iff all NumControls control qubits are |1⟩.
// The controls are the gate's qubits 0..NumControls-1, followed by the
// base gate's qubits.
type ControlledGate struct {
	Base        Gate
	NumControls int
}

// Controlled wraps g with numControls control qubits.
// Errors: ErrNilGate, ErrInvalidControls.
func Controlled(g Gate, numControls int) (*ControlledGate, error) {
	if g == nil {
		return nil, ErrNilGate
	}
	if numControls < 1 {
		return nil, ErrInvalidControls
	}

	return &ControlledGate{Base: g, NumControls: numControls}, nil
}

// Name returns "c<base>" for one control and "mc<base>" otherwise.
func (g *ControlledGate) Name() string {
	if g.NumControls == 1 {
		return "c" + g.Base.Name()
	}

	return "mc" + g.Base.Name()
}

func (g *ControlledGate) NumQubits() int { return g.NumControls + g.Base.NumQubits() }
func (*ControlledGate) isGate()          {}

// Operator embeds the base matrix in the all-controls-set block.
//
// Implementation:
//   - For column col whose low NumControls bits are all 1, row r with the same
//     control bits gets U[r>>k][col>>k]; every other column is the identity column.
//
// Complexity: O(4^n) for n = NumQubits.
func (g *ControlledGate) Operator() (*operator.Operator, error) {
	base, err := g.Base.Operator()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", g.Name(), err)
	}

	return qubitOperator(controlledData(base.Data(), base.Rows(), g.NumControls))
}

// controlledData returns the row-major matrix of u (dim×dim) with k low controls.
func controlledData(u []complex128, dim, k int) []complex128 {
	mask := 1<<k - 1
	size := dim << k
	out := make([]complex128, size*size)
	var col, rb int
	for col = 0; col < size; col++ {
		if col&mask != mask {
			out[col*size+col] = 1
			continue
		}
		for rb = 0; rb < dim; rb++ {
			out[(rb<<k|mask)*size+col] = u[rb*dim+col>>k]
		}
	}

	return out
}

// ---------- CircuitGate ----------

// CircuitGate is a measurement-free circuit used as a single gate.
type CircuitGate struct {
	circ *Circuit
}

// Name returns the wrapped circuit's name.
func (g *CircuitGate) Name() string   { return g.circ.Name() }
func (g *CircuitGate) NumQubits() int { return g.circ.NumQubits() }
func (*CircuitGate) isGate()          {}

// Operator returns the wrapped circuit's operator.
func (g *CircuitGate) Operator() (*operator.Operator, error) { return g.circ.ToOperator() }

// Circuit returns a copy of the wrapped circuit.
func (g *CircuitGate) Circuit() *Circuit { return g.circ.Clone() }

// ---------- UnitaryGate ----------

// UnitaryGate places a precomputed qubit operator as a gate.
type UnitaryGate struct {
	label string
	op    *operator.Operator
}

// NewUnitaryGate wraps op, which must be a square operator on one or more qubits.
// Errors: ErrNilGate, ErrNotQubitOperator.
func NewUnitaryGate(label string, op *operator.Operator) (*UnitaryGate, error) {
	if op == nil {
		return nil, ErrNilGate
	}
	if op.NumQubits() < 1 {
		return nil, ErrNotQubitOperator
	}
	if label == "" {
		label = "unitary"
	}

	return &UnitaryGate{label: label, op: op}, nil
}

func (g *UnitaryGate) Name() string   { return g.label }
func (g *UnitaryGate) NumQubits() int { return g.op.NumQubits() }
func (*UnitaryGate) isGate()          {}

// Operator returns the wrapped operator (operators are immutable).
func (g *UnitaryGate) Operator() (*operator.Operator, error) { return g.op, nil }
