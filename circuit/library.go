// SPDX-License-Identifier: MIT

package circuit

import "math"

const invSqrt2 = 1 / math.Sqrt2

// Standard gate matrices, row-major. Multi-qubit matrices list qubit 0 as the
// least-significant bit: CX controls on qubit 0 and targets qubit 1.
var (
	dataH    = []complex128{invSqrt2, invSqrt2, invSqrt2, -invSqrt2}
	dataX    = []complex128{0, 1, 1, 0}
	dataY    = []complex128{0, -1i, 1i, 0}
	dataZ    = []complex128{1, 0, 0, -1}
	dataS    = []complex128{1, 0, 0, 1i}
	dataSdg  = []complex128{1, 0, 0, -1i}
	dataT    = []complex128{1, 0, 0, complex(invSqrt2, invSqrt2)}
	dataTdg  = []complex128{1, 0, 0, complex(invSqrt2, -invSqrt2)}
	dataSX   = []complex128{0.5 + 0.5i, 0.5 - 0.5i, 0.5 - 0.5i, 0.5 + 0.5i}
	dataSWAP = []complex128{
		1, 0, 0, 0,
		0, 0, 1, 0,
		0, 1, 0, 0,
		0, 0, 0, 1,
	}
	dataCX  = controlledData(dataX, 2, 1)
	dataCZ  = controlledData(dataZ, 2, 1)
	dataCCX = controlledData(dataX, 2, 2)
)

func fixed(name string, qubits int, data []complex128) *FixedGate {
	return &FixedGate{name: name, qubits: qubits, data: data}
}

// H returns the Hadamard gate.
func H() *FixedGate { return fixed("h", 1, dataH) }

// X returns the Pauli-X (NOT) gate.
func X() *FixedGate { return fixed("x", 1, dataX) }

// Y returns the Pauli-Y gate.
func Y() *FixedGate { return fixed("y", 1, dataY) }

// Z returns the Pauli-Z (phase-flip) gate.
func Z() *FixedGate { return fixed("z", 1, dataZ) }

// S returns the phase gate diag(1, i).
func S() *FixedGate { return fixed("s", 1, dataS) }

// Sdg returns S†.
func Sdg() *FixedGate { return fixed("sdg", 1, dataSdg) }

// T returns diag(1, e^{iπ/4}).
func T() *FixedGate { return fixed("t", 1, dataT) }

// Tdg returns T†.
func Tdg() *FixedGate { return fixed("tdg", 1, dataTdg) }

// SX returns the square root of X.
func SX() *FixedGate { return fixed("sx", 1, dataSX) }

// CX returns the controlled-NOT gate (control = gate qubit 0).
func CX() *FixedGate { return fixed("cx", 2, dataCX) }

// CZ returns the controlled-Z gate.
func CZ() *FixedGate { return fixed("cz", 2, dataCZ) }

// SWAP exchanges two qubits.
func SWAP() *FixedGate { return fixed("swap", 2, dataSWAP) }

// CCX returns the Toffoli gate (controls = gate qubits 0 and 1).
func CCX() *FixedGate { return fixed("ccx", 3, dataCCX) }

// RX returns a rotation about X by theta.
func RX(theta float64) *RotationGate { return &RotationGate{Kind: RotX, Theta: theta} }

// RY returns a rotation about Y by theta.
func RY(theta float64) *RotationGate { return &RotationGate{Kind: RotY, Theta: theta} }

// RZ returns a rotation about Z by theta.
func RZ(theta float64) *RotationGate { return &RotationGate{Kind: RotZ, Theta: theta} }

// Phase returns diag(1, e^{iθ}).
func Phase(theta float64) *RotationGate { return &RotationGate{Kind: RotPhase, Theta: theta} }

// MCZ returns a Z gate with numControls controls; numControls = 0 yields Z.
// The gate flips the phase of |1…1⟩ only, so its qubits are interchangeable.
// Errors: ErrInvalidControls for a negative count.
func MCZ(numControls int) (Gate, error) {
	if numControls < 0 {
		return nil, ErrInvalidControls
	}
	if numControls == 0 {
		return Z(), nil
	}

	return Controlled(Z(), numControls)
}
