// Package quantik is a small laboratory for quantum circuits: build them,
// turn them into operators, synthesise phase oracles and run Grover search
// on a local simulator or a remote job service.
//
// 🚀 What is inside?
//
//	A pure-Go core with a thin execution layer on top:
//		• Dense kernels: complex matrices, Kron, adjoint, tolerant comparison
//		• Operators: dimensioned matrices with tensor, compose and subsystem embedding
//		• Circuits: lazy gate placements, nesting, measurement, conversion to operators
//		• Oracles: phase oracles that flip the sign of marked bit strings
//		• Grover: diffusion, the Grover operator, optimal iteration counts
//		• Gateway: simulator and HTTP backends, OpenQASM 3 export
//
// ✨ Conventions
//
//   - Qubit 0 is the least-significant bit of a basis index and the rightmost
//     character of a bit-string label.
//   - Operators are immutable; every combinator returns a new value.
//   - Core packages return sentinel errors and never log.
//
// Packages, leaves first:
//
//	matrix/   : complex128 row-major dense matrices and kernels
//	operator/ : Operator and its algebra, Pauli construction, readouts
//	circuit/  : gates and circuits, ToOperator
//	oracle/   : phase-oracle synthesis from marked bit strings
//	grover/   : amplitude amplification driver
//	qasm/     : OpenQASM 3 export
//	gateway/  : backends, job service client, Service
//	render/   : circuit drawings and result formatting
//	config/   : viper configuration
//	logger/   : zap logger
//
// Quick example, a Bell pair:
//
//	c, _ := circuit.New(2)
//	_ = c.H(0)
//	_ = c.CX(0, 1)
//	op, _ := c.ToOperator()
//	probs, _ := operator.Probabilities(op) // [0.5 0 0 0.5]
//
// The quantik command (cmd/quantik) wraps all of this:
//
//	go install github.com/katalvlaran/quantik/cmd/quantik@latest
//	quantik grover --marked 000,111
package quantik
