// Package circuit builds quantum circuits as ordered gate placements and
// converts them to operators.
//
// A Circuit has a fixed number of qubits and a growable classical register.
// Placements are validated when appended and materialised only by
// ToOperator, which composes each gate into the full space with
// operator.ComposeSubsystem. Circuits nest: ToGate and ToControlledGate wrap
// a circuit as a reusable gate, and Compose splices one circuit into another
// with qubit relabeling.
//
// Qubit order follows the little-endian convention: qubit 0 is the
// least-significant bit of a basis index and the rightmost character of a
// bit-string label.
package circuit
