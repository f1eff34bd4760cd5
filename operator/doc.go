// Package operator represents linear maps between multi-qudit state spaces.
//
// An Operator is an immutable complex matrix together with the dimensions of
// the subsystems it acts on:
//
//   - input dimensions, whose product is the number of columns;
//   - output dimensions, whose product is the number of rows.
//
// Dimensions are listed in subsystem order. Element 0 is subsystem 0, the
// least-significant digit of a basis index, so for qubits it is the rightmost
// bit of a label such as "011".
//
// The package offers:
//
//   - Construction: New, FromRows, Identity, FromPauli.
//   - Tensor products in both orderings: Tensor (first operand on the higher
//     subsystems) and Expand (first operand on the lower subsystems).
//   - Composition: Compose (whole-space) and ComposeSubsystem (embed a smaller
//     operator on chosen subsystems, identity elsewhere).
//   - Linear combination: Add, Sub, Scale, plus Adjoint and Power.
//   - Comparison: Equal, EqualUpToGlobalPhase, IsUnitary, ProcessFidelity.
//   - Read-outs: Apply, Probabilities, Expectation.
//
// Every combinator allocates a fresh Operator; operands are never mutated and
// can be shared freely. Errors are sentinel values (errors.Is) wrapped with the
// failing operation name.
package operator
