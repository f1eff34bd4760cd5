// Package matrix provides complex-valued dense linear-algebra kernels.
//
// The matrix package provides:
//
//   - Dense, a row-major complex128 matrix with safe At/Set accessors that
//     return sentinel errors instead of panicking.
//   - Elementwise kernels (Add, Sub, Scale) and products (Mul, Kron, MatVec).
//   - Conjugation kernels (Transpose, Conj, Adjoint) and Trace.
//   - Numeric comparison (AllClose, ArgMaxAbs) for tolerance-based checks.
//   - Canonical validators (ValidateNotNil, ValidateSameShape, ...).
//
// Every kernel allocates a fresh result and never mutates its operands, so
// matrices can be shared freely once built. Dense operands hit flat-slice
// fast paths; any other Matrix implementation goes through At/Set.
//
// Matrices are best for the small state spaces of few-qubit systems: a
// k-qubit operator is 2^k×2^k, so memory grows as 4^k.
//
// See the examples in this package and the operator package for usage.
package matrix
