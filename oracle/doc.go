// Package oracle synthesises phase oracles for sets of marked basis states.
//
// Synthesize turns a list of equal-length bit strings into a circuit that
// multiplies the amplitude of each marked basis state by -1 and leaves every
// other basis state unchanged. Bit strings are written most-significant
// qubit first, so "011" marks the state with qubits 0 and 1 set.
//
// Each marked string contributes one reflection: X gates on the qubits that
// must be 0, a multi-controlled Z over all qubits, and the same X gates again.
// Reflections are composed in order; see Synthesize for duplicate handling.
package oracle
