// Package qasm exports circuits as OpenQASM 3 programs.
//
// The exporter writes one statement per placement against the standard gate
// library ("stdgates.inc"). Controlled gates use the ctrl(k) @ modifier,
// gates built from circuits are inlined recursively and measurements become
// assignments to the classical register. Gates holding a raw operator
// (circuit.UnitaryGate) have no OpenQASM form and are rejected; build such
// circuits from gates instead (see grover.BuildExpandedSearchCircuit).
package qasm
