// Package grover assembles amplitude-amplification (Grover) search circuits.
//
// Given an oracle circuit O that flips the phase of the marked states, the
// Grover step is G = D·O, where D = 2|ψ⟩⟨ψ| − I reflects about the uniform
// superposition |ψ⟩. Starting from |ψ⟩, k applications of G rotate the state
// towards the marked subspace; OptimalIterations picks
// k = floor(π/4 · sqrt(N/M)) for N = 2^n states and M marked ones.
//
// BuildSearchCircuit computes G once, raises it to the k-th power with
// operator.Power and places the result as a single gate between the
// Hadamard layer and the final measurement. BuildExpandedSearchCircuit keeps
// the step as a gate-level circuit instead, which hardware backends accept.
package grover
