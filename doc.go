// Package qubo is an in-memory toolkit for Quadratic Unconstrained Binary
// Optimization (QUBO) and Ising energy problems: build a quadratic model
// over binary or spin variables, transform it, and solve it exactly.
//
// What is a quadratic model?
//
//	E(x) = offset + Σᵢ hᵢ·xᵢ + Σ₍ᵢ,ⱼ₎ Jᵢⱼ·xᵢ·xⱼ
//
// with xᵢ ∈ {0,1} (BINARY / QUBO convention) or xᵢ ∈ {−1,+1} (SPIN / Ising
// convention). Graph partitioning, max-cut, number partitioning and many
// other NP-hard problems reduce to minimizing such an energy.
//
// The module is organized under two library subpackages and one CLI:
//
//	bqm/      — the binary quadratic model: coefficients, adjacency view,
//	            BINARY↔SPIN conversion, variable contraction, energy
//	exact/    — exhaustive solver: ranks all 2ⁿ assignments by energy
//	cmd/qubo/ — command-line front end over YAML problem files
//
// Everything is pure Go, single-threaded, and deterministic: identical
// inputs yield bit-identical ranked output.
//
//	go get github.com/spinglass/qubo
package qubo
