// Package bqm implements the binary quadratic model at the heart of
// github.com/spinglass/qubo: a set of binary ({0,1}) or spin ({−1,+1})
// variables with linear biases, pairwise interaction weights, and a constant
// offset, defining the energy
//
//	E(s) = offset + Σᵢ hᵢ·sᵢ + Σ₍ᵢ,ⱼ₎ Jᵢⱼ·sᵢ·sⱼ
//
// Construction and access:
//   - New / NewEmpty + AddVariable / AddInteraction build a Model; any
//     variable appearing in an interaction becomes a model variable with
//     bias 0, and the variable set is always exactly the linear key set.
//   - Linear / Quadratic read coefficients, returning 0 for absent terms;
//     Neighbors exposes the adjacency view, which is derived from the
//     quadratic map and can never drift from it.
//
// Transformations:
//   - ToVartype converts BINARY↔SPIN algebraically, preserving the energy
//     landscape through q = (s+1)/2.
//   - Contract merges two forced-equal variables into one, in place.
//
// Evaluation:
//   - Energy scores a full assignment with a fixed summation order, so equal
//     inputs always produce bit-identical results.
//
// All failure modes are package-level sentinel errors matched with
// errors.Is; no exported operation panics on user input.
package bqm
