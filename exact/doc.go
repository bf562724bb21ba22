// Package exact provides a brute-force solver for binary quadratic models.
//
// Solve enumerates all 2ⁿ assignments of an n-variable model, scores each
// with bqm.Energy, and returns a SampleSet ranked by ascending energy with
// ties in enumeration order. The ranking is complete and deterministic:
// two runs over the same model are record-for-record identical.
//
//   - Complexity: O(n·2ⁿ) time, O(2ⁿ) memory (O(K) with Options.TopK).
//   - Intended for small instances only — the practical ceiling sits near
//     17–20 variables (~131K–1M enumerations). Solve refuses larger models
//     with ErrTooManyVariables rather than hanging; the ceiling is
//     configurable via Options.MaxVariables.
//
// Use this package to verify heuristic solvers, to solve toy formulations
// exactly, or as ground truth in tests — never for production-scale
// instances.
package exact
