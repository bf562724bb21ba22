package exact

import (
	"sort"

	"github.com/spinglass/qubo/bqm"
)

// Solve enumerates every assignment of the model's n variables — all 2ⁿ of
// them — scores each with the model's energy, and returns the complete
// ranking: ascending energy, ties in enumeration order.
//
// Enumeration maps bit k of a counter running 0…2ⁿ−1 to the variable at
// insertion position k; a bit translates to its domain value directly for
// Binary (0/1) and as 0→−1, 1→+1 for Spin. A zero-variable model yields a
// single empty sample whose energy is the model offset.
//
// This is deliberately exponential and intended for small instances
// (verification, teaching, ground-truth for heuristics — practical ceiling
// around 17–20 variables). Solve fails fast with ErrTooManyVariables beyond
// opts.MaxVariables; it never returns partial output.
//
// Determinism: repeated calls on an unmodified model return identical
// SampleSets, record for record.
//
// Errors: ErrNilModel, ErrBadOptions, ErrTooManyVariables.
//
// Complexity: O(n·2ⁿ + 2ⁿ·log 2ⁿ) time; O(2ⁿ) memory, O(K) with TopK.
func Solve(m *bqm.Model, opts Options) (SampleSet, error) {
	if m == nil {
		return SampleSet{}, ErrNilModel
	}
	if opts.MaxVariables < 0 || opts.TopK < 0 {
		return SampleSet{}, ErrBadOptions
	}
	if opts.MaxVariables == 0 {
		opts.MaxVariables = DefaultMaxVariables
	}

	vars := m.Variables()
	n := len(vars)
	// The second bound keeps the uint64 enumeration counter well-defined even
	// when a caller raises MaxVariables to something unenumerable anyway.
	if n > opts.MaxVariables || n > 62 {
		return SampleSet{}, ErrTooManyVariables
	}
	if n == 0 {
		e, err := m.Energy(bqm.Sample{})
		if err != nil {
			return SampleSet{}, err
		}
		return SampleSet{Records: []Record{{Sample: bqm.Sample{}, Energy: e}}}, nil
	}

	// Bit value → domain value.
	lo := int8(0)
	if m.Vartype() == bqm.Spin {
		lo = -1
	}

	total := uint64(1) << uint(n)
	if opts.TopK > 0 && uint64(opts.TopK) < total {
		return solveTopK(m, vars, lo, total, opts.TopK)
	}

	records := make([]Record, 0, total)
	for mask := uint64(0); mask < total; mask++ {
		s := assignmentFor(mask, vars, lo)
		e, err := m.Energy(s)
		if err != nil {
			return SampleSet{}, err
		}
		records = append(records, Record{Sample: s, Energy: e})
	}

	// Stable sort keeps enumeration order among equal energies.
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].Energy < records[j].Energy
	})

	return SampleSet{Records: records}, nil
}

// assignmentFor materializes the assignment encoded by mask: bit k drives
// the variable at insertion position k, with a set bit mapping to +1/1 and a
// clear bit to lo (0 for Binary, −1 for Spin).
func assignmentFor(mask uint64, vars []string, lo int8) bqm.Sample {
	s := make(bqm.Sample, len(vars))
	for k, v := range vars {
		if mask&(1<<uint(k)) != 0 {
			s[v] = 1
		} else {
			s[v] = lo
		}
	}
	return s
}
