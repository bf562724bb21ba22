// Package exact: types, options, and sentinel errors for the exhaustive solver.
package exact

import (
	"errors"

	"github.com/spinglass/qubo/bqm"
)

// Sentinel errors for solver operations.
var (
	// ErrNilModel indicates a nil *bqm.Model was passed to Solve.
	ErrNilModel = errors.New("exact: model is nil")
	// ErrTooManyVariables indicates the model exceeds the configured
	// enumeration ceiling; Solve fails before enumerating anything.
	ErrTooManyVariables = errors.New("exact: variable count exceeds enumeration ceiling")
	// ErrBadOptions indicates a negative MaxVariables or TopK.
	ErrBadOptions = errors.New("exact: invalid options")
)

// DefaultMaxVariables is the enumeration ceiling applied when
// Options.MaxVariables is zero: 2²⁰ ≈ 1M assignments, comfortably above the
// ~17-variable instances exhaustive solving is meant for while still bounded.
const DefaultMaxVariables = 20

// Options configures Solve.
type Options struct {
	// MaxVariables caps the model size; Solve returns ErrTooManyVariables
	// for larger models instead of attempting an unbounded 2ⁿ enumeration.
	// Zero means DefaultMaxVariables.
	MaxVariables int

	// TopK, when positive, keeps only the K lowest-energy records via a
	// bounded heap (O(K) memory) instead of materializing all 2ⁿ. The
	// result equals the first K entries of the full ranking.
	TopK int
}

// DefaultOptions returns the solver defaults: MaxVariables =
// DefaultMaxVariables, all records kept.
func DefaultOptions() Options {
	return Options{MaxVariables: DefaultMaxVariables}
}

// Record is one scored assignment.
type Record struct {
	// Sample assigns every model variable a value in the model's domain.
	Sample bqm.Sample

	// Energy is the model energy of Sample.
	Energy float64
}

// SampleSet is a ranked sequence of records: energies ascend, and records
// with equal energy keep their enumeration order.
type SampleSet struct {
	Records []Record
}

// Len returns the number of records.
func (ss SampleSet) Len() int { return len(ss.Records) }

// Lowest returns the global minimum record, or ok=false for an empty set.
func (ss SampleSet) Lowest() (Record, bool) {
	if len(ss.Records) == 0 {
		return Record{}, false
	}
	return ss.Records[0], true
}

// Energies returns the record energies in rank order.
func (ss SampleSet) Energies() []float64 {
	out := make([]float64, len(ss.Records))
	for i, r := range ss.Records {
		out[i] = r.Energy
	}
	return out
}
