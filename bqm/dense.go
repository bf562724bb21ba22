package bqm

// ToDense exports the model as a dense n×n coefficient matrix: linear biases
// on the diagonal, interaction weights in the upper triangle (row index =
// earlier-inserted variable), zeros below. The returned variable slice gives
// the row/column order (insertion order); offset is returned separately.
//
// The matrix is a snapshot, not a view: mutating it never affects the model.
//
// Complexity: O(V²) time and space.
func (m *Model) ToDense() (vars []string, q [][]float64, offset float64) {
	n := len(m.vars)
	vars = make([]string, n)
	copy(vars, m.vars)

	q = make([][]float64, n)
	for i := range q {
		q[i] = make([]float64, n)
		q[i][i] = m.linear[m.vars[i]]
	}
	for _, p := range m.pairs {
		i, j := m.index[p.a], m.index[p.b]
		q[i][j] = m.quad[p]
	}

	return vars, q, m.offset
}

// FromDense builds a Model from a dense n×n coefficient matrix over the
// given variable order: diagonal entries become linear biases, and each
// off-diagonal pair contributes q[i][j] + q[j][i] as the interaction weight
// (so both upper-triangular and symmetric inputs are accepted). Zero sums
// produce no interaction.
//
// Errors: ErrUnknownVartype, ErrDuplicateVariable, ErrDimensionMismatch for
// a non-square matrix or a row count differing from len(vars),
// ErrNonFiniteCoefficient.
//
// Complexity: O(V²) time.
func FromDense(vars []string, q [][]float64, offset float64, vt Vartype) (*Model, error) {
	m, err := NewEmpty(vt)
	if err != nil {
		return nil, err
	}
	if !isFinite(offset) {
		return nil, ErrNonFiniteCoefficient
	}
	m.offset = offset

	n := len(vars)
	if len(q) != n {
		return nil, ErrDimensionMismatch
	}
	for _, row := range q {
		if len(row) != n {
			return nil, ErrDimensionMismatch
		}
	}
	for i, v := range vars {
		if m.Has(v) {
			return nil, ErrDuplicateVariable
		}
		if err = m.AddVariable(v, q[i][i]); err != nil {
			return nil, err
		}
	}

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			w := q[i][j] + q[j][i]
			if !isFinite(w) {
				return nil, ErrNonFiniteCoefficient
			}
			if w == 0 {
				continue
			}
			if err = m.AddInteraction(vars[i], vars[j], w); err != nil {
				return nil, err
			}
		}
	}

	return m, nil
}
