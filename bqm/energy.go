package bqm

// Energy evaluates the model's quadratic form at the given assignment:
//
//	E(s) = offset + Σᵢ hᵢ·sᵢ + Σ₍ᵢ,ⱼ₎ Jᵢⱼ·sᵢ·sⱼ
//
// with every sᵢ taken in the model's own vartype domain.
//
// Summation order is fixed — offset, then linear terms in variable insertion
// order, then quadratic terms in canonical pair insertion order — so repeated
// evaluation of the same model and sample is bit-reproducible.
//
// Errors: ErrSampleIncomplete when the sample does not assign every model
// variable exactly once; ErrValueOutOfDomain when any value falls outside
// {0,1} (Binary) or {−1,+1} (Spin).
//
// Complexity: O(V + Q) time, O(1) extra space.
func (m *Model) Energy(s Sample) (float64, error) {
	if len(s) != len(m.vars) {
		return 0, ErrSampleIncomplete
	}

	e := m.offset
	for _, v := range m.vars {
		val, ok := s[v]
		if !ok {
			return 0, ErrSampleIncomplete
		}
		if !m.inDomain(val) {
			return 0, ErrValueOutOfDomain
		}
		e += m.linear[v] * float64(val)
	}
	for _, p := range m.pairs {
		e += m.quad[p] * float64(s[p.a]) * float64(s[p.b])
	}

	return e, nil
}

// inDomain reports whether val is a legal assignment under the model vartype.
func (m *Model) inDomain(val int8) bool {
	if m.vartype == Binary {
		return val == 0 || val == 1
	}
	return val == -1 || val == 1
}
