package bqm

// ToVartype returns a new Model over the target domain with an identical
// energy landscape: for every binary assignment q and its spin counterpart
// s = 2q − 1, the converted model's energy at one equals the original's at
// the other. Coefficients are re-derived algebraically from the substitution
// q = (s+1)/2 — never by re-sampling.
//
//	Binary → Spin:  h'ᵢ = hᵢ/2 + Σⱼ Jᵢⱼ/4     J'ᵢⱼ = Jᵢⱼ/4
//	                c'  = c + Σᵢ hᵢ/2 + Σ Jᵢⱼ/4
//	Spin → Binary:  h'ᵢ = 2hᵢ − 2Σⱼ Jᵢⱼ       J'ᵢⱼ = 4Jᵢⱼ
//	                c'  = c − Σᵢ hᵢ + Σ Jᵢⱼ
//
// Variable and pair insertion order carry over unchanged, so enumeration
// order is stable across conversion. When target equals the current vartype
// the result is a plain deep copy.
//
// Errors: ErrUnknownVartype.
//
// Complexity: O(V + Q) time and space.
func (m *Model) ToVartype(target Vartype) (*Model, error) {
	if !target.valid() {
		return nil, ErrUnknownVartype
	}
	if target == m.vartype {
		return m.Copy(), nil
	}

	out := m.Copy()
	out.vartype = target

	// Accumulate in a fixed order: linear terms by insertion order, then
	// pair contributions by canonical pair order. Walking m.pairs (not the
	// adjacency maps) keeps floating-point sums deterministic.
	if target == Spin { // Binary → Spin
		for _, v := range m.vars {
			h := m.linear[v]
			out.linear[v] = h / 2
			out.offset += h / 2
		}
		for _, p := range m.pairs {
			j := m.quad[p]
			out.quad[p] = j / 4
			out.linear[p.a] += j / 4
			out.linear[p.b] += j / 4
			out.offset += j / 4
		}
	} else { // Spin → Binary
		for _, v := range m.vars {
			h := m.linear[v]
			out.linear[v] = 2 * h
			out.offset -= h
		}
		for _, p := range m.pairs {
			j := m.quad[p]
			out.quad[p] = 4 * j
			out.linear[p.a] -= 2 * j
			out.linear[p.b] -= 2 * j
			out.offset += j
		}
	}

	out.rebuildAdj()
	return out, nil
}
