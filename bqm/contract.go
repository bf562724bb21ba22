package bqm

// Contract merges variable v into variable u in place, treating the two as
// forced-equal, and removes v from the model entirely. The operation is
// destructive and irreversible; it reduces the variable count by exactly one.
//
// Under the forced-equal reading, the direct u–v interaction degenerates to
// a term in u alone: with Binary variables u·v == u·u == u, so the weight
// folds into u's linear bias; with Spin variables u·u == 1, so it folds into
// the offset. v's linear bias is absorbed into u's, and every remaining v–w
// interaction is merged into u–w — summed when u–w already exists, created
// (preserving the surviving pairs' order, new pairs appended) when it does
// not. The adjacency view is rebuilt afterwards.
//
// Errors: ErrVariableNotFound when either endpoint is absent; ErrSameVariable
// when u == v (the model is left untouched on any error).
//
// Complexity: O(V + Q) time.
func (m *Model) Contract(u, v string) error {
	if _, ok := m.index[u]; !ok {
		return ErrVariableNotFound
	}
	if _, ok := m.index[v]; !ok {
		return ErrVariableNotFound
	}
	if u == v {
		return ErrSameVariable
	}

	// Fold the direct u–v term, if any.
	direct := m.canonicalKey(u, v)
	if w, ok := m.quad[direct]; ok {
		delete(m.quad, direct)
		if m.vartype == Binary {
			m.linear[u] += w
		} else {
			m.offset += w
		}
	}

	// Reroute v's remaining interactions onto u, walking the canonical pair
	// list so merge order (and therefore floating-point accumulation) is
	// deterministic.
	kept := make([]pairKey, 0, len(m.pairs))
	var created []pairKey
	for _, p := range m.pairs {
		w, ok := m.quad[p]
		if !ok {
			continue // the folded u–v pair
		}
		if p.a != v && p.b != v {
			kept = append(kept, p)
			continue
		}
		delete(m.quad, p)
		other := p.a
		if other == v {
			other = p.b
		}
		k := m.canonicalKey(u, other)
		if _, exists := m.quad[k]; exists {
			m.quad[k] += w
		} else {
			m.quad[k] = w
			created = append(created, k)
		}
	}
	m.pairs = append(kept, created...)

	// Absorb v's bias and drop v from the variable set.
	m.linear[u] += m.linear[v]
	delete(m.linear, v)
	pos := m.index[v]
	m.vars = append(m.vars[:pos], m.vars[pos+1:]...)
	delete(m.index, v)
	for i := pos; i < len(m.vars); i++ {
		m.index[m.vars[i]] = i
	}

	m.rebuildAdj()
	return nil
}
