package bqm

import (
	"math"
	"sort"
)

// pairKey is the canonical identity of one unordered interaction:
// a was inserted into the model before b. Canonical keys make the
// quadratic map symmetric-by-construction and give every pair a single
// storage slot.
type pairKey struct {
	a, b string
}

// Model is a binary quadratic model: linear biases, pairwise interaction
// weights, a constant offset, and a vartype fixing the variable domain.
//
// The variable set is exactly the key set of the linear biases; any variable
// referenced by an interaction is promoted into the linear map with bias 0.
// Variable order is insertion order and is stable: it fixes bit positions
// during exhaustive enumeration and the summation order of Energy.
//
// The quadratic map is the single source of truth for interactions; the
// adjacency index (variable → neighbor → weight) is a derived view rebuilt
// on every mutation, so the two can never drift.
//
// A Model owns its maps outright. Copy, ToVartype and FromDense never share
// storage with their source.
type Model struct {
	vartype Vartype
	offset  float64

	vars   []string           // insertion order
	index  map[string]int     // variable -> insertion position
	linear map[string]float64 // variable -> bias

	pairs []pairKey           // canonical pair insertion order
	quad  map[pairKey]float64 // canonical pair -> weight

	adj map[string]map[string]float64 // derived adjacency view over quad
}

// New constructs a Model from explicit coefficient collections.
//
// Variables named only in linear are inserted in sorted-key order (Go map
// iteration is unordered; sorting makes construction deterministic), then
// interaction endpoints are inserted in input order. Interactions listing
// the same unordered pair twice are accepted when the weights agree and
// rejected with ErrDuplicatePair when they conflict.
//
// Errors: ErrUnknownVartype, ErrNonFiniteCoefficient, ErrSelfLoop,
// ErrDuplicatePair.
//
// Complexity: O(L·log L + Q) for L linear entries and Q interactions.
func New(linear map[string]float64, quadratic []Interaction, offset float64, vt Vartype) (*Model, error) {
	m, err := NewEmpty(vt)
	if err != nil {
		return nil, err
	}
	if !isFinite(offset) {
		return nil, ErrNonFiniteCoefficient
	}
	m.offset = offset

	names := make([]string, 0, len(linear))
	for v := range linear {
		names = append(names, v)
	}
	sort.Strings(names)
	for _, v := range names {
		if err = m.AddVariable(v, linear[v]); err != nil {
			return nil, err
		}
	}

	for _, in := range quadratic {
		if in.U == in.V {
			return nil, ErrSelfLoop
		}
		if !isFinite(in.Weight) {
			return nil, ErrNonFiniteCoefficient
		}
		m.ensureVariable(in.U)
		m.ensureVariable(in.V)
		k := m.canonicalKey(in.U, in.V)
		if prev, ok := m.quad[k]; ok {
			if prev != in.Weight {
				return nil, ErrDuplicatePair
			}
			continue // idempotent duplicate
		}
		m.insertPair(k, in.Weight)
	}

	return m, nil
}

// NewEmpty returns a Model with no variables and offset 0.
// Errors: ErrUnknownVartype.
func NewEmpty(vt Vartype) (*Model, error) {
	if !vt.valid() {
		return nil, ErrUnknownVartype
	}
	return &Model{
		vartype: vt,
		index:   make(map[string]int),
		linear:  make(map[string]float64),
		quad:    make(map[pairKey]float64),
		adj:     make(map[string]map[string]float64),
	}, nil
}

// AddVariable inserts v with the given bias, or sums bias into v's existing
// bias. Insertion position is recorded on first sight.
// Errors: ErrNonFiniteCoefficient.
func (m *Model) AddVariable(v string, bias float64) error {
	if !isFinite(bias) {
		return ErrNonFiniteCoefficient
	}
	m.ensureVariable(v)
	m.linear[v] += bias
	return nil
}

// AddInteraction sums weight into the u–v interaction, creating it (and any
// missing endpoint, with bias 0) on first sight.
// Errors: ErrSelfLoop, ErrNonFiniteCoefficient.
func (m *Model) AddInteraction(u, v string, weight float64) error {
	if u == v {
		return ErrSelfLoop
	}
	if !isFinite(weight) {
		return ErrNonFiniteCoefficient
	}
	m.ensureVariable(u)
	m.ensureVariable(v)
	k := m.canonicalKey(u, v)
	if _, ok := m.quad[k]; ok {
		m.quad[k] += weight
		m.adj[k.a][k.b] = m.quad[k]
		m.adj[k.b][k.a] = m.quad[k]
		return nil
	}
	m.insertPair(k, weight)
	return nil
}

// Linear returns v's bias, or 0 when v is not a model variable.
func (m *Model) Linear(v string) float64 {
	return m.linear[v]
}

// Quadratic returns the u–v interaction weight, or 0 when absent. Lookup is
// symmetric: Quadratic(u, v) == Quadratic(v, u). An absent interaction means
// the variables do not interact; it is not an error.
func (m *Model) Quadratic(u, v string) float64 {
	if _, ok := m.index[u]; !ok {
		return 0
	}
	if _, ok := m.index[v]; !ok {
		return 0
	}
	if u == v {
		return 0
	}
	return m.quad[m.canonicalKey(u, v)]
}

// Neighbors returns a copy of v's adjacency row: every variable interacting
// with v, mapped to the interaction weight.
// Errors: ErrVariableNotFound.
func (m *Model) Neighbors(v string) (map[string]float64, error) {
	if _, ok := m.index[v]; !ok {
		return nil, ErrVariableNotFound
	}
	out := make(map[string]float64, len(m.adj[v]))
	for w, weight := range m.adj[v] {
		out[w] = weight
	}
	return out, nil
}

// Has reports whether v is a model variable.
func (m *Model) Has(v string) bool {
	_, ok := m.index[v]
	return ok
}

// Variables returns the model variables in insertion order.
func (m *Model) Variables() []string {
	out := make([]string, len(m.vars))
	copy(out, m.vars)
	return out
}

// Interactions returns every interaction in canonical insertion order, each
// pair reported once with its first-inserted endpoint in U.
func (m *Model) Interactions() []Interaction {
	out := make([]Interaction, len(m.pairs))
	for i, p := range m.pairs {
		out[i] = Interaction{U: p.a, V: p.b, Weight: m.quad[p]}
	}
	return out
}

// NumVariables returns the number of model variables.
func (m *Model) NumVariables() int { return len(m.vars) }

// NumInteractions returns the number of distinct interacting pairs.
func (m *Model) NumInteractions() int { return len(m.pairs) }

// Offset returns the constant energy offset.
func (m *Model) Offset() float64 { return m.offset }

// Vartype returns the model's variable domain.
func (m *Model) Vartype() Vartype { return m.vartype }

// Copy returns a deep copy sharing no storage with m.
func (m *Model) Copy() *Model {
	out := &Model{
		vartype: m.vartype,
		offset:  m.offset,
		vars:    make([]string, len(m.vars)),
		index:   make(map[string]int, len(m.index)),
		linear:  make(map[string]float64, len(m.linear)),
		pairs:   make([]pairKey, len(m.pairs)),
		quad:    make(map[pairKey]float64, len(m.quad)),
	}
	copy(out.vars, m.vars)
	for v, i := range m.index {
		out.index[v] = i
	}
	for v, h := range m.linear {
		out.linear[v] = h
	}
	copy(out.pairs, m.pairs)
	for k, w := range m.quad {
		out.quad[k] = w
	}
	out.rebuildAdj()
	return out
}

// ensureVariable records v on first sight with bias 0.
func (m *Model) ensureVariable(v string) {
	if _, ok := m.index[v]; ok {
		return
	}
	m.index[v] = len(m.vars)
	m.vars = append(m.vars, v)
	m.linear[v] = 0
	m.adj[v] = make(map[string]float64)
}

// canonicalKey orders (u, v) by insertion position. Both variables must
// already be indexed; callers guarantee this.
func (m *Model) canonicalKey(u, v string) pairKey {
	if m.index[u] <= m.index[v] {
		return pairKey{a: u, b: v}
	}
	return pairKey{a: v, b: u}
}

// insertPair records a brand-new canonical pair and updates the adjacency view.
func (m *Model) insertPair(k pairKey, weight float64) {
	m.pairs = append(m.pairs, k)
	m.quad[k] = weight
	m.adj[k.a][k.b] = weight
	m.adj[k.b][k.a] = weight
}

// rebuildAdj rederives the adjacency view from the quadratic map.
func (m *Model) rebuildAdj() {
	m.adj = make(map[string]map[string]float64, len(m.vars))
	for _, v := range m.vars {
		m.adj[v] = make(map[string]float64)
	}
	for _, p := range m.pairs {
		w := m.quad[p]
		m.adj[p.a][p.b] = w
		m.adj[p.b][p.a] = w
	}
}

// isFinite reports whether f is neither NaN nor ±Inf.
func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
