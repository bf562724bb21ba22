package bqm_test

import (
	"testing"

	"github.com/spinglass/qubo/bqm"
	"github.com/stretchr/testify/require"
)

func TestToVartype_SameVartypeIsDeepCopy(t *testing.T) {
	m := twoVarBinary(t)
	c, err := m.ToVartype(bqm.Binary)
	require.NoError(t, err)
	require.NotSame(t, m, c)

	require.NoError(t, c.AddVariable("0", 5))
	require.Equal(t, -1.0, m.Linear("0"), "copy must not alias the source")
}

func TestToVartype_Unknown(t *testing.T) {
	m := twoVarBinary(t)
	_, err := m.ToVartype(bqm.Vartype(9))
	require.ErrorIs(t, err, bqm.ErrUnknownVartype)
}

func TestToVartype_BinaryToSpin_Coefficients(t *testing.T) {
	// E(q) = 1 + 2·q_a + 4·q_a·q_b over {0,1}.
	m, err := bqm.New(
		map[string]float64{"a": 2, "b": 0},
		[]bqm.Interaction{{U: "a", V: "b", Weight: 4}},
		1, bqm.Binary,
	)
	require.NoError(t, err)

	s, err := m.ToVartype(bqm.Spin)
	require.NoError(t, err)
	require.Equal(t, bqm.Spin, s.Vartype())

	// h' = h/2 + J/4, J' = J/4, c' = c + Σh/2 + ΣJ/4.
	require.InDelta(t, 2.0, s.Linear("a"), 1e-12)
	require.InDelta(t, 1.0, s.Linear("b"), 1e-12)
	require.InDelta(t, 1.0, s.Quadratic("a", "b"), 1e-12)
	require.InDelta(t, 3.0, s.Offset(), 1e-12)
}

func TestToVartype_SpinToBinary_Coefficients(t *testing.T) {
	// E(s) = -1 + s_a - 2·s_b + 0.5·s_a·s_b over {-1,+1}.
	m, err := bqm.New(
		map[string]float64{"a": 1, "b": -2},
		[]bqm.Interaction{{U: "a", V: "b", Weight: 0.5}},
		-1, bqm.Spin,
	)
	require.NoError(t, err)

	b, err := m.ToVartype(bqm.Binary)
	require.NoError(t, err)

	// h' = 2h − 2ΣJ, J' = 4J, c' = c − Σh + ΣJ.
	require.InDelta(t, 1.0, b.Linear("a"), 1e-12)  // 2·1 − 2·0.5
	require.InDelta(t, -5.0, b.Linear("b"), 1e-12) // 2·(−2) − 2·0.5
	require.InDelta(t, 2.0, b.Quadratic("a", "b"), 1e-12)
	require.InDelta(t, 0.5, b.Offset(), 1e-12) // −1 − (−1) + 0.5
}

// spinFor maps a binary assignment to its spin counterpart s = 2q − 1.
func spinFor(q bqm.Sample) bqm.Sample {
	s := make(bqm.Sample, len(q))
	for v, val := range q {
		s[v] = 2*val - 1
	}
	return s
}

func TestToVartype_RoundTripPreservesEnergyLandscape(t *testing.T) {
	m, err := bqm.New(
		map[string]float64{"x": -5, "y": -3, "z": -8},
		[]bqm.Interaction{
			{U: "x", V: "y", Weight: 4},
			{U: "x", V: "z", Weight: 8},
			{U: "y", V: "z", Weight: 2},
		},
		1.25, bqm.Binary,
	)
	require.NoError(t, err)

	spin, err := m.ToVartype(bqm.Spin)
	require.NoError(t, err)
	back, err := spin.ToVartype(bqm.Binary)
	require.NoError(t, err)

	vars := m.Variables()
	require.Equal(t, vars, spin.Variables(), "conversion must keep variable order")

	for mask := 0; mask < 1<<len(vars); mask++ {
		q := make(bqm.Sample, len(vars))
		for k, v := range vars {
			q[v] = int8(mask >> uint(k) & 1)
		}

		orig, err := m.Energy(q)
		require.NoError(t, err)
		viaSpin, err := spin.Energy(spinFor(q))
		require.NoError(t, err)
		roundTrip, err := back.Energy(q)
		require.NoError(t, err)

		require.InDelta(t, orig, viaSpin, 1e-9, "mask %d", mask)
		require.InDelta(t, orig, roundTrip, 1e-9, "mask %d", mask)
	}
}
