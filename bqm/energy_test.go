package bqm_test

import (
	"errors"
	"testing"

	"github.com/spinglass/qubo/bqm"
)

// twoVarBinary is the canonical two-variable AND-penalty model:
// E(q0,q1) = -q0 - q1 + 2·q0·q1.
func twoVarBinary(t *testing.T) *bqm.Model {
	t.Helper()
	m, err := bqm.New(
		map[string]float64{"0": -1, "1": -1},
		[]bqm.Interaction{{U: "0", V: "1", Weight: 2}},
		0, bqm.Binary,
	)
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	return m
}

func TestEnergy_TwoVariableBinary(t *testing.T) {
	m := twoVarBinary(t)
	cases := []struct {
		q0, q1 int8
		want   float64
	}{
		{0, 0, 0},
		{1, 0, -1},
		{0, 1, -1},
		{1, 1, 0},
	}
	for _, tc := range cases {
		got, err := m.Energy(bqm.Sample{"0": tc.q0, "1": tc.q1})
		if err != nil {
			t.Fatalf("Energy(%d,%d) error: %v", tc.q0, tc.q1, err)
		}
		if got != tc.want {
			t.Errorf("Energy(%d,%d) = %v; want %v", tc.q0, tc.q1, got, tc.want)
		}
	}
}

func TestEnergy_SpinModel(t *testing.T) {
	m, err := bqm.New(
		map[string]float64{"a": 1, "b": -2},
		[]bqm.Interaction{{U: "a", V: "b", Weight: 0.5}},
		3, bqm.Spin,
	)
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	// E(+1,-1) = 3 + 1 + 2 - 0.5 = 5.5
	got, err := m.Energy(bqm.Sample{"a": 1, "b": -1})
	if err != nil {
		t.Fatalf("Energy error: %v", err)
	}
	if got != 5.5 {
		t.Errorf("Energy(+1,-1) = %v; want 5.5", got)
	}
}

func TestEnergy_Errors(t *testing.T) {
	m := twoVarBinary(t)
	spin, err := m.ToVartype(bqm.Spin)
	if err != nil {
		t.Fatalf("ToVartype error: %v", err)
	}

	cases := []struct {
		name   string
		model  *bqm.Model
		sample bqm.Sample
		err    error
	}{
		{"MissingVariable", m, bqm.Sample{"0": 1}, bqm.ErrSampleIncomplete},
		{"ExtraVariable", m, bqm.Sample{"0": 1, "1": 0, "2": 1}, bqm.ErrSampleIncomplete},
		{"WrongVariable", m, bqm.Sample{"0": 1, "x": 0}, bqm.ErrSampleIncomplete},
		{"OutOfBinaryDomain", m, bqm.Sample{"0": 1, "1": -1}, bqm.ErrValueOutOfDomain},
		{"OutOfSpinDomain", spin, bqm.Sample{"0": 1, "1": 0}, bqm.ErrValueOutOfDomain},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := tc.model.Energy(tc.sample)
			if !errors.Is(err, tc.err) {
				t.Errorf("Energy error = %v; want %v", err, tc.err)
			}
		})
	}
}

func TestEnergy_BitReproducible(t *testing.T) {
	m, err := bqm.New(
		map[string]float64{"a": 0.1, "b": 0.2, "c": 0.3},
		[]bqm.Interaction{
			{U: "a", V: "b", Weight: 0.7},
			{U: "b", V: "c", Weight: -1.3},
			{U: "a", V: "c", Weight: 2.9},
		},
		0.01, bqm.Binary,
	)
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	s := bqm.Sample{"a": 1, "b": 1, "c": 1}
	first, err := m.Energy(s)
	if err != nil {
		t.Fatalf("Energy error: %v", err)
	}
	for i := 0; i < 10; i++ {
		again, err := m.Energy(s)
		if err != nil {
			t.Fatalf("Energy error: %v", err)
		}
		if again != first {
			t.Fatalf("Energy not bit-reproducible: %v vs %v", again, first)
		}
	}
}
