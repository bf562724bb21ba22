package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/spinglass/qubo/bqm"
)

// problemFile is the on-disk YAML schema for a quadratic model.
type problemFile struct {
	Vartype   string             `yaml:"vartype"`
	Offset    float64            `yaml:"offset"`
	Linear    map[string]float64 `yaml:"linear,omitempty"`
	Quadratic []quadEntry        `yaml:"quadratic,omitempty"`
}

// quadEntry is one interaction serialized as a [u, v, weight] flow triple.
type quadEntry struct {
	U, V   string
	Weight float64
}

func (q *quadEntry) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.SequenceNode || len(node.Content) != 3 {
		return fmt.Errorf("quadratic entry must be a [u, v, weight] triple")
	}
	if err := node.Content[0].Decode(&q.U); err != nil {
		return fmt.Errorf("quadratic entry endpoint: %w", err)
	}
	if err := node.Content[1].Decode(&q.V); err != nil {
		return fmt.Errorf("quadratic entry endpoint: %w", err)
	}
	if err := node.Content[2].Decode(&q.Weight); err != nil {
		return fmt.Errorf("quadratic entry weight: %w", err)
	}
	return nil
}

func (q quadEntry) MarshalYAML() (interface{}, error) {
	return []interface{}{q.U, q.V, q.Weight}, nil
}

// loadProblem reads a YAML problem file into a model.
func loadProblem(path string) (*bqm.Model, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading problem: %w", err)
	}
	return parseProblem(raw)
}

// parseProblem decodes YAML bytes into a model.
func parseProblem(raw []byte) (*bqm.Model, error) {
	var pf problemFile
	if err := yaml.Unmarshal(raw, &pf); err != nil {
		return nil, fmt.Errorf("parsing problem: %w", err)
	}
	vt, err := bqm.ParseVartype(pf.Vartype)
	if err != nil {
		return nil, fmt.Errorf("problem vartype %q: %w", pf.Vartype, err)
	}
	quadratic := make([]bqm.Interaction, len(pf.Quadratic))
	for i, qe := range pf.Quadratic {
		quadratic[i] = bqm.Interaction{U: qe.U, V: qe.V, Weight: qe.Weight}
	}
	return bqm.New(pf.Linear, quadratic, pf.Offset, vt)
}

// renderProblem serializes a model back into the YAML problem schema.
func renderProblem(m *bqm.Model) ([]byte, error) {
	pf := problemFile{
		Vartype: m.Vartype().String(),
		Offset:  m.Offset(),
		Linear:  make(map[string]float64, m.NumVariables()),
	}
	for _, v := range m.Variables() {
		pf.Linear[v] = m.Linear(v)
	}
	for _, in := range m.Interactions() {
		pf.Quadratic = append(pf.Quadratic, quadEntry{U: in.U, V: in.V, Weight: in.Weight})
	}
	return yaml.Marshal(pf)
}
