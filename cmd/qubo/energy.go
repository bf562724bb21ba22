package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spinglass/qubo/bqm"
)

func init() {
	energyCmd.Flags().String("assign", "", "Full assignment as \"var=value,var=value,...\" (required)")
	_ = energyCmd.MarkFlagRequired("assign")
	rootCmd.AddCommand(energyCmd)
}

var energyCmd = &cobra.Command{
	Use:   "energy FILE --assign \"0=1,1=0\"",
	Short: "Evaluate the energy of one assignment",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := loadProblem(args[0])
		if err != nil {
			return err
		}

		raw, _ := cmd.Flags().GetString("assign")
		sample, err := parseAssignment(raw)
		if err != nil {
			return err
		}

		e, err := m.Energy(sample)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%g\n", e)
		return nil
	},
}

// parseAssignment turns "a=1,b=-1" into a sample.
func parseAssignment(raw string) (bqm.Sample, error) {
	s := make(bqm.Sample)
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		name, value, ok := strings.Cut(part, "=")
		if !ok {
			return nil, fmt.Errorf("--assign entry %q: want \"var=value\"", part)
		}
		v, err := strconv.ParseInt(strings.TrimSpace(value), 10, 8)
		if err != nil {
			return nil, fmt.Errorf("--assign entry %q: %w", part, err)
		}
		s[strings.TrimSpace(name)] = int8(v)
	}
	return s, nil
}
