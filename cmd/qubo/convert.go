package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spinglass/qubo/bqm"
)

func init() {
	convertCmd.Flags().String("to", "", "Target vartype: binary or spin (required)")
	_ = convertCmd.MarkFlagRequired("to")
	rootCmd.AddCommand(convertCmd)
}

var convertCmd = &cobra.Command{
	Use:   "convert FILE --to (binary|spin)",
	Short: "Re-derive a problem over the other variable domain",
	Long: `Converts between the QUBO (binary, {0,1}) and Ising (spin, {-1,+1})
conventions via the substitution q = (s+1)/2, preserving the energy
landscape exactly, and prints the converted problem as YAML.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := loadProblem(args[0])
		if err != nil {
			return err
		}

		target, _ := cmd.Flags().GetString("to")
		vt, err := bqm.ParseVartype(target)
		if err != nil {
			return fmt.Errorf("--to %q: %w", target, err)
		}

		converted, err := m.ToVartype(vt)
		if err != nil {
			return err
		}
		out, err := renderProblem(converted)
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(out)
		return err
	},
}
