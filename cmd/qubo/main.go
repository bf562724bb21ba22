// Package main provides the qubo CLI entry point.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spinglass/qubo/exact"
)

// Version is set at build time via ldflags.
var Version = "dev"

var rootCmd = &cobra.Command{
	Use:   "qubo",
	Short: "Build and exactly solve QUBO/Ising energy problems",
	Long: `qubo works on quadratic models over binary ({0,1}) or spin ({-1,+1})
variables described in YAML problem files:

  vartype: BINARY
  offset: 0
  linear: {"0": -1, "1": -1}
  quadratic:
    - ["0", "1", 2]

Commands cover the full model lifecycle: convert between the QUBO and Ising
conventions, contract forced-equal variables, evaluate single assignments,
and rank every assignment by exhaustive enumeration (small instances only).`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.Version = Version
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %s\n", err)
		if errors.Is(err, exact.ErrTooManyVariables) {
			os.Exit(ExitCapacity)
		}
		os.Exit(ExitError)
	}
}
