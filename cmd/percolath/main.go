// SPDX-License-Identifier: MIT
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
)

var version = "0.1.0-dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd(os.Stdout, os.Stderr).ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

// newRootCmd wires the sweep command and its subcommands.
func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "percolath",
		Short: "Estimate the site-percolation probability θ(p) by Monte Carlo",
		Long: `percolath sweeps the occupation probability p over [0,1) in equal steps.
For every step it generates many random n×m grids, checks each for a
top-to-bottom path of 4-connected occupied cells, and records the fraction
that percolate. Results are written as CSV and as a chart.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSweep(cmd, stdout, stderr)
		},
	}
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	addSweepFlags(rootCmd)

	rootCmd.AddCommand(
		newProbeCmd(stdout),
		newVersionCmd(stdout),
	)
	return rootCmd
}

func newVersionCmd(stdout io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(stdout, "percolath version %s\n", version)
		},
	}
}
