// SPDX-License-Identifier: MIT
package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/percolath/lattice"
	"github.com/katalvlaran/percolath/percolation"
	"github.com/katalvlaran/percolath/rng"
)

func newProbeCmd(stdout io.Writer) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "probe",
		Short: "Generate one grid and show whether and where it percolates",
		Long: `probe samples a single grid at occupation probability p and prints it.
Occupied cells are '1', empty cells '0', and the cells of one spanning
path (if any) are marked '*'.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			rows, _ := cmd.Flags().GetInt("rows")
			cols, _ := cmd.Flags().GetInt("cols")
			p, _ := cmd.Flags().GetFloat64("p")
			seed, _ := cmd.Flags().GetInt64("seed")

			g, err := lattice.Generate(rows, cols, p, rng.FromSeed(seed))
			if err != nil {
				return err
			}
			path, ok := percolation.SpanningPath(g)
			out := percolation.Search(g)

			fmt.Fprintln(stdout, renderGrid(g, path))
			fmt.Fprintf(stdout, "percolates: %t\n", ok)
			fmt.Fprintf(stdout, "occupied: %d/%d visited: %d seeds: %d\n",
				g.OccupiedCount(), g.Len(), out.Visited, out.Seeds)
			if ok {
				fmt.Fprintf(stdout, "path length: %d\n", len(path))
			}
			return nil
		},
	}
	cmd.Flags().IntP("rows", "n", 10, "Number of rows in the grid")
	cmd.Flags().IntP("cols", "m", 10, "Number of columns in the grid")
	cmd.Flags().Float64("p", 0.6, "Occupation probability")
	cmd.Flags().Int64("seed", 0, "Random seed (0 uses the fixed default seed)")
	return cmd
}

// renderGrid draws g with the cells of path marked '*'.
func renderGrid(g *lattice.Grid, path []int) string {
	onPath := make(map[int]bool, len(path))
	for _, idx := range path {
		onPath[idx] = true
	}
	var b strings.Builder
	for r := 0; r < g.Rows(); r++ {
		for c := 0; c < g.Cols(); c++ {
			idx := g.Index(r, c)
			switch {
			case onPath[idx]:
				b.WriteByte('*')
			case g.OccupiedAt(idx):
				b.WriteByte('1')
			default:
				b.WriteByte('0')
			}
		}
		if r < g.Rows()-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}
