// SPDX-License-Identifier: MIT
package percolation_test

import (
	"fmt"

	"github.com/katalvlaran/percolath/lattice"
	"github.com/katalvlaran/percolath/percolation"
)

// ExamplePercolates tests the two 3×3 scenarios from the documentation.
// Scenario:
//
//   - Left column fully occupied: row 0 reaches row 2 straight down.
//   - Opposite corners occupied: no 4-connected path exists.
func ExamplePercolates() {
	open, _ := lattice.FromRows([][]int{
		{1, 0, 0},
		{1, 0, 0},
		{1, 0, 0},
	})
	blocked, _ := lattice.FromRows([][]int{
		{1, 0, 0},
		{0, 0, 0},
		{0, 0, 1},
	})
	fmt.Println(percolation.Percolates(open))
	fmt.Println(percolation.Percolates(blocked))

	// Output:
	// true
	// false
}

// ExampleSpanningPath prints the witness path as (row,col) pairs.
func ExampleSpanningPath() {
	g, _ := lattice.FromRows([][]int{
		{0, 0, 1},
		{1, 1, 1},
		{1, 0, 0},
	})
	path, ok := percolation.SpanningPath(g)
	fmt.Println("percolates:", ok)
	fmt.Print("path:")
	for _, idx := range path {
		r, c := g.Coordinate(idx)
		fmt.Printf(" (%d,%d)", r, c)
	}
	fmt.Println()

	// Output:
	// percolates: true
	// path: (0,2) (1,2) (1,1) (1,0) (2,0)
}
