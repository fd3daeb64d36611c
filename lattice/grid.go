// SPDX-License-Identifier: MIT
package lattice

import (
	"fmt"
	"strings"
)

// checkDims validates rows and cols and returns the total cell count.
func checkDims(method string, rows, cols int) (int, error) {
	if rows < 1 || cols < 1 {
		return 0, fmt.Errorf("%s: rows=%d cols=%d: %w", method, rows, cols, ErrEmptyGrid)
	}
	if !FitsCells(rows, cols) {
		return 0, fmt.Errorf("%s: rows=%d cols=%d exceeds %d cells: %w", method, rows, cols, MaxCells, ErrGridTooLarge)
	}
	return rows * cols, nil
}

// FitsCells reports whether a rows×cols grid stays within MaxCells.
// Non-positive dimensions are left to the caller.
func FitsCells(rows, cols int) bool {
	if rows < 1 || cols < 1 {
		return true
	}
	return rows <= MaxCells/cols
}

// New constructs a Grid from a non-empty, rectangular 2D slice of cell states.
// The input is deep-copied.
// Returns ErrEmptyGrid if cells has no rows or no columns,
// ErrNonRectangular if any row length differs.
// Complexity: O(n×m) time and memory.
func New(cells [][]bool) (*Grid, error) {
	if len(cells) == 0 || len(cells[0]) == 0 {
		return nil, fmt.Errorf("%s: %w", methodNew, ErrEmptyGrid)
	}
	rows, cols := len(cells), len(cells[0])
	total, err := checkDims(methodNew, rows, cols)
	if err != nil {
		return nil, err
	}
	g := &Grid{rows: rows, cols: cols, cells: make([]bool, total)}
	for r, row := range cells {
		if len(row) != cols {
			return nil, fmt.Errorf("%s: row %d has %d cells, want %d: %w",
				methodNew, r, len(row), cols, ErrNonRectangular)
		}
		copy(g.cells[r*cols:(r+1)*cols], row)
	}
	return g, nil
}

// FromRows constructs a Grid from integer rows; any non-zero value is occupied.
// It is the convenient form for hand-written fixtures.
// Complexity: O(n×m) time and memory.
func FromRows(values [][]int) (*Grid, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, fmt.Errorf("%s: %w", methodFromRows, ErrEmptyGrid)
	}
	rows, cols := len(values), len(values[0])
	total, err := checkDims(methodFromRows, rows, cols)
	if err != nil {
		return nil, err
	}
	g := &Grid{rows: rows, cols: cols, cells: make([]bool, total)}
	for r, row := range values {
		if len(row) != cols {
			return nil, fmt.Errorf("%s: row %d has %d cells, want %d: %w",
				methodFromRows, r, len(row), cols, ErrNonRectangular)
		}
		for c, v := range row {
			g.cells[r*cols+c] = v != 0
		}
	}
	return g, nil
}

// Rows returns the number of rows (n).
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns (m).
func (g *Grid) Cols() int { return g.cols }

// Len returns rows×cols.
func (g *Grid) Len() int { return len(g.cells) }

// InBounds reports whether (r,c) lies within the grid.
// Complexity: O(1).
func (g *Grid) InBounds(r, c int) bool {
	return r >= 0 && r < g.rows && c >= 0 && c < g.cols
}

// Occupied reports whether cell (r,c) is occupied. Out-of-bounds cells are empty.
// Complexity: O(1).
func (g *Grid) Occupied(r, c int) bool {
	if !g.InBounds(r, c) {
		return false
	}
	return g.cells[r*g.cols+c]
}

// OccupiedAt reports the state of the cell at row-major index idx.
// idx must be in [0, Len()).
func (g *Grid) OccupiedAt(idx int) bool {
	return g.cells[idx]
}

// Index maps (r,c) to the row-major index r*cols + c.
// Complexity: O(1).
func (g *Grid) Index(r, c int) int {
	return r*g.cols + c
}

// Coordinate converts a row-major index back to (r,c).
// Complexity: O(1).
func (g *Grid) Coordinate(idx int) (r, c int) {
	return idx / g.cols, idx % g.cols
}

// OccupiedCount returns the number of occupied cells.
// Complexity: O(n×m).
func (g *Grid) OccupiedCount() int {
	n := 0
	for _, v := range g.cells {
		if v {
			n++
		}
	}
	return n
}

// String renders the grid as rows of '1' (occupied) and '0' (empty).
func (g *Grid) String() string {
	var b strings.Builder
	b.Grow(g.rows * (g.cols + 1))
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			if g.cells[r*g.cols+c] {
				b.WriteByte('1')
			} else {
				b.WriteByte('0')
			}
		}
		if r < g.rows-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}
