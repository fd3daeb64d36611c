// SPDX-License-Identifier: MIT
package percolation

import "github.com/katalvlaran/percolath/lattice"

// Outcome reports the result of one connectivity search.
type Outcome struct {
	// Percolates is true if row 0 connects to row n-1.
	Percolates bool

	// Visited counts cells marked visited; each cell is counted at most once.
	Visited int

	// Seeds counts row-0 cells that started a fresh exploration. Occupied
	// row-0 cells already reached from an earlier seed are not counted.
	Seeds int
}

// walker holds the per-call traversal state. It is never shared.
type walker struct {
	grid    *lattice.Grid
	visited []bool
	parent  []int // nil unless a path is requested
	stack   []int
	end     int // bottom-row cell that ended the search, -1 if none
	out     Outcome
}

func newWalker(g *lattice.Grid, trackPath bool) *walker {
	w := &walker{
		grid:    g,
		visited: make([]bool, g.Len()),
		stack:   make([]int, 0, g.Cols()),
		end:     -1,
	}
	if trackPath {
		w.parent = make([]int, g.Len())
	}
	return w
}

// mark records v as visited and pushes it onto the frontier.
func (w *walker) mark(v, from int) {
	w.visited[v] = true
	w.out.Visited++
	if w.parent != nil {
		w.parent[v] = from
	}
	w.stack = append(w.stack, v)
}

// run executes the seeded search. Returns true on reaching the last row.
func (w *walker) run() bool {
	g := w.grid
	last := g.Rows() - 1

	// Row 0 occupies indices [0, cols).
	for seed := 0; seed < g.Cols(); seed++ {
		if !g.OccupiedAt(seed) || w.visited[seed] {
			continue
		}
		w.out.Seeds++
		w.mark(seed, -1)

		for len(w.stack) > 0 {
			u := w.stack[len(w.stack)-1]
			w.stack = w.stack[:len(w.stack)-1]

			r, c := g.Coordinate(u)
			if r == last {
				w.end = u
				w.out.Percolates = true
				return true
			}
			for _, d := range lattice.Offsets4 {
				nr, nc := r+d[0], c+d[1]
				if !g.InBounds(nr, nc) {
					continue
				}
				v := g.Index(nr, nc)
				if w.visited[v] || !g.OccupiedAt(v) {
					continue
				}
				w.mark(v, u)
			}
		}
	}
	return false
}

// Percolates reports whether g has a path of 4-adjacent occupied cells
// from any cell of row 0 to any cell of row n-1. A nil grid never percolates.
// Complexity: O(n×m) time and memory.
func Percolates(g *lattice.Grid) bool {
	if g == nil {
		return false
	}
	return newWalker(g, false).run()
}

// Search runs the same traversal as Percolates and returns its diagnostics.
func Search(g *lattice.Grid) Outcome {
	if g == nil {
		return Outcome{}
	}
	w := newWalker(g, false)
	w.run()
	return w.out
}

// SpanningPath returns one path of row-major cell indices from row 0 to
// row n-1, ordered top to bottom, and true; or nil and false if g does not
// percolate. The path follows DFS discovery links, so it is a valid
// 4-connected walk but not necessarily the shortest one.
func SpanningPath(g *lattice.Grid) ([]int, bool) {
	if g == nil {
		return nil, false
	}
	w := newWalker(g, true)
	if !w.run() {
		return nil, false
	}
	var path []int
	for v := w.end; v != -1; v = w.parent[v] {
		path = append(path, v)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path, true
}
