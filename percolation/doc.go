// SPDX-License-Identifier: MIT
// Package percolation decides whether a lattice.Grid percolates: whether a
// path of 4-adjacent occupied cells joins the top row to the bottom row.
//
// What:
//
//   - Percolates(g): the boolean oracle used by Monte Carlo trials.
//   - Search(g): the same traversal, reporting diagnostics (visited cells,
//     seeds explored).
//   - SpanningPath(g): one witness path from row 0 to row n-1, if any.
//
// Algorithm:
//
//	Depth-first search over an explicit LIFO frontier, seeded in column
//	order from every occupied cell of row 0. A single visited set is
//	shared across all seeds of one call, so each cell is visited at most
//	once per call no matter how many seeds are attempted; a seed already
//	swept by an earlier seed is skipped. Cells are marked when pushed.
//	The search stops at the first bottom-row cell it pops.
//
// Edge cases:
//
//   - n = 1: percolates iff any cell is occupied (row 0 is the last row).
//   - No occupied cell in row 0: false without exploring.
//   - nil grid: false.
//
// Complexity:
//
//   - Time:   O(n×m), every cell pushed at most once, 4 neighbour checks each.
//   - Memory: O(n×m) for the visited set and frontier; no recursion, so stack
//     depth does not grow with grid size.
package percolation
