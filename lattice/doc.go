// SPDX-License-Identifier: MIT
// Package lattice models the binary occupancy grid used by site percolation
// and generates random instances of it.
//
// What:
//
//   - Grid wraps a rectangular n×m field of occupied/empty cells, stored
//     row-major in a flat slice. It is immutable once built.
//   - New / FromRows build a Grid from caller data (deep copy).
//   - Generate samples a Grid where every cell is occupied independently
//     with probability p, drawing from an explicit *rand.Rand.
//
// Why:
//
//   - Percolation trials: one Grid per trial, discarded after its test.
//   - Deterministic fixtures: hand-written grids for connectivity tests.
//
// Complexity:
//
//   - New, FromRows, Generate: O(n×m) time and memory.
//   - Occupied, InBounds, Index, Coordinate: O(1).
//
// Limits:
//
//   - A Grid holds at most MaxCells (2^24) cells, e.g. 4096×4096. One trial
//     then costs about 1 byte per cell for the grid, 1 for the visited set
//     and up to 8 for the search frontier, so roughly 170 MB at the cap.
//     Larger requests fail with ErrGridTooLarge before anything is allocated.
//
// Errors:
//
//   - ErrEmptyGrid: zero rows or zero columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrGridTooLarge: n×m exceeds MaxCells.
//   - ErrInvalidProbability: p outside [0,1] or NaN.
//   - ErrNeedRandSource: Generate called with a nil *rand.Rand.
package lattice
