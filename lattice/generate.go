// SPDX-License-Identifier: MIT
package lattice

import (
	"fmt"
	"math"
	"math/rand"
)

// Generate samples a rows×cols Grid in which each cell is occupied
// independently with probability p.
//
// Contract:
//   - rows ≥ 1 and cols ≥ 1 (else ErrEmptyGrid).
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - r must be non-nil (else ErrNeedRandSource), even for p∈{0,1}.
//   - Draws exactly rows×cols values from r in row-major order, so a fixed
//     seed reproduces the same grid.
//
// Since r.Float64() lies in [0,1), p=0 yields an all-empty grid and p=1 an
// all-occupied grid without special cases.
//
// Complexity: O(n×m) time and memory.
func Generate(rows, cols int, p float64, r *rand.Rand) (*Grid, error) {
	total, err := checkDims(methodGenerate, rows, cols)
	if err != nil {
		return nil, err
	}
	if math.IsNaN(p) || p < 0 || p > 1 {
		return nil, fmt.Errorf("%s: p=%.6f not in [0,1]: %w", methodGenerate, p, ErrInvalidProbability)
	}
	if r == nil {
		return nil, fmt.Errorf("%s: %w", methodGenerate, ErrNeedRandSource)
	}

	g := &Grid{rows: rows, cols: cols, cells: make([]bool, total)}
	for i := range g.cells {
		g.cells[i] = r.Float64() < p
	}
	return g, nil
}
