// SPDX-License-Identifier: MIT
// Package lattice defines the Grid type, neighbour offsets and sentinel errors.
package lattice

import "errors"

// Sentinel errors for lattice operations.
var (
	// ErrEmptyGrid indicates a grid with no rows or no columns.
	ErrEmptyGrid = errors.New("lattice: grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("lattice: all rows must have the same length")
	// ErrGridTooLarge indicates rows×cols exceeds MaxCells.
	ErrGridTooLarge = errors.New("lattice: grid too large")
	// ErrInvalidProbability indicates an occupation probability outside [0,1].
	ErrInvalidProbability = errors.New("lattice: probability out of range")
	// ErrNeedRandSource indicates Generate was given a nil *rand.Rand.
	ErrNeedRandSource = errors.New("lattice: rng is required")
)

// MaxCells caps rows×cols for any Grid.
const MaxCells = 1 << 24

// Method tags used when wrapping sentinels.
const (
	methodNew      = "New"
	methodFromRows = "FromRows"
	methodGenerate = "Generate"
)

// Offsets4 lists the 4-neighbour moves as (dRow, dCol): up, right, down, left.
var Offsets4 = [4][2]int{{-1, 0}, {0, 1}, {1, 0}, {0, -1}}

// Grid is a rows×cols field of occupied (true) and empty (false) cells.
// cells[r*cols+c] holds the state of row r, column c.
// A Grid never changes after construction.
type Grid struct {
	rows, cols int
	cells      []bool
}
