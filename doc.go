// SPDX-License-Identifier: MIT
// Package percolath estimates site-percolation probabilities on rectangular
// grids by Monte Carlo simulation.
//
// What is percolath?
//
//	For a sweep of occupation probabilities p over [0,1) it generates many
//	random binary grids, tests each for a top-to-bottom path of 4-connected
//	occupied cells, and reports the fraction that percolate, θ(p).
//
// Under the hood, everything is organized under these subpackages:
//
//	rng/          deterministic *rand.Rand factory and independent streams
//	lattice/      immutable occupancy Grid and its random generator
//	percolation/  connectivity oracle (explicit-frontier DFS), witness paths
//	montecarlo/   the probability sweep, Wilson intervals, threshold estimate
//	report/       CSV, gonum/plot and go-echarts charts, YAML run summary
//	cmd/percolath  command-line front end
//
// Quick ASCII example (3×3, '1' occupied):
//
//	1 0 0
//	1 0 0      percolates via the left column
//	1 0 0
//
// On the square lattice θ(p) rises sharply near p_c ≈ 0.5927 as the grid grows.
//
//	go install github.com/katalvlaran/percolath/cmd/percolath@latest
package percolath
