// SPDX-License-Identifier: MIT
package percolation_test

import (
	"testing"

	"github.com/katalvlaran/percolath/lattice"
	"github.com/katalvlaran/percolath/percolation"
	"github.com/katalvlaran/percolath/rng"
)

// BenchmarkPercolates measures the oracle on a 512×512 grid near p_c.
// Complexity: O(W×H)
func BenchmarkPercolates(b *testing.B) {
	g, err := lattice.Generate(512, 512, 0.593, rng.FromSeed(42))
	if err != nil {
		b.Fatalf("setup Generate failed: %v", err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = percolation.Percolates(g)
	}
}

// BenchmarkPercolates_Full measures the worst case: every cell occupied.
func BenchmarkPercolates_Full(b *testing.B) {
	g, err := lattice.Generate(512, 512, 1, rng.FromSeed(42))
	if err != nil {
		b.Fatalf("setup Generate failed: %v", err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = percolation.Percolates(g)
	}
}
