// SPDX-License-Identifier: MIT
package montecarlo_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/katalvlaran/percolath/montecarlo"
)

// BenchmarkRun measures a small sweep sequentially and with four workers.
func BenchmarkRun(b *testing.B) {
	cfg := montecarlo.Config{Rows: 32, Cols: 32, Steps: 10, Size: 100}
	for _, workers := range []int{1, 4} {
		b.Run(fmt.Sprintf("workers=%d", workers), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				if _, err := montecarlo.Run(context.Background(), cfg,
					montecarlo.WithSeed(42), montecarlo.WithWorkers(workers)); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
