// SPDX-License-Identifier: MIT
package montecarlo_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/percolath/montecarlo"
)

// ExampleRun sweeps a 5×5 grid over four probabilities.
// Scenario:
//
//   - Steps=4 gives p ∈ {0, 0.25, 0.5, 0.75}.
//   - p=0 grids are always empty, so θ(0)=0 exactly.
func ExampleRun() {
	cfg := montecarlo.Config{Rows: 5, Cols: 5, Steps: 4, Size: 200}
	res, err := montecarlo.Run(context.Background(), cfg, montecarlo.WithSeed(42))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("points:", len(res.Points))
	fmt.Println("p:", res.Probabilities())
	fmt.Println("theta(0):", res.Points[0].Theta)

	// Output:
	// points: 4
	// p: [0 0.25 0.5 0.75]
	// theta(0): 0
}
