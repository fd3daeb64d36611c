// SPDX-License-Identifier: MIT
package montecarlo_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/percolath/montecarlo"
)

// result builds a Result from explicit (p, θ) pairs.
func result(ps, thetas []float64) *montecarlo.Result {
	r := &montecarlo.Result{}
	for i := range ps {
		r.Points = append(r.Points, montecarlo.Point{P: ps[i], Theta: thetas[i]})
	}
	return r
}

// TestThreshold_Interpolates checks linear interpolation between brackets.
func TestThreshold_Interpolates(t *testing.T) {
	r := result([]float64{0, 0.25, 0.5, 0.75}, []float64{0, 0.2, 0.6, 1})
	p, ok := r.Threshold()
	assert.True(t, ok)
	// 0.25 + (0.5-0.2)/(0.6-0.2) * 0.25 = 0.4375
	assert.InDelta(t, 0.4375, p, 1e-12)
}

// TestCrossing_Edges covers the first-point and never-reached cases.
func TestCrossing_Edges(t *testing.T) {
	r := result([]float64{0, 0.5}, []float64{0.7, 0.9})
	p, ok := r.Crossing(0.5)
	assert.True(t, ok)
	assert.Equal(t, 0.0, p)

	p, ok = r.Crossing(0.95)
	assert.False(t, ok)
	assert.Zero(t, p)

	_, ok = (&montecarlo.Result{}).Threshold()
	assert.False(t, ok)
}

// TestThetas_Order checks accessor order follows the sweep.
func TestThetas_Order(t *testing.T) {
	r := result([]float64{0, 0.5}, []float64{0.1, 0.4})
	assert.Equal(t, []float64{0.1, 0.4}, r.Thetas())
	assert.Equal(t, []float64{0, 0.5}, r.Probabilities())
}
