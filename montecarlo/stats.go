// SPDX-License-Identifier: MIT
package montecarlo

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// zScore returns the two-sided standard normal quantile for level.
func zScore(level float64) float64 {
	return distuv.UnitNormal.Quantile(1 - (1-level)/2)
}

// newPoint builds a Point with its Wilson score interval.
func newPoint(p float64, hits, trials int, z float64) Point {
	theta := float64(hits) / float64(trials)
	lo, hi := wilson(theta, float64(trials), z)
	return Point{P: p, Theta: theta, Hits: hits, Trials: trials, Lower: lo, Upper: hi}
}

// wilson returns the Wilson score interval for proportion theta over n trials.
// Unlike the normal approximation it stays inside [0,1] at theta ∈ {0,1}.
func wilson(theta, n, z float64) (lo, hi float64) {
	z2 := z * z
	denom := 1 + z2/n
	center := (theta + z2/(2*n)) / denom
	half := z / denom * math.Sqrt(theta*(1-theta)/n+z2/(4*n*n))
	lo = math.Max(0, center-half)
	hi = math.Min(1, center+half)
	// Exact limits at the boundaries; the closed form only reaches them up to rounding.
	if theta == 0 {
		lo = 0
	}
	if theta == 1 {
		hi = 1
	}
	return lo, hi
}

// Thetas returns θ for every point in sweep order.
func (r *Result) Thetas() []float64 {
	out := make([]float64, len(r.Points))
	for i, pt := range r.Points {
		out[i] = pt.Theta
	}
	return out
}

// Probabilities returns p for every point in sweep order.
func (r *Result) Probabilities() []float64 {
	out := make([]float64, len(r.Points))
	for i, pt := range r.Points {
		out[i] = pt.P
	}
	return out
}

// Crossing returns the first p at which θ reaches level, linearly
// interpolated between the two bracketing points. ok is false if θ never
// reaches level.
func (r *Result) Crossing(level float64) (p float64, ok bool) {
	for i, pt := range r.Points {
		if pt.Theta < level {
			continue
		}
		if i == 0 {
			return pt.P, true
		}
		prev := r.Points[i-1]
		if pt.Theta == prev.Theta {
			return pt.P, true
		}
		frac := (level - prev.Theta) / (pt.Theta - prev.Theta)
		return prev.P + frac*(pt.P-prev.P), true
	}
	return 0, false
}

// Threshold estimates the percolation threshold as Crossing(0.5).
func (r *Result) Threshold() (float64, bool) {
	return r.Crossing(0.5)
}
