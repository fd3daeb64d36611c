// SPDX-License-Identifier: MIT
// Package montecarlo estimates the site-percolation probability θ(p) by
// repeated random trials over a linear sweep of occupation probabilities.
//
// What:
//
//   - Run(ctx, cfg, opts...): for i in [0, Steps) sets p = i/Steps, runs
//     Size trials (lattice.Generate + percolation.Percolates), and records
//     θ(p) = hits/Size together with a Wilson score interval.
//   - Trial(rows, cols, p, r): a single generate-then-test cycle.
//   - Result.Threshold(): interpolated p at which θ first reaches 1/2.
//
// Concurrency:
//
//   - Workers == 1 (default) is the sequential reference path: one source,
//     trials in order, steps in order.
//   - Workers > 1 splits each step's trials into chunks run by an errgroup.
//     Each chunk draws from its own stream rng.Stream(seed, step·chunks+chunk),
//     counts locally, and the counts are summed once the group joins. For a
//     fixed (seed, workers) the output is reproducible.
//
// Options:
//
//   - WithSeed(seed) / WithRand(r): explicit random source.
//   - WithWorkers(k):        number of parallel chunks per step (k ≥ 1).
//   - WithConfidence(level): Wilson interval level in (0,1), default 0.95.
//   - WithOnStep(fn):        hook after each step; an error aborts the run.
//   - WithLogger(l):         *slog.Logger for per-step debug records.
//
// Errors:
//
//   - ErrInvalidConfig:   any of Rows, Cols, Steps, Size below 1.
//   - ErrOptionViolation: an Option received a meaningless value.
//   - ErrStepHook:        the OnStep hook returned an error.
//   - context.Canceled / DeadlineExceeded from ctx, wrapped.
package montecarlo
