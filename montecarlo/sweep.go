// SPDX-License-Identifier: MIT
package montecarlo

import (
	"context"
	"fmt"
	"math/rand"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/percolath/lattice"
	"github.com/katalvlaran/percolath/percolation"
	"github.com/katalvlaran/percolath/rng"
)

// Trial generates one rows×cols grid at occupation probability p from r and
// reports whether it percolates.
func Trial(rows, cols int, p float64, r *rand.Rand) (bool, error) {
	g, err := lattice.Generate(rows, cols, p, r)
	if err != nil {
		return false, err
	}
	return percolation.Percolates(g), nil
}

// counter runs all trials of one step and returns the number that percolated.
type counter func(ctx context.Context, step int, p float64) (int, error)

// Run executes the sweep described by cfg.
//
// Steps run in increasing order of i with p = float64(i)/float64(Steps);
// each step runs cfg.Size trials and records θ = float64(hits)/float64(Size).
// The configuration and options are validated before any trial runs, so a
// failed precondition never yields a partial or NaN result.
//
// Complexity: O(Steps × Size × Rows × Cols) time, O(Rows × Cols) memory per
// active worker.
func Run(ctx context.Context, cfg Config, opts ...Option) (*Result, error) {
	// 1. Validate parameters
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", methodRun, err)
	}

	// 2. Apply options
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	if o.err != nil {
		return nil, fmt.Errorf("%s: %w", methodRun, o.err)
	}
	if ctx == nil {
		ctx = context.Background()
	}

	// 3. Pick the counting strategy
	var count counter
	if o.Workers == 1 {
		src := o.Rand
		if src == nil {
			src = rng.FromSeed(o.Seed)
		}
		count = sequentialCounter(cfg, src)
	} else {
		seed := rng.Resolve(o.Seed)
		if o.Rand != nil {
			seed = o.Rand.Int63()
		}
		count = parallelCounter(cfg, seed, o.Workers)
	}

	z := zScore(o.Confidence)
	res := &Result{
		Config:     cfg,
		Confidence: o.Confidence,
		Points:     make([]Point, 0, cfg.Steps),
	}
	o.Logger.Debug("sweep started",
		"rows", cfg.Rows, "cols", cfg.Cols, "steps", cfg.Steps, "size", cfg.Size, "workers", o.Workers)

	// 4. Sweep
	for i := 0; i < cfg.Steps; i++ {
		p := float64(i) / float64(cfg.Steps)
		hits, err := count(ctx, i, p)
		if err != nil {
			return nil, fmt.Errorf("%s: step %d (p=%g): %w", methodRun, i, p, err)
		}
		pt := newPoint(p, hits, cfg.Size, z)
		res.Points = append(res.Points, pt)
		o.Logger.Debug("step complete", "step", i, "p", p, "theta", pt.Theta, "hits", hits)

		if o.OnStep != nil {
			if err = o.OnStep(pt); err != nil {
				return nil, fmt.Errorf("%s: step %d: %w: %w", methodRun, i, ErrStepHook, err)
			}
		}
	}

	return res, nil
}

// sequentialCounter draws every trial from src in order.
func sequentialCounter(cfg Config, src *rand.Rand) counter {
	return func(ctx context.Context, _ int, p float64) (int, error) {
		return countTrials(ctx, cfg, p, cfg.Size, src)
	}
}

// parallelCounter splits a step into up to workers chunks, one stream each.
func parallelCounter(cfg Config, seed int64, workers int) counter {
	chunks := workers
	if chunks > cfg.Size {
		chunks = cfg.Size
	}
	return func(ctx context.Context, step int, p float64) (int, error) {
		counts := make([]int, chunks)
		g, gctx := errgroup.WithContext(ctx)
		for c := 0; c < chunks; c++ {
			c := c
			n := cfg.Size / chunks
			if c < cfg.Size%chunks {
				n++
			}
			stream := uint64(step)*uint64(chunks) + uint64(c)
			g.Go(func() error {
				hits, err := countTrials(gctx, cfg, p, n, rng.Stream(seed, stream))
				counts[c] = hits
				return err
			})
		}
		if err := g.Wait(); err != nil {
			return 0, err
		}
		total := 0
		for _, h := range counts {
			total += h
		}
		return total, nil
	}
}

// countTrials runs n trials at p from src, checking ctx between trials.
func countTrials(ctx context.Context, cfg Config, p float64, n int, src *rand.Rand) (int, error) {
	hits := 0
	for t := 0; t < n; t++ {
		if err := ctx.Err(); err != nil {
			return hits, err
		}
		ok, err := Trial(cfg.Rows, cfg.Cols, p, src)
		if err != nil {
			return hits, err
		}
		if ok {
			hits++
		}
	}
	return hits, nil
}
