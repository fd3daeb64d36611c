// SPDX-License-Identifier: MIT
// Package montecarlo defines sweep configuration, results, options and errors.
package montecarlo

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"math/rand"

	"github.com/katalvlaran/percolath/lattice"
)

// Sentinel errors for sweep execution.
var (
	// ErrInvalidConfig is returned when a Config field is below its minimum.
	ErrInvalidConfig = errors.New("montecarlo: invalid sweep config")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("montecarlo: invalid option supplied")

	// ErrStepHook wraps an error returned by the OnStep hook.
	ErrStepHook = errors.New("montecarlo: step hook failed")
)

// Defaults mirror the reference command line.
const (
	DefaultRows       = 10
	DefaultCols       = 10
	DefaultSteps      = 100
	DefaultSize       = 1000
	DefaultConfidence = 0.95
)

const methodRun = "Run"

// Config holds the immutable sweep parameters. All fields must be ≥ 1.
type Config struct {
	Rows  int `yaml:"rows"`  // grid rows (n)
	Cols  int `yaml:"cols"`  // grid columns (m)
	Steps int `yaml:"steps"` // number of probability samples
	Size  int `yaml:"size"`  // trials per probability step
}

// DefaultConfig returns Config{10, 10, 100, 1000}.
func DefaultConfig() Config {
	return Config{Rows: DefaultRows, Cols: DefaultCols, Steps: DefaultSteps, Size: DefaultSize}
}

// Validate fails fast on any non-positive field, naming the first offender.
// It also rejects grids larger than lattice.MaxCells.
func (c Config) Validate() error {
	fields := []struct {
		name string
		v    int
	}{
		{"rows", c.Rows},
		{"cols", c.Cols},
		{"steps", c.Steps},
		{"size", c.Size},
	}
	for _, f := range fields {
		if f.v < 1 {
			return fmt.Errorf("%s=%d must be >= 1: %w", f.name, f.v, ErrInvalidConfig)
		}
	}
	if !lattice.FitsCells(c.Rows, c.Cols) {
		return fmt.Errorf("rows=%d cols=%d exceeds %d cells: %w: %w", c.Rows, c.Cols, lattice.MaxCells, ErrInvalidConfig, lattice.ErrGridTooLarge)
	}
	return nil
}

// Point is one (p, θ(p)) sample of the sweep.
type Point struct {
	P      float64 `yaml:"p"`      // occupation probability i/Steps
	Theta  float64 `yaml:"theta"`  // Hits / Trials
	Hits   int     `yaml:"hits"`   // percolating trials
	Trials int     `yaml:"trials"` // trials run (Config.Size)
	Lower  float64 `yaml:"lower"`  // Wilson interval lower bound
	Upper  float64 `yaml:"upper"`  // Wilson interval upper bound
}

// Result is the ordered output of a sweep: len(Points) == Config.Steps and
// Points[i].P == i/Steps.
type Result struct {
	Config     Config
	Confidence float64
	Points     []Point
}

// Option configures optional behavior of Run.
// Invalid values are recorded and surfaced as ErrOptionViolation by Run.
type Option func(*Options)

// Options holds the resolved Run parameters.
type Options struct {
	// Rand, if non-nil, is the source for the sequential path. With Workers > 1
	// one value is drawn from it to seed the per-chunk streams.
	Rand *rand.Rand

	// Seed is used when Rand is nil; 0 selects rng.DefaultSeed.
	Seed int64

	// Workers is the number of parallel chunks per step. 1 is sequential.
	Workers int

	// Confidence is the Wilson interval level in (0,1).
	Confidence float64

	// OnStep, if non-nil, is called after each completed step in order.
	OnStep func(Point) error

	// Logger receives debug records; defaults to a discarding logger.
	Logger *slog.Logger

	err error
}

// DefaultOptions returns Options with:
//   - seed 0 (rng.DefaultSeed), no explicit Rand
//   - one worker (sequential)
//   - 95% confidence
//   - no step hook, discarding logger
func DefaultOptions() Options {
	return Options{
		Workers:    1,
		Confidence: DefaultConfidence,
		Logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// WithSeed selects a deterministic source seeded with seed.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Seed = seed
		o.Rand = nil
	}
}

// WithRand supplies an explicit source. A nil r is an option violation.
func WithRand(r *rand.Rand) Option {
	return func(o *Options) {
		if r == nil {
			o.err = fmt.Errorf("WithRand(nil): %w", ErrOptionViolation)
			return
		}
		o.Rand = r
	}
}

// WithWorkers sets the number of parallel chunks per step (k ≥ 1).
func WithWorkers(k int) Option {
	return func(o *Options) {
		if k < 1 {
			o.err = fmt.Errorf("WithWorkers(%d): %w", k, ErrOptionViolation)
			return
		}
		o.Workers = k
	}
}

// WithConfidence sets the Wilson interval level, which must lie in (0,1).
func WithConfidence(level float64) Option {
	return func(o *Options) {
		if math.IsNaN(level) || level <= 0 || level >= 1 {
			o.err = fmt.Errorf("WithConfidence(%g): %w", level, ErrOptionViolation)
			return
		}
		o.Confidence = level
	}
}

// WithOnStep installs fn as a per-step hook.
func WithOnStep(fn func(Point) error) Option {
	return func(o *Options) {
		o.OnStep = fn
	}
}

// WithLogger sets the logger. Passing nil keeps the discarding default.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}
