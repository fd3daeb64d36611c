// SPDX-License-Identifier: MIT
package report

import (
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/percolath/montecarlo"
)

// Summary describes one completed sweep run.
type Summary struct {
	RunID      string             `yaml:"run_id"`
	Started    time.Time          `yaml:"started"`
	Elapsed    time.Duration      `yaml:"elapsed"`
	Config     montecarlo.Config  `yaml:"config"`
	Seed       int64              `yaml:"seed"`
	Workers    int                `yaml:"workers"`
	Confidence float64            `yaml:"confidence"`
	Threshold  *float64           `yaml:"threshold,omitempty"`
	Points     []montecarlo.Point `yaml:"points"`
}

// NewSummary builds a Summary for res with a fresh random run id.
// Threshold is set only if θ reaches 1/2 somewhere in the sweep.
func NewSummary(res *montecarlo.Result, started time.Time, elapsed time.Duration, seed int64, workers int) Summary {
	s := Summary{
		RunID:   uuid.NewString(),
		Started: started.UTC(),
		Elapsed: elapsed,
		Seed:    seed,
		Workers: workers,
	}
	if res == nil {
		return s
	}
	s.Config = res.Config
	s.Confidence = res.Confidence
	s.Points = res.Points
	if pc, ok := res.Threshold(); ok {
		s.Threshold = &pc
	}
	return s
}

// WriteSummary encodes s as YAML.
func WriteSummary(w io.Writer, s Summary) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(s); err != nil {
		return fmt.Errorf("encode summary: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("close summary encoder: %w", err)
	}
	return nil
}

// SaveSummary writes s to path atomically.
func SaveSummary(path string, s Summary) error {
	return saveAtomic(path, func(w io.Writer) error {
		return WriteSummary(w, s)
	})
}
