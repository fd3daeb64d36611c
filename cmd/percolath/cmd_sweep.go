// SPDX-License-Identifier: MIT
package main

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/percolath/internal/config"
	"github.com/katalvlaran/percolath/internal/logging"
	"github.com/katalvlaran/percolath/montecarlo"
	"github.com/katalvlaran/percolath/report"
	"github.com/katalvlaran/percolath/rng"
)

func addSweepFlags(cmd *cobra.Command) {
	def := config.Default()
	f := cmd.Flags()
	f.IntP("rows", "n", def.Sweep.Rows, "Number of rows in the grid")
	f.IntP("cols", "m", def.Sweep.Cols, "Number of columns in the grid")
	f.Int("steps", def.Sweep.Steps, "Number of probability steps in the sweep")
	f.Int("size", def.Sweep.Size, "Number of trials to run for each step")
	f.Int64("seed", def.Seed, "Random seed (0 uses the fixed default seed)")
	f.Int("workers", def.Workers, "Parallel trial workers per step")
	f.Float64("confidence", def.Confidence, "Confidence level of the Wilson interval")
	f.String("csv", def.Output.CSV, "CSV output path (empty to skip)")
	f.String("plot", def.Output.Plot, "Chart output path, format by extension (empty to skip)")
	f.String("html", def.Output.HTML, "Interactive HTML chart path (empty to skip)")
	f.String("summary", def.Output.Summary, "YAML run summary path (empty to skip)")
	f.Bool("band", def.Output.Band, "Shade the confidence interval on the chart")
	f.String("config", "", "YAML config file")
	f.String("log-level", def.Logging.Level, "Log level: info, debug, trace, warn, error")
}

// resolveConfig layers explicitly set flags over file and environment config.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	f := cmd.Flags()
	path, _ := f.GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}

	intFlags := map[string]*int{
		"rows":    &cfg.Sweep.Rows,
		"cols":    &cfg.Sweep.Cols,
		"steps":   &cfg.Sweep.Steps,
		"size":    &cfg.Sweep.Size,
		"workers": &cfg.Workers,
	}
	for name, dst := range intFlags {
		if f.Changed(name) {
			*dst, _ = f.GetInt(name)
		}
	}
	strFlags := map[string]*string{
		"csv":       &cfg.Output.CSV,
		"plot":      &cfg.Output.Plot,
		"html":      &cfg.Output.HTML,
		"summary":   &cfg.Output.Summary,
		"log-level": &cfg.Logging.Level,
	}
	for name, dst := range strFlags {
		if f.Changed(name) {
			*dst, _ = f.GetString(name)
		}
	}
	if f.Changed("seed") {
		cfg.Seed, _ = f.GetInt64("seed")
	}
	if f.Changed("confidence") {
		cfg.Confidence, _ = f.GetFloat64("confidence")
	}
	if f.Changed("band") {
		cfg.Output.Band, _ = f.GetBool("band")
	}
	return cfg, nil
}

func runSweep(cmd *cobra.Command, stdout, stderr io.Writer) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	if err = cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	logger := logging.NewLogger(cfg.Logging.Level, stderr)

	logger.Info("starting sweep",
		"rows", cfg.Sweep.Rows, "cols", cfg.Sweep.Cols,
		"steps", cfg.Sweep.Steps, "size", cfg.Sweep.Size,
		"seed", rng.Resolve(cfg.Seed), "workers", cfg.Workers)

	started := time.Now()
	res, err := montecarlo.Run(cmd.Context(), cfg.Sweep,
		montecarlo.WithSeed(cfg.Seed),
		montecarlo.WithWorkers(cfg.Workers),
		montecarlo.WithConfidence(cfg.Confidence),
		montecarlo.WithLogger(logger),
		montecarlo.WithOnStep(progressHook(logger, cfg.Sweep.Steps)),
	)
	if err != nil {
		return fmt.Errorf("sweep failed: %w", err)
	}
	elapsed := time.Since(started)

	if pc, ok := res.Threshold(); ok {
		logger.Info("sweep finished", "elapsed", elapsed, "threshold", pc)
	} else {
		logger.Info("sweep finished", "elapsed", elapsed)
	}

	if err = writeArtifacts(cfg, res, started, elapsed, logger); err != nil {
		return err
	}
	fmt.Fprintln(stdout, "Done!")
	return nil
}

// progressHook logs at info level roughly every tenth of the sweep.
func progressHook(logger *slog.Logger, steps int) func(montecarlo.Point) error {
	every := steps / 10
	if every < 1 {
		every = 1
	}
	done := 0
	return func(pt montecarlo.Point) error {
		done++
		if done%every == 0 || done == steps {
			logger.Info("progress", "done", done, "steps", steps, "p", pt.P, "theta", pt.Theta)
		}
		return nil
	}
}

// writeArtifacts hands the finished result to every configured sink.
func writeArtifacts(cfg *config.Config, res *montecarlo.Result, started time.Time, elapsed time.Duration, logger *slog.Logger) error {
	out := cfg.Output
	if out.CSV != "" {
		if err := report.SaveCSV(out.CSV, res); err != nil {
			return fmt.Errorf("writing csv: %w", err)
		}
		logger.Debug("wrote csv", "path", out.CSV)
	}
	if out.Plot != "" {
		po := report.DefaultPlotOptions()
		po.Band = out.Band
		if err := report.SavePlot(out.Plot, res, po); err != nil {
			return fmt.Errorf("writing plot: %w", err)
		}
		logger.Debug("wrote plot", "path", out.Plot)
	}
	if out.HTML != "" {
		if err := report.SaveHTML(out.HTML, res); err != nil {
			return fmt.Errorf("writing html chart: %w", err)
		}
		logger.Debug("wrote html chart", "path", out.HTML)
	}
	if out.Summary != "" {
		s := report.NewSummary(res, started, elapsed, rng.Resolve(cfg.Seed), cfg.Workers)
		if err := report.SaveSummary(out.Summary, s); err != nil {
			return fmt.Errorf("writing summary: %w", err)
		}
		logger.Debug("wrote summary", "path", out.Summary, "run_id", s.RunID)
	}
	return nil
}
