// SPDX-License-Identifier: MIT
// Package config provides configuration loading for the percolath CLI.
// Order of precedence: defaults -> YAML file -> environment variables.
// Command-line flags are applied on top by the caller.
package config

import (
	"fmt"
	"math"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/percolath/internal/logging"
	"github.com/katalvlaran/percolath/montecarlo"
	"github.com/katalvlaran/percolath/report"
)

// Environment variables read by Load.
const (
	EnvRows       = "PERCOLATH_ROWS"
	EnvCols       = "PERCOLATH_COLS"
	EnvSteps      = "PERCOLATH_STEPS"
	EnvSize       = "PERCOLATH_SIZE"
	EnvSeed       = "PERCOLATH_SEED"
	EnvWorkers    = "PERCOLATH_WORKERS"
	EnvConfidence = "PERCOLATH_CONFIDENCE"
	EnvLogLevel   = "PERCOLATH_LOG_LEVEL"
)

// Config contains all percolath settings.
type Config struct {
	// Sweep holds the Monte Carlo parameters.
	Sweep montecarlo.Config `yaml:"sweep"`

	// Seed selects the random stream; 0 uses the fixed default seed.
	Seed int64 `yaml:"seed"`

	// Workers is the number of parallel trial chunks per step.
	Workers int `yaml:"workers"`

	// Confidence is the Wilson interval level.
	Confidence float64 `yaml:"confidence"`

	// Output lists artifact paths; empty paths disable that artifact.
	Output OutputConfig `yaml:"output"`

	// Logging contains log settings.
	Logging LoggingConfig `yaml:"logging"`
}

// OutputConfig names the artifacts written after a sweep.
type OutputConfig struct {
	CSV     string `yaml:"csv"`
	Plot    string `yaml:"plot"`
	HTML    string `yaml:"html,omitempty"`
	Summary string `yaml:"summary,omitempty"`
	// Band shades the confidence interval on the plot.
	Band bool `yaml:"band"`
}

// LoggingConfig contains log settings.
type LoggingConfig struct {
	// Level is one of info, debug, trace, warn, error.
	Level string `yaml:"level"`
}

// Default returns a Config with the documented defaults.
func Default() *Config {
	return &Config{
		Sweep:      montecarlo.DefaultConfig(),
		Workers:    1,
		Confidence: montecarlo.DefaultConfidence,
		Output: OutputConfig{
			CSV:  "stats.csv",
			Plot: "plot.png",
		},
		Logging: LoggingConfig{Level: "info"},
	}
}

// Load builds a Config from defaults, the optional YAML file at path and
// the environment. An empty path skips the file.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		fileCfg, err := LoadFromFile(path)
		if err != nil {
			return nil, fmt.Errorf("loading config file: %w", err)
		}
		cfg = fileCfg
	}
	if err := applyEnvOverrides(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFromFile loads configuration from a specific YAML file. Keys absent
// from the file keep their defaults.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}
	return cfg, nil
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if err := c.Sweep.Validate(); err != nil {
		return err
	}
	if c.Workers < 1 {
		return fmt.Errorf("workers must be >= 1, got %d", c.Workers)
	}
	if math.IsNaN(c.Confidence) || c.Confidence <= 0 || c.Confidence >= 1 {
		return fmt.Errorf("confidence must be between 0 and 1 exclusive, got %g", c.Confidence)
	}
	if c.Output.Plot != "" {
		if _, err := report.ChartFormat(c.Output.Plot); err != nil {
			return fmt.Errorf("output.plot: %w", err)
		}
	}
	if !logging.ValidLevel(c.Logging.Level) {
		return fmt.Errorf("invalid log level: %s (valid: info, debug, trace, warn, error)", c.Logging.Level)
	}
	return nil
}

// applyEnvOverrides applies environment variable overrides to cfg.
func applyEnvOverrides(cfg *Config) error {
	ints := []struct {
		key string
		dst *int
	}{
		{EnvRows, &cfg.Sweep.Rows},
		{EnvCols, &cfg.Sweep.Cols},
		{EnvSteps, &cfg.Sweep.Steps},
		{EnvSize, &cfg.Sweep.Size},
		{EnvWorkers, &cfg.Workers},
	}
	for _, e := range ints {
		v := os.Getenv(e.key)
		if v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: invalid integer %q: %w", e.key, v, err)
		}
		*e.dst = n
	}

	if v := os.Getenv(EnvSeed); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%s: invalid integer %q: %w", EnvSeed, v, err)
		}
		cfg.Seed = n
	}
	if v := os.Getenv(EnvConfidence); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("%s: invalid number %q: %w", EnvConfidence, v, err)
		}
		cfg.Confidence = f
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.Logging.Level = v
	}
	return nil
}
