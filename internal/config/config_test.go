// SPDX-License-Identifier: MIT
package config

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/percolath/montecarlo"
	"github.com/katalvlaran/percolath/report"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, montecarlo.Config{Rows: 10, Cols: 10, Steps: 100, Size: 1000}, cfg.Sweep)
	assert.Zero(t, cfg.Seed)
	assert.Equal(t, 1, cfg.Workers)
	assert.Equal(t, 0.95, cfg.Confidence)
	assert.Equal(t, "stats.csv", cfg.Output.CSV)
	assert.Equal(t, "plot.png", cfg.Output.Plot)
	assert.Empty(t, cfg.Output.HTML)
	assert.Equal(t, "info", cfg.Logging.Level)
	require.NoError(t, cfg.Validate())
}

func TestLoadFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "percolath.yaml")

	configContent := `
sweep:
  rows: 20
  cols: 30
  steps: 50
seed: 7
workers: 4
output:
  csv: out/stats.csv
  html: out/plot.html
  band: true
logging:
  level: debug
`
	require.NoError(t, os.WriteFile(configPath, []byte(configContent), 0o644))

	cfg, err := LoadFromFile(configPath)
	require.NoError(t, err)

	assert.Equal(t, 20, cfg.Sweep.Rows)
	assert.Equal(t, 30, cfg.Sweep.Cols)
	assert.Equal(t, 50, cfg.Sweep.Steps)
	assert.Equal(t, 1000, cfg.Sweep.Size, "absent keys keep defaults")
	assert.Equal(t, int64(7), cfg.Seed)
	assert.Equal(t, 4, cfg.Workers)
	assert.Equal(t, "out/stats.csv", cfg.Output.CSV)
	assert.Equal(t, "plot.png", cfg.Output.Plot)
	assert.Equal(t, "out/plot.html", cfg.Output.HTML)
	assert.True(t, cfg.Output.Band)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoadFromFile_Errors(t *testing.T) {
	_, err := LoadFromFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("sweep: [unclosed"), 0o644))
	_, err = LoadFromFile(bad)
	require.ErrorContains(t, err, "parsing config file")
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv(EnvRows, "6")
	t.Setenv(EnvSize, "25")
	t.Setenv(EnvSeed, "-3")
	t.Setenv(EnvWorkers, "2")
	t.Setenv(EnvConfidence, "0.9")
	t.Setenv(EnvLogLevel, "trace")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 6, cfg.Sweep.Rows)
	assert.Equal(t, 10, cfg.Sweep.Cols)
	assert.Equal(t, 25, cfg.Sweep.Size)
	assert.Equal(t, int64(-3), cfg.Seed)
	assert.Equal(t, 2, cfg.Workers)
	assert.Equal(t, 0.9, cfg.Confidence)
	assert.Equal(t, "trace", cfg.Logging.Level)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "percolath.yaml")
	require.NoError(t, os.WriteFile(path, []byte("sweep:\n  steps: 40\n"), 0o644))
	t.Setenv(EnvSteps, "12")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 12, cfg.Sweep.Steps)
}

func TestLoad_InvalidEnv(t *testing.T) {
	t.Setenv(EnvSteps, "many")
	_, err := Load("")
	require.ErrorContains(t, err, EnvSteps)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero steps", func(c *Config) { c.Sweep.Steps = 0 }},
		{"zero size", func(c *Config) { c.Sweep.Size = 0 }},
		{"zero workers", func(c *Config) { c.Workers = 0 }},
		{"confidence one", func(c *Config) { c.Confidence = 1 }},
		{"confidence NaN", func(c *Config) { c.Confidence = math.NaN() }},
		{"plot bmp", func(c *Config) { c.Output.Plot = "plot.bmp" }},
		{"bad level", func(c *Config) { c.Logging.Level = "loud" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}

	cfg := Default()
	cfg.Sweep.Rows = 0
	assert.ErrorIs(t, cfg.Validate(), montecarlo.ErrInvalidConfig)

	cfg = Default()
	cfg.Output.Plot = "chart.BMP"
	assert.ErrorIs(t, cfg.Validate(), report.ErrUnknownFormat)

	cfg = Default()
	cfg.Output.Plot = ""
	assert.NoError(t, cfg.Validate(), "an empty plot path disables the chart")
}
