package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/search-sim/search-sim/sim/chart"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "chart.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadChartConfig_OverridesApplied(t *testing.T) {
	path := writeConfig(t, `
title: "mnist search"
x_max: 500
y_max: 5.0
log_x: false
`)

	cfg, err := loadChartConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "mnist search", cfg.Title)
	assert.Equal(t, 500.0, cfg.XMax)
	assert.Equal(t, 5.0, cfg.YMax)
	assert.False(t, cfg.LogX)

	// Untouched fields keep their defaults
	def := chart.DefaultConfig()
	assert.Equal(t, def.XLabel, cfg.XLabel)
	assert.Equal(t, def.XMin, cfg.XMin)
	assert.Equal(t, def.YMin, cfg.YMin)
}

func TestLoadChartConfig_ZeroIsAnOverride(t *testing.T) {
	path := writeConfig(t, "y_min: 0\nx_min: 1\n")

	cfg, err := loadChartConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 0.0, cfg.YMin)
	assert.Equal(t, 1.0, cfg.XMin)
}

func TestLoadChartConfig_UnknownFieldFails(t *testing.T) {
	// Strict parsing: typos must cause errors, not silent defaults
	path := writeConfig(t, "titel: oops\n")

	_, err := loadChartConfig(path)
	assert.Error(t, err)
}

func TestLoadChartConfig_MissingFile(t *testing.T) {
	_, err := loadChartConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
