package cmd

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/search-sim/search-sim/sim/chart"
)

// ChartConfig mirrors the optional chart YAML. Pointer fields distinguish
// "not set" from legitimate zero values (y_min: 0 must stay an override).
type ChartConfig struct {
	Title  string   `yaml:"title"`
	XLabel string   `yaml:"x_label"`
	YLabel string   `yaml:"y_label"`
	XMin   *float64 `yaml:"x_min"`
	XMax   *float64 `yaml:"x_max"`
	YMin   *float64 `yaml:"y_min"`
	YMax   *float64 `yaml:"y_max"`
	LogX   *bool    `yaml:"log_x"`
}

// loadChartConfig parses a chart YAML and applies its overrides on top of
// the default figure configuration. Uses strict field checking so a typo in
// the file fails loudly instead of being silently ignored.
func loadChartConfig(path string) (chart.Config, error) {
	cfg := chart.DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading chart config: %w", err)
	}

	var overrides ChartConfig
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&overrides); err != nil {
		return cfg, fmt.Errorf("parsing chart config %s: %w", path, err)
	}

	if overrides.Title != "" {
		cfg.Title = overrides.Title
	}
	if overrides.XLabel != "" {
		cfg.XLabel = overrides.XLabel
	}
	if overrides.YLabel != "" {
		cfg.YLabel = overrides.YLabel
	}
	if overrides.XMin != nil {
		cfg.XMin = *overrides.XMin
	}
	if overrides.XMax != nil {
		cfg.XMax = *overrides.XMax
	}
	if overrides.YMin != nil {
		cfg.YMin = *overrides.YMin
	}
	if overrides.YMax != nil {
		cfg.YMax = *overrides.YMax
	}
	if overrides.LogX != nil {
		cfg.LogX = *overrides.LogX
	}
	return cfg, nil
}
