// Package config loads the engine's tuning file: detector tolerances and
// per-style safety thresholds. Files may be YAML or JSON; YAML is tried
// first. Everything has a default, so running without a file is normal.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"stocksignal/chartpattern"
	"stocksignal/safety"
)

// Config is the full tuning file.
type Config struct {
	Detector DetectorConfig         `json:"detector" yaml:"detector"`
	Safety   map[string]StyleConfig `json:"safety" yaml:"safety"`
}

// DetectorConfig tunes the chart-pattern detectors.
type DetectorConfig struct {
	ExtremaWindow     int     `json:"extrema_window" yaml:"extrema_window"`
	ShoulderTolerance float64 `json:"shoulder_tolerance" yaml:"shoulder_tolerance"`
	DoubleTolerance   float64 `json:"double_tolerance" yaml:"double_tolerance"`
	FlatSlope         float64 `json:"flat_slope" yaml:"flat_slope"`
	TrendSlope        float64 `json:"trend_slope" yaml:"trend_slope"`
}

// StyleConfig tunes one investment style's safety thresholds.
type StyleConfig struct {
	SurgeThreshold      float64 `json:"surge_threshold" yaml:"surge_threshold"`
	DeclineThreshold    float64 `json:"decline_threshold" yaml:"decline_threshold"`
	DeviationUpperBound float64 `json:"deviation_upper_bound" yaml:"deviation_upper_bound"`
	SkipOverheatCheck   bool    `json:"skip_overheat_check" yaml:"skip_overheat_check"`
}

// Default mirrors the packages' built-in constants.
func Default() *Config {
	cfg := &Config{
		Detector: DetectorConfig{
			ExtremaWindow:     chartpattern.ExtremaWindow,
			ShoulderTolerance: chartpattern.ShoulderTolerance,
			DoubleTolerance:   chartpattern.DoubleTolerance,
			FlatSlope:         chartpattern.FlatSlope,
			TrendSlope:        chartpattern.TrendSlope,
		},
		Safety: map[string]StyleConfig{},
	}
	for _, s := range []safety.Style{safety.Conservative, safety.Balanced, safety.Aggressive, safety.Default} {
		t := safety.ThresholdsFor(s)
		cfg.Safety[string(s)] = StyleConfig{
			SurgeThreshold:      t.SurgeThreshold,
			DeclineThreshold:    t.DeclineThreshold,
			DeviationUpperBound: t.DeviationUpperBound,
			SkipOverheatCheck:   t.SkipOverheatCheck,
		}
	}
	return cfg
}

// LoadFromFile reads and validates a config. YAML is tried first, then
// JSON, matching whichever the file actually is.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		if jerr := json.Unmarshal(data, cfg); jerr != nil {
			return nil, fmt.Errorf("parse config (tried YAML and JSON): %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// SaveToFile writes the config as YAML, or JSON for a .json path.
func (c *Config) SaveToFile(path string) error {
	var data []byte
	var err error
	if strings.HasSuffix(path, ".json") {
		data, err = json.MarshalIndent(c, "", "  ")
	} else {
		data, err = yaml.Marshal(c)
	}
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}
	return nil
}

// Validate checks the tuning values are sane.
func (c *Config) Validate() error {
	if c.Detector.ExtremaWindow < 1 {
		return fmt.Errorf("detector.extrema_window must be at least 1")
	}
	if c.Detector.ShoulderTolerance <= 0 || c.Detector.ShoulderTolerance >= 1 {
		return fmt.Errorf("detector.shoulder_tolerance must be in (0, 1)")
	}
	if c.Detector.DoubleTolerance <= 0 || c.Detector.DoubleTolerance >= 1 {
		return fmt.Errorf("detector.double_tolerance must be in (0, 1)")
	}
	if c.Detector.FlatSlope <= 0 || c.Detector.TrendSlope <= 0 {
		return fmt.Errorf("detector slopes must be positive")
	}
	for name, s := range c.Safety {
		if s.SurgeThreshold < 0 {
			return fmt.Errorf("safety.%s.surge_threshold must not be negative", name)
		}
		if s.DeclineThreshold > 0 {
			return fmt.Errorf("safety.%s.decline_threshold must not be positive", name)
		}
	}
	return nil
}

// Apply pushes the tuning into the engine packages. Call once at startup,
// before any analysis runs.
func (c *Config) Apply() {
	chartpattern.ExtremaWindow = c.Detector.ExtremaWindow
	chartpattern.ShoulderTolerance = c.Detector.ShoulderTolerance
	chartpattern.DoubleTolerance = c.Detector.DoubleTolerance
	chartpattern.FlatSlope = c.Detector.FlatSlope
	chartpattern.TrendSlope = c.Detector.TrendSlope

	for name, s := range c.Safety {
		safety.Override(safety.Style(name), safety.Thresholds{
			SurgeThreshold:      s.SurgeThreshold,
			DeclineThreshold:    s.DeclineThreshold,
			DeviationUpperBound: s.DeviationUpperBound,
			SkipOverheatCheck:   s.SkipOverheatCheck,
		})
	}
}
