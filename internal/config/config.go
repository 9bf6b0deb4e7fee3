// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config loads meter profiles.
//
// A profile is a YAML file with two sections:
//
//	meter:
//	  min: -70       # quietest level, dB
//	  max: 0         # loudest level, dB
//	  parts: 10      # number of divisions
//	  ladder: [...]  # optional segment thresholds, dB, ascending
//	render:
//	  width: 120
//	  height: 420
//	  font_size: 11
//	  label_format: "%.1f"
//	  warp: sqrt     # or "log"
//
// Fields missing from the file keep their defaults.
package config

import (
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/aclements/go-vumeter/meter"
)

// Default render settings.
const (
	DefaultWidth       = 120
	DefaultHeight      = 420
	DefaultFontSize    = 11
	DefaultLabelFormat = "%.1f"
)

// Scale warps for the drawn meter.
const (
	WarpSqrt = "sqrt"
	WarpLog  = "log"
)

// Config is a meter profile.
type Config struct {
	Meter  MeterConfig  `yaml:"meter"`
	Render RenderConfig `yaml:"render"`
}

// MeterConfig describes the range being divided.
type MeterConfig struct {
	Min   float64 `yaml:"min"`
	Max   float64 `yaml:"max"`
	Parts int     `yaml:"parts"`

	// Ladder overrides the segment thresholds. If empty, the
	// division's own breakpoints are used.
	Ladder []float64 `yaml:"ladder"`
}

// RenderConfig controls the drawn scale.
type RenderConfig struct {
	Width       int     `yaml:"width"`
	Height      int     `yaml:"height"`
	FontSize    float64 `yaml:"font_size"`
	LabelFormat string  `yaml:"label_format"`

	// Warp is WarpSqrt or WarpLog.
	Warp string `yaml:"warp"`
}

// Range returns the meter range.
func (m MeterConfig) Range() meter.Range {
	return meter.Range{Min: m.Min, Max: m.Max}
}

// Default returns the -70 dB to 0 dB, 10 part profile.
func Default() *Config {
	return &Config{
		Meter: MeterConfig{
			Min:   meter.DefaultRange.Min,
			Max:   meter.DefaultRange.Max,
			Parts: meter.DefaultParts,
		},
		Render: RenderConfig{
			Width:       DefaultWidth,
			Height:      DefaultHeight,
			FontSize:    DefaultFontSize,
			LabelFormat: DefaultLabelFormat,
			Warp:        WarpSqrt,
		},
	}
}

// Load reads the profile at path on top of Default and validates it.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %q: %w", path, err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse %q: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the profile for values the meter cannot use.
func (c *Config) Validate() error {
	m := c.Meter
	if math.IsNaN(m.Min) || math.IsInf(m.Min, 0) || math.IsNaN(m.Max) || math.IsInf(m.Max, 0) {
		return fmt.Errorf("meter range [%v, %v] must be finite", m.Min, m.Max)
	}
	if m.Min == m.Max {
		return fmt.Errorf("meter range [%v, %v] is empty", m.Min, m.Max)
	}
	if m.Parts <= 0 {
		return fmt.Errorf("meter.parts %d must be positive", m.Parts)
	}
	if err := meter.Ladder(m.Ladder).Validate(); err != nil {
		return err
	}

	r := c.Render
	if r.Width <= 0 || r.Height <= 0 {
		return fmt.Errorf("render size %dx%d must be positive", r.Width, r.Height)
	}
	if r.FontSize <= 0 {
		return fmt.Errorf("render.font_size %v must be positive", r.FontSize)
	}
	switch r.Warp {
	case WarpSqrt, WarpLog:
	default:
		return fmt.Errorf("render.warp %q unknown: want %s|%s", r.Warp, WarpSqrt, WarpLog)
	}
	return nil
}
