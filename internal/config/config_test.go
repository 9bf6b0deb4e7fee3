// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aclements/go-vumeter/meter"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "meter.yaml")
	require.NoError(t, os.WriteFile(p, []byte(content), 0o600))
	return p
}

func TestDefault(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, meter.DefaultRange, cfg.Meter.Range())
	assert.Equal(t, meter.DefaultParts, cfg.Meter.Parts)
	assert.Empty(t, cfg.Meter.Ladder)
	assert.Equal(t, DefaultLabelFormat, cfg.Render.LabelFormat)
}

func TestLoadPartial(t *testing.T) {
	p := writeConfig(t, `meter:
  parts: 7
`)
	cfg, err := Load(p)
	require.NoError(t, err)
	assert.Equal(t, 7, cfg.Meter.Parts)
	assert.Equal(t, -70.0, cfg.Meter.Min)
	assert.Equal(t, DefaultWidth, cfg.Render.Width)
	assert.Equal(t, DefaultHeight, cfg.Render.Height)
}

func TestLoadFull(t *testing.T) {
	p := writeConfig(t, `meter:
  min: -60
  max: -6
  parts: 12
  ladder: [-40, -20, -10]
render:
  width: 80
  height: 300
  font_size: 9
  label_format: "%.0f"
  warp: log
`)
	cfg, err := Load(p)
	require.NoError(t, err)
	assert.Equal(t, meter.Range{Min: -60, Max: -6}, cfg.Meter.Range())
	assert.Equal(t, 12, cfg.Meter.Parts)
	assert.Equal(t, []float64{-40, -20, -10}, cfg.Meter.Ladder)
	assert.Equal(t, RenderConfig{Width: 80, Height: 300, FontSize: 9, LabelFormat: "%.0f", Warp: WarpLog}, cfg.Render)
}

func TestLoadErrors(t *testing.T) {
	for name, content := range map[string]string{
		"zero parts":     "meter:\n  parts: 0\n",
		"empty range":    "meter:\n  min: 0\n  max: 0\n",
		"infinite range": "meter:\n  min: -.inf\n",
		"bad ladder":     "meter:\n  ladder: [-3, -6]\n",
		"bad size":       "render:\n  width: -1\n",
		"bad font":       "render:\n  font_size: 0\n",
		"bad warp":       "render:\n  warp: cubic\n",
		"bad yaml":       "meter: [\n",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := Load(writeConfig(t, content))
			assert.Error(t, err)
		})
	}

	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
