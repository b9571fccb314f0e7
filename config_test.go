package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"spectral_irradiance/cloudcover"
	"spectral_irradiance/spectral"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := loadConfig("")
	require.NoError(t, err)

	assert.Equal(t, spectral.DefaultParams(), cfg.params())
	assert.Equal(t, spectral.StandardPressure, cfg.Pressure)
	assert.False(t, cfg.CloudCover.Enabled)
	assert.Equal(t, cloudcover.DefaultAxes(), cfg.CloudCover.Axes.axes())

	// テーブルのパスが無い
	assert.Error(t, cfg.Validate())
}

func TestLoadConfigFile(t *testing.T) {
	cfg, err := loadConfig(filepath.Join("testdata", "site.yaml"))
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, spectral.Params{Ozone: 0.3, PrecipitableWater: 1.5, AerosolOpticalDepth: 0.1}, cfg.params())
	assert.Equal(t, 1000.0, cfg.Pressure)
	assert.Equal(t, "testdata/coeffs.csv", cfg.Tables)
	assert.Equal(t, 0.5, cfg.Latitude)
	assert.Equal(t, 0.5, cfg.Longitude)
	assert.True(t, cfg.CloudCover.Enabled)
	assert.Equal(t, cloudcover.NewAxes(1.5, -1, 3, -1.5, 1, 4), cfg.CloudCover.Axes.axes())
}

func TestLoadConfigSitePreset(t *testing.T) {
	cfg, err := loadConfig(filepath.Join("testdata", "preset.yaml"))
	require.NoError(t, err)

	assert.Equal(t, 34.66, cfg.Latitude)
	assert.Equal(t, 133.92, cfg.Longitude)
	assert.Equal(t, spectral.DefaultParams(), cfg.params())
}

func TestLoadConfigErrors(t *testing.T) {
	dir := t.TempDir()
	write := func(name, body string) string {
		p := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(p, []byte(body), 0644))
		return p
	}

	_, err := loadConfig(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)

	_, err = loadConfig(write("bad.yaml", "ozone: [1, 2\n"))
	assert.Error(t, err)

	_, err = loadConfig(write("site.yaml", "site: atlantis\n"))
	assert.ErrorContains(t, err, "unknown site")
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		message string
	}{
		{"valid", func(c *Config) {}, ""},
		{"missing tables", func(c *Config) { c.Tables = "" }, "tables"},
		{"zero pressure", func(c *Config) { c.Pressure = 0 }, "pressure"},
		{"cloud without grid", func(c *Config) { c.CloudCover.Enabled = true }, "cloud_cover.grid"},
		{"cloud with empty axes", func(c *Config) {
			c.CloudCover.Enabled = true
			c.CloudCover.Grid = "grid.csv"
			c.CloudCover.Axes.LonCount = 0
		}, "cloud_cover.axes"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := defaultConfig()
			cfg.Tables = "coeffs.csv"
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.message == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.message)
		})
	}
}

func TestLoadConfigSurfaceObservation(t *testing.T) {
	cfg, err := loadConfig(filepath.Join("testdata", "surface.yaml"))
	require.NoError(t, err)
	assert.InEpsilon(t, 2.966302874185648, cfg.PrecipitableWater, 1e-12)

	p := filepath.Join(t.TempDir(), "surface.yaml")
	require.NoError(t, os.WriteFile(p, []byte("surface:\n  temperature: 25\n"), 0644))
	_, err = loadConfig(p)
	assert.ErrorContains(t, err, "no humidity")
}
