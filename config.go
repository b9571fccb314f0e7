package main

import (
	"errors"
	"fmt"
	"os"

	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"

	"spectral_irradiance/cloudcover"
	"spectral_irradiance/humidity"
	"spectral_irradiance/spectral"
)

// Config is the YAML configuration of a run.
type Config struct {
	Ozone               float64          `yaml:"ozone"`                 // オゾン量, cm
	PrecipitableWater   float64          `yaml:"precipitable_water"`    // 可降水量, cm
	AerosolOpticalDepth float64          `yaml:"aerosol_optical_depth"` // 波長0.5micronにおけるエアロゾル光学的厚さ, -
	Pressure            float64          `yaml:"pressure"`              // 地表気圧, hPa
	Tables              string           `yaml:"tables"`                // 係数テーブルCSVのパス
	Site                string           `yaml:"site"`                  // 地点のプリセット名
	Latitude            float64          `yaml:"latitude"`              // 緯度, degree
	Longitude           float64          `yaml:"longitude"`             // 経度, degree
	CloudCover          CloudCoverConfig `yaml:"cloud_cover"`
	Surface             *SurfaceConfig   `yaml:"surface"` // 指定した場合は可降水量を地表の観測値から求める
}

// SurfaceConfig is a surface observation used to estimate precipitable water.
type SurfaceConfig struct {
	Temperature      float64  `yaml:"temperature"`       // 空気温度, degree C
	RelativeHumidity *float64 `yaml:"relative_humidity"` // 相対湿度, %
	AbsoluteHumidity *float64 `yaml:"absolute_humidity"` // 絶対湿度, kg/kgDA
}

// CloudCoverConfig enables the cloud correction and locates its grid.
type CloudCoverConfig struct {
	Enabled bool       `yaml:"enabled"`
	Grid    string     `yaml:"grid"`
	Axes    AxesConfig `yaml:"axes"`
}

// AxesConfig describes a regular latitude/longitude grid.
type AxesConfig struct {
	LatStart float64 `yaml:"lat_start"`
	LatStep  float64 `yaml:"lat_step"`
	LatCount int     `yaml:"lat_count"`
	LonStart float64 `yaml:"lon_start"`
	LonStep  float64 `yaml:"lon_step"`
	LonCount int     `yaml:"lon_count"`
}

func (a AxesConfig) axes() cloudcover.Axes {
	return cloudcover.NewAxes(a.LatStart, a.LatStep, a.LatCount, a.LonStart, a.LonStep, a.LonCount)
}

func defaultConfig() *Config {
	p := spectral.DefaultParams()
	return &Config{
		Ozone:               p.Ozone,
		PrecipitableWater:   p.PrecipitableWater,
		AerosolOpticalDepth: p.AerosolOpticalDepth,
		Pressure:            spectral.StandardPressure,
		CloudCover: CloudCoverConfig{
			Axes: AxesConfig{
				LatStart: 89.95, LatStep: -0.1, LatCount: 1800,
				LonStart: -179.95, LonStep: 0.1, LonCount: 3600,
			},
		},
	}
}

// loadConfig reads path over the defaults. An empty path returns the
// defaults.
func loadConfig(path string) (*Config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	if cfg.Site != "" {
		lat, lon, err := Site(cfg.Site).location()
		if err != nil {
			return nil, err
		}
		cfg.Latitude, cfg.Longitude = lat, lon
	}

	if sf := cfg.Surface; sf != nil {
		w, err := humidity.Surface{
			Temperature:      sf.Temperature,
			RelativeHumidity: sf.RelativeHumidity,
			AbsoluteHumidity: sf.AbsoluteHumidity,
		}.PrecipitableWater(cfg.Pressure)
		if err != nil {
			return nil, err
		}
		cfg.PrecipitableWater = w
	}
	return cfg, nil
}

// Validate checks the fields a run cannot do without.
func (c *Config) Validate() error {
	var errs []error
	if c.Tables == "" {
		errs = append(errs, errors.New("tables: path is required"))
	}
	if c.Pressure <= 0 {
		errs = append(errs, fmt.Errorf("pressure: %g hPa is not positive", c.Pressure))
	}
	if c.CloudCover.Enabled {
		if c.CloudCover.Grid == "" {
			errs = append(errs, errors.New("cloud_cover.grid: path is required when cloud cover is enabled"))
		}
		if a := c.CloudCover.Axes; a.LatCount <= 0 || a.LonCount <= 0 {
			errs = append(errs, fmt.Errorf("cloud_cover.axes: %dx%d is not a grid", a.LatCount, a.LonCount))
		}
	}
	return multierr.Combine(errs...)
}

func (c *Config) params() spectral.Params {
	return spectral.Params{
		Ozone:               c.Ozone,
		PrecipitableWater:   c.PrecipitableWater,
		AerosolOpticalDepth: c.AerosolOpticalDepth,
	}
}
