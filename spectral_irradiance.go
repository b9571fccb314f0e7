package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"spectral_irradiance/cloudcover"
	"spectral_irradiance/coeffs"
	"spectral_irradiance/internal/log"
	"spectral_irradiance/solarpos"
	"spectral_irradiance/spectral"
)

// 1回の計算条件
type query struct {
	t        time.Time // 時刻（天頂角を直接指定した場合はゼロ値）
	zenith   float64   // 太陽天頂角, degree
	pressure float64   // 地表気圧, hPa
	day      int       // 年通算日
}

/*
計算条件の一覧を作成する。

	Args:
		cfg: 設定
		zenith: 太陽天頂角, degree
		day: 年通算日
		timeStr: 時刻 (RFC3339)。指定した場合は天頂角と年通算日を地点と時刻から求める。
		interval: 時間間隔。指定した場合は timeStr の日の0時から24時間分を計算する。
*/
func buildQueries(cfg *Config, zenith float64, day int, timeStr, interval string) ([]query, error) {
	if timeStr == "" {
		if interval != "" {
			return nil, fmt.Errorf("-interval requires -time")
		}
		return []query{{zenith: zenith, pressure: cfg.Pressure, day: day}}, nil
	}

	t, err := time.Parse(time.RFC3339, timeStr)
	if err != nil {
		return nil, fmt.Errorf("parse -time: %w", err)
	}

	times := []time.Time{t}
	if interval != "" {
		itv, err := IntervalFromString(interval)
		if err != nil {
			return nil, err
		}
		times = itv.steps(t)
	}

	qs := make([]query, len(times))
	for i, ti := range times {
		qs[i] = query{
			t:        ti,
			zenith:   solarpos.Zenith(ti, cfg.Latitude, cfg.Longitude),
			pressure: cfg.Pressure,
			day:      solarpos.DayOfYear(ti),
		}
	}
	return qs, nil
}

// buildModel loads the coefficient tables and, when enabled, resolves the
// cloud fraction at the configured site.
func buildModel(cfg *Config) (*spectral.Model, error) {
	log.Infof("Load coefficient tables from `%s`", cfg.Tables)
	tables, err := coeffs.LoadFile(cfg.Tables)
	if err != nil {
		return nil, err
	}

	opts := []spectral.Option{spectral.WithLogger(log.Unskipped())}
	if cfg.CloudCover.Enabled {
		log.Infof("Resolve cloud fraction at (%g, %g) from `%s`", cfg.Latitude, cfg.Longitude, cfg.CloudCover.Grid)
		opts = append(opts, spectral.WithCloudCover(cfg.Latitude, cfg.Longitude, cloudcover.FileResolver{
			Path: cfg.CloudCover.Grid,
			Axes: cfg.CloudCover.Axes.axes(),
		}))
	}

	return spectral.NewModel(cfg.params(), tables, opts...)
}

/*
分光日射量の計算処理の実行

	Args:
		cfg: 設定
		qs: 計算条件
		outputDir: 出力フォルダへのパス
*/
func run(cfg *Config, qs []query, outputDir string) error {
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return err
	}

	m, err := buildModel(cfg)
	if err != nil {
		return err
	}
	log.Infow("model ready",
		"ozone_cm", cfg.Ozone,
		"precipitable_water_cm", cfg.PrecipitableWater,
		"aerosol_optical_depth", cfg.AerosolOpticalDepth,
		"bins", m.Len(),
		"cloud_fraction", m.CloudFraction(),
	)

	rec := NewRecorder(m)
	for _, q := range qs {
		// 太陽が地平線下の場合は計算しない
		if spectral.Degenerate(q.zenith) {
			log.Debugf("skip zenith %.3f (below horizon)", q.zenith)
			continue
		}

		tr := m.Transmittances(q.zenith, q.pressure, q.day)
		e := m.IrradianceFrom(tr)
		bb, err := m.Broadband(e)
		if err != nil {
			return err
		}

		mean := tr.Mean()
		log.Infow("computed",
			"zenith", q.zenith,
			"day", q.day,
			"air_mass", tr.AirMass,
			"broadband_w_m2", bb,
			"mean_tau_rayleigh", mean.Rayleigh,
			"mean_tau_aerosol", mean.Aerosol,
		)
		rec.recording(q.t, q, tr, e, bb)
	}

	return rec.save(outputDir)
}

func main() {
	var config_path string
	flag.StringVar(&config_path, "config", "", "設定ファイル (YAML)")

	var output_data_dir string
	flag.StringVar(&output_data_dir, "o", ".", "出力フォルダ")

	var zenith float64
	flag.Float64Var(&zenith, "zenith", 0, "太陽天頂角, degree")

	var day int
	flag.IntVar(&day, "day", 1, "年通算日 (1..365)")

	var pressure float64
	flag.Float64Var(&pressure, "pressure", 0, "地表気圧, hPa。0の場合は設定ファイルの値を使用します。")

	var time_str string
	flag.StringVar(&time_str, "time", "", "時刻 (RFC3339)。指定した場合は地点の緯度経度から天頂角と年通算日を求めます。")

	var interval string
	flag.StringVar(&interval, "interval", "", "時間間隔 (1h, 30m, 15m)。指定した場合は -time の日を1日分計算します。")

	var debug bool
	flag.BoolVar(&debug, "debug", false, "デバッグログを出力します。")

	// 引数を受け取る
	flag.Parse()

	if err := log.Init(debug); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer log.Sync()

	cfg, err := loadConfig(config_path)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	if pressure > 0 {
		cfg.Pressure = pressure
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid config: %v", err)
	}

	qs, err := buildQueries(cfg, zenith, day, time_str, interval)
	if err != nil {
		log.Fatalf("%v", err)
	}

	start := time.Now()

	if err := run(cfg, qs, output_data_dir); err != nil {
		log.Fatalf("%v", err)
	}

	log.Infof("elapsed_time: %v", time.Since(start))
}
