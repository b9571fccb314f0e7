package main

import (
	"os"
	"path/filepath"
	"time"

	"github.com/gocarina/gocsv"

	"spectral_irradiance/internal/log"
	"spectral_irradiance/spectral"
)

// SpectrumRow is one wavelength bin of one query.
type SpectrumRow struct {
	Time             string  `csv:"time"`
	Zenith           float64 `csv:"zenith"`           // 太陽天頂角, degree
	Day              int     `csv:"day"`              // 年通算日
	Wavelength       float64 `csv:"wavelength"`       // 波長, micron
	Irradiance       float64 `csv:"irradiance"`       // 分光日射量, W/m2/micron
	Extraterrestrial float64 `csv:"extraterrestrial"` // 大気外分光日射量, W/m2/micron
	Rayleigh         float64 `csv:"tau_rayleigh"`
	Ozone            float64 `csv:"tau_ozone"`
	UniformGas       float64 `csv:"tau_uniform_gas"`
	WaterVapor       float64 `csv:"tau_water_vapor"`
	Aerosol          float64 `csv:"tau_aerosol"`
	Cloud            float64 `csv:"cloud_factor"`
}

// BroadbandRow is the integrated irradiance of one query.
type BroadbandRow struct {
	Time          string  `csv:"time"`
	Zenith        float64 `csv:"zenith"`         // 太陽天頂角, degree
	Day           int     `csv:"day"`            // 年通算日
	Pressure      float64 `csv:"pressure"`       // 地表気圧, hPa
	AirMass       float64 `csv:"air_mass"`       // 相対エアマス, -
	Broadband     float64 `csv:"broadband"`      // 直達日射量, W/m2
	EarthSun      float64 `csv:"earth_sun"`      // 地球太陽間距離の補正係数, -
	CloudFraction float64 `csv:"cloud_fraction"` // 雲量, -
}

// Recorder collects the results of the queries of a run.
type Recorder struct {
	wl        []float64
	e0        []float64
	spectra   []*SpectrumRow
	broadband []*BroadbandRow
}

func NewRecorder(m *spectral.Model) *Recorder {
	return &Recorder{
		wl: m.Wavelengths(),
		e0: m.Extraterrestrial(),
	}
}

/*
1回の計算結果を記録する。

	Args:
		t: 時刻（時刻指定が無い場合はゼロ値）
		q: 計算条件
		tr: 透過率の内訳
		e: 分光日射量, W/m2/micron, [N]
		bb: 直達日射量, W/m2
*/
func (r *Recorder) recording(t time.Time, q query, tr spectral.Transmittance, e []float64, bb float64) {
	ts := ""
	if !t.IsZero() {
		ts = t.UTC().Format(time.RFC3339)
	}

	for i := range e {
		r.spectra = append(r.spectra, &SpectrumRow{
			Time:             ts,
			Zenith:           q.zenith,
			Day:              q.day,
			Wavelength:       r.wl[i],
			Irradiance:       e[i],
			Extraterrestrial: r.e0[i],
			Rayleigh:         tr.Rayleigh[i],
			Ozone:            tr.Ozone[i],
			UniformGas:       tr.UniformGas[i],
			WaterVapor:       tr.WaterVapor[i],
			Aerosol:          tr.Aerosol[i],
			Cloud:            tr.Cloud[i],
		})
	}

	r.broadband = append(r.broadband, &BroadbandRow{
		Time:          ts,
		Zenith:        q.zenith,
		Day:           q.day,
		Pressure:      q.pressure,
		AirMass:       tr.AirMass,
		Broadband:     bb,
		EarthSun:      tr.EarthSun,
		CloudFraction: tr.CloudFraction,
	})
}

// save writes spectrum.csv and broadband.csv into dir.
func (r *Recorder) save(dir string) error {
	if err := writeRows(filepath.Join(dir, "spectrum.csv"), &r.spectra); err != nil {
		return err
	}
	return writeRows(filepath.Join(dir, "broadband.csv"), &r.broadband)
}

func writeRows(path string, rows interface{}) error {
	log.Infof("Save results to `%s`", path)

	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	if err := gocsv.MarshalFile(rows, file); err != nil {
		return err
	}
	return file.Close()
}
