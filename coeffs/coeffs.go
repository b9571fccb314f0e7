// Package coeffs loads the per-wavelength coefficient tables of the
// spectral model from CSV.
//
// The file has one row per wavelength bin and the header
//
//	wavelength,extraterrestrial,ozone,uniform_gas,water_vapor
//
// with wavelengths in micron and extraterrestrial irradiance in W/m2/micron.
package coeffs

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/gocarina/gocsv"

	"spectral_irradiance/spectral"
)

// Row is one wavelength bin.
type Row struct {
	Wavelength       float64 `csv:"wavelength"`       // 波長, micron
	Extraterrestrial float64 `csv:"extraterrestrial"` // 大気外分光日射量, W/m2/micron
	Ozone            float64 `csv:"ozone"`            // オゾン吸収係数
	UniformGas       float64 `csv:"uniform_gas"`      // 均一混合気体吸収係数
	WaterVapor       float64 `csv:"water_vapor"`      // 水蒸気吸収係数
}

// Header lists the required columns.
var Header = []string{"wavelength", "extraterrestrial", "ozone", "uniform_gas", "water_vapor"}

// Load reads coefficient rows from r. Unreadable or incomplete data is
// reported as spectral.ErrDataUnavailable.
func Load(r io.Reader) (spectral.Tables, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return spectral.Tables{}, fmt.Errorf("%w: %v", spectral.ErrDataUnavailable, err)
	}

	if err := checkHeader(data); err != nil {
		return spectral.Tables{}, err
	}

	var rows []*Row
	if err := gocsv.UnmarshalBytes(data, &rows); err != nil {
		return spectral.Tables{}, fmt.Errorf("%w: %v", spectral.ErrDataUnavailable, err)
	}

	if len(rows) == 0 {
		return spectral.Tables{}, fmt.Errorf("%w: no coefficient rows", spectral.ErrDataUnavailable)
	}

	return FromRows(rows), nil
}

// LoadFile reads the coefficient tables stored at path.
func LoadFile(path string) (spectral.Tables, error) {
	file, err := os.Open(path)
	if err != nil {
		return spectral.Tables{}, fmt.Errorf("%w: %v", spectral.ErrDataUnavailable, err)
	}
	defer file.Close()

	return Load(file)
}

// FromRows splits rows into column tables.
func FromRows(rows []*Row) spectral.Tables {
	n := len(rows)
	t := spectral.Tables{
		Wavelength:       make([]float64, n),
		Extraterrestrial: make([]float64, n),
		Ozone:            make([]float64, n),
		UniformGas:       make([]float64, n),
		WaterVapor:       make([]float64, n),
	}
	for i, row := range rows {
		t.Wavelength[i] = row.Wavelength
		t.Extraterrestrial[i] = row.Extraterrestrial
		t.Ozone[i] = row.Ozone
		t.UniformGas[i] = row.UniformGas
		t.WaterVapor[i] = row.WaterVapor
	}
	return t
}

func checkHeader(data []byte) error {
	header, err := csv.NewReader(bytes.NewReader(data)).Read()
	if err == io.EOF {
		return fmt.Errorf("%w: empty coefficient file", spectral.ErrDataUnavailable)
	}
	if err != nil {
		return fmt.Errorf("%w: %v", spectral.ErrDataUnavailable, err)
	}

	have := make(map[string]bool, len(header))
	for _, h := range header {
		have[strings.TrimSpace(h)] = true
	}

	var missing []string
	for _, h := range Header {
		if !have[h] {
			missing = append(missing, h)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: missing columns %s", spectral.ErrDataUnavailable, strings.Join(missing, ", "))
	}
	return nil
}
