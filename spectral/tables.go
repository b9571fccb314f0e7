package spectral

import (
	"errors"
	"fmt"

	"go.uber.org/multierr"
)

var (
	// ErrConfiguration is returned when coefficient tables are malformed or
	// not aligned to the wavelength grid.
	ErrConfiguration = errors.New("spectral: configuration error")

	// ErrDataUnavailable is returned when coefficient or cloud-cover data
	// cannot be located or parsed.
	ErrDataUnavailable = errors.New("spectral: data unavailable")
)

// Tables holds the per-wavelength coefficients of the model. Every slice is
// positionally aligned to Wavelength.
type Tables struct {
	Wavelength       []float64 // 波長, micron, [N]
	Extraterrestrial []float64 // 大気外分光日射量, W/m2/micron, [N]
	Ozone            []float64 // オゾン吸収係数, 1/cm, [N]
	UniformGas       []float64 // 均一混合気体吸収係数, [N]
	WaterVapor       []float64 // 水蒸気吸収係数, [N]
}

// Len returns the number of wavelength bins.
func (t Tables) Len() int {
	return len(t.Wavelength)
}

// Validate checks that all tables share the wavelength grid length and that
// the grid is positive and strictly increasing. All problems are reported
// together, wrapped in ErrConfiguration.
func (t Tables) Validate() error {
	n := len(t.Wavelength)
	if n == 0 {
		return fmt.Errorf("%w: empty wavelength grid", ErrConfiguration)
	}

	var err error
	for _, c := range []struct {
		name string
		data []float64
	}{
		{"extraterrestrial irradiance", t.Extraterrestrial},
		{"ozone absorption", t.Ozone},
		{"uniform gas absorption", t.UniformGas},
		{"water vapor absorption", t.WaterVapor},
	} {
		if len(c.data) != n {
			err = multierr.Append(err, fmt.Errorf("%s table has %d values, wavelength grid has %d", c.name, len(c.data), n))
		}
	}

	for i, wl := range t.Wavelength {
		if wl <= 0 {
			err = multierr.Append(err, fmt.Errorf("wavelength[%d] = %g is not positive", i, wl))
		}
		if i > 0 && wl <= t.Wavelength[i-1] {
			err = multierr.Append(err, fmt.Errorf("wavelength[%d] = %g is not greater than wavelength[%d] = %g", i, wl, i-1, t.Wavelength[i-1]))
		}
	}

	if err != nil {
		return fmt.Errorf("%w: %v", ErrConfiguration, err)
	}
	return nil
}

func (t Tables) clone() Tables {
	cp := func(s []float64) []float64 {
		ret := make([]float64, len(s))
		copy(ret, s)
		return ret
	}
	return Tables{
		Wavelength:       cp(t.Wavelength),
		Extraterrestrial: cp(t.Extraterrestrial),
		Ozone:            cp(t.Ozone),
		UniformGas:       cp(t.UniformGas),
		WaterVapor:       cp(t.WaterVapor),
	}
}
