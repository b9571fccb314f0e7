// Package spectral implements the Bird & Hulstrom (1986) simple spectral
// model for direct-beam solar irradiance at the surface.
//
// A Model is immutable after NewModel returns; its query methods may be
// called concurrently. Zenith angles at or beyond the horizon are not
// rejected: the air-mass formulas degenerate there and the result carries
// NaN, ±Inf or meaningless values. Use Degenerate to screen inputs.
package spectral

import (
	"fmt"

	"github.com/soniakeys/unit"
	"go.uber.org/zap"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/integrate"
)

// Params are the atmospheric constituents of a model.
type Params struct {
	Ozone               float64 // オゾン量, cm
	PrecipitableWater   float64 // 可降水量, cm
	AerosolOpticalDepth float64 // 波長0.5micronにおけるエアロゾル光学的厚さ, - (0.01 清浄 ~ 0.4)
}

// DefaultParams returns 0.28 cm ozone, 2 cm precipitable water and an
// aerosol optical depth of 0.12.
func DefaultParams() Params {
	return Params{
		Ozone:               0.28,
		PrecipitableWater:   2.0,
		AerosolOpticalDepth: 0.12,
	}
}

// FractionResolver looks up the cloud fraction at a location.
type FractionResolver interface {
	Fraction(lat, lon float64) (float64, error)
}

// CloudContext is the resolved cloud cover of a model.
type CloudContext struct {
	Latitude  float64 // 緯度, degree
	Longitude float64 // 経度, degree
	Fraction  float64 // 雲量, -
}

type cloudSource struct {
	lat, lon float64
	resolver FractionResolver
	fixed    float64
	known    bool // fixed が指定されている
}

type options struct {
	logger *zap.SugaredLogger
	cloud  *cloudSource
}

// Option configures NewModel.
type Option func(o *options)

// WithLogger sets the logger used at construction.
func WithLogger(l *zap.SugaredLogger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithCloudCover enables the cloud correction, resolving the fraction at
// lat, lon through r once during NewModel.
func WithCloudCover(lat, lon float64, r FractionResolver) Option {
	return func(o *options) {
		o.cloud = &cloudSource{lat: lat, lon: lon, resolver: r}
	}
}

// WithCloudFraction enables the cloud correction with a known fraction.
func WithCloudFraction(lat, lon, fraction float64) Option {
	return func(o *options) {
		o.cloud = &cloudSource{lat: lat, lon: lon, fixed: fraction, known: true}
	}
}

// Model evaluates the spectral model for a fixed atmosphere and table set.
type Model struct {
	params Params
	tables Tables
	cloud  *CloudContext // nil: 雲量補正無し
}

// NewModel validates and copies t, resolves the cloud context if one was
// requested and returns the model. Table problems are reported as
// ErrConfiguration, resolver failures as ErrDataUnavailable.
func NewModel(p Params, t Tables, opts ...Option) (*Model, error) {
	o := options{logger: zap.NewNop().Sugar()}
	for _, fn := range opts {
		fn(&o)
	}

	if err := t.Validate(); err != nil {
		return nil, err
	}

	m := &Model{
		params: p,
		tables: t.clone(),
	}

	if c := o.cloud; c != nil {
		cf := c.fixed
		if !c.known {
			if c.resolver == nil {
				return nil, fmt.Errorf("%w: no cloud fraction resolver for (%g, %g)", ErrDataUnavailable, c.lat, c.lon)
			}
			var err error
			cf, err = c.resolver.Fraction(c.lat, c.lon)
			if err != nil {
				return nil, fmt.Errorf("%w: cloud fraction at (%g, %g): %v", ErrDataUnavailable, c.lat, c.lon, err)
			}
		}
		m.cloud = &CloudContext{Latitude: c.lat, Longitude: c.lon, Fraction: cf}
	}

	o.logger.Debugw("spectral model configured",
		"ozone_cm", p.Ozone,
		"precipitable_water_cm", p.PrecipitableWater,
		"aerosol_optical_depth", p.AerosolOpticalDepth,
		"bins", t.Len(),
		"cloud_cover", m.cloud != nil,
		"cloud_fraction", m.CloudFraction(),
	)

	return m, nil
}

// Params returns the atmospheric constituents.
func (m *Model) Params() Params {
	return m.params
}

// Len returns the number of wavelength bins.
func (m *Model) Len() int {
	return m.tables.Len()
}

// Wavelengths returns a copy of the wavelength grid, micron.
func (m *Model) Wavelengths() []float64 {
	ret := make([]float64, m.tables.Len())
	copy(ret, m.tables.Wavelength)
	return ret
}

// Extraterrestrial returns a copy of the extraterrestrial spectrum, W/m2/micron.
func (m *Model) Extraterrestrial() []float64 {
	ret := make([]float64, m.tables.Len())
	copy(ret, m.tables.Extraterrestrial)
	return ret
}

// Cloud returns the resolved cloud context and whether the correction is on.
func (m *Model) Cloud() (CloudContext, bool) {
	if m.cloud == nil {
		return CloudContext{}, false
	}
	return *m.cloud, true
}

// CloudFraction returns the applied cloud fraction, 1 when disabled.
func (m *Model) CloudFraction() float64 {
	if m.cloud == nil {
		return 1.0
	}
	return m.cloud.Fraction
}

/*
各波長の透過率を計算する。

	Args:
		zenithDeg: 太陽天頂角, degree
		pressure: 地表気圧, hPa
		day: 年通算日, 1..365
	Returns:
		透過率の内訳
*/
func (m *Model) Transmittances(zenithDeg, pressure float64, day int) Transmittance {
	z := unit.AngleFromDeg(zenithDeg)
	wl := m.tables.Wavelength

	// 相対エアマス, -
	am := RelativeAirMass(z)

	// 気圧補正した相対エアマス, -
	mp := am * pressure / StandardPressure

	// オゾンの相対エアマス, -
	mo := OzoneRelativeAirMass(z)

	t := Transmittance{
		Rayleigh:        rayleighTransmittance(wl, mp),
		Ozone:           ozoneTransmittance(m.tables.Ozone, m.params.Ozone, mo),
		UniformGas:      uniformGasTransmittance(m.tables.UniformGas, mp),
		WaterVapor:      waterVaporTransmittance(m.tables.WaterVapor, m.params.PrecipitableWater, am),
		Aerosol:         aerosolTransmittance(wl, m.params.AerosolOpticalDepth, am),
		AirMass:         am,
		PressureAirMass: mp,
		OzoneAirMass:    mo,
		EarthSun:        EarthSunDistanceFactor(day),
		CloudFraction:   m.CloudFraction(),
	}

	if m.cloud != nil {
		t.Cloud = cloudCoverFactor(wl, m.cloud.Fraction)
	} else {
		t.Cloud = ones(len(wl))
	}

	return t
}

/*
地表における直達分光日射量を計算する。

	Args:
		zenithDeg: 太陽天頂角, degree
		pressure: 地表気圧, hPa
		day: 年通算日, 1..365
	Returns:
		分光日射量, W/m2/micron, [N]
	Notes:
		E = CF * cc * D * E0 * tau_r * tau_o * tau_g * tau_w * tau_a
*/
func (m *Model) ComputeIrradiance(zenithDeg, pressure float64, day int) []float64 {
	return m.IrradianceFrom(m.Transmittances(zenithDeg, pressure, day))
}

// IrradianceFrom applies the extraterrestrial spectrum and the scalar
// factors to a breakdown returned by Transmittances, W/m2/micron.
func (m *Model) IrradianceFrom(t Transmittance) []float64 {
	e := t.Product()
	floats.Mul(e, m.tables.Extraterrestrial)
	floats.Scale(t.CloudFraction*t.EarthSun, e)
	return e
}

// Broadband integrates a spectrum over the wavelength grid with the
// trapezoid rule, W/m2.
func (m *Model) Broadband(irradiance []float64) (float64, error) {
	if len(irradiance) != m.tables.Len() {
		return 0, fmt.Errorf("%w: spectrum has %d values, wavelength grid has %d", ErrConfiguration, len(irradiance), m.tables.Len())
	}
	if len(irradiance) < 2 {
		return 0, nil
	}
	return integrate.Trapezoidal(m.tables.Wavelength, irradiance), nil
}
