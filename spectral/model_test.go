package spectral

import (
	"errors"
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func toyTables() Tables {
	return Tables{
		Wavelength:       []float64{0.3, 0.6},
		Extraterrestrial: []float64{1500, 1300},
		Ozone:            []float64{0.01, 0.001},
		UniformGas:       []float64{0.0001, 0.0001},
		WaterVapor:       []float64{0.001, 0.002},
	}
}

func flatTables(n int) Tables {
	t := Tables{
		Wavelength:       make([]float64, n),
		Extraterrestrial: make([]float64, n),
		Ozone:            make([]float64, n),
		UniformGas:       make([]float64, n),
		WaterVapor:       make([]float64, n),
	}
	for i := 0; i < n; i++ {
		t.Wavelength[i] = 0.3 + 0.02*float64(i)
		t.Extraterrestrial[i] = 1000 + float64(i)
		t.Ozone[i] = 0.005
		t.UniformGas[i] = 0.0002
		t.WaterVapor[i] = 0.01
	}
	return t
}

type stubResolver struct {
	fraction float64
	err      error
	calls    int
}

func (s *stubResolver) Fraction(lat, lon float64) (float64, error) {
	s.calls++
	return s.fraction, s.err
}

func TestComputeIrradianceGolden(t *testing.T) {
	tests := []struct {
		name     string
		zenith   float64
		pressure float64
		day      int
		opts     []Option
		expected []float64
	}{
		{
			name:     "zenith standard pressure day 1",
			zenith:   0,
			pressure: 1013,
			day:      1,
			expected: []float64{371.4757149143333, 1139.178801824781},
		},
		{
			name:     "sixty degrees low pressure solstice",
			zenith:   60,
			pressure: 900,
			day:      172,
			expected: []float64{110.04928234354715, 916.4040888278869},
		},
		{
			name:     "half cloud cover",
			zenith:   0,
			pressure: 1013,
			day:      1,
			opts:     []Option{WithCloudFraction(44.4, 8.9, 0.5)},
			expected: []float64{166.58103059983105, 654.8997334880771},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := NewModel(DefaultParams(), toyTables(), tt.opts...)
			require.NoError(t, err)

			got := m.ComputeIrradiance(tt.zenith, tt.pressure, tt.day)
			require.Len(t, got, len(tt.expected))
			for i := range got {
				assert.InEpsilon(t, tt.expected[i], got[i], 1e-9, "bin %d", i)
			}
		})
	}
}

func TestTransmittancesWithinUnitInterval(t *testing.T) {
	for _, tables := range []Tables{toyTables(), flatTables(122)} {
		m, err := NewModel(DefaultParams(), tables)
		require.NoError(t, err)

		tr := m.Transmittances(0, StandardPressure, 1)
		for name, c := range map[string][]float64{
			"rayleigh":    tr.Rayleigh,
			"ozone":       tr.Ozone,
			"uniform gas": tr.UniformGas,
			"water vapor": tr.WaterVapor,
			"aerosol":     tr.Aerosol,
			"cloud":       tr.Cloud,
		} {
			require.Len(t, c, tables.Len(), name)
			for i, v := range c {
				assert.Greater(t, v, 0.0, "%s bin %d", name, i)
				assert.LessOrEqual(t, v, 1.0, "%s bin %d", name, i)
			}
		}

		e := m.ComputeIrradiance(0, StandardPressure, 1)
		for i, v := range e {
			assert.LessOrEqual(t, v, tr.EarthSun*tables.Extraterrestrial[i], "bin %d", i)
		}
	}

	m, err := NewModel(DefaultParams(), toyTables())
	require.NoError(t, err)
	e := m.ComputeIrradiance(0, StandardPressure, 1)
	for i, v := range e {
		assert.LessOrEqual(t, v, toyTables().Extraterrestrial[i], "bin %d", i)
	}
}

func TestTransmittancesGolden(t *testing.T) {
	m, err := NewModel(DefaultParams(), toyTables())
	require.NoError(t, err)

	tr := m.Transmittances(0, StandardPressure, 1)
	assert.InEpsilonSlice(t, []float64{0.29403346702729405, 0.933419922611327}, tr.Rayleigh, 1e-9)
	assert.InEpsilonSlice(t, []float64{0.9972039163438929, 0.9997200391963416}, tr.Ozone, 1e-9)
	assert.InEpsilonSlice(t, []float64{0.9998598246683441, 0.9998598246683441}, tr.UniformGas, 1e-9)
	assert.InEpsilonSlice(t, []float64{0.9995317159752497, 0.999079455971022}, tr.WaterVapor, 1e-9)
	assert.InEpsilonSlice(t, []float64{0.8165097980411127, 0.9082232224132779}, tr.Aerosol, 1e-9)
	assert.Equal(t, []float64{1, 1}, tr.Cloud)
	assert.Equal(t, 1.0, tr.CloudFraction)
	assert.Equal(t, 1.0, tr.OzoneAirMass)
	assert.InEpsilon(t, tr.AirMass, tr.PressureAirMass, 1e-15)

	mean := tr.Mean()
	assert.InEpsilon(t, (0.29403346702729405+0.933419922611327)/2, mean.Rayleigh, 1e-9)
	assert.Equal(t, 1.0, mean.Cloud)
}

func TestCloudDisabledMatchesFullCloudFraction(t *testing.T) {
	off, err := NewModel(DefaultParams(), flatTables(122))
	require.NoError(t, err)
	on, err := NewModel(DefaultParams(), flatTables(122), WithCloudFraction(10, 20, 1))
	require.NoError(t, err)

	assert.Equal(t, 1.0, off.CloudFraction())
	assert.Equal(t, 1.0, on.CloudFraction())

	for _, z := range []float64{0, 30, 75} {
		a := off.ComputeIrradiance(z, 980, 200)
		b := on.ComputeIrradiance(z, 980, 200)
		assert.InEpsilonSlice(t, a, b, 1e-12, "zenith %g", z)
	}
}

func TestNewModelResolvesCloudOnce(t *testing.T) {
	r := &stubResolver{fraction: 0.3}
	m, err := NewModel(DefaultParams(), toyTables(), WithCloudCover(35.5, 139.7, r))
	require.NoError(t, err)

	m.ComputeIrradiance(0, StandardPressure, 1)
	m.ComputeIrradiance(20, StandardPressure, 100)
	assert.Equal(t, 1, r.calls)

	cc, ok := m.Cloud()
	require.True(t, ok)
	assert.Equal(t, CloudContext{Latitude: 35.5, Longitude: 139.7, Fraction: 0.3}, cc)
}

func TestNewModelCloudDataUnavailable(t *testing.T) {
	tests := []struct {
		name     string
		resolver FractionResolver
	}{
		{"resolver error", &stubResolver{err: errors.New("no such file")}},
		{"nil resolver", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := NewModel(DefaultParams(), toyTables(), WithCloudCover(44.4, 8.9, tt.resolver))
			assert.Nil(t, m)
			assert.ErrorIs(t, err, ErrDataUnavailable)
		})
	}
}

func TestNewModelFixedCloudFraction(t *testing.T) {
	m, err := NewModel(DefaultParams(), toyTables(), WithCloudFraction(44.4, 8.9, 0))
	require.NoError(t, err)
	assert.Equal(t, 0.0, m.CloudFraction())
}

func TestIrradianceFromMatchesComputeIrradiance(t *testing.T) {
	m, err := NewModel(DefaultParams(), toyTables(), WithCloudFraction(0, 0, 0.5))
	require.NoError(t, err)

	tr := m.Transmittances(35, 990, 80)
	assert.Equal(t, m.ComputeIrradiance(35, 990, 80), m.IrradianceFrom(tr))
}

func TestNewModelConfigurationError(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(t *Tables)
	}{
		{"ozone shorter than grid", func(t *Tables) { t.Ozone = t.Ozone[:120] }},
		{"extraterrestrial longer than grid", func(t *Tables) { t.Extraterrestrial = append(t.Extraterrestrial, 1) }},
		{"empty grid", func(t *Tables) { *t = Tables{} }},
		{"non increasing wavelength", func(t *Tables) { t.Wavelength[5] = t.Wavelength[4] }},
		{"non positive wavelength", func(t *Tables) { t.Wavelength[0] = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tables := flatTables(122)
			tt.mutate(&tables)
			m, err := NewModel(DefaultParams(), tables)
			assert.Nil(t, m)
			assert.ErrorIs(t, err, ErrConfiguration)
		})
	}
}

func TestValidateReportsEveryMismatch(t *testing.T) {
	tables := flatTables(10)
	tables.Ozone = tables.Ozone[:8]
	tables.WaterVapor = tables.WaterVapor[:9]

	err := tables.Validate()
	require.ErrorIs(t, err, ErrConfiguration)
	assert.Contains(t, err.Error(), "ozone absorption table has 8 values")
	assert.Contains(t, err.Error(), "water vapor absorption table has 9 values")
}

func TestModelOwnsTables(t *testing.T) {
	tables := toyTables()
	m, err := NewModel(DefaultParams(), tables)
	require.NoError(t, err)
	before := m.ComputeIrradiance(0, StandardPressure, 1)

	tables.Extraterrestrial[0] = 0
	tables.Wavelength[0] = 0.1
	assert.Equal(t, before, m.ComputeIrradiance(0, StandardPressure, 1))

	wl := m.Wavelengths()
	wl[0] = 99
	assert.Equal(t, 0.3, m.Wavelengths()[0])
}

func TestComputeIrradianceBelowHorizon(t *testing.T) {
	m, err := NewModel(DefaultParams(), toyTables())
	require.NoError(t, err)

	// 93.885° を超えると Kasten の式は負の底の非整数乗となる
	for _, v := range m.ComputeIrradiance(100, StandardPressure, 1) {
		assert.True(t, math.IsNaN(v))
	}

	assert.NotPanics(t, func() { m.ComputeIrradiance(90, StandardPressure, 1) })
}

func TestComputeIrradianceConcurrent(t *testing.T) {
	m, err := NewModel(DefaultParams(), flatTables(122), WithCloudFraction(0, 0, 0.4))
	require.NoError(t, err)
	want := m.ComputeIrradiance(45, 1000, 80)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.Equal(t, want, m.ComputeIrradiance(45, 1000, 80))
		}()
	}
	wg.Wait()
}

func TestBroadband(t *testing.T) {
	m, err := NewModel(DefaultParams(), toyTables())
	require.NoError(t, err)

	got, err := m.Broadband([]float64{100, 300})
	require.NoError(t, err)
	assert.InDelta(t, 60.0, got, 1e-12)

	_, err = m.Broadband([]float64{1})
	assert.ErrorIs(t, err, ErrConfiguration)
}
