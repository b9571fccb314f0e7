package humidity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaturationVaporPressure(t *testing.T) {
	tests := []struct {
		theta    float64
		expected float64
	}{
		{20, 2339.2491605340156},
		{25, 3169.9039496001824},
		{0, 611.2128400464351},
		{-10, 259.89248754378985},
	}

	for _, tt := range tests {
		assert.InEpsilon(t, tt.expected, SaturationVaporPressure(tt.theta), 1e-12, "theta %g", tt.theta)
	}
}

func TestAbsoluteHumidityRoundTrip(t *testing.T) {
	pv := VaporPressureFromRelative(25, 60)
	assert.InEpsilon(t, 1901.9423697601094, pv, 1e-12)

	x := AbsoluteHumidity(pv, 101325)
	assert.InEpsilon(t, 0.011898730356799768, x, 1e-12)
	assert.InEpsilon(t, pv, VaporPressureFromAbsolute(x, 101325), 1e-12)
}

func TestSurfacePrecipitableWater(t *testing.T) {
	rh := 60.0
	x := AbsoluteHumidity(VaporPressureFromRelative(25, rh), 101325)

	w, err := Surface{Temperature: 25, RelativeHumidity: &rh}.PrecipitableWater(1013.25)
	require.NoError(t, err)
	assert.InEpsilon(t, 2.966302874185648, w, 1e-12)

	w2, err := Surface{Temperature: 25, AbsoluteHumidity: &x}.PrecipitableWater(1013.25)
	require.NoError(t, err)
	assert.InEpsilon(t, w, w2, 1e-12)

	_, err = Surface{Temperature: 25}.PrecipitableWater(1013.25)
	assert.Error(t, err)

	_, err = Surface{Temperature: 25, RelativeHumidity: &rh, AbsoluteHumidity: &x}.PrecipitableWater(1013.25)
	assert.Error(t, err)
}
