package spectral

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Transmittance is the per-bin breakdown of a single query. Each slice is
// aligned to the model's wavelength grid.
type Transmittance struct {
	Rayleigh   []float64 // レイリー散乱透過率, -, [N]
	Ozone      []float64 // オゾン吸収透過率, -, [N]
	UniformGas []float64 // 均一混合気体吸収透過率, -, [N]
	WaterVapor []float64 // 水蒸気吸収透過率, -, [N]
	Aerosol    []float64 // エアロゾル消散透過率, -, [N]
	Cloud      []float64 // 雲量補正係数, -, [N]

	AirMass         float64 // 相対エアマス, -
	PressureAirMass float64 // 気圧補正した相対エアマス, -
	OzoneAirMass    float64 // オゾンの相対エアマス, -
	EarthSun        float64 // 地球太陽間距離の補正係数, -
	CloudFraction   float64 // 雲量, - (補正無しの場合は1)
}

// Product returns the combined attenuation of every bin, cloud factor
// included but without the cloud fraction and Earth-Sun scalars.
func (t Transmittance) Product() []float64 {
	ret := make([]float64, len(t.Rayleigh))
	floats.MulTo(ret, t.Rayleigh, t.Ozone)
	floats.Mul(ret, t.UniformGas)
	floats.Mul(ret, t.WaterVapor)
	floats.Mul(ret, t.Aerosol)
	floats.Mul(ret, t.Cloud)
	return ret
}

// TransmittanceMean holds unweighted band averages of each component.
type TransmittanceMean struct {
	Rayleigh   float64
	Ozone      float64
	UniformGas float64
	WaterVapor float64
	Aerosol    float64
	Cloud      float64
}

// Mean averages each component over the wavelength bins.
func (t Transmittance) Mean() TransmittanceMean {
	return TransmittanceMean{
		Rayleigh:   stat.Mean(t.Rayleigh, nil),
		Ozone:      stat.Mean(t.Ozone, nil),
		UniformGas: stat.Mean(t.UniformGas, nil),
		WaterVapor: stat.Mean(t.WaterVapor, nil),
		Aerosol:    stat.Mean(t.Aerosol, nil),
		Cloud:      stat.Mean(t.Cloud, nil),
	}
}

/*
レイリー散乱の透過率を計算する。

	Args:
		wl: 波長, micron, [N]
		m_p: 気圧補正した相対エアマス, -
	Returns:
		レイリー散乱の透過率, -, [N]
*/
func rayleighTransmittance(wl []float64, mp float64) []float64 {
	ret := make([]float64, len(wl))
	for i, l := range wl {
		l2 := l * l
		ret[i] = math.Exp(-mp / (l2 * l2 * (115.6406 - 1.335/l2)))
	}
	return ret
}

/*
オゾン吸収の透過率を計算する。

	Args:
		k_o: オゾン吸収係数, [N]
		oz: オゾン量, cm
		m_o: オゾンの相対エアマス, -
	Returns:
		オゾン吸収の透過率, -, [N]
*/
func ozoneTransmittance(ko []float64, oz, mo float64) []float64 {
	ret := make([]float64, len(ko))
	for i, k := range ko {
		ret[i] = math.Exp(-k * oz * mo)
	}
	return ret
}

/*
均一混合気体吸収の透過率を計算する。

	Args:
		k_g: 均一混合気体吸収係数, [N]
		m_p: 気圧補正した相対エアマス, -
	Returns:
		均一混合気体吸収の透過率, -, [N]
*/
func uniformGasTransmittance(kg []float64, mp float64) []float64 {
	ret := make([]float64, len(kg))
	for i, k := range kg {
		ret[i] = math.Exp(-1.41 * k * mp / math.Pow(1.0+118.3*k*mp, 0.45))
	}
	return ret
}

/*
水蒸気吸収の透過率を計算する。

	Args:
		k_w: 水蒸気吸収係数, [N]
		w: 可降水量, cm
		m: 相対エアマス, -
	Returns:
		水蒸気吸収の透過率, -, [N]
*/
func waterVaporTransmittance(kw []float64, w, m float64) []float64 {
	ret := make([]float64, len(kw))
	for i, k := range kw {
		ret[i] = math.Exp(-0.2385 * k * w * m / math.Pow(1.0+20.07*k*w*m, 0.45))
	}
	return ret
}

/*
エアロゾル消散の透過率を計算する。

	Args:
		wl: 波長, micron, [N]
		delta: 波長0.5micronにおけるエアロゾル光学的厚さ, -
		m: 相対エアマス, -
	Returns:
		エアロゾル消散の透過率, -, [N]
	Notes:
		波長0.5micron未満では指数 -1.0274、以上では -1.2060 とする。
*/
func aerosolTransmittance(wl []float64, delta, m float64) []float64 {
	ret := make([]float64, len(wl))
	for i, l := range wl {
		alpha := -1.2060
		if l < 0.5 {
			alpha = -1.0274
		}
		ret[i] = math.Exp(-delta * math.Pow(l/0.5, alpha) * m)
	}
	return ret
}

/*
雲量補正係数を計算する。

	Args:
		wl: 波長, micron, [N]
		cf: 雲量, -
	Returns:
		雲量補正係数, -, [N]
*/
func cloudCoverFactor(wl []float64, cf float64) []float64 {
	ret := make([]float64, len(wl))
	for i, l := range wl {
		ret[i] = 0.76 + 0.24*cf + 0.24*(1.0-cf)*math.Pow(l/0.49, 4)
	}
	return ret
}

func ones(n int) []float64 {
	ret := make([]float64, n)
	for i := range ret {
		ret[i] = 1.0
	}
	return ret
}
