// Package humidity derives the precipitable water column of the spectral
// model from surface air temperature and humidity.
package humidity

import (
	"fmt"
	"math"
)

/*
飽和水蒸気圧を計算する。

	Args:
		theta: 空気温度, degree C
	Returns:
		飽和水蒸気圧, Pa
	Notes:
		省エネ基準。0℃未満は氷面に対する式を用いる。
*/
func SaturationVaporPressure(theta float64) float64 {
	// 絶対温度
	t := theta + 273.15

	const a1 = -6096.9385
	const a2 = 21.2409642
	const a3 = -0.02711193
	const a4 = 0.00001673952
	const a5 = 2.433502
	const b1 = -6024.5282
	const b2 = 29.32707
	const b3 = 0.010613863
	const b4 = -0.000013198825
	const b5 = -0.49382577

	if theta >= 0.0 {
		return math.Exp(a1/t + a2 + a3*t + a4*t*t + a5*math.Log(t))
	}
	return math.Exp(b1/t + b2 + b3*t + b4*t*t + b5*math.Log(t))
}

/*
相対湿度から水蒸気圧を計算する。

	Args:
		theta: 空気温度, degree C
		rh: 相対湿度, %
	Returns:
		水蒸気圧, Pa
*/
func VaporPressureFromRelative(theta, rh float64) float64 {
	return SaturationVaporPressure(theta) * rh / 100.0
}

/*
絶対湿度から水蒸気圧を計算する。

	Args:
		x: 絶対湿度, kg/kgDA
		p: 大気圧, Pa
	Returns:
		水蒸気圧, Pa
*/
func VaporPressureFromAbsolute(x, p float64) float64 {
	return p * x / (x + 0.622)
}

/*
水蒸気圧から絶対湿度を計算する。

	Args:
		pv: 水蒸気圧, Pa
		p: 大気圧, Pa
	Returns:
		絶対湿度, kg/kgDA
*/
func AbsoluteHumidity(pv, p float64) float64 {
	return 0.622 * pv / (p - pv)
}

/*
可降水量を計算する。

	Args:
		theta: 地表の空気温度, degree C
		pv: 地表の水蒸気圧, Pa
	Returns:
		可降水量, cm
	Notes:
		Prata (1996): w = 46.5 * e0 / T0 (e0: hPa, T0: K)
*/
func PrecipitableWater(theta, pv float64) float64 {
	return 46.5 * (pv / 100.0) / (theta + 273.15)
}

// Surface is a surface observation. Exactly one of RelativeHumidity and
// AbsoluteHumidity must be set.
type Surface struct {
	Temperature      float64  // 空気温度, degree C
	RelativeHumidity *float64 // 相対湿度, %
	AbsoluteHumidity *float64 // 絶対湿度, kg/kgDA
}

// PrecipitableWater returns the column of the observation, cm. pressure is
// the surface pressure in hPa, used with absolute humidity.
func (s Surface) PrecipitableWater(pressure float64) (float64, error) {
	switch {
	case s.RelativeHumidity != nil && s.AbsoluteHumidity != nil:
		return 0, fmt.Errorf("humidity: both relative and absolute humidity given")
	case s.RelativeHumidity != nil:
		return PrecipitableWater(s.Temperature, VaporPressureFromRelative(s.Temperature, *s.RelativeHumidity)), nil
	case s.AbsoluteHumidity != nil:
		return PrecipitableWater(s.Temperature, VaporPressureFromAbsolute(*s.AbsoluteHumidity, pressure*100.0)), nil
	default:
		return 0, fmt.Errorf("humidity: no humidity given")
	}
}
