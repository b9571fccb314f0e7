package spectral

import (
	"math"

	"github.com/soniakeys/unit"
)

// 標準気圧, hPa
const StandardPressure = 1013.0

/*
相対エアマスを計算する。

	Args:
		z: 太陽天頂角
	Returns:
		相対エアマス, -
	Notes:
		Kasten (1966)
		余弦はラジアン、(93.885 - z) の項は度で評価する。
		z >= 93.885° では負の底の非整数乗となり NaN を返す。
*/
func RelativeAirMass(z unit.Angle) float64 {
	return 1.0 / (z.Cos() + 0.15*math.Pow(93.885-z.Deg(), -1.253))
}

/*
オゾンの相対エアマスを計算する。

	Args:
		z: 太陽天頂角
	Returns:
		オゾンの相対エアマス, -
	Notes:
		Paltridge and Platt (1976)
*/
func OzoneRelativeAirMass(z unit.Angle) float64 {
	c := z.Cos()
	return 35.0 / math.Sqrt(1224.0*c*c+1.0)
}

/*
気圧補正した相対エアマスを計算する。

	Args:
		z: 太陽天頂角
		p0: 標準気圧, hPa
		p: 地表気圧, hPa
	Returns:
		気圧補正した相対エアマス, -
*/
func PressureCorrectedAirMass(z unit.Angle, p0, p float64) float64 {
	return RelativeAirMass(z) * p / p0
}

/*
年通算日を日角に変換する。

	Args:
		day: 年通算日（1/1を1とする）, 1..365
	Returns:
		日角, rad
	Notes:
		閏年は考慮しない。範囲外の値も検査しない。
*/
func DayAngle(day int) float64 {
	return 2.0 * math.Pi * float64(day-1) / 365.0
}

/*
地球と太陽の距離の補正係数を計算する。

	Args:
		day: 年通算日, 1..365
	Returns:
		補正係数, -
	Notes:
		Spencer (1971)
*/
func EarthSunDistanceFactor(day int) float64 {
	g := DayAngle(day)
	return 1.00011 +
		0.034221*math.Cos(g) +
		0.00128*math.Sin(g) +
		0.000719*math.Cos(2*g) +
		0.000077*math.Sin(2*g)
}

// Degenerate reports whether zenithDeg lies at or below the horizon, where
// the air-mass formulas stop describing a physical path.
func Degenerate(zenithDeg float64) bool {
	return math.IsNaN(zenithDeg) || zenithDeg >= 90.0
}
