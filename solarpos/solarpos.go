// Package solarpos computes the day of year and solar zenith angle of a
// timestamp at a site, the inputs the spectral model is queried with.
package solarpos

import (
	"math"
	"time"

	"github.com/soniakeys/meeus/v3/julian"
	"github.com/soniakeys/unit"
)

// Position is the apparent position of the sun seen from a site.
type Position struct {
	ZenithDeg      float64 // 太陽天頂角, degree
	ElevationDeg   float64 // 太陽高度, degree (大気差補正無し)
	DeclinationDeg float64 // 赤緯, degree
	EqOfTimeMin    float64 // 均時差, min
	HourAngleDeg   float64 // 時角, degree
}

// DayOfYear returns the UTC calendar day number, 1 for January 1.
func DayOfYear(t time.Time) int {
	u := t.UTC()
	return julian.DayOfYearGregorian(u.Year(), int(u.Month()), u.Day())
}

func fixAngle(a float64) float64 { return a - 360.0*math.Floor(a/360.0) }

/*
太陽位置を計算する。

	Args:
		t: 時刻
		lat: 緯度, degree (北緯を正)
		lon: 経度, degree (東経を正)
	Returns:
		太陽位置
	Notes:
		NOAA の低精度式。ユリウス日から太陽の視黄経、赤緯、均時差を求める。
*/
func Calculate(t time.Time, lat, lon float64) Position {
	u := t.UTC()

	// 2000年1月1日12時からのユリウス世紀
	T := (julian.TimeToJD(u) - 2451545.0) / 36525.0

	// 平均黄経, degree
	l0 := fixAngle(280.46646 + T*(36000.76983+T*0.0003032))

	// 平均近点角, degree
	m := fixAngle(357.52911 + T*(35999.05029-T*0.0001537))
	mA := unit.AngleFromDeg(m)

	// 地球軌道の離心率
	e := 0.016708634 - T*(0.000042037+T*0.0000001267)

	// 中心差, degree
	c := mA.Sin()*(1.914602-T*(0.004817+T*0.000014)) +
		math.Sin(2*mA.Rad())*(0.019993-T*0.000101) +
		math.Sin(3*mA.Rad())*0.000289

	// 視黄経, degree
	omega := unit.AngleFromDeg(125.04 - 1934.136*T)
	lambda := unit.AngleFromDeg(l0 + c - 0.00569 - 0.00478*omega.Sin())

	// 黄道傾斜角, degree
	eps0 := 23 + (26+(21.448-T*(46.815+T*(0.00059-T*0.001813)))/60)/60
	eps := unit.AngleFromDeg(eps0 + 0.00256*omega.Cos())

	// 赤緯, rad
	delta := math.Asin(eps.Sin() * lambda.Sin())

	// 均時差, min
	l0A := unit.AngleFromDeg(l0)
	y := math.Tan(eps.Rad()/2) * math.Tan(eps.Rad()/2)
	eqTime := 4 * unit.Angle(y*math.Sin(2*l0A.Rad())-
		2*e*mA.Sin()+
		4*e*y*mA.Sin()*math.Cos(2*l0A.Rad())-
		0.5*y*y*math.Sin(4*l0A.Rad())-
		1.25*e*e*math.Sin(2*mA.Rad())).Deg()

	// 真太陽時, min
	utcMin := float64(u.Hour()*60+u.Minute()) + float64(u.Second())/60.0 + float64(u.Nanosecond())/6e10
	tst := utcMin + eqTime + 4*lon

	// 時角, degree
	ha := tst/4 - 180

	phi := unit.AngleFromDeg(lat)
	cosZen := phi.Sin()*math.Sin(delta) + phi.Cos()*math.Cos(delta)*unit.AngleFromDeg(ha).Cos()
	zen := unit.Angle(math.Acos(math.Max(-1, math.Min(1, cosZen)))).Deg()

	return Position{
		ZenithDeg:      zen,
		ElevationDeg:   90 - zen,
		DeclinationDeg: unit.Angle(delta).Deg(),
		EqOfTimeMin:    eqTime,
		HourAngleDeg:   ha,
	}
}

// Zenith returns the solar zenith angle at a site, degree.
func Zenith(t time.Time, lat, lon float64) float64 {
	return Calculate(t, lat, lon).ZenithDeg
}
