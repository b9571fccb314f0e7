// Package cloudcover resolves a cloud fraction at a location from a regular
// latitude/longitude grid such as the MODIS monthly cloud fraction product.
package cloudcover

import "math"

// Axes are the coordinates of the grid rows (latitude) and columns
// (longitude), degree.
type Axes struct {
	Lat []float64
	Lon []float64
}

// NewAxes builds regular axes: value i is start + i/(1/step), so that a step
// of 0.1 yields start ± i/10 exactly.
func NewAxes(latStart, latStep float64, latCount int, lonStart, lonStep float64, lonCount int) Axes {
	return Axes{
		Lat: regular(latStart, latStep, latCount),
		Lon: regular(lonStart, lonStep, lonCount),
	}
}

/*
全球0.1度格子の座標軸を取得する。

	Returns:
		緯度 89.95 ~ -89.95 (1800点), 経度 -179.95 ~ 179.95 (3600点)
*/
func DefaultAxes() Axes {
	return NewAxes(89.95, -0.1, 1800, -179.95, 0.1, 3600)
}

func regular(start, step float64, n int) []float64 {
	if n < 0 {
		n = 0
	}
	// 0.1 刻みの格子で i*0.1 と i/10 の丸め誤差が異なるため除算で求める
	div := 1.0 / step
	ret := make([]float64, n)
	for i := range ret {
		ret[i] = start + float64(i)/div
	}
	return ret
}

// NearestIndex returns the index of the grid value closest to v. Ties go to
// the lowest index. It returns -1 for an empty grid.
func NearestIndex(grid []float64, v float64) int {
	idx := -1
	best := math.Inf(1)
	for i, g := range grid {
		if d := math.Abs(g - v); d < best {
			best = d
			idx = i
		}
	}
	return idx
}

// Index returns the row and column nearest to lat, lon.
func (a Axes) Index(lat, lon float64) (row, col int) {
	return NearestIndex(a.Lat, lat), NearestIndex(a.Lon, lon)
}
