package main

import "fmt"

// 地点のプリセット
type Site string

// 地点のプリセットの定数
const (
	SiteKitami     Site = "kitami"
	SiteIwamizawa  Site = "iwamizawa"
	SiteMorioka    Site = "morioka"
	SiteNagano     Site = "nagano"
	SiteUtsunomiya Site = "utsunomiya"
	SiteOkayama    Site = "okayama"
	SiteMiyazaki   Site = "miyazaki"
	SiteNaha       Site = "naha"
	SiteGenova     Site = "genova"
)

/*
地点のプリセットから緯度、経度を取得する

Returns:
	以下のタプル
		(1) 緯度, degree
		(2) 経度, degree
		(3) 未知の地点の場合のエラー
*/
func (s Site) location() (latitude float64, longitude float64, err error) {
	switch s {
	case SiteKitami:
		latitude, longitude = 43.82, 143.91
	case SiteIwamizawa:
		latitude, longitude = 43.21, 141.79
	case SiteMorioka:
		latitude, longitude = 39.70, 141.17
	case SiteNagano:
		latitude, longitude = 36.66, 138.20
	case SiteUtsunomiya:
		latitude, longitude = 36.55, 139.87
	case SiteOkayama:
		latitude, longitude = 34.66, 133.92
	case SiteMiyazaki:
		latitude, longitude = 31.94, 131.42
	case SiteNaha:
		latitude, longitude = 26.21, 127.685
	case SiteGenova:
		latitude, longitude = 44.41, 8.93
	default:
		err = fmt.Errorf("unknown site %q", string(s))
	}
	return
}
