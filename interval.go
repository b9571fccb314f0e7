package main

import (
	"fmt"
	"time"
)

// インターバル
type Interval string

// インターバル
const (
	IntervalH1  Interval = "1h"
	IntervalM30 Interval = "30m"
	IntervalM15 Interval = "15m"
)

func IntervalFromString(s string) (Interval, error) {
	switch Interval(s) {
	case IntervalH1, IntervalM30, IntervalM15:
		return Interval(s), nil
	default:
		return "", fmt.Errorf("invalid interval %q (want 1h, 30m or 15m)", s)
	}
}

/*
1時間を分割するステップ数を求める。

	Returns:
		1時間を分割するステップ数

	Notes:
		1時間: 1
		30分: 2
		15分: 4
*/
func (i Interval) get_n_hour() int {
	switch i {
	case IntervalH1:
		return 1
	case IntervalM30:
		return 2
	case IntervalM15:
		return 4
	default:
		panic("invalid interval")
	}
}

// インターバル時間
func (i Interval) duration() time.Duration {
	return time.Hour / time.Duration(i.get_n_hour())
}

/*
指定した日の0時(UTC)から24時間分の時刻を取得する。

	Args:
		date: 対象日（時刻部分は無視する）
	Returns:
		ステップnにおける時刻, [24 * n_hour]
*/
func (i Interval) steps(date time.Time) []time.Time {
	u := date.UTC()
	start := time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)

	n := 24 * i.get_n_hour()
	ret := make([]time.Time, n)
	for k := 0; k < n; k++ {
		ret[k] = start.Add(time.Duration(k) * i.duration())
	}
	return ret
}
