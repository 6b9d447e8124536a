package main

import (
	"fmt"
	"log"

	"gonum.org/v1/gonum/floats"

	"wsprops/iapws"
)

/*
等圧線上の物性表を作成する。

	Args:
	    p: 圧力, Pa
	    tmin: 下限温度, degree C
	    tmax: 上限温度, degree C
	    n: 点数

	Returns:
	    温度順の計算結果。領域外の点はエラーとして記録する
*/
func runTable(lookup *iapws.Lookup, p, tmin, tmax float64, n int) (*Recorder, error) {
	if n < 2 {
		return nil, fmt.Errorf("table needs at least 2 points, got %d", n)
	}
	if !(tmin < tmax) {
		return nil, fmt.Errorf("tmin = %g must be below tmax = %g", tmin, tmax)
	}

	ts := floats.Span(make([]float64, n), tmin, tmax)
	rec := NewRecorder(n)
	for i, t := range ts {
		st, err := lookup.PropertiesCelsius(t, p)
		rec.Record(i, InputRow{Kind: "tp", P: p, X: t}, st, err)
	}

	if hs := rec.Column(func(r Row) float64 { return r.H }); len(hs) > 0 {
		log.Printf("h: %.6g .. %.6g J/kg (%d/%d points)", floats.Min(hs), floats.Max(hs), len(hs), n)
	}
	return rec, nil
}
