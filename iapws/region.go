package iapws

import (
	"fmt"
	"math"
)

// Region is a single-phase region of the IF97 formulation.
//
// PropertiesPH and PropertiesPS never extrapolate: a pair that Contains
// rejects is reported as ErrRegionMismatch.
type Region interface {
	Phase() Phase

	// PropertiesTp evaluates the forward equation, T in K, p in Pa.
	PropertiesTp(T, p float64) (State, error)
	// PropertiesCelsius is PropertiesTp with t in degree C.
	PropertiesCelsius(t, p float64) (State, error)
	PropertiesPH(p, h float64) (State, error)
	PropertiesPS(p, s float64) (State, error)

	// TemperaturePH and TemperaturePS are the backward equations.
	TemperaturePH(p, h float64) (float64, error)
	TemperaturePS(p, s float64) (float64, error)

	// Bounds returns the temperature range of the region at pressure p.
	Bounds(p float64) (lower, upper float64, err error)
	// Contains reports whether the (p, h) or (p, s) pair lies in the region.
	// h and s are assumed monotonic in T along an isobar.
	Contains(p, value float64, kind Kind) bool
}

var (
	_ Region = LiquidRegion{}
	_ Region = VaporRegion{}
)

// 623.15 K における飽和圧力, Pa
var saturationPressure623 = func() float64 {
	p, err := SaturationPressure(LiquidMaxTemperature)
	if err != nil {
		panic(err)
	}
	return p
}()

func checkPressure(p float64) error {
	if !(p > 0 && p <= MaxPressure) {
		return &RangeError{Quantity: "p", Value: p, Min: 0, Max: MaxPressure}
	}
	return nil
}

/*
等圧線上で領域の境界温度における h または s を求め、value が
その間にあるかどうかを判定する。

	Returns:
	    (1) 下限温度, K
	    (2) 上限温度, K
	    (3) 領域内にあるか否か
*/
func locate(r Region, p, value float64, kind Kind) (lower, upper float64, ok bool) {
	lower, upper, err := r.Bounds(p)
	if err != nil {
		return 0, 0, false
	}
	stLower, err := r.PropertiesTp(lower, p)
	if err != nil {
		return 0, 0, false
	}
	stUpper, err := r.PropertiesTp(upper, p)
	if err != nil {
		return 0, 0, false
	}
	return lower, upper, kind.of(stLower) <= value && value <= kind.of(stUpper)
}

func contains(r Region, p, value float64, kind Kind) bool {
	_, _, ok := locate(r, p, value, kind)
	return ok
}

// propertiesBackward resolves T with the region's backward equation and
// evaluates the forward equation there.
func propertiesBackward(r Region, p, value float64, kind Kind) (State, error) {
	lower, upper, ok := locate(r, p, value, kind)
	if !ok {
		return State{}, fmt.Errorf("%s region: p = %g Pa, %s = %g: %w", r.Phase(), p, kind, value, ErrRegionMismatch)
	}

	var T float64
	var err error
	if kind == Entropy {
		T, err = r.TemperaturePS(p, value)
	} else {
		T, err = r.TemperaturePH(p, value)
	}
	if err != nil {
		return State{}, err
	}

	// 逆関数の誤差で境界をわずかに越えた場合は境界に寄せる
	T = math.Min(math.Max(T, lower), upper)

	return r.PropertiesTp(T, p)
}
