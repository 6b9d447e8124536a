package main

import (
	"errors"
	"fmt"
	"io"
	"math"

	"wsprops/iapws"
	"wsprops/psychrometrics"
)

// Humid is the moist-air state at one dry-bulb temperature.
type Humid struct {
	Theta    float64 // 乾球温度, degree C
	RH       float64 // 相対湿度, %
	P        float64 // 全圧, Pa
	Pvs      float64 // 飽和水蒸気圧, Pa
	Pv       float64 // 水蒸気圧, Pa
	X        float64 // 絶対湿度, kg/kgDA
	DewPoint float64 // 露点温度, degree C。IF97 の飽和線外なら NaN
}

/*
乾球温度と相対湿度から湿り空気の状態を求める。

	Args:
	    theta: 乾球温度, degree C
	    rh: 相対湿度, %
	    p: 全圧, Pa
*/
func runHumid(theta, rh, p float64) (Humid, error) {
	if math.IsNaN(theta) {
		return Humid{}, fmt.Errorf("-t is required")
	}
	if !(0 <= rh && rh <= 100) {
		return Humid{}, &iapws.RangeError{Quantity: "rh", Value: rh, Min: 0, Max: 100}
	}

	pvs, err := psychrometrics.SaturationVaporPressure(theta)
	if err != nil {
		return Humid{}, err
	}
	pv := pvs * rh / 100
	if !(pv < p) {
		return Humid{}, &iapws.RangeError{Quantity: "p", Value: p, Min: pv, Max: math.Inf(1)}
	}

	hm := Humid{
		Theta: theta,
		RH:    psychrometrics.RelativeHumidity(pv, pvs),
		P:     p,
		Pvs:   pvs,
		Pv:    pv,
		X:     psychrometrics.HumidityRatio(pv, p),
	}

	hm.DewPoint, err = psychrometrics.DewPoint(pv)
	if errors.Is(err, iapws.ErrInputRange) {
		hm.DewPoint = math.NaN()
	} else if err != nil {
		return Humid{}, err
	}
	return hm, nil
}

func printHumid(w io.Writer, hm Humid) {
	fmt.Fprintf(w, "theta: %.6f C\n", hm.Theta)
	fmt.Fprintf(w, "rh:    %.6f %%\n", hm.RH)
	fmt.Fprintf(w, "p:     %.6g Pa\n", hm.P)
	fmt.Fprintf(w, "pvs:   %.9g Pa\n", hm.Pvs)
	fmt.Fprintf(w, "pv:    %.9g Pa\n", hm.Pv)
	fmt.Fprintf(w, "x:     %.9g kg/kgDA\n", hm.X)
	if math.IsNaN(hm.DewPoint) {
		fmt.Fprintln(w, "dew point: below 0 C")
		return
	}
	fmt.Fprintf(w, "dew point: %.6f C\n", hm.DewPoint)
}
