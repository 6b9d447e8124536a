// Package psychrometrics provides moist-air relations built on the IF97
// saturation curve.
package psychrometrics

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"wsprops/iapws"
)

// 水蒸気と乾き空気の分子量比
const molarMassRatio = 0.622

/*
相対湿度を計算する。

	Args:
	    p_v: 水蒸気圧, Pa
	    p_vs: 飽和水蒸気圧, Pa

	Returns:
	    相対湿度, %
*/
func RelativeHumidity(pv, pvs float64) float64 {
	return pv / pvs * 100.0
}

/*
水蒸気圧から絶対湿度を計算する。

	Args:
	    p_v: 水蒸気圧, Pa
	    p: 全圧, Pa

	Returns:
	    絶対湿度, kg/kgDA
*/
func HumidityRatio(pv, p float64) float64 {
	return molarMassRatio * pv / (p - pv)
}

/*
絶対湿度から水蒸気圧を求める。

	Args:
	    x: 絶対湿度, kg/kgDA
	    p: 全圧, Pa

	Returns:
	    水蒸気圧, Pa
*/
func VaporPressure(x, p float64) float64 {
	return p * x / (x + molarMassRatio)
}

/*
複数の室の絶対湿度から水蒸気圧を求める。

	Args:
	    x_is: 室iの絶対湿度, kg/kgDA, [i]
	    p: 全圧, Pa

	Returns:
	    室iの水蒸気圧, Pa, [i]
*/
func VaporPressures(xIs mat.Vector, p float64) []float64 {
	pvIs := make([]float64, xIs.Len())
	for i := range pvIs {
		pvIs[i] = VaporPressure(xIs.AtVec(i), p)
	}
	return pvIs
}

/*
飽和水蒸気圧を計算する。

	Args:
	    theta: 空気温度, degree C

	Returns:
	    飽和水蒸気圧, Pa

	Notes:
	    0 degree C 以上は IF97 の飽和線、0 degree C 未満は氷に対する飽和水蒸気圧
*/
func SaturationVaporPressure(theta float64) (float64, error) {
	t := theta + iapws.ZeroCelsius

	if theta >= 0.0 {
		return iapws.SaturationPressure(t)
	}

	const b1 = -6024.5282
	const b2 = 29.32707
	const b3 = 0.010613863
	const b4 = -0.000013198825
	const b5 = -0.49382577

	if t < 173.15 {
		return 0, &iapws.RangeError{Quantity: "theta", Value: theta, Min: -100, Max: 0}
	}
	return math.Exp(b1/t + b2 + b3*t + b4*t*t + b5*math.Log(t)), nil
}

/*
露点温度を計算する。

	Args:
	    p_v: 水蒸気圧, Pa

	Returns:
	    露点温度, degree C
*/
func DewPoint(pv float64) (float64, error) {
	T, err := iapws.SaturationTemperature(pv)
	if err != nil {
		return 0, fmt.Errorf("dew point: %w", err)
	}
	return T - iapws.ZeroCelsius, nil
}

/*
大気圧を求める。

	Returns:
	    大気圧, Pa
*/
func AtmosphericPressure() float64 {
	return 101325.0
}
