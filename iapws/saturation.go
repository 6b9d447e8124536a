package iapws

import "math"

// 飽和線の係数 (IF97 Table 34)
var saturationN = [10]float64{
	0.11670521452767e4, -0.72421316703206e6, -0.17073846940092e2, 0.12020824702470e5,
	-0.32325550322333e7, 0.14915108613530e2, -0.48232657361591e4, 0.40511340542057e6,
	-0.23855557567849, 0.65017534844798e3,
}

/*
飽和圧力を計算する。

	Args:
	    T: 温度, K

	Returns:
	    飽和圧力, Pa

	Notes:
	    IF97 式(30)
	    適用範囲 273.15 K <= T <= 647.096 K
*/
func SaturationPressure(T float64) (float64, error) {
	if err := checkRange("T", T, MinTemperature, CriticalTemperature); err != nil {
		return 0, err
	}
	n := &saturationN

	theta := T + n[8]/(T-n[9])
	A := theta*theta + n[0]*theta + n[1]
	B := n[2]*theta*theta + n[3]*theta + n[4]
	C := n[5]*theta*theta + n[6]*theta + n[7]

	disc := B*B - 4*A*C
	if disc < 0 {
		return 0, ErrNumericalDegeneracy
	}
	// B < 0 on the whole curve, so -B + sqrt(disc) does not cancel.
	den := -B + math.Sqrt(disc)
	if den == 0 {
		return 0, ErrNumericalDegeneracy
	}

	beta := 2 * C / den
	// 臨界温度では式(30)が臨界圧力をわずかに上回る
	return math.Min(beta*beta*beta*beta*1e6, CriticalPressure), nil
}

/*
飽和温度を計算する。

	Args:
	    p: 圧力, Pa

	Returns:
	    飽和温度, K

	Notes:
	    IF97 式(31)
	    適用範囲 611.212677 Pa <= p <= 22.064 MPa
*/
func SaturationTemperature(p float64) (float64, error) {
	if err := checkRange("p", p, MinSaturationPressure, CriticalPressure); err != nil {
		return 0, err
	}
	n := &saturationN

	beta := math.Pow(p/1e6, 0.25)
	E := beta*beta + n[2]*beta + n[5]
	F := n[0]*beta*beta + n[3]*beta + n[6]
	G := n[1]*beta*beta + n[4]*beta + n[7]

	disc := F*F - 4*E*G
	if disc < 0 {
		return 0, ErrNumericalDegeneracy
	}
	den := -F - math.Sqrt(disc)
	if den == 0 {
		return 0, ErrNumericalDegeneracy
	}
	D := 2 * G / den

	disc = (n[9]+D)*(n[9]+D) - 4*(n[8]+n[9]*D)
	if disc < 0 {
		return 0, ErrNumericalDegeneracy
	}
	return (n[9] + D - math.Sqrt(disc)) / 2, nil
}
