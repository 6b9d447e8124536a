package iapws

import "math"

// 領域2-3境界の係数 (IF97 Table 1)
var boundary23N = [5]float64{
	0.34805185628969e3, -0.11671859879975e1, 0.10192970039326e-2,
	0.57254459862746e3, 0.13918839778870e2,
}

/*
領域2と領域3の境界上の圧力を計算する。

	Args:
	    T: 温度, K

	Returns:
	    圧力, Pa

	Notes:
	    IF97 式(5)
	    適用範囲 623.15 K <= T <= 863.15 K
*/
func Boundary23Pressure(T float64) (float64, error) {
	if err := checkRange("T", T, LiquidMaxTemperature, Boundary23MaxTemperature); err != nil {
		return 0, err
	}
	n := &boundary23N
	return (n[0] + n[1]*T + n[2]*T*T) * 1e6, nil
}

/*
領域2と領域3の境界上の温度を計算する。

	Args:
	    p: 圧力, Pa

	Returns:
	    温度, K

	Notes:
	    IF97 式(6)
	    本来の適用範囲は 16.5292 MPa <= p <= 100 MPa。
	    根号の中が負になる n5 未満の圧力のみを拒否する。
*/
func Boundary23Temperature(p float64) (float64, error) {
	n := &boundary23N
	if err := checkRange("p", p, n[4]*1e6, MaxPressure); err != nil {
		return 0, err
	}
	pi := p / 1e6
	return n[3] + math.Sqrt((pi-n[4])/n[2]), nil
}
