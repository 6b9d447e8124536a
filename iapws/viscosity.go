package iapws

import (
	"fmt"
	"math"
)

// 希薄気体の粘性の係数 (IAPWS 2008 Table 1)
var viscosityH0 = [4]float64{1.67752, 2.20462, 0.6366564, -0.241605}

// 残余粘性の係数 H_ij (IAPWS 2008 Table 2)
var viscosityH1 = [6][7]float64{
	{5.20094e-1, 2.22531e-1, -2.81378e-1, 1.61913e-1, -3.25372e-2, 0, 0},
	{8.50895e-2, 9.99115e-1, -9.06851e-1, 2.57399e-1, 0, 0, 0},
	{-1.08374, 1.88797, -7.72479e-1, 0, 0, 0, 0},
	{-2.89555e-1, 1.26613, -4.89837e-1, 0, 6.98452e-2, 0, -4.35673e-3},
	{0, 0, -2.57040e-1, 0, 0, 8.72102e-3, 0},
	{0, 1.20573e-1, 0, 0, 0, 0, -5.93264e-4},
}

// 臨界増大が無視できない範囲
const (
	viscosityCriticalTMin   = 645.91
	viscosityCriticalTMax   = 650.77
	viscosityCriticalRhoMin = 245.8
	viscosityCriticalRhoMax = 405.3
)

/*
水および水蒸気の粘性係数を計算する。

	Args:
	    T: 温度, K
	    rho: 密度, kg/m3

	Returns:
	    粘性係数, Pa s

	Notes:
	    Release on the IAPWS Formulation 2008 for the Viscosity of Ordinary Water Substance
	    http://www.iapws.org/relguide/visc.pdf
	    臨界増大項 μ2 は 1 とする。臨界点近傍は範囲外として扱う。
*/
func DynamicViscosity(T, rho float64) (float64, error) {
	if err := checkRange("T", T, MinTemperature, 1173.15); err != nil {
		return 0, err
	}
	if err := checkRange("rho", rho, 0, math.MaxFloat64); err != nil {
		return 0, err
	}
	if viscosityCriticalTMin < T && T < viscosityCriticalTMax &&
		viscosityCriticalRhoMin < rho && rho < viscosityCriticalRhoMax {
		return 0, fmt.Errorf("near-critical state T = %g K, rho = %g kg/m3: %w", T, rho, ErrInputRange)
	}

	tau := T / CriticalTemperature
	delta := rho / CriticalDensity

	var sum0 float64
	for i, h := range viscosityH0 {
		sum0 += h / math.Pow(tau, float64(i))
	}
	mu0 := 100 * math.Sqrt(tau) / sum0

	var sum1 float64
	for i, row := range viscosityH1 {
		var b float64
		for j, h := range row {
			b += h * math.Pow(delta-1, float64(j))
		}
		sum1 += math.Pow(1/tau-1, float64(i)) * b
	}
	mu1 := math.Exp(delta * sum1)

	return mu0 * mu1 * 1e-6, nil
}
