// Package iapws computes thermodynamic properties of water and steam after the
// IAPWS Industrial Formulation 1997 (IF97).
//
// Two single-phase regions are implemented: region 1 (compressed liquid) and
// region 2 (superheated vapour). The saturation curve (region 4) and the
// boundary between regions 2 and 3 are provided as standalone correlations.
//
//	http://www.iapws.org/relguide/IF97-Rev.pdf
package iapws

// 水および水蒸気の定数
const (
	GasConstant         = 461.526  // 水蒸気のガス定数, J/kg K
	CriticalTemperature = 647.096  // 臨界温度, K
	CriticalPressure    = 22.064e6 // 臨界圧力, Pa
	CriticalDensity     = 322.0    // 臨界密度, kg/m3
)

// 適用範囲
const (
	MinTemperature           = 273.15     // 下限温度, K
	MaxTemperature           = 1073.15    // 領域2の上限温度, K
	LiquidMaxTemperature     = 623.15     // 領域1の上限温度, K
	Boundary23MaxTemperature = 863.15     // 領域2-3境界の上限温度, K
	MaxPressure              = 100e6      // 上限圧力, Pa
	MinSaturationPressure    = 611.212677 // 273.15 K における飽和圧力, Pa
)

// ZeroCelsius is the offset between the Celsius and Kelvin scales.
const ZeroCelsius = 273.15
