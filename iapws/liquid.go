package iapws

import "math"

// 領域1 ギブス自由エネルギーの係数 (IF97 Table 2)
var liquidGibbs = []term{
	{0, -2, 0.14632971213167}, {0, -1, -0.84548187169114}, {0, 0, -3.756360367204},
	{0, 1, 3.3855169168385}, {0, 2, -0.95791963387872}, {0, 3, 0.15772038513228},
	{0, 4, -0.016616417199501}, {0, 5, 0.81214629983568e-3}, {1, -9, 0.28319080123804e-3},
	{1, -7, -0.60706301565874e-3}, {1, -1, -0.018990068218419}, {1, 0, -0.032529748770505},
	{1, 1, -0.021841717175414}, {1, 3, -0.5283835796993e-4}, {2, -3, -0.47184321073267e-3},
	{2, 0, -0.30001780793026e-3}, {2, 1, 0.47661393906987e-4}, {2, 3, -0.44141845330846e-5},
	{2, 17, -0.72694996297594e-15}, {3, -4, -0.31679644845054e-4}, {3, 0, -0.28270797985312e-5},
	{3, 6, -0.85205128120103e-9}, {4, -5, -0.22425281908e-5}, {4, -2, -0.65171222895601e-6},
	{4, 10, -0.14341729937924e-12}, {5, -8, -0.40516996860117e-6}, {8, -11, -0.12734301741641e-8},
	{8, -6, -0.17424871230634e-9}, {21, -29, -0.68762131295531e-18}, {23, -31, 0.14478307828521e-19},
	{29, -38, 0.26335781662795e-22}, {30, -39, -0.11947622640071e-22}, {31, -40, 0.18228094581404e-23},
	{32, -41, -0.93537087292458e-25},
}

// 領域1 T(p,h) の係数 (IF97 Table 6)
var liquidTph = []term{
	{0, 0, -238.72489924521}, {0, 1, 404.21188637945}, {0, 2, 113.49746881718},
	{0, 6, -5.8457616048039}, {0, 22, -0.1528548241314e-3}, {0, 32, -0.10866707695377e-5},
	{1, 0, -13.391744872602}, {1, 1, 43.211039183559}, {1, 2, -54.010067170506},
	{1, 3, 30.535892203916}, {1, 4, -6.5964749423638}, {1, 10, 0.93965400878363e-2},
	{1, 32, 0.1157364750534e-6}, {2, 10, -0.25858641282073e-4}, {2, 32, -0.40644363084799e-8},
	{3, 10, 0.66456186191635e-7}, {3, 32, 0.80670734103027e-10}, {4, 32, -0.93477771213947e-12},
	{5, 32, 0.58265442020601e-14}, {6, 32, -0.15020185953503e-16},
}

// 領域1 T(p,s) の係数 (IF97 Table 8)
var liquidTps = []term{
	{0, 0, 174.78268058307}, {0, 1, 34.806930892873}, {0, 2, 6.5292584978455},
	{0, 3, 0.33039981775489}, {0, 11, -0.19281382923196e-6}, {0, 31, -0.24909197244573e-22},
	{1, 0, -0.26107636489332}, {1, 1, 0.22592965981586}, {1, 2, -0.64256463395226e-1},
	{1, 3, 0.78876289270526e-2}, {1, 12, 0.35672110607366e-9}, {1, 31, 0.17332496994895e-23},
	{2, 0, 0.56608900654837e-3}, {2, 1, -0.32635483139717e-3}, {2, 2, 0.44778286690632e-4},
	{2, 9, -0.51322156908507e-9}, {2, 31, -0.42522657042207e-25}, {3, 10, 0.26400441360689e-12},
	{3, 32, 0.78124600459723e-28}, {4, 32, -0.30732199903668e-30},
}

// LiquidRegion is IF97 region 1, compressed and subcooled water.
type LiquidRegion struct{}

func (LiquidRegion) Phase() Phase { return PhaseLiquid }

/*
領域1の熱物性値を計算する。

	Args:
	    T: 温度, K
	    p: 圧力, Pa

	Returns:
	    熱物性値

	Notes:
	    IF97 式(7), Table 3
	    π = p / 16.53 MPa, τ = 1386 K / T
*/
func (LiquidRegion) PropertiesTp(T, p float64) (State, error) {
	if err := checkRange("T", T, MinTemperature, LiquidMaxTemperature); err != nil {
		return State{}, err
	}
	if err := checkPressure(p); err != nil {
		return State{}, err
	}

	pi := p / 16.53e6
	tau := 1386 / T
	d := liquidGibbsDerivs(pi, tau)

	R := GasConstant
	a := d.gp - tau*d.gpt

	return State{
		T:     T,
		P:     p,
		V:     pi * d.gp * R * T / p,
		U:     R * T * (tau*d.gt - pi*d.gp),
		S:     R * (tau*d.gt - d.g),
		H:     R * T * tau * d.gt,
		Cv:    R * (-tau*tau*d.gtt + a*a/d.gpp),
		Cp:    -R * tau * tau * d.gtt,
		W:     math.Sqrt(R * T * d.gp * d.gp / (a*a/(tau*tau*d.gtt) - d.gpp)),
		Phase: PhaseLiquid,
	}, nil
}

func liquidGibbsDerivs(pi, tau float64) gibbsDerivs {
	var d gibbsDerivs
	x := 7.1 - pi
	y := tau - 1.222
	for _, t := range liquidGibbs {
		xI2, xI1, xI := powers(x, t.I)
		yJ2, yJ1, yJ := powers(y, t.J)
		I, J := float64(t.I), float64(t.J)

		d.g += t.N * xI * yJ
		d.gp -= t.N * I * xI1 * yJ
		d.gpp += t.N * I * (I - 1) * xI2 * yJ
		d.gt += t.N * xI * J * yJ1
		d.gtt += t.N * xI * J * (J - 1) * yJ2
		d.gpt -= t.N * I * xI1 * J * yJ1
	}
	return d
}

func (r LiquidRegion) PropertiesCelsius(t, p float64) (State, error) {
	return r.PropertiesTp(t+ZeroCelsius, p)
}

func (r LiquidRegion) PropertiesPH(p, h float64) (State, error) {
	return propertiesBackward(r, p, h, Enthalpy)
}

func (r LiquidRegion) PropertiesPS(p, s float64) (State, error) {
	return propertiesBackward(r, p, s, Entropy)
}

/*
圧力と比エンタルピーから温度を求める。

	Args:
	    p: 圧力, Pa
	    h: 比エンタルピー, J/kg

	Returns:
	    温度, K

	Notes:
	    IF97 式(11)
*/
func (LiquidRegion) TemperaturePH(p, h float64) (float64, error) {
	if err := checkPressure(p); err != nil {
		return 0, err
	}
	if err := checkFinite("h", h); err != nil {
		return 0, err
	}
	return polySum(liquidTph, p/1e6, h/2500e3+1), nil
}

/*
圧力と比エントロピーから温度を求める。

	Args:
	    p: 圧力, Pa
	    s: 比エントロピー, J/kg K

	Returns:
	    温度, K

	Notes:
	    IF97 式(13)
*/
func (LiquidRegion) TemperaturePS(p, s float64) (float64, error) {
	if err := checkPressure(p); err != nil {
		return 0, err
	}
	if err := checkFinite("s", s); err != nil {
		return 0, err
	}
	return polySum(liquidTps, p/1e6, s/1e3+2), nil
}

/*
圧力 p における領域1の温度範囲。

	Notes:
	    p_s(623.15 K) を超える圧力では 623.15 K の等温線が上限となる。
	    この圧力で領域2-3境界も 623.15 K を通る。
*/
func (LiquidRegion) Bounds(p float64) (float64, float64, error) {
	if err := checkRange("p", p, MinSaturationPressure, MaxPressure); err != nil {
		return 0, 0, err
	}
	if p > saturationPressure623 {
		return MinTemperature, LiquidMaxTemperature, nil
	}
	upper, err := SaturationTemperature(p)
	if err != nil {
		return 0, 0, err
	}
	return MinTemperature, math.Min(upper, LiquidMaxTemperature), nil
}

func (r LiquidRegion) Contains(p, value float64, kind Kind) bool {
	return contains(r, p, value, kind)
}
