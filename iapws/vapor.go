package iapws

import "math"

// 領域2 理想気体部の係数 (IF97 Table 10)。I は使用しない。
var vaporIdeal = []term{
	{0, 0, -9.6927686500217}, {0, 1, 10.086655968018}, {0, -5, -0.005608791128302},
	{0, -4, 0.071452738081455}, {0, -3, -0.40710498223928}, {0, -2, 1.4240819171444},
	{0, -1, -4.383951131945}, {0, 2, -0.28408632460772}, {0, 3, 0.021268463753307},
}

// 領域2 残余部の係数 (IF97 Table 11)
var vaporResidual = []term{
	{1, 0, -0.0017731742473213}, {1, 1, -0.017834862292358}, {1, 2, -0.045996013696365},
	{1, 3, -0.057581259083432}, {1, 6, -0.05032527872793}, {2, 1, -3.3032641670203e-05},
	{2, 2, -0.00018948987516315}, {2, 4, -0.0039392777243355}, {2, 7, -0.043797295650573},
	{2, 36, -2.6674547914087e-05}, {3, 0, 2.0481737692309e-08}, {3, 1, 4.3870667284435e-07},
	{3, 3, -3.227767723857e-05}, {3, 6, -0.0015033924542148}, {3, 35, -0.040668253562649},
	{4, 1, -7.8847309559367e-10}, {4, 2, 1.2790717852285e-08}, {4, 3, 4.8225372718507e-07},
	{5, 7, 2.2922076337661e-06}, {6, 3, -1.6714766451061e-11}, {6, 16, -0.0021171472321355},
	{6, 35, -23.895741934104}, {7, 0, -5.905956432427e-18}, {7, 11, -1.2621808899101e-06},
	{7, 25, -0.038946842435739}, {8, 8, 1.1256211360459e-11}, {8, 36, -8.2311340897998},
	{9, 13, 1.9809712802088e-08}, {10, 4, 1.0406965210174e-19}, {10, 10, -1.0234747095929e-13},
	{10, 14, -1.0018179379511e-09}, {16, 29, -8.0882908646985e-11}, {16, 50, 0.10693031879409},
	{18, 57, -0.33662250574171}, {20, 20, 8.9185845355421e-25}, {20, 35, 3.0629316876232e-13},
	{20, 48, -4.2002467698208e-06}, {21, 21, -5.9056029685639e-26}, {22, 53, 3.7826947613457e-06},
	{23, 39, -1.2768608934681e-15}, {24, 26, 7.3087610595061e-29}, {24, 40, 5.5414715350778e-17},
	{24, 58, -9.436970724121e-07},
}

// VaporRegion is IF97 region 2, superheated steam.
type VaporRegion struct{}

func (VaporRegion) Phase() Phase { return PhaseVapor }

/*
領域2の熱物性値を計算する。

	Args:
	    T: 温度, K
	    p: 圧力, Pa

	Returns:
	    熱物性値

	Notes:
	    IF97 式(15), Table 12
	    π = p / 1 MPa, τ = 540 K / T
	    ギブス自由エネルギーは理想気体部 γ0 と残余部 γr の和
*/
func (VaporRegion) PropertiesTp(T, p float64) (State, error) {
	if err := checkRange("T", T, MinTemperature, MaxTemperature); err != nil {
		return State{}, err
	}
	if err := checkPressure(p); err != nil {
		return State{}, err
	}

	pi := p / 1e6
	tau := 540 / T
	d0 := vaporIdealDerivs(pi, tau)
	dr := vaporResidualDerivs(pi, tau)

	R := GasConstant
	gt := d0.gt + dr.gt
	gtt := d0.gtt + dr.gtt
	a := 1 + pi*dr.gp - tau*pi*dr.gpt
	b := 1 - pi*pi*dr.gpp

	return State{
		T:     T,
		P:     p,
		V:     pi * (d0.gp + dr.gp) * R * T / p,
		U:     R * T * (tau*gt - pi*(d0.gp+dr.gp)),
		S:     R * (tau*gt - (d0.g + dr.g)),
		H:     R * T * tau * gt,
		Cv:    R * (-tau*tau*gtt - a*a/b),
		Cp:    -R * tau * tau * gtt,
		W:     math.Sqrt(R * T * (1 + 2*pi*dr.gp + pi*pi*dr.gp*dr.gp) / (b + a*a/(tau*tau*gtt))),
		Phase: PhaseVapor,
	}, nil
}

// 理想気体部。γ0πτ = 0。
func vaporIdealDerivs(pi, tau float64) gibbsDerivs {
	d := gibbsDerivs{
		g:   math.Log(pi),
		gp:  1 / pi,
		gpp: -1 / (pi * pi),
	}
	for _, t := range vaporIdeal {
		tJ2, tJ1, tJ := powers(tau, t.J)
		J := float64(t.J)

		d.g += t.N * tJ
		d.gt += t.N * J * tJ1
		d.gtt += t.N * J * (J - 1) * tJ2
	}
	return d
}

// 残余部
func vaporResidualDerivs(pi, tau float64) gibbsDerivs {
	var d gibbsDerivs
	y := tau - 0.5
	for _, t := range vaporResidual {
		pI2, pI1, pI := powers(pi, t.I)
		yJ2, yJ1, yJ := powers(y, t.J)
		I, J := float64(t.I), float64(t.J)

		d.g += t.N * pI * yJ
		d.gp += t.N * I * pI1 * yJ
		d.gpp += t.N * I * (I - 1) * pI2 * yJ
		d.gt += t.N * pI * J * yJ1
		d.gtt += t.N * pI * J * (J - 1) * yJ2
		d.gpt += t.N * I * pI1 * J * yJ1
	}
	return d
}

func (r VaporRegion) PropertiesCelsius(t, p float64) (State, error) {
	return r.PropertiesTp(t+ZeroCelsius, p)
}

func (r VaporRegion) PropertiesPH(p, h float64) (State, error) {
	return propertiesBackward(r, p, h, Enthalpy)
}

func (r VaporRegion) PropertiesPS(p, s float64) (State, error) {
	return propertiesBackward(r, p, s, Entropy)
}

/*
圧力 p における領域2の温度範囲。

	Notes:
	    下限は p_s(623.15 K) 以上で領域2-3境界、それ未満で飽和線、
	    三重点圧力未満では 273.15 K。
	    http://www.iapws.org/relguide/Supp-PHS12-2014.pdf
*/
func (VaporRegion) Bounds(p float64) (float64, float64, error) {
	if err := checkPressure(p); err != nil {
		return 0, 0, err
	}

	var lower float64
	var err error
	switch {
	case p >= saturationPressure623:
		lower, err = Boundary23Temperature(p)
	case p >= MinSaturationPressure:
		lower, err = SaturationTemperature(p)
	default:
		lower = MinTemperature
	}
	if err != nil {
		return 0, 0, err
	}
	return math.Max(lower, MinTemperature), MaxTemperature, nil
}

func (r VaporRegion) Contains(p, value float64, kind Kind) bool {
	return contains(r, p, value, kind)
}
