package iapws

import "math"

// Subregion is a partition of region 2 used by the backward equations.
type Subregion int

const (
	Subregion2a Subregion = iota
	Subregion2b
	Subregion2c
)

func (sr Subregion) String() string {
	switch sr {
	case Subregion2a:
		return "2a"
	case Subregion2b:
		return "2b"
	case Subregion2c:
		return "2c"
	}
	return "unknown"
}

// 領域2b-2c境界の係数 (IF97 Table 19)
var b2bcN = [5]float64{
	0.90584278514723e3, -0.67955786399241, 0.12809002730136e-3,
	0.26526571908428e4, 0.45257578905948e1,
}

/*
領域2bと2cの境界上の圧力を比エンタルピーから求める。

	Args:
	    h: 比エンタルピー, J/kg

	Returns:
	    圧力, Pa

	Notes:
	    IF97 式(20)
*/
func B2bcPressure(h float64) float64 {
	n := &b2bcN
	eta := h / 1e3
	return (n[0] + n[1]*eta + n[2]*eta*eta) * 1e6
}

/*
領域2bと2cの境界上の比エンタルピーを圧力から求める。

	Args:
	    p: 圧力, Pa

	Returns:
	    比エンタルピー, J/kg

	Notes:
	    IF97 式(21)
*/
func B2bcEnthalpy(p float64) (float64, error) {
	n := &b2bcN
	if err := checkRange("p", p, n[4]*1e6, MaxPressure); err != nil {
		return 0, err
	}
	pi := p / 1e6
	return (n[3] + math.Sqrt((pi-n[4])/n[2])) * 1e3, nil
}

// SubregionPH selects the T(p,h) backward equation.
func SubregionPH(p, h float64) Subregion {
	switch {
	case p <= 4e6:
		return Subregion2a
	case p < B2bcPressure(h):
		return Subregion2b
	default:
		return Subregion2c
	}
}

// SubregionPS selects the T(p,s) backward equation.
func SubregionPS(p, s float64) Subregion {
	switch {
	case p <= 4e6:
		return Subregion2a
	case s > 5850:
		return Subregion2b
	default:
		return Subregion2c
	}
}

/*
圧力と比エンタルピーから温度を求める。

	Args:
	    p: 圧力, Pa
	    h: 比エンタルピー, J/kg

	Returns:
	    温度, K

	Notes:
	    IF97 式(22), (23), (24)
	    η = h / 2000 kJ/kg
*/
func (VaporRegion) TemperaturePH(p, h float64) (float64, error) {
	if err := checkPressure(p); err != nil {
		return 0, err
	}
	if err := checkFinite("h", h); err != nil {
		return 0, err
	}
	pi := p / 1e6
	eta := h / 2000e3

	switch SubregionPH(p, h) {
	case Subregion2a:
		return polySum(vaporTph2a, pi, eta-2.1), nil
	case Subregion2b:
		return polySum(vaporTph2b, pi-2, eta-2.6), nil
	default:
		return polySum(vaporTph2c, pi+25, eta-1.8), nil
	}
}

/*
圧力と比エントロピーから温度を求める。

	Args:
	    p: 圧力, Pa
	    s: 比エントロピー, J/kg K

	Returns:
	    温度, K

	Notes:
	    IF97 式(25), (26), (27)
	    2a の圧力の指数は非整数
*/
func (VaporRegion) TemperaturePS(p, s float64) (float64, error) {
	if err := checkPressure(p); err != nil {
		return 0, err
	}
	if err := checkFinite("s", s); err != nil {
		return 0, err
	}
	pi := p / 1e6

	switch SubregionPS(p, s) {
	case Subregion2a:
		return realPolySum(vaporTps2a, pi, s/2000-2), nil
	case Subregion2b:
		return polySum(vaporTps2b, pi, 10-s/785.3), nil
	default:
		return polySum(vaporTps2c, pi, 2-s/2925.1), nil
	}
}

// 領域2a T(p,h) の係数 (IF97 Table 20)
var vaporTph2a = []term{
	{0, 0, 1089.8952318288}, {0, 1, 849.51654495535}, {0, 2, -107.81748091826},
	{0, 3, 33.153654801263}, {0, 7, -7.4232016790248}, {0, 20, 11.765048724356},
	{1, 0, 1.844574935579}, {1, 1, -4.1792700549624}, {1, 2, 6.2478196935812},
	{1, 3, -17.344563108114}, {1, 7, -200.58176862096}, {1, 9, 271.96065473796},
	{1, 11, -455.11318285818}, {1, 18, 3091.9688604755}, {1, 44, 252266.40357872},
	{2, 0, -0.0061707422868339}, {2, 2, -0.31078046629583}, {2, 7, 11.670873077107},
	{2, 36, 128127984.04046}, {2, 38, -985549096.23276}, {2, 40, 2822454697.3002},
	{2, 42, -3594897141.0703}, {2, 44, 1722734991.3197}, {3, 24, -13551.334240775},
	{3, 44, 12848734.66465}, {4, 12, 1.3865724283226}, {4, 32, 235988.32556514},
	{4, 44, -13105236.545054}, {5, 32, 7399.9835474766}, {5, 36, -551966.9703006},
	{5, 42, 3715408.5996233}, {6, 34, 19127.72923966}, {6, 44, -415351.64835634},
	{7, 28, -62.459855192507},
}

// 領域2b T(p,h) の係数 (IF97 Table 21)
var vaporTph2b = []term{
	{0, 0, 1489.5041079516}, {0, 1, 743.07798314034}, {0, 2, -97.708318797837},
	{0, 12, 2.4742464705674}, {0, 18, -0.63281320016026}, {0, 24, 1.1385952129658},
	{0, 28, -0.47811863648625}, {0, 40, 0.0085208123431544}, {1, 0, 0.93747147377932},
	{1, 2, 3.3593118604916}, {1, 6, 3.3809355601454}, {1, 12, 0.16844539671904},
	{1, 18, 0.73875745236695}, {1, 24, -0.47128737436186}, {1, 28, 0.15020273139707},
	{1, 40, -0.002176411421975}, {2, 2, -0.021810755324761}, {2, 8, -0.10829784403677},
	{2, 18, -0.046333324635812}, {2, 40, 7.1280351959551e-05}, {3, 1, 0.00011032831789999},
	{3, 2, 0.00018955248387902}, {3, 12, 0.0030891541160537}, {3, 24, 0.0013555504554949},
	{4, 2, 2.8640237477456e-07}, {4, 12, -1.0779857357512e-05}, {4, 18, -7.6462712454814e-05},
	{4, 24, 1.4052392818316e-05}, {4, 28, -3.1083814331434e-05}, {4, 40, -1.0302738212103e-06},
	{5, 18, 2.821728163504e-07}, {5, 24, 1.2704902271945e-06}, {5, 40, 7.3803353468292e-08},
	{6, 28, -1.1030139238909e-08}, {7, 2, -8.1456365207833e-14}, {7, 28, -2.5180545682962e-11},
	{9, 1, -1.7565233969407e-18}, {9, 40, 8.6934156344163e-15},
}

// 領域2c T(p,h) の係数 (IF97 Table 22)
var vaporTph2c = []term{
	{-7, 0, -3236839855524.2}, {-7, 4, 7326335090218.1}, {-6, 0, 358250899454.47},
	{-6, 2, -583401318515.9}, {-5, 0, -10783068217.47}, {-5, 2, 20825544563.171},
	{-2, 0, 610747.83564516}, {-2, 1, 859777.2253558}, {-1, 0, -25745.72360417},
	{-1, 2, 31081.088422714}, {0, 0, 1208.2315865936}, {0, 1, 482.19755109255},
	{1, 4, 3.7966001272486}, {1, 8, -10.842984880077}, {2, 4, -0.04536417267666},
	{6, 0, 1.4559115658698e-13}, {6, 1, 1.126159740723e-12}, {6, 4, -1.7804982240686e-11},
	{6, 10, 1.2324579690832e-07}, {6, 12, -1.1606921130984e-06}, {6, 16, 2.7846367088554e-05},
	{6, 20, -0.00059270038474176}, {6, 22, 0.0012918582991878},
}

// 領域2a T(p,s) の係数 (IF97 Table 25)
var vaporTps2a = []realTerm{
	{-1.5, -24, -392359.83861984}, {-1.5, -23, 515265.7382727}, {-1.5, -19, 40482.443161048},
	{-1.5, -13, -321.93790923902}, {-1.5, -11, 96.961424218694}, {-1.5, -10, -22.867846371773},
	{-1.25, -19, -449429.14124357}, {-1.25, -15, -5011.8336020166}, {-1.25, -6, 0.35684463560015},
	{-1.0, -26, 44235.33584819}, {-1.0, -21, -13673.388811708}, {-1.0, -17, 421632.60207864},
	{-1.0, -16, 22516.925837475}, {-1.0, -9, 474.42144865646}, {-1.0, -8, -149.31130797647},
	{-0.75, -15, -197811.26320452}, {-0.75, -14, -23554.39947076}, {-0.5, -26, -19070.616302076},
	{-0.5, -13, 55375.669883164}, {-0.5, -9, 3829.3691437363}, {-0.5, -7, -603.91860580567},
	{-0.25, -27, 1936.3102620331}, {-0.25, -25, 4266.064369861}, {-0.25, -11, -5978.0638872718},
	{-0.25, -6, -704.01463926862}, {0.25, 1, 338.36784107553}, {0.25, 4, 20.862786635187},
	{0.25, 8, 0.033834172656196}, {0.25, 11, -4.3124428414893e-05}, {0.5, 0, 166.53791356412},
	{0.5, 1, -139.86292055898}, {0.5, 5, -0.78849547999872}, {0.5, 6, 0.072132411753872},
	{0.5, 10, -0.0059754839398283}, {0.5, 14, -1.2141358953904e-05}, {0.5, 16, 2.3227096733871e-07},
	{0.75, 0, -10.538463566194}, {0.75, 4, 2.0718925496502}, {0.75, 9, -0.072193155260427},
	{0.75, 17, 2.074988708112e-07}, {1.0, 7, -0.018340657911379}, {1.0, 18, 2.9036272348696e-07},
	{1.25, 3, 0.21037527893619}, {1.25, 15, 0.00025681239729999}, {1.5, 5, -0.012799002933781},
	{1.5, 18, -8.2198102652018e-06},
}

// 領域2b T(p,s) の係数 (IF97 Table 26)
var vaporTps2b = []term{
	{-6, 0, 316876.65083497}, {-6, 11, 20.864175881858}, {-5, 0, -398593.99803599},
	{-5, 11, -21.816058518877}, {-4, 0, 223697.85194242}, {-4, 1, -2784.1703445817},
	{-4, 11, 9.920743607148}, {-3, 0, -75197.512299157}, {-3, 1, 2970.8605951158},
	{-3, 11, -3.4406878548526}, {-3, 12, 0.38815564249115}, {-2, 0, 17511.29508575},
	{-2, 1, -1423.7112854449}, {-2, 6, 1.0943803364167}, {-2, 10, 0.89971619308495},
	{-1, 0, -3375.9740098958}, {-1, 1, 471.62885818355}, {-1, 5, -1.9188241993679},
	{-1, 8, 0.41078580492196}, {-1, 9, -0.33465378172097}, {0, 0, 1387.0034777505},
	{0, 1, -406.63326195838}, {0, 2, 41.72734715961}, {0, 4, 2.1932549434532},
	{0, 5, -1.0320050009077}, {0, 6, 0.35882943516703}, {0, 9, 0.0052511453726066},
	{1, 0, 12.838916450705}, {1, 1, -2.8642437219381}, {1, 2, 0.56912683664855},
	{1, 3, -0.099962954584931}, {1, 7, -0.0032632037778459}, {1, 8, 0.00023320922576723},
	{2, 0, -0.1533480985745}, {2, 1, 0.029072288239902}, {2, 5, 0.00037534702741167},
	{3, 0, 0.0017296691702411}, {3, 1, -0.00038556050844504}, {3, 3, -3.5017712292608e-05},
	{4, 0, -1.4566393631492e-05}, {4, 1, 5.6420857267269e-06}, {5, 0, 4.1286150074605e-08},
	{5, 1, -2.0684671118824e-08}, {5, 2, 1.6409393674725e-09},
}

// 領域2c T(p,s) の係数 (IF97 Table 27)
var vaporTps2c = []term{
	{-2, 0, 909.68501005365}, {-2, 1, 2404.566708842}, {-1, 0, -591.6232638713},
	{0, 0, 541.45404128074}, {0, 1, -270.98308411192}, {0, 2, 979.76525097926},
	{0, 3, -469.66772959435}, {1, 0, 14.399274604723}, {1, 1, -19.104204230429},
	{1, 3, 5.3299167111971}, {1, 4, -21.252975375934}, {2, 0, -0.3114733441376},
	{2, 1, 0.60334840894623}, {2, 2, -0.042764839702509}, {3, 0, 0.0058185597255259},
	{3, 1, -0.014597008284753}, {3, 5, 0.0056631175631027}, {4, 0, -7.6155864584577e-05},
	{4, 1, 0.00022440342919332}, {4, 4, -1.2561095013413e-05}, {5, 0, 6.3323132660934e-07},
	{5, 1, -2.0541989675375e-06}, {5, 2, 3.6405370390082e-08}, {6, 0, -2.9759897789215e-09},
	{6, 1, 1.0136618529763e-08}, {7, 0, 5.9925719692351e-12}, {7, 1, -2.0677870105164e-11},
	{7, 3, -2.0874278181886e-11}, {7, 4, 1.0162166825089e-10}, {7, 5, -1.6429828281347e-10},
}
