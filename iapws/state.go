package iapws

// State is the full set of properties at one thermodynamic state.
// All fields are filled by a single forward evaluation.
type State struct {
	T     float64 // 温度, K
	P     float64 // 圧力, Pa
	V     float64 // 比体積, m3/kg
	U     float64 // 比内部エネルギー, J/kg
	S     float64 // 比エントロピー, J/kg K
	H     float64 // 比エンタルピー, J/kg
	Cv    float64 // 定積比熱, J/kg K
	Cp    float64 // 定圧比熱, J/kg K
	W     float64 // 音速, m/s
	Phase Phase
}

// Density returns 1/V, kg/m3.
func (st State) Density() float64 {
	return 1.0 / st.V
}

// Celsius returns the temperature in degree C.
func (st State) Celsius() float64 {
	return st.T - ZeroCelsius
}

// Gibbs returns the specific Gibbs free energy h - T s, J/kg.
func (st State) Gibbs() float64 {
	return st.H - st.T*st.S
}

// Viscosity returns the dynamic viscosity at this state, Pa s.
func (st State) Viscosity() (float64, error) {
	return DynamicViscosity(st.T, st.Density())
}
