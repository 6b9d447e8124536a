package iapws

// 相の区分
type Phase int

// 相の区分の定数
const (
	PhaseLiquid        Phase = iota // 水（領域1）
	PhaseVapor                      // 過熱蒸気（領域2）
	PhaseTwoPhase                   // 湿り蒸気（未実装）
	PhaseSupercritical              // 超臨界（未実装）
)

func (ph Phase) String() string {
	switch ph {
	case PhaseLiquid:
		return "liquid"
	case PhaseVapor:
		return "vapor"
	case PhaseTwoPhase:
		return "two-phase"
	case PhaseSupercritical:
		return "supercritical"
	}
	return "unknown"
}

// Kind selects the second independent variable of a (p, h) or (p, s) query.
type Kind int

const (
	Enthalpy Kind = iota
	Entropy
)

func (k Kind) String() string {
	if k == Entropy {
		return "s"
	}
	return "h"
}

// of picks the property of st named by k.
func (k Kind) of(st State) float64 {
	if k == Entropy {
		return st.S
	}
	return st.H
}
