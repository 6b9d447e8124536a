package iapws

import "fmt"

// Lookup picks the region a state belongs to and evaluates it there.
// The zero value is ready to use and safe for concurrent use.
type Lookup struct {
	Liquid LiquidRegion
	Vapor  VaporRegion
}

func NewLookup() *Lookup {
	return &Lookup{}
}

/*
温度と圧力から領域を判定する。

	Args:
	    T: 温度, K
	    p: 圧力, Pa

	Returns:
	    領域

	Notes:
	    T <= 623.15 K では飽和線、623.15 K < T <= 863.15 K では領域2-3境界で判定する。
	    領域3に入る場合は ErrRegionMismatch を返す。
*/
func (l *Lookup) RegionTp(T, p float64) (Region, error) {
	if err := checkRange("T", T, MinTemperature, MaxTemperature); err != nil {
		return nil, err
	}
	if err := checkPressure(p); err != nil {
		return nil, err
	}

	switch {
	case T <= LiquidMaxTemperature:
		ps, err := SaturationPressure(T)
		if err != nil {
			return nil, err
		}
		if p >= ps {
			return l.Liquid, nil
		}
		return l.Vapor, nil
	case T <= Boundary23MaxTemperature:
		pb, err := Boundary23Pressure(T)
		if err != nil {
			return nil, err
		}
		if p <= pb {
			return l.Vapor, nil
		}
		return nil, fmt.Errorf("T = %g K, p = %g Pa lies in region 3: %w", T, p, ErrRegionMismatch)
	default:
		return l.Vapor, nil
	}
}

func (l *Lookup) PropertiesTp(T, p float64) (State, error) {
	r, err := l.RegionTp(T, p)
	if err != nil {
		return State{}, err
	}
	return r.PropertiesTp(T, p)
}

func (l *Lookup) PropertiesCelsius(t, p float64) (State, error) {
	return l.PropertiesTp(t+ZeroCelsius, p)
}

// RegionPX returns the region holding the (p, h) or (p, s) pair.
func (l *Lookup) RegionPX(p, value float64, kind Kind) (Region, error) {
	for _, r := range []Region{l.Liquid, l.Vapor} {
		if r.Contains(p, value, kind) {
			return r, nil
		}
	}
	return nil, fmt.Errorf("p = %g Pa, %s = %g: no single-phase region: %w", p, kind, value, ErrRegionMismatch)
}

func (l *Lookup) PropertiesPH(p, h float64) (State, error) {
	r, err := l.RegionPX(p, h, Enthalpy)
	if err != nil {
		return State{}, err
	}
	return r.PropertiesPH(p, h)
}

func (l *Lookup) PropertiesPS(p, s float64) (State, error) {
	r, err := l.RegionPX(p, s, Entropy)
	if err != nil {
		return State{}, err
	}
	return r.PropertiesPS(p, s)
}
