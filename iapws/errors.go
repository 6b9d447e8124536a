package iapws

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors. Callers match them with errors.Is.
var (
	// ErrInputRange reports a temperature, pressure, enthalpy or entropy outside
	// the domain of a correlation.
	ErrInputRange = errors.New("input out of range")
	// ErrRegionMismatch reports a state that does not belong to the queried region.
	ErrRegionMismatch = errors.New("state outside region")
	// ErrNumericalDegeneracy reports a vanishing discriminant or denominator.
	ErrNumericalDegeneracy = errors.New("numerical degeneracy")
)

// RangeError describes an input rejected by a domain check.
type RangeError struct {
	Quantity string // "T", "p", "rho", ...
	Value    float64
	Min, Max float64
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("%s = %g outside [%g, %g]", e.Quantity, e.Value, e.Min, e.Max)
}

func (e *RangeError) Unwrap() error { return ErrInputRange }

// checkRange returns a *RangeError unless min <= v <= max.
// NaN is always rejected.
func checkRange(quantity string, v, min, max float64) error {
	if !(min <= v && v <= max) {
		return &RangeError{Quantity: quantity, Value: v, Min: min, Max: max}
	}
	return nil
}

// checkFinite rejects NaN and infinite inputs that have no fixed domain.
func checkFinite(quantity string, v float64) error {
	return checkRange(quantity, v, -math.MaxFloat64, math.MaxFloat64)
}
