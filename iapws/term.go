package iapws

import "math"

// term is one entry n·x^I·y^J of a correlation with integer exponents.
type term struct {
	I, J int
	N    float64
}

// realTerm is a term whose x exponent is fractional.
type realTerm struct {
	I float64
	J int
	N float64
}

// polySum evaluates Σ n·x^I·y^J.
func polySum(tbl []term, x, y float64) float64 {
	var sum float64
	for _, t := range tbl {
		sum += t.N * math.Pow(x, float64(t.I)) * math.Pow(y, float64(t.J))
	}
	return sum
}

// realPolySum evaluates Σ n·x^I·y^J for fractional I.
func realPolySum(tbl []realTerm, x, y float64) float64 {
	var sum float64
	for _, t := range tbl {
		sum += t.N * math.Pow(x, t.I) * math.Pow(y, float64(t.J))
	}
	return sum
}

// powers returns x^(k-2), x^(k-1) and x^k.
func powers(x float64, k int) (float64, float64, float64) {
	p2 := math.Pow(x, float64(k-2))
	p1 := p2 * x
	return p2, p1, p1 * x
}

// gibbsDerivs holds a dimensionless Gibbs free energy and its partial
// derivatives with respect to π and τ.
type gibbsDerivs struct {
	g, gp, gpp, gt, gtt, gpt float64
}
