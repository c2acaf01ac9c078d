// Package polynomial provides power-basis polynomial evaluation and the
// cubic Hermite to power-basis conversion used by curve segments.
package polynomial

// Eval evaluates Σ coeffs[i]·xⁱ using Horner's method.
// Coefficients are ordered from lowest to highest order.
// An empty coefficient slice evaluates to zero.
func Eval(coeffs []float64, x float64) float64 {
	var y float64
	for i := len(coeffs) - 1; i >= 0; i-- {
		y = y*x + coeffs[i]
	}
	return y
}

// Derivative returns the power-basis coefficients of the first derivative.
// A constant (or empty) polynomial yields a single zero coefficient.
func Derivative(coeffs []float64) []float64 {
	if len(coeffs) <= 1 {
		return []float64{0}
	}
	d := make([]float64, len(coeffs)-1)
	for i := 1; i < len(coeffs); i++ {
		d[i-1] = float64(i) * coeffs[i]
	}
	return d
}

// FromHermite converts cubic Hermite boundary conditions into power-basis
// coefficients over the local coordinate u = x - low, where length = high - low.
//
// The resulting cubic p satisfies:
//
//	p(0) = v0, p'(0) = d0, p(length) = v1, p'(length) = d1
//
// A zero length produces non-finite coefficients; callers are expected to
// reject degenerate domains before calling.
func FromHermite(v0, d0, v1, d1, length float64) [CubicCoeffs]float64 {
	l2 := length * length
	l3 := l2 * length

	return [CubicCoeffs]float64{
		v0,
		d0,
		(hermiteValueCoeff2*(v1-v0) - length*(hermiteSlopeCoeff2*d0+d1)) / l2,
		(hermiteValueCoeff3*(v0-v1) + length*(d0+d1)) / l3,
	}
}
