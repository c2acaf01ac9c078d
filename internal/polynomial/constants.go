package polynomial

// Cubic Hermite conversion constants.
// These are the integer factors of the Hermite-to-power-basis formulas:
//
//	c2 = (3*(v1 - v0) - L*(2*d0 + d1)) / L²
//	c3 = (2*(v0 - v1) + L*(d0 + d1)) / L³
const (
	hermiteValueCoeff2 = 3.0 // Weight of (v1 - v0) in c2
	hermiteSlopeCoeff2 = 2.0 // Weight of d0 in c2
	hermiteValueCoeff3 = 2.0 // Weight of (v0 - v1) in c3

	// CubicCoeffs is the number of power-basis coefficients of a cubic.
	CubicCoeffs = 4
)
