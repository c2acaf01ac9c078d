package curves

import (
	"fmt"

	"github.com/tphakala/simd/cpu"
)

// Knot is a point a Hermite spline passes through, with the slope it has there.
type Knot struct {
	Position float64
	Value    float64
	Slope    float64
}

// NewConstant creates a curve equal to value over bounds.
func NewConstant(value float64, bounds Bounds) *Curve {
	c := New()
	_ = c.AddPolySegment([]float64{value}, bounds)
	return c
}

// NewLinear creates a curve rising (or falling) linearly from `from` at
// bounds.Low to `to` at bounds.High.
func NewLinear(from, to float64, bounds Bounds) (*Curve, error) {
	slope := (to - from) / bounds.Length()
	c := New()
	if err := c.AddHermiteSegment(Hermite{V0: from, D0: slope, V1: to, D1: slope}, bounds); err != nil {
		return nil, err
	}
	return c, nil
}

// NewSmoothStep creates a cubic transition from `from` to `to` over bounds
// with zero slope at both ends. This is the usual shape for point-to-point
// motion where the axis starts and stops at rest.
func NewSmoothStep(from, to float64, bounds Bounds) (*Curve, error) {
	c := New()
	if err := c.AddHermiteSegment(Hermite{V0: from, V1: to}, bounds); err != nil {
		return nil, err
	}
	return c, nil
}

// NewHermiteSpline creates a piecewise cubic curve through the given knots.
// Consecutive knots define one segment each; the curve is continuous in
// value and slope. Knot positions must be strictly increasing.
//
// The last knot closes the final segment's open end, so evaluating exactly at
// the last knot's position yields the default value.
func NewHermiteSpline(knots []Knot) (*Curve, error) {
	if len(knots) < minSplineKnots {
		return nil, fmt.Errorf("%w: spline needs at least %d knots, got %d",
			ErrInvalidConfig, minSplineKnots, len(knots))
	}

	c := New()
	for i := 1; i < len(knots); i++ {
		k0, k1 := knots[i-1], knots[i]
		if k1.Position <= k0.Position {
			return nil, fmt.Errorf("%w: knot %d at %g does not follow knot %d at %g",
				ErrInvalidConfig, i, k1.Position, i-1, k0.Position)
		}
		h := Hermite{V0: k0.Value, D0: k0.Slope, V1: k1.Value, D1: k1.Slope}
		if err := c.AddHermiteSegment(h, Bounds{Low: k0.Position, High: k1.Position}); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// SIMDInfo describes the SIMD features used by batch evaluation.
func SIMDInfo() string {
	return cpu.Info()
}
