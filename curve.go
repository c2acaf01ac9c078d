package curves

import (
	"errors"
	"fmt"

	"github.com/tphakala/go-curves/internal/polynomial"
)

// Common errors returned by segment construction.
var (
	// ErrNilCurve indicates an operation on a nil curve.
	ErrNilCurve = errors.New("nil curve")

	// ErrEmptyCoefficients indicates a polynomial segment with no coefficients.
	ErrEmptyCoefficients = errors.New("empty coefficient list")

	// ErrDegenerateDomain indicates a spline segment whose domain has zero length.
	ErrDegenerateDomain = errors.New("degenerate segment domain")

	// ErrInvalidConfig indicates invalid configuration parameters.
	ErrInvalidConfig = errors.New("invalid curve configuration")
)

// Bounds is a half-open domain interval [Low, High).
// Low <= High is assumed, not enforced.
type Bounds struct {
	Low  float64
	High float64
}

// Contains reports whether x lies in [Low, High).
func (b Bounds) Contains(x float64) bool {
	return x >= b.Low && x < b.High
}

// Length returns High - Low.
func (b Bounds) Length() float64 {
	return b.High - b.Low
}

// Hermite holds cubic Hermite boundary conditions: the value and slope at
// the start (V0, D0) and at the end (V1, D1) of a segment.
type Hermite struct {
	V0 float64 // Initial value
	D0 float64 // Initial slope
	V1 float64 // Final value
	D1 float64 // Final slope
}

// segment is one polynomial piece of a curve.
type segment struct {
	coeffs []float64 // Power basis in (x - offset), lowest order first
	bounds Bounds
	offset float64
}

// SegmentInfo is a read-only copy of a segment's definition.
type SegmentInfo struct {
	Coeffs []float64
	Bounds Bounds
	Offset float64
}

// Curve is a piecewise polynomial function of one variable.
//
// The zero value is not ready for use; create curves with [New] or
// [NewWithConfig]. All methods accept a nil receiver: mutators do nothing
// and evaluation returns the default value.
type Curve struct {
	segments     []segment
	scale        float64
	offset       float64
	maxAmplitude float64
}

// New creates an empty curve with unit scale, zero offset and no amplitude limit.
func New() *Curve {
	return &Curve{
		scale:        defaultScale,
		offset:       defaultOffset,
		maxAmplitude: defaultMaxAmplitude,
	}
}

// NewWithConfig creates an empty curve with the given post-processing settings.
// A nil config yields the same curve as [New].
func NewWithConfig(config *Config) (*Curve, error) {
	if config == nil {
		return New(), nil
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &Curve{
		scale:        config.Scale,
		offset:       config.Offset,
		maxAmplitude: config.MaxAmplitude,
	}, nil
}

// Discard releases all segments and restores default post-processing.
// It is safe to call on a nil curve and to call more than once.
func (c *Curve) Discard() {
	if c == nil {
		return
	}
	clear(c.segments)
	c.segments = nil
	c.scale = defaultScale
	c.offset = defaultOffset
	c.maxAmplitude = defaultMaxAmplitude
}

// AddPolySegment appends a polynomial segment over bounds.
// Coefficients are ordered from lowest to highest order and are copied;
// the polynomial is evaluated at x directly (offset 0).
//
// The segment is appended after all existing ones regardless of where its
// bounds fall. On a nil curve or with no coefficients nothing is added and
// ErrNilCurve or ErrEmptyCoefficients is returned.
func (c *Curve) AddPolySegment(coeffs []float64, bounds Bounds) error {
	if c == nil {
		return ErrNilCurve
	}
	if len(coeffs) == 0 {
		return fmt.Errorf("%w: segment [%g, %g)", ErrEmptyCoefficients, bounds.Low, bounds.High)
	}
	c.appendSegment(coeffs, bounds, 0)
	return nil
}

// AddSpline3Segment appends a cubic segment defined by Hermite boundary values
// ordered as [finalSlope, finalValue, initialSlope, initialValue].
// The caller's array is not modified.
//
// The cubic is stored relative to bounds.Low. A zero-length domain is
// rejected with ErrDegenerateDomain.
func (c *Curve) AddSpline3Segment(values [Spline3Values]float64, bounds Bounds) error {
	return c.AddHermiteSegment(Hermite{
		V0: values[spline3InitialValue],
		D0: values[spline3InitialSlope],
		V1: values[spline3FinalValue],
		D1: values[spline3FinalSlope],
	}, bounds)
}

// AddHermiteSegment appends a cubic segment interpolating h.V0 with slope h.D0
// at bounds.Low and h.V1 with slope h.D1 at bounds.High.
func (c *Curve) AddHermiteSegment(h Hermite, bounds Bounds) error {
	if c == nil {
		return ErrNilCurve
	}
	length := bounds.Length()
	if length == 0 {
		return fmt.Errorf("%w: spline segment [%g, %g)", ErrDegenerateDomain, bounds.Low, bounds.High)
	}
	coeffs := polynomial.FromHermite(h.V0, h.D0, h.V1, h.D1, length)
	c.appendSegment(coeffs[:], bounds, bounds.Low)
	return nil
}

func (c *Curve) appendSegment(coeffs []float64, bounds Bounds, offset float64) {
	c.segments = append(c.segments, segment{
		coeffs: append([]float64(nil), coeffs...),
		bounds: bounds,
		offset: offset,
	})
}

// SetScale sets the factor applied to every evaluated value before the offset.
func (c *Curve) SetScale(scale float64) {
	if c == nil {
		return
	}
	c.scale = scale
}

// SetOffset sets the value added to every evaluated value after scaling.
func (c *Curve) SetOffset(offset float64) {
	if c == nil {
		return
	}
	c.offset = offset
}

// SetMaxAmplitude limits evaluated values to [-maxAmplitude, maxAmplitude].
// Zero or negative values remove the limit.
func (c *Curve) SetMaxAmplitude(maxAmplitude float64) {
	if c == nil {
		return
	}
	c.maxAmplitude = maxAmplitude
}

// Scale returns the current scale factor.
func (c *Curve) Scale() float64 {
	if c == nil {
		return defaultScale
	}
	return c.scale
}

// Offset returns the current output offset.
func (c *Curve) Offset() float64 {
	if c == nil {
		return defaultOffset
	}
	return c.offset
}

// MaxAmplitude returns the current amplitude limit (<= 0 means unlimited).
func (c *Curve) MaxAmplitude() float64 {
	if c == nil {
		return defaultMaxAmplitude
	}
	return c.maxAmplitude
}

// Len returns the number of segments.
func (c *Curve) Len() int {
	if c == nil {
		return 0
	}
	return len(c.segments)
}

// Segment returns a copy of the i-th segment in insertion order.
func (c *Curve) Segment(i int) (SegmentInfo, bool) {
	if c == nil || i < 0 || i >= len(c.segments) {
		return SegmentInfo{}, false
	}
	s := c.segments[i]
	return SegmentInfo{
		Coeffs: append([]float64(nil), s.coeffs...),
		Bounds: s.bounds,
		Offset: s.offset,
	}, true
}

// Domain returns the smallest interval covering every segment's bounds.
// Gaps between segments are not reported. ok is false for an empty curve.
func (c *Curve) Domain() (domain Bounds, ok bool) {
	if c.Len() == 0 {
		return Bounds{}, false
	}
	domain = c.segments[0].bounds
	for _, s := range c.segments[1:] {
		domain.Low = min(domain.Low, s.bounds.Low)
		domain.High = max(domain.High, s.bounds.High)
	}
	return domain, true
}
