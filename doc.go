// Package curves provides piecewise polynomial curve evaluation in pure Go.
//
// A [Curve] is an ordered list of segments. Each segment is a polynomial in
// power-basis form valid over a half-open domain [Low, High). Segments are
// added either from explicit coefficients or from cubic Hermite boundary
// conditions (value and slope at each end), which are converted to
// power-basis coefficients once at construction time.
//
// The package targets control and trajectory-generation callers, such as
// motion profiles, that need cheap curve lookups in hot loops.
//
// # Quick Start
//
//	c := curves.New()
//	_ = c.AddPolySegment([]float64{1, 2, 3}, curves.Bounds{Low: 0, High: 10})
//	y := c.Value(2, 0) // 1 + 2*2 + 3*4 = 17
//
// Hermite segments take boundary values ordered as
// [finalSlope, finalValue, initialSlope, initialValue]:
//
//	_ = c.AddSpline3Segment([4]float64{0, 1, 0, 0}, curves.Bounds{Low: 10, High: 12})
//
// or, more readably:
//
//	_ = c.AddHermiteSegment(curves.Hermite{V0: 0, D0: 0, V1: 1, D1: 0}, curves.Bounds{Low: 10, High: 12})
//
// # Evaluation
//
// [Curve.Value] scans segments in insertion order and evaluates the first one
// whose domain contains the position. Overlapping segments are therefore
// resolved by insertion order: the segment added first wins. Positions covered
// by no segment yield the caller's default value.
//
// The raw value (or the default) is then post-processed:
//
//	y = scale*y + offset
//	y = clamp(y, -maxAmplitude, maxAmplitude)  // only when maxAmplitude > 0
//
// Batch variants ([Curve.Values], [Curve.ValuesFloat32], [Curve.ValuesParallel],
// [Curve.Sample]) produce the same results as repeated calls to Value, with the
// post-processing step vectorised via github.com/tphakala/simd.
//
// # Errors
//
// Segment additions never panic. Invalid input (nil curve, empty coefficients,
// zero-length spline domain) leaves the curve unchanged and is reported as a
// sentinel error that callers may ignore. Evaluation has no error path.
//
// # Thread Safety
//
// A Curve is not safe for concurrent mutation. Once fully built it may be
// evaluated from multiple goroutines.
package curves
