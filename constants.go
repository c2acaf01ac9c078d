package curves

// Curve post-processing defaults.
const (
	defaultScale        = 1.0
	defaultOffset       = 0.0
	defaultMaxAmplitude = -1.0 // Any value <= 0 disables clamping
)

// Spline construction constants.
const (
	// Spline3Values is the number of boundary values taken by AddSpline3Segment.
	Spline3Values = 4

	// Positions of each boundary value in the AddSpline3Segment array.
	spline3FinalSlope   = 0
	spline3FinalValue   = 1
	spline3InitialSlope = 2
	spline3InitialValue = 3

	// minSplineKnots is the minimum number of knots for NewHermiteSpline.
	minSplineKnots = 2
)

// Batch evaluation constants.
const (
	// minParallelChunk is the smallest number of positions handed to one worker.
	minParallelChunk = 1024
)
