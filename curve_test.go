package curves

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNew_Defaults tests the post-processing defaults of a new curve.
func TestNew_Defaults(t *testing.T) {
	c := New()

	assert.Equal(t, 1.0, c.Scale())
	assert.Equal(t, 0.0, c.Offset())
	assert.Equal(t, -1.0, c.MaxAmplitude())
	assert.Equal(t, 0, c.Len())
}

// TestAddPolySegment tests that polynomial segments are appended verbatim.
func TestAddPolySegment(t *testing.T) {
	c := New()
	coeffs := []float64{1, 2, 3}

	require.NoError(t, c.AddPolySegment(coeffs, Bounds{Low: 0, High: 10}))
	require.Equal(t, 1, c.Len())

	info, ok := c.Segment(0)
	require.True(t, ok)
	assert.Equal(t, []float64{1, 2, 3}, info.Coeffs)
	assert.Equal(t, Bounds{Low: 0, High: 10}, info.Bounds)
	assert.Equal(t, 0.0, info.Offset)
}

// TestAddPolySegment_CopiesCoefficients tests that caller slices are not retained.
func TestAddPolySegment_CopiesCoefficients(t *testing.T) {
	c := New()
	coeffs := []float64{1, 2, 3}
	require.NoError(t, c.AddPolySegment(coeffs, Bounds{Low: 0, High: 10}))

	coeffs[0] = 100
	assert.Equal(t, 17.0, c.Value(2, 0))

	info, _ := c.Segment(0)
	info.Coeffs[1] = 100
	assert.Equal(t, 17.0, c.Value(2, 0), "Segment must return a copy")
}

// TestAddPolySegment_Empty tests that empty coefficient lists are rejected as no-ops.
func TestAddPolySegment_Empty(t *testing.T) {
	tests := []struct {
		name   string
		coeffs []float64
	}{
		{"Nil", nil},
		{"Zero length", []float64{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New()
			err := c.AddPolySegment(tt.coeffs, Bounds{Low: 0, High: 1})
			assert.ErrorIs(t, err, ErrEmptyCoefficients)
			assert.Equal(t, 0, c.Len())
			assert.Equal(t, 7.0, c.Value(0.5, 7))
		})
	}
}

// TestAddPolySegment_AppendsInOrder tests that segments are appended regardless of bounds.
func TestAddPolySegment_AppendsInOrder(t *testing.T) {
	c := New()
	require.NoError(t, c.AddPolySegment([]float64{2}, Bounds{Low: 5, High: 10}))
	require.NoError(t, c.AddPolySegment([]float64{1}, Bounds{Low: 0, High: 5}))

	first, _ := c.Segment(0)
	second, _ := c.Segment(1)
	assert.Equal(t, Bounds{Low: 5, High: 10}, first.Bounds)
	assert.Equal(t, Bounds{Low: 0, High: 5}, second.Bounds)
}

// TestAddSpline3Segment tests coefficient derivation and offset.
func TestAddSpline3Segment(t *testing.T) {
	c := New()
	// [d1, v1, d0, v0]
	values := [Spline3Values]float64{0, 1, 0, 0}
	bounds := Bounds{Low: 2, High: 4}

	require.NoError(t, c.AddSpline3Segment(values, bounds))

	info, ok := c.Segment(0)
	require.True(t, ok)
	assert.Equal(t, 2.0, info.Offset, "spline offset must equal bounds.Low")
	// L=2: c2 = 3/4, c3 = -2/8
	want := []float64{0, 0, 0.75, -0.25}
	if diff := cmp.Diff(want, info.Coeffs, cmpopts.EquateApprox(0, 1e-15)); diff != "" {
		t.Errorf("coefficients mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, [Spline3Values]float64{0, 1, 0, 0}, values, "caller array must not be modified")
}

// TestAddSpline3Segment_MatchesHermite tests that both spline forms agree.
func TestAddSpline3Segment_MatchesHermite(t *testing.T) {
	bounds := Bounds{Low: -1, High: 2.5}
	a, b := New(), New()

	require.NoError(t, a.AddSpline3Segment([Spline3Values]float64{-0.5, 3, 2, 1}, bounds))
	require.NoError(t, b.AddHermiteSegment(Hermite{V0: 1, D0: 2, V1: 3, D1: -0.5}, bounds))

	sa, _ := a.Segment(0)
	sb, _ := b.Segment(0)
	assert.Equal(t, sb, sa)
}

// TestAddSpline3Segment_DegenerateDomain tests that zero-length domains are rejected.
func TestAddSpline3Segment_DegenerateDomain(t *testing.T) {
	c := New()
	err := c.AddSpline3Segment([Spline3Values]float64{0, 1, 0, 0}, Bounds{Low: 3, High: 3})

	assert.ErrorIs(t, err, ErrDegenerateDomain)
	assert.Equal(t, 0, c.Len())
}

// TestNilCurve tests that every operation tolerates a nil curve.
func TestNilCurve(t *testing.T) {
	var c *Curve

	assert.ErrorIs(t, c.AddPolySegment([]float64{1}, Bounds{Low: 0, High: 1}), ErrNilCurve)
	assert.ErrorIs(t, c.AddSpline3Segment([Spline3Values]float64{}, Bounds{Low: 0, High: 1}), ErrNilCurve)
	assert.ErrorIs(t, c.AddHermiteSegment(Hermite{}, Bounds{Low: 0, High: 1}), ErrNilCurve)

	assert.NotPanics(t, func() {
		c.SetScale(2)
		c.SetOffset(3)
		c.SetMaxAmplitude(4)
		c.Discard()
	})

	assert.Equal(t, 0, c.Len())
	assert.Equal(t, 1.0, c.Scale())
	assert.Equal(t, 0.0, c.Offset())
	assert.Equal(t, -1.0, c.MaxAmplitude())
	assert.Equal(t, 42.0, c.Value(0.5, 42), "nil curve returns default unchanged")

	_, ok := c.Segment(0)
	assert.False(t, ok)
	_, ok = c.Domain()
	assert.False(t, ok)
}

// TestDiscard tests discarding empty and populated curves.
func TestDiscard(t *testing.T) {
	t.Run("Empty", func(t *testing.T) {
		c := New()
		assert.NotPanics(t, c.Discard)
		assert.Equal(t, 0, c.Len())
	})

	t.Run("Multi segment", func(t *testing.T) {
		c := New()
		for i := range 5 {
			low := float64(i)
			require.NoError(t, c.AddPolySegment([]float64{low, 1}, Bounds{Low: low, High: low + 1}))
		}
		c.SetScale(3)
		c.SetOffset(1)
		c.SetMaxAmplitude(2)

		c.Discard()

		assert.Equal(t, 0, c.Len())
		assert.Equal(t, 1.0, c.Scale())
		assert.Equal(t, 0.0, c.Offset())
		assert.Equal(t, -1.0, c.MaxAmplitude())
		assert.Equal(t, 9.0, c.Value(2.5, 9))
	})

	t.Run("Twice", func(t *testing.T) {
		c := NewConstant(1, Bounds{Low: 0, High: 1})
		assert.NotPanics(t, func() {
			c.Discard()
			c.Discard()
		})
	})
}

// TestSetters tests that setters store values without validation.
func TestSetters(t *testing.T) {
	c := New()

	c.SetScale(-2.5)
	c.SetOffset(1e6)
	c.SetMaxAmplitude(-7)

	assert.Equal(t, -2.5, c.Scale())
	assert.Equal(t, 1e6, c.Offset())
	assert.Equal(t, -7.0, c.MaxAmplitude())
}

// TestDomain tests the hull of all segment bounds.
func TestDomain(t *testing.T) {
	c := New()
	_, ok := c.Domain()
	assert.False(t, ok, "empty curve has no domain")

	require.NoError(t, c.AddPolySegment([]float64{1}, Bounds{Low: 2, High: 3}))
	require.NoError(t, c.AddPolySegment([]float64{1}, Bounds{Low: -1, High: 0}))
	require.NoError(t, c.AddPolySegment([]float64{1}, Bounds{Low: 5, High: 8}))

	d, ok := c.Domain()
	require.True(t, ok)
	assert.Equal(t, Bounds{Low: -1, High: 8}, d)
}

// TestBounds tests Contains and Length.
func TestBounds(t *testing.T) {
	b := Bounds{Low: 1, High: 3}

	assert.Equal(t, 2.0, b.Length())
	assert.True(t, b.Contains(1), "low end is included")
	assert.True(t, b.Contains(2.999))
	assert.False(t, b.Contains(3), "high end is excluded")
	assert.False(t, b.Contains(0.999))
}

// TestErrors_AreDistinct tests that sentinel errors do not match each other.
func TestErrors_AreDistinct(t *testing.T) {
	all := []error{ErrNilCurve, ErrEmptyCoefficients, ErrDegenerateDomain, ErrInvalidConfig}
	for i, a := range all {
		for j, b := range all {
			assert.Equal(t, i == j, errors.Is(a, b), "%v vs %v", a, b)
		}
	}
}
