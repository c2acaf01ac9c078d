// Package simdops provides vectorised post-processing kernels for float32 and
// float64 batches. A single generic code path in the curve package drives
// both precisions.
package simdops

import (
	"github.com/tphakala/simd/f32"
	"github.com/tphakala/simd/f64"
	"gonum.org/v1/gonum/floats"
)

// Float is the type constraint for supported floating-point types.
type Float interface {
	float32 | float64
}

// Ops provides batch operations for type F.
// Function pointers keep the generic callers type-safe while delegating
// to type-specific implementations.
type Ops[F Float] struct {
	// Scale multiplies each element by scalar s: dst[i] = a[i] * s
	Scale func(dst, a []F, s F)

	// AddConst adds c to every element of dst in place.
	AddConst func(dst []F, c F)
}

// Pre-instantiated operations for each float type.
var (
	ops32 = Ops[float32]{
		Scale:    f32.Scale,
		AddConst: addConst[float32],
	}
	ops64 = Ops[float64]{
		Scale:    f64.Scale,
		AddConst: addConst64,
	}
)

// addConst64 adapts gonum's argument order to the Ops signature.
func addConst64(dst []float64, c float64) {
	floats.AddConst(c, dst)
}

func addConst[F Float](dst []F, c F) {
	for i := range dst {
		dst[i] += c
	}
}

// Clamp limits every element of dst to [-limit, limit] in place.
// A non-positive limit leaves dst untouched.
func Clamp[F Float](dst []F, limit F) {
	if limit <= 0 {
		return
	}
	for i, v := range dst {
		if v > limit {
			dst[i] = limit
		} else if v < -limit {
			dst[i] = -limit
		}
	}
}

// PostProcess applies y = scale*y + offset followed by a symmetric clamp
// to every element of dst in place.
func PostProcess[F Float](ops *Ops[F], dst []F, scale, offset, limit F) {
	if len(dst) == 0 {
		return
	}
	if scale != 1 {
		ops.Scale(dst, dst, scale)
	}
	if offset != 0 {
		ops.AddConst(dst, offset)
	}
	Clamp(dst, limit)
}

// For returns the Ops instance for type F.
// The type switch happens at instantiation time, not in hot paths.
func For[F Float]() *Ops[F] {
	var zero F
	switch any(zero).(type) {
	case float32:
		ops, ok := any(&ops32).(*Ops[F])
		if !ok {
			panic("simdops: type assertion failed for float32")
		}
		return ops
	case float64:
		ops, ok := any(&ops64).(*Ops[F])
		if !ok {
			panic("simdops: type assertion failed for float64")
		}
		return ops
	default:
		panic("simdops: unsupported float type")
	}
}

// Float32Ops returns the float32 operations.
func Float32Ops() *Ops[float32] {
	return &ops32
}

// Float64Ops returns the float64 operations.
func Float64Ops() *Ops[float64] {
	return &ops64
}
