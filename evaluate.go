package curves

import (
	"runtime"
	"sync"

	"github.com/tphakala/go-curves/internal/polynomial"
	"github.com/tphakala/go-curves/internal/simdops"
)

// Value evaluates the curve at position.
//
// The first segment (in insertion order) whose domain contains position is
// evaluated; if none does, defaultValue is used instead. The result is then
// scaled, offset and clamped. A nil curve returns defaultValue unchanged.
func (c *Curve) Value(position, defaultValue float64) float64 {
	if c == nil {
		return defaultValue
	}
	return c.postProcess(c.raw(position, defaultValue))
}

// raw evaluates the segment covering position without post-processing.
func (c *Curve) raw(position, defaultValue float64) float64 {
	for i := range c.segments {
		s := &c.segments[i]
		if position >= s.bounds.Low && position < s.bounds.High {
			return polynomial.Eval(s.coeffs, position-s.offset)
		}
	}
	return defaultValue
}

func (c *Curve) postProcess(v float64) float64 {
	// Explicit conversion keeps the multiply and add from fusing, so scalar
	// and batch paths round identically.
	v = float64(c.scale*v) + c.offset
	if limit := c.maxAmplitude; limit > 0 {
		if v > limit {
			v = limit
		} else if v < -limit {
			v = -limit
		}
	}
	return v
}

// Values evaluates the curve at every position and stores the results in dst,
// which is grown if needed. The returned slice has len(positions) elements
// and matches calling [Curve.Value] for each position.
func (c *Curve) Values(dst, positions []float64, defaultValue float64) []float64 {
	dst = grow(dst, len(positions))
	if c == nil {
		for i := range dst {
			dst[i] = defaultValue
		}
		return dst
	}
	for i, x := range positions {
		dst[i] = c.raw(x, defaultValue)
	}
	simdops.PostProcess(simdops.Float64Ops(), dst, c.scale, c.offset, c.maxAmplitude)
	return dst
}

// ValuesFloat32 is like Values but for float32 positions and results.
// Segments are evaluated in float64; only the I/O is float32.
func (c *Curve) ValuesFloat32(dst, positions []float32, defaultValue float32) []float32 {
	dst = grow(dst, len(positions))
	if c == nil {
		for i := range dst {
			dst[i] = defaultValue
		}
		return dst
	}
	def := float64(defaultValue)
	for i, x := range positions {
		dst[i] = float32(c.raw(float64(x), def))
	}
	simdops.PostProcess(simdops.Float32Ops(), dst,
		float32(c.scale), float32(c.offset), float32(c.maxAmplitude))
	return dst
}

// ValuesParallel is like Values but splits the positions across workers
// goroutines. workers <= 0 uses runtime.GOMAXPROCS(0). Results are identical
// to Values. The curve must not be modified while the call is in progress.
func (c *Curve) ValuesParallel(dst, positions []float64, defaultValue float64, workers int) []float64 {
	dst = grow(dst, len(positions))
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	chunk := max(minParallelChunk, (len(positions)+workers-1)/workers)
	if c == nil || chunk >= len(positions) {
		return c.Values(dst, positions, defaultValue)
	}

	var wg sync.WaitGroup
	for start := 0; start < len(positions); start += chunk {
		end := min(start+chunk, len(positions))
		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			c.Values(dst[start:end], positions[start:end], defaultValue)
		}(start, end)
	}
	wg.Wait()

	return dst
}

// Sample evaluates the curve at n evenly spaced positions over [low, high):
// low, low+step, ..., with step = (high-low)/n.
// n <= 0 returns nil.
func (c *Curve) Sample(low, high float64, n int, defaultValue float64) []float64 {
	if n <= 0 {
		return nil
	}
	positions := make([]float64, n)
	step := (high - low) / float64(n)
	for i := range positions {
		positions[i] = low + float64(i)*step
	}
	return c.Values(positions, positions, defaultValue)
}

// grow returns s resliced to length n, allocating when capacity is short.
func grow[F simdops.Float](s []F, n int) []F {
	if cap(s) < n {
		return make([]F, n)
	}
	return s[:n]
}
