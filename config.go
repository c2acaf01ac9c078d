package curves

import (
	"fmt"
	"math"
)

// Config holds curve-level post-processing settings.
type Config struct {
	// Scale multiplies every evaluated value (including defaults).
	Scale float64

	// Offset is added to every evaluated value after scaling.
	Offset float64

	// MaxAmplitude limits values to [-MaxAmplitude, MaxAmplitude].
	// Zero or negative means unlimited.
	MaxAmplitude float64
}

// DefaultConfig returns the settings used by [New]: unit scale, zero offset,
// no amplitude limit.
func DefaultConfig() Config {
	return Config{
		Scale:        defaultScale,
		Offset:       defaultOffset,
		MaxAmplitude: defaultMaxAmplitude,
	}
}

// Validate checks if the configuration is valid.
// The setters on [Curve] accept any value; Validate only guards the
// constructor against settings that would make every result non-finite.
func (c *Config) Validate() error {
	if math.IsNaN(c.Scale) || math.IsInf(c.Scale, 0) {
		return fmt.Errorf("%w: scale must be finite, got %v", ErrInvalidConfig, c.Scale)
	}

	if math.IsNaN(c.Offset) || math.IsInf(c.Offset, 0) {
		return fmt.Errorf("%w: offset must be finite, got %v", ErrInvalidConfig, c.Offset)
	}

	if math.IsNaN(c.MaxAmplitude) {
		return fmt.Errorf("%w: max amplitude must not be NaN", ErrInvalidConfig)
	}

	return nil
}
