package main

import (
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"

	curves "github.com/tphakala/go-curves"
)

// renderStats summarises a rendered curve.
type renderStats struct {
	samples int
	domain  curves.Bounds
	peak    float64
	clipped int
}

// parseKnots parses "position:value:slope" triples separated by commas.
func parseKnots(s string) ([]curves.Knot, error) {
	fields := strings.Split(s, knotSeparator)
	knots := make([]curves.Knot, 0, len(fields))

	for i, field := range fields {
		parts := strings.Split(strings.TrimSpace(field), fieldSeparator)
		if len(parts) != fieldsPerKnot {
			return nil, fmt.Errorf("knot %d %q: want position:value:slope", i, field)
		}

		var vals [fieldsPerKnot]float64
		for j, p := range parts {
			v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
			if err != nil {
				return nil, fmt.Errorf("knot %d %q: %w", i, field, err)
			}
			vals[j] = v
		}
		knots = append(knots, curves.Knot{Position: vals[0], Value: vals[1], Slope: vals[2]})
	}

	return knots, nil
}

// buildCurve creates a Hermite spline through knots with the given post-processing.
func buildCurve(knots []curves.Knot, config *curves.Config) (*curves.Curve, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	curve, err := curves.NewHermiteSpline(knots)
	if err != nil {
		return nil, fmt.Errorf("failed to build curve: %w", err)
	}

	curve.SetScale(config.Scale)
	curve.SetOffset(config.Offset)
	curve.SetMaxAmplitude(config.MaxAmplitude)
	return curve, nil
}

// getMaxValue returns the maximum sample value for the given bit depth.
func getMaxValue(bitDepth int) (float64, error) {
	switch bitDepth {
	case bitsPerSample16:
		return maxInt16, nil
	case bitsPerSample24:
		return maxInt24, nil
	case bitsPerSample32:
		return maxInt32, nil
	default:
		return 0, fmt.Errorf("unsupported bit depth %d", bitDepth)
	}
}

// samplePositions returns rate evenly spaced positions per unit over domain.
func samplePositions(domain curves.Bounds, rate int) []float64 {
	n := int(math.Ceil(domain.Length() * float64(rate)))
	positions := make([]float64, n)
	for i := range positions {
		positions[i] = domain.Low + float64(i)/float64(rate)
	}
	return positions
}

// quantize converts curve values to PCM integers, clamping to [-1.0, 1.0].
func quantize(values []float64, maxVal float64, stats *renderStats) []int {
	pcm := make([]int, len(values))
	for i, v := range values {
		stats.peak = max(stats.peak, math.Abs(v))
		if v > 1.0 {
			v = 1.0
			stats.clipped++
		} else if v < -1.0 {
			v = -1.0
			stats.clipped++
		}
		pcm[i] = int(math.Round(v * maxVal))
	}
	return pcm
}

// renderWAV samples curve over its domain and writes it to path as mono PCM.
func renderWAV(path string, curve *curves.Curve, rate, bitDepth int) (stats *renderStats, err error) {
	if rate <= 0 {
		return nil, fmt.Errorf("rate must be positive, got %d", rate)
	}
	maxVal, err := getMaxValue(bitDepth)
	if err != nil {
		return nil, err
	}
	domain, ok := curve.Domain()
	if !ok {
		return nil, fmt.Errorf("curve has no segments")
	}

	stats = &renderStats{domain: domain}
	positions := samplePositions(domain, rate)
	values := curve.ValuesParallel(nil, positions, 0, 0)
	pcm := quantize(values, maxVal, stats)
	stats.samples = len(pcm)

	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() {
		if closeErr := f.Close(); err == nil && closeErr != nil {
			err = closeErr
		}
	}()

	enc := wav.NewEncoder(f, rate, bitDepth, monoChannels, wavFormatPCM)
	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: monoChannels, SampleRate: rate},
		Data:           pcm,
		SourceBitDepth: bitDepth,
	}
	if err := enc.Write(buf); err != nil {
		return nil, fmt.Errorf("failed to write audio data: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("failed to finalize WAV file: %w", err)
	}

	return stats, nil
}
