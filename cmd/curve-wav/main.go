// Command curve-wav renders a Hermite spline curve as a mono PCM WAV file.
//
// The curve is sampled at a fixed control rate over the span of its knots,
// which makes it easy to inspect motion profiles and envelopes in any audio
// editor or to feed them to hardware driven from a sound card.
//
// Usage:
//
//	curve-wav out.wav
//	curve-wav -knots "0:0:0,1:1:0,3:0:0" -rate 48000 out.wav
//	curve-wav -scale 0.5 -offset 0.25 -max-amplitude 0.6 -bits 24 out.wav
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	curves "github.com/tphakala/go-curves"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	knots := flag.String("knots", defaultKnots, "Spline knots as position:value:slope, comma separated")
	rate := flag.Int("rate", defaultRate, "Samples per unit of position (e.g. per second)")
	bits := flag.Int("bits", defaultBitDepth, "PCM bit depth: 16, 24 or 32")
	scale := flag.Float64("scale", defaultScale, "Output scale factor")
	offset := flag.Float64("offset", defaultOffset, "Output offset added after scaling")
	amplitude := flag.Float64("max-amplitude", defaultAmplitude, "Clamp output to +/- this value (<= 0 for no limit)")
	verbose := flag.Bool("v", false, "Verbose output")
	flag.Parse()

	args := flag.Args()
	if len(args) < minRequiredArgs {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] output.wav\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		return fmt.Errorf("insufficient arguments")
	}
	outputPath := args[0]

	parsed, err := parseKnots(*knots)
	if err != nil {
		return err
	}

	curve, err := buildCurve(parsed, &curves.Config{
		Scale:        *scale,
		Offset:       *offset,
		MaxAmplitude: *amplitude,
	})
	if err != nil {
		return err
	}

	if *verbose {
		log.Printf("Output: %s", outputPath)
		log.Printf("Knots: %d (%d segments)", len(parsed), curve.Len())
		log.Printf("Rate: %d samples/unit, %d-bit", *rate, *bits)
		log.Printf("Scale: %g, offset: %g, max amplitude: %g", curve.Scale(), curve.Offset(), curve.MaxAmplitude())
		log.Printf("SIMD: %s", curves.SIMDInfo())
	}

	start := time.Now()
	stats, err := renderWAV(outputPath, curve, *rate, *bits)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	fmt.Printf("Rendered %d samples over [%g, %g) -> %s\n",
		stats.samples, stats.domain.Low, stats.domain.High, outputPath)
	fmt.Printf("  Peak: %.4f, clipped: %d\n", stats.peak, stats.clipped)
	fmt.Printf("  Duration: %.3fs\n", elapsed.Seconds())

	return nil
}
