package main

// Default command-line flag values
const (
	defaultRate      = 1000 // Control-rate samples per second
	defaultBitDepth  = 16
	defaultScale     = 1.0
	defaultOffset    = 0.0
	defaultAmplitude = -1.0 // Unlimited
	defaultKnots     = "0:0:0,0.5:1:0,1:0:0"
)

// Sample format constants
const (
	bitsPerSample16 = 16
	bitsPerSample24 = 24
	bitsPerSample32 = 32

	maxInt16 = 32767.0
	maxInt24 = 8388607.0
	maxInt32 = 2147483647.0

	wavFormatPCM = 1 // WAVE_FORMAT_PCM
	monoChannels = 1
)

// Knot syntax: "position:value:slope", comma separated.
const (
	knotSeparator   = ","
	fieldSeparator  = ":"
	fieldsPerKnot   = 3
	minRequiredArgs = 1
)
