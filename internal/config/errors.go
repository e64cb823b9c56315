package config

import "errors"

// Validation errors for run configuration.
var (
	// ErrSpeed indicates a non-positive or non-finite speed multiplier.
	ErrSpeed = errors.New("config: speed must be a positive number")

	// ErrFPS indicates a frame rate outside the supported range.
	ErrFPS = errors.New("config: fps out of range")

	// ErrWaves indicates a wave count outside the supported range.
	ErrWaves = errors.New("config: wave count out of range")

	// ErrGlyph indicates a glyph override that cannot fit a rendered cell.
	ErrGlyph = errors.New("config: unusable glyph")
)
