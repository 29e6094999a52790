package weasel

import "errors"

// The error taxonomy is deliberately small: every failure in a run is one of
// these two kinds, and both are fatal to the run.
var (
	// ErrEmptyCharSet is returned when a random character must be drawn
	// from an empty character set.
	ErrEmptyCharSet = errors.New("empty character set")

	// ErrInvalidConfig wraps every configuration validation failure.
	// Use errors.Is to detect it on errors returned from Config.Validate
	// or NewRun.
	ErrInvalidConfig = errors.New("invalid configuration")
)
