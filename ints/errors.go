package ints

import "errors"

var (
	// ErrInvalidSamplerConfig is returned when a [SamplerConfig] has a
	// negative size or top count, or a non-positive bound.
	ErrInvalidSamplerConfig = errors.New("ints: invalid sampler config")

	// ErrLoadSamplerConfig wraps failures reading a [SamplerConfig] from the
	// environment.
	ErrLoadSamplerConfig = errors.New("ints: failed to load sampler config")
)
