package ints

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// SamplerConfig controls how a [Sampler] draws numbers.
type SamplerConfig struct {
	// Size is how many numbers are drawn per sample.
	Size int `env:"STREAM_SAMPLE_SIZE" envDefault:"100"`

	// Bound is the exclusive upper limit of each draw; draws fall in [0, Bound).
	Bound int `env:"STREAM_SAMPLE_BOUND" envDefault:"1000"`

	// K is how many of the largest draws are kept. A K larger than Size
	// keeps all Size draws.
	K int `env:"STREAM_SAMPLE_TOP" envDefault:"5"`
}

// DefaultSamplerConfig returns 100 draws in [0, 1000), keeping the top 5.
func DefaultSamplerConfig() SamplerConfig {
	return SamplerConfig{
		Size:  100,
		Bound: 1000,
		K:     5,
	}
}

// Validate returns [ErrInvalidSamplerConfig] if any field is out of range.
func (c SamplerConfig) Validate() error {
	switch {
	case c.Size < 0:
		return fmt.Errorf("%w: size %d is negative", ErrInvalidSamplerConfig, c.Size)
	case c.Bound <= 0:
		return fmt.Errorf("%w: bound %d must be positive", ErrInvalidSamplerConfig, c.Bound)
	case c.K < 0:
		return fmt.Errorf("%w: top count %d is negative", ErrInvalidSamplerConfig, c.K)
	}
	return nil
}

// LoadSamplerConfig reads a [SamplerConfig] from the STREAM_SAMPLE_SIZE,
// STREAM_SAMPLE_BOUND and STREAM_SAMPLE_TOP environment variables. Unset
// variables take the values of [DefaultSamplerConfig].
//
// An optional env.Options replaces the process environment as the source,
// for example to add a prefix or to supply variables from a map.
func LoadSamplerConfig(opts ...env.Options) (SamplerConfig, error) {
	var cfg SamplerConfig
	var err error
	if len(opts) > 0 {
		err = env.ParseWithOptions(&cfg, opts[0])
	} else {
		err = env.Parse(&cfg)
	}
	if err != nil {
		return SamplerConfig{}, fmt.Errorf("%w: %w", ErrLoadSamplerConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return SamplerConfig{}, err
	}
	return cfg, nil
}
