package ints

import (
	"log/slog"
	"math/rand/v2"

	"github.com/hasbyte1/go-stream-utils/stream"
)

// Sampler draws pseudo-random integers and reports the largest of them.
//
// A Sampler built with [WithRand] is not safe for concurrent use, because
// *rand.Rand is not. Without it the Sampler draws from the global source and
// may be shared.
type Sampler struct {
	cfg    SamplerConfig
	intN   func(int) int
	logger *slog.Logger
}

// SamplerOption configures a [Sampler].
type SamplerOption func(*Sampler)

// WithLogger sets the logger the Sampler reports each sample to at debug
// level. The default logger discards everything.
func WithLogger(l *slog.Logger) SamplerOption {
	return func(s *Sampler) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithRand makes the Sampler draw from r instead of the global source.
func WithRand(r *rand.Rand) SamplerOption {
	return func(s *Sampler) {
		if r != nil {
			s.intN = r.IntN
		}
	}
}

// NewSampler validates cfg and returns a Sampler using it.
func NewSampler(cfg SamplerConfig, opts ...SamplerOption) (*Sampler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	s := &Sampler{
		cfg:    cfg,
		intN:   rand.IntN,
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Config returns the configuration the Sampler was built with.
func (s *Sampler) Config() SamplerConfig { return s.cfg }

// Draw returns Size independent draws from [0, Bound).
func (s *Sampler) Draw() []int {
	out := make([]int, s.cfg.Size)
	for i := range out {
		out[i] = s.intN(s.cfg.Bound)
	}
	return out
}

// Top draws a fresh sample and returns its K largest values in descending
// order. Repeated values are kept.
func (s *Sampler) Top() []int {
	top := TopK(s.Draw(), s.cfg.K)
	s.logger.Debug("sampled random integers",
		slog.Int("size", s.cfg.Size),
		slog.Int("bound", s.cfg.Bound),
		slog.Any("top", top),
	)
	return top
}

// TopK returns the k largest items in descending order, keeping repeated
// values. A negative k yields an empty slice.
func TopK(items []int, k int) []int {
	return stream.SortedByDesc(stream.From(items), identity).Limit(k).ToSlice()
}

// Top5Of100Random draws 100 integers from [0, 1000) and returns the 5
// largest in descending order.
func Top5Of100Random() []int {
	s, err := NewSampler(DefaultSamplerConfig())
	if err != nil {
		panic(err)
	}
	return s.Top()
}
