package ints_test

import (
	"bytes"
	"errors"
	"log/slog"
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/caarlos0/env/v11"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hasbyte1/go-stream-utils/ints"
)

func assertNonIncreasing(t *testing.T, got []int) {
	t.Helper()
	for i := 1; i < len(got); i++ {
		assert.GreaterOrEqual(t, got[i-1], got[i], "not descending at %d: %v", i, got)
	}
}

func TestTop5Of100Random(t *testing.T) {
	t.Parallel()

	for range 20 {
		got := ints.Top5Of100Random()
		require.Len(t, got, 5)
		assertNonIncreasing(t, got)
		for _, n := range got {
			assert.GreaterOrEqual(t, n, 0)
			assert.Less(t, n, 1000)
		}
	}
}

func TestTopK(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []int{9, 9, 4}, ints.TopK([]int{3, 9, 1, 9, 4}, 3))
	assert.Equal(t, []int{2, 1}, ints.TopK([]int{1, 2}, 5))
	assert.Empty(t, ints.TopK([]int{1, 2}, -1))
}

func TestNewSamplerValidation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		cfg  ints.SamplerConfig
	}{
		{"negative size", ints.SamplerConfig{Size: -1, Bound: 10, K: 1}},
		{"zero bound", ints.SamplerConfig{Size: 10, Bound: 0, K: 1}},
		{"negative bound", ints.SamplerConfig{Size: 10, Bound: -5, K: 1}},
		{"negative top", ints.SamplerConfig{Size: 10, Bound: 10, K: -1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			s, err := ints.NewSampler(tt.cfg)
			assert.Nil(t, s)
			assert.ErrorIs(t, err, ints.ErrInvalidSamplerConfig)
		})
	}
}

func TestSamplerBounds(t *testing.T) {
	t.Parallel()

	s, err := ints.NewSampler(ints.SamplerConfig{Size: 3, Bound: 10, K: 5})
	require.NoError(t, err)
	got := s.Top()
	assert.Len(t, got, 3)
	assertNonIncreasing(t, got)

	s, err = ints.NewSampler(ints.SamplerConfig{Size: 0, Bound: 1, K: 5})
	require.NoError(t, err)
	assert.Empty(t, s.Top())

	s, err = ints.NewSampler(ints.SamplerConfig{Size: 50, Bound: 1, K: 2})
	require.NoError(t, err)
	assert.Equal(t, []int{0, 0}, s.Top())
}

func TestSamplerWithRandIsDeterministic(t *testing.T) {
	t.Parallel()

	cfg := ints.SamplerConfig{Size: 20, Bound: 100, K: 4}
	s, err := ints.NewSampler(cfg, ints.WithRand(rand.New(rand.NewPCG(7, 42))))
	require.NoError(t, err)

	r := rand.New(rand.NewPCG(7, 42))
	want := make([]int, cfg.Size)
	for i := range want {
		want[i] = r.IntN(cfg.Bound)
	}
	assert.Equal(t, want, s.Draw())

	next := make([]int, cfg.Size)
	for i := range next {
		next[i] = r.IntN(cfg.Bound)
	}
	slices.Sort(next)
	slices.Reverse(next)
	assert.Equal(t, next[:cfg.K], s.Top())
}

func TestSamplerLogsAtDebug(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	s, err := ints.NewSampler(ints.DefaultSamplerConfig(), ints.WithLogger(logger))
	require.NoError(t, err)
	s.Top()

	out := buf.String()
	assert.Contains(t, out, "sampled random integers")
	assert.Contains(t, out, "size=100")
	assert.Contains(t, out, "bound=1000")
}

func TestSamplerNilOptionsKeepDefaults(t *testing.T) {
	t.Parallel()

	s, err := ints.NewSampler(ints.DefaultSamplerConfig(), ints.WithLogger(nil), ints.WithRand(nil))
	require.NoError(t, err)
	assert.Len(t, s.Top(), 5)
	assert.Equal(t, ints.DefaultSamplerConfig(), s.Config())
}

func TestLoadSamplerConfig(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		opts    env.Options
		want    ints.SamplerConfig
		wantErr error
	}{
		{
			name: "defaults",
			opts: env.Options{Environment: map[string]string{}},
			want: ints.DefaultSamplerConfig(),
		},
		{
			name: "overrides",
			opts: env.Options{Environment: map[string]string{
				"STREAM_SAMPLE_SIZE":  "10",
				"STREAM_SAMPLE_BOUND": "50",
				"STREAM_SAMPLE_TOP":   "3",
			}},
			want: ints.SamplerConfig{Size: 10, Bound: 50, K: 3},
		},
		{
			name: "prefix",
			opts: env.Options{Prefix: "APP_", Environment: map[string]string{"APP_STREAM_SAMPLE_TOP": "2"}},
			want: ints.SamplerConfig{Size: 100, Bound: 1000, K: 2},
		},
		{
			name:    "not a number",
			opts:    env.Options{Environment: map[string]string{"STREAM_SAMPLE_SIZE": "many"}},
			wantErr: ints.ErrLoadSamplerConfig,
		},
		{
			name:    "invalid value",
			opts:    env.Options{Environment: map[string]string{"STREAM_SAMPLE_BOUND": "0"}},
			wantErr: ints.ErrInvalidSamplerConfig,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := ints.LoadSamplerConfig(tt.opts)
			if tt.wantErr != nil {
				assert.True(t, errors.Is(err, tt.wantErr), "err = %v; want %v", err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLoadSamplerConfigFromProcessEnv(t *testing.T) {
	t.Setenv("STREAM_SAMPLE_TOP", "7")

	got, err := ints.LoadSamplerConfig()
	require.NoError(t, err)
	assert.Equal(t, 7, got.K)
	assert.Equal(t, 100, got.Size)
}
