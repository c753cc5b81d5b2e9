package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shortlink/internal/bench/config"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8080", cfg.TargetURL)
	assert.Equal(t, config.TypeMixed, cfg.Type)
	assert.Equal(t, 30*time.Second, cfg.Duration)
	assert.True(t, cfg.NeedsSeed())
}

func TestLoad_CreateNeedsNoSeed(t *testing.T) {
	t.Setenv("BENCH_TYPE", "create")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.False(t, cfg.NeedsSeed())
}

func TestLoad_Rejects(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"unknown type", map[string]string{"BENCH_TYPE": "flood"}},
		{"ratios above one", map[string]string{"BENCH_CREATE_RATIO": "0.7", "BENCH_STATS_RATIO": "0.5"}},
		{"bad duration", map[string]string{"BENCH_DURATION": "forever"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := config.Load()
			assert.Error(t, err)
		})
	}
}
