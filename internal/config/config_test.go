package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"FITNESS_HTTP_ADDRESS", "FITNESS_LOG_LEVEL", "FITNESS_INPUT_FORMAT", "FITNESS_VALIDATE", "FITNESS_MAX_BATCH"} {
		t.Setenv(key, "")
	}

	cfg := Load()
	require.Equal(t, ":8080", cfg.HTTPAddress)
	require.Equal(t, "info", cfg.LogLevel)
	require.Equal(t, "csv", cfg.InputFormat)
	require.True(t, cfg.Validate)
	require.Equal(t, 100, cfg.MaxBatch)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("FITNESS_HTTP_ADDRESS", ":9090")
	t.Setenv("FITNESS_LOG_LEVEL", "debug")
	t.Setenv("FITNESS_INPUT_FORMAT", "json")
	t.Setenv("FITNESS_VALIDATE", "false")
	t.Setenv("FITNESS_MAX_BATCH", "10")

	cfg := Load()
	require.Equal(t, ":9090", cfg.HTTPAddress)
	require.Equal(t, "debug", cfg.LogLevel)
	require.Equal(t, "json", cfg.InputFormat)
	require.False(t, cfg.Validate)
	require.Equal(t, 10, cfg.MaxBatch)
}

func TestLoadIgnoresMalformedValues(t *testing.T) {
	t.Setenv("FITNESS_VALIDATE", "maybe")
	t.Setenv("FITNESS_MAX_BATCH", "-3")

	cfg := Load()
	require.True(t, cfg.Validate)
	require.Equal(t, 100, cfg.MaxBatch)
}
