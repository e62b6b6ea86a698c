package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	cfg, err := Load(nil)
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, "auto", cfg.Backend)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 16*time.Millisecond, cfg.PollInterval)
}

func TestFlagsOverrideDefaults(t *testing.T) {
	cfg, err := Load([]string{
		"--addr", ":9090",
		"--backend", "fallback",
		"--log-level", "debug",
		"--poll-interval", "8ms",
	})
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Addr)
	assert.Equal(t, "fallback", cfg.Backend)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 8*time.Millisecond, cfg.PollInterval)
}

func TestUnknownBackendRejected(t *testing.T) {
	_, err := Load([]string{"--backend", "evdev"})
	assert.Error(t, err)
}
