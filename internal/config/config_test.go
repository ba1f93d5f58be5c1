package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.HTTPPort)
	assert.Equal(t, 200*time.Millisecond, cfg.TickInterval)
	assert.Equal(t, 2*time.Second, cfg.LivenessWindow)
	assert.Equal(t, 3, cfg.DebounceTicks)
	assert.Equal(t, 2*time.Second, cfg.LookaheadHorizon)
	assert.Equal(t, 3*time.Second, cfg.FailsafeTimeout)
	assert.Equal(t, 10.0, cfg.DefaultProximityMeters)
	assert.Equal(t, 5.0, cfg.DefaultWarningMeters)
	assert.Equal(t, 2.0, cfg.DefaultBrakingMeters)
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("TICK_INTERVAL", "50ms")
	t.Setenv("DEBOUNCE_TICKS", "5")
	t.Setenv("API_KEYS", "key-a, key-b")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, 50*time.Millisecond, cfg.TickInterval)
	assert.Equal(t, 5, cfg.DebounceTicks)
	assert.Equal(t, []string{"key-a", "key-b"}, cfg.APIKeys)
}

func TestLoadConfigRejectsZeroDebounce(t *testing.T) {
	t.Setenv("DEBOUNCE_TICKS", "0")

	_, err := LoadConfig()
	assert.Error(t, err)
}

func TestLoadConfigRejectsUnorderedDefaultBands(t *testing.T) {
	t.Setenv("DEFAULT_BRAKING_METERS", "7")
	t.Setenv("DEFAULT_WARNING_METERS", "5")

	_, err := LoadConfig()
	assert.Error(t, err)
}
