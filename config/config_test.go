package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("DB_DRIVER", "SQLite")
	t.Setenv("API_BASE_URL", "https://jobs.example.com/")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, DriverSQLite, cfg.DBDriver)
	assert.Equal(t, "https://jobs.example.com", cfg.APIBaseURL)
	assert.Equal(t, time.Minute, cfg.RateLimitWindow())
	assert.False(t, cfg.FallbackOnCreate)
}

func TestEnvHelpers(t *testing.T) {
	t.Setenv("X_INT", "42")
	t.Setenv("X_BAD_INT", "forty")
	t.Setenv("X_BOOL", "true")
	t.Setenv("X_DURATION", "250ms")
	t.Setenv("X_SECONDS", "3")

	assert.Equal(t, 42, getEnvInt("X_INT", 1))
	assert.Equal(t, 1, getEnvInt("X_BAD_INT", 1))
	assert.True(t, getEnvBool("X_BOOL", false))
	assert.Equal(t, 250*time.Millisecond, getEnvDuration("X_DURATION", time.Second))
	assert.Equal(t, 3*time.Second, getEnvDuration("X_SECONDS", time.Second))
	assert.Equal(t, time.Second, getEnvDuration("X_UNSET", time.Second))
}
