package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "s3cr3t")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":4101", cfg.HTTPAddr)
	assert.Equal(t, ":8000", cfg.SocketAddr)
	assert.Equal(t, "s3cr3t", cfg.JWTSecret)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.AllowedOrigins)
	assert.Equal(t, 24*time.Hour, cfg.SnapshotTTL)
	assert.Equal(t, 30*time.Second, cfg.ClockInterval)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("JWT_SECRET", "s3cr3t")
	t.Setenv("HTTP_ADDR", ":9000")
	t.Setenv("ALLOWED_ORIGINS", "http://a.test,http://b.test")
	t.Setenv("SNAPSHOT_TTL", "90m")
	t.Setenv("GAME_LOCALE", "en")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":9000", cfg.HTTPAddr)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.AllowedOrigins)
	assert.Equal(t, 90*time.Minute, cfg.SnapshotTTL)
	assert.Equal(t, "en", cfg.Locale)
}

func TestLoadError(t *testing.T) {
	t.Setenv("JWT_SECRET", "s3cr3t")
	t.Setenv("CLOCK_INTERVAL", "soon")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse env:")
}

func TestJWTSecretIsRequired(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JWT_SECRET")

	require.NoError(t, os.Unsetenv("JWT_SECRET"))
	_, err = Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JWT_SECRET")
}
