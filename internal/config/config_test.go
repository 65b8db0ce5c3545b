package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_RequiresJWTSecret(t *testing.T) {
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JWT_SECRET")
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, 7200*time.Second, cfg.JWT.AccessTTL)
	assert.Equal(t, 86400*time.Second, cfg.JWT.RefreshTTL)
	assert.Equal(t, uint32(64*1024), cfg.Argon2.Memory)
	assert.Equal(t, uint32(3), cfg.Argon2.Iterations)
	assert.Equal(t, uint8(2), cfg.Argon2.Parallelism)
	assert.Empty(t, cfg.Server.RateLimit)
	assert.Empty(t, cfg.Server.CORSOrigins)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("PORT", "9090")
	t.Setenv("JWT_ACCESS_TTL", "600")
	t.Setenv("JWT_REFRESH_TTL", "3600")
	t.Setenv("CORS_ORIGINS", "https://app.seguros.test, https://admin.seguros.test")
	t.Setenv("RATE_LIMIT_IP", "100-M")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, 600*time.Second, cfg.JWT.AccessTTL)
	assert.Equal(t, 3600*time.Second, cfg.JWT.RefreshTTL)
	assert.Equal(t, []string{"https://app.seguros.test", "https://admin.seguros.test"}, cfg.Server.CORSOrigins)
	assert.Equal(t, "100-M", cfg.Server.RateLimit)
}

func TestLoad_BootstrapMustBePaired(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("BOOTSTRAP_EMAIL", "admin@seguros.test")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "BOOTSTRAP_PASSWORD")
}
