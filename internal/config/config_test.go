package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadRequiresJWTSecret(t *testing.T) {
	t.Setenv("AUTH_JWT_SECRET", "")

	_, err := Load()
	assert.ErrorIs(t, err, ErrMissingJWTSecret)
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("AUTH_JWT_SECRET", "unit-test-secret")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "studio-cms", cfg.App.Name)
	assert.Equal(t, "0.0.0.0:8080", cfg.App.Addr())
	assert.Equal(t, "admin@example.com", cfg.Admin.Email)
	assert.Equal(t, "admin123", cfg.Admin.Password)
	assert.Equal(t, 24*30*time.Hour, cfg.Auth.TokenTTL())
	assert.Equal(t, 12, cfg.Auth.BcryptCost)
	assert.Equal(t, int64(5*1024*1024), cfg.Uploads.MaxBytes)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("AUTH_JWT_SECRET", "unit-test-secret")
	t.Setenv("AUTH_TOKEN_TTL_HOURS", "2")
	t.Setenv("ADMIN_EMAIL", "ops@studio.example")
	t.Setenv("APP_PORT", "9090")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 2*time.Hour, cfg.Auth.TokenTTL())
	assert.Equal(t, "ops@studio.example", cfg.Admin.Email)
	assert.Equal(t, "0.0.0.0:9090", cfg.App.Addr())
}

func TestTokenTTLFallsBackOnNonPositive(t *testing.T) {
	cfg := AuthConfig{TokenTTLHours: 0}
	assert.Equal(t, 24*30*time.Hour, cfg.TokenTTL())

	cfg.TokenTTLHours = -5
	assert.Equal(t, 24*30*time.Hour, cfg.TokenTTL())
}
