package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/career_compass")
	t.Setenv("GEMINI_API_KEY", "test-key")
	t.Setenv("RESOLVE_TIMEOUT", "")
	t.Setenv("VALIDATE_TIMEOUT", "")
	t.Setenv("RESOLVE_CONCURRENCY", "")
	t.Setenv("RESOLVE_USE_BROWSER", "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 30*time.Second, cfg.ResolveTimeout)
	assert.Equal(t, 5*time.Second, cfg.ValidateTimeout)
	assert.Equal(t, 4, cfg.ResolveConcurrency)
	assert.False(t, cfg.UseBrowser)
}

func TestLoad_MissingDatabaseURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("GEMINI_API_KEY", "test-key")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DATABASE_URL")
}

func TestLoad_MissingAPIKey(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/career_compass")
	t.Setenv("GEMINI_API_KEY", "")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "GEMINI_API_KEY")
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/career_compass")
	t.Setenv("GEMINI_API_KEY", "test-key")
	t.Setenv("RESOLVE_TIMEOUT", "45s")
	t.Setenv("VALIDATE_TIMEOUT", "3s")
	t.Setenv("RESOLVE_CONCURRENCY", "8")
	t.Setenv("RESOLVE_USE_BROWSER", "true")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 45*time.Second, cfg.ResolveTimeout)
	assert.Equal(t, 3*time.Second, cfg.ValidateTimeout)
	assert.Equal(t, 8, cfg.ResolveConcurrency)
	assert.True(t, cfg.UseBrowser)
}

func TestLoad_TimeoutOrdering(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/career_compass")
	t.Setenv("GEMINI_API_KEY", "test-key")
	t.Setenv("RESOLVE_TIMEOUT", "2s")
	t.Setenv("VALIDATE_TIMEOUT", "5s")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "RESOLVE_TIMEOUT")
}

func TestNewJWTConfig(t *testing.T) {
	t.Setenv("JWT_SECRET", "super-secret")
	t.Setenv("JWT_EXPIRATION_HOURS", "")

	cfg, err := NewJWTConfig()
	require.NoError(t, err)
	assert.Equal(t, "super-secret", cfg.Secret)
	assert.Equal(t, 1, cfg.ExpirationHours)
}

func TestNewJWTConfig_MissingSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	_, err := NewJWTConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JWT_SECRET")
}

func TestNewJWTConfig_InvalidExpiration(t *testing.T) {
	t.Setenv("JWT_SECRET", "super-secret")
	t.Setenv("JWT_EXPIRATION_HOURS", "0")

	_, err := NewJWTConfig()
	require.Error(t, err)
}

func TestPasswordConfig_HashAndVerify(t *testing.T) {
	t.Setenv("BCRYPT_COST", "")

	cfg, err := NewPasswordConfig()
	require.NoError(t, err)

	hash, err := cfg.HashPassword("correct horse battery staple")
	require.NoError(t, err)
	assert.NotEqual(t, "correct horse battery staple", hash)

	assert.True(t, cfg.VerifyPassword("correct horse battery staple", hash))
	assert.False(t, cfg.VerifyPassword("wrong password", hash))
}

func TestPasswordConfig_CostOutOfRange(t *testing.T) {
	t.Setenv("BCRYPT_COST", "31")

	_, err := NewPasswordConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "out of range")
}
