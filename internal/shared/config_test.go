package shared

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("APP_ENV", "")
	t.Setenv("JWT_SECRET", "")
	t.Setenv("STORAGE", "")
	t.Setenv("TRUST_PROXY", "")
	c := Load()
	assert.Equal(t, StorageMemory, c.Storage)
	assert.Equal(t, ":5000", c.HTTPAddr)
	assert.Equal(t, 24*time.Hour, c.TokenTTL)
	assert.InDelta(t, 0.18, c.TaxRate, 1e-9)
	assert.Empty(t, c.JWTSecret, "no secret outside dev")
	assert.False(t, c.IsDev())
	assert.False(t, c.TrustProxy)
}

func TestLoad_DevSecretOnlyInDev(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	t.Setenv("APP_ENV", "dev")
	assert.Equal(t, devSecret, Load().JWTSecret)

	for _, env := range []string{"prod", "staging"} {
		t.Setenv("APP_ENV", env)
		assert.Empty(t, Load().JWTSecret, env)
	}

	t.Setenv("APP_ENV", "prod")
	t.Setenv("JWT_SECRET", "real-secret")
	assert.Equal(t, "real-secret", Load().JWTSecret)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("APP_ENV", "dev")
	t.Setenv("STORAGE", "MySQL")
	t.Setenv("TOKEN_TTL_HOURS", "2")
	t.Setenv("TAX_RATE", "0.05")
	t.Setenv("SEED_WORKERS", "not-a-number")
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("TRUST_PROXY", "true")
	c := Load()
	assert.True(t, c.IsDev())
	assert.Equal(t, StorageMySQL, c.Storage)
	assert.Equal(t, 2*time.Hour, c.TokenTTL)
	assert.InDelta(t, 0.05, c.TaxRate, 1e-9)
	assert.Equal(t, 8, c.SeedWorkers)
	assert.Equal(t, "s3cret", c.JWTSecret)
	assert.True(t, c.TrustProxy)
}
