package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.LoadDefaults()

	assert.Equal(t, ":8080", cfg.EndpointAddr)
	assert.NotEmpty(t, cfg.DatabaseDSN)
	assert.Equal(t, 1*time.Hour, cfg.TokenValidityDuration)
	assert.Equal(t, "*", cfg.CORSAllowedOrigins)
}

func TestParseEnv_Overrides(t *testing.T) {
	t.Setenv("ADDRESS", ":9999")
	t.Setenv("DATABASE_DSN", "postgres://env")
	t.Setenv("SECRET_KEY", "env-secret")
	t.Setenv("TOKEN_VALIDITY_DURATION", "30m")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://example.com")

	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)

	assert.Equal(t, ":9999", cfg.EndpointAddr)
	assert.Equal(t, "postgres://env", cfg.DatabaseDSN)
	assert.Equal(t, "env-secret", cfg.SecretKey)
	assert.Equal(t, 30*time.Minute, cfg.TokenValidityDuration)
	assert.Equal(t, "https://example.com", cfg.CORSAllowedOrigins)
}

func TestParseEnv_InvalidDurationKeepsDefault(t *testing.T) {
	t.Setenv("TOKEN_VALIDITY_DURATION", "not-a-duration")

	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)

	assert.Equal(t, 1*time.Hour, cfg.TokenValidityDuration)
}
