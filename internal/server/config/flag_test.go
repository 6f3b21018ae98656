package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseFlags_Overrides(t *testing.T) {
	origArgs := os.Args
	defer func() { os.Args = origArgs }()

	os.Args = []string{"server", "-a", ":7777", "-s", "flag-secret", "-t", "15", "-o", "https://a.com,https://b.com"}

	cfg := &Config{}
	cfg.LoadDefaults()
	parseFlags(cfg)

	assert.Equal(t, ":7777", cfg.EndpointAddr)
	assert.Equal(t, "flag-secret", cfg.SecretKey)
	assert.Equal(t, 15*time.Minute, cfg.TokenValidityDuration)
	assert.Equal(t, "https://a.com,https://b.com", cfg.CORSAllowedOrigins)
}

func TestParseFlags_IgnoresUnknownFlags(t *testing.T) {
	origArgs := os.Args
	defer func() { os.Args = origArgs }()

	os.Args = []string{"server", "-x", "ignored", "-d", "postgres://flag"}

	cfg := &Config{}
	cfg.LoadDefaults()
	parseFlags(cfg)

	assert.Equal(t, "postgres://flag", cfg.DatabaseDSN)
}
