package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("APP_ENV", "")
	t.Setenv("RATE_LIMIT_MAX", "")
	t.Setenv("AUTH_RATE_LIMIT_MAX", "")
	t.Setenv("COOKIE_SECURE", "")

	cfg := Load()

	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, "postgres", cfg.StoreDriver)
	assert.False(t, cfg.CookieSecure)
	assert.Equal(t, 500, cfg.RateLimitMax)
	assert.Equal(t, 50, cfg.AuthRateLimitMax)
	assert.Equal(t, 15*time.Minute, cfg.AuthRateLimitWindow)
	assert.Equal(t, []string{"http://localhost:5173", "http://localhost:3000"}, cfg.CORSOrigins())
	require.NoError(t, cfg.Validate())
}

func TestLoad_ProductionTightensDefaults(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("RATE_LIMIT_MAX", "")
	t.Setenv("AUTH_RATE_LIMIT_MAX", "")
	t.Setenv("COOKIE_SECURE", "")

	cfg := Load()

	assert.True(t, cfg.IsProduction())
	assert.True(t, cfg.CookieSecure)
	assert.Equal(t, 300, cfg.RateLimitMax)
	assert.Equal(t, 10, cfg.AuthRateLimitMax)
}

func TestLoad_InvalidValuesFallBack(t *testing.T) {
	t.Setenv("RATE_LIMIT_WINDOW", "soon")
	t.Setenv("REDIS_DB", "two")
	t.Setenv("HTTP_LOG_ENABLED", "maybe")

	cfg := Load()

	assert.Equal(t, 15*time.Minute, cfg.RateLimitWindow)
	assert.Equal(t, 0, cfg.RedisDB)
	assert.False(t, cfg.HTTPLogEnabled)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{"ok", func(c *Config) {}, false},
		{"same secrets", func(c *Config) { c.JWTRefreshSecret = c.JWTAccessSecret }, true},
		{"empty access secret", func(c *Config) { c.JWTAccessSecret = "" }, true},
		{"unknown store", func(c *Config) { c.StoreDriver = "mongo" }, true},
		{"memory store", func(c *Config) { c.StoreDriver = "memory" }, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := &Config{JWTAccessSecret: "a", JWTRefreshSecret: "b", StoreDriver: "postgres"}
			tc.mutate(cfg)
			err := cfg.Validate()
			if tc.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestPostgresDSN(t *testing.T) {
	cfg := &Config{DBUser: "u", DBPassword: "p", DBHost: "h", DBPort: "5432", DBName: "d", DBSSLMode: "disable"}
	assert.Equal(t, "postgres://u:p@h:5432/d?sslmode=disable", cfg.PostgresDSN())
}
