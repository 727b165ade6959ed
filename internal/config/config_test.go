package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "DB_TYPE", "RATE_LIMIT_RPS", "REMINDER_INTERVAL", "CORS_ALLOWED_ORIGINS", "EMAIL_DEBUG"} {
		t.Setenv(key, "")
	}

	cfg := Load()

	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, "sqlite", cfg.DatabaseType)
	assert.Equal(t, 10.0, cfg.RateLimitRPS)
	assert.Equal(t, time.Minute, cfg.ReminderInterval)
	assert.Equal(t, []string{"http://localhost:5173"}, cfg.CORSAllowedOrigins)
	assert.False(t, cfg.EmailDebug)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("DB_TYPE", "postgres")
	t.Setenv("RATE_LIMIT_BURST", "5")
	t.Setenv("REMINDER_INTERVAL", "30s")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, ,https://b.example")
	t.Setenv("EMAIL_DEBUG", "true")

	cfg := Load()

	assert.Equal(t, "9090", cfg.ServerPort)
	assert.Equal(t, "postgres", cfg.DatabaseType)
	assert.Equal(t, 5, cfg.RateLimitBurst)
	assert.Equal(t, 30*time.Second, cfg.ReminderInterval)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSAllowedOrigins)
	assert.True(t, cfg.EmailDebug)
}

func TestLoadIgnoresMalformedNumbers(t *testing.T) {
	t.Setenv("RATE_LIMIT_RPS", "fast")
	t.Setenv("REMINDER_INTERVAL", "-1m")

	cfg := Load()

	assert.Equal(t, 10.0, cfg.RateLimitRPS)
	assert.Equal(t, time.Minute, cfg.ReminderInterval)
}
