package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("APP_PORT", "8080")
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("CACHE_TTL_SECONDS", "not-a-number")
	t.Setenv("OTEL_ENABLED", "true")
	t.Setenv("LLM_TEMPERATURE", "0.2")
	t.Setenv("LLM_MAX_TOKENS", "256")

	cfg := Load()

	assert.Equal(t, "8080", cfg.App.Port)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, 300, cfg.Cache.TTLSeconds)
	assert.True(t, cfg.App.OtelEnabled)
	assert.Equal(t, 0.2, cfg.Ai.Temperature)
	assert.Equal(t, 256, cfg.Ai.MaxTokens)
	assert.False(t, cfg.IsProduction())
}

func TestGetEnvFallback(t *testing.T) {
	assert.Equal(t, "fallback", getEnv("ROADMAP_TEST_UNSET_KEY", "fallback"))

	t.Setenv("ROADMAP_TEST_BOOL", "nope")
	assert.True(t, getEnvAsBool("ROADMAP_TEST_BOOL", true))

	t.Setenv("ROADMAP_TEST_INT", "42")
	assert.Equal(t, 42, getEnvAsInt("ROADMAP_TEST_INT", 7))

	t.Setenv("ROADMAP_TEST_FLOAT", "warm")
	assert.Equal(t, 0.7, getEnvAsFloat("ROADMAP_TEST_FLOAT", 0.7))
}
