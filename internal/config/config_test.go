package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	for _, k := range []string{"GITHUB_API_URL", "HTTP_TIMEOUT_SECONDS", "REDIS_ADDR",
		"REPORT_CACHE_TTL", "HISTORY_DB_PATH", "SERVER_ADDR", "LOG_LEVEL"} {
		t.Setenv(k, "")
	}

	cfg := Load()

	assert.Equal(t, "https://api.github.com", cfg.GitHubURL)
	assert.Equal(t, time.Duration(0), cfg.HTTPTimeout)
	assert.Equal(t, 60, cfg.ReportCacheTTL)
	assert.Equal(t, ":3000", cfg.ServerAddr)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.False(t, cfg.HasCache())
	assert.False(t, cfg.HasHistory())
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("GITHUB_API_URL", "http://localhost:9999")
	t.Setenv("HTTP_TIMEOUT_SECONDS", "5")
	t.Setenv("REDIS_ADDR", "localhost:6379")
	t.Setenv("REPORT_CACHE_TTL", "120")
	t.Setenv("HISTORY_DB_PATH", "./lookups.db")
	t.Setenv("LOG_LEVEL", "debug")

	cfg := Load()

	assert.Equal(t, "http://localhost:9999", cfg.GitHubURL)
	assert.Equal(t, 5*time.Second, cfg.HTTPTimeout)
	assert.Equal(t, 120, cfg.ReportCacheTTL)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.True(t, cfg.HasCache())
	assert.True(t, cfg.HasHistory())
}

func TestLoad_BadIntsFallBack(t *testing.T) {
	t.Setenv("HTTP_TIMEOUT_SECONDS", "soon")
	t.Setenv("REPORT_CACHE_TTL", "-3")

	cfg := Load()

	assert.Equal(t, time.Duration(0), cfg.HTTPTimeout)
	assert.Equal(t, 60, cfg.ReportCacheTTL)
}
