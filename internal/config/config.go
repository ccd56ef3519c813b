package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds runtime settings read from the environment.
type Config struct {
	GitHubURL   string
	HTTPTimeout time.Duration // 0 means no client timeout

	RedisAddr      string // empty disables the report cache
	ReportCacheTTL int    // seconds

	HistoryDBPath string // empty disables lookup history

	ServerAddr string
	LogLevel   string
}

func Load() *Config {
	return &Config{
		GitHubURL:      getEnvOrDefault("GITHUB_API_URL", "https://api.github.com"),
		HTTPTimeout:    time.Duration(getEnvInt("HTTP_TIMEOUT_SECONDS", 0)) * time.Second,
		RedisAddr:      os.Getenv("REDIS_ADDR"),
		ReportCacheTTL: getEnvInt("REPORT_CACHE_TTL", 60),
		HistoryDBPath:  os.Getenv("HISTORY_DB_PATH"),
		ServerAddr:     getEnvOrDefault("SERVER_ADDR", ":3000"),
		LogLevel:       getEnvOrDefault("LOG_LEVEL", "warn"),
	}
}

func (c *Config) HasCache() bool   { return c.RedisAddr != "" }
func (c *Config) HasHistory() bool { return c.HistoryDBPath != "" }

func getEnvOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// getEnvInt falls back on unset, unparsable or negative values.
func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return fallback
	}
	return n
}
