package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/CobSammich/nba-scores-cli/pkg/models"
)

// ScoreboardConfig controls how the scoreboard page is fetched
type ScoreboardConfig struct {
	BaseURL   string        `yaml:"base_url"`
	UserAgent string        `yaml:"user_agent"`
	Timeout   time.Duration `yaml:"timeout"`
}

// ServerConfig holds the HTTP/WebSocket server configuration
type ServerConfig struct {
	Addr        string   `yaml:"addr"`
	CORSOrigins []string `yaml:"cors_origins"`
}

// RedisConfig holds Redis connection configuration. An empty URL disables
// the cache and the update stream.
type RedisConfig struct {
	URL      string        `yaml:"url"`
	DedupTTL time.Duration `yaml:"dedup_ttl"`
}

// LogConfig selects the log level, handler and optional log file
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"` // "cli", "text", "json" or "discard"
	File   string `yaml:"file"`
}

// Config holds all application configuration
type Config struct {
	// Zone whose start times are shown for games that have not started
	Timezone        models.Timezone  `yaml:"timezone"`
	RefreshInterval time.Duration    `yaml:"refresh_interval"`
	Scoreboard      ScoreboardConfig `yaml:"scoreboard"`
	Server          ServerConfig     `yaml:"server"`
	Redis           RedisConfig      `yaml:"redis"`
	Log             LogConfig        `yaml:"log"`
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	return &Config{
		Timezone:        getEnvTimezone("NBA_TIMEZONE", models.TimezoneEastern),
		RefreshInterval: getEnvDuration("REFRESH_INTERVAL", 10*time.Second),
		Scoreboard: ScoreboardConfig{
			BaseURL:   getEnv("SCOREBOARD_BASE_URL", "https://scores.nbcsports.com"),
			UserAgent: getEnv("USER_AGENT", "Mozilla/5.0 (compatible; nba-scores/1.0)"),
			Timeout:   getEnvDuration("HTTP_TIMEOUT", 15*time.Second),
		},
		Server: ServerConfig{
			Addr:        getEnv("SERVER_ADDR", ":8080"),
			CORSOrigins: splitList(getEnv("CORS_ORIGINS", "*")),
		},
		Redis: RedisConfig{
			URL:      getEnv("REDIS_URL", ""),
			DedupTTL: getEnvDuration("DEDUP_TTL", 6*time.Hour),
		},
		Log: LogConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "cli"),
			File:   getEnv("LOG_FILE", ""),
		},
	}
}

// LoadFile reads a YAML config file on top of the environment configuration.
// Keys missing from the file keep their environment or default values.
func LoadFile(path string) (*Config, error) {
	cfg := LoadConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return cfg, nil
}

// Validate checks values that would otherwise fail later at runtime
func (c *Config) Validate() error {
	if !c.Timezone.Valid() {
		return fmt.Errorf("invalid timezone %d", int(c.Timezone))
	}
	if c.RefreshInterval < time.Second {
		return fmt.Errorf("refresh_interval %v is below 1s", c.RefreshInterval)
	}
	if c.Scoreboard.Timeout <= 0 {
		return fmt.Errorf("scoreboard timeout must be positive")
	}
	if c.Scoreboard.BaseURL == "" {
		return fmt.Errorf("scoreboard base_url is required")
	}
	switch c.Log.Format {
	case "cli", "text", "json", "discard":
	default:
		return fmt.Errorf("unknown log format %q", c.Log.Format)
	}
	return nil
}

// RedisEnabled reports whether a Redis URL is configured
func (c *Config) RedisEnabled() bool {
	return c.Redis.URL != ""
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvDuration parses a duration variable, falling back on bad input
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}

// getEnvTimezone parses a timezone variable, falling back on bad input
func getEnvTimezone(key string, defaultValue models.Timezone) models.Timezone {
	if value := os.Getenv(key); value != "" {
		if tz, err := models.ParseTimezone(value); err == nil {
			return tz
		}
	}
	return defaultValue
}

// splitList splits a comma-separated list, dropping empty entries
func splitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
