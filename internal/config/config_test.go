package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/CobSammich/nba-scores-cli/internal/config"
	"github.com/CobSammich/nba-scores-cli/pkg/models"
)

var envKeys = []string{
	"NBA_TIMEZONE", "REFRESH_INTERVAL", "SCOREBOARD_BASE_URL", "USER_AGENT",
	"HTTP_TIMEOUT", "SERVER_ADDR", "CORS_ORIGINS", "REDIS_URL", "DEDUP_TTL",
	"LOG_LEVEL", "LOG_FORMAT", "LOG_FILE",
}

// clearEnv blanks every variable LoadConfig reads for the duration of the test
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range envKeys {
		t.Setenv(key, "")
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	clearEnv(t)

	cfg := config.LoadConfig()

	if cfg.Timezone != models.TimezoneEastern {
		t.Errorf("Expected default timezone eastern, got '%s'", cfg.Timezone)
	}
	if cfg.RefreshInterval != 10*time.Second {
		t.Errorf("Expected default refresh interval 10s, got %v", cfg.RefreshInterval)
	}
	if cfg.Scoreboard.BaseURL != "https://scores.nbcsports.com" {
		t.Errorf("Expected default base URL, got '%s'", cfg.Scoreboard.BaseURL)
	}
	if cfg.Scoreboard.Timeout != 15*time.Second {
		t.Errorf("Expected default timeout 15s, got %v", cfg.Scoreboard.Timeout)
	}
	if cfg.Server.Addr != ":8080" {
		t.Errorf("Expected default server addr ':8080', got '%s'", cfg.Server.Addr)
	}
	if len(cfg.Server.CORSOrigins) != 1 || cfg.Server.CORSOrigins[0] != "*" {
		t.Errorf("Expected default CORS origins [*], got %v", cfg.Server.CORSOrigins)
	}
	if cfg.RedisEnabled() {
		t.Errorf("Expected Redis disabled by default, got URL '%s'", cfg.Redis.URL)
	}
	if cfg.Redis.DedupTTL != 6*time.Hour {
		t.Errorf("Expected default dedup TTL 6h, got %v", cfg.Redis.DedupTTL)
	}
	if cfg.Log.Level != "info" || cfg.Log.Format != "cli" || cfg.Log.File != "" {
		t.Errorf("Unexpected log defaults: %+v", cfg.Log)
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("Default config should validate, got %v", err)
	}
}

func TestLoadConfig_CustomValues(t *testing.T) {
	clearEnv(t)
	t.Setenv("NBA_TIMEZONE", "pst")
	t.Setenv("REFRESH_INTERVAL", "30s")
	t.Setenv("SERVER_ADDR", ":9090")
	t.Setenv("CORS_ORIGINS", " http://a.example , ,http://b.example ")
	t.Setenv("REDIS_URL", "redis://redis.example.com:6379/0")
	t.Setenv("LOG_FORMAT", "json")

	cfg := config.LoadConfig()

	if cfg.Timezone != models.TimezonePacific {
		t.Errorf("Expected timezone pacific, got '%s'", cfg.Timezone)
	}
	if cfg.RefreshInterval != 30*time.Second {
		t.Errorf("Expected refresh interval 30s, got %v", cfg.RefreshInterval)
	}
	if cfg.Server.Addr != ":9090" {
		t.Errorf("Expected server addr ':9090', got '%s'", cfg.Server.Addr)
	}
	if len(cfg.Server.CORSOrigins) != 2 || cfg.Server.CORSOrigins[1] != "http://b.example" {
		t.Errorf("Expected 2 trimmed CORS origins, got %v", cfg.Server.CORSOrigins)
	}
	if !cfg.RedisEnabled() {
		t.Error("Expected Redis enabled")
	}
	if cfg.Log.Format != "json" {
		t.Errorf("Expected log format json, got '%s'", cfg.Log.Format)
	}
}

func TestLoadConfig_InvalidValuesFallBack(t *testing.T) {
	clearEnv(t)
	t.Setenv("NBA_TIMEZONE", "hawaii")
	t.Setenv("REFRESH_INTERVAL", "soon")

	cfg := config.LoadConfig()

	if cfg.Timezone != models.TimezoneEastern {
		t.Errorf("Expected fallback timezone eastern, got '%s'", cfg.Timezone)
	}
	if cfg.RefreshInterval != 10*time.Second {
		t.Errorf("Expected fallback refresh interval 10s, got %v", cfg.RefreshInterval)
	}
}

func TestLoadFile(t *testing.T) {
	clearEnv(t)
	t.Setenv("SERVER_ADDR", ":7070")

	path := filepath.Join(t.TempDir(), "nba-scores.yaml")
	data := []byte(`
timezone: mountain
refresh_interval: 20s
scoreboard:
  timeout: 5s
redis:
  url: redis://localhost:6379/1
log:
  level: debug
`)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := config.LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}

	if cfg.Timezone != models.TimezoneMountain {
		t.Errorf("Expected timezone mountain, got '%s'", cfg.Timezone)
	}
	if cfg.RefreshInterval != 20*time.Second {
		t.Errorf("Expected refresh interval 20s, got %v", cfg.RefreshInterval)
	}
	if cfg.Scoreboard.Timeout != 5*time.Second {
		t.Errorf("Expected timeout 5s, got %v", cfg.Scoreboard.Timeout)
	}
	// Not in the file, so the environment value stays
	if cfg.Server.Addr != ":7070" {
		t.Errorf("Expected server addr ':7070', got '%s'", cfg.Server.Addr)
	}
	if cfg.Scoreboard.BaseURL != "https://scores.nbcsports.com" {
		t.Errorf("Expected default base URL kept, got '%s'", cfg.Scoreboard.BaseURL)
	}
	if cfg.Redis.URL != "redis://localhost:6379/1" {
		t.Errorf("Expected redis URL from file, got '%s'", cfg.Redis.URL)
	}
	if cfg.Log.Level != "debug" || cfg.Log.Format != "cli" {
		t.Errorf("Unexpected log config: %+v", cfg.Log)
	}
}

func TestLoadFile_Errors(t *testing.T) {
	clearEnv(t)

	if _, err := config.LoadFile(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Expected error for missing file")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("timezone: [not, a, zone]\n"), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if _, err := config.LoadFile(path); err == nil {
		t.Error("Expected error for malformed file")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*config.Config)
		wantErr bool
	}{
		{"valid", func(*config.Config) {}, false},
		{"bad timezone", func(c *config.Config) { c.Timezone = models.Timezone(9) }, true},
		{"fast refresh", func(c *config.Config) { c.RefreshInterval = 100 * time.Millisecond }, true},
		{"zero timeout", func(c *config.Config) { c.Scoreboard.Timeout = 0 }, true},
		{"no base url", func(c *config.Config) { c.Scoreboard.BaseURL = "" }, true},
		{"bad log format", func(c *config.Config) { c.Log.Format = "xml" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			cfg := config.LoadConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
