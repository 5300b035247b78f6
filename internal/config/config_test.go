package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestNewDefaultConfig(t *testing.T) {
	cfg := NewDefaultConfig()

	if cfg.Bugcrowd.BaseURL != "https://api.bugcrowd.com" {
		t.Errorf("expected default base URL https://api.bugcrowd.com, got %s", cfg.Bugcrowd.BaseURL)
	}
	if cfg.Bugcrowd.APIVersion != "2025-04-23" {
		t.Errorf("expected default API version 2025-04-23, got %s", cfg.Bugcrowd.APIVersion)
	}
	if cfg.Bugcrowd.TimeoutSec != 30 {
		t.Errorf("expected default timeout 30s, got %d", cfg.Bugcrowd.TimeoutSec)
	}
	if cfg.Server.Name != "Bugcrowd-MCP" {
		t.Errorf("expected default server name Bugcrowd-MCP, got %s", cfg.Server.Name)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("expected default log level info, got %s", cfg.Logging.Level)
	}
}

func TestLoadFromFile_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadFromFile(filepath.Join(t.TempDir(), "does-not-exist.toml"))
	if err != nil {
		t.Fatalf("unexpected error for missing config file: %v", err)
	}
	if cfg.Bugcrowd.BaseURL != "https://api.bugcrowd.com" {
		t.Errorf("expected defaults for missing file, got base URL %s", cfg.Bugcrowd.BaseURL)
	}
}

func TestLoadFromFile_TOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bugcrowd-mcp.toml")
	data := `
[server]
name = "Bugcrowd-MCP-Dev"
port = "9999"

[bugcrowd]
base_url = "http://localhost:8080"
timeout_sec = 5

[logging]
level = "debug"
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	cfg, err := LoadFromFile(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Server.Name != "Bugcrowd-MCP-Dev" {
		t.Errorf("expected server name Bugcrowd-MCP-Dev, got %s", cfg.Server.Name)
	}
	if cfg.Server.Port != "9999" {
		t.Errorf("expected port 9999, got %s", cfg.Server.Port)
	}
	if cfg.Bugcrowd.BaseURL != "http://localhost:8080" {
		t.Errorf("expected base URL http://localhost:8080, got %s", cfg.Bugcrowd.BaseURL)
	}
	if cfg.Bugcrowd.TimeoutSec != 5 {
		t.Errorf("expected timeout 5s, got %d", cfg.Bugcrowd.TimeoutSec)
	}
	// Unset fields keep defaults
	if cfg.Bugcrowd.APIVersion != "2025-04-23" {
		t.Errorf("expected default API version, got %s", cfg.Bugcrowd.APIVersion)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("expected log level debug, got %s", cfg.Logging.Level)
	}
}

func TestLoadFromFile_InvalidTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.toml")
	if err := os.WriteFile(path, []byte("not [valid toml"), 0o644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	if _, err := LoadFromFile(path); err == nil {
		t.Fatal("expected error for invalid TOML")
	}
}

func TestLoadFromFile_EnvOverrides(t *testing.T) {
	t.Setenv("BUGCROWD_API_BASE_URL", "http://127.0.0.1:4444")
	t.Setenv("BUGCROWD_API_VERSION", "2026-01-01")
	t.Setenv("BUGCROWD_API_TIMEOUT_SEC", "12")
	t.Setenv("BUGCROWD_MCP_PORT", "5555")
	t.Setenv("BUGCROWD_LOG_LEVEL", "warn")

	cfg, err := LoadFromFile("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Bugcrowd.BaseURL != "http://127.0.0.1:4444" {
		t.Errorf("expected env base URL override, got %s", cfg.Bugcrowd.BaseURL)
	}
	if cfg.Bugcrowd.APIVersion != "2026-01-01" {
		t.Errorf("expected env API version override, got %s", cfg.Bugcrowd.APIVersion)
	}
	if cfg.Bugcrowd.TimeoutSec != 12 {
		t.Errorf("expected env timeout override, got %d", cfg.Bugcrowd.TimeoutSec)
	}
	if cfg.Server.Port != "5555" {
		t.Errorf("expected env port override, got %s", cfg.Server.Port)
	}
	if cfg.Logging.Level != "warn" {
		t.Errorf("expected env log level override, got %s", cfg.Logging.Level)
	}
}

func TestLoadFromFile_InvalidTimeoutEnvIgnored(t *testing.T) {
	t.Setenv("BUGCROWD_API_TIMEOUT_SEC", "not-a-number")

	cfg, err := LoadFromFile("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Bugcrowd.TimeoutSec != 30 {
		t.Errorf("expected default timeout for invalid env value, got %d", cfg.Bugcrowd.TimeoutSec)
	}
}
