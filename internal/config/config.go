package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/pelletier/go-toml/v2"

	"github.com/unstrike/OpenAI-Bugcrowd-MCP/internal/common"
)

// Config represents the application configuration.
type Config struct {
	Server   ServerConfig         `toml:"server"`
	Bugcrowd BugcrowdConfig       `toml:"bugcrowd"`
	Logging  common.LoggingConfig `toml:"logging"`
}

// ServerConfig contains MCP server settings.
type ServerConfig struct {
	Name string `toml:"name"`
	Port string `toml:"port"`
}

// BugcrowdConfig contains Bugcrowd API settings. Credentials are deliberately
// absent here — they are read from the environment only, never a config file.
type BugcrowdConfig struct {
	BaseURL    string `toml:"base_url"`
	APIVersion string `toml:"api_version"`
	TimeoutSec int    `toml:"timeout_sec"`
}

// LoadFromFile loads configuration with priority: defaults -> file -> env.
// A missing config file is not an error; defaults plus env apply.
func LoadFromFile(path string) (*Config, error) {
	config := NewDefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			if !os.IsNotExist(err) {
				return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
			}
		} else if err := toml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	applyEnvOverrides(config)

	return config, nil
}

// applyEnvOverrides applies BUGCROWD_* environment variable overrides to config.
func applyEnvOverrides(config *Config) {
	if url := os.Getenv("BUGCROWD_API_BASE_URL"); url != "" {
		config.Bugcrowd.BaseURL = url
	}
	if ver := os.Getenv("BUGCROWD_API_VERSION"); ver != "" {
		config.Bugcrowd.APIVersion = ver
	}
	if timeout := os.Getenv("BUGCROWD_API_TIMEOUT_SEC"); timeout != "" {
		if t, err := strconv.Atoi(timeout); err == nil && t > 0 {
			config.Bugcrowd.TimeoutSec = t
		}
	}
	if port := os.Getenv("BUGCROWD_MCP_PORT"); port != "" {
		config.Server.Port = port
	}
	if level := os.Getenv("BUGCROWD_LOG_LEVEL"); level != "" {
		config.Logging.Level = level
	}
}
