package config

import "github.com/unstrike/OpenAI-Bugcrowd-MCP/internal/common"

// NewDefaultConfig creates a configuration with default values.
func NewDefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Name: "Bugcrowd-MCP",
			Port: "4250",
		},
		Bugcrowd: BugcrowdConfig{
			BaseURL:    "https://api.bugcrowd.com",
			APIVersion: "2025-04-23",
			TimeoutSec: 30,
		},
		Logging: common.LoggingConfig{
			Level:      "info",
			Outputs:    []string{"console", "file"},
			FilePath:   "logs/bugcrowd-mcp.log",
			MaxSizeMB:  100,
			MaxBackups: 3,
		},
	}
}
