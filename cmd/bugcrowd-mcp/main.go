package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/mark3labs/mcp-go/server"

	"github.com/unstrike/OpenAI-Bugcrowd-MCP/internal/bugcrowd"
	"github.com/unstrike/OpenAI-Bugcrowd-MCP/internal/common"
	"github.com/unstrike/OpenAI-Bugcrowd-MCP/internal/config"
	gateway "github.com/unstrike/OpenAI-Bugcrowd-MCP/internal/mcp"
)

func main() {
	stdio := flag.Bool("stdio", false, "Use stdio transport (for agent runtimes)")
	configFile := flag.String("config", "bugcrowd-mcp.toml", "Path to config file")
	flag.Parse()

	cfg, err := config.LoadFromFile(*configFile)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger := common.NewLoggerFromConfig(cfg.Logging)

	// Credentials are required at startup — the gateway must not serve tools
	// with broken authentication.
	creds, err := bugcrowd.LoadCredentials()
	if err != nil {
		logger.Error().Str("error", err.Error()).Msg("credential resolution failed")
		fmt.Fprintf(os.Stderr, "startup error: %v\n", err)
		os.Exit(1)
	}

	client := bugcrowd.NewClient(cfg.Bugcrowd, creds, logger)
	registry := gateway.NewRegistry(client, logger)

	mcpServer := server.NewMCPServer(
		cfg.Server.Name,
		common.GetVersion(),
		server.WithToolCapabilities(true),
	)

	toolCount := gateway.RegisterTools(mcpServer, registry)

	logger.Info().
		Int("tools", toolCount).
		Str("base_url", cfg.Bugcrowd.BaseURL).
		Str("api_version", cfg.Bugcrowd.APIVersion).
		Msg("bugcrowd mcp server initialized")

	if *stdio {
		// Stdio transport — reads stdin, writes stdout
		if err := server.ServeStdio(mcpServer); err != nil {
			fmt.Fprintf(os.Stderr, "stdio server error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	port := cfg.Server.Port

	// Streamable HTTP transport — listens on configured port
	httpServer := server.NewStreamableHTTPServer(mcpServer,
		server.WithStateLess(true),
	)

	logger.Info().Str("port", port).Msg("starting MCP streamable HTTP transport")

	if err := httpServer.Start(":" + port); err != nil {
		fmt.Fprintf(os.Stderr, "http server error: %v\n", err)
		os.Exit(1)
	}
}
