package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/unstrike/OpenAI-Bugcrowd-MCP/internal/common"
)

// The health probe is the cheapest authenticated request the API offers:
// a one-item organization listing.
const (
	healthProbePath  = "/organizations"
	healthProbeQuery = "page[limit]=1"
)

// healthReport is the payload returned by the server_health tool.
type healthReport struct {
	Status             string     `json:"status"`
	APIConnection      string     `json:"api_connection"`
	Version            string     `json:"version"`
	BugcrowdAPIVersion string     `json:"bugcrowd_api_version"`
	Error              *ToolError `json:"error,omitempty"`
}

// HealthTool returns the server_health tool definition.
func HealthTool() mcp.Tool {
	return mcp.NewTool("server_health",
		mcp.WithDescription("Check Bugcrowd API connectivity and authentication. Issues a minimal request and reports reachability. Use this to verify the gateway is operational."),
	)
}

// HealthToolHandler exercises the bridge with a minimal request and reports
// reachability and authentication validity. An operational smoke test, not
// part of the business logic.
func HealthToolHandler(r *Registry) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		logger := r.logger.WithCorrelationId(uuid.New().String())

		report := healthReport{
			Status:             "healthy",
			APIConnection:      "ok",
			Version:            common.GetVersion(),
			BugcrowdAPIVersion: r.client.APIVersion(),
		}

		if _, err := r.client.Get(ctx, healthProbePath, healthProbeQuery); err != nil {
			logger.Warn().Str("error", err.Error()).Msg("health check failed")
			te := NormalizeError(err)
			report.Status = "unhealthy"
			report.APIConnection = "error"
			report.Error = &te
		}

		payload, err := json.Marshal(report)
		if err != nil {
			return errorResult(fmt.Sprintf("Error: %v", err)), nil
		}
		return textResult(string(payload)), nil
	}
}
