package mcp

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// textResult creates an MCP text result.
func textResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.NewTextContent(text),
		},
	}
}

// errorResult creates an MCP error result.
func errorResult(message string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.NewTextContent(message),
		},
		IsError: true,
	}
}

// ToolHandler routes an MCP tool call to the Bugcrowd API via the registry.
// All error kinds come back as part of the tool result, never as a protocol error.
func ToolHandler(r *Registry, def ToolDef) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		logger := r.logger.WithCorrelationId(uuid.New().String())

		inv := Invocation{
			ID:          request.GetString("id", ""),
			QueryParams: request.GetString("query_params", ""),
		}
		if def.AcceptsBody {
			inv.Data = dataArgument(request)
		}

		logger.Debug().Str("tool", def.Name).Msg("tool invocation")

		body, err := r.Dispatch(ctx, def.Name, inv)
		if err != nil {
			logger.Warn().Str("tool", def.Name).Str("error", err.Error()).Msg("tool invocation failed")
			return errorResult(errorJSON(err)), nil
		}
		return textResult(string(body)), nil
	}
}

// dataArgument extracts the request body argument. Agents may pass it as a
// JSON-encoded string or a structured object; either way it is forwarded
// verbatim, with structural validation left to the registry.
func dataArgument(request mcp.CallToolRequest) json.RawMessage {
	args := request.GetArguments()
	if args == nil {
		return nil
	}
	switch v := args["data"].(type) {
	case string:
		if v == "" {
			return nil
		}
		return json.RawMessage(v)
	case nil:
		return nil
	default:
		raw, err := json.Marshal(v)
		if err != nil {
			return nil
		}
		return raw
	}
}
