package mcp

import (
	"github.com/mark3labs/mcp-go/server"
)

// RegisterTools registers all catalog tools plus server_health on the MCP server.
func RegisterTools(s *server.MCPServer, r *Registry) int {
	catalog := Catalog()
	for _, def := range catalog {
		s.AddTool(BuildTool(def), ToolHandler(r, def))
	}
	s.AddTool(HealthTool(), HealthToolHandler(r))
	return len(catalog) + 1
}
