// Package mcp exposes the Bugcrowd REST API as MCP tools.
package mcp

import (
	"github.com/mark3labs/mcp-go/mcp"
)

// ToolDef describes one callable tool and the HTTP request it maps to.
// The set is static, defined at startup, never mutated.
type ToolDef struct {
	Name           string
	Description    string
	Method         string
	Path           string
	RequiresID     bool
	AcceptsQuery   bool
	AcceptsBody    bool
	RequiredFields []string
}

// Catalog returns the fixed set of Bugcrowd API tools, grouped by resource.
// The server_health tool is registered separately (see health.go).
func Catalog() []ToolDef {
	return []ToolDef{
		// Organizations
		{
			Name:         "get_organizations",
			Description:  "List all organizations accessible to the authenticated user.",
			Method:       "GET",
			Path:         "/organizations",
			AcceptsQuery: true,
		},
		{
			Name:         "get_organization",
			Description:  "Get detailed information about a specific organization by ID.",
			Method:       "GET",
			Path:         "/organizations",
			RequiresID:   true,
			AcceptsQuery: true,
		},
		// Programs
		{
			Name:         "get_programs",
			Description:  "List all bug bounty programs available to the authenticated user.",
			Method:       "GET",
			Path:         "/programs",
			AcceptsQuery: true,
		},
		{
			Name:         "get_program",
			Description:  "Get detailed information about a specific bug bounty program.",
			Method:       "GET",
			Path:         "/programs",
			RequiresID:   true,
			AcceptsQuery: true,
		},
		// Submissions
		{
			Name:         "get_submissions",
			Description:  "List all vulnerability submissions accessible to the user.",
			Method:       "GET",
			Path:         "/submissions",
			AcceptsQuery: true,
		},
		{
			Name:         "get_submission",
			Description:  "Get detailed information about a specific vulnerability submission.",
			Method:       "GET",
			Path:         "/submissions",
			RequiresID:   true,
			AcceptsQuery: true,
		},
		{
			Name:           "create_submission",
			Description:    "Create a new vulnerability submission. The data object must include at least title and description; all other field validation is performed by the Bugcrowd API.",
			Method:         "POST",
			Path:           "/submissions",
			AcceptsBody:    true,
			RequiredFields: []string{"title", "description"},
		},
		{
			Name:        "update_submission",
			Description: "Update an existing vulnerability submission. Partial updates are supported.",
			Method:      "PATCH",
			Path:        "/submissions",
			RequiresID:  true,
			AcceptsBody: true,
		},
		// Reports
		{
			Name:         "get_reports",
			Description:  "List all reports (alternative endpoint to submissions with a different data structure).",
			Method:       "GET",
			Path:         "/reports",
			AcceptsQuery: true,
		},
		{
			Name:         "get_report",
			Description:  "Get detailed information about a specific report.",
			Method:       "GET",
			Path:         "/reports",
			RequiresID:   true,
			AcceptsQuery: true,
		},
		// Customer assets
		{
			Name:         "get_customer_assets",
			Description:  "List all customer assets in scope for security testing. Always verify scope before testing.",
			Method:       "GET",
			Path:         "/customer_assets",
			AcceptsQuery: true,
		},
		{
			Name:         "get_customer_asset",
			Description:  "Get detailed information about a specific customer asset, including scope rules.",
			Method:       "GET",
			Path:         "/customer_assets",
			RequiresID:   true,
			AcceptsQuery: true,
		},
		// Monetary rewards
		{
			Name:         "get_monetary_rewards",
			Description:  "List all monetary rewards for bug bounty submissions.",
			Method:       "GET",
			Path:         "/monetary_rewards",
			AcceptsQuery: true,
		},
		{
			Name:         "get_monetary_reward",
			Description:  "Get detailed information about a specific monetary reward.",
			Method:       "GET",
			Path:         "/monetary_rewards",
			RequiresID:   true,
			AcceptsQuery: true,
		},
		// Users
		{
			Name:         "get_users",
			Description:  "List all users in the organization or program scope.",
			Method:       "GET",
			Path:         "/users",
			AcceptsQuery: true,
		},
		{
			Name:         "get_user",
			Description:  "Get detailed information about a specific user.",
			Method:       "GET",
			Path:         "/users",
			RequiresID:   true,
			AcceptsQuery: true,
		},
	}
}

// BuildTool converts a ToolDef into an mcp.Tool with the appropriate schema.
func BuildTool(def ToolDef) mcp.Tool {
	opts := []mcp.ToolOption{mcp.WithDescription(def.Description)}
	if def.RequiresID {
		opts = append(opts, mcp.WithString("id",
			mcp.Required(),
			mcp.Description("Resource ID (UUID or identifier)"),
		))
	}
	if def.AcceptsQuery {
		opts = append(opts, mcp.WithString("query_params",
			mcp.Description("Optional query parameters forwarded verbatim to the Bugcrowd API (e.g. 'page[limit]=5&include=programs'). Filter, sort, and pagination syntax is defined by the Bugcrowd API."),
		))
	}
	if def.AcceptsBody {
		opts = append(opts, mcp.WithString("data",
			mcp.Required(),
			mcp.Description("JSON object forwarded verbatim as the request body, following the Bugcrowd API schema."),
		))
	}
	return mcp.NewTool(def.Name, opts...)
}
