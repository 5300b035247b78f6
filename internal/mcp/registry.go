package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"regexp"
	"strings"

	"github.com/unstrike/OpenAI-Bugcrowd-MCP/internal/bugcrowd"
	"github.com/unstrike/OpenAI-Bugcrowd-MCP/internal/common"
)

// ErrUnknownTool is returned when an invocation names a tool that is not
// in the catalog. Resolved before any network call is attempted.
var ErrUnknownTool = errors.New("unknown tool")

// ArgumentError is a structurally invalid invocation (missing id, malformed
// body). Reported before any network call.
type ArgumentError struct {
	Reason string
}

func (e *ArgumentError) Error() string {
	return "invalid argument: " + e.Reason
}

// resourceIDPattern matches UUIDs and alphanumeric identifiers with
// hyphens/underscores, the formats the Bugcrowd API uses.
var resourceIDPattern = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

// Invocation carries the arguments of one tool call. Transient, one per call.
type Invocation struct {
	ID          string
	QueryParams string
	Data        json.RawMessage
}

// Registry maps the fixed set of tool names to their HTTP mappings and
// dispatches invocations through the Bugcrowd client.
type Registry struct {
	defs   map[string]ToolDef
	client *bugcrowd.Client
	logger *common.Logger
}

// NewRegistry builds the registry from the static catalog.
func NewRegistry(client *bugcrowd.Client, logger *common.Logger) *Registry {
	catalog := Catalog()
	defs := make(map[string]ToolDef, len(catalog))
	for _, def := range catalog {
		defs[def.Name] = def
	}
	return &Registry{defs: defs, client: client, logger: logger}
}

// Lookup returns the definition for a tool name.
func (r *Registry) Lookup(name string) (ToolDef, bool) {
	def, ok := r.defs[name]
	return def, ok
}

// Dispatch resolves a tool name and executes its mapped HTTP request.
// Unknown-tool and argument errors are returned before any network call.
// On success the remote JSON body is returned unchanged.
func (r *Registry) Dispatch(ctx context.Context, name string, inv Invocation) ([]byte, error) {
	def, ok := r.defs[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownTool, name)
	}

	path := def.Path
	if def.RequiresID {
		id := strings.TrimSpace(inv.ID)
		if id == "" {
			return nil, &ArgumentError{Reason: "id parameter is required"}
		}
		if !resourceIDPattern.MatchString(id) {
			return nil, &ArgumentError{Reason: fmt.Sprintf("invalid resource id %q", id)}
		}
		path += "/" + url.PathEscape(id)
	}

	var body json.RawMessage
	if def.AcceptsBody {
		if len(inv.Data) == 0 {
			return nil, &ArgumentError{Reason: "data parameter is required"}
		}
		if err := checkBody(def, inv.Data); err != nil {
			return nil, err
		}
		body = inv.Data
	}

	query := ""
	if def.AcceptsQuery {
		query = inv.QueryParams
	}

	switch def.Method {
	case http.MethodGet:
		return r.client.Get(ctx, path, query)
	case http.MethodPost:
		return r.client.Post(ctx, path, body)
	case http.MethodPatch:
		return r.client.Patch(ctx, path, body)
	default:
		return nil, fmt.Errorf("unsupported method %s for tool %s", def.Method, name)
	}
}

// checkBody enforces that the body is a JSON object and carries the minimal
// required fields. Field-level schema validation beyond this is owned by the
// Bugcrowd API — rejections are surfaced from upstream, not invented locally.
func checkBody(def ToolDef, data json.RawMessage) error {
	var fields map[string]any
	if err := json.Unmarshal(data, &fields); err != nil {
		return &ArgumentError{Reason: "data must be a JSON object"}
	}
	var missing []string
	for _, name := range def.RequiredFields {
		v, ok := fields[name]
		if !ok || v == nil || v == "" {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return &ArgumentError{Reason: "missing required fields: " + strings.Join(missing, ", ")}
	}
	return nil
}
