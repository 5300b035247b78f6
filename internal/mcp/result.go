package mcp

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/unstrike/OpenAI-Bugcrowd-MCP/internal/bugcrowd"
)

// Error kinds in the normalized failure payload.
const (
	KindUnknownTool    = "unknown_tool"
	KindArgumentError  = "argument_error"
	KindAPIError       = "api_error"
	KindTransportFault = "transport_fault"
	KindInternalError  = "internal_error"
)

// ToolError is the normalized failure payload returned to the calling agent.
// For API errors, Status carries the HTTP status code and Detail the remote
// error body verbatim.
type ToolError struct {
	Kind    string          `json:"kind"`
	Status  int             `json:"status,omitempty"`
	Detail  json.RawMessage `json:"detail,omitempty"`
	Message string          `json:"message,omitempty"`
}

// NormalizeError classifies a dispatch error into the uniform failure shape.
func NormalizeError(err error) ToolError {
	var argErr *ArgumentError
	var apiErr *bugcrowd.APIError
	var transErr *bugcrowd.TransportError
	switch {
	case errors.Is(err, ErrUnknownTool):
		return ToolError{Kind: KindUnknownTool, Message: err.Error()}
	case errors.As(err, &argErr):
		return ToolError{Kind: KindArgumentError, Message: argErr.Reason}
	case errors.As(err, &apiErr):
		te := ToolError{Kind: KindAPIError, Status: apiErr.StatusCode}
		if json.Valid(apiErr.Body) {
			te.Detail = apiErr.Body
		} else {
			te.Message = string(apiErr.Body)
		}
		return te
	case errors.As(err, &transErr):
		return ToolError{Kind: KindTransportFault, Message: transErr.Error()}
	default:
		return ToolError{Kind: KindInternalError, Message: err.Error()}
	}
}

// errorJSON renders the normalized error as a JSON document for the agent.
func errorJSON(err error) string {
	payload, mErr := json.Marshal(struct {
		Error ToolError `json:"error"`
	}{NormalizeError(err)})
	if mErr != nil {
		return fmt.Sprintf(`{"error":{"kind":%q,"message":%q}}`, KindInternalError, err.Error())
	}
	return string(payload)
}
