package bugcrowd

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/unstrike/OpenAI-Bugcrowd-MCP/internal/common"
	"github.com/unstrike/OpenAI-Bugcrowd-MCP/internal/config"
)

// maxResponseSize caps the response body to prevent OOM from unexpectedly large responses.
const maxResponseSize = 50 << 20 // 50MB

const userAgent = "Bugcrowd-MCP-Server/1.0.0"

// Client executes authenticated requests against the Bugcrowd REST API.
// It holds no per-call mutable state and is safe for concurrent use.
type Client struct {
	baseURL       string
	apiVersion    string
	authorization string
	httpClient    *http.Client
	logger        *common.Logger
}

// NewClient creates a client from config and resolved credentials.
func NewClient(cfg config.BugcrowdConfig, creds *Credentials, logger *common.Logger) *Client {
	timeout := time.Duration(cfg.TimeoutSec) * time.Second
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		baseURL:       strings.TrimRight(cfg.BaseURL, "/"),
		apiVersion:    cfg.APIVersion,
		authorization: creds.AuthorizationValue(),
		httpClient:    &http.Client{Timeout: timeout},
		logger:        logger,
	}
}

// BaseURL returns the configured API base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// APIVersion returns the pinned Bugcrowd-Version header value.
func (c *Client) APIVersion() string {
	return c.apiVersion
}

// Get performs a GET request. rawQuery is forwarded verbatim — the
// filter/sort/page grammar belongs to the Bugcrowd API, not this client.
func (c *Client) Get(ctx context.Context, path, rawQuery string) ([]byte, error) {
	return c.do(ctx, http.MethodGet, path, rawQuery, nil)
}

// Post performs a POST request with the given JSON body.
func (c *Client) Post(ctx context.Context, path string, body json.RawMessage) ([]byte, error) {
	return c.do(ctx, http.MethodPost, path, "", body)
}

// Patch performs a PATCH request with the given JSON body.
func (c *Client) Patch(ctx context.Context, path string, body json.RawMessage) ([]byte, error) {
	return c.do(ctx, http.MethodPatch, path, "", body)
}

// do executes exactly one request and classifies the outcome: 2xx returns
// the body unchanged, non-2xx returns *APIError with the remote payload
// verbatim, and a round-trip failure returns *TransportError.
func (c *Client) do(ctx context.Context, method, path, rawQuery string, body json.RawMessage) ([]byte, error) {
	reqURL := c.baseURL + path
	if rawQuery != "" {
		reqURL += "?" + strings.TrimPrefix(rawQuery, "?")
	}

	c.logger.Debug().Str("method", method).Str("path", path).Str("query", rawQuery).Msg("bugcrowd request")

	var bodyReader io.Reader
	if body != nil {
		bodyReader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, bodyReader)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/vnd.bugcrowd+json")
	req.Header.Set("Authorization", c.authorization)
	req.Header.Set("Bugcrowd-Version", c.apiVersion)
	req.Header.Set("User-Agent", userAgent)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	duration := time.Since(start)
	if err != nil {
		fault := classifyTransport(err)
		c.logger.Error().Str("method", method).Str("path", path).Int64("duration_ms", duration.Milliseconds()).Str("error", fault.Error()).Msg("bugcrowd request failed")
		return nil, fault
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	c.logger.Debug().Int("status", resp.StatusCode).Int64("duration_ms", duration.Milliseconds()).Msg("bugcrowd response")

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &APIError{StatusCode: resp.StatusCode, Body: respBody}
	}

	return respBody, nil
}
