// Package api is a client for the HTTP service started by "bbc serve".
package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/open-cli-collective/bbcode-cli/pkg/bbcode"
)

const (
	defaultTimeout = 30 * time.Second
)

// Client talks to a bbc render service.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a client for the service at baseURL. A bare host:port
// is treated as http.
func NewClient(baseURL string) *Client {
	if !strings.Contains(baseURL, "://") {
		baseURL = "http://" + baseURL
	}
	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
	}
}

// do executes an HTTP request and returns the response body.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body string) ([]byte, error) {
	// Ensure path starts with /
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}

	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	var reqBody io.Reader
	if method != http.MethodGet {
		reqBody = strings.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	if reqBody != nil {
		req.Header.Set("Content-Type", "text/plain; charset=utf-8")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	// Handle error responses
	if resp.StatusCode >= 400 {
		errResp := &ErrorResponse{StatusCode: resp.StatusCode}
		if err := json.Unmarshal(respBody, errResp); err != nil || errResp.Message == "" {
			errResp.Message = strings.TrimSpace(string(respBody))
		}
		return nil, errResp
	}

	return respBody, nil
}

// Health reports whether the service answers its health check.
func (c *Client) Health(ctx context.Context) error {
	body, err := c.do(ctx, http.MethodGet, "/health", nil, "")
	if err != nil {
		return err
	}

	var status struct {
		Status string `json:"status"`
	}
	if err := json.Unmarshal(body, &status); err != nil {
		return fmt.Errorf("failed to parse health response: %w", err)
	}
	if status.Status != "ok" {
		return fmt.Errorf("service unhealthy: %q", status.Status)
	}
	return nil
}

// RenderOptions selects the remote rendering.
type RenderOptions struct {
	Format      bbcode.Format
	ColorFormat bbcode.ColorFormat
}

// Render renders markup remotely. Empty options use the server's defaults.
func (c *Client) Render(ctx context.Context, markup string, opts RenderOptions) (string, error) {
	query := url.Values{}
	if opts.Format != "" {
		query.Set("format", string(opts.Format))
	}
	if opts.ColorFormat != "" {
		query.Set("color_format", string(opts.ColorFormat))
	}

	body, err := c.do(ctx, http.MethodPost, "/render", query, markup)
	if err != nil {
		return "", err
	}
	return string(body), nil
}

// Tree returns the flattened node tree of markup as parsed by the service.
func (c *Client) Tree(ctx context.Context, markup string) ([]bbcode.Entry, error) {
	body, err := c.do(ctx, http.MethodPost, "/render", url.Values{"format": {"json"}}, markup)
	if err != nil {
		return nil, err
	}

	var entries []bbcode.Entry
	if err := json.Unmarshal(body, &entries); err != nil {
		return nil, fmt.Errorf("failed to parse tree response: %w", err)
	}
	return entries, nil
}

// FromMarkdown converts Markdown to BBCode remotely.
func (c *Client) FromMarkdown(ctx context.Context, markdown string) (string, error) {
	body, err := c.do(ctx, http.MethodPost, "/from-markdown", nil, markdown)
	if err != nil {
		return "", err
	}
	return string(body), nil
}
