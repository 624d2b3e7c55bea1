package api

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/open-cli-collective/bbcode-cli/internal/config"
	"github.com/open-cli-collective/bbcode-cli/internal/server"
	"github.com/open-cli-collective/bbcode-cli/pkg/bbcode"
)

func TestNewClient(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"http://localhost:8080/", "http://localhost:8080"},
		{"https://bbc.example.com", "https://bbc.example.com"},
		{"127.0.0.1:8080", "http://127.0.0.1:8080"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, NewClient(tt.in).baseURL)
		})
	}
}

func TestClient_Request(t *testing.T) {
	var method, path, query, contentType, body string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		method = r.Method
		path = r.URL.Path
		query = r.URL.RawQuery
		contentType = r.Header.Get("Content-Type")
		data, _ := io.ReadAll(r.Body)
		body = string(data)
		_, _ = w.Write([]byte("<b>x</b>"))
	}))
	defer ts.Close()

	out, err := NewClient(ts.URL).Render(context.Background(), "[B]x[/B]", RenderOptions{
		Format:      bbcode.FormatHTML,
		ColorFormat: bbcode.ColorFormatRGB,
	})
	require.NoError(t, err)

	assert.Equal(t, "<b>x</b>", out)
	assert.Equal(t, http.MethodPost, method)
	assert.Equal(t, "/render", path)
	assert.Equal(t, "color_format=rgb&format=html", query)
	assert.Equal(t, "text/plain; charset=utf-8", contentType)
	assert.Equal(t, "[B]x[/B]", body)
}

func TestClient_ErrorResponse(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		body     string
		wantMsg  string
		tooLarge bool
		tooDeep  bool
	}{
		{"json error", http.StatusBadRequest, `{"error":"unsupported format: pdf"}`, "unsupported format: pdf", false, false},
		{"too large", http.StatusRequestEntityTooLarge, `{"error":"input too large"}`, "input too large", true, false},
		{"too deep", http.StatusUnprocessableEntity, `{"error":"tag nesting too deep"}`, "tag nesting too deep", false, true},
		{"plain text body", http.StatusInternalServerError, "boom\n", "boom", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer ts.Close()

			_, err := NewClient(ts.URL).Render(context.Background(), "x", RenderOptions{})
			require.Error(t, err)

			var apiErr *ErrorResponse
			require.True(t, errors.As(err, &apiErr))
			assert.Equal(t, tt.status, apiErr.StatusCode)
			assert.Equal(t, tt.wantMsg, apiErr.Error())
			assert.Equal(t, tt.tooLarge, apiErr.IsTooLarge())
			assert.Equal(t, tt.tooDeep, apiErr.IsTooDeep())
		})
	}
}

func TestClient_Unreachable(t *testing.T) {
	ts := httptest.NewServer(http.NotFoundHandler())
	addr := ts.URL
	ts.Close()

	err := NewClient(addr).Health(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "request failed")
}

// newService runs the real bbc server behind httptest.
func newService(t *testing.T, mutate func(*config.Config)) *Client {
	t.Helper()
	cfg := config.Default()
	if mutate != nil {
		mutate(cfg)
	}
	ts := httptest.NewServer(server.New(cfg, zerolog.Nop()))
	t.Cleanup(ts.Close)
	return NewClient(ts.URL)
}

func TestClient_AgainstServer(t *testing.T) {
	client := newService(t, nil)
	ctx := context.Background()

	require.NoError(t, client.Health(ctx))

	html, err := client.Render(ctx, "[B]a[/B] [#F00]b[/#]", RenderOptions{ColorFormat: bbcode.ColorFormatRGB})
	require.NoError(t, err)
	assert.Equal(t, `<b>a</b> <span style="color: rgb(255, 0, 0)">b</span>`, html)

	entries, err := client.Tree(ctx, "[U]u[/U]")
	require.NoError(t, err)
	assert.Equal(t, bbcode.Flatten(bbcode.Parse("[U]u[/U]")), entries)

	markup, err := client.FromMarkdown(ctx, "**x**")
	require.NoError(t, err)
	assert.Equal(t, "[B]x[/B]", markup)
}

func TestClient_AgainstServerLimits(t *testing.T) {
	client := newService(t, func(c *config.Config) { c.MaxDepth = 1 })

	_, err := client.Render(context.Background(), "[B][B]x[/B][/B]", RenderOptions{})

	var apiErr *ErrorResponse
	require.True(t, errors.As(err, &apiErr))
	assert.True(t, apiErr.IsTooDeep())
}
