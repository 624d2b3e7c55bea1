package frommd

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/open-cli-collective/bbcode-cli/api"
	"github.com/open-cli-collective/bbcode-cli/internal/config"
	"github.com/open-cli-collective/bbcode-cli/internal/server"
)

func TestRunFromMarkdown(t *testing.T) {
	tests := []struct {
		name  string
		args  []string
		stdin string
		want  string
	}{
		{"argument", []string{"**bold** and *italic*"}, "", "[B]bold[/B] and [I]italic[/I]\n"},
		{"stdin", nil, "~~old~~\n\nnew\n", "[S]old[/S]\nnew\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			err := runFromMarkdown(context.Background(), tt.args, &fromMarkdownOptions{
				stdin: strings.NewReader(tt.stdin),
				out:   &out,
			})
			require.NoError(t, err)
			assert.Equal(t, tt.want, out.String())
		})
	}
}

func TestRunFromMarkdown_File(t *testing.T) {
	file := filepath.Join(t.TempDir(), "post.md")
	require.NoError(t, os.WriteFile(file, []byte("# Title\n\n**x**\n"), 0644))

	var out bytes.Buffer
	err := runFromMarkdown(context.Background(), nil, &fromMarkdownOptions{file: file, out: &out})
	require.NoError(t, err)
	assert.Equal(t, "Title\n[B]x[/B]\n", out.String())
}

func TestRunFromMarkdown_MissingFile(t *testing.T) {
	err := runFromMarkdown(context.Background(), nil, &fromMarkdownOptions{
		file: filepath.Join(t.TempDir(), "missing.md"),
		out:  &bytes.Buffer{},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read file")
}

func TestRunFromMarkdown_Remote(t *testing.T) {
	ts := httptest.NewServer(server.New(config.Default(), zerolog.Nop()))
	defer ts.Close()

	var out bytes.Buffer
	err := runFromMarkdown(context.Background(), []string{"**far** ~~away~~"}, &fromMarkdownOptions{
		remote: ts.URL,
		out:    &out,
	})
	require.NoError(t, err)
	assert.Equal(t, "[B]far[/B] [S]away[/S]\n", out.String())
}

func TestRunFromMarkdown_RemoteErrors(t *testing.T) {
	t.Run("service limit", func(t *testing.T) {
		cfg := config.Default()
		cfg.MaxInputBytes = 4
		ts := httptest.NewServer(server.New(cfg, zerolog.Nop()))
		defer ts.Close()

		err := runFromMarkdown(context.Background(), []string{"**too long**"}, &fromMarkdownOptions{
			remote: ts.URL,
			out:    &bytes.Buffer{},
		})
		var apiErr *api.ErrorResponse
		require.True(t, errors.As(err, &apiErr))
		assert.True(t, apiErr.IsTooLarge())
	})

	t.Run("unhealthy service", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`{"status":"starting"}`))
		}))
		defer ts.Close()

		err := runFromMarkdown(context.Background(), []string{"x"}, &fromMarkdownOptions{
			remote: ts.URL,
			out:    &bytes.Buffer{},
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "is not available")
	})
}
