package configcmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/open-cli-collective/bbcode-cli/internal/config"
)

func TestRunShow_Sources(t *testing.T) {
	path := isolate(t)
	require.NoError(t, (&config.Config{DefaultFormat: "ansi", MaxDepth: 8, MaxInputBytes: 1 << 20}).Save(path))
	t.Setenv("BBC_LISTEN", ":9000")

	var out bytes.Buffer
	require.NoError(t, runShow(&showOptions{configPath: path, output: "plain", noColor: true, out: &out}))

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	assert.Equal(t, []string{
		"default_format\tansi\tconfig",
		"color_format\thex\tdefault",
		"max_depth\t8\tconfig",
		"max_input_bytes\t1048576\tdefault",
		"listen\t:9000\tBBC_LISTEN",
	}, lines)
}

func TestRunShow_NoConfigFile(t *testing.T) {
	path := isolate(t)

	var out bytes.Buffer
	require.NoError(t, runShow(&showOptions{configPath: path, output: "table", noColor: true, out: &out}))

	assert.Contains(t, out.String(), "KEY")
	assert.Contains(t, out.String(), "Config file: "+path)
	assert.Contains(t, out.String(), "(file not found)")
}

func TestRunShow_JSON(t *testing.T) {
	path := isolate(t)

	var out bytes.Buffer
	require.NoError(t, runShow(&showOptions{configPath: path, output: "json", noColor: true, out: &out}))

	var got struct {
		Path   string  `json:"path"`
		Exists bool    `json:"exists"`
		Fields []field `json:"fields"`
	}
	require.NoError(t, json.Unmarshal(out.Bytes(), &got))
	assert.Equal(t, path, got.Path)
	assert.False(t, got.Exists)
	require.Len(t, got.Fields, 5)
	assert.Equal(t, field{Key: "default_format", Value: "html", Source: "default"}, got.Fields[0])
}

func TestRunShow_MalformedFile(t *testing.T) {
	path := isolate(t)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte("max_depth: [oops\n"), 0600))

	err := runShow(&showOptions{configPath: path, noColor: true, out: &bytes.Buffer{}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config file")
}

func TestRunShow_InvalidOutput(t *testing.T) {
	path := isolate(t)

	err := runShow(&showOptions{configPath: path, output: "xml", out: &bytes.Buffer{}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid output format")
}
