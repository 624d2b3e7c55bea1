package view

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateFormat(t *testing.T) {
	tests := []struct {
		name    string
		format  string
		wantErr bool
	}{
		{"empty (default)", "", false},
		{"table", "table", false},
		{"json", "json", false},
		{"plain", "plain", false},
		{"invalid", "invalid", true},
		{"html is a render format, not an output format", "html", true},
		{"TABLE uppercase", "TABLE", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateFormat(tt.format)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "invalid output format")
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestValidFormats(t *testing.T) {
	assert.Equal(t, []string{"table", "json", "plain"}, ValidFormats())
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		maxLen int
		want   string
	}{
		{"short string", "hello", 10, "hello"},
		{"exact length", "hello", 5, "hello"},
		{"truncate with ellipsis", "hello world", 8, "hello..."},
		{"very short max", "hello", 3, "hel"},
		{"empty string", "", 10, ""},
		{"multibyte kept whole", "héllo wörld", 8, "héllo..."},
		{"multibyte within limit", "日本語", 3, "日本語"},
		{"multibyte very short max", "日本語テキスト", 2, "日本"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Truncate(tt.input, tt.maxLen))
		})
	}
}

func TestQuote(t *testing.T) {
	assert.Equal(t, `""`, Quote(""))
	assert.Equal(t, `"a\nb"`, Quote("a\nb"))
}

func newTestRenderer(format Format) (*Renderer, *bytes.Buffer) {
	var buf bytes.Buffer
	r := NewRenderer(format, true)
	r.SetWriter(&buf)
	return r, &buf
}

func TestNewRenderer_DefaultsToTable(t *testing.T) {
	r := NewRenderer("", false)
	assert.Equal(t, FormatTable, r.format)
}

func TestRenderTable_Table(t *testing.T) {
	r, buf := newTestRenderer(FormatTable)

	r.RenderTable([]string{"DEPTH", "TYPE", "KIND"}, [][]string{
		{"0", "tag", "bold"},
		{"1", "text", ""},
	})

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "DEPTH  TYPE  KIND", lines[0])
	assert.Equal(t, "0      tag   bold", lines[1])
	assert.Equal(t, "1      text  ", lines[2])
}

func TestRenderTable_FewerColumns(t *testing.T) {
	r, buf := newTestRenderer(FormatTable)

	r.RenderTable([]string{"A", "B", "C"}, [][]string{{"x"}})

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "x", lines[1])
}

func TestRenderTable_Empty(t *testing.T) {
	r, buf := newTestRenderer(FormatTable)

	r.RenderTable([]string{"A", "B"}, nil)

	assert.Equal(t, "A  B\n", buf.String())
}

func TestRenderTable_JSON(t *testing.T) {
	r, buf := newTestRenderer(FormatJSON)

	r.RenderTable([]string{"DEPTH", "TEXT"}, [][]string{{"0", "hi"}})

	var got []map[string]string
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, []map[string]string{{"depth": "0", "text": "hi"}}, got)
}

func TestRenderTable_Plain(t *testing.T) {
	r, buf := newTestRenderer(FormatPlain)

	r.RenderTable([]string{"A", "B"}, [][]string{{"1", "2"}, {"3", "4"}})

	assert.Equal(t, "1\t2\n3\t4\n", buf.String())
}

func TestRenderJSON(t *testing.T) {
	r, buf := newTestRenderer(FormatJSON)

	require.NoError(t, r.RenderJSON(map[string]int{"depth": 2}))

	assert.Equal(t, "{\n  \"depth\": 2\n}\n", buf.String())
}

func TestRenderJSON_Unsupported(t *testing.T) {
	r, _ := newTestRenderer(FormatJSON)

	err := r.RenderJSON(make(chan int))
	require.Error(t, err)
}

func TestRenderText(t *testing.T) {
	r, buf := newTestRenderer(FormatTable)

	r.RenderText("<b>hi</b>")

	assert.Equal(t, "<b>hi</b>\n", buf.String())
}

func TestRenderKeyValue(t *testing.T) {
	t.Run("table", func(t *testing.T) {
		r, buf := newTestRenderer(FormatTable)
		r.RenderKeyValue("format", "html")
		assert.Equal(t, "format: html\n", buf.String())
	})

	t.Run("json", func(t *testing.T) {
		r, buf := newTestRenderer(FormatJSON)
		r.RenderKeyValue("format", "html")
		assert.JSONEq(t, `{"format": "html"}`, buf.String())
	})
}

func TestSuccessAndError(t *testing.T) {
	r, buf := newTestRenderer(FormatTable)

	r.Success("saved")
	r.Error("failed")
	r.Dim("note")

	assert.Equal(t, "✓ saved\n✗ failed\nnote\n", buf.String())
}
