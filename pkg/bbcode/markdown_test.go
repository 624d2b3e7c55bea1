package bbcode

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToMarkdown_Formatting(t *testing.T) {
	out, err := ToMarkdown(Parse("I am [B]bold[/B], [I]italic[/I] and [S]gone[/S]"))
	require.NoError(t, err)

	assert.Contains(t, out, "**bold**")
	assert.Contains(t, out, "*italic*")
	assert.Contains(t, out, "~~gone~~")
}

func TestToMarkdown_ColorAndUnderlineKeepText(t *testing.T) {
	out, err := ToMarkdown(Parse("[#FF0000]red[/#] and [U]under[/U]"))
	require.NoError(t, err)

	assert.Contains(t, out, "red")
	assert.Contains(t, out, "under")
	assert.NotContains(t, out, "[#FF0000]")
}

func TestToMarkdown_Empty(t *testing.T) {
	out, err := ToMarkdown(Parse(""))
	require.NoError(t, err)
	assert.Equal(t, "", out)
}

func TestFromMarkdown(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", ""},
		{"plain", "Hello world", "Hello world"},
		{"bold", "I am **bold**", "I am [B]bold[/B]"},
		{"italic", "I am *italic*", "I am [I]italic[/I]"},
		{"strike", "I am ~~gone~~", "I am [S]gone[/S]"},
		{"nested", "**bold *and italic***", "[B]bold [I]and italic[/I][/B]"},
		{"soft break", "line one\nline two", "line one line two"},
		{"paragraphs", "first\n\nsecond", "first\nsecond"},
		{"heading", "# Title", "Title"},
		{"code span", "use `go test`", "use go test"},
		{"link", "[docs](https://example.com)", "docs"},
		{"italic inside bold inside italic", "*a **b *c* d** e*", "[I]a [B]b c d[/B] e[/I]"},
		{"bold inside strike inside bold", "**a ~~b **c** d~~ e**", "[B]a [S]b c d[/S] e[/B]"},
		{"siblings of same kind", "*a* and *b*", "[I]a[/I] and [I]b[/I]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FromMarkdown([]byte(tt.input))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFromMarkdown_NestedSameKindParsesBack(t *testing.T) {
	src, err := FromMarkdown([]byte("*a **b *c* d** e*"))
	require.NoError(t, err)

	doc := Parse(src)
	want := Document{
		TextNode(""),
		TagNode(Italic,
			TextNode("a "),
			TagNode(Bold, TextNode("b c d")),
			TextNode(" e"),
		),
		TextNode(""),
	}
	assert.Equal(t, want, doc)
}

func TestFromMarkdown_ParsesBack(t *testing.T) {
	src, err := FromMarkdown([]byte("plain **bold** end"))
	require.NoError(t, err)

	doc := Parse(src)
	want := Document{
		TextNode("plain "),
		TagNode(Bold, TextNode("bold")),
		TextNode(" end"),
	}
	assert.Equal(t, want, doc)
}
