// markdown.go converts between BBCode documents and Markdown.
package bbcode

import (
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/strikethrough"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	extast "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"
)

// mdParser is a pre-configured goldmark instance with GFM strikethrough.
var mdParser = goldmark.New(
	goldmark.WithExtensions(extension.Strikethrough),
)

// ToMarkdown converts doc to Markdown by rendering it as HTML first.
// Bold, italic and strike map to **, * and ~~. Markdown has no underline or
// color, so those tags keep only their text.
func ToMarkdown(doc Document) (string, error) {
	fragment, err := ToHTML(doc, HTMLOptions{})
	if err != nil {
		return "", err
	}

	conv := converter.NewConverter(
		converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(),
			strikethrough.NewStrikethroughPlugin(),
		),
	)
	markdown, err := conv.ConvertString("<p>" + fragment + "</p>")
	if err != nil {
		return "", err
	}

	return strings.TrimSpace(markdown), nil
}

// FromMarkdown converts Markdown to BBCode: strong -> [B], emphasis -> [I],
// strikethrough -> [S]. Each block becomes one line of output. Soft line
// breaks become spaces so that no tag spans a line. Emphasis nested inside
// emphasis of the same kind keeps its text only, since the parser would pair
// the inner closer with the outer opener. Other inline syntax (links, code
// spans, images) keeps its text only.
func FromMarkdown(markdown []byte) (string, error) {
	if len(markdown) == 0 {
		return "", nil
	}

	root := mdParser.Parser().Parse(text.NewReader(markdown))
	c := &mdConverter{source: markdown}
	c.convertBlock(root)

	return strings.Join(c.lines, "\n"), nil
}

// mdConverter holds state during AST conversion.
type mdConverter struct {
	source []byte
	lines  []string
	open   map[Kind]bool
}

func (c *mdConverter) convertBlock(n ast.Node) {
	switch node := n.(type) {
	case *ast.Paragraph, *ast.Heading, *ast.TextBlock:
		var sb strings.Builder
		c.convertInlineChildren(node, &sb)
		c.lines = append(c.lines, sb.String())
	case *ast.FencedCodeBlock, *ast.CodeBlock:
		lines := node.Lines()
		for i := 0; i < lines.Len(); i++ {
			line := lines.At(i)
			c.lines = append(c.lines, strings.TrimRight(string(line.Value(c.source)), "\r\n"))
		}
	case *ast.ThematicBreak, *ast.HTMLBlock:
		// nothing to carry over
	default:
		for child := n.FirstChild(); child != nil; child = child.NextSibling() {
			c.convertBlock(child)
		}
	}
}

func (c *mdConverter) convertInlineChildren(n ast.Node, sb *strings.Builder) {
	for child := n.FirstChild(); child != nil; child = child.NextSibling() {
		c.convertInline(child, sb)
	}
}

func (c *mdConverter) convertInline(n ast.Node, sb *strings.Builder) {
	switch node := n.(type) {
	case *ast.Text:
		sb.Write(node.Segment.Value(c.source))
		if node.SoftLineBreak() || node.HardLineBreak() {
			sb.WriteString(" ")
		}

	case *ast.String:
		sb.Write(node.Value)

	case *ast.Emphasis:
		kind := Italic
		if node.Level == 2 {
			kind = Bold
		}
		c.wrap(node, kind, sb)

	case *extast.Strikethrough:
		c.wrap(node, Strike, sb)

	case *ast.CodeSpan:
		for child := node.FirstChild(); child != nil; child = child.NextSibling() {
			if t, ok := child.(*ast.Text); ok {
				sb.Write(t.Segment.Value(c.source))
			}
		}

	case *ast.AutoLink:
		sb.Write(node.URL(c.source))

	case *ast.RawHTML:
		// Skip raw HTML

	default:
		c.convertInlineChildren(n, sb)
	}
}

// wrap writes n's children between kind's markers unless kind is already
// open further up.
func (c *mdConverter) wrap(n ast.Node, kind Kind, sb *strings.Builder) {
	if c.open[kind] {
		c.convertInlineChildren(n, sb)
		return
	}
	if c.open == nil {
		c.open = make(map[Kind]bool)
	}

	c.open[kind] = true
	sb.WriteString(kind.OpenMarker())
	c.convertInlineChildren(n, sb)
	sb.WriteString(kind.CloseMarker())
	c.open[kind] = false
}
