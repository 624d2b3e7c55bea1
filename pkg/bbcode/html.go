// html.go renders a Document to an HTML fragment using golang.org/x/net/html.
package bbcode

import (
	"bytes"
	"fmt"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// ColorFormat selects how color tags are written into the style attribute.
type ColorFormat string

const (
	ColorFormatHex ColorFormat = "hex" // the raw token, e.g. "#FF0000"
	ColorFormatRGB ColorFormat = "rgb" // e.g. "rgb(255, 0, 0)"
)

// ValidateColorFormat checks that s names a known ColorFormat. Empty is allowed.
func ValidateColorFormat(s string) error {
	switch ColorFormat(s) {
	case "", ColorFormatHex, ColorFormatRGB:
		return nil
	}
	return fmt.Errorf("invalid color format %q: must be one of hex, rgb", s)
}

// HTMLOptions configures HTML rendering.
type HTMLOptions struct {
	ColorFormat ColorFormat
}

// ToHTML renders doc as an HTML fragment. Text is escaped.
//
//	[B] -> <b>, [U] -> <u>, [I] -> <i>, [S] -> <s>
//	[#HEX] -> <span style="color: ...">
//
// Combined markers such as [BU] become a plain <span>.
func ToHTML(doc Document, opts HTMLOptions) (string, error) {
	nodes, err := ToHTMLNodes(doc, opts)
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	for _, n := range nodes {
		if err := html.Render(&buf, n); err != nil {
			return "", fmt.Errorf("failed to render html: %w", err)
		}
	}
	return buf.String(), nil
}

// ToHTMLNodes builds the HTML fragment for doc. Empty text nodes are kept,
// so the returned slice has one entry per top-level Node.
func ToHTMLNodes(doc Document, opts HTMLOptions) ([]*html.Node, error) {
	root := &html.Node{Type: html.DocumentNode}
	sink := &htmlSink{stack: []*html.Node{root}, opts: opts}
	if err := Walk(doc, sink); err != nil {
		return nil, err
	}

	var nodes []*html.Node
	for c := root.FirstChild; c != nil; {
		next := c.NextSibling
		root.RemoveChild(c)
		nodes = append(nodes, c)
		c = next
	}
	return nodes, nil
}

type htmlSink struct {
	stack []*html.Node
	opts  HTMLOptions
}

func (h *htmlSink) current() *html.Node {
	return h.stack[len(h.stack)-1]
}

func (h *htmlSink) Text(content string) error {
	h.current().AppendChild(&html.Node{Type: html.TextNode, Data: content})
	return nil
}

func (h *htmlSink) Open(kind Kind) error {
	el := h.element(kind)
	h.current().AppendChild(el)
	h.stack = append(h.stack, el)
	return nil
}

func (h *htmlSink) Close(kind Kind) error {
	if len(h.stack) <= 1 {
		return fmt.Errorf("unbalanced close for %s", kind)
	}
	h.stack = h.stack[:len(h.stack)-1]
	return nil
}

func (h *htmlSink) element(kind Kind) *html.Node {
	switch kind.Type {
	case KindBold:
		return newElement(atom.B)
	case KindUnderline:
		return newElement(atom.U)
	case KindItalic:
		return newElement(atom.I)
	case KindStrike:
		return newElement(atom.S)
	case KindColor:
		el := newElement(atom.Span)
		el.Attr = []html.Attribute{{Key: "style", Val: "color: " + h.cssColor(kind.Color())}}
		return el
	default:
		return newElement(atom.Span)
	}
}

func (h *htmlSink) cssColor(token string) string {
	if h.opts.ColorFormat == ColorFormatRGB {
		if c, ok := ParseHexColor(token); ok {
			return c.CSS()
		}
	}
	return token
}

func newElement(a atom.Atom) *html.Node {
	return &html.Node{Type: html.ElementNode, DataAtom: a, Data: a.String()}
}
