package bbcode

import (
	"encoding/json"
	"strings"
)

// ADFDocument represents an Atlassian Document Format document.
type ADFDocument struct {
	Type    string     `json:"type"`
	Version int        `json:"version"`
	Content []*ADFNode `json:"content"`
}

// ADFNode represents a node in an ADF document.
type ADFNode struct {
	Type    string                 `json:"type"`
	Attrs   map[string]interface{} `json:"attrs,omitempty"`
	Content []*ADFNode             `json:"content,omitempty"`
	Text    string                 `json:"text,omitempty"`
	Marks   []*ADFMark             `json:"marks,omitempty"`
}

// ADFMark represents a text mark (formatting) in ADF.
type ADFMark struct {
	Type  string                 `json:"type"`
	Attrs map[string]interface{} `json:"attrs,omitempty"`
}

// ToADF converts doc into a JSON-encoded ADF document holding a single
// paragraph. Tags become marks on the text they wrap. ADF does not allow
// empty text nodes, so those are dropped, and line breaks become hardBreak
// nodes.
func ToADF(doc Document) (string, error) {
	adf := BuildADF(doc)
	result, err := json.Marshal(adf)
	if err != nil {
		return "", err
	}
	return string(result), nil
}

// BuildADF converts doc into an ADFDocument without encoding it.
func BuildADF(doc Document) *ADFDocument {
	adf := &ADFDocument{
		Type:    "doc",
		Version: 1,
		Content: []*ADFNode{},
	}

	c := &adfConverter{}
	if content := c.convertNodes(doc, nil); len(content) > 0 {
		adf.Content = append(adf.Content, &ADFNode{
			Type:    "paragraph",
			Content: content,
		})
	}
	return adf
}

// adfConverter holds state during tree conversion.
type adfConverter struct{}

func (c *adfConverter) convertNodes(nodes []Node, marks []*ADFMark) []*ADFNode {
	var out []*ADFNode
	for _, n := range nodes {
		out = append(out, c.convertNode(n, marks)...)
	}
	return out
}

func (c *adfConverter) convertNode(n Node, marks []*ADFMark) []*ADFNode {
	if n.Type == NodeText {
		return c.convertText(n.Text, marks)
	}

	newMarks := marks
	if mark := markFor(n.Kind); mark != nil {
		newMarks = append(copyMarks(marks), mark)
	}
	return c.convertNodes(n.Children, newMarks)
}

// convertText splits text on line breaks, emitting hardBreak nodes between
// the pieces.
func (c *adfConverter) convertText(text string, marks []*ADFMark) []*ADFNode {
	if text == "" {
		return nil
	}
	var nodes []*ADFNode
	lines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	for i, line := range lines {
		if i > 0 {
			nodes = append(nodes, &ADFNode{Type: "hardBreak"})
		}
		if line == "" {
			continue
		}
		node := &ADFNode{Type: "text", Text: line}
		if len(marks) > 0 {
			node.Marks = marks
		}
		nodes = append(nodes, node)
	}
	return nodes
}

// markFor returns the ADF mark for a tag kind. Combined markers and colors
// that cannot be parsed carry no mark.
func markFor(kind Kind) *ADFMark {
	switch kind.Type {
	case KindBold:
		return &ADFMark{Type: "strong"}
	case KindUnderline:
		return &ADFMark{Type: "underline"}
	case KindItalic:
		return &ADFMark{Type: "em"}
	case KindStrike:
		return &ADFMark{Type: "strike"}
	case KindColor:
		c, ok := ParseHexColor(kind.Color())
		if !ok {
			return nil
		}
		return &ADFMark{
			Type:  "textColor",
			Attrs: map[string]interface{}{"color": c.Hex()},
		}
	}
	return nil
}

// copyMarks creates a copy of the marks slice.
func copyMarks(marks []*ADFMark) []*ADFMark {
	if marks == nil {
		return nil
	}
	result := make([]*ADFMark, len(marks))
	copy(result, marks)
	return result
}
