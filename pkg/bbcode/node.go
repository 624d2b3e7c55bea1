// node.go defines the node tree produced by the parser.
package bbcode

// NodeType indicates whether a node is a text leaf or a tag container.
type NodeType int

const (
	NodeText NodeType = iota // literal text, possibly empty
	NodeTag                  // matched tag pair with children
)

// String returns the lowercase name of the node type.
func (t NodeType) String() string {
	if t == NodeTag {
		return "tag"
	}
	return "text"
}

// Node is either a text leaf or a tag container.
// Nodes are built once by Parse and never modified afterwards.
type Node struct {
	Type     NodeType
	Text     string // set when Type == NodeText
	Kind     Kind   // set when Type == NodeTag
	Children []Node // set when Type == NodeTag
}

// Document is the ordered node sequence returned by one parse call.
// There is no implicit wrapping tag.
type Document []Node

// TextNode returns a text leaf.
func TextNode(content string) Node {
	return Node{Type: NodeText, Text: content}
}

// TagNode returns a tag container holding children.
func TagNode(kind Kind, children ...Node) Node {
	return Node{Type: NodeTag, Kind: kind, Children: children}
}

// TextContent returns the concatenated text of the node and all its descendants.
func (n Node) TextContent() string {
	if n.Type == NodeText {
		return n.Text
	}
	return Document(n.Children).TextContent()
}

// TextContent returns the concatenated leaf text of the document in order.
func (d Document) TextContent() string {
	var total int
	for _, n := range d {
		if n.Type == NodeText {
			total += len(n.Text)
		}
	}
	buf := make([]byte, 0, total)
	for _, n := range d {
		buf = append(buf, n.TextContent()...)
	}
	return string(buf)
}
