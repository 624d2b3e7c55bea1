package bbcode

// Entry is one row of a flattened Document, in document order.
type Entry struct {
	Depth int    `json:"depth"`
	Type  string `json:"type"`
	Kind  string `json:"kind,omitempty"`
	Text  string `json:"text"`
}

// Flatten lists every node of doc depth first. Tag entries carry the
// concatenated text of their subtree.
func Flatten(doc Document) []Entry {
	var entries []Entry
	flatten(doc, 0, &entries)
	return entries
}

func flatten(nodes []Node, depth int, entries *[]Entry) {
	for _, n := range nodes {
		e := Entry{Depth: depth, Type: n.Type.String(), Text: n.TextContent()}
		if n.Type == NodeTag {
			e.Kind = n.Kind.String()
		}
		*entries = append(*entries, e)
		if n.Type == NodeTag {
			flatten(n.Children, depth+1, entries)
		}
	}
}
