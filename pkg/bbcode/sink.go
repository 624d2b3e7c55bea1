// sink.go defines the rendering contract between a Document and its consumer.
package bbcode

// Sink consumes a Document in order. Open is called before a tag's
// children and Close after them.
type Sink interface {
	Text(content string) error
	Open(kind Kind) error
	Close(kind Kind) error
}

// Walk feeds every node of doc to s, depth first, stopping at the first error.
func Walk(doc Document, s Sink) error {
	for _, n := range doc {
		if err := walkNode(n, s); err != nil {
			return err
		}
	}
	return nil
}

func walkNode(n Node, s Sink) error {
	if n.Type == NodeText {
		return s.Text(n.Text)
	}
	if err := s.Open(n.Kind); err != nil {
		return err
	}
	if err := Walk(n.Children, s); err != nil {
		return err
	}
	return s.Close(n.Kind)
}
