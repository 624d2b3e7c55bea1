// serialize.go renders a Document back to bracket syntax.
package bbcode

import "strings"

// ToBBCode re-emits the markers for every tag. For any input s,
// ToBBCode(Parse(s)) == s.
func ToBBCode(doc Document) string {
	var sb strings.Builder
	_ = Walk(doc, &bracketSink{sb: &sb})
	return sb.String()
}

// PlainText returns the document text with all markup removed.
func PlainText(doc Document) string {
	return doc.TextContent()
}

type bracketSink struct {
	sb *strings.Builder
}

func (b *bracketSink) Text(content string) error {
	b.sb.WriteString(content)
	return nil
}

func (b *bracketSink) Open(kind Kind) error {
	b.sb.WriteString(kind.OpenMarker())
	return nil
}

func (b *bracketSink) Close(kind Kind) error {
	b.sb.WriteString(kind.CloseMarker())
	return nil
}
