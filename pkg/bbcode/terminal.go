// terminal.go renders a Document as ANSI-styled text with fatih/color.
package bbcode

import (
	"io"
	"strings"

	"github.com/fatih/color"
)

// ToANSI renders doc for a terminal. With noColor set the result equals
// PlainText(doc).
func ToANSI(doc Document, noColor bool) string {
	var sb strings.Builder
	_ = WriteANSI(&sb, doc, noColor)
	return sb.String()
}

// WriteANSI writes the ANSI rendering of doc to w.
func WriteANSI(w io.Writer, doc Document, noColor bool) error {
	return Walk(doc, &terminalSink{w: w, noColor: noColor})
}

type terminalSink struct {
	w       io.Writer
	noColor bool
	open    []Kind
}

func (t *terminalSink) Text(content string) error {
	if content == "" {
		return nil
	}
	c := t.style()
	if c == nil {
		_, err := io.WriteString(t.w, content)
		return err
	}
	_, err := io.WriteString(t.w, c.Sprint(content))
	return err
}

func (t *terminalSink) Open(kind Kind) error {
	t.open = append(t.open, kind)
	return nil
}

func (t *terminalSink) Close(Kind) error {
	if len(t.open) > 0 {
		t.open = t.open[:len(t.open)-1]
	}
	return nil
}

// style combines every open tag into one color. Attributes accumulate;
// for foreground colors the innermost one wins.
func (t *terminalSink) style() *color.Color {
	if t.noColor || len(t.open) == 0 {
		return nil
	}

	var attrs []color.Attribute
	var fg *RGB
	for _, k := range t.open {
		switch k.Type {
		case KindBold:
			attrs = append(attrs, color.Bold)
		case KindUnderline:
			attrs = append(attrs, color.Underline)
		case KindItalic:
			attrs = append(attrs, color.Italic)
		case KindStrike:
			attrs = append(attrs, color.CrossedOut)
		case KindColor:
			if c, ok := ParseHexColor(k.Color()); ok {
				fg = &c
			}
		}
	}
	if len(attrs) == 0 && fg == nil {
		return nil
	}

	c := color.New(attrs...)
	if fg != nil {
		c.AddRGB(int(fg.R), int(fg.G), int(fg.B))
	}
	c.EnableColor()
	return c
}
