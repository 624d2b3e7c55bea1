package bbcode

import "fmt"

// Format names an output rendering of a Document.
type Format string

const (
	FormatHTML     Format = "html"
	FormatANSI     Format = "ansi"
	FormatText     Format = "text"
	FormatBBCode   Format = "bbcode"
	FormatMarkdown Format = "markdown"
	FormatADF      Format = "adf"
)

// Formats returns every Format accepted by Render.
func Formats() []Format {
	return []Format{FormatHTML, FormatANSI, FormatText, FormatBBCode, FormatMarkdown, FormatADF}
}

// RenderOptions configures Render.
type RenderOptions struct {
	HTML    HTMLOptions
	NoColor bool // ANSI only
}

// Render renders doc in the given format.
func Render(doc Document, format Format, opts RenderOptions) (string, error) {
	switch format {
	case FormatHTML:
		return ToHTML(doc, opts.HTML)
	case FormatANSI:
		return ToANSI(doc, opts.NoColor), nil
	case FormatText:
		return PlainText(doc), nil
	case FormatBBCode:
		return ToBBCode(doc), nil
	case FormatMarkdown:
		return ToMarkdown(doc)
	case FormatADF:
		return ToADF(doc)
	}
	return "", fmt.Errorf("unsupported format %q", format)
}
