// Package bbcode parses a small BBCode dialect into a node tree and renders
// that tree to HTML, ANSI terminal text, Markdown, ADF and back to BBCode.
//
// Recognized tags:
//
//	[B]..[/B] [U]..[/U] [I]..[/I] [S]..[/S]   formatting
//	[#FF0000]..[/#]                          foreground color
//
// Anything that does not form a complete tag pair is kept as literal text.
package bbcode

import (
	"errors"
	"fmt"
)

var (
	// ErrDepthExceeded is returned when tags nest deeper than Options.MaxDepth.
	ErrDepthExceeded = errors.New("tag nesting too deep")
	// ErrInputTooLarge is returned when input is longer than Options.MaxInputBytes.
	ErrInputTooLarge = errors.New("input too large")
)

// Options bounds the resources a parse may use. Zero values mean unlimited.
type Options struct {
	MaxDepth      int // maximum tag nesting depth
	MaxInputBytes int // maximum input length in bytes
}

// DefaultOptions returns the limits used by the CLI and HTTP service.
func DefaultOptions() Options {
	return Options{
		MaxDepth:      64,
		MaxInputBytes: 1 << 20,
	}
}

// Parse converts text into a Document. It never fails: markup that does not
// form a complete tag pair is preserved verbatim as text. The caller is
// expected to have trimmed surrounding whitespace.
//
// The result is parse(prefix) ++ [tag] ++ parse(suffix) around the leftmost
// match, so every boundary is represented, even by an empty text node.
func Parse(text string) Document {
	doc, _ := ParseWithOptions(text, Options{})
	return doc
}

// ParseWithOptions is Parse with resource limits. It returns ErrInputTooLarge
// or ErrDepthExceeded (wrapped) when a limit is hit.
func ParseWithOptions(text string, opts Options) (Document, error) {
	if opts.MaxInputBytes > 0 && len(text) > opts.MaxInputBytes {
		return nil, fmt.Errorf("%w: %d bytes exceeds limit of %d", ErrInputTooLarge, len(text), opts.MaxInputBytes)
	}
	p := &parser{maxDepth: opts.MaxDepth}
	return p.parse(text, 0)
}

type parser struct {
	maxDepth int
}

// parse handles one nesting level. Suffixes are consumed by the loop rather
// than by recursion, so the call depth follows tag nesting only. The loop
// keeps one scanner for the level so lookups never rescan text already seen.
func (p *parser) parse(text string, depth int) (Document, error) {
	var doc Document
	s := newScanner(text)
	pos := 0
	for {
		m, ok := s.next(pos)
		if !ok {
			return append(doc, TextNode(text[pos:])), nil
		}

		// The prefix cannot hold a match of its own: any pair inside it
		// would have been the leftmost match.
		doc = append(doc, TextNode(text[pos:m.start]))

		if p.maxDepth > 0 && depth+1 > p.maxDepth {
			return nil, fmt.Errorf("%w: limit is %d", ErrDepthExceeded, p.maxDepth)
		}
		children, err := p.parse(text[m.innerStart:m.innerEnd], depth+1)
		if err != nil {
			return nil, err
		}
		doc = append(doc, TagNode(m.kind, children...))

		pos = m.end
	}
}
