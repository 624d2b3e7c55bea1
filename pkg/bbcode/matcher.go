// matcher.go locates the leftmost complete tag pair in a string.
package bbcode

import "strings"

// match describes one tag pair found in the input. All offsets are byte
// offsets into the scanned string.
type match struct {
	kind       Kind
	start      int // offset of the opening '['
	innerStart int // first byte after the opening marker
	innerEnd   int // offset of the closing marker
	end        int // first byte after the closing marker
}

// scanner finds tag pairs within one nesting level. Lookups must move
// forward through text; the line terminator and closing marker positions
// found so far are reused, which keeps a scan linear in the common case.
type scanner struct {
	text string

	// termAt is the first line terminator at or after termFrom.
	termFrom, termAt int

	closers map[string]closerPos
}

// closerPos caches the first occurrence of a closing marker at or after
// from, or -1 when there is none.
type closerPos struct {
	from int
	at   int
}

func newScanner(text string) *scanner {
	return &scanner{text: text, termAt: -1}
}

// next returns the leftmost tag pair starting at or after pos. At a given
// '[' a letter marker is tried before a color marker. The inner span is the
// shortest one that reaches a matching closing marker without crossing a
// line terminator.
func (s *scanner) next(pos int) (match, bool) {
	text := s.text
	for pos < len(text) {
		idx := strings.IndexByte(text[pos:], '[')
		if idx < 0 {
			break
		}
		pos += idx
		if m, ok := s.matchLetterTag(pos); ok {
			return m, true
		}
		if m, ok := s.matchColorTag(pos); ok {
			return m, true
		}
		pos++
	}
	return match{}, false
}

// matchLetterTag tries [K]inner[/K] at pos, K being a run of B, U, I, S.
// The closing marker must repeat K exactly.
func (s *scanner) matchLetterTag(pos int) (match, bool) {
	marker, openEnd, ok := scanMarker(s.text, pos, isLetterMarkerChar, 1)
	if !ok {
		return match{}, false
	}
	return s.closeTag(pos, openEnd, marker, "[/"+marker+"]")
}

// matchColorTag tries [#H]inner[/#] at pos, H being uppercase hex digits.
func (s *scanner) matchColorTag(pos int) (match, bool) {
	text := s.text
	if pos+1 >= len(text) || text[pos+1] != '#' {
		return match{}, false
	}
	marker, openEnd, ok := scanMarker(text, pos, isHexDigit, 2)
	if !ok {
		return match{}, false
	}
	return s.closeTag(pos, openEnd, marker, "[/#]")
}

// scanMarker reads an opening marker "[...]" at pos whose characters from
// offset skip onwards all satisfy valid. At least one such character is
// required. It returns the text between the brackets and the offset after ']'.
func scanMarker(text string, pos int, valid func(byte) bool, skip int) (string, int, bool) {
	nameStart := pos + skip
	i := nameStart
	for i < len(text) && valid(text[i]) {
		i++
	}
	if i == nameStart || i >= len(text) || text[i] != ']' {
		return "", pos, false
	}
	return text[pos+1 : i], i + 1, true
}

// closeTag finds the earliest closing marker after openEnd on the same line.
// Closing markers hold no line terminator bytes, so one that starts before
// the terminator also ends before it.
func (s *scanner) closeTag(start, openEnd int, marker, closing string) (match, bool) {
	at := s.index(closing, openEnd)
	if at < 0 || at >= s.lineEnd(openEnd) {
		return match{}, false
	}
	return match{
		kind:       resolveKind(marker),
		start:      start,
		innerStart: openEnd,
		innerEnd:   at,
		end:        at + len(closing),
	}, true
}

// index returns the offset of the first closing at or after from, or -1.
func (s *scanner) index(closing string, from int) int {
	c, ok := s.closers[closing]
	if ok && from >= c.from && (c.at < 0 || from <= c.at) {
		return c.at
	}
	at := strings.Index(s.text[from:], closing)
	if at >= 0 {
		at += from
	}
	if s.closers == nil {
		s.closers = make(map[string]closerPos)
	}
	s.closers[closing] = closerPos{from: from, at: at}
	return at
}

// lineEnd is the package lineEnd with the last answer remembered.
func (s *scanner) lineEnd(from int) int {
	if from < s.termFrom || from > s.termAt {
		s.termFrom, s.termAt = from, lineEnd(s.text, from)
	}
	return s.termAt
}

// lineEnd returns the offset of the first line terminator at or after from,
// or len(text). Terminators are \n, \r, U+2028 and U+2029.
func lineEnd(text string, from int) int {
	for i := from; i < len(text); i++ {
		switch text[i] {
		case '\n', '\r':
			return i
		case 0xE2:
			if i+2 < len(text) && text[i+1] == 0x80 && (text[i+2] == 0xA8 || text[i+2] == 0xA9) {
				return i
			}
		}
	}
	return len(text)
}

// isLetterMarkerChar reports whether c may appear in a formatting marker.
// Only uppercase letters are recognized.
func isLetterMarkerChar(c byte) bool {
	return c == 'B' || c == 'U' || c == 'I' || c == 'S'
}

// isHexDigit reports whether c is a digit or an uppercase hex letter.
func isHexDigit(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'A' && c <= 'F')
}
