package bbcode

import "strings"

// KindType identifies the formatting a tag applies.
type KindType int

const (
	KindBold      KindType = iota + 1 // [B]
	KindUnderline                     // [U]
	KindItalic                        // [I]
	KindStrike                        // [S]
	KindColor                         // [#RRGGBB]
	KindCombined                      // multi-letter markers such as [BU]
)

var kindNames = map[KindType]string{
	KindBold:      "bold",
	KindUnderline: "underline",
	KindItalic:    "italic",
	KindStrike:    "strike",
	KindColor:     "color",
	KindCombined:  "combined",
}

// String returns the lowercase name of the kind type.
func (t KindType) String() string {
	if name, ok := kindNames[t]; ok {
		return name
	}
	return "unknown"
}

// Kind is the resolved identity of a tag. Marker keeps the literal text found
// between the brackets of the opening marker, e.g. "B", "BU" or "#FF0000".
type Kind struct {
	Type   KindType
	Marker string
}

// Convenience kinds for the single-letter markers.
var (
	Bold      = Kind{Type: KindBold, Marker: "B"}
	Underline = Kind{Type: KindUnderline, Marker: "U"}
	Italic    = Kind{Type: KindItalic, Marker: "I"}
	Strike    = Kind{Type: KindStrike, Marker: "S"}
)

// Color returns a color kind for a "#HEX" token.
func Color(value string) Kind {
	return Kind{Type: KindColor, Marker: value}
}

// Color returns the color token for KindColor, or "" for any other kind.
func (k Kind) Color() string {
	if k.Type != KindColor {
		return ""
	}
	return k.Marker
}

// OpenMarker returns the opening bracket text, e.g. "[B]" or "[#FF0000]".
func (k Kind) OpenMarker() string {
	return "[" + k.Marker + "]"
}

// CloseMarker returns the closing bracket text. Colors always close with "[/#]".
func (k Kind) CloseMarker() string {
	if k.Type == KindColor {
		return "[/#]"
	}
	return "[/" + k.Marker + "]"
}

// String returns a readable form such as "bold" or "color(#FF0000)".
func (k Kind) String() string {
	switch k.Type {
	case KindColor, KindCombined:
		return k.Type.String() + "(" + k.Marker + ")"
	default:
		return k.Type.String()
	}
}

// resolveKind maps a marker to its kind. The marker has already been
// classified as a letter run or a "#HEX" token.
func resolveKind(marker string) Kind {
	if strings.HasPrefix(marker, "#") {
		return Color(marker)
	}
	switch marker {
	case "B":
		return Bold
	case "U":
		return Underline
	case "I":
		return Italic
	case "S":
		return Strike
	}
	return Kind{Type: KindCombined, Marker: marker}
}
