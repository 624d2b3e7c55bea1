package bbcode

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// RGB is an 8-bit color with alpha.
type RGB struct {
	R, G, B, A uint8
}

// ParseHexColor parses a "#RGB", "#RGBA", "#RRGGBB" or "#RRGGBBAA" token.
// The leading '#' is optional. Other lengths are rejected.
func ParseHexColor(token string) (RGB, bool) {
	hex := strings.TrimPrefix(token, "#")

	var r, g, b uint8
	a := uint8(255)
	var ok bool

	switch len(hex) {
	case 3, 4:
		vals := make([]uint8, len(hex))
		for i := range vals {
			var v uint8
			if v, ok = parseHexByte(hex[i : i+1]); !ok {
				return RGB{}, false
			}
			vals[i] = v * 17
		}
		r, g, b = vals[0], vals[1], vals[2]
		if len(vals) == 4 {
			a = vals[3]
		}
	case 6, 8:
		vals := make([]uint8, len(hex)/2)
		for i := range vals {
			var v uint8
			if v, ok = parseHexByte(hex[2*i : 2*i+2]); !ok {
				return RGB{}, false
			}
			vals[i] = v
		}
		r, g, b = vals[0], vals[1], vals[2]
		if len(vals) == 4 {
			a = vals[3]
		}
	default:
		return RGB{}, false
	}

	return RGB{R: r, G: g, B: b, A: a}, true
}

// parseHexByte parses one or two hex digits of either case.
func parseHexByte(s string) (uint8, bool) {
	var val uint8
	for i := 0; i < len(s); i++ {
		c := s[i]
		val *= 16
		switch {
		case '0' <= c && c <= '9':
			val += c - '0'
		case 'a' <= c && c <= 'f':
			val += c - 'a' + 10
		case 'A' <= c && c <= 'F':
			val += c - 'A' + 10
		default:
			return 0, false
		}
	}
	return val, true
}

// CSS returns the color the way a browser reports a computed style,
// e.g. "rgb(255, 0, 0)" or "rgba(255, 0, 0, 0.533)".
func (c RGB) CSS() string {
	if c.A == 255 {
		return fmt.Sprintf("rgb(%d, %d, %d)", c.R, c.G, c.B)
	}
	alpha := math.Round(float64(c.A)/255*1000) / 1000
	return fmt.Sprintf("rgba(%d, %d, %d, %s)", c.R, c.G, c.B, strconv.FormatFloat(alpha, 'f', -1, 64))
}

// Hex returns the color as a lowercase "#rrggbb" string, dropping alpha.
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
