package tint

import (
	"encoding/hex"
	"strings"

	"github.com/gogpu/tint/internal/hexparse"
)

// FromHex parses a hexadecimal color string such as "#0089ff" or "0089ff".
//
// Surrounding whitespace is trimmed and at most one leading '#' is
// stripped. The remaining text is segmented into Unicode grapheme clusters;
// the first six clusters are paired into three channel tokens and anything
// after them is ignored. A token that is not two hexadecimal digits decodes
// to channel value 0.
//
// FromHex never fails: input too short to form three channel tokens yields
// the default color (opaque black) rather than an error.
func FromHex(s string) *Color {
	tokens := hexparse.Tokens(strings.TrimPrefix(strings.TrimSpace(s), "#"))
	if len(tokens) < 3 {
		Logger().Debug("hex input too short, using default color", "input", s)
		return New()
	}
	return NewRGBA(hexparse.Byte(tokens[0]), hexparse.Byte(tokens[1]), hexparse.Byte(tokens[2]), 1)
}

// Hex returns the color as a lowercase "#rrggbb" string.
// The alpha channel is not represented.
func (c *Color) Hex() string {
	return "#" + hex.EncodeToString([]byte{c.R, c.G, c.B})
}
