// Package hexparse tokenizes loosely-formatted hexadecimal color input.
//
// Input is segmented into Unicode grapheme clusters rather than bytes, so
// combining characters and emoji occupy a single position instead of
// shifting channel boundaries. Decoding is total: malformed tokens decode
// to zero rather than reporting an error.
package hexparse

import (
	"encoding/hex"

	"github.com/rivo/uniseg"
)

// maxClusters bounds how much input is consumed: three channels of two
// grapheme clusters each.
const maxClusters = 6

// Tokens splits s into channel tokens of up to two grapheme clusters each.
// At most six clusters are consumed; trailing input is ignored. The last
// token may hold a single cluster when the input has odd length.
func Tokens(s string) []string {
	tokens := make([]string, 0, 3)
	gr := uniseg.NewGraphemes(s)
	for n := 0; n < maxClusters && gr.Next(); n++ {
		if n%2 == 0 {
			tokens = append(tokens, gr.Str())
		} else {
			tokens[len(tokens)-1] += gr.Str()
		}
	}
	return tokens
}

// Byte decodes a channel token as a base-16 byte. Tokens that are not
// exactly two hexadecimal digits decode to 0.
func Byte(tok string) uint8 {
	b, err := hex.DecodeString(tok)
	if err != nil || len(b) != 1 {
		return 0
	}
	return b[0]
}
