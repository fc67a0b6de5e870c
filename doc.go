// Package tint provides a small color value type for Go.
//
// # Overview
//
// tint is a pure Go color primitive designed to integrate with the GoGPU
// ecosystem. It models a single RGBA value with byte-sized color channels
// and a unit-interval alpha, and derives hexadecimal, YIQ, and HSLA views
// from it on demand. All operations are deterministic, allocation-light,
// and total: no input, however malformed, produces an error or a panic.
//
// # Quick Start
//
//	import "github.com/gogpu/tint"
//
//	// Parse a hex string (never fails; malformed input yields opaque black)
//	c := tint.FromHex("#0089ff")
//
//	// Configure channels fluently
//	c.SetA(0.5)
//
//	// Derive views
//	c.Hex()         // "#0089ff"
//	c.RGBAString()  // "rgba(0, 137, 255, 0.5)"
//	c.HSLAString()  // "hsla(208, 100%, 50%, 0.5)"
//	c.IsDark()      // true
//
// # Parsing
//
// FromHex consumes up to six Unicode grapheme clusters, pairing them into
// three channel tokens. Tokens that are not two hexadecimal digits decode
// to zero; input with fewer than three tokens yields the default color.
// Grapheme-cluster segmentation keeps combining characters and emoji from
// shifting channel boundaries on adversarial input.
//
// # Classification
//
// IsLight and IsDark compare the YIQ luma of the color against the midpoint
// of the byte range, a common heuristic for choosing readable foreground
// colors. IsTransparent reports a fully transparent alpha channel.
//
// # Interop
//
// Color implements image/color.Color, and FromColor accepts any
// image/color.Color, so tint values can flow through the standard image
// stack unchanged.
package tint

// Version information for the library.
const (
	Version      = "0.1.0"
	VersionMajor = 0
	VersionMinor = 1
	VersionPatch = 0
)
