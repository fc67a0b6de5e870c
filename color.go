package tint

import (
	"image/color"
	"math"
)

// Color represents a mutable RGBA color value. R, G, and B are byte-sized
// color channels; A is an alpha channel in the range [0, 1].
//
// Channels are configured through the fluent setters, which return the
// receiver so multiple channels can be set in one expression:
//
//	c := tint.New().SetR(0).SetG(137).SetB(255).SetA(0.5)
//
// Two Colors with equal channels are equal; a Color has no identity beyond
// its value. A Color must not be mutated from multiple goroutines at once,
// but the derived views never mutate and are safe to compute concurrently.
type Color struct {
	R, G, B uint8
	A       float64
}

// New creates the default color: opaque black.
func New() *Color {
	return &Color{A: 1}
}

// NewRGBA creates a color from explicit channel values.
// The alpha channel is clamped to [0, 1].
func NewRGBA(r, g, b uint8, a float64) *Color {
	return New().SetR(r).SetG(g).SetB(b).SetA(a)
}

// FromColor converts a standard color.Color to a Color.
func FromColor(src color.Color) *Color {
	n := color.NRGBAModel.Convert(src).(color.NRGBA)
	return NewRGBA(n.R, n.G, n.B, float64(n.A)/255)
}

// SetR sets the red channel and returns the receiver.
func (c *Color) SetR(r uint8) *Color {
	c.R = r
	return c
}

// SetG sets the green channel and returns the receiver.
func (c *Color) SetG(g uint8) *Color {
	c.G = g
	return c
}

// SetB sets the blue channel and returns the receiver.
func (c *Color) SetB(b uint8) *Color {
	c.B = b
	return c
}

// SetA sets the alpha channel, clamped to [0, 1], and returns the receiver.
func (c *Color) SetA(a float64) *Color {
	switch {
	case a < 0:
		c.A = 0
	case a > 1:
		c.A = 1
	default:
		c.A = a
	}
	return c
}

// RGBA implements the color.Color interface, returning alpha-premultiplied
// 16-bit channel values.
func (c *Color) RGBA() (r, g, b, a uint32) {
	a = uint32(math.Round(c.A * 0xffff))
	r = uint32(c.R)
	r |= r << 8
	r = r * a / 0xffff
	g = uint32(c.G)
	g |= g << 8
	g = g * a / 0xffff
	b = uint32(c.B)
	b |= b << 8
	b = b * a / 0xffff
	return r, g, b, a
}

// IsLight reports whether the color reads as light, using the YIQ luma
// midpoint heuristic. Light backgrounds pair with dark foregrounds.
func (c *Color) IsLight() bool {
	return c.YIQ().Y >= 128
}

// IsDark reports whether the color reads as dark.
func (c *Color) IsDark() bool {
	return !c.IsLight()
}

// IsTransparent reports whether the color is fully transparent.
// Only an alpha of exactly 0 counts; near-zero values do not.
func (c *Color) IsTransparent() bool {
	return c.A == 0
}

// clamp255 restricts a value to [0, 255] range.
func clamp255(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 255 {
		return 255
	}
	return x
}
