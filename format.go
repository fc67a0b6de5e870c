package tint

import (
	"fmt"
	"strconv"
)

// RGBAString returns the color as a CSS-style "rgba(r, g, b, a)" string.
// The alpha channel uses its shortest decimal form: 1.0 prints as "1".
func (c *Color) RGBAString() string {
	return fmt.Sprintf("rgba(%d, %d, %d, %s)", c.R, c.G, c.B, formatFloat(c.A))
}

// HSLAString returns the color as a CSS-style "hsla(h, s%, l%, a)" string,
// derived from the HSLA view. Saturation and lightness print as
// percentages; alpha above 1 is treated as a percentage and scaled down.
func (c *Color) HSLAString() string {
	hsla := c.HSLA()
	return fmt.Sprintf("hsla(%s, %s, %s, %s)",
		formatFloat(hsla.H), toPercent(hsla.S), toPercent(hsla.L),
		formatFloat(toDecimal(hsla.A)))
}

// toPercent formats n as a percentage. Values at or below 1 are scaled up
// by 100; values above 1 are taken as already percent-scaled.
func toPercent(n float64) string {
	if n <= 1 {
		n *= 100
	}
	return formatFloat(n) + "%"
}

// formatFloat renders f in its shortest decimal form, without an exponent.
func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
