package tint

// YIQ is the luma/chrominance view of a Color. Y is the luma in [0, 255];
// I and Q are the chrominance components. Values are not rounded.
//
// See: https://en.wikipedia.org/wiki/YIQ
type YIQ struct {
	Y, I, Q float64
}

// YIQ returns the YIQ view of the color. The alpha channel is ignored.
func (c *Color) YIQ() YIQ {
	r := float64(c.R)
	g := float64(c.G)
	b := float64(c.B)
	return YIQ{
		Y: 0.299*r + 0.587*g + 0.114*b,
		I: 0.596*r - 0.274*g - 0.322*b,
		Q: 0.211*r - 0.523*g + 0.312*b,
	}
}
