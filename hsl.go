package tint

import "math"

// rgbMax is the maximum value of a byte-sized color channel.
const rgbMax = 255

// HSLA is the hue, saturation, lightness, alpha view of a Color.
// H is in degrees [0, 360]; S and L are unit fractions rounded to two
// decimal places; A is the source alpha, unrounded.
type HSLA struct {
	H, S, L, A float64
}

// FromHSL converts an HSL triple to an opaque Color.
//
// hue is in degrees. saturation and lightness accept either unit-interval
// values or percentages: anything above 1 is divided by 100. The resulting
// color has alpha 1.
func FromHSL(hue, saturation, lightness float64) *Color {
	h := hue / 360
	s := toDecimal(saturation)
	l := toDecimal(lightness)

	var r, g, b float64
	if s == 0 {
		// Achromatic: hue is undefined and every channel is the lightness.
		r, g, b = l, l, l
	} else {
		var q float64
		if l < 0.5 {
			q = l * (1 + s)
		} else {
			q = l + s - l*s
		}
		p := 2*l - q
		r = hueToRGB(p, q, h+1.0/3)
		g = hueToRGB(p, q, h)
		b = hueToRGB(p, q, h-1.0/3)
	}
	return NewRGBA(toChannel(r), toChannel(g), toChannel(b), 1)
}

// HSLA returns the HSLA view of the color.
func (c *Color) HSLA() HSLA {
	r := float64(c.R) / rgbMax
	g := float64(c.G) / rgbMax
	b := float64(c.B) / rgbMax
	min := math.Min(r, math.Min(g, b))
	max := math.Max(r, math.Max(g, b))
	delta := max - min

	// Hue in 60-degree units, keyed by the dominant channel.
	// Ties resolve in r, g, b order.
	var h float64
	switch {
	case max == min:
		h = 0
	case r == max:
		h = (g - b) / delta
	case g == max:
		h = 2 + (b-r)/delta
	default:
		h = 4 + (r-g)/delta
	}
	h = math.Min(h*60, 360)
	if h < 0 {
		h += 360
	}

	l := (min + max) / 2

	var s float64
	switch {
	case max == min:
		s = 0
	case l <= 0.5:
		s = delta / (max + min)
	default:
		s = delta / (2 - max - min)
	}

	return HSLA{H: round(h, 0), S: round(s, 2), L: round(l, 2), A: c.A}
}

// hueToRGB derives one channel from the p/q intermediates at hue offset t.
func hueToRGB(p, q, t float64) float64 {
	if t < 0 {
		t++
	}
	if t > 1 {
		t--
	}
	switch {
	case t < 1.0/6:
		return p + (q-p)*6*t
	case t < 1.0/2:
		return q
	case t < 2.0/3:
		return p + (q-p)*(2.0/3-t)*6
	}
	return p
}

// toChannel scales a normalized channel value to the byte range.
func toChannel(n float64) uint8 {
	return uint8(clamp255(math.Round(n * rgbMax)))
}

// toDecimal treats values above 1 as percentages and scales them down.
func toDecimal(n float64) float64 {
	if n > 1 {
		return n / 100
	}
	return n
}

// round rounds half away from zero at the given number of decimal places.
func round(n float64, digits int) float64 {
	places := math.Pow(10, float64(digits))
	return math.Round(n*places) / places
}
