package color

import "math"

// RGB is an 8-bit channel triple with a floating point alpha in [0,1].
type RGB struct {
	R int     `json:"r" yaml:"r"`
	G int     `json:"g" yaml:"g"`
	B int     `json:"b" yaml:"b"`
	A float64 `json:"a" yaml:"a"`
}

// HSL is hue in degrees [0,360), saturation and lightness in percent [0,100],
// and alpha in [0,1].
type HSL struct {
	H int     `json:"h" yaml:"h"`
	S int     `json:"s" yaml:"s"`
	L int     `json:"l" yaml:"l"`
	A float64 `json:"a" yaml:"a"`
}

// Value is the canonical color. RGB, HSL and Hex denote the same color within
// the rounding introduced by integer HSL.
type Value struct {
	RGB RGB    `json:"rgb" yaml:"rgb"`
	HSL HSL    `json:"hsl" yaml:"hsl"`
	Hex string `json:"hex" yaml:"hex"`
}

// Default returns opaque white, substituted whenever a color string cannot be parsed.
func Default() Value {
	return Value{
		RGB: RGB{R: 255, G: 255, B: 255, A: 1},
		HSL: HSL{H: 0, S: 0, L: 100, A: 1},
		Hex: "#ffffff",
	}
}

// FromRGB builds a Value from RGB channels, deriving HSL and hex.
// Channels are clamped to [0,255] and alpha to [0,1].
func FromRGB(r, g, b int, alpha float64) Value {
	r, g, b = clampInt(r, 0, 255), clampInt(g, 0, 255), clampInt(b, 0, 255)
	alpha = clampAlpha(alpha)

	hsl := RGBToHSL(r, g, b)
	hsl.A = alpha

	return Value{
		RGB: RGB{R: r, G: g, B: b, A: alpha},
		HSL: hsl,
		Hex: RGBToHex(r, g, b),
	}
}

// FromHSL builds a Value from HSL components, deriving RGB and hex.
// Hue wraps into [0,360); saturation and lightness are clamped to [0,100].
func FromHSL(h, s, l int, alpha float64) Value {
	h = wrapHue(h)
	s, l = clampInt(s, 0, 100), clampInt(l, 0, 100)
	alpha = clampAlpha(alpha)

	rgb := HSLToRGB(h, s, l)
	rgb.A = alpha

	return Value{
		RGB: rgb,
		HSL: HSL{H: h, S: s, L: l, A: alpha},
		Hex: RGBToHex(rgb.R, rgb.G, rgb.B),
	}
}

// FromHex builds an opaque Value from a #rgb or #rrggbb string.
func FromHex(hex string) (Value, bool) {
	rgb, ok := HexToRGB(hex)
	if !ok {
		return Value{}, false
	}
	return FromRGB(rgb.R, rgb.G, rgb.B, 1), true
}

// Alpha returns the opacity shared by both channel representations.
func (v Value) Alpha() float64 {
	return v.RGB.A
}

// Equal reports whether two values denote the same canonical color.
func (v Value) Equal(other Value) bool {
	return v == other
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampAlpha(a float64) float64 {
	if math.IsNaN(a) {
		return 1
	}
	return math.Max(0, math.Min(1, a))
}

func wrapHue(h int) int {
	h %= 360
	if h < 0 {
		h += 360
	}
	return h
}
