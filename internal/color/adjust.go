package color

// Lighten returns v with its HSL lightness raised by amount percentage points.
func Lighten(v Value, amount int) Value {
	return FromHSL(v.HSL.H, v.HSL.S, v.HSL.L+amount, v.HSL.A)
}

// Darken returns v with its HSL lightness lowered by amount percentage points.
func Darken(v Value, amount int) Value {
	return Lighten(v, -amount)
}

// Saturate returns v with its HSL saturation raised by amount percentage points.
func Saturate(v Value, amount int) Value {
	return FromHSL(v.HSL.H, v.HSL.S+amount, v.HSL.L, v.HSL.A)
}

// Desaturate returns v with its HSL saturation lowered by amount percentage points.
func Desaturate(v Value, amount int) Value {
	return Saturate(v, -amount)
}

// Spin rotates the hue of v by degrees, wrapping around the color wheel.
func Spin(v Value, degrees int) Value {
	return FromHSL(v.HSL.H+degrees, v.HSL.S, v.HSL.L, v.HSL.A)
}

// WithAlpha returns v with a new opacity; the channels are untouched.
func WithAlpha(v Value, alpha float64) Value {
	alpha = clampAlpha(alpha)
	v.RGB.A = alpha
	v.HSL.A = alpha
	return v
}

// IsLight reports whether v has an HSL lightness of at least 60%.
func IsLight(v Value) bool {
	return v.HSL.L >= 60
}

// Contrast returns black for light colors and white otherwise, suitable for
// text drawn on top of v.
func Contrast(v Value) Value {
	if IsLight(v) {
		return FromRGB(0, 0, 0, 1)
	}
	return Default()
}
