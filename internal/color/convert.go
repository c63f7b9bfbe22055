package color

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// HexToRGB decodes "#rgb" or "#rrggbb". Each digit of the short form is
// doubled before decoding. Any other length, a missing '#', or a non-hex
// digit reports false. The returned alpha is always 1; hex carries none.
func HexToRGB(hex string) (RGB, bool) {
	if !strings.HasPrefix(hex, "#") {
		return RGB{}, false
	}
	digits := hex[1:]

	switch len(digits) {
	case 3:
		digits = string([]byte{
			digits[0], digits[0],
			digits[1], digits[1],
			digits[2], digits[2],
		})
	case 6:
	default:
		return RGB{}, false
	}

	var channels [3]int
	for i := range channels {
		n, err := strconv.ParseUint(digits[i*2:i*2+2], 16, 8)
		if err != nil {
			return RGB{}, false
		}
		channels[i] = int(n)
	}

	return RGB{R: channels[0], G: channels[1], B: channels[2], A: 1}, true
}

// RGBToHex renders clamped channels as a lowercase "#rrggbb" string.
func RGBToHex(r, g, b int) string {
	return fmt.Sprintf("#%02x%02x%02x", clampInt(r, 0, 255), clampInt(g, 0, 255), clampInt(b, 0, 255))
}

// RGBToHSL converts 8-bit channels to integer HSL. Achromatic input yields
// hue and saturation 0.
func RGBToHSL(r, g, b int) HSL {
	rf := float64(r) / 255
	gf := float64(g) / 255
	bf := float64(b) / 255

	max := math.Max(rf, math.Max(gf, bf))
	min := math.Min(rf, math.Min(gf, bf))
	l := (max + min) / 2

	if max == min {
		return HSL{H: 0, S: 0, L: round(l * 100), A: 1}
	}

	d := max - min
	var s float64
	if l > 0.5 {
		s = d / (2 - max - min)
	} else {
		s = d / (max + min)
	}

	var h float64
	switch max {
	case rf:
		h = (gf - bf) / d
		if gf < bf {
			h += 6
		}
	case gf:
		h = (bf-rf)/d + 2
	default:
		h = (rf-gf)/d + 4
	}
	h /= 6

	return HSL{H: round(h*360) % 360, S: round(s * 100), L: round(l * 100), A: 1}
}

// HSLToRGB converts integer HSL to 8-bit channels using the p/q hue helper.
func HSLToRGB(h, s, l int) RGB {
	hf := float64(h) / 360
	sf := float64(s) / 100
	lf := float64(l) / 100

	if sf == 0 {
		v := round(lf * 255)
		return RGB{R: v, G: v, B: v, A: 1}
	}

	var q float64
	if lf < 0.5 {
		q = lf * (1 + sf)
	} else {
		q = lf + sf - lf*sf
	}
	p := 2*lf - q

	return RGB{
		R: round(hueToChannel(p, q, hf+1.0/3) * 255),
		G: round(hueToChannel(p, q, hf) * 255),
		B: round(hueToChannel(p, q, hf-1.0/3) * 255),
		A: 1,
	}
}

func hueToChannel(p, q, t float64) float64 {
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
	default:
		return p
	}
}

func round(v float64) int {
	return int(math.Round(v))
}
