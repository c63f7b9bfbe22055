package color

import (
	"fmt"
	"strconv"
	"strings"
)

// Format selects the textual serialization of a Value. It never changes the
// canonical color itself.
type Format int

const (
	FormatHex Format = iota
	FormatRGB
	FormatRGBA
	FormatHSL
	FormatHSLA
)

var formatNames = [...]string{
	FormatHex:  "hex",
	FormatRGB:  "rgb",
	FormatRGBA: "rgba",
	FormatHSL:  "hsl",
	FormatHSLA: "hsla",
}

// Formats lists every supported format in cycling order.
func Formats() []Format {
	return []Format{FormatHex, FormatRGB, FormatRGBA, FormatHSL, FormatHSLA}
}

// Valid reports whether f is one of the five known formats.
func (f Format) Valid() bool {
	return f >= FormatHex && f <= FormatHSLA
}

func (f Format) String() string {
	if !f.Valid() {
		return fmt.Sprintf("Format(%d)", int(f))
	}
	return formatNames[f]
}

// Next returns the format following f, wrapping after hsla.
func (f Format) Next() Format {
	if !f.Valid() || f == FormatHSLA {
		return FormatHex
	}
	return f + 1
}

// HasAlpha reports whether the format renders the alpha channel.
func (f Format) HasAlpha() bool {
	return f == FormatRGBA || f == FormatHSLA
}

// ParseFormat resolves a format name case-insensitively.
func ParseFormat(name string) (Format, error) {
	needle := strings.ToLower(strings.TrimSpace(name))
	for i, candidate := range formatNames {
		if candidate == needle {
			return Format(i), nil
		}
	}
	return FormatHex, fmt.Errorf("unknown color format %q (want one of %s)", name, strings.Join(formatNames[:], ", "))
}

// MarshalText implements encoding.TextMarshaler.
func (f Format) MarshalText() ([]byte, error) {
	if !f.Valid() {
		return nil, fmt.Errorf("invalid color format %d", int(f))
	}
	return []byte(f.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (f *Format) UnmarshalText(text []byte) error {
	parsed, err := ParseFormat(string(text))
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}

// Render serializes v in the requested format. Unknown formats fall back to hex.
func (v Value) Render(f Format) string {
	switch f {
	case FormatHex:
		return v.Hex
	case FormatRGB:
		return fmt.Sprintf("rgb(%d, %d, %d)", v.RGB.R, v.RGB.G, v.RGB.B)
	case FormatRGBA:
		return fmt.Sprintf("rgba(%d, %d, %d, %s)", v.RGB.R, v.RGB.G, v.RGB.B, formatAlpha(v.RGB.A))
	case FormatHSL:
		return fmt.Sprintf("hsl(%d, %d%%, %d%%)", v.HSL.H, v.HSL.S, v.HSL.L)
	case FormatHSLA:
		return fmt.Sprintf("hsla(%d, %d%%, %d%%, %s)", v.HSL.H, v.HSL.S, v.HSL.L, formatAlpha(v.HSL.A))
	default:
		return v.Hex
	}
}

// String renders the value as hex.
func (v Value) String() string {
	return v.Hex
}

// FormatValue is the function form of Value.Render.
func FormatValue(v Value, f Format) string {
	return v.Render(f)
}

// formatAlpha prints the shortest decimal that round-trips, e.g. "1" or "0.5".
func formatAlpha(a float64) string {
	return strconv.FormatFloat(a, 'f', -1, 64)
}
