package color

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

var (
	rgbPattern = regexp.MustCompile(`(?i)^rgba?\(\s*(\d+)\s*,\s*(\d+)\s*,\s*(\d+)\s*(?:,\s*(\d*\.?\d+)\s*)?\)$`)
	hslPattern = regexp.MustCompile(`(?i)^hsla?\(\s*(-?\d*\.?\d+)\s*,\s*(\d*\.?\d+)%\s*,\s*(\d*\.?\d+)%\s*(?:,\s*(\d*\.?\d+)\s*)?\)$`)
)

// Parse reads a color written as hex ("#rgb", "#rrggbb"), "rgb(r, g, b)",
// "rgba(r, g, b, a)", "hsl(h, s%, l%)" or "hsla(h, s%, l%, a)". The grammars
// are tried in that order and the first match wins; a malformed hex string
// fails outright rather than falling through. Out-of-range numbers are
// clamped (hue wraps) so the returned Value is always consistent.
func Parse(text string) (Value, bool) {
	s := strings.TrimSpace(text)
	if s == "" {
		return Value{}, false
	}

	if strings.HasPrefix(s, "#") {
		return FromHex(s)
	}

	if m := rgbPattern.FindStringSubmatch(s); m != nil {
		a, ok := parseAlpha(m[4])
		if !ok {
			return Value{}, false
		}
		return FromRGB(parseChannel(m[1]), parseChannel(m[2]), parseChannel(m[3]), a), true
	}

	if m := hslPattern.FindStringSubmatch(s); m != nil {
		h, okH := parseNumber(m[1])
		sat, okS := parseNumber(m[2])
		l, okL := parseNumber(m[3])
		a, okA := parseAlpha(m[4])
		if !okH || !okS || !okL || !okA {
			return Value{}, false
		}
		return FromHSL(round(math.Mod(h, 360)), round(clampPercent(sat)), round(clampPercent(l)), a), true
	}

	return Value{}, false
}

// MustParse is like Parse but panics on malformed input. It is meant for
// literals known at compile time.
func MustParse(text string) Value {
	v, ok := Parse(text)
	if !ok {
		panic(fmt.Sprintf("color: cannot parse %q", text))
	}
	return v
}

// parseChannel reads a run of digits. The only possible failure is overflow,
// which saturates to the top of the channel range.
func parseChannel(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 255
	}
	return n
}

func clampPercent(f float64) float64 {
	return math.Max(0, math.Min(100, f))
}

func parseNumber(s string) (float64, bool) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

func parseAlpha(s string) (float64, bool) {
	if s == "" {
		return 1, true
	}
	return parseNumber(s)
}
