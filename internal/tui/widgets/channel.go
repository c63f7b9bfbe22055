package widgets

import (
	"fmt"
	"math"

	"github.com/alexisbeaulieu97/huepick/internal/color"
)

// Channel identifies the color component a Slider edits.
type Channel int

const (
	ChannelHue Channel = iota
	ChannelSaturation
	ChannelLightness
	ChannelRed
	ChannelGreen
	ChannelBlue
	ChannelAlpha
)

var channelNames = [...]string{"hue", "saturation", "lightness", "red", "green", "blue", "alpha"}

// HSLChannels are the sliders shown by default.
func HSLChannels() []Channel {
	return []Channel{ChannelHue, ChannelSaturation, ChannelLightness, ChannelAlpha}
}

// RGBChannels edit the red, green and blue bytes directly.
func RGBChannels() []Channel {
	return []Channel{ChannelRed, ChannelGreen, ChannelBlue, ChannelAlpha}
}

func (c Channel) String() string {
	if c < 0 || int(c) >= len(channelNames) {
		return fmt.Sprintf("Channel(%d)", int(c))
	}
	return channelNames[c]
}

// Max is the upper bound of the channel's range. Hue wraps at Max.
func (c Channel) Max() float64 {
	switch c {
	case ChannelHue:
		return 360
	case ChannelSaturation, ChannelLightness:
		return 100
	case ChannelAlpha:
		return 1
	default:
		return 255
	}
}

// Step is the amount one Nudge step moves the channel.
func (c Channel) Step() float64 {
	if c == ChannelAlpha {
		return 0.05
	}
	return 1
}

// pastBound reports whether target lies at or beyond the channel's range.
// Hue wraps and has no bound.
func (c Channel) pastBound(target float64) bool {
	if c == ChannelHue {
		return false
	}
	return target <= 0 || target >= c.Max()
}

// Read extracts the channel from v.
func (c Channel) Read(v color.Value) float64 {
	switch c {
	case ChannelHue:
		return float64(v.HSL.H)
	case ChannelSaturation:
		return float64(v.HSL.S)
	case ChannelLightness:
		return float64(v.HSL.L)
	case ChannelRed:
		return float64(v.RGB.R)
	case ChannelGreen:
		return float64(v.RGB.G)
	case ChannelBlue:
		return float64(v.RGB.B)
	default:
		return v.Alpha()
	}
}

// Apply returns a complete new value with the channel set to target. The
// other components are carried over from v.
func (c Channel) Apply(v color.Value, target float64) color.Value {
	n := int(math.Round(target))
	switch c {
	case ChannelHue:
		return color.FromHSL(n, v.HSL.S, v.HSL.L, v.Alpha())
	case ChannelSaturation:
		return color.FromHSL(v.HSL.H, n, v.HSL.L, v.Alpha())
	case ChannelLightness:
		return color.FromHSL(v.HSL.H, v.HSL.S, n, v.Alpha())
	case ChannelRed:
		return color.FromRGB(n, v.RGB.G, v.RGB.B, v.Alpha())
	case ChannelGreen:
		return color.FromRGB(v.RGB.R, n, v.RGB.B, v.Alpha())
	case ChannelBlue:
		return color.FromRGB(v.RGB.R, v.RGB.G, n, v.Alpha())
	default:
		return color.WithAlpha(v, math.Round(target*100)/100)
	}
}

// Label renders the channel's current reading for display.
func (c Channel) Label(v color.Value) string {
	switch c {
	case ChannelHue:
		return fmt.Sprintf("%d°", v.HSL.H)
	case ChannelSaturation, ChannelLightness:
		return fmt.Sprintf("%d%%", int(c.Read(v)))
	case ChannelAlpha:
		return fmt.Sprintf("%.2f", v.Alpha())
	default:
		return fmt.Sprintf("%d", int(c.Read(v)))
	}
}
