package widgets

import (
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/huepick/internal/picker"
)

const (
	defaultSliderWidth = 30
	// A full turn of the hue wheel at one degree per step.
	maxNudgeAttempts = 360
)

// Slider edits one channel of the shared color.
type Slider struct {
	ctrl    picker.Controller
	channel Channel
	width   int
}

// NewSlider creates a slider for channel bound to ctrl.
func NewSlider(ctrl picker.Controller, channel Channel) Slider {
	return Slider{ctrl: ctrl, channel: channel, width: defaultSliderWidth}
}

// Channel returns the edited channel.
func (s Slider) Channel() Channel {
	return s.channel
}

// SetWidth sets the bar width in cells.
func (s *Slider) SetWidth(width int) {
	if width > 0 {
		s.width = width
	}
}

// Value reads the channel from the current color.
func (s Slider) Value() float64 {
	return s.channel.Read(s.ctrl.Color())
}

// Nudge moves the channel by steps and proposes the resulting color. A move
// the selected format cannot express, such as opacity under hex or a hue shift
// too small to alter the rounded channels, keeps stepping in the same
// direction until the formatted string changes. It reports whether a change
// was proposed; nothing happens while the picker is disabled or once the
// channel reaches its bound without a visible change.
func (s Slider) Nudge(steps int) bool {
	if s.ctrl.Disabled() || steps == 0 {
		return false
	}

	format := s.ctrl.Format()
	current := s.ctrl.Color()
	before := current.Render(format)

	target := s.channel.Read(current)
	delta := float64(steps) * s.channel.Step()
	for range maxNudgeAttempts {
		target += delta
		next := s.channel.Apply(current, target)
		if next.Render(format) != before {
			s.ctrl.OnChange(next)
			return true
		}
		if s.channel.pastBound(target) {
			return false
		}
	}
	return false
}

// View renders the label, a bar filled in the current color and the reading.
func (s Slider) View(focused bool) string {
	v := s.ctrl.Color()

	ratio := s.channel.Read(v) / s.channel.Max()
	bar := progress.New(
		progress.WithSolidFill(v.Hex),
		progress.WithoutPercentage(),
		progress.WithWidth(s.width),
	)

	label := labelStyle.Render(s.channel.String())
	if focused {
		label = focusedLabel.Render(s.channel.String())
	}

	row := lipgloss.JoinHorizontal(lipgloss.Left,
		marker(focused),
		label,
		bar.ViewAs(ratio),
		valueStyle.Render(s.channel.Label(v)),
	)
	if s.ctrl.Disabled() {
		return disabledStyle.Render(row)
	}
	return row
}
