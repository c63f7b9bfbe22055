package tui

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/huepick/internal/palette"
	"github.com/alexisbeaulieu97/huepick/internal/picker"
	"github.com/alexisbeaulieu97/huepick/internal/tui/widgets"
)

const fastSteps = 10

// Options configures the picker program.
type Options struct {
	// Palette feeds the swatch grid and the nearest swatch hint. Nil hides both.
	Palette *palette.Palette
	// Channels selects the sliders; empty means hue, saturation, lightness and alpha.
	Channels []widgets.Channel
	// Columns is the swatch grid width.
	Columns int
}

// Model contains the Bubbletea state of the interactive picker. Every widget
// reads and writes the color through the same controller.
type Model struct {
	ctrl     picker.Controller
	sliders  []widgets.Slider
	swatches widgets.Swatches
	input    widgets.Input
	toggle   widgets.FormatToggle
	preview  widgets.Preview

	keys keyMap
	help help.Model

	focus     int
	width     int
	finished  bool
	cancelled bool
}

// NewModel composes the widgets of one picker around ctrl.
func NewModel(ctrl picker.Controller, opts Options) Model {
	channels := opts.Channels
	if len(channels) == 0 {
		channels = widgets.HSLChannels()
	}

	sliders := make([]widgets.Slider, 0, len(channels))
	for _, ch := range channels {
		sliders = append(sliders, widgets.NewSlider(ctrl, ch))
	}

	return Model{
		ctrl:     ctrl,
		sliders:  sliders,
		swatches: widgets.NewSwatches(ctrl, opts.Palette, opts.Columns),
		input:    widgets.NewInput(ctrl),
		toggle:   widgets.NewFormatToggle(ctrl),
		preview:  widgets.NewPreview(ctrl, opts.Palette),
		keys:     defaultKeyMap(),
		help:     help.New(),
		width:    80,
	}
}

// Init starts the Bubbletea program.
func (m Model) Init() tea.Cmd {
	return nil
}

// Value returns the current color formatted in the selected format.
func (m Model) Value() string {
	return m.ctrl.Color().Render(m.ctrl.Format())
}

// IsFinished reports whether the user left the picker.
func (m Model) IsFinished() bool {
	return m.finished
}

// Cancelled reports whether the user aborted instead of confirming.
func (m Model) Cancelled() bool {
	return m.cancelled
}

// Focus returns the index of the focused widget in the focus ring.
func (m Model) Focus() int {
	return m.focus
}

// The focus ring is the sliders in order, then swatches, input and format.
func (m Model) swatchesIndex() int { return len(m.sliders) }
func (m Model) inputIndex() int    { return len(m.sliders) + 1 }
func (m Model) formatIndex() int   { return len(m.sliders) + 2 }
func (m Model) ringSize() int      { return len(m.sliders) + 3 }

func (m *Model) moveFocus(delta int) {
	if m.input.Focused() {
		m.input.Blur()
	}
	n := m.ringSize()
	m.focus = ((m.focus+delta)%n + n) % n
	if m.focus == m.swatchesIndex() && m.swatches.Len() == 0 {
		m.focus = ((m.focus+delta)%n + n) % n
	}
}
