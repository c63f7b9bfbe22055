package widgets

import (
	"strings"

	"github.com/alexisbeaulieu97/huepick/internal/color"
	"github.com/alexisbeaulieu97/huepick/internal/picker"
)

// FormatToggle switches the output format of the shared color.
type FormatToggle struct {
	ctrl picker.Controller
}

// NewFormatToggle creates a toggle bound to ctrl.
func NewFormatToggle(ctrl picker.Controller) FormatToggle {
	return FormatToggle{ctrl: ctrl}
}

// Cycle moves delta positions through the formats, wrapping at both ends.
func (t FormatToggle) Cycle(delta int) bool {
	formats := color.Formats()
	idx := (int(t.ctrl.Format()) + delta) % len(formats)
	if idx < 0 {
		idx += len(formats)
	}
	return t.Set(formats[idx])
}

// Set selects f.
func (t FormatToggle) Set(f color.Format) bool {
	if t.ctrl.Disabled() || f == t.ctrl.Format() {
		return false
	}
	t.ctrl.OnFormatChange(f)
	return true
}

// View lists every format with the selected one highlighted.
func (t FormatToggle) View(focused bool) string {
	label := labelStyle.Render("format")
	if focused {
		label = focusedLabel.Render("format")
	}

	current := t.ctrl.Format()
	var names []string
	for _, f := range color.Formats() {
		if f == current {
			names = append(names, activeFormat.Render(f.String()))
			continue
		}
		names = append(names, idleFormat.Render(f.String()))
	}

	row := marker(focused) + label + strings.Join(names, " ")
	if t.ctrl.Disabled() {
		return disabledStyle.Render(row)
	}
	return row
}
