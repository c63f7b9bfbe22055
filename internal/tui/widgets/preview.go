package widgets

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/huepick/internal/color"
	"github.com/alexisbeaulieu97/huepick/internal/palette"
	"github.com/alexisbeaulieu97/huepick/internal/picker"
)

// Preview paints the current color with legible text on top. It is read-only.
type Preview struct {
	ctrl    picker.Controller
	palette *palette.Palette
	width   int
}

// NewPreview creates a preview; p may be nil to skip the nearest swatch hint.
func NewPreview(ctrl picker.Controller, p *palette.Palette) Preview {
	return Preview{ctrl: ctrl, palette: p, width: 44}
}

// SetWidth sets the block width in cells.
func (p *Preview) SetWidth(width int) {
	if width > 0 {
		p.width = width
	}
}

// Nearest names the palette swatch closest to the current color.
func (p Preview) Nearest() (palette.Swatch, bool) {
	if p.palette == nil {
		return palette.Swatch{}, false
	}
	sw, _, ok := p.palette.Nearest(p.ctrl.Color())
	return sw, ok
}

// View renders the block.
func (p Preview) View() string {
	v := p.ctrl.Color()
	text := color.Contrast(v)

	body := v.Render(p.ctrl.Format())
	if sw, ok := p.Nearest(); ok {
		body = fmt.Sprintf("%s  ≈ %s", body, sw.Name)
	}

	return lipgloss.NewStyle().
		Background(lipgloss.Color(v.Hex)).
		Foreground(lipgloss.Color(text.Hex)).
		Bold(true).
		Width(p.width).
		Padding(1, 2).
		Render(body)
}
