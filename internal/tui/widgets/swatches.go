package widgets

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/huepick/internal/color"
	"github.com/alexisbeaulieu97/huepick/internal/palette"
	"github.com/alexisbeaulieu97/huepick/internal/picker"
)

const defaultSwatchColumns = 10

// Swatches is a cursor-driven grid of palette entries.
type Swatches struct {
	ctrl     picker.Controller
	swatches []palette.Swatch
	columns  int
	cursor   int
}

// NewSwatches lays out every swatch of p in rows of columns cells.
func NewSwatches(ctrl picker.Controller, p *palette.Palette, columns int) Swatches {
	if columns <= 0 {
		columns = defaultSwatchColumns
	}
	var swatches []palette.Swatch
	if p != nil {
		swatches = p.All()
	}
	return Swatches{ctrl: ctrl, swatches: swatches, columns: columns}
}

// Len reports the number of swatches.
func (s Swatches) Len() int {
	return len(s.swatches)
}

// Cursor returns the index of the highlighted swatch.
func (s Swatches) Cursor() int {
	return s.cursor
}

// Move shifts the cursor by dx cells and dy rows, stopping at the edges.
func (s *Swatches) Move(dx, dy int) {
	if len(s.swatches) == 0 {
		return
	}
	next := s.cursor + dx + dy*s.columns
	if next < 0 || next >= len(s.swatches) {
		return
	}
	s.cursor = next
}

// Current returns the highlighted swatch.
func (s Swatches) Current() (palette.Swatch, bool) {
	if len(s.swatches) == 0 {
		return palette.Swatch{}, false
	}
	return s.swatches[s.cursor], true
}

// Select proposes the highlighted swatch, keeping the current opacity.
func (s Swatches) Select() bool {
	if s.ctrl.Disabled() {
		return false
	}
	sw, ok := s.Current()
	if !ok {
		return false
	}
	s.ctrl.OnChange(color.WithAlpha(sw.Value, s.ctrl.Color().Alpha()))
	return true
}

// View draws the grid followed by the highlighted swatch's name.
func (s Swatches) View(focused bool) string {
	if len(s.swatches) == 0 {
		return marker(focused) + disabledStyle.Render("no swatches")
	}

	currentHex := s.ctrl.Color().Hex
	var rows []string
	for start := 0; start < len(s.swatches); start += s.columns {
		end := min(start+s.columns, len(s.swatches))
		var cells []string
		for i := start; i < end; i++ {
			cells = append(cells, s.cell(i, focused, currentHex))
		}
		rows = append(rows, "  "+strings.Join(cells, ""))
	}

	sw := s.swatches[s.cursor]
	caption := marker(focused) + sw.Name + valueStyle.Render(sw.Value.Hex)
	return lipgloss.JoinVertical(lipgloss.Left, append(rows, caption)...)
}

func (s Swatches) cell(i int, focused bool, currentHex string) string {
	sw := s.swatches[i]
	text := "   "
	switch {
	case focused && i == s.cursor:
		text = "[ ]"
	case sw.Value.Hex == currentHex:
		text = " • "
	}
	fg := color.Contrast(sw.Value)
	return lipgloss.NewStyle().
		Background(lipgloss.Color(sw.Value.Hex)).
		Foreground(lipgloss.Color(fg.Hex)).
		Render(text)
}
