package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// View renders the current state of the model.
func (m Model) View() string {
	var sections []string

	sections = append(sections, titleStyle.Render("huepick"))
	if m.ctrl.Disabled() {
		sections = append(sections, disabledBanner.Render("picker is disabled; input is ignored"))
	}
	sections = append(sections, m.preview.View())

	sections = append(sections, sectionStyle.Render("Channels"))
	for i, s := range m.sliders {
		sections = append(sections, s.View(m.focus == i))
	}

	if m.swatches.Len() > 0 {
		sections = append(sections, sectionStyle.Render("Swatches"), m.swatches.View(m.focus == m.swatchesIndex()))
	}

	sections = append(sections,
		sectionStyle.Render("Output"),
		m.input.View(m.focus == m.inputIndex()),
		m.toggle.View(m.focus == m.formatIndex()),
		helpStyle.Render(m.help.View(m.keys)),
	)

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}
