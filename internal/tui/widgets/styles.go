package widgets

import "github.com/charmbracelet/lipgloss"

var (
	labelStyle    = lipgloss.NewStyle().Width(11)
	focusedLabel  = labelStyle.Bold(true).Foreground(lipgloss.Color("205"))
	valueStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).PaddingLeft(1)
	disabledStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Faint(true)
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	activeFormat  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")).Underline(true)
	idleFormat    = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	cursorStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
)

func marker(focused bool) string {
	if focused {
		return cursorStyle.Render("›") + " "
	}
	return "  "
}
