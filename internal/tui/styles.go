package tui

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205")).MarginBottom(1)
	sectionStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")).MarginTop(1)
	disabledBanner = lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Italic(true)
	helpStyle      = lipgloss.NewStyle().MarginTop(1)
)
