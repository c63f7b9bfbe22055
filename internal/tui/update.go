package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Update handles Bubbletea messages and updates model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		barWidth := max(10, msg.Width-30)
		for i := range m.sliders {
			m.sliders[i].SetWidth(barWidth)
		}
		m.preview.SetWidth(min(msg.Width-2, 60))
		return m, nil
	case tea.KeyMsg:
		if m.input.Focused() {
			return m.handleEditing(msg)
		}
		return m.handleKeyPress(msg)
	case tea.QuitMsg:
		m.finished = true
		return m, nil
	}

	return m, nil
}

func (m Model) handleEditing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		m.cancelled = true
		m.finished = true
		return m, tea.Quit
	case "enter":
		if m.input.Submit() {
			m.input.Blur()
		}
		return m, nil
	case "esc":
		m.input.Blur()
		return m, nil
	case "tab":
		m.moveFocus(1)
		return m, nil
	case "shift+tab":
		m.moveFocus(-1)
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Cancel):
		m.cancelled = true
		m.finished = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Quit):
		m.finished = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(msg, m.keys.Next):
		m.moveFocus(1)
	case key.Matches(msg, m.keys.Prev):
		m.moveFocus(-1)
	case key.Matches(msg, m.keys.Format):
		m.toggle.Cycle(1)
	case key.Matches(msg, m.keys.Up):
		if m.focus == m.swatchesIndex() {
			m.swatches.Move(0, -1)
		} else {
			m.moveFocus(-1)
		}
	case key.Matches(msg, m.keys.Down):
		if m.focus == m.swatchesIndex() {
			m.swatches.Move(0, 1)
		} else {
			m.moveFocus(1)
		}
	case key.Matches(msg, m.keys.Left):
		m.adjust(-1)
	case key.Matches(msg, m.keys.Right):
		m.adjust(1)
	case key.Matches(msg, m.keys.FastLeft):
		m.adjust(-fastSteps)
	case key.Matches(msg, m.keys.FastRight):
		m.adjust(fastSteps)
	case key.Matches(msg, m.keys.Select):
		return m.activate()
	}

	return m, nil
}

// adjust applies a horizontal movement to the focused widget.
func (m *Model) adjust(steps int) {
	switch {
	case m.focus < len(m.sliders):
		m.sliders[m.focus].Nudge(steps)
	case m.focus == m.swatchesIndex():
		m.swatches.Move(steps, 0)
	case m.focus == m.formatIndex():
		if steps > 0 {
			m.toggle.Cycle(1)
		} else {
			m.toggle.Cycle(-1)
		}
	}
}

func (m Model) activate() (tea.Model, tea.Cmd) {
	switch m.focus {
	case m.swatchesIndex():
		m.swatches.Select()
	case m.inputIndex():
		if m.ctrl.Disabled() {
			return m, nil
		}
		return m, m.input.Focus()
	case m.formatIndex():
		m.toggle.Cycle(1)
	}
	return m, nil
}
