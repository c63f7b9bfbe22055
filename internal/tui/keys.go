package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Next      key.Binding
	Prev      key.Binding
	Up        key.Binding
	Down      key.Binding
	Left      key.Binding
	Right     key.Binding
	FastLeft  key.Binding
	FastRight key.Binding
	Select    key.Binding
	Format    key.Binding
	Help      key.Binding
	Quit      key.Binding
	Cancel    key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Next:      key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next")),
		Prev:      key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "previous")),
		Up:        key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:      key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Left:      key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "decrease")),
		Right:     key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "increase")),
		FastLeft:  key.NewBinding(key.WithKeys("shift+left", "H"), key.WithHelp("shift+←", "decrease ×10")),
		FastRight: key.NewBinding(key.WithKeys("shift+right", "L"), key.WithHelp("shift+→", "increase ×10")),
		Select:    key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "select/edit")),
		Format:    key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "cycle format")),
		Help:      key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:      key.NewBinding(key.WithKeys("q", "esc"), key.WithHelp("q", "done")),
		Cancel:    key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "cancel")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Left, k.Right, k.Select, k.Format, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Next, k.Prev, k.Up, k.Down},
		{k.Left, k.Right, k.FastLeft, k.FastRight},
		{k.Select, k.Format, k.Help, k.Quit, k.Cancel},
	}
}
