package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/huepick/internal/color"
	"github.com/alexisbeaulieu97/huepick/internal/logger"
	"github.com/alexisbeaulieu97/huepick/internal/palette"
	"github.com/alexisbeaulieu97/huepick/internal/picker"
	"github.com/alexisbeaulieu97/huepick/internal/tui/widgets"
)

func testPalette() *palette.Palette {
	return palette.New(
		palette.Swatch{Name: "red", Value: color.MustParse("#ff0000")},
		palette.Swatch{Name: "green", Value: color.MustParse("#00ff00")},
		palette.Swatch{Name: "blue", Value: color.MustParse("#0000ff")},
	)
}

func newTestModel(t *testing.T, initial string, format color.Format, p *palette.Palette) (Model, *picker.Store) {
	t.Helper()
	store := picker.NewStore(initial)
	ctx, err := store.Bind(format, logger.Nop())
	require.NoError(t, err)
	return NewModel(ctx, Options{Palette: p, Columns: 3}), store
}

func send(t *testing.T, m Model, msgs ...tea.Msg) Model {
	t.Helper()
	for _, msg := range msgs {
		updated, _ := m.Update(msg)
		var ok bool
		m, ok = updated.(Model)
		require.True(t, ok)
	}
	return m
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "shift+right":
		return tea.KeyMsg{Type: tea.KeyShiftRight}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func TestNewModelInitialisesState(t *testing.T) {
	m, _ := newTestModel(t, "hsl(0, 100%, 50%)", color.FormatHSL, testPalette())

	require.Len(t, m.sliders, len(widgets.HSLChannels()))
	require.Equal(t, 0, m.Focus())
	require.Equal(t, "hsl(0, 100%, 50%)", m.Value())
	require.False(t, m.IsFinished())
	require.Nil(t, m.Init())
}

func TestNewModelCustomChannels(t *testing.T) {
	store := picker.NewStore("#336699")
	ctx, err := store.Bind(color.FormatHex, nil)
	require.NoError(t, err)

	m := NewModel(ctx, Options{Channels: widgets.RGBChannels()})
	require.Equal(t, widgets.ChannelRed, m.sliders[0].Channel())
}

func TestModelFocusRing(t *testing.T) {
	t.Run("wraps in both directions", func(t *testing.T) {
		m, _ := newTestModel(t, "#ffffff", color.FormatHex, testPalette())

		m = send(t, m, keyMsg("shift+tab"))
		require.Equal(t, m.formatIndex(), m.Focus())

		m = send(t, m, keyMsg("tab"))
		require.Equal(t, 0, m.Focus())
	})

	t.Run("skips the swatch grid without a palette", func(t *testing.T) {
		m, _ := newTestModel(t, "#ffffff", color.FormatHex, nil)

		m = send(t, m, keyMsg("tab"), keyMsg("tab"), keyMsg("tab"), keyMsg("tab"))
		require.Equal(t, m.inputIndex(), m.Focus())

		m = send(t, m, keyMsg("shift+tab"))
		require.Equal(t, len(m.sliders)-1, m.Focus())
	})

	t.Run("arrows move between sliders", func(t *testing.T) {
		m, _ := newTestModel(t, "#ffffff", color.FormatHex, nil)

		m = send(t, m, keyMsg("down"), keyMsg("j"))
		require.Equal(t, 2, m.Focus())
		m = send(t, m, keyMsg("up"))
		require.Equal(t, 1, m.Focus())
	})
}

func TestModelQuit(t *testing.T) {
	t.Run("q confirms", func(t *testing.T) {
		m, _ := newTestModel(t, "#ffffff", color.FormatHex, nil)
		updated, cmd := m.Update(keyMsg("q"))
		m = updated.(Model)

		require.NotNil(t, cmd)
		require.True(t, m.IsFinished())
		require.False(t, m.Cancelled())
	})

	t.Run("ctrl+c cancels", func(t *testing.T) {
		m, _ := newTestModel(t, "#ffffff", color.FormatHex, nil)
		m = send(t, m, keyMsg("ctrl+c"))

		require.True(t, m.IsFinished())
		require.True(t, m.Cancelled())
	})

	t.Run("quit message finishes", func(t *testing.T) {
		m, _ := newTestModel(t, "#ffffff", color.FormatHex, nil)
		m = send(t, m, tea.QuitMsg{})
		require.True(t, m.IsFinished())
	})
}
