package widgets

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/huepick/internal/color"
	"github.com/alexisbeaulieu97/huepick/internal/picker"
	huerrors "github.com/alexisbeaulieu97/huepick/pkg/errors"
)

// Input accepts a typed color string.
type Input struct {
	ctrl  picker.Controller
	field textinput.Model
	err   error
}

// NewInput creates an unfocused text field bound to ctrl.
func NewInput(ctrl picker.Controller) Input {
	field := textinput.New()
	field.Prompt = ""
	field.Placeholder = "#rrggbb, rgb(), hsl()"
	field.CharLimit = 64
	field.Width = 28
	return Input{ctrl: ctrl, field: field}
}

// Focus loads the current formatted color into the field and starts editing.
func (i *Input) Focus() tea.Cmd {
	i.field.SetValue(i.ctrl.Color().Render(i.ctrl.Format()))
	i.field.CursorEnd()
	i.err = nil
	return i.field.Focus()
}

// Blur stops editing.
func (i *Input) Blur() {
	i.field.Blur()
}

// Focused reports whether the field is accepting keys.
func (i Input) Focused() bool {
	return i.field.Focused()
}

// SetValue replaces the field text.
func (i *Input) SetValue(text string) {
	i.field.SetValue(text)
}

// Text returns the field text.
func (i Input) Text() string {
	return i.field.Value()
}

// Err returns the error of the last failed Submit.
func (i Input) Err() error {
	return i.err
}

// Update forwards key input to the text field unless the picker is disabled.
func (i Input) Update(msg tea.Msg) (Input, tea.Cmd) {
	if i.ctrl.Disabled() {
		return i, nil
	}
	var cmd tea.Cmd
	i.field, cmd = i.field.Update(msg)
	return i, cmd
}

// Submit parses the field text and proposes it. Text that is not a color
// leaves the shared value untouched and is reported by Err.
func (i *Input) Submit() bool {
	if i.ctrl.Disabled() {
		return false
	}
	v, ok := color.Parse(i.field.Value())
	if !ok {
		i.err = huerrors.NewColorError("input", i.field.Value())
		return false
	}
	i.err = nil
	i.ctrl.OnChange(v)
	i.field.SetValue(i.ctrl.Color().Render(i.ctrl.Format()))
	return true
}

// View shows the live field while focused and the current value otherwise.
func (i Input) View(focused bool) string {
	label := labelStyle.Render("value")
	if focused {
		label = focusedLabel.Render("value")
	}

	body := i.ctrl.Color().Render(i.ctrl.Format())
	if i.field.Focused() {
		body = i.field.View()
	}

	row := marker(focused) + label + body
	if i.err != nil {
		row += "\n" + errorStyle.Render("  "+i.err.Error())
	}
	if i.ctrl.Disabled() {
		return disabledStyle.Render(row)
	}
	return row
}
