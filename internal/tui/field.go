package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// field is one labelled text input of a form.
type field struct {
	key      string
	label    string
	required bool
	secret   bool
	revealed bool
	input    textinput.Model
}

func newField(key, label, placeholder string, limit int, required bool) *field {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = limit
	ti.Prompt = ""
	return &field{key: key, label: label, required: required, input: ti}
}

func newSecretField(key, label, placeholder string, limit int) *field {
	f := newField(key, label, placeholder, limit, true)
	f.secret = true
	f.input.EchoMode = textinput.EchoPassword
	f.input.EchoCharacter = '•'
	return f
}

func (f *field) Value() string { return f.input.Value() }

func (f *field) SetValue(v string) { f.input.SetValue(v) }

func (f *field) Reset() { f.input.Reset() }

func (f *field) Focus() tea.Cmd { return f.input.Focus() }

func (f *field) Blur() { f.input.Blur() }

func (f *field) Focused() bool { return f.input.Focused() }

// ToggleReveal flips password visibility; it is a no-op on plain fields.
func (f *field) ToggleReveal() {
	if !f.secret {
		return
	}
	f.revealed = !f.revealed
	if f.revealed {
		f.input.EchoMode = textinput.EchoNormal
	} else {
		f.input.EchoMode = textinput.EchoPassword
	}
}

// Update feeds msg to the input and reports whether the value changed.
func (f *field) Update(msg tea.Msg) (tea.Cmd, bool) {
	before := f.input.Value()
	var cmd tea.Cmd
	f.input, cmd = f.input.Update(msg)
	return cmd, f.input.Value() != before
}

func (f *field) View(width int, errMsg string) string {
	var b strings.Builder
	b.WriteString(CurrentTheme.Label.Render(f.label))
	if f.required {
		b.WriteString(CurrentTheme.Required.Render(" *"))
	}
	if f.secret {
		hint := "ctrl+e show"
		if f.revealed {
			hint = "ctrl+e hide"
		}
		b.WriteString("  " + CurrentTheme.Dim.Render(hint))
	}
	b.WriteString("\n")

	style := CurrentTheme.Input
	switch {
	case errMsg != "":
		style = CurrentTheme.InputError
	case f.Focused():
		style = CurrentTheme.InputFocus
	}
	boxWidth := width - style.GetHorizontalBorderSize()
	if boxWidth < 4 {
		boxWidth = 4
	}
	f.input.Width = boxWidth - style.GetHorizontalPadding() - 1
	b.WriteString(style.Width(boxWidth).Render(f.input.View()))
	if errMsg != "" {
		b.WriteString("\n")
		b.WriteString(CurrentTheme.FieldError.Render(truncate(errMsg, width)))
	}
	return b.String()
}

// focusRing moves focus across a fixed number of slots; slots beyond the
// fields are non-input controls such as a checkbox.
type focusRing struct {
	index int
	size  int
}

func (r *focusRing) Next() { r.index = (r.index + 1) % r.size }

func (r *focusRing) Prev() { r.index = (r.index - 1 + r.size) % r.size }

// applyFocus focuses the field at ring.index and blurs the rest.
func applyFocus(fields []*field, ring focusRing) tea.Cmd {
	var cmd tea.Cmd
	for i, f := range fields {
		if i == ring.index {
			cmd = f.Focus()
		} else {
			f.Blur()
		}
	}
	return cmd
}

// joinVertical stacks parts, treating "" as a blank line. Runs of blanks
// collapse to one so optional parts can be passed unconditionally.
func joinVertical(parts ...string) string {
	var kept []string
	for _, p := range parts {
		if p == "" && (len(kept) == 0 || kept[len(kept)-1] == "") {
			continue
		}
		kept = append(kept, p)
	}
	return lipgloss.JoinVertical(lipgloss.Left, kept...)
}
