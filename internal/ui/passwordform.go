package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"docwatch/internal/config"
)

// PasswordAction is what the change-password form hands to the shell.
type PasswordAction struct {
	Kind    ActionKind // None, Submit or Cancel
	Current string
	Next    string
}

// PasswordForm edits a password change. Checks are local; the actual
// change goes through the shell.
type PasswordForm struct {
	keys    config.Keymap
	current textinput.Model
	next    textinput.Model
	repeat  textinput.Model
	focus   int
	errText string
}

func NewPasswordForm(keys config.Keymap) PasswordForm {
	mk := func(placeholder string) textinput.Model {
		ti := textinput.New()
		ti.Placeholder = placeholder
		ti.CharLimit = 128
		ti.Width = 30
		ti.EchoMode = textinput.EchoPassword
		return ti
	}
	f := PasswordForm{
		keys:    keys,
		current: mk("current password"),
		next:    mk("new password"),
		repeat:  mk("repeat new password"),
	}
	f.current.Focus()
	return f
}

func (f PasswordForm) Update(msg tea.Msg) (PasswordForm, PasswordAction, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case f.keys.Submit:
			return f.submit()
		case f.keys.Cancel:
			return f, PasswordAction{Kind: ActionCancel}, nil
		case f.keys.NextField:
			f = f.moveFocus(1)
			return f, PasswordAction{}, nil
		case f.keys.PrevField:
			f = f.moveFocus(-1)
			return f, PasswordAction{}, nil
		}
		f.errText = ""
	}

	var cmd tea.Cmd
	switch f.focus {
	case 0:
		f.current, cmd = f.current.Update(msg)
	case 1:
		f.next, cmd = f.next.Update(msg)
	case 2:
		f.repeat, cmd = f.repeat.Update(msg)
	}
	return f, PasswordAction{}, cmd
}

func (f PasswordForm) submit() (PasswordForm, PasswordAction, tea.Cmd) {
	current := f.current.Value()
	next := f.next.Value()
	repeat := f.repeat.Value()
	switch {
	case strings.TrimSpace(current) == "" || strings.TrimSpace(next) == "":
		f.errText = "All fields are required"
	case next != repeat:
		f.errText = "New passwords do not match"
	default:
		f.errText = ""
		return f, PasswordAction{Kind: ActionSubmit, Current: current, Next: next}, nil
	}
	return f, PasswordAction{}, nil
}

// Reset clears the inputs, used after a successful change.
func (f PasswordForm) Reset() PasswordForm {
	f.current.SetValue("")
	f.next.SetValue("")
	f.repeat.SetValue("")
	f.errText = ""
	f.focus = 0
	return f.applyFocus()
}

func (f PasswordForm) moveFocus(delta int) PasswordForm {
	f.focus = (f.focus + delta + 3) % 3
	return f.applyFocus()
}

func (f PasswordForm) applyFocus() PasswordForm {
	f.current.Blur()
	f.next.Blur()
	f.repeat.Blur()
	switch f.focus {
	case 0:
		f.current.Focus()
	case 1:
		f.next.Focus()
	case 2:
		f.repeat.Focus()
	}
	return f
}

func (f PasswordForm) View() string {
	var b strings.Builder
	if f.errText != "" {
		b.WriteString(bannerErrorStyle.Render(f.errText))
		b.WriteString("\n\n")
	}
	labels := []string{"Current", "New", "Repeat"}
	views := []string{f.current.View(), f.next.View(), f.repeat.View()}
	for i := range labels {
		label := labelStyle.Render(labels[i])
		if i == f.focus {
			label = labelFocusedStyle.Render(labels[i])
		}
		b.WriteString(label + " " + views[i] + "\n")
	}
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(f.keys.NextField + " next field • " + f.keys.Submit + " change password"))
	return b.String()
}
