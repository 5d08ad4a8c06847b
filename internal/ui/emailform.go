package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"docwatch/internal/api"
	"docwatch/internal/config"
)

// EmailAction is what the email-settings form hands to the shell.
type EmailAction struct {
	Kind     ActionKind // None, Submit or Cancel
	Settings api.EmailSettings
}

// EmailForm edits the account's outgoing-mail settings.
type EmailForm struct {
	keys     config.Keymap
	sender   textinput.Model
	host     textinput.Model
	port     IntField
	user     textinput.Model
	password textinput.Model
	focus    int
	errText  string
}

const emailFieldCount = 5

func NewEmailForm(keys config.Keymap) EmailForm {
	mk := func(placeholder string, width int) textinput.Model {
		ti := textinput.New()
		ti.Placeholder = placeholder
		ti.CharLimit = 256
		ti.Width = width
		return ti
	}
	password := mk("smtp password", 30)
	password.EchoMode = textinput.EchoPassword
	f := EmailForm{
		keys:     keys,
		sender:   mk("sender name", 30),
		host:     mk("smtp host", 30),
		port:     NewIntField("smtp port", 1, 65535, 8),
		user:     mk("smtp user", 30),
		password: password,
	}
	f.sender.Focus()
	return f
}

// SetValues loads fetched settings into the inputs.
func (f EmailForm) SetValues(s api.EmailSettings) EmailForm {
	f.sender.SetValue(s.SenderName)
	f.host.SetValue(s.SMTPHost)
	if s.SMTPPort > 0 {
		f.port = f.port.SetValue(s.SMTPPort)
	}
	f.user.SetValue(s.SMTPUser)
	f.password.SetValue(s.SMTPPassword)
	return f
}

func (f EmailForm) Update(msg tea.Msg) (EmailForm, EmailAction, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case f.keys.Submit:
			return f.submit()
		case f.keys.Cancel:
			return f, EmailAction{Kind: ActionCancel}, nil
		case f.keys.NextField:
			f = f.moveFocus(1)
			return f, EmailAction{}, nil
		case f.keys.PrevField:
			f = f.moveFocus(-1)
			return f, EmailAction{}, nil
		}
		f.errText = ""
	}

	var cmd tea.Cmd
	switch f.focus {
	case 0:
		f.sender, cmd = f.sender.Update(msg)
	case 1:
		f.host, cmd = f.host.Update(msg)
	case 2:
		f.port, cmd = f.port.Update(msg)
	case 3:
		f.user, cmd = f.user.Update(msg)
	case 4:
		f.password, cmd = f.password.Update(msg)
	}
	return f, EmailAction{}, cmd
}

func (f EmailForm) submit() (EmailForm, EmailAction, tea.Cmd) {
	port, portOK := f.port.Value()
	switch {
	case strings.TrimSpace(f.host.Value()) == "":
		f.errText = "SMTP host is required"
	case !portOK:
		f.errText = "SMTP port must be between 1 and 65535"
	default:
		f.errText = ""
		return f, EmailAction{Kind: ActionSubmit, Settings: api.EmailSettings{
			SenderName:   strings.TrimSpace(f.sender.Value()),
			SMTPHost:     strings.TrimSpace(f.host.Value()),
			SMTPPort:     port,
			SMTPUser:     strings.TrimSpace(f.user.Value()),
			SMTPPassword: f.password.Value(),
		}}, nil
	}
	return f, EmailAction{}, nil
}

func (f EmailForm) moveFocus(delta int) EmailForm {
	f.focus = (f.focus + delta + emailFieldCount) % emailFieldCount
	return f.applyFocus()
}

func (f EmailForm) applyFocus() EmailForm {
	f.sender.Blur()
	f.host.Blur()
	f.port = f.port.Blur()
	f.user.Blur()
	f.password.Blur()
	switch f.focus {
	case 0:
		f.sender.Focus()
	case 1:
		f.host.Focus()
	case 2:
		f.port = f.port.Focus()
	case 3:
		f.user.Focus()
	case 4:
		f.password.Focus()
	}
	return f
}

func (f EmailForm) View() string {
	var b strings.Builder
	if f.errText != "" {
		b.WriteString(bannerErrorStyle.Render(f.errText))
		b.WriteString("\n\n")
	}
	labels := []string{"Sender name", "SMTP host", "SMTP port", "SMTP user", "SMTP password"}
	views := []string{f.sender.View(), f.host.View(), f.port.View(), f.user.View(), f.password.View()}
	for i := range labels {
		label := labelStyle.Render(labels[i])
		if i == f.focus {
			label = labelFocusedStyle.Render(labels[i])
		}
		b.WriteString(label + " " + views[i] + "\n")
	}
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(f.keys.NextField + " next field • " + f.keys.Submit + " save"))
	return b.String()
}
