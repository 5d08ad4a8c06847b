package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"docwatch/internal/api"
)

// ChannelForm edits one notification-channel variant. The variant is
// fixed at construction; each variant brings its own required fields.
type ChannelForm struct {
	typ    api.ChannelType
	fields []channelField
	focus  int
	active bool
}

type channelField struct {
	label string
	input textinput.Model
}

func channelFieldLabels(typ api.ChannelType) []string {
	switch typ {
	case api.ChannelMail:
		return []string{"Connection", "Recipients"}
	case api.ChannelGotify:
		return []string{"URL", "App key"}
	case api.ChannelMatrix:
		return []string{"Homeserver", "Room", "Access token"}
	case api.ChannelHTTP:
		return []string{"URL"}
	default:
		return nil
	}
}

func NewChannelForm(typ api.ChannelType) ChannelForm {
	labels := channelFieldLabels(typ)
	fields := make([]channelField, 0, len(labels))
	for _, label := range labels {
		ti := textinput.New()
		ti.Placeholder = strings.ToLower(label)
		ti.CharLimit = 256
		ti.Width = 40
		fields = append(fields, channelField{label: label, input: ti})
	}
	return ChannelForm{typ: typ, fields: fields}
}

// NewChannelFormFrom decomposes a stored channel into field state.
func NewChannelFormFrom(ch api.Channel) ChannelForm {
	f := NewChannelForm(ch.Type)
	var values []string
	switch ch.Type {
	case api.ChannelMail:
		values = []string{ch.Connection, strings.Join(ch.Recipients, ", ")}
	case api.ChannelGotify:
		values = []string{ch.URL, ch.AppKey}
	case api.ChannelMatrix:
		values = []string{ch.Homeserver, ch.RoomID, ch.AccessToken}
	case api.ChannelHTTP:
		values = []string{ch.URL}
	}
	for i := range values {
		if i < len(f.fields) {
			f.fields[i].input.SetValue(values[i])
		}
	}
	return f
}

func (f ChannelForm) Type() api.ChannelType {
	return f.typ
}

func (f ChannelForm) Update(msg tea.Msg) (ChannelForm, tea.Cmd) {
	if !f.active || f.focus >= len(f.fields) {
		return f, nil
	}
	fields := append([]channelField(nil), f.fields...)
	var cmd tea.Cmd
	fields[f.focus].input, cmd = fields[f.focus].input.Update(msg)
	f.fields = fields
	return f, cmd
}

// Focus enters the form at its first or last field.
func (f ChannelForm) Focus(fromEnd bool) ChannelForm {
	f.active = true
	f.focus = 0
	if fromEnd && len(f.fields) > 0 {
		f.focus = len(f.fields) - 1
	}
	return f.applyFocus()
}

func (f ChannelForm) Blur() ChannelForm {
	f.active = false
	return f.applyFocus()
}

// CycleFocus moves the inner focus by delta. The second return is false
// when the move steps past the edge; the caller then leaves the form.
func (f ChannelForm) CycleFocus(delta int) (ChannelForm, bool) {
	next := f.focus + delta
	if next < 0 || next >= len(f.fields) {
		return f, false
	}
	f.focus = next
	return f.applyFocus(), true
}

func (f ChannelForm) applyFocus() ChannelForm {
	fields := append([]channelField(nil), f.fields...)
	for i := range fields {
		if f.active && i == f.focus {
			fields[i].input.Focus()
		} else {
			fields[i].input.Blur()
		}
	}
	f.fields = fields
	return f
}

// Channel assembles the variant value. It reports false unless every
// field of the variant is filled in.
func (f ChannelForm) Channel() (api.Channel, bool) {
	values := make([]string, len(f.fields))
	complete := len(f.fields) > 0
	for i, fld := range f.fields {
		values[i] = strings.TrimSpace(fld.input.Value())
		if values[i] == "" {
			complete = false
		}
	}
	if !complete {
		return api.Channel{}, false
	}

	ch := api.Channel{Type: f.typ}
	switch f.typ {
	case api.ChannelMail:
		ch.Connection = values[0]
		ch.Recipients = splitRecipients(values[1])
		if len(ch.Recipients) == 0 {
			return api.Channel{}, false
		}
	case api.ChannelGotify:
		ch.URL = values[0]
		ch.AppKey = values[1]
	case api.ChannelMatrix:
		ch.Homeserver = values[0]
		ch.RoomID = values[1]
		ch.AccessToken = values[2]
	case api.ChannelHTTP:
		ch.URL = values[0]
	default:
		return api.Channel{}, false
	}
	return ch, true
}

func splitRecipients(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func (f ChannelForm) View() string {
	var b strings.Builder
	b.WriteString(hintStyle.Render("channel: " + string(f.typ)))
	b.WriteString("\n")
	for i, fld := range f.fields {
		label := labelStyle.Render(fld.label)
		if f.active && i == f.focus {
			label = labelFocusedStyle.Render(fld.label)
		}
		b.WriteString(label + " " + fld.input.View())
		b.WriteString("\n")
	}
	return b.String()
}
