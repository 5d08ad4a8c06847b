package ui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"docwatch/internal/schedule"
)

// CalEventInput edits a recurrence expression. The raw text is always
// kept; Schedule reports a value only when the expression parses.
type CalEventInput struct {
	input textinput.Model
}

func NewCalEventInput() CalEventInput {
	ti := textinput.New()
	ti.Placeholder = "0 8 * * mon-fri"
	ti.CharLimit = 64
	ti.Width = 30
	return CalEventInput{input: ti}
}

func (c CalEventInput) Update(msg tea.Msg) (CalEventInput, tea.Cmd) {
	var cmd tea.Cmd
	c.input, cmd = c.input.Update(msg)
	return c, cmd
}

// Schedule returns the validated expression, or false when the current
// text does not parse.
func (c CalEventInput) Schedule() (string, bool) {
	ev, err := schedule.Parse(c.input.Value())
	if err != nil {
		return "", false
	}
	return ev.Expr, true
}

func (c CalEventInput) Raw() string {
	return c.input.Value()
}

func (c CalEventInput) SetValue(expr string) CalEventInput {
	c.input.SetValue(expr)
	return c
}

func (c CalEventInput) Focus() CalEventInput {
	c.input.Focus()
	return c
}

func (c CalEventInput) Blur() CalEventInput {
	c.input.Blur()
	return c
}

func (c CalEventInput) View() string {
	view := c.input.View()
	raw := strings.TrimSpace(c.input.Value())
	if raw == "" {
		return view
	}
	ev, err := schedule.Parse(raw)
	if err != nil {
		return view + hintStyle.Render("  (unrecognized expression)")
	}
	next := ev.Next(time.Now())
	return view + hintStyle.Render("  next: "+next.Format("2006-01-02 15:04"))
}
