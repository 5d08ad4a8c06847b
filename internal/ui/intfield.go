package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// IntField is a text input holding an optional bounded integer. Invalid
// text is kept verbatim for redisplay; it just parses to nothing.
type IntField struct {
	input textinput.Model
	min   int
	max   int
}

func NewIntField(placeholder string, min, max, width int) IntField {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = 12
	ti.Width = width
	return IntField{input: ti, min: min, max: max}
}

func (f IntField) Update(msg tea.Msg) (IntField, tea.Cmd) {
	var cmd tea.Cmd
	f.input, cmd = f.input.Update(msg)
	return f, cmd
}

// Value parses the current text. The second return is false for blank,
// non-numeric, or out-of-range input.
func (f IntField) Value() (int, bool) {
	raw := strings.TrimSpace(f.input.Value())
	if raw == "" {
		return 0, false
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	if n < f.min || n > f.max {
		return 0, false
	}
	return n, true
}

// Raw returns the text exactly as typed.
func (f IntField) Raw() string {
	return f.input.Value()
}

func (f IntField) SetValue(n int) IntField {
	f.input.SetValue(strconv.Itoa(n))
	return f
}

func (f IntField) SetRaw(s string) IntField {
	f.input.SetValue(s)
	return f
}

func (f IntField) Focus() IntField {
	f.input.Focus()
	return f
}

func (f IntField) Blur() IntField {
	f.input.Blur()
	return f
}

func (f IntField) View() string {
	view := f.input.View()
	if _, ok := f.Value(); !ok && strings.TrimSpace(f.input.Value()) != "" {
		view += hintStyle.Render(fmt.Sprintf("  (expect %d-%d)", f.min, f.max))
	}
	return view
}
