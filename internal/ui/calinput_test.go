package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func typeCal(c CalEventInput, s string) CalEventInput {
	c = c.Focus()
	for _, r := range s {
		c, _ = c.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return c
}

func TestCalEventInputValid(t *testing.T) {
	c := typeCal(NewCalEventInput(), "@daily")
	expr, ok := c.Schedule()
	if !ok || expr != "@daily" {
		t.Fatalf("Schedule() = (%q, %v), want (@daily, true)", expr, ok)
	}
}

func TestCalEventInputInvalidKeepsRaw(t *testing.T) {
	c := typeCal(NewCalEventInput(), "every morning")
	if _, ok := c.Schedule(); ok {
		t.Fatal("nonsense expression reported as valid")
	}
	if c.Raw() != "every morning" {
		t.Fatalf("Raw() = %q, raw text must be preserved", c.Raw())
	}
}

func TestCalEventInputEmpty(t *testing.T) {
	if _, ok := NewCalEventInput().Schedule(); ok {
		t.Fatal("empty input must not produce a schedule")
	}
}
