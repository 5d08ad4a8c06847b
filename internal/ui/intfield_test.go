package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func typeString(t *testing.T, f IntField, s string) IntField {
	t.Helper()
	f = f.Focus()
	for _, r := range s {
		f, _ = f.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return f
}

func TestIntFieldParsesInRange(t *testing.T) {
	f := typeString(t, NewIntField("days", 1, 60, 6), "14")
	n, ok := f.Value()
	if !ok || n != 14 {
		t.Fatalf("Value() = (%d, %v), want (14, true)", n, ok)
	}
}

func TestIntFieldInvalidKeepsRaw(t *testing.T) {
	cases := []struct {
		name string
		text string
	}{
		{"blank", ""},
		{"non-numeric", "soon"},
		{"mixed", "3x"},
		{"below min", "0"},
		{"above max", "120"},
		{"negative", "-4"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := typeString(t, NewIntField("days", 1, 60, 6), tc.text)
			if _, ok := f.Value(); ok {
				t.Fatalf("Value() reported ok for %q", tc.text)
			}
			if f.Raw() != tc.text {
				t.Fatalf("Raw() = %q, want %q preserved verbatim", f.Raw(), tc.text)
			}
		})
	}
}

func TestIntFieldBoundsInclusive(t *testing.T) {
	for _, text := range []string{"1", "60"} {
		f := typeString(t, NewIntField("days", 1, 60, 6), text)
		if _, ok := f.Value(); !ok {
			t.Fatalf("bound %q rejected", text)
		}
	}
}
