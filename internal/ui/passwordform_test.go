package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"docwatch/internal/config"
)

func typePassword(f PasswordForm, s string) PasswordForm {
	for _, r := range s {
		f, _, _ = f.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return f
}

func TestPasswordFormMismatchRejectedLocally(t *testing.T) {
	f := NewPasswordForm(config.DefaultKeys())
	f = typePassword(f, "old-secret")
	f, _, _ = f.Update(tea.KeyMsg{Type: tea.KeyTab})
	f = typePassword(f, "new-secret")
	f, _, _ = f.Update(tea.KeyMsg{Type: tea.KeyTab})
	f = typePassword(f, "new-secret-typo")

	f, act, _ := f.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
	if act.Kind != ActionNone {
		t.Fatalf("mismatched passwords produced action %v", act.Kind)
	}
	if f.errText == "" {
		t.Fatal("expected a local error message")
	}
}

func TestPasswordFormSubmit(t *testing.T) {
	f := NewPasswordForm(config.DefaultKeys())
	f = typePassword(f, "old-secret")
	f, _, _ = f.Update(tea.KeyMsg{Type: tea.KeyTab})
	f = typePassword(f, "new-secret")
	f, _, _ = f.Update(tea.KeyMsg{Type: tea.KeyTab})
	f = typePassword(f, "new-secret")

	_, act, _ := f.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
	if act.Kind != ActionSubmit || act.Current != "old-secret" || act.Next != "new-secret" {
		t.Fatalf("unexpected action: %+v", act)
	}
}

func TestPasswordFormBlankRejected(t *testing.T) {
	f := NewPasswordForm(config.DefaultKeys())
	f, act, _ := f.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
	if act.Kind != ActionNone || f.errText == "" {
		t.Fatal("blank form must be rejected locally")
	}
}
