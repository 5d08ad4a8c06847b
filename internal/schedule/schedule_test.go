package schedule

import (
	"testing"
	"time"
)

func TestParseAccepts(t *testing.T) {
	cases := []string{
		"* * * * *",
		"0 8 * * mon-fri",
		"*/15 9-17 * * *",
		"@daily",
		"@every 12h",
		"  0 6 1 * *  ",
	}
	for _, raw := range cases {
		ev, err := Parse(raw)
		if err != nil {
			t.Errorf("Parse(%q): unexpected error: %v", raw, err)
			continue
		}
		if ev.Expr == "" {
			t.Errorf("Parse(%q): empty normalized expression", raw)
		}
		if next := ev.Next(time.Now()); next.IsZero() {
			t.Errorf("Parse(%q): zero next occurrence", raw)
		}
	}
}

func TestParseRejects(t *testing.T) {
	cases := []string{
		"",
		"   ",
		"tomorrow",
		"* * * *",
		"61 * * * *",
		"0 8 * * someday",
	}
	for _, raw := range cases {
		if _, err := Parse(raw); err == nil {
			t.Errorf("Parse(%q): expected error, got none", raw)
		}
	}
}

func TestNextAdvances(t *testing.T) {
	ev, err := Parse("0 * * * *")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	from := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)
	next := ev.Next(from)
	want := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)
	if !next.Equal(want) {
		t.Fatalf("Next(%v) = %v, want %v", from, next, want)
	}
}
