// Package schedule validates the recurrence expressions used by reminder
// tasks. An expression is a five-field cron line ("0 8 * * mon-fri") or
// one of the @-descriptors ("@daily", "@every 12h").
package schedule

import (
	"fmt"
	"strings"
	"time"

	"github.com/robfig/cron/v3"
)

var parser = cron.NewParser(
	cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor,
)

// Event is a validated recurrence expression.
type Event struct {
	Expr  string
	sched cron.Schedule
}

// Parse validates a raw expression. The returned Event keeps the trimmed
// expression text; anything the cron parser rejects is an error.
func Parse(raw string) (Event, error) {
	expr := strings.TrimSpace(raw)
	if expr == "" {
		return Event{}, fmt.Errorf("schedule is empty")
	}
	sched, err := parser.Parse(expr)
	if err != nil {
		return Event{}, fmt.Errorf("invalid schedule %q: %w", expr, err)
	}
	return Event{Expr: expr, sched: sched}, nil
}

// Next returns the first occurrence strictly after from.
func (e Event) Next(from time.Time) time.Time {
	if e.sched == nil {
		return time.Time{}
	}
	return e.sched.Next(from)
}
