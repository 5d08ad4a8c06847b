package ui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"docwatch/internal/api"
	"docwatch/internal/config"
	"docwatch/internal/storage"
)

// ActionKind is the closed set of intents a form can hand to the shell.
type ActionKind int

const (
	ActionNone ActionKind = iota
	ActionSubmit
	ActionStartOnce
	ActionCancel
	ActionDelete
)

// Action is the form's only channel back to the host. Settings is set for
// Submit/StartOnce, ID for Delete.
type Action struct {
	Kind     ActionKind
	Settings api.TaskSettings
	ID       string
}

type statusKind int

const (
	statusInitial statusKind = iota
	statusHTTPError
	statusInvalid
)

// problem is the closed set of validation failures.
type problem int

const (
	problemNone problem = iota
	problemRemindDays
	problemSchedule
	problemChannel
)

func (p problem) message() string {
	switch p {
	case problemRemindDays:
		return "Reminder days are required"
	case problemSchedule:
		return "Schedule is missing or not a valid expression"
	case problemChannel:
		return "Notification channel is incomplete"
	default:
		return ""
	}
}

// formStatus is exactly one of: initial, HTTP error, invalid.
type formStatus struct {
	kind    statusKind
	problem problem
	err     error
}

type taskFocus int

const (
	focusSummary taskFocus = iota
	focusRemindDays
	focusSchedule
	focusCapOverdue
	focusEnabled
	focusInclude
	focusExclude
	focusChannel
	focusEnd // sentinel
)

// TagSource provides the background tag listing. The API client satisfies
// it; tests substitute fakes.
type TagSource interface {
	FetchTags(ctx context.Context, filter, order string) (api.TagList, error)
}

type tagsFetchedMsg struct {
	tags []api.Tag
	err  error
}

// TaskForm edits the periodic due-items reminder task. It owns all
// sub-component state; the shell only sees the returned Action.
type TaskForm struct {
	source TagSource
	cache  *storage.Store
	keys   config.Keymap

	id         string
	enabled    bool
	capOverdue bool
	summary    textinput.Model
	remindDays IntField
	schedule   CalEventInput
	channel    ChannelForm
	include    TagSelect
	exclude    TagSelect
	confirm    Confirm

	focus   taskFocus
	status  formStatus
	loading int
}

// NewTaskForm builds an empty form for a new task of the given channel
// variant and issues the one-time background tag fetch.
func NewTaskForm(source TagSource, cache *storage.Store, keys config.Keymap, channelType api.ChannelType) (TaskForm, tea.Cmd) {
	f := newBaseForm(source, cache, keys)
	f.enabled = true
	f.channel = NewChannelForm(channelType)
	return f.start()
}

// NewTaskFormFrom builds an editable form from persisted settings,
// decomposing the stored schedule, tags and channel into sub-component
// state. The same single tag fetch is issued.
func NewTaskFormFrom(source TagSource, cache *storage.Store, keys config.Keymap, existing api.TaskSettings) (TaskForm, tea.Cmd) {
	f := newBaseForm(source, cache, keys)
	f.id = existing.ID
	f.enabled = existing.Enabled
	f.capOverdue = existing.CapOverdue
	f.summary.SetValue(existing.Summary)
	if existing.RemindDays > 0 {
		f.remindDays = f.remindDays.SetValue(existing.RemindDays)
	}
	f.schedule = f.schedule.SetValue(existing.Schedule)
	f.channel = NewChannelFormFrom(existing.Channel)
	f.include = f.include.SetSelected(existing.TagsInclude)
	f.exclude = f.exclude.SetSelected(existing.TagsExclude)
	return f.start()
}

func newBaseForm(source TagSource, cache *storage.Store, keys config.Keymap) TaskForm {
	summary := textinput.New()
	summary.Placeholder = "optional summary"
	summary.CharLimit = 256
	summary.Width = 40

	return TaskForm{
		source:     source,
		cache:      cache,
		keys:       keys,
		summary:    summary,
		remindDays: NewIntField("days before due", 1, 366, 6),
		schedule:   NewCalEventInput(),
		include:    NewTagSelect("Include tags"),
		exclude:    NewTagSelect("Exclude tags"),
		confirm:    NewConfirm(),
	}
}

// start seeds the pickers from the cache and issues the tag fetch. The
// loading counter goes up here and comes back down in Update when the
// response lands, success or not.
func (f TaskForm) start() (TaskForm, tea.Cmd) {
	if f.cache != nil {
		if cached, err := f.cache.CachedTags(); err == nil && len(cached) > 0 {
			f.include = f.include.SetOptions(cached)
			f.exclude = f.exclude.SetOptions(cached)
		}
	}
	f = f.applyFocus()
	f.loading++
	return f, fetchTagsCmd(f.source, f.cache)
}

func fetchTagsCmd(source TagSource, cache *storage.Store) tea.Cmd {
	return func() tea.Msg {
		list, err := source.FetchTags(context.Background(), "", "name")
		if err != nil {
			return tagsFetchedMsg{err: err}
		}
		if cache != nil {
			// Cache refresh is best effort; the fetched list is used either way.
			_ = cache.ReplaceTags(list.Items)
		}
		return tagsFetchedMsg{tags: list.Items}
	}
}

// Loading reports whether the background fetch is still outstanding.
func (f TaskForm) Loading() bool {
	return f.loading > 0
}

// ID returns the persisted task identifier, empty for a new task.
func (f TaskForm) ID() string {
	return f.id
}

// SetPersisted records the server-assigned identifier after a create.
func (f TaskForm) SetPersisted(id string) TaskForm {
	f.id = id
	return f
}

// Update processes one message. Any mutation resets the status banner to
// initial; only the submit paths and the fetch response set their own.
func (f TaskForm) Update(msg tea.Msg) (TaskForm, Action, tea.Cmd) {
	switch msg := msg.(type) {
	case tagsFetchedMsg:
		f.loading--
		if msg.err != nil {
			f.status = formStatus{kind: statusHTTPError, err: msg.err}
			return f, Action{}, nil
		}
		f.status = formStatus{}
		f.include = f.include.SetOptions(msg.tags)
		f.exclude = f.exclude.SetOptions(msg.tags)
		return f, Action{}, nil

	case tea.KeyMsg:
		key := msg.String()

		if f.confirm.Active() {
			var outcome ConfirmOutcome
			f.confirm, outcome = f.confirm.Update(key)
			if outcome == ConfirmYes {
				return f, Action{Kind: ActionDelete, ID: f.id}, nil
			}
			return f, Action{}, nil
		}

		// Uniform reset rule: everything but a submission attempt clears
		// the banner before it is handled.
		if key != f.keys.Submit && key != f.keys.RunOnce {
			f.status = formStatus{}
		}

		switch key {
		case f.keys.Submit:
			return f.submit(ActionSubmit)
		case f.keys.RunOnce:
			return f.submit(ActionStartOnce)
		case f.keys.Delete:
			if f.id == "" {
				return f, Action{}, nil
			}
			f.confirm = f.confirm.Activate("Delete this reminder task?")
			return f, Action{}, nil
		case f.keys.Cancel:
			return f, Action{Kind: ActionCancel}, nil
		case f.keys.NextField:
			return f.moveFocus(1), Action{}, nil
		case f.keys.PrevField:
			return f.moveFocus(-1), Action{}, nil
		}

		var cmd tea.Cmd
		f, cmd = f.updateFocused(msg)
		return f, Action{}, cmd
	}

	var cmd tea.Cmd
	f, cmd = f.updateFocused(msg)
	return f, Action{}, cmd
}

func (f TaskForm) updateFocused(msg tea.Msg) (TaskForm, tea.Cmd) {
	var cmd tea.Cmd
	switch f.focus {
	case focusSummary:
		f.summary, cmd = f.summary.Update(msg)
	case focusRemindDays:
		f.remindDays, cmd = f.remindDays.Update(msg)
	case focusSchedule:
		f.schedule, cmd = f.schedule.Update(msg)
	case focusCapOverdue, focusEnabled:
		if key, ok := msg.(tea.KeyMsg); ok {
			f = f.handleToggle(key.String())
		}
	case focusInclude:
		if key, ok := msg.(tea.KeyMsg); ok {
			f.include = f.include.HandleKey(key.String(), f.keys)
		}
	case focusExclude:
		if key, ok := msg.(tea.KeyMsg); ok {
			f.exclude = f.exclude.HandleKey(key.String(), f.keys)
		}
	case focusChannel:
		f.channel, cmd = f.channel.Update(msg)
	}
	return f, cmd
}

func (f TaskForm) handleToggle(key string) TaskForm {
	if key != f.keys.Toggle && key != f.keys.Confirm {
		return f
	}
	if f.focus == focusCapOverdue {
		f.capOverdue = !f.capOverdue
	} else {
		f.enabled = !f.enabled
	}
	return f
}

func (f TaskForm) moveFocus(delta int) TaskForm {
	// The channel form is one focus slot with inner fields; cycle inside
	// it until it runs out, then move on.
	if f.focus == focusChannel {
		var moved bool
		f.channel, moved = f.channel.CycleFocus(delta)
		if moved {
			return f
		}
	}

	next := f.focus + taskFocus(delta)
	if next < focusSummary {
		next = focusChannel
	}
	if next >= focusEnd {
		next = focusSummary
	}
	f.focus = next
	f = f.applyFocus()
	if next == focusChannel && delta < 0 {
		f.channel = f.channel.Focus(true)
	}
	return f
}

func (f TaskForm) applyFocus() TaskForm {
	f.summary.Blur()
	f.remindDays = f.remindDays.Blur()
	f.schedule = f.schedule.Blur()
	f.include = f.include.Blur()
	f.exclude = f.exclude.Blur()
	f.channel = f.channel.Blur()

	switch f.focus {
	case focusSummary:
		f.summary.Focus()
	case focusRemindDays:
		f.remindDays = f.remindDays.Focus()
	case focusSchedule:
		f.schedule = f.schedule.Focus()
	case focusInclude:
		f.include = f.include.Focus()
	case focusExclude:
		f.exclude = f.exclude.Focus()
	case focusChannel:
		f.channel = f.channel.Focus(false)
	}
	return f
}

func (f TaskForm) submit(kind ActionKind) (TaskForm, Action, tea.Cmd) {
	settings, firstProblem := f.assemble()
	if firstProblem != problemNone {
		f.status = formStatus{kind: statusInvalid, problem: firstProblem}
		return f, Action{}, nil
	}
	f.status = formStatus{}
	return f, Action{Kind: kind, Settings: settings}, nil
}

// assemble checks the three required fields and builds the settings
// value. All three checks run; the first failure in days, schedule,
// channel order is the one reported.
func (f TaskForm) assemble() (api.TaskSettings, problem) {
	days, daysOK := f.remindDays.Value()
	expr, exprOK := f.schedule.Schedule()
	ch, chOK := f.channel.Channel()

	switch {
	case !daysOK:
		return api.TaskSettings{}, problemRemindDays
	case !exprOK:
		return api.TaskSettings{}, problemSchedule
	case !chOK:
		return api.TaskSettings{}, problemChannel
	}

	return api.TaskSettings{
		ID:          f.id,
		Enabled:     f.enabled,
		Summary:     strings.TrimSpace(f.summary.Value()),
		TagsInclude: f.include.Selected(),
		TagsExclude: f.exclude.Selected(),
		RemindDays:  days,
		CapOverdue:  f.capOverdue,
		Schedule:    expr,
		Channel:     ch,
	}, problemNone
}

func (f TaskForm) View() string {
	var b strings.Builder

	switch f.status.kind {
	case statusInvalid:
		b.WriteString(bannerErrorStyle.Render(f.status.problem.message()))
		b.WriteString("\n\n")
	case statusHTTPError:
		b.WriteString(bannerErrorStyle.Render("Server error: " + f.status.err.Error()))
		b.WriteString("\n\n")
	}

	if f.loading > 0 {
		b.WriteString(hintStyle.Render("loading tags..."))
		b.WriteString("\n\n")
	}

	b.WriteString(f.fieldLabel(focusSummary, "Summary") + " " + f.summary.View() + "\n")
	b.WriteString(f.fieldLabel(focusRemindDays, "Remind days") + " " + f.remindDays.View() + "\n")
	b.WriteString(f.fieldLabel(focusSchedule, "Schedule") + " " + f.schedule.View() + "\n")
	b.WriteString(f.fieldLabel(focusCapOverdue, "Cap overdue") + " " + renderCheckbox(f.capOverdue) + "\n")
	b.WriteString(f.fieldLabel(focusEnabled, "Enabled") + " " + renderCheckbox(f.enabled) + "\n")
	b.WriteString("\n")
	b.WriteString(f.include.View())
	b.WriteString("\n")
	b.WriteString(f.exclude.View())
	b.WriteString("\n")
	b.WriteString(f.channel.View())

	if f.confirm.Active() {
		b.WriteString("\n")
		b.WriteString(f.confirm.View())
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render(f.helpLine()))
	return b.String()
}

func (f TaskForm) fieldLabel(focus taskFocus, label string) string {
	if f.focus == focus {
		return labelFocusedStyle.Render(label)
	}
	return labelStyle.Render(label)
}

func renderCheckbox(v bool) string {
	if v {
		return selectedMarkStyle.Render("[x]")
	}
	return "[ ]"
}

func (f TaskForm) helpLine() string {
	parts := []string{
		f.keys.NextField + " next field",
		f.keys.Submit + " save",
		f.keys.RunOnce + " run once",
	}
	if f.id != "" {
		parts = append(parts, f.keys.Delete+" delete")
	}
	parts = append(parts, f.keys.Cancel+" back")
	return strings.Join(parts, " • ")
}
