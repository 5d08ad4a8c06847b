package ui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"docwatch/internal/api"
	"docwatch/internal/config"
	"docwatch/internal/storage"
)

// Tab is one of the fixed settings sections. TabNone means nothing is
// selected and the content region stays empty.
type Tab int

const (
	TabNone Tab = iota
	TabChangePassword
	TabEmailSettings
	TabNotifications
)

func (t Tab) title() string {
	switch t {
	case TabChangePassword:
		return "Change password"
	case TabEmailSettings:
		return "E-mail settings"
	case TabNotifications:
		return "Notifications"
	default:
		return ""
	}
}

var tabOrder = []Tab{TabChangePassword, TabEmailSettings, TabNotifications}

type taskLoadedMsg struct {
	settings *api.TaskSettings
	err      error
}

type emailLoadedMsg struct {
	settings api.EmailSettings
	err      error
}

// opDoneMsg reports the outcome of an Action the shell executed against
// the server.
type opDoneMsg struct {
	verb  string
	err   error
	saved *api.TaskSettings
}

// Model is the page shell: it owns the tab selector and interprets the
// Actions its sub-forms emit.
type Model struct {
	client api.Client
	store  *storage.Store
	cfg    config.Config
	log    zerolog.Logger

	tab         Tab
	password    PasswordForm
	email       EmailForm
	emailLoaded bool
	task        *TaskForm
	taskLoading bool

	status string
	width  int
}

func New(client api.Client, store *storage.Store, cfg config.Config, log zerolog.Logger) Model {
	return Model{
		client:   client,
		store:    store,
		cfg:      cfg,
		log:      log,
		password: NewPasswordForm(cfg.Keys),
		email:    NewEmailForm(cfg.Keys),
		status:   "Select a tab: 1 password, 2 e-mail, 3 notifications.",
	}
}

func Run(client api.Client, store *storage.Store, cfg config.Config, log zerolog.Logger) error {
	program := tea.NewProgram(New(client, store, cfg, log))
	_, err := program.Run()
	return err
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case taskLoadedMsg:
		m.taskLoading = false
		if msg.err != nil {
			m.log.Error().Err(msg.err).Msg("loading reminder task failed")
			m.status = fmt.Sprintf("loading task failed: %v", msg.err)
			return m, nil
		}
		var form TaskForm
		var cmd tea.Cmd
		if msg.settings != nil {
			form, cmd = NewTaskFormFrom(m.client, m.store, m.cfg.Keys, *msg.settings)
		} else {
			form, cmd = NewTaskForm(m.client, m.store, m.cfg.Keys, api.ChannelType(m.cfg.DefaultChannel))
		}
		m.task = &form
		return m, cmd

	case emailLoadedMsg:
		if msg.err != nil {
			m.log.Error().Err(msg.err).Msg("loading email settings failed")
			m.status = fmt.Sprintf("loading e-mail settings failed: %v", msg.err)
			return m, nil
		}
		m.email = m.email.SetValues(msg.settings)
		m.emailLoaded = true
		return m, nil

	case opDoneMsg:
		return m.finishOp(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m.routeToActive(msg)
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	switch key {
	case "ctrl+c", m.cfg.Keys.Quit:
		return m, tea.Quit
	case m.cfg.Keys.NextTab:
		return m.selectTab(m.cycleTab(1))
	case m.cfg.Keys.PrevTab:
		return m.selectTab(m.cycleTab(-1))
	}

	if m.tab == TabNone {
		switch key {
		case "1":
			return m.selectTab(TabChangePassword)
		case "2":
			return m.selectTab(TabEmailSettings)
		case "3":
			return m.selectTab(TabNotifications)
		case "q", m.cfg.Keys.Cancel:
			return m, tea.Quit
		}
		return m, nil
	}

	return m.routeToActive(msg)
}

func (m Model) cycleTab(delta int) Tab {
	if m.tab == TabNone {
		if delta < 0 {
			return tabOrder[len(tabOrder)-1]
		}
		return tabOrder[0]
	}
	for i, t := range tabOrder {
		if t == m.tab {
			return tabOrder[(i+delta+len(tabOrder))%len(tabOrder)]
		}
	}
	return tabOrder[0]
}

// selectTab replaces the current selection and triggers the one-time
// loads a section needs.
func (m Model) selectTab(tab Tab) (tea.Model, tea.Cmd) {
	m.tab = tab
	m.status = ""
	switch tab {
	case TabEmailSettings:
		if !m.emailLoaded {
			return m, loadEmailCmd(m.client)
		}
	case TabNotifications:
		if m.task == nil && !m.taskLoading {
			m.taskLoading = true
			return m, loadTaskCmd(m.client)
		}
	}
	return m, nil
}

// routeToActive feeds a message to the sub-form of the current tab and
// interprets whatever Action comes back.
func (m Model) routeToActive(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m.tab {
	case TabChangePassword:
		var action PasswordAction
		var cmd tea.Cmd
		m.password, action, cmd = m.password.Update(msg)
		switch action.Kind {
		case ActionSubmit:
			return m, tea.Batch(cmd, changePasswordCmd(m.client, action.Current, action.Next))
		case ActionCancel:
			m.tab = TabNone
		}
		return m, cmd

	case TabEmailSettings:
		var action EmailAction
		var cmd tea.Cmd
		m.email, action, cmd = m.email.Update(msg)
		switch action.Kind {
		case ActionSubmit:
			return m, tea.Batch(cmd, saveEmailCmd(m.client, action.Settings))
		case ActionCancel:
			m.tab = TabNone
		}
		return m, cmd

	case TabNotifications:
		if m.task == nil {
			return m, nil
		}
		form, action, cmd := m.task.Update(msg)
		m.task = &form
		switch action.Kind {
		case ActionSubmit:
			return m, tea.Batch(cmd, submitTaskCmd(m.client, action.Settings))
		case ActionStartOnce:
			return m, tea.Batch(cmd, startOnceCmd(m.client, action.Settings))
		case ActionDelete:
			return m, tea.Batch(cmd, deleteTaskCmd(m.client, action.ID))
		case ActionCancel:
			m.tab = TabNone
		}
		return m, cmd
	}
	return m, nil
}

func (m Model) finishOp(msg opDoneMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.log.Error().Str("op", msg.verb).Err(msg.err).Msg("operation failed")
		m.status = fmt.Sprintf("%s failed: %v", msg.verb, msg.err)
		return m, nil
	}
	m.log.Info().Str("op", msg.verb).Msg("operation done")

	switch msg.verb {
	case "save task":
		m.status = "Reminder task saved"
		if msg.saved != nil && m.task != nil {
			form := m.task.SetPersisted(msg.saved.ID)
			m.task = &form
		}
	case "run task":
		m.status = "Reminder task started once"
	case "delete task":
		m.status = "Reminder task deleted"
		// Re-enter with a fresh form on the next load.
		m.task = nil
		m.taskLoading = true
		return m, loadTaskCmd(m.client)
	case "change password":
		m.status = "Password changed"
		m.password = m.password.Reset()
	case "save email":
		m.status = "E-mail settings saved"
	default:
		m.status = "Done"
	}
	return m, nil
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.renderTabBar())
	b.WriteString("\n\n")

	switch m.tab {
	case TabChangePassword:
		b.WriteString(m.password.View())
	case TabEmailSettings:
		b.WriteString(m.email.View())
	case TabNotifications:
		if m.task == nil {
			b.WriteString(hintStyle.Render("loading reminder task..."))
		} else {
			b.WriteString(m.task.View())
		}
	}

	b.WriteString("\n")
	if m.status != "" {
		b.WriteString(bannerInfoStyle.Render(m.status))
		b.WriteString("\n")
	}
	b.WriteString(helpStyle.Render(m.cfg.Keys.NextTab + " next tab • " + m.cfg.Keys.PrevTab + " prev tab • " + m.cfg.Keys.Quit + " quit"))
	return b.String()
}

func (m Model) renderTabBar() string {
	parts := make([]string, 0, len(tabOrder))
	for _, t := range tabOrder {
		if t == m.tab {
			parts = append(parts, tabActiveStyle.Render(t.title()))
		} else {
			parts = append(parts, tabInactiveStyle.Render(t.title()))
		}
	}
	return strings.Join(parts, " ")
}

func loadTaskCmd(c api.Client) tea.Cmd {
	return func() tea.Msg {
		settings, err := c.GetDueTask(context.Background())
		return taskLoadedMsg{settings: settings, err: err}
	}
}

func loadEmailCmd(c api.Client) tea.Cmd {
	return func() tea.Msg {
		settings, err := c.GetEmailSettings(context.Background())
		return emailLoadedMsg{settings: settings, err: err}
	}
}

func submitTaskCmd(c api.Client, settings api.TaskSettings) tea.Cmd {
	return func() tea.Msg {
		saved, err := c.SubmitDueTask(context.Background(), settings)
		if err != nil {
			return opDoneMsg{verb: "save task", err: err}
		}
		return opDoneMsg{verb: "save task", saved: &saved}
	}
}

func startOnceCmd(c api.Client, settings api.TaskSettings) tea.Cmd {
	return func() tea.Msg {
		return opDoneMsg{verb: "run task", err: c.StartDueTaskOnce(context.Background(), settings)}
	}
}

func deleteTaskCmd(c api.Client, id string) tea.Cmd {
	return func() tea.Msg {
		return opDoneMsg{verb: "delete task", err: c.DeleteDueTask(context.Background(), id)}
	}
}

func changePasswordCmd(c api.Client, current, next string) tea.Cmd {
	return func() tea.Msg {
		return opDoneMsg{verb: "change password", err: c.ChangePassword(context.Background(), current, next)}
	}
}

func saveEmailCmd(c api.Client, settings api.EmailSettings) tea.Cmd {
	return func() tea.Msg {
		return opDoneMsg{verb: "save email", err: c.UpdateEmailSettings(context.Background(), settings)}
	}
}
