// Package tui is the interactive front end. It owns no business
// logic: every action calls into the auth manager or the task engine
// and re-renders from their results. The engine reference is replaced
// wholesale on every session change.
package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/existflow/taskflow/internal/auth"
	"github.com/existflow/taskflow/internal/model"
	"github.com/existflow/taskflow/internal/store"
	"github.com/existflow/taskflow/internal/task"
)

// Screen represents which screen is visible
type Screen int

const (
	ScreenLogin Screen = iota
	ScreenSignup
	ScreenTasks
)

// Mode represents the tasks screen input state
type Mode int

const (
	ModeNormal Mode = iota
	ModeAddTask
	ModeEditTask
)

// Model is the main TUI model
type Model struct {
	store    *store.Store
	sessions *auth.Manager
	engine   *task.Engine

	screen Screen
	mode   Mode

	// Auth form state
	fields []textinput.Model
	focus  int

	// Task input (add/edit)
	input  textinput.Model
	editID int64

	// Task list state
	filter model.Filter
	tasks  []model.Task
	cursor int

	width   int
	height  int
	message string
	isError bool
}

// NewModel creates the TUI model. A persisted session drops the user
// straight into the tasks screen.
func NewModel(st *store.Store) Model {
	ti := textinput.New()
	ti.Placeholder = "What needs to be done?"
	ti.CharLimit = 256
	ti.Width = 50

	sessions := auth.NewManager(st)
	m := Model{
		store:    st,
		sessions: sessions,
		engine:   task.NewEngine(st, sessions),
		screen:   ScreenLogin,
		filter:   model.FilterAll,
		input:    ti,
	}

	if m.engine.Account() != nil {
		m.screen = ScreenTasks
		m.refresh()
	} else {
		m.fields = loginFields()
		m.fields[0].Focus()
	}
	return m
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch m.screen {
		case ScreenLogin, ScreenSignup:
			return m.updateAuth(msg)
		case ScreenTasks:
			return m.updateTasks(msg)
		}
	}

	return m, nil
}

// View renders the UI
func (m Model) View() string {
	switch m.screen {
	case ScreenLogin:
		return m.viewLogin()
	case ScreenSignup:
		return m.viewSignup()
	default:
		return m.viewTasks()
	}
}

// onSessionChange rebuilds the task engine for whoever is current now.
// Called after login, signup and logout.
func (m *Model) onSessionChange() {
	m.engine = task.NewEngine(m.store, m.sessions)
	m.filter = model.FilterAll
	m.cursor = 0
	m.refresh()
}

// refresh re-reads the visible task list from the engine.
func (m *Model) refresh() {
	m.tasks = m.engine.Filtered(m.filter)
	if m.cursor >= len(m.tasks) {
		m.cursor = len(m.tasks) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m *Model) setMessage(msg string) {
	m.message = msg
	m.isError = false
}

func (m *Model) setError(msg string) {
	m.message = msg
	m.isError = true
}
