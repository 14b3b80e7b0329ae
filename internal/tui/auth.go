package tui

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/existflow/taskflow/internal/auth"
)

func loginFields() []textinput.Model {
	email := textinput.New()
	email.Placeholder = "Email"
	email.CharLimit = 128
	email.Width = 36

	password := textinput.New()
	password.Placeholder = "Password"
	password.EchoMode = textinput.EchoPassword
	password.CharLimit = 128
	password.Width = 36

	return []textinput.Model{email, password}
}

func signupFields() []textinput.Model {
	name := textinput.New()
	name.Placeholder = "Name"
	name.CharLimit = 128
	name.Width = 36

	fields := append([]textinput.Model{name}, loginFields()...)

	confirm := textinput.New()
	confirm.Placeholder = "Confirm password"
	confirm.EchoMode = textinput.EchoPassword
	confirm.CharLimit = 128
	confirm.Width = 36

	return append(fields, confirm)
}

func (m Model) updateAuth(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.Type == tea.KeyCtrlC:
		return m, tea.Quit

	case key.Matches(msg, keys.Switch):
		// Flip between login and signup
		if m.screen == ScreenLogin {
			m.screen = ScreenSignup
			m.fields = signupFields()
		} else {
			m.screen = ScreenLogin
			m.fields = loginFields()
		}
		m.focus = 0
		m.message = ""
		m.fields[0].Focus()
		return m, textinput.Blink

	case key.Matches(msg, keys.Tab), msg.Type == tea.KeyDown:
		return m.focusField(m.focus + 1)

	case msg.Type == tea.KeyShiftTab, msg.Type == tea.KeyUp:
		return m.focusField(m.focus - 1)

	case key.Matches(msg, keys.Enter):
		if m.focus < len(m.fields)-1 {
			return m.focusField(m.focus + 1)
		}
		if m.screen == ScreenLogin {
			return m.submitLogin()
		}
		return m.submitSignup()
	}

	var cmd tea.Cmd
	m.fields[m.focus], cmd = m.fields[m.focus].Update(msg)
	return m, cmd
}

func (m Model) focusField(idx int) (tea.Model, tea.Cmd) {
	if idx < 0 {
		idx = len(m.fields) - 1
	}
	if idx >= len(m.fields) {
		idx = 0
	}
	m.fields[m.focus].Blur()
	m.focus = idx
	m.fields[m.focus].Focus()
	return m, textinput.Blink
}

func (m Model) submitLogin() (tea.Model, tea.Cmd) {
	account, err := m.sessions.Authenticate(m.fields[0].Value(), m.fields[1].Value())
	switch {
	case errors.Is(err, auth.ErrAccountNotFound):
		m.setError("Account not found. Ctrl+N to create one.")
		return m, nil
	case errors.Is(err, auth.ErrBadCredential):
		m.setError("Incorrect password. Please try again.")
		return m, nil
	case err != nil:
		m.setError("Login failed. Check the log for details.")
		return m, nil
	}

	m.screen = ScreenTasks
	m.mode = ModeNormal
	m.onSessionChange()
	m.setMessage(fmt.Sprintf("Welcome back, %s!", account.Name))
	return m, nil
}

func (m Model) submitSignup() (tea.Model, tea.Cmd) {
	account, err := m.sessions.Register(
		m.fields[0].Value(), m.fields[1].Value(),
		m.fields[2].Value(), m.fields[3].Value(),
	)
	var verr *auth.ValidationError
	switch {
	case errors.As(err, &verr):
		m.setError(verr.Message)
		return m, nil
	case err != nil:
		m.setError("Signup failed. Check the log for details.")
		return m, nil
	}

	m.screen = ScreenTasks
	m.mode = ModeNormal
	m.onSessionChange()
	m.setMessage(fmt.Sprintf("Account created. Welcome, %s!", account.Name))
	return m, nil
}

func (m Model) viewLogin() string {
	return m.viewAuthForm("Welcome back", "enter: login  tab: next field  ctrl+n: create account  ctrl+c: quit")
}

func (m Model) viewSignup() string {
	return m.viewAuthForm("Create your account", "enter: sign up  tab: next field  ctrl+n: back to login  ctrl+c: quit")
}

func (m Model) viewAuthForm(title, help string) string {
	content := TitleStyle.Render("TaskFlow") + "\n"
	content += HelpStyle.Render(title) + "\n\n"
	for i := range m.fields {
		content += m.fields[i].View() + "\n"
	}
	content += "\n"
	if m.message != "" {
		style := SuccessStyle
		if m.isError {
			style = ErrorStyle
		}
		content += style.Render(m.message) + "\n\n"
	}
	content += HelpStyle.Render(help)

	form := FormStyle.Render(content)
	if m.width == 0 {
		return form
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, form)
}
