package tui

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/existflow/taskflow/internal/model"
	"github.com/existflow/taskflow/internal/task"
)

func (m Model) updateTasks(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.mode == ModeAddTask || m.mode == ModeEditTask {
		return m.updateTaskInput(msg)
	}

	switch {
	case key.Matches(msg, keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, keys.Down):
		if m.cursor < len(m.tasks)-1 {
			m.cursor++
		}

	case key.Matches(msg, keys.Add):
		m.mode = ModeAddTask
		m.input.SetValue("")
		m.input.Placeholder = "What needs to be done?"
		m.input.Focus()
		return m, textinput.Blink

	case key.Matches(msg, keys.Edit):
		if t := m.currentTask(); t != nil {
			m.mode = ModeEditTask
			m.editID = t.ID
			m.input.SetValue(t.Text)
			m.input.Placeholder = "Edit task..."
			m.input.Focus()
			m.input.CursorEnd()
			return m, textinput.Blink
		}

	case key.Matches(msg, keys.Done), key.Matches(msg, keys.Enter):
		if t := m.currentTask(); t != nil {
			if _, err := m.engine.Toggle(t.ID); err != nil {
				m.setError(saveFailedMsg(err))
			} else {
				m.setMessage("Task status updated")
			}
			m.refresh()
		}

	case key.Matches(msg, keys.Delete):
		if t := m.currentTask(); t != nil {
			if _, err := m.engine.Remove(t.ID); err != nil {
				m.setError(saveFailedMsg(err))
			} else {
				m.setMessage("Task deleted")
			}
			m.refresh()
		}

	case key.Matches(msg, keys.Clear):
		count, err := m.engine.ClearCompleted()
		switch {
		case err != nil:
			m.setError(saveFailedMsg(err))
		case count == 0:
			m.setMessage("No completed tasks to clear")
		default:
			m.setMessage(fmt.Sprintf("%d completed task(s) cleared", count))
		}
		m.refresh()

	case msg.String() == "1":
		m.setFilter(model.FilterAll)
	case msg.String() == "2":
		m.setFilter(model.FilterPending)
	case msg.String() == "3":
		m.setFilter(model.FilterCompleted)

	case key.Matches(msg, keys.Logout):
		if err := m.sessions.Logout(); err != nil {
			m.setError("Logout failed. Check the log for details.")
			return m, nil
		}
		m.onSessionChange()
		m.screen = ScreenLogin
		m.fields = loginFields()
		m.focus = 0
		m.fields[0].Focus()
		m.setMessage("Logged out. See you soon!")
		return m, textinput.Blink
	}

	return m, nil
}

func (m Model) updateTaskInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Escape):
		m.mode = ModeNormal
		m.input.Blur()
		return m, nil

	case key.Matches(msg, keys.Enter):
		value := m.input.Value()
		var err error
		if m.mode == ModeAddTask {
			_, err = m.engine.Add(value)
			if err == nil {
				m.setMessage("Task added")
				m.cursor = 0
			}
		} else {
			_, err = m.engine.Edit(m.editID, value)
			if err == nil {
				m.setMessage("Task updated")
			}
		}

		var verr *task.ValidationError
		if errors.As(err, &verr) {
			m.setError(verr.Message)
			return m, nil
		}
		if err != nil {
			m.setError(saveFailedMsg(err))
		}

		m.mode = ModeNormal
		m.input.Blur()
		m.refresh()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) setFilter(f model.Filter) {
	m.filter = f
	m.cursor = 0
	m.refresh()
}

func (m *Model) currentTask() *model.Task {
	if m.cursor < len(m.tasks) {
		return &m.tasks[m.cursor]
	}
	return nil
}

func saveFailedMsg(err error) string {
	if errors.Is(err, task.ErrSaveFailed) {
		return "Could not save your tasks. Check the log for details."
	}
	return err.Error()
}

func (m Model) viewTasks() string {
	width := m.width
	if width == 0 {
		width = 60
	}

	account := m.engine.Account()
	name := ""
	if account != nil {
		name = account.Name
	}

	var s string
	s += TitleStyle.Render("TaskFlow") + "  " + HelpStyle.Render(name) + "\n"
	s += HelpStyle.Render(time.Now().Format("Monday, January 2, 2006")) + "\n"

	total, completed := m.engine.Stats()
	s += HelpStyle.Render(fmt.Sprintf("%d task(s), %d completed", total, completed))
	s += "  " + m.viewFilterTabs() + "\n"
	s += lipgloss.NewStyle().Foreground(Border).Render(strings.Repeat("─", min(width-2, 60))) + "\n\n"

	if len(m.tasks) == 0 {
		s += HelpStyle.Render("  " + emptyState(m.filter))
	}

	for i, t := range m.tasks {
		cursor := "  "
		style := TaskItemStyle
		if i == m.cursor {
			cursor = "❯ "
			style = TaskItemSelectedStyle
		}

		icon := "[ ]"
		if t.Completed {
			icon = "[x]"
			if i != m.cursor {
				style = TaskDoneStyle
			}
		}

		s += style.Render(fmt.Sprintf("%s%s #%-4d %s", cursor, icon, t.ID, t.Text)) + "\n"
	}

	if m.mode == ModeAddTask || m.mode == ModeEditTask {
		title := "Add task"
		if m.mode == ModeEditTask {
			title = "Edit task"
		}
		modal := lipgloss.NewStyle().Bold(true).Render(title) + "\n\n"
		modal += m.input.View() + "\n\n"
		modal += HelpStyle.Render("enter: save  esc: cancel")
		s += "\n" + FormStyle.Render(modal) + "\n"
	}

	return s + "\n" + m.viewStatusBar(width)
}

func (m Model) viewFilterTabs() string {
	var parts []string
	for i, f := range []model.Filter{model.FilterAll, model.FilterPending, model.FilterCompleted} {
		label := fmt.Sprintf("%d:%s", i+1, f)
		if f == m.filter {
			parts = append(parts, TitleStyle.Render(label))
		} else {
			parts = append(parts, HelpStyle.Render(label))
		}
	}
	return strings.Join(parts, " ")
}

func (m Model) viewStatusBar(width int) string {
	if m.message != "" {
		style := SuccessStyle
		if m.isError {
			style = ErrorStyle
		}
		return StatusBarStyle.Width(width).Render(style.Render(m.message))
	}
	help := "a:add  e:edit  x:done  d:del  c:clear  1/2/3:filter  L:logout  q:quit"
	return StatusBarStyle.Width(width).Render(help)
}

func emptyState(f model.Filter) string {
	switch f {
	case model.FilterPending:
		return "No pending tasks. All done! 🎉"
	case model.FilterCompleted:
		return "No completed tasks yet."
	default:
		return "No tasks yet. Press 'a' to add one."
	}
}
