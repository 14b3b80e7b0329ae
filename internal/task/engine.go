// Package task implements the engine owning one account's task list:
// CRUD, filtering, stats and stable ID assignment. An engine is bound
// to whichever account was current when it was constructed; the
// presentation layer builds a fresh engine on every session change.
package task

import (
	"fmt"
	"strings"

	"github.com/existflow/taskflow/internal/logger"
	"github.com/existflow/taskflow/internal/model"
	"github.com/existflow/taskflow/internal/store"
)

// SessionSource reports who is logged in right now. Satisfied by
// *auth.Manager.
type SessionSource interface {
	Current() *model.Account
}

// Engine owns the in-memory task list for one account and persists
// the full list on every mutation. With no current account the engine
// is detached: reads see an empty list and mutations return
// ErrNoSession.
type Engine struct {
	store   *store.Store
	account *model.Account
	tasks   []model.Task
	nextID  int64
}

// NewEngine builds an engine for the currently authenticated account.
// Missing or unreadable task data degrades to an empty list.
func NewEngine(s *store.Store, sessions SessionSource) *Engine {
	e := &Engine{store: s, account: sessions.Current()}
	e.load()
	e.nextID = maxID(e.tasks) + 1
	return e
}

// Account returns the account this engine is bound to, or nil when
// detached.
func (e *Engine) Account() *model.Account {
	return e.account
}

// Add validates text, assigns the next ID and inserts the task at the
// front of the list.
func (e *Engine) Add(text string) (*model.Task, error) {
	if e.account == nil {
		return nil, ErrNoSession
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return nil, &ValidationError{Message: "Please enter a task"}
	}

	t := model.NewTask(e.nextID, text)
	e.nextID++
	e.tasks = append([]model.Task{t}, e.tasks...)

	if err := e.save(); err != nil {
		return nil, err
	}
	logger.Info("Task added", logger.F("id", t.ID))
	return &t, nil
}

// Toggle flips the completed flag for the task with the given ID.
// The returned bool is false when no such task exists; that case is
// a logged no-op, not an error.
func (e *Engine) Toggle(id int64) (bool, error) {
	if e.account == nil {
		return false, ErrNoSession
	}

	for i := range e.tasks {
		if e.tasks[i].ID == id {
			e.tasks[i].Completed = !e.tasks[i].Completed
			if err := e.save(); err != nil {
				return true, err
			}
			logger.Info("Task toggled", logger.F("id", id), logger.F("completed", e.tasks[i].Completed))
			return true, nil
		}
	}

	logger.Warn("Toggle for unknown task", logger.F("id", id))
	return false, nil
}

// Edit replaces the text of the task with the given ID. Returns nil
// (and logs) when the task no longer exists.
func (e *Engine) Edit(id int64, newText string) (*model.Task, error) {
	if e.account == nil {
		return nil, ErrNoSession
	}

	newText = strings.TrimSpace(newText)
	if newText == "" {
		return nil, &ValidationError{Message: "Task cannot be empty"}
	}

	for i := range e.tasks {
		if e.tasks[i].ID == id {
			e.tasks[i].Text = newText
			if err := e.save(); err != nil {
				return nil, err
			}
			logger.Info("Task edited", logger.F("id", id))
			return &e.tasks[i], nil
		}
	}

	logger.Warn("Edit for unknown task", logger.F("id", id))
	return nil, nil
}

// Remove deletes the task with the given ID. Persists only when the
// list actually shrank.
func (e *Engine) Remove(id int64) (bool, error) {
	if e.account == nil {
		return false, ErrNoSession
	}

	kept := e.tasks[:0]
	for _, t := range e.tasks {
		if t.ID != id {
			kept = append(kept, t)
		}
	}
	if len(kept) == len(e.tasks) {
		logger.Warn("Remove for unknown task", logger.F("id", id))
		return false, nil
	}

	e.tasks = kept
	if err := e.save(); err != nil {
		return true, err
	}
	logger.Info("Task removed", logger.F("id", id))
	return true, nil
}

// ClearCompleted removes every completed task and returns how many
// were removed. Zero removals write nothing.
func (e *Engine) ClearCompleted() (int, error) {
	if e.account == nil {
		return 0, ErrNoSession
	}

	kept := make([]model.Task, 0, len(e.tasks))
	for _, t := range e.tasks {
		if !t.Completed {
			kept = append(kept, t)
		}
	}

	removed := len(e.tasks) - len(kept)
	if removed == 0 {
		return 0, nil
	}

	e.tasks = kept
	if err := e.save(); err != nil {
		return removed, err
	}
	logger.Info("Completed tasks cleared", logger.F("count", removed))
	return removed, nil
}

// Filtered returns the tasks matching the filter in stored order.
func (e *Engine) Filtered(filter model.Filter) []model.Task {
	out := make([]model.Task, 0, len(e.tasks))
	for _, t := range e.tasks {
		switch filter {
		case model.FilterPending:
			if t.Completed {
				continue
			}
		case model.FilterCompleted:
			if !t.Completed {
				continue
			}
		}
		out = append(out, t)
	}
	return out
}

// Stats returns the total task count and how many are completed.
func (e *Engine) Stats() (total, completed int) {
	total = len(e.tasks)
	for _, t := range e.tasks {
		if t.Completed {
			completed++
		}
	}
	return total, completed
}

func (e *Engine) load() {
	if e.account == nil {
		return
	}

	var tasks []model.Task
	if _, err := e.store.GetJSON(store.TasksKey(e.account.ID), &tasks); err != nil {
		logger.Warn("Failed to load tasks, starting empty", logger.F("error", err))
		return
	}
	e.tasks = tasks
}

func (e *Engine) save() error {
	if err := e.store.PutJSON(store.TasksKey(e.account.ID), e.tasks); err != nil {
		logger.Error("Failed to save tasks", logger.F("error", err))
		return fmt.Errorf("%w: %v", ErrSaveFailed, err)
	}
	return nil
}

func maxID(tasks []model.Task) int64 {
	var max int64
	for _, t := range tasks {
		if t.ID > max {
			max = t.ID
		}
	}
	return max
}
