package model

import "time"

// Task represents a single todo item belonging to one account's list.
// Tasks carry no owner field; isolation comes from the per-account
// storage key the list is saved under.
type Task struct {
	ID        int64     `json:"id"`
	Text      string    `json:"text"`
	Completed bool      `json:"completed"`
	CreatedAt time.Time `json:"created_at"`
}

// NewTask creates a pending task with the given id and text.
func NewTask(id int64, text string) Task {
	return Task{
		ID:        id,
		Text:      text,
		Completed: false,
		CreatedAt: time.Now(),
	}
}
