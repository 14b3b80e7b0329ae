package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines all key bindings
type keyMap struct {
	Up     key.Binding
	Down   key.Binding
	Tab    key.Binding
	Enter  key.Binding
	Add    key.Binding
	Edit   key.Binding
	Done   key.Binding
	Delete key.Binding
	Clear  key.Binding
	Quit   key.Binding
	Escape key.Binding
	Logout key.Binding
	Switch key.Binding
}

var keys = keyMap{
	Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	Tab:    key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next field")),
	Enter:  key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "confirm/toggle")),
	Add:    key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add task")),
	Edit:   key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit task")),
	Done:   key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "toggle done")),
	Delete: key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete")),
	Clear:  key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "clear completed")),
	Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	Escape: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
	Logout: key.NewBinding(key.WithKeys("L"), key.WithHelp("L", "logout")),
	Switch: key.NewBinding(key.WithKeys("ctrl+n"), key.WithHelp("ctrl+n", "switch screen")),
}
