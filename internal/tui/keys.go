package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type keyMap struct {
	up     key.Binding
	down   key.Binding
	enter  key.Binding
	esc    key.Binding
	tab    key.Binding
	cancel key.Binding
	retry  key.Binding
	quit   key.Binding
}

var keys = keyMap{
	up:     key.NewBinding(key.WithKeys("up", "k")),
	down:   key.NewBinding(key.WithKeys("down", "j")),
	enter:  key.NewBinding(key.WithKeys("enter")),
	esc:    key.NewBinding(key.WithKeys("esc")),
	tab:    key.NewBinding(key.WithKeys("tab", "shift+tab")),
	cancel: key.NewBinding(key.WithKeys("ctrl+c", "esc")),
	retry:  key.NewBinding(key.WithKeys("r")),
	quit:   key.NewBinding(key.WithKeys("q")),
}

// moveCursor applies up/down to idx within [0, n).
func moveCursor(msg tea.KeyMsg, idx, n int) int {
	switch {
	case key.Matches(msg, keys.up):
		if idx > 0 {
			idx--
		}
	case key.Matches(msg, keys.down):
		if idx < n-1 {
			idx++
		}
	}
	return idx
}
