package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up    key.Binding
	down  key.Binding
	enter key.Binding
	abort key.Binding
	copy  key.Binding
	yes   key.Binding
	no    key.Binding
}

var keys = keyMap{
	up:    key.NewBinding(key.WithKeys("up", "k", "shift+tab")),
	down:  key.NewBinding(key.WithKeys("down", "j", "tab")),
	enter: key.NewBinding(key.WithKeys("enter")),
	abort: key.NewBinding(key.WithKeys("esc", "ctrl+c")),
	copy:  key.NewBinding(key.WithKeys("ctrl+y")),
	yes:   key.NewBinding(key.WithKeys("y", "Y")),
	no:    key.NewBinding(key.WithKeys("n", "N")),
}
