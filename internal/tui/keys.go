package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up      key.Binding
	down    key.Binding
	review  key.Binding
	refresh key.Binding
	quit    key.Binding
}

var keys = keyMap{
	up:      key.NewBinding(key.WithKeys("up", "k")),
	down:    key.NewBinding(key.WithKeys("down", "j")),
	review:  key.NewBinding(key.WithKeys("enter", "r")),
	refresh: key.NewBinding(key.WithKeys("s")),
	quit:    key.NewBinding(key.WithKeys("q", "ctrl+c")),
}

const hotKeysHelp = "↑/↓: select  enter/r: review  s: refresh  q: quit"
