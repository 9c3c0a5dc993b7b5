package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Quit       key.Binding
	Next       key.Binding
	Confirm    key.Binding
	Back       key.Binding
	ToggleChat key.Binding
	ToggleLang key.Binding
	AnalyzeNew key.Binding
}

var keys = keyMap{
	Quit:       key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	Next:       key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next field")),
	Confirm:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "confirm")),
	Back:       key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close")),
	ToggleChat: key.NewBinding(key.WithKeys("ctrl+a"), key.WithHelp("ctrl+a", "ask AI analyst")),
	ToggleLang: key.NewBinding(key.WithKeys("ctrl+l"), key.WithHelp("ctrl+l", "language")),
	AnalyzeNew: key.NewBinding(key.WithKeys("ctrl+n"), key.WithHelp("ctrl+n", "analyze new")),
}
