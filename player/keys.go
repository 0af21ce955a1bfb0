package player

import "github.com/charmbracelet/bubbles/key"

type keymap struct {
	togglePlay key.Binding
	next       key.Binding
	prev       key.Binding
	reset      key.Binding
	seek       key.Binding
	up         key.Binding
	down       key.Binding
	moveUp     key.Binding
	moveDown   key.Binding
	remove     key.Binding
	palette    key.Binding
	add        key.Binding
	quit       key.Binding
}

var defaultKeymap = keymap{
	togglePlay: key.NewBinding(
		key.WithKeys(" "),
		key.WithHelp("space", "play/pause"),
	),
	next: key.NewBinding(
		key.WithKeys("n"),
		key.WithHelp("n/p", "next/previous"),
	),
	prev: key.NewBinding(
		key.WithKeys("p"),
	),
	reset: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "reset"),
	),
	seek: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "jump to card"),
	),
	up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("j/k", "select"),
	),
	down: key.NewBinding(
		key.WithKeys("j", "down"),
	),
	moveUp: key.NewBinding(
		key.WithKeys("K", "shift+up"),
		key.WithHelp("J/K", "move card"),
	),
	moveDown: key.NewBinding(
		key.WithKeys("J", "shift+down"),
	),
	remove: key.NewBinding(
		key.WithKeys("x", "delete"),
		key.WithHelp("x", "remove"),
	),
	palette: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "cards"),
	),
	add: key.NewBinding(
		key.WithKeys("a"),
		key.WithHelp("a", "add card"),
	),
	quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}
