package timer

import "github.com/charmbracelet/bubbles/key"

type keymap struct {
	togglePlay key.Binding
	reset      key.Binding
	switchSess key.Binding
	lap        key.Binding
	copyLaps   key.Binding
	settings   key.Binding
	minimize   key.Binding
	enter      key.Binding
	esc        key.Binding
	quit       key.Binding
	scrollUp   key.Binding
	scrollDown key.Binding
}

var defaultKeymap = keymap{
	togglePlay: key.NewBinding(
		key.WithKeys(" ", "p"),
		key.WithHelp("space", "start/pause"),
	),
	reset: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "reset"),
	),
	switchSess: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "switch"),
	),
	lap: key.NewBinding(
		key.WithKeys("l"),
		key.WithHelp("l", "lap"),
	),
	copyLaps: key.NewBinding(
		key.WithKeys("c"),
		key.WithHelp("c", "copy laps"),
	),
	settings: key.NewBinding(
		key.WithKeys("e"),
		key.WithHelp("e", "settings"),
	),
	minimize: key.NewBinding(
		key.WithKeys("m"),
		key.WithHelp("m", "minimize"),
	),
	enter: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "ok"),
	),
	esc: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "cancel"),
	),
	quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
	scrollUp: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "scroll laps"),
	),
	scrollDown: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "scroll laps"),
	),
}
