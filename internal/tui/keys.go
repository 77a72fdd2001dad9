package tui

import "github.com/charmbracelet/bubbles/key"

var (
	quitKey = key.NewBinding(
		key.WithKeys("ctrl+c", "q"),
		key.WithHelp("q", "quit"),
	)
	yesKey = key.NewBinding(
		key.WithKeys("left", "h", "y", "Y"),
		key.WithHelp("←/y", "yes"),
	)
	noKey = key.NewBinding(
		key.WithKeys("right", "l", "n", "N"),
		key.WithHelp("→/n", "no"),
	)
	enterKey = key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "confirm"),
	)
)
