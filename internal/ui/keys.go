package ui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Johannes-Berggren/GitBuilding/internal/config"
	"github.com/Johannes-Berggren/GitBuilding/internal/nav"
)

type keyMap struct {
	Quit     key.Binding
	Back     key.Binding
	Activate key.Binding
	Up       key.Binding
	Down     key.Binding
	Left     key.Binding
	Right    key.Binding
}

func newKeyMap(bindings config.Keybindings) keyMap {
	bind := func(action, desc string) key.Binding {
		keys := bindings[action]
		return key.NewBinding(key.WithKeys(keys...), key.WithHelp(helpKey(keys), desc))
	}
	return keyMap{
		Quit:     bind(config.ActionQuit, "quit"),
		Back:     bind(config.ActionBack, "back"),
		Activate: bind(config.ActionActivate, "enter room"),
		Up:       bind(config.ActionUp, "up"),
		Down:     bind(config.ActionDown, "down"),
		Left:     bind(config.ActionLeft, "left"),
		Right:    bind(config.ActionRight, "right"),
	}
}

func helpKey(keys []string) string {
	if len(keys) == 0 {
		return ""
	}
	if keys[0] == " " {
		return "space"
	}
	return keys[0]
}

// event decodes a key press into a navigation event.
func (k keyMap) event(msg tea.KeyMsg) (nav.EventKind, bool) {
	switch {
	case key.Matches(msg, k.Quit):
		return nav.EventQuit, true
	case key.Matches(msg, k.Back):
		return nav.EventExit, true
	case key.Matches(msg, k.Activate):
		return nav.EventActivate, true
	case key.Matches(msg, k.Up):
		return nav.EventMoveUp, true
	case key.Matches(msg, k.Down):
		return nav.EventMoveDown, true
	case key.Matches(msg, k.Left):
		return nav.EventMoveLeft, true
	case key.Matches(msg, k.Right):
		return nav.EventMoveRight, true
	}
	return 0, false
}

func (k keyMap) overviewHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Left, k.Right, k.Activate, k.Quit}
}

func (k keyMap) roomHelp() []key.Binding {
	back := k.Back
	back.SetHelp(back.Help().Key, "back to building")
	return []key.Binding{k.Up, k.Down, back, k.Quit}
}
