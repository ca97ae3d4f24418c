package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/linezen/internal/core"
)

// KeyMap defines the key bindings of a play session.
type KeyMap struct {
	Up              key.Binding
	Down            key.Binding
	Select          key.Binding
	Tutorial        key.Binding
	Challenge       key.Binding
	Infinite        key.Binding
	NextLevel       key.Binding
	Options         key.Binding
	ToggleHelp      key.Binding
	ToggleParticles key.Binding
	Back            key.Binding
	Quit            key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Tutorial, k.Challenge, k.Infinite, k.NextLevel, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Select},
		{k.Tutorial, k.Challenge, k.Infinite, k.NextLevel},
		{k.Options, k.ToggleHelp, k.ToggleParticles},
		{k.Back, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "move up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "move down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "select"),
		),
		Tutorial: key.NewBinding(
			key.WithKeys("1", "t"),
			key.WithHelp("1/t", "tutorial"),
		),
		Challenge: key.NewBinding(
			key.WithKeys("2", "c"),
			key.WithHelp("2/c", "challenge"),
		),
		Infinite: key.NewBinding(
			key.WithKeys("3", "i"),
			key.WithHelp("3/i", "infinite"),
		),
		NextLevel: key.NewBinding(
			key.WithKeys("n", "tab"),
			key.WithHelp("n/tab", "next level"),
		),
		Options: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "options"),
		),
		ToggleHelp: key.NewBinding(
			key.WithKeys("h"),
			key.WithHelp("h", "toggle help"),
		),
		ToggleParticles: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "toggle particles"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// MapKey translates a key message to a host action.
// Menu navigation keys (up, down, select) are not actions and map to ActionNone.
func (k KeyMap) MapKey(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit
	case key.Matches(msg, k.Tutorial):
		return core.ActionTutorial
	case key.Matches(msg, k.Challenge):
		return core.ActionChallenge
	case key.Matches(msg, k.Infinite):
		return core.ActionInfinite
	case key.Matches(msg, k.NextLevel):
		return core.ActionNextLevel
	case key.Matches(msg, k.Options):
		return core.ActionOptions
	case key.Matches(msg, k.ToggleHelp):
		return core.ActionToggleHelp
	case key.Matches(msg, k.ToggleParticles):
		return core.ActionToggleParticles
	case key.Matches(msg, k.Back):
		return core.ActionBack
	}
	return core.ActionNone
}
