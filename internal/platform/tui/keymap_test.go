package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/linezen/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMapKey(t *testing.T) {
	keys := DefaultKeyMap()
	tests := []struct {
		name     string
		msg      tea.KeyMsg
		expected core.Action
	}{
		{"tutorial digit", runeKey('1'), core.ActionTutorial},
		{"tutorial letter", runeKey('t'), core.ActionTutorial},
		{"challenge", runeKey('c'), core.ActionChallenge},
		{"infinite", runeKey('3'), core.ActionInfinite},
		{"next level", tea.KeyMsg{Type: tea.KeyTab}, core.ActionNextLevel},
		{"options", runeKey('o'), core.ActionOptions},
		{"toggle help", runeKey('h'), core.ActionToggleHelp},
		{"toggle particles", runeKey('p'), core.ActionToggleParticles},
		{"back", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionBack},
		{"quit", runeKey('q'), core.ActionQuit},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{"menu navigation", tea.KeyMsg{Type: tea.KeyUp}, core.ActionNone},
		{"select", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionNone},
		{"unbound", runeKey('z'), core.ActionNone},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := keys.MapKey(tc.msg); got != tc.expected {
				t.Errorf("MapKey() = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestHelpListsBindings(t *testing.T) {
	keys := DefaultKeyMap()
	if len(keys.ShortHelp()) == 0 {
		t.Error("ShortHelp() should not be empty")
	}
	total := 0
	for _, group := range keys.FullHelp() {
		total += len(group)
	}
	if total != 12 {
		t.Errorf("FullHelp() has %d bindings, expected 12", total)
	}
}
