package tui

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/linezen/internal/core"
)

// MenuItem is a selectable entry of an overlay menu.
type MenuItem struct {
	Label  string
	Action core.Action
}

// Menu is a vertical list drawn over the playfield.
type Menu struct {
	Title    string
	Subtitle string
	Items    []MenuItem
	cursor   int
}

// startupMenu is shown while the session is in the Startup state.
func startupMenu(challenge string) *Menu {
	label := "Challenge"
	if challenge != "" {
		label = fmt.Sprintf("Challenge: %s", challenge)
	}
	return &Menu{
		Title:    "L I N E   Z E N",
		Subtitle: "Draw lines. Pop bubbles.",
		Items: []MenuItem{
			{Label: "Tutorial", Action: core.ActionTutorial},
			{Label: label, Action: core.ActionChallenge},
			{Label: "Infinite", Action: core.ActionInfinite},
			{Label: "Options", Action: core.ActionOptions},
			{Label: "Quit", Action: core.ActionQuit},
		},
	}
}

// optionsMenu is shown while the session is in the Options state.
func optionsMenu(p core.Progress) *Menu {
	return &Menu{
		Title:    "O P T I O N S",
		Subtitle: "Settings are saved with your progress",
		Items: []MenuItem{
			{Label: "Show help      " + checkbox(p.DisplayHelp), Action: core.ActionToggleHelp},
			{Label: "Pop particles  " + checkbox(p.DisplayParticles), Action: core.ActionToggleParticles},
			{Label: "Back", Action: core.ActionBack},
		},
	}
}

func checkbox(on bool) string {
	if on {
		return "[x]"
	}
	return "[ ]"
}

// Up moves the cursor up.
func (m *Menu) Up() {
	if m.cursor > 0 {
		m.cursor--
	}
}

// Down moves the cursor down.
func (m *Menu) Down() {
	if m.cursor < len(m.Items)-1 {
		m.cursor++
	}
}

// Cursor returns the highlighted item index.
func (m *Menu) Cursor() int {
	return m.cursor
}

// SetCursor moves the cursor, clamped to the items.
func (m *Menu) SetCursor(i int) {
	m.cursor = core.Clamp(i, 0, len(m.Items)-1)
}

// Selected returns the action of the highlighted item.
func (m *Menu) Selected() core.Action {
	if len(m.Items) == 0 {
		return core.ActionNone
	}
	return m.Items[m.cursor].Action
}

// Draw renders the menu centered on the screen.
func (m *Menu) Draw(s *core.Screen) {
	height := len(m.Items) + 4
	top := (s.Height() - height) / 2
	if top < 2 {
		top = 2
	}

	s.DrawTextCentered(top, m.Title, core.ColorHighlight)
	s.DrawTextCentered(top+1, m.Subtitle, core.ColorDim)

	width := 0
	for _, item := range m.Items {
		if len(item.Label) > width {
			width = len(item.Label)
		}
	}
	left := (s.Width() - width - 2) / 2

	for i, item := range m.Items {
		y := top + 3 + i
		// Blank the row behind the entry so bubbles do not bleed through.
		s.DrawText(left-1, y, strings.Repeat(" ", width+4), core.ColorDefault)
		if i == m.cursor {
			s.DrawText(left, y, "> "+item.Label, core.ColorHighlight)
		} else {
			s.DrawText(left, y, "  "+item.Label, core.ColorHUD)
		}
	}
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	if len(text) >= width {
		return text
	}
	padding := (width - len(text)) / 2
	return strings.Repeat(" ", padding) + text
}
