package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/linezen/internal/core"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:    lipgloss.NewStyle(),
	core.ColorBubble:     lipgloss.NewStyle().Foreground(lipgloss.Color("45")),
	core.ColorBubbleCore: lipgloss.NewStyle().Foreground(lipgloss.Color("159")),
	core.ColorGuide:      lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
	core.ColorLine:       lipgloss.NewStyle().Foreground(lipgloss.Color("229")),
	core.ColorParticle:   lipgloss.NewStyle().Foreground(lipgloss.Color("213")),
	core.ColorHUD:        lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
	core.ColorHighlight:  lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Bold(true),
	core.ColorDim:        lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	core.ColorError:      lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
