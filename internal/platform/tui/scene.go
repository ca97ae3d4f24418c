package tui

import (
	"fmt"
	"math"

	"github.com/vovakirdan/linezen/internal/core"
	"github.com/vovakirdan/linezen/internal/game"
	"github.com/vovakirdan/linezen/internal/scoring"
)

// drawScene renders guide lines, bubbles and the player line.
func drawScene(s *core.Screen, proj core.Projection, snap game.Snapshot, bubbleRadius float64) {
	for _, g := range snap.GuideLines {
		x0, y0 := proj.ToCell(g.A)
		x1, y1 := proj.ToCell(g.B)
		s.DrawSegment(x0, y0, x1, y1, '·', core.ColorGuide)
	}

	for _, b := range snap.Bubbles {
		drawBubble(s, proj, b, bubbleRadius)
	}

	if snap.LineHeld {
		x0, y0 := proj.ToCell(snap.LineStart)
		x1, y1 := proj.ToCell(snap.LineEnd)
		s.DrawSegment(x0, y0, x1, y1, '#', core.ColorLine)
		s.Set(x0, y0, 'x', core.ColorHighlight)
	}
}

// drawBubble fills the ellipse covering a bubble. Cells are taller than they
// are wide, so the circle becomes an ellipse on screen.
func drawBubble(s *core.Screen, proj core.Projection, center core.Point, radius float64) {
	cx, cy := proj.ToCell(center)
	rx, ry := proj.RadiusCells(radius)
	if rx < 0.5 {
		rx = 0.5
	}
	if ry < 0.5 {
		ry = 0.5
	}

	for dy := -int(math.Ceil(ry)); dy <= int(math.Ceil(ry)); dy++ {
		for dx := -int(math.Ceil(rx)); dx <= int(math.Ceil(rx)); dx++ {
			nx := float64(dx) / rx
			ny := float64(dy) / ry
			if nx*nx+ny*ny <= 1 {
				s.Set(cx+dx, cy+dy, 'o', core.ColorBubble)
			}
		}
	}
	s.Set(cx, cy, '@', core.ColorBubbleCore)
}

// drawHUD writes the status line at the top of the screen.
func drawHUD(s *core.Screen, snap game.Snapshot, p core.Progress, last *scoring.EarnedScore) {
	title := snap.LevelName
	if title == "" {
		title = snap.State.String()
	}
	s.DrawText(1, 0, title, core.ColorHighlight)

	stats := fmt.Sprintf("Score %d  Level %d  Bubbles %d", p.Score, p.Level+1, len(snap.Bubbles))
	s.DrawText(s.Width()-len(stats)-1, 0, stats, core.ColorHUD)

	if last != nil {
		msg := fmt.Sprintf("+%d", last.Total)
		if last.Bonus > 0 {
			msg = fmt.Sprintf("+%d (%d pops, bonus %d)", last.Total, last.Hits(), last.Bonus)
		}
		s.DrawTextCentered(1, msg, core.ColorParticle)
	}
}

// drawHint writes the tutorial hint above the bottom edge.
func drawHint(s *core.Screen, state core.GameState) {
	var hint string
	switch state {
	case core.StateTutorialOne:
		hint = "Hold the mouse button and drag across the bubbles"
	case core.StateTutorialTwo:
		hint = "One line per row. Leave exactly one bubble and the level restarts"
	default:
		return
	}
	s.DrawTextCentered(s.Height()-1, hint, core.ColorDim)
}
