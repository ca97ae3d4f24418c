package game

import "github.com/vovakirdan/linezen/internal/core"

// Snapshot is a read-only view of the core for hosts and tests.
type Snapshot struct {
	State      core.GameState
	Mode       core.GameMode
	LevelName  string
	Bubbles    []core.Point
	GuideLines []core.GuideLine
	LineHeld   bool
	LineStart  core.Point
	LineEnd    core.Point
}

// Snapshot returns the current state of the core. Slices are copies.
func (c *Core) Snapshot() Snapshot {
	return Snapshot{
		State:      c.state,
		Mode:       c.mode,
		LevelName:  c.levelName,
		Bubbles:    c.Bubbles(),
		GuideLines: c.GuideLines(),
		LineHeld:   c.lineHeld,
		LineStart:  c.lineStart,
		LineEnd:    c.lineEnd,
	}
}

// Bubbles returns a copy of the live bubbles.
func (c *Core) Bubbles() []core.Point {
	out := make([]core.Point, len(c.bubbles))
	copy(out, c.bubbles)
	return out
}

// GuideLines returns a copy of the guide lines.
func (c *Core) GuideLines() []core.GuideLine {
	out := make([]core.GuideLine, len(c.guideLines))
	copy(out, c.guideLines)
	return out
}
