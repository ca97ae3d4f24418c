package game

import (
	"fmt"

	"github.com/vovakirdan/linezen/internal/core"
	"github.com/vovakirdan/linezen/internal/event"
	"github.com/vovakirdan/linezen/internal/level"
	"github.com/vovakirdan/linezen/internal/rng"
)

// enterLevel runs the entry action of a level-backed state: the asset is
// parsed into a fresh level and swapped in only on success. It returns false
// when the level was refused and the state machine moved on.
func (c *Core) enterLevel(asset *level.Asset) bool {
	if c.phase != phaseEnter {
		return true
	}

	c.current = asset
	if asset == nil {
		c.replaceSets(nil, nil, "")
		c.phase = phaseActive
		return true
	}

	lvl, err := asset.Parse()
	if err != nil {
		c.failLevel(err)
		return false
	}

	c.replaceSets(lvl.Bubbles, lvl.GuideLines, lvl.Name)
	c.phase = phaseActive
	c.log.Debug("level populated", "level", asset.ID, "bubbles", len(lvl.Bubbles), "guides", len(lvl.GuideLines))
	return true
}

// enterInfinite generates a round seeded by the persisted level.
func (c *Core) enterInfinite() bool {
	if c.phase != phaseEnter {
		return true
	}

	p, err := c.store.ReadProgress()
	if err != nil {
		c.failLevel(fmt.Errorf("game: cannot read progress: %w", err))
		return false
	}

	bubbles, err := Generate(p.Level, c.input.ScreenHalfExtents(), c.cfg)
	if err != nil {
		c.failLevel(err)
		return false
	}

	c.replaceSets(bubbles, nil, fmt.Sprintf("Infinite %d", p.Level+1))
	c.phase = phaseActive
	c.log.Debug("infinite round generated", "level", p.Level, "bubbles", len(bubbles))
	return true
}

// Generate lays out the bubbles of infinite round lvl inside the visible
// world given by halfExtents. The same level and extents always produce the
// same layout.
func Generate(lvl int, halfExtents core.Point, cfg Config) ([]core.Point, error) {
	gen, err := rng.New(lvl)
	if err != nil {
		return nil, fmt.Errorf("game: cannot seed level %d: %w", lvl, err)
	}

	count := lvl/2 + 2
	if count > cfg.MaxOnScreen {
		count = cfg.MaxOnScreen
	}
	if count < 0 {
		count = 0
	}

	r := cfg.Rules.BubbleRadius
	spanX := halfExtents.X - r
	spanY := halfExtents.Y - 2*r

	bubbles := make([]core.Point, 0, count)
	for len(bubbles) < count {
		x := gen.Signed()
		y := gen.Signed()
		bubbles = append(bubbles, core.Pt(x*spanX, y*spanY))
	}
	return bubbles, nil
}

// replaceSets swaps in new bubble and guide line sets and announces them.
func (c *Core) replaceSets(bubbles []core.Point, guides []core.GuideLine, name string) {
	c.bubbles = append([]core.Point(nil), bubbles...)
	c.guideLines = append([]core.GuideLine(nil), guides...)
	c.levelName = name

	c.emit(event.BubblesChanged{Bubbles: c.Bubbles()})
	c.emit(event.GuideLinesChanged{GuideLines: c.GuideLines()})
}

// failLevel refuses the level being entered: sets are cleared, the error is
// reported and the machine returns to Startup.
func (c *Core) failLevel(err error) {
	c.log.Error("level refused", "state", c.state, "mode", c.mode, "err", err)
	failed := c.state

	c.replaceSets(nil, nil, "")
	c.emit(event.LevelFailed{State: failed, Err: err})
	c.setState(core.StateStartup)
}
