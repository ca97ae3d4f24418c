package game

import (
	"github.com/vovakirdan/linezen/internal/core"
	"github.com/vovakirdan/linezen/internal/level"
)

// RequestState switches to state with mode. Requesting the current state
// re-enters it and repopulates on the next tick.
func (c *Core) RequestState(state core.GameState, mode core.GameMode) {
	c.mode = mode
	c.setState(state)
}

// AssignLevel sets the level played by Game in challenge mode. It takes
// effect on the next entry of that state.
func (c *Core) AssignLevel(asset *level.Asset) {
	c.current = asset
}

// CurrentLevel returns the last populated or assigned level asset.
func (c *Core) CurrentLevel() *level.Asset {
	return c.current
}

// SetShowHelp persists the help display toggle.
func (c *Core) SetShowHelp(on bool) error {
	return c.updateProgress(func(p *core.Progress) { p.DisplayHelp = on })
}

// SetShowParticles persists the particle display toggle.
func (c *Core) SetShowParticles(on bool) error {
	return c.updateProgress(func(p *core.Progress) { p.DisplayParticles = on })
}

// Progress returns the persisted progress record.
func (c *Core) Progress() (core.Progress, error) {
	return c.store.ReadProgress()
}

func (c *Core) updateProgress(fn func(p *core.Progress)) error {
	p, err := c.store.ReadProgress()
	if err != nil {
		return err
	}
	fn(&p)
	if err := c.store.WriteProgress(p); err != nil {
		c.log.Error("progress write failed", "err", err)
		return err
	}
	return nil
}
