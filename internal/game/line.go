package game

import (
	"github.com/vovakirdan/linezen/internal/event"
	"github.com/vovakirdan/linezen/internal/scoring"
)

// updateLine follows the primary pointer. The press edge creates a line, a
// held pointer drags its end and the release edge resolves it.
func (c *Core) updateLine() {
	if c.input.PrimaryInputDown() {
		pos := c.input.PrimaryInputPosition()
		if c.lineHeld {
			c.lineEnd = pos
			c.emit(event.LineUpdated{Start: c.lineStart, End: c.lineEnd})
		} else {
			c.lineStart = pos
			c.lineEnd = pos
			c.emit(event.LineCreated{Start: c.lineStart, End: c.lineEnd})
		}
		c.lineHeld = true
		return
	}

	if c.lineHeld {
		score := c.collect()
		c.emit(event.BubblesChanged{Bubbles: c.Bubbles()})
		c.emit(event.LineDestroyed{Start: c.lineStart, End: c.lineEnd, Score: score})
		c.lineHeld = false
	}
}

// collect resolves the finished line against the live bubbles, books the
// score and announces every popped bubble.
func (c *Core) collect() scoring.EarnedScore {
	kept, score := c.cfg.Rules.Collect(c.bubbles, c.lineStart, c.lineEnd)

	if c.cfg.Rules.PointsPerBubble != 0 {
		c.addScore(score.Total)
	}

	c.bubbles = kept
	for _, b := range score.Collected {
		c.emit(event.BubbleDestroyed{Position: b})
	}

	if score.Hits() > 0 {
		c.log.Debug("line resolved", "hits", score.Hits(), "base", score.Base, "bonus", score.Bonus, "left", len(kept))
	}
	return score
}

// addScore adds points to the persisted score as one read-modify-write.
func (c *Core) addScore(points int) {
	p, err := c.store.ReadProgress()
	if err != nil {
		c.log.Error("progress read failed", "err", err)
		return
	}
	p.Score += points
	if err := c.store.WriteProgress(p); err != nil {
		c.log.Error("progress write failed", "err", err)
	}
}
