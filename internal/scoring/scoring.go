// Package scoring resolves a finished line against the bubbles on screen.
package scoring

import "github.com/vovakirdan/linezen/internal/core"

// Rules holds the collision and scoring constants.
type Rules struct {
	BubbleRadius float64
	LineWidth    float64
	WidthLeeway  float64

	PointsPerBubble      int
	PointsPerBonusBubble int
	BonusThreshold       int
}

// DefaultRules returns the stock tuning.
func DefaultRules() Rules {
	return Rules{
		BubbleRadius:         0.3,
		LineWidth:            0.1,
		WidthLeeway:          0.025,
		PointsPerBubble:      20,
		PointsPerBonusBubble: 10,
		BonusThreshold:       1,
	}
}

// TriggerRadius is the distance from the line at which a bubble pops.
func (r Rules) TriggerRadius() float64 {
	return r.BubbleRadius + r.LineWidth/2 + r.WidthLeeway
}

// EarnedScore is the outcome of one line.
type EarnedScore struct {
	Base      int
	Bonus     int
	Total     int          // Base + Bonus
	Collected []core.Point // Removal order, last bubble index first
}

// Hits returns the number of collected bubbles.
func (s EarnedScore) Hits() int {
	return len(s.Collected)
}

// Compute applies the score formula to a hit count.
// Every hit past BonusThreshold grows the bonus quadratically.
func (r Rules) Compute(hits int) EarnedScore {
	s := EarnedScore{Base: hits * r.PointsPerBubble}
	if hits > r.BonusThreshold {
		over := hits - r.BonusThreshold
		s.Bonus = over * over * r.PointsPerBonusBubble
	}
	s.Total = s.Base + s.Bonus
	return s
}

// Collect finds every bubble touched by the segment start->end.
// It returns the bubbles that remain, in their original order, and the score
// for the ones that were hit. bubbles is not modified.
//
// A zero-length segment collects nothing.
func (r Rules) Collect(bubbles []core.Point, start, end core.Point) ([]core.Point, EarnedScore) {
	if start == end {
		kept := make([]core.Point, len(bubbles))
		copy(kept, bubbles)
		return kept, r.Compute(0)
	}

	trigger := r.TriggerRadius()
	hit := make([]bool, len(bubbles))
	var collected []core.Point

	for i := len(bubbles) - 1; i >= 0; i-- {
		if core.SegmentTouchesCircle(start, end, bubbles[i], trigger, r.BubbleRadius, true) {
			hit[i] = true
			collected = append(collected, bubbles[i])
		}
	}

	kept := make([]core.Point, 0, len(bubbles)-len(collected))
	for i, b := range bubbles {
		if !hit[i] {
			kept = append(kept, b)
		}
	}

	score := r.Compute(len(collected))
	score.Collected = collected
	return kept, score
}
