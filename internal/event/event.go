// Package event carries the notifications the simulation emits to its host.
//
// Events are delivered synchronously, in emission order, on the goroutine
// that ticks the simulation.
package event

import (
	"github.com/vovakirdan/linezen/internal/core"
	"github.com/vovakirdan/linezen/internal/scoring"
)

// Kind identifies an event type.
type Kind int

const (
	KindStateChanged Kind = iota
	KindBubblesChanged
	KindGuideLinesChanged
	KindLineCreated
	KindLineUpdated
	KindLineDestroyed
	KindBubbleDestroyed
	KindInitialized
	KindLevelFailed
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindStateChanged:
		return "StateChanged"
	case KindBubblesChanged:
		return "BubblesChanged"
	case KindGuideLinesChanged:
		return "GuideLinesChanged"
	case KindLineCreated:
		return "LineCreated"
	case KindLineUpdated:
		return "LineUpdated"
	case KindLineDestroyed:
		return "LineDestroyed"
	case KindBubbleDestroyed:
		return "BubbleDestroyed"
	case KindInitialized:
		return "Initialized"
	case KindLevelFailed:
		return "LevelFailed"
	default:
		return "Unknown"
	}
}

// Event is implemented by every notification.
type Event interface {
	Kind() Kind
}

// StateChanged is emitted whenever a state is set, including re-entry of the
// current state.
type StateChanged struct {
	State core.GameState
	Mode  core.GameMode
}

// BubblesChanged carries a snapshot of the live bubbles.
type BubblesChanged struct {
	Bubbles []core.Point
}

// GuideLinesChanged carries a snapshot of the guide lines.
type GuideLinesChanged struct {
	GuideLines []core.GuideLine
}

// LineCreated is emitted on the pointer-down edge. Start equals End.
type LineCreated struct {
	Start, End core.Point
}

// LineUpdated is emitted every tick the pointer stays down.
type LineUpdated struct {
	Start, End core.Point
}

// LineDestroyed is emitted on the pointer-up edge after scoring.
type LineDestroyed struct {
	Start, End core.Point
	Score      scoring.EarnedScore
}

// BubbleDestroyed is emitted once per popped bubble.
type BubbleDestroyed struct {
	Position core.Point
}

// Initialized is emitted once, after the first tick announced its state.
type Initialized struct{}

// LevelFailed reports a level that could not be populated.
type LevelFailed struct {
	State core.GameState
	Err   error
}

func (StateChanged) Kind() Kind      { return KindStateChanged }
func (BubblesChanged) Kind() Kind    { return KindBubblesChanged }
func (GuideLinesChanged) Kind() Kind { return KindGuideLinesChanged }
func (LineCreated) Kind() Kind       { return KindLineCreated }
func (LineUpdated) Kind() Kind       { return KindLineUpdated }
func (LineDestroyed) Kind() Kind     { return KindLineDestroyed }
func (BubbleDestroyed) Kind() Kind   { return KindBubbleDestroyed }
func (Initialized) Kind() Kind       { return KindInitialized }
func (LevelFailed) Kind() Kind       { return KindLevelFailed }
