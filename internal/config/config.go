// Package config provides YAML-based configuration loading for Line Zen.
package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/linezen/internal/game"
	"github.com/vovakirdan/linezen/internal/scoring"
)

// ErrInvalidConfig is returned when a loaded configuration cannot be used.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// GameConfig contains all configuration for a Line Zen session.
type GameConfig struct {
	Bubbles BubblesConfig `yaml:"bubbles"`
	Line    LineConfig    `yaml:"line"`
	Scoring ScoringConfig `yaml:"scoring"`
	Levels  LevelsConfig  `yaml:"levels"`
	Display DisplayConfig `yaml:"display"`
}

// BubblesConfig defines bubble geometry and limits.
type BubblesConfig struct {
	Radius      float64 `yaml:"radius"`        // World units
	MaxOnScreen int     `yaml:"max_on_screen"` // Cap for infinite rounds
}

// LineConfig defines the player line used for collision.
type LineConfig struct {
	Width       float64 `yaml:"width"`
	WidthLeeway float64 `yaml:"width_leeway"` // Extra reach added to the trigger radius
}

// ScoringConfig defines points awarded per line.
type ScoringConfig struct {
	PointsPerBubble      int `yaml:"points_per_bubble"`
	PointsPerBonusBubble int `yaml:"points_per_bonus_bubble"`
	BonusThreshold       int `yaml:"bonus_threshold"` // Hits beyond this earn a bonus
}

// LevelsConfig names the level assets used by each state.
type LevelsConfig struct {
	TutorialOne     string `yaml:"tutorial_one"`
	TutorialTwo     string `yaml:"tutorial_two"`
	ChallengePrefix string `yaml:"challenge_prefix"`
}

// DisplayConfig defines how the world maps onto the terminal.
type DisplayConfig struct {
	CellsPerUnitX float64 `yaml:"cells_per_unit_x"`
	CellsPerUnitY float64 `yaml:"cells_per_unit_y"`
	TickRate      int     `yaml:"tick_rate"`    // Ticks per second
	PopDuration   float64 `yaml:"pop_duration"` // Seconds a popped bubble stays visible
}

// Rules returns the scoring rules described by the configuration.
func (c GameConfig) Rules() scoring.Rules {
	return scoring.Rules{
		BubbleRadius:         c.Bubbles.Radius,
		LineWidth:            c.Line.Width,
		WidthLeeway:          c.Line.WidthLeeway,
		PointsPerBubble:      c.Scoring.PointsPerBubble,
		PointsPerBonusBubble: c.Scoring.PointsPerBonusBubble,
		BonusThreshold:       c.Scoring.BonusThreshold,
	}
}

// Game returns the simulation tuning described by the configuration.
func (c GameConfig) Game() game.Config {
	return game.Config{
		Rules:       c.Rules(),
		MaxOnScreen: c.Bubbles.MaxOnScreen,
	}
}

// Validate checks that the configuration describes a playable session.
func (c GameConfig) Validate() error {
	switch {
	case c.Bubbles.Radius <= 0:
		return fmt.Errorf("%w: bubbles.radius must be positive, got %v", ErrInvalidConfig, c.Bubbles.Radius)
	case c.Bubbles.MaxOnScreen <= 0:
		return fmt.Errorf("%w: bubbles.max_on_screen must be positive, got %d", ErrInvalidConfig, c.Bubbles.MaxOnScreen)
	case c.Line.Width < 0 || c.Line.WidthLeeway < 0:
		return fmt.Errorf("%w: line width and leeway cannot be negative", ErrInvalidConfig)
	case c.Display.CellsPerUnitX <= 0 || c.Display.CellsPerUnitY <= 0:
		return fmt.Errorf("%w: display cells per unit must be positive", ErrInvalidConfig)
	case c.Display.TickRate <= 0:
		return fmt.Errorf("%w: display.tick_rate must be positive, got %d", ErrInvalidConfig, c.Display.TickRate)
	}
	return nil
}
