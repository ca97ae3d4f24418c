package config

import (
	_ "embed"
)

//go:embed defaults/linezen.yaml
var defaultYAML []byte

// DefaultConfig returns the hardcoded configuration. It matches the embedded
// defaults/linezen.yaml.
func DefaultConfig() GameConfig {
	return GameConfig{
		Bubbles: BubblesConfig{
			Radius:      0.3,
			MaxOnScreen: 12,
		},
		Line: LineConfig{
			Width:       0.1,
			WidthLeeway: 0.025,
		},
		Scoring: ScoringConfig{
			PointsPerBubble:      20,
			PointsPerBonusBubble: 10,
			BonusThreshold:       1,
		},
		Levels: LevelsConfig{
			TutorialOne:     "tutorial_one",
			TutorialTwo:     "tutorial_two",
			ChallengePrefix: "challenge_",
		},
		Display: DisplayConfig{
			CellsPerUnitX: 10,
			CellsPerUnitY: 5,
			TickRate:      60,
			PopDuration:   0.4,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
