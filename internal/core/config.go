package core

// RuntimeConfig contains configuration passed to a session at initialization.
// Hosts use this to adapt the world projection to the terminal size.
type RuntimeConfig struct {
	ScreenW  int // Screen width in characters
	ScreenH  int // Screen height in characters
	TickRate int // Simulation ticks per second (default 60)
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

// Progress is the persisted general progress record of a player.
// It is always read and written as a whole.
type Progress struct {
	Score            int  `yaml:"score"`
	Level            int  `yaml:"level"`
	DisplayHelp      bool `yaml:"display_help"`
	DisplayParticles bool `yaml:"display_particles"`
}

// DefaultProgress returns the progress of a fresh profile.
func DefaultProgress() Progress {
	return Progress{
		Score:            0,
		Level:            0,
		DisplayHelp:      true,
		DisplayParticles: true,
	}
}

// StepResult is returned by Core.Tick after each simulation tick.
type StepResult struct {
	State   GameState // State after the tick
	Mode    GameMode
	Bubbles int  // Bubbles left on screen
	Exit    bool // The host should shut down
}
