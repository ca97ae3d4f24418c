package core

// GameState is the top-level state of a session.
type GameState int

const (
	StateStartup GameState = iota
	StateOptions
	StateTutorialOne
	StateTutorialTwo
	StateGame
	StateExit
)

// String returns a human-readable name for the state.
func (s GameState) String() string {
	switch s {
	case StateStartup:
		return "Startup"
	case StateOptions:
		return "Options"
	case StateTutorialOne:
		return "TutorialOne"
	case StateTutorialTwo:
		return "TutorialTwo"
	case StateGame:
		return "Game"
	case StateExit:
		return "Exit"
	default:
		return "Unknown"
	}
}

// HasLevel reports whether the state plays a level and tracks the player line.
func (s GameState) HasLevel() bool {
	return s == StateTutorialOne || s == StateTutorialTwo || s == StateGame
}

// GameMode selects how the Game state populates bubbles.
type GameMode int

const (
	ModeChallengeLevel GameMode = iota
	ModeInfinite
)

// String returns a human-readable name for the mode.
func (m GameMode) String() string {
	switch m {
	case ModeChallengeLevel:
		return "Challenge"
	case ModeInfinite:
		return "Infinite"
	default:
		return "Unknown"
	}
}
