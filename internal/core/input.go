package core

// Action represents a semantic host action, abstracted from physical key presses.
type Action int

const (
	ActionNone            Action = iota
	ActionTutorial               // 1, t - start the tutorial
	ActionChallenge              // 2, c - play the current challenge level
	ActionInfinite               // 3, i - play infinite mode
	ActionNextLevel              // n, tab - pick the next challenge level
	ActionOptions                // o - open options
	ActionToggleHelp             // h - toggle help display
	ActionToggleParticles        // p - toggle pop particles
	ActionBack                   // b, esc - back to the startup screen
	ActionQuit                   // q, ctrl+c - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionTutorial:
		return "Tutorial"
	case ActionChallenge:
		return "Challenge"
	case ActionInfinite:
		return "Infinite"
	case ActionNextLevel:
		return "NextLevel"
	case ActionOptions:
		return "Options"
	case ActionToggleHelp:
		return "ToggleHelp"
	case ActionToggleParticles:
		return "ToggleParticles"
	case ActionBack:
		return "Back"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// PointerFrame is a snapshot of the primary pointer for one simulation tick.
// It satisfies the game package's Input interface.
type PointerFrame struct {
	Down       bool
	Position   Point // World space
	HalfExtent Point // Half width and height of the visible world
}

// PrimaryInputDown reports whether the primary pointer is held.
func (f *PointerFrame) PrimaryInputDown() bool {
	return f.Down
}

// PrimaryInputPosition returns the pointer position in world space.
func (f *PointerFrame) PrimaryInputPosition() Point {
	return f.Position
}

// ScreenHalfExtents returns the half size of the visible world.
func (f *PointerFrame) ScreenHalfExtents() Point {
	return f.HalfExtent
}
