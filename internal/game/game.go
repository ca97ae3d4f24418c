// Package game implements the Line Zen simulation core: the state machine,
// bubble population, player line tracking and collision resolution.
//
// A Core is driven by calling Tick once per frame. It is single-threaded and
// never blocks; every transition and bubble mutation happens inside Tick or
// one of the command methods, and all notifications go through the
// event.Dispatcher in emission order.
package game

import (
	"errors"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/linezen/internal/core"
	"github.com/vovakirdan/linezen/internal/event"
	"github.com/vovakirdan/linezen/internal/level"
	"github.com/vovakirdan/linezen/internal/scoring"
)

// ErrNoLevel is reported when a challenge round starts without a level.
var ErrNoLevel = errors.New("game: no level assigned")

// Input is the pointer and screen collaborator queried every tick.
type Input interface {
	PrimaryInputDown() bool
	PrimaryInputPosition() core.Point
	ScreenHalfExtents() core.Point
}

// Persistence stores the general progress record.
type Persistence interface {
	Initialize() error
	ReadProgress() (core.Progress, error)
	WriteProgress(p core.Progress) error
}

// Config holds the tuning the core needs.
type Config struct {
	Rules       scoring.Rules
	MaxOnScreen int // Cap for generated rounds
}

// DefaultConfig returns the stock tuning.
func DefaultConfig() Config {
	return Config{
		Rules:       scoring.DefaultRules(),
		MaxOnScreen: 12,
	}
}

// phase tags whether the current state still has to run its entry action.
type phase int

const (
	phaseEnter  phase = iota // Population pending
	phaseActive              // Population done for this entry
)

// Options configures a new Core.
type Options struct {
	Config      Config
	Input       Input
	Persistence Persistence // nil uses an in-memory record
	Events      *event.Dispatcher
	Logger      *log.Logger // nil discards

	TutorialOne *level.Asset
	TutorialTwo *level.Asset

	InitialState core.GameState
	InitialMode  core.GameMode
}

// Core is the simulation state machine.
type Core struct {
	cfg    Config
	input  Input
	store  Persistence
	events *event.Dispatcher
	log    *log.Logger

	tutorialOne *level.Asset
	tutorialTwo *level.Asset
	current     *level.Asset // Last populated or assigned level

	state     core.GameState
	mode      core.GameMode
	phase     phase
	started   bool
	levelName string

	bubbles    []core.Point
	guideLines []core.GuideLine

	// Player line
	lineHeld  bool
	lineStart core.Point
	lineEnd   core.Point
}

// NewCore creates a core. Nothing is emitted until the first Tick.
func NewCore(opts Options) *Core {
	cfg := opts.Config
	if cfg.MaxOnScreen == 0 && cfg.Rules == (scoring.Rules{}) {
		cfg = DefaultConfig()
	}

	store := opts.Persistence
	if store == nil {
		store = NewMemoryProgress()
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	input := opts.Input
	if input == nil {
		input = &core.PointerFrame{}
	}

	events := opts.Events
	if events == nil {
		events = event.NewDispatcher()
	}

	return &Core{
		cfg:         cfg,
		input:       input,
		store:       store,
		events:      events,
		log:         logger,
		tutorialOne: opts.TutorialOne,
		tutorialTwo: opts.TutorialTwo,
		state:       opts.InitialState,
		mode:        opts.InitialMode,
		phase:       phaseEnter,
	}
}

// Events returns the dispatcher the core emits to.
func (c *Core) Events() *event.Dispatcher {
	return c.events
}

// State returns the current state.
func (c *Core) State() core.GameState {
	return c.state
}

// Mode returns the current mode.
func (c *Core) Mode() core.GameMode {
	return c.mode
}

// Tick advances the simulation by one step.
func (c *Core) Tick() core.StepResult {
	if !c.started {
		c.started = true
		if err := c.store.Initialize(); err != nil {
			c.log.Error("progress initialization failed", "err", err)
		}
		c.emit(event.StateChanged{State: c.state, Mode: c.mode})
		c.emit(event.Initialized{})
	}

	switch c.state {
	case core.StateStartup, core.StateOptions:
		// Owned by the host UI.

	case core.StateTutorialOne:
		if c.enterLevel(c.tutorialOne) {
			c.updateLine()
			c.checkLevelDone(core.StateTutorialTwo)
		}

	case core.StateTutorialTwo:
		if c.enterLevel(c.tutorialTwo) {
			c.updateLine()
			c.checkLevelDone(core.StateGame)
			c.retryTutorialIfIncomplete()
		}

	case core.StateGame:
		if c.mode == core.ModeInfinite {
			if c.enterInfinite() {
				c.updateLine()
				c.checkInfiniteDone()
			}
		} else {
			if c.current == nil && c.phase == phaseEnter {
				c.failLevel(ErrNoLevel)
				break
			}
			if c.enterLevel(c.current) {
				c.updateLine()
				c.checkLevelDone(core.StateGame)
			}
		}
	}

	return core.StepResult{
		State:   c.state,
		Mode:    c.mode,
		Bubbles: len(c.bubbles),
		Exit:    c.state == core.StateExit,
	}
}

// setState switches state, marks it for entry and announces it. Setting the
// current state again is a re-entry.
func (c *Core) setState(s core.GameState) {
	c.log.Debug("state change", "from", c.state, "to", s, "mode", c.mode)
	c.state = s
	c.phase = phaseEnter
	c.emit(event.StateChanged{State: c.state, Mode: c.mode})
}

func (c *Core) emit(e event.Event) {
	c.events.Dispatch(e)
}

// checkLevelDone moves to next once the level is cleared. A state that ended
// up without a level falls through to Game.
func (c *Core) checkLevelDone(next core.GameState) {
	if c.current == nil {
		c.setState(core.StateGame)
		return
	}
	if len(c.bubbles) < 1 {
		c.log.Info("level cleared", "level", c.levelName, "next", next)
		c.setState(next)
	}
}

// retryTutorialIfIncomplete repopulates the second tutorial on the next tick
// when exactly one bubble was left behind.
func (c *Core) retryTutorialIfIncomplete() {
	if c.state == core.StateTutorialTwo && len(c.bubbles) == 1 {
		c.log.Debug("tutorial retry", "level", c.levelName)
		c.phase = phaseEnter
	}
}

// checkInfiniteDone advances the persisted level once the round is cleared.
func (c *Core) checkInfiniteDone() {
	if len(c.bubbles) >= 1 {
		return
	}

	p, err := c.store.ReadProgress()
	if err != nil {
		c.failLevel(err)
		return
	}
	p.Level++
	if err := c.store.WriteProgress(p); err != nil {
		c.log.Error("progress write failed", "err", err)
	}
	c.log.Info("infinite round cleared", "next_level", p.Level)
	c.setState(core.StateGame)
}
