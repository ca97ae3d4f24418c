package tui

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/linezen/internal/config"
	"github.com/vovakirdan/linezen/internal/core"
	"github.com/vovakirdan/linezen/internal/event"
	"github.com/vovakirdan/linezen/internal/game"
	"github.com/vovakirdan/linezen/internal/level"
	"github.com/vovakirdan/linezen/internal/scoring"
	"github.com/vovakirdan/linezen/internal/storage"
)

// Options configures a play session.
type Options struct {
	Config    config.GameConfig
	Runtime   core.RuntimeConfig
	Store     *storage.Store // nil keeps progress in memory
	Profile   string
	SessionID string
	Levels    *level.Loader // nil uses the embedded level pack
	Logger    *log.Logger
}

// Model is the Bubble Tea model hosting one Line Zen session.
type Model struct {
	sim       *game.Core
	frame     *core.PointerFrame
	queue     *event.Queue
	screen    *core.Screen
	proj      core.Projection
	particles *Particles
	menu      *Menu
	keys      KeyMap
	help      help.Model
	cfg       config.GameConfig
	store     *storage.Store
	levels    *level.Loader
	logger    *log.Logger
	profile   string
	sessionID string
	tickRate  int

	challenges   []string
	challengeIdx int

	// State and mode as of the event being handled. The core may already
	// have moved on when a tick's events are drained.
	eventState core.GameState
	eventMode  core.GameMode

	progress       core.Progress
	lastScore      *scoring.EarnedScore
	lastScoreTicks int
	status         string

	// A release that arrives before any tick saw the press is held back one
	// tick so quick taps still open and close a line.
	releasePending bool
	quitting       bool
}

var helpBarStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// NewModel creates a session model.
func NewModel(opts Options) Model {
	if opts.Config == (config.GameConfig{}) {
		opts.Config = config.DefaultConfig()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	levels := opts.Levels
	if levels == nil {
		levels = level.NewEmbeddedLoader()
	}
	tickRate := opts.Runtime.TickRate
	if tickRate <= 0 {
		tickRate = opts.Config.Display.TickRate
	}
	if tickRate <= 0 {
		tickRate = 60
	}
	profile := opts.Profile
	if profile == "" {
		profile = storage.DefaultProfile
	}

	m := Model{
		frame:     &core.PointerFrame{},
		queue:     &event.Queue{},
		keys:      DefaultKeyMap(),
		help:      help.New(),
		cfg:       opts.Config,
		store:     opts.Store,
		levels:    levels,
		logger:    logger,
		profile:   profile,
		sessionID: opts.SessionID,
		tickRate:  tickRate,
		particles: NewParticles(opts.Config.Display.PopDuration, opts.Config.Bubbles.Radius*2),
	}
	m.screen = core.NewScreen(1, 1)
	m.resize(opts.Runtime.ScreenW, opts.Runtime.ScreenH)

	var persistence game.Persistence = game.NewMemoryProgress()
	if opts.Store != nil {
		persistence = opts.Store.Profile(profile)
	}

	dispatcher := event.NewDispatcher()
	dispatcher.SubscribeAll(m.queue)

	m.sim = game.NewCore(game.Options{
		Config:       opts.Config.Game(),
		Input:        m.frame,
		Persistence:  persistence,
		Events:       dispatcher,
		Logger:       logger,
		TutorialOne:  m.loadAsset(opts.Config.Levels.TutorialOne),
		TutorialTwo:  m.loadAsset(opts.Config.Levels.TutorialTwo),
		InitialState: core.StateStartup,
	})

	ids, err := levels.ListWithPrefix(opts.Config.Levels.ChallengePrefix)
	if err != nil {
		logger.Warn("cannot list challenge levels", "error", err)
	}
	m.challenges = ids
	m.assignChallenge()
	m.menu = startupMenu(m.challengeName())
	m.progress = core.DefaultProgress()
	return m
}

// loadAsset loads a level by ID. Missing levels are logged and yield nil.
func (m *Model) loadAsset(id string) *level.Asset {
	if id == "" {
		return nil
	}
	asset, err := m.levels.Load(id)
	if err != nil {
		m.logger.Warn("level unavailable", "id", id, "error", err)
		return nil
	}
	return asset
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.tickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		m.handleMouse(msg)
		return m, nil

	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	state := m.sim.State()
	if m.menu != nil && (state == core.StateStartup || state == core.StateOptions) {
		switch {
		case key.Matches(msg, m.keys.Up):
			m.menu.Up()
			return m, nil
		case key.Matches(msg, m.keys.Down):
			m.menu.Down()
			return m, nil
		case key.Matches(msg, m.keys.Select):
			m.applyAction(m.menu.Selected())
			return m, nil
		}
	}

	m.applyAction(m.keys.MapKey(msg))
	return m, nil
}

// applyAction turns a host action into a core request.
func (m *Model) applyAction(action core.Action) {
	if action == core.ActionNone {
		return
	}
	m.status = ""
	mode := m.sim.Mode()

	switch action {
	case core.ActionTutorial:
		m.sim.RequestState(core.StateTutorialOne, core.ModeChallengeLevel)
	case core.ActionChallenge:
		m.assignChallenge()
		m.sim.RequestState(core.StateGame, core.ModeChallengeLevel)
	case core.ActionInfinite:
		m.sim.RequestState(core.StateGame, core.ModeInfinite)
	case core.ActionNextLevel:
		if len(m.challenges) == 0 {
			m.status = "No challenge levels installed"
			return
		}
		m.challengeIdx = (m.challengeIdx + 1) % len(m.challenges)
		m.assignChallenge()
		if m.sim.State() == core.StateGame && mode == core.ModeChallengeLevel {
			m.sim.RequestState(core.StateGame, core.ModeChallengeLevel)
		} else if m.sim.State() == core.StateStartup {
			m.menu = startupMenu(m.challengeName())
			m.menu.SetCursor(1)
		}
	case core.ActionOptions:
		m.sim.RequestState(core.StateOptions, mode)
		m.menu = optionsMenu(m.progress)
	case core.ActionToggleHelp:
		m.setDisplay(m.sim.SetShowHelp(!m.progress.DisplayHelp))
	case core.ActionToggleParticles:
		m.setDisplay(m.sim.SetShowParticles(!m.progress.DisplayParticles))
		if !m.progress.DisplayParticles {
			m.particles.Clear()
		}
	case core.ActionBack:
		if m.sim.State() != core.StateStartup {
			m.sim.RequestState(core.StateStartup, mode)
			m.menu = startupMenu(m.challengeName())
		}
	case core.ActionQuit:
		m.sim.RequestState(core.StateExit, mode)
	}
}

// setDisplay refreshes cached progress after a display toggle.
func (m *Model) setDisplay(err error) {
	if err != nil {
		m.status = "Cannot save settings: " + err.Error()
		m.logger.Error("saving display settings", "error", err)
		return
	}
	m.refreshProgress()
	if m.sim.State() == core.StateOptions {
		cursor := 0
		if m.menu != nil {
			cursor = m.menu.Cursor()
		}
		m.menu = optionsMenu(m.progress)
		m.menu.SetCursor(cursor)
	}
}

// assignChallenge hands the selected challenge level to the core.
func (m *Model) assignChallenge() {
	if len(m.challenges) == 0 {
		return
	}
	id := m.challenges[m.challengeIdx]
	asset := m.loadAsset(id)
	if asset == nil {
		m.status = fmt.Sprintf("Level %s is unavailable", id)
		return
	}
	m.sim.AssignLevel(asset)
}

func (m *Model) challengeName() string {
	if len(m.challenges) == 0 {
		return ""
	}
	return m.challenges[m.challengeIdx]
}

// handleMouse records pointer samples for the next tick.
func (m *Model) handleMouse(msg tea.MouseMsg) {
	pos := m.proj.ToWorld(msg.X, msg.Y)

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return
		}
		m.frame.Down = true
		m.frame.Position = pos
		m.releasePending = false
	case tea.MouseActionMotion:
		if m.frame.Down {
			m.frame.Position = pos
		}
	case tea.MouseActionRelease:
		if m.frame.Down {
			m.frame.Position = pos
			m.releasePending = true
		}
	}
}

// handleTick runs one simulation tick and reacts to its events.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	m.frame.HalfExtent = m.proj.HalfExtents()
	result := m.sim.Tick()

	// The tick has seen the release position; the next one closes the line.
	if m.releasePending {
		m.frame.Down = false
		m.releasePending = false
	}

	m.handleEvents(m.queue.Drain())

	m.particles.Update(1 / float32(m.tickRate))
	if m.lastScoreTicks > 0 {
		m.lastScoreTicks--
		if m.lastScoreTicks == 0 {
			m.lastScore = nil
		}
	}

	if result.Exit {
		m.quitting = true
		return m, tea.Quit
	}
	return m, tickCmd(m.tickRate)
}

// handleEvents reacts to the events emitted during a tick.
func (m *Model) handleEvents(events []event.Event) {
	for _, e := range events {
		switch ev := e.(type) {
		case event.StateChanged:
			m.eventState = ev.State
			m.eventMode = ev.Mode
			m.logger.Debug("state changed", "state", ev.State, "mode", ev.Mode)
			switch ev.State {
			case core.StateStartup:
				m.menu = startupMenu(m.challengeName())
				m.particles.Clear()
			case core.StateOptions:
				m.menu = optionsMenu(m.progress)
				m.particles.Clear()
			default:
				m.menu = nil
			}

		case event.Initialized:
			m.refreshProgress()
			if m.sim.State() == core.StateOptions {
				m.menu = optionsMenu(m.progress)
			}

		case event.LineDestroyed:
			if ev.Score.Hits() == 0 {
				continue
			}
			score := ev.Score
			m.lastScore = &score
			m.lastScoreTicks = m.tickRate * 2
			m.refreshProgress()
			m.recordRound(score)

		case event.BubbleDestroyed:
			if m.progress.DisplayParticles {
				m.particles.Spawn(ev.Position)
			}

		case event.LevelFailed:
			m.status = levelFailedMessage(ev.Err)
			m.logger.Warn("level refused", "state", ev.State, "error", ev.Err)
		}
	}
}

func levelFailedMessage(err error) string {
	switch {
	case errors.Is(err, game.ErrNoLevel):
		return "No level selected"
	case errors.Is(err, level.ErrMalformedLevel):
		return "Level file is malformed"
	default:
		return "Level could not be loaded: " + err.Error()
	}
}

// refreshProgress reloads the cached progress record.
func (m *Model) refreshProgress() {
	p, err := m.sim.Progress()
	if err != nil {
		m.logger.Error("reading progress", "error", err)
		return
	}
	m.progress = p
}

// recordRound stores a scored line in the rounds history.
func (m *Model) recordRound(score scoring.EarnedScore) {
	if m.store == nil {
		return
	}
	snap := m.sim.Snapshot()
	mode := m.eventState.String()
	if m.eventState == core.StateGame {
		mode = m.eventMode.String()
	}
	_, err := m.store.SaveRound(storage.RoundEntry{
		Profile:   m.profile,
		SessionID: m.sessionID,
		Mode:      mode,
		LevelName: snap.LevelName,
		Hits:      score.Hits(),
		Base:      score.Base,
		Bonus:     score.Bonus,
		Total:     score.Total,
	})
	if err != nil {
		m.logger.Error("saving round", "error", err)
	}
}

// resize adapts the screen and world projection to the terminal. The last
// row is reserved for the help bar.
func (m *Model) resize(width, height int) {
	if width < 1 {
		width = 1
	}
	height--
	if height < 1 {
		height = 1
	}
	m.screen.Resize(width, height)
	m.proj = core.Projection{
		Width:         width,
		Height:        height,
		CellsPerUnitX: m.cfg.Display.CellsPerUnitX,
		CellsPerUnitY: m.cfg.Display.CellsPerUnitY,
	}
	m.help.Width = width
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.draw()

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".linezen", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	filename := fmt.Sprintf("linezen_%s.txt", time.Now().Format("20060102_150405"))
	if err := os.WriteFile(filepath.Join(dir, filename), []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("saving screenshot", "error", err)
	}
}

// draw renders the session into the screen buffer.
func (m *Model) draw() {
	m.screen.Clear()
	snap := m.sim.Snapshot()

	drawScene(m.screen, m.proj, snap, m.cfg.Bubbles.Radius)
	m.particles.Draw(m.screen, m.proj)

	switch snap.State {
	case core.StateStartup, core.StateOptions:
		if m.menu != nil {
			m.menu.Draw(m.screen)
		}
		stats := fmt.Sprintf("Score %d  Infinite level %d  Profile %s", m.progress.Score, m.progress.Level+1, m.profile)
		m.screen.DrawTextCentered(m.screen.Height()-2, stats, core.ColorDim)
	default:
		var last *scoring.EarnedScore
		if m.lastScoreTicks > 0 {
			last = m.lastScore
		}
		drawHUD(m.screen, snap, m.progress, last)
		if m.progress.DisplayHelp {
			drawHint(m.screen, snap.State)
		}
	}

	if m.status != "" {
		m.screen.DrawTextCentered(m.screen.Height()-1, m.status, core.ColorError)
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.draw()
	view := RenderScreen(m.screen)
	if m.progress.DisplayHelp {
		return view + "\n" + helpBarStyle.Render(m.help.View(m.keys))
	}
	return view + "\n"
}

// State returns the current session state.
func (m Model) State() core.GameState {
	return m.sim.State()
}

// Run starts a local play session.
func Run(opts Options) error {
	model := NewModel(opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := p.Run()
	return err
}
