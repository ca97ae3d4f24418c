package main

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/linezen/internal/core"
	"github.com/vovakirdan/linezen/internal/platform/tui"
	"github.com/vovakirdan/linezen/internal/storage"
)

var flagNoStore bool

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Line Zen in this terminal",
	Long: `Start a Line Zen session. Needs a terminal with mouse support.

Controls:
  Mouse drag   - Draw a line, release to pop
  1/t          - Tutorial
  2/c          - Challenge level
  3/i          - Infinite mode
  n/Tab        - Next challenge level
  o            - Options
  h / p        - Toggle help / pop particles
  Esc/b        - Back to the start screen
  Ctrl+S       - Save a text screenshot
  q/Ctrl+C     - Quit

Presets:
  relaxed   - Wide line, generous reach
  standard  - Values from the config
  precise   - Thin line, no extra reach

Examples:
  linezen play
  linezen play --preset precise
  linezen play --profile alice
  linezen play --levels ./my-levels`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagNoStore, "no-store", false, "Keep progress in memory only")
}

func runPlay(_ *cobra.Command, _ []string) {
	gameCfg, err := loadGameConfig()
	if err != nil {
		fatal("%v", err)
	}

	// The TUI owns the terminal, so logs go to a file.
	logFile, err := openLogFile()
	if err != nil {
		fatal("opening log file: %v", err)
	}
	defer logFile.Close()
	logger := newLogger(logFile)

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	var store *storage.Store
	if !flagNoStore {
		store, err = storage.Open(flagDBPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not open progress database: %v\n", err)
			logger.Warn("playing without storage", "error", err)
			store = nil
		}
	}

	sessionID := uuid.NewString()
	logger.Info("session started", "profile", flagProfile, "session", sessionID)

	runErr := tui.Run(tui.Options{
		Config: gameCfg,
		Runtime: core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  height,
			TickRate: gameCfg.Display.TickRate,
		},
		Store:     store,
		Profile:   flagProfile,
		SessionID: sessionID,
		Levels:    levelLoader(),
		Logger:    logger,
	})

	if store != nil {
		store.Close()
	}
	logger.Info("session ended", "session", sessionID)

	if runErr != nil {
		fatal("running game: %v", runErr)
	}
}
