// linezen is a terminal rendition of Line Zen: draw lines with the mouse to
// pop bubbles.
//
// Usage:
//
//	linezen play                 - Play in this terminal
//	linezen serve                - Start SSH server for remote play
//	linezen levels               - List level assets
//	linezen levels validate <f>  - Check level files
//	linezen scores               - Show the best recorded lines
//	linezen progress             - Show or reset stored progress
//	linezen save export|import   - Move progress between machines
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: from config, 60)
//	--db <path>         - Set database path (default: ~/.linezen/linezen.db)
//	--profile <name>    - Progress profile (default: local)
//	--config <path>     - Custom config YAML
//	--preset <name>     - Line preset: relaxed, standard, precise
//	--levels <dir>      - Load levels from a directory instead of the built-in pack
//	--log-level <lvl>   - debug, info, warn, error
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/linezen/internal/config"
	"github.com/vovakirdan/linezen/internal/level"
	"github.com/vovakirdan/linezen/internal/storage"
)

var (
	// Global flags
	flagFPS       int
	flagDBPath    string
	flagProfile   string
	flagConfig    string
	flagPreset    string
	flagLevelsDir string
	flagLogLevel  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "linezen",
	Short: "Line Zen - pop bubbles by drawing lines",
	Long: `Line Zen is a calm bubble popping game for the terminal.
Hold the mouse button, drag a line across the bubbles and let go.
Every bubble the line touches pops; long lines earn a bonus.

Available commands:
  play      - Play in this terminal
  serve     - Start SSH server for remote play
  levels    - List and validate level files
  scores    - View the best recorded lines
  progress  - Show or reset stored progress
  save      - Export or import a save blob

Examples:
  linezen play
  linezen play --preset relaxed
  linezen serve --ssh :2222
  linezen scores --board`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate (0 = use config)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.linezen/linezen.db", "Path to progress database")
	rootCmd.PersistentFlags().StringVar(&flagProfile, "profile", storage.DefaultProfile, "Progress profile name")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagPreset, "preset", "", "Line preset: relaxed, standard, precise")
	rootCmd.PersistentFlags().StringVar(&flagLevelsDir, "levels", "", "Directory with level files (default: built-in pack)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(progressCmd)
	rootCmd.AddCommand(saveCmd)
}

// fatal prints an error the way every command reports failures and exits.
func fatal(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}

// newLogger builds the root logger writing to w.
func newLogger(w io.Writer) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "linezen",
	})
	lvl, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		logger.Warn("unknown log level, using info", "level", flagLogLevel)
		lvl = log.InfoLevel
	}
	logger.SetLevel(lvl)
	return logger
}

// openLogFile opens ~/.linezen/linezen.log for appending.
func openLogFile() (*os.File, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("cannot get home directory: %w", err)
	}
	dir := filepath.Join(home, ".linezen")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("cannot create %s: %w", dir, err)
	}
	return os.OpenFile(filepath.Join(dir, "linezen.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
}

// loadGameConfig resolves the game configuration from --config and --preset.
func loadGameConfig() (config.GameConfig, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.GameConfig{}, err
	}
	if flagPreset != "" {
		preset, err := config.ParsePreset(flagPreset)
		if err != nil {
			return config.GameConfig{}, err
		}
		config.ApplyPreset(&cfg, preset)
	}
	if flagFPS > 0 {
		cfg.Display.TickRate = flagFPS
	}
	return cfg, nil
}

// levelLoader returns the loader selected by --levels.
func levelLoader() *level.Loader {
	if flagLevelsDir != "" {
		return level.NewDirLoader(flagLevelsDir)
	}
	return level.NewEmbeddedLoader()
}

// mustOpenStore opens the progress database or exits.
func mustOpenStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fatal("opening progress database: %v", err)
	}
	return store
}
