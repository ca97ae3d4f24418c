package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/linezen/internal/platform/tui"
	"github.com/vovakirdan/linezen/internal/storage"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the Line Zen SSH server",
	Long: `Start an SSH server that lets users connect and play.

Each SSH connection runs its own session. Progress is stored per SSH user
name, and every popped line lands in the shared rounds history.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.linezen/host_key

Examples:
  linezen serve                           # Listen on :23234 with auto-generated key
  linezen serve --ssh :2222               # Listen on port 2222
  linezen serve --host-key ./my_host_key  # Use specific host key
  linezen serve --db ./linezen.db         # Use specific database

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	Run:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
}

func runServe(_ *cobra.Command, _ []string) {
	gameCfg, err := loadGameConfig()
	if err != nil {
		fatal("%v", err)
	}
	logger := newLogger(os.Stderr)

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open progress database", "error", err)
		// Sessions keep progress in memory
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	cfg := tui.SSHServerConfig{
		Address:     flagSSHAddr,
		HostKeyPath: flagHostKey,
		IdleTimeout: time.Duration(flagIdleTimeout) * time.Minute,
		Game:        gameCfg,
		TickRate:    flagFPS,
	}

	server, err := tui.NewSSHServer(cfg, store, levelLoader(), logger)
	if err != nil {
		fatal("creating server: %v", err)
	}

	fmt.Printf("Starting Line Zen SSH server on %s\n", cfg.Address)
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		fatal("server: %v", err)
	}
}
