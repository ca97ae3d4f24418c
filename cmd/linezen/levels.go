package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/linezen/internal/level"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List available levels",
	Long: `Shows the levels of the built-in pack, or of --levels <dir>.

Examples:
  linezen levels
  linezen levels --levels ./my-levels
  linezen levels validate ./my-levels/*.txt`,
	Args: cobra.NoArgs,
	Run:  runLevels,
}

var levelsValidateCmd = &cobra.Command{
	Use:   "validate <file>...",
	Short: "Check level files for errors",
	Args:  cobra.MinimumNArgs(1),
	Run:   runLevelsValidate,
}

func init() {
	levelsCmd.AddCommand(levelsValidateCmd)
}

func runLevels(_ *cobra.Command, _ []string) {
	loader := levelLoader()
	ids, err := loader.ListIDs()
	if err != nil {
		fatal("listing levels: %v", err)
	}

	if len(ids) == 0 {
		fmt.Println("No levels available.")
		return
	}

	fmt.Println("Available levels:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, id := range ids {
		if len(id) > maxIDLen {
			maxIDLen = len(id)
		}
	}

	fmt.Printf("  %-*s  %-7s  %-6s  %s\n", maxIDLen, "ID", "Bubbles", "Guides", "Name")
	fmt.Printf("  %-*s  %-7s  %-6s  %s\n", maxIDLen, "--", "-------", "------", "----")

	broken := 0
	for _, id := range ids {
		asset, err := loader.Load(id)
		if err != nil {
			fatal("loading %s: %v", id, err)
		}
		lvl, err := asset.Parse()
		if err != nil {
			fmt.Printf("  %-*s  %s\n", maxIDLen, id, err)
			broken++
			continue
		}
		fmt.Printf("  %-*s  %-7d  %-6d  %s\n", maxIDLen, id, len(lvl.Bubbles), len(lvl.GuideLines), lvl.Name)
	}

	if broken > 0 {
		fmt.Println()
		fmt.Printf("%d level(s) failed to parse.\n", broken)
	}
}

func runLevelsValidate(_ *cobra.Command, args []string) {
	failed := 0
	for _, path := range args {
		data, err := os.ReadFile(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", path, err)
			failed++
			continue
		}

		asset := &level.Asset{
			ID:   strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)),
			Text: string(data),
		}
		lvl, err := asset.Parse()
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", path, err)
			failed++
			continue
		}
		fmt.Printf("%s: ok (%d bubbles, %d guide lines)\n", path, len(lvl.Bubbles), len(lvl.GuideLines))
	}

	if failed > 0 {
		fatal("%d of %d level file(s) invalid", failed, len(args))
	}
}
