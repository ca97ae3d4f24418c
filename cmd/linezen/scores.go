package main

import (
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/linezen/internal/platform/tui"
)

var (
	flagScoresAll   bool
	flagScoresLimit int
	flagScoresBoard bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the best recorded lines",
	Long: `Display the best lines of the current profile, or of everyone with --all.

Examples:
  linezen scores
  linezen scores --all --limit 20
  linezen scores --profile alice
  linezen scores --board`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagScoresAll, "all", false, "Include every profile")
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of lines to show")
	scoresCmd.Flags().BoolVar(&flagScoresBoard, "board", false, "Open the interactive rounds board")
}

func runScores(_ *cobra.Command, _ []string) {
	store := mustOpenStore()
	defer store.Close()

	if flagScoresBoard {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width = w
			height = h
		}
		if err := tui.RunRoundsBoard(store, flagProfile, width, height); err != nil {
			store.Close()
			fatal("running rounds board: %v", err)
		}
		return
	}

	profile := flagProfile
	title := profile
	if flagScoresAll {
		profile = ""
		title = "all players"
	}

	rounds, err := store.TopRounds(profile, flagScoresLimit)
	if err != nil {
		store.Close()
		fatal("retrieving rounds: %v", err)
	}

	fmt.Printf("Best Lines - %s\n", title)
	fmt.Println()

	if len(rounds) == 0 {
		fmt.Println("No lines recorded yet.")
		fmt.Println()
		fmt.Println("Run 'linezen play' and pop some bubbles!")
		return
	}

	fmt.Printf("  %-4s  %-7s  %-4s  %-12s  %-10s  %-20s  %s\n", "Rank", "Total", "Pops", "Player", "Mode", "Level", "When")
	fmt.Printf("  %-4s  %-7s  %-4s  %-12s  %-10s  %-20s  %s\n", "----", "-----", "----", "------", "----", "-----", "----")

	for i, r := range rounds {
		fmt.Printf("  %-4d  %-7s  %-4d  %-12s  %-10s  %-20s  %s\n",
			i+1, humanize.Comma(int64(r.Total)), r.Hits, r.Profile, r.Mode, r.LevelName, humanize.Time(r.CreatedAt))
	}

	if flagScoresAll {
		return
	}

	stats, err := store.Stats(profile)
	if err == nil && stats.RoundsCount > 0 {
		fmt.Println()
		fmt.Printf("Lines: %s  Points: %s  Best: %s  Average: %.1f\n",
			humanize.Comma(int64(stats.RoundsCount)),
			humanize.Comma(stats.TotalScore),
			humanize.Comma(int64(stats.BestTotal)),
			stats.AvgTotal)
	}
}
