package main

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

var flagResetRounds bool

var progressCmd = &cobra.Command{
	Use:   "progress",
	Short: "Show stored progress",
	Long: `Shows the progress record of --profile.

Examples:
  linezen progress
  linezen progress --profile alice
  linezen progress list
  linezen progress reset --rounds`,
	Args: cobra.NoArgs,
	Run:  runProgress,
}

var progressListCmd = &cobra.Command{
	Use:   "list",
	Short: "List every stored profile",
	Args:  cobra.NoArgs,
	Run:   runProgressList,
}

var progressResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Reset the progress of --profile",
	Args:  cobra.NoArgs,
	Run:   runProgressReset,
}

func init() {
	progressResetCmd.Flags().BoolVar(&flagResetRounds, "rounds", false, "Also clear the profile's rounds history")
	progressCmd.AddCommand(progressListCmd)
	progressCmd.AddCommand(progressResetCmd)
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

func runProgress(_ *cobra.Command, _ []string) {
	store := mustOpenStore()
	defer store.Close()

	p, found, err := store.ReadProgress(flagProfile)
	if err != nil {
		store.Close()
		fatal("reading progress: %v", err)
	}

	fmt.Printf("Profile:         %s\n", flagProfile)
	if !found {
		fmt.Println("                 (never played, showing defaults)")
	}
	fmt.Printf("Score:           %s\n", humanize.Comma(int64(p.Score)))
	fmt.Printf("Infinite level:  %d\n", p.Level+1)
	fmt.Printf("Help:            %s\n", onOff(p.DisplayHelp))
	fmt.Printf("Particles:       %s\n", onOff(p.DisplayParticles))
}

func runProgressList(_ *cobra.Command, _ []string) {
	store := mustOpenStore()
	defer store.Close()

	entries, err := store.Profiles()
	if err != nil {
		store.Close()
		fatal("listing profiles: %v", err)
	}

	if len(entries) == 0 {
		fmt.Println("No profiles stored yet.")
		return
	}

	fmt.Printf("  %-16s  %-10s  %-5s  %s\n", "Profile", "Score", "Level", "Updated")
	fmt.Printf("  %-16s  %-10s  %-5s  %s\n", "-------", "-----", "-----", "-------")
	for _, e := range entries {
		fmt.Printf("  %-16s  %-10s  %-5d  %s\n",
			e.Profile, humanize.Comma(int64(e.Progress.Score)), e.Progress.Level+1, humanize.Time(e.UpdatedAt))
	}
}

func runProgressReset(_ *cobra.Command, _ []string) {
	store := mustOpenStore()
	defer store.Close()

	if err := store.ResetProgress(flagProfile); err != nil {
		store.Close()
		fatal("resetting progress: %v", err)
	}
	if flagResetRounds {
		if err := store.ClearRounds(flagProfile); err != nil {
			store.Close()
			fatal("clearing rounds: %v", err)
		}
	}
	fmt.Printf("Progress of %s reset.\n", flagProfile)
}
