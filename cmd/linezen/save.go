package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var saveCmd = &cobra.Command{
	Use:   "save",
	Short: "Export or import a save blob",
	Long: `A save blob is a single line of text holding the progress of a profile.
Copy it to another machine and import it there.

Examples:
  linezen save export > linezen.save
  linezen save import "$(cat linezen.save)"
  linezen save import - < linezen.save
  linezen save import --profile alice -  < linezen.save`,
}

var saveExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Print the save blob of --profile",
	Args:  cobra.NoArgs,
	Run:   runSaveExport,
}

var saveImportCmd = &cobra.Command{
	Use:   "import <blob|->",
	Short: "Replace the progress of --profile with a save blob",
	Args:  cobra.ExactArgs(1),
	Run:   runSaveImport,
}

func init() {
	saveCmd.AddCommand(saveExportCmd)
	saveCmd.AddCommand(saveImportCmd)
}

func runSaveExport(_ *cobra.Command, _ []string) {
	store := mustOpenStore()
	defer store.Close()

	blob, err := store.ExportSave(flagProfile)
	if err != nil {
		store.Close()
		fatal("exporting save: %v", err)
	}
	fmt.Println(blob)
}

func runSaveImport(_ *cobra.Command, args []string) {
	blob := args[0]
	if blob == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			fatal("reading save from stdin: %v", err)
		}
		blob = string(data)
	}
	blob = strings.TrimSpace(blob)

	store := mustOpenStore()
	defer store.Close()

	p, err := store.ImportSave(flagProfile, blob)
	if err != nil {
		store.Close()
		fatal("importing save: %v", err)
	}
	fmt.Printf("Imported into %s: score %d, infinite level %d\n", flagProfile, p.Score, p.Level+1)
}
