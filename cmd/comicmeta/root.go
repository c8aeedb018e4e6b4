package cmd

import (
	"os"

	"github.com/kerbaras/comicmeta/pkg/app"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "comicmeta",
	Short: "A comic book metadata toolkit",
	Long:  "Inspect, validate and catalog ComicInfo.xml metadata with a CLI and TUI",
	Run: func(cmd *cobra.Command, args []string) {
		// Launch TUI by default
		a := app.NewApp()
		if err := a.Run(); err != nil {
			cobra.CheckErr(err)
		}
	},
}

func init() {
	// Add all subcommands
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(convertCmd)
	rootCmd.AddCommand(scanCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(exportCmd)
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
