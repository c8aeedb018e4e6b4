package cmd

import (
	"fmt"

	"github.com/kerbaras/comicmeta/pkg/data"
	"github.com/kerbaras/comicmeta/pkg/services"
	"github.com/spf13/cobra"
)

var scanCmd = &cobra.Command{
	Use:   "scan [directory]",
	Short: "Scan a directory into the catalog",
	Long:  "Walk a directory for ComicInfo.xml files and .cbz archives and catalog their metadata",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		repo := data.NewDuckDBRepository()
		scanner := services.NewScanner(repo, nil)
		defer scanner.Close()

		fmt.Printf("🔍 Scanning %s...\n", args[0])

		result, err := scanner.Scan(args[0])
		cobra.CheckErr(err)

		fmt.Printf("✅ Cataloged %d issues", result.Scanned)
		if result.Failed > 0 {
			fmt.Printf(" (%d files failed)", result.Failed)
		}
		fmt.Println()
	},
}
