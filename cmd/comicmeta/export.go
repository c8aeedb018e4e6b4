package cmd

import (
	"fmt"

	"github.com/kerbaras/comicmeta/pkg/services"
	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export [metadata-file] [images-dir]",
	Short: "Export a comic as EPUB",
	Long:  "Build an EPUB from a ComicInfo file and a directory of page images",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		controller := services.NewController(nil)

		path, err := controller.ExportEPUB(args[0], args[1])
		cobra.CheckErr(err)

		fmt.Printf("📦 Wrote %s\n", path)
	},
}
