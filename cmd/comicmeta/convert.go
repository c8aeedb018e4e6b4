package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/kerbaras/comicmeta/pkg/comicinfo"
	"github.com/spf13/cobra"
)

var convertCmd = &cobra.Command{
	Use:   "convert [input] [output]",
	Short: "Convert metadata between XML and JSON",
	Long:  "Read a ComicInfo file in one format and write it in the other, picked by extension",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		input, output := args[0], args[1]

		issue, err := loadMetadata(input)
		cobra.CheckErr(err)

		var out []byte
		if strings.HasSuffix(strings.ToLower(output), ".json") {
			out, err = comicinfo.ToJSON(issue)
		} else {
			var text string
			text, err = comicinfo.WriteXML(issue)
			out = []byte(text)
		}
		cobra.CheckErr(err)

		cobra.CheckErr(os.WriteFile(output, out, 0644))
		fmt.Printf("✅ Wrote %s\n", output)
	},
}
