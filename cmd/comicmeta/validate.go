package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/kerbaras/comicmeta/pkg/comicinfo"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate [file...]",
	Short: "Validate ComicInfo metadata files",
	Long:  "Parse one or more ComicInfo files and report any schema violations",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		failed := 0
		for _, path := range args {
			_, err := loadMetadata(path)
			if err != nil {
				failed++
				fmt.Printf("❌ %s: [%s] %s\n", path, errorKind(err), err)
				continue
			}
			fmt.Printf("✅ %s\n", path)
		}

		if failed > 0 {
			fmt.Printf("\n%d of %d files failed validation\n", failed, len(args))
			os.Exit(1)
		}
		fmt.Printf("\nAll %d files valid\n", len(args))
	},
}

// errorKind labels the failure category for CLI output.
func errorKind(err error) string {
	var (
		parseErr  *comicinfo.ParseError
		fileErr   *comicinfo.FileError
		enumErr   *comicinfo.InvalidEnumError
		rangeErr  *comicinfo.RangeError
		coerceErr *comicinfo.TypeCoercionError
		schemaErr *comicinfo.SchemaError
	)
	switch {
	case errors.As(err, &enumErr):
		return "invalid enum"
	case errors.As(err, &rangeErr):
		return "out of range"
	case errors.As(err, &coerceErr):
		return "bad value"
	case errors.As(err, &schemaErr):
		return "schema"
	case errors.As(err, &parseErr):
		return "parse"
	case errors.As(err, &fileErr):
		return "file"
	default:
		return "error"
	}
}
