package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/kerbaras/comicmeta/pkg/comicinfo"
	"github.com/kerbaras/comicmeta/pkg/integrations"
	"github.com/spf13/cobra"
)

var showJSON bool

var showCmd = &cobra.Command{
	Use:   "show [file]",
	Short: "Show the metadata of a comic",
	Long:  "Parse a ComicInfo file and print its metadata fields",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		issue, err := loadMetadata(args[0])
		cobra.CheckErr(err)

		if showJSON {
			out, err := comicinfo.ToJSON(issue)
			cobra.CheckErr(err)
			fmt.Println(string(out))
			return
		}

		printIssue(issue)
	},
}

func init() {
	showCmd.Flags().BoolVar(&showJSON, "json", false, "print metadata as JSON")
}

// loadMetadata reads an issue from a ComicInfo XML file, a JSON
// projection, or a .cbz archive, picked by file extension.
func loadMetadata(path string) (*comicinfo.Issue, error) {
	lower := strings.ToLower(path)
	switch {
	case strings.HasSuffix(lower, ".cbz"):
		return integrations.ReadCBZ(path)
	case strings.HasSuffix(lower, ".json"):
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, &comicinfo.FileError{Message: fmt.Sprintf("could not read %s", path), Err: err}
		}
		return comicinfo.FromJSON(raw)
	default:
		return comicinfo.LoadFile(path)
	}
}

func printIssue(issue *comicinfo.Issue) {
	printField := func(label string, v *string) {
		if v != nil {
			fmt.Printf("  %-18s %s\n", label+":", *v)
		}
	}
	printIntField := func(label string, v *int) {
		if v != nil {
			fmt.Printf("  %-18s %d\n", label+":", *v)
		}
	}

	fmt.Println("📖 Issue")
	printField("Title", issue.Title)
	printField("Series", issue.Series)
	printField("Number", issue.Number)
	printIntField("Count", issue.Count)
	printIntField("Volume", issue.Volume)
	printField("Summary", issue.Summary)
	printIntField("Year", issue.Year)
	printIntField("Month", issue.Month)
	printIntField("Day", issue.Day)
	printField("Writer", issue.Writer)
	printField("Penciller", issue.Penciller)
	printField("Inker", issue.Inker)
	printField("Colorist", issue.Colorist)
	printField("Letterer", issue.Letterer)
	printField("Cover Artist", issue.CoverArtist)
	printField("Editor", issue.Editor)
	printField("Translator", issue.Translator)
	printField("Publisher", issue.Publisher)
	printField("Imprint", issue.Imprint)
	printField("Genre", issue.Genre)
	printField("Web", issue.Web)
	printIntField("Page Count", issue.PageCount)
	printField("Language", issue.LanguageISO)
	printField("Format", issue.Format)
	printField("Characters", issue.Characters)
	printField("Teams", issue.Teams)
	printField("Locations", issue.Locations)
	printField("Story Arc", issue.StoryArc)
	printField("Series Group", issue.SeriesGroup)
	printField("Scan Info", issue.ScanInformation)

	if issue.AgeRating != nil {
		fmt.Printf("  %-18s %s\n", "Age Rating:", *issue.AgeRating)
	}
	if issue.Manga != nil {
		fmt.Printf("  %-18s %s\n", "Manga:", *issue.Manga)
	}
	if issue.BlackAndWhite != nil {
		fmt.Printf("  %-18s %s\n", "Black & White:", *issue.BlackAndWhite)
	}
	if issue.CommunityRating != nil {
		fmt.Printf("  %-18s %.2f\n", "Rating:", *issue.CommunityRating)
	}

	if issue.HasPages() {
		fmt.Printf("\n📄 Pages: %d (%d covers, %d story)\n",
			len(issue.Pages), len(issue.CoverPages()), len(issue.StoryPages()))
	}
}
