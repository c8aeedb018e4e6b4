package cmd

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
	"github.com/kerbaras/comicmeta/pkg/data"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all issues in the catalog",
	Long:  "Display all cataloged issues in a formatted table",
	Run: func(cmd *cobra.Command, args []string) {
		repo := data.NewDuckDBRepository()
		entries, err := repo.ListEntries()
		if err != nil {
			cobra.CheckErr(err)
		}

		if len(entries) == 0 {
			fmt.Println("📚 Catalog is empty. Use 'comicmeta scan' to index a library.")
			return
		}

		// Create table columns
		columns := []table.Column{
			{Title: "Series", Width: 30},
			{Title: "Number", Width: 8},
			{Title: "Title", Width: 30},
			{Title: "Writer", Width: 20},
			{Title: "Year", Width: 6},
			{Title: "Pages", Width: 7},
		}

		rows := []table.Row{}
		for _, entry := range entries {
			year := ""
			if entry.Year > 0 {
				year = fmt.Sprintf("%d", entry.Year)
			}

			rows = append(rows, table.Row{
				truncateString(entry.Series, 28),
				entry.Number,
				truncateString(entry.Title, 28),
				truncateString(entry.Writer, 18),
				year,
				fmt.Sprintf("%d", entry.PageCount),
			})
		}

		t := table.New(
			table.WithColumns(columns),
			table.WithRows(rows),
			table.WithFocused(false),
			table.WithHeight(len(rows)),
		)

		s := table.DefaultStyles()
		s.Header = s.Header.
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("240")).
			BorderBottom(true).
			Bold(true)
		s.Selected = s.Selected.
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57")).
			Bold(false)
		t.SetStyles(s)

		fmt.Printf("\n📚 Catalog (%d issues)\n\n", len(entries))
		fmt.Println(t.View())
	},
}

func truncateString(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
