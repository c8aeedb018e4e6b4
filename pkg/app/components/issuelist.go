package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/kerbaras/comicmeta/pkg/app/styles"
	"github.com/kerbaras/comicmeta/pkg/data"
)

type IssueList struct {
	Items         []*data.Entry
	SelectedIndex int
	Width         int
	Height        int
}

func NewIssueList() *IssueList {
	return &IssueList{
		Items:         []*data.Entry{},
		SelectedIndex: 0,
	}
}

func (l *IssueList) SetItems(items []*data.Entry) {
	l.Items = items
	if l.SelectedIndex >= len(items) {
		l.SelectedIndex = 0
	}
}

func (l *IssueList) Next() {
	if l.SelectedIndex < len(l.Items)-1 {
		l.SelectedIndex++
	}
}

func (l *IssueList) Prev() {
	if l.SelectedIndex > 0 {
		l.SelectedIndex--
	}
	if l.SelectedIndex >= len(l.Items) {
		l.SelectedIndex = len(l.Items) - 1
	}
}

func (l *IssueList) Selected() *data.Entry {
	if len(l.Items) == 0 || l.SelectedIndex >= len(l.Items) {
		return nil
	}
	return l.Items[l.SelectedIndex]
}

func (l *IssueList) View() string {
	if len(l.Items) == 0 {
		emptyMsg := styles.MutedStyle.Render("No issues in catalog")
		return lipgloss.Place(l.Width, l.Height, lipgloss.Center, lipgloss.Center, emptyMsg)
	}

	var b strings.Builder

	for i, entry := range l.Items {
		cardStyle := styles.CardStyle
		if i == l.SelectedIndex {
			cardStyle = styles.ActiveCardStyle
		}

		// Build card content
		title := styles.TitleStyle.Render(entry.DisplayTitle())

		pageInfo := styles.MutedStyle.Render(fmt.Sprintf("Pages: %d", entry.PageCount))

		var credits string
		if entry.Writer != "" {
			credits = fmt.Sprintf("by %s", entry.Writer)
		}
		if entry.Publisher != "" {
			if credits != "" {
				credits += " • "
			}
			credits += entry.Publisher
		}
		if entry.Year > 0 {
			if credits != "" {
				credits += " • "
			}
			credits += fmt.Sprintf("%d", entry.Year)
		}
		creditLine := styles.TextStyle.Render(credits)

		path := styles.MutedStyle.Render(entry.Path)

		cardContent := lipgloss.JoinVertical(
			lipgloss.Left,
			title,
			creditLine,
			"",
			pageInfo,
			path,
		)

		card := cardStyle.Width(l.Width - 4).Render(cardContent)
		b.WriteString(card)
		b.WriteString("\n")
	}

	return b.String()
}
