package screens

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/kerbaras/comicmeta/pkg/app/styles"
	"github.com/kerbaras/comicmeta/pkg/comicinfo"
	"github.com/kerbaras/comicmeta/pkg/data"
	"github.com/kerbaras/comicmeta/pkg/integrations"
)

type DetailsScreen struct {
	repo         *data.Repository
	path         string
	entry        *data.Entry
	issue        *comicinfo.Issue
	selectedPage int
	width        int
	height       int
	err          error
}

func NewDetailsScreen(repo *data.Repository, path string) *DetailsScreen {
	return &DetailsScreen{
		repo: repo,
		path: path,
	}
}

func (s *DetailsScreen) Init() tea.Cmd {
	return s.loadDetails
}

func (s *DetailsScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.width = msg.Width
		s.height = msg.Height

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if s.selectedPage > 0 {
				s.selectedPage--
			}
		case "down", "j":
			if s.issue != nil && s.selectedPage < len(s.issue.Pages)-1 {
				s.selectedPage++
			}
		case "r":
			return s, s.loadDetails
		case "esc", "backspace":
			// Go back to library
			return s, func() tea.Msg {
				return SwitchScreenMsg{Screen: "library", Data: nil}
			}
		}

	case issueLoadedMsg:
		s.entry = msg.entry
		s.issue = msg.issue
		s.err = msg.err
	}

	return s, nil
}

func (s *DetailsScreen) View() string {
	if s.width == 0 || s.entry == nil {
		return "Loading..."
	}

	header := styles.TitleStyle.Render(fmt.Sprintf("📖 %s", s.entry.DisplayTitle()))

	var errorMsg string
	if s.err != nil {
		errorMsg = styles.StatusError.Render(fmt.Sprintf("Error: %s", s.err))
		errorMsg += "\n\n"
	}

	info := s.renderIssueInfo()
	pagesList := s.renderPagesList()

	help := styles.HelpStyle.Render(
		"↑/k ↓/j: navigate pages • r: refresh • esc: back • q: quit",
	)

	content := fmt.Sprintf("%s\n\n%s%s\n%s\n%s",
		header,
		errorMsg,
		info,
		pagesList,
		help,
	)

	return content
}

func (s *DetailsScreen) renderIssueInfo() string {
	if s.issue == nil {
		return styles.MutedStyle.Render("Metadata unavailable")
	}

	var lines []string

	if s.issue.Summary != nil {
		desc := *s.issue.Summary
		if len(desc) > 200 {
			desc = desc[:197] + "..."
		}
		lines = append(lines, styles.TextStyle.Render(desc), "")
	}

	fields := []struct {
		label string
		value *string
	}{
		{"Writer", s.issue.Writer},
		{"Penciller", s.issue.Penciller},
		{"Publisher", s.issue.Publisher},
		{"Imprint", s.issue.Imprint},
		{"Genre", s.issue.Genre},
		{"Format", s.issue.Format},
		{"Language", s.issue.LanguageISO},
		{"Story Arc", s.issue.StoryArc},
	}
	for _, f := range fields {
		if f.value != nil {
			lines = append(lines, styles.MutedStyle.Render(fmt.Sprintf("%s: %s", f.label, *f.value)))
		}
	}

	if date, ok := s.issue.PublicationDate(); ok {
		lines = append(lines, styles.MutedStyle.Render(fmt.Sprintf("Published: %s", date.Format("2006-01-02"))))
	}

	if s.issue.CommunityRating != nil {
		lines = append(lines, styles.MutedStyle.Render(fmt.Sprintf("Rating: %.1f/5", *s.issue.CommunityRating)))
	}

	if s.issue.IsManga() {
		direction := "left to right"
		if s.issue.IsRightToLeft() {
			direction = "right to left"
		}
		lines = append(lines, styles.SubtitleStyle.Render(fmt.Sprintf("Manga (%s)", direction)))
	}

	if len(lines) == 0 {
		return styles.MutedStyle.Render("No metadata fields set")
	}

	info := lipgloss.JoinVertical(lipgloss.Left, lines...)
	return styles.CardStyle.Width(s.width - 4).Render(info)
}

func (s *DetailsScreen) renderPagesList() string {
	if s.issue == nil || !s.issue.HasPages() {
		return styles.MutedStyle.Render("No page records")
	}

	pages := s.issue.Pages

	var b strings.Builder
	b.WriteString(styles.SubtitleStyle.Render(fmt.Sprintf("Pages (%d total):", len(pages))))
	b.WriteString("\n\n")

	// Show a window of pages around the selection
	start := 0
	end := len(pages)
	if end > 10 {
		start = s.selectedPage - 5
		if start < 0 {
			start = 0
		}
		end = start + 10
		if end > len(pages) {
			end = len(pages)
			start = end - 10
			if start < 0 {
				start = 0
			}
		}
	}

	for i := start; i < end; i++ {
		p := pages[i]
		pageText := fmt.Sprintf("Page %d", p.Image)
		if p.Type != comicinfo.PageTypeStory {
			pageText = fmt.Sprintf("%s (%s)", pageText, p.Type)
		}
		if p.DimensionsAvailable() {
			pageText = fmt.Sprintf("%s %dx%d", pageText, p.ImageWidth, p.ImageHeight)
		}
		if p.HasBookmark() {
			pageText = fmt.Sprintf("%s: %s", pageText, p.Bookmark)
		}

		statusIcon := "○"
		statusColor := styles.MutedStyle
		if p.IsCover() {
			statusIcon = "●"
			statusColor = styles.StatusCompleted
		}

		line := fmt.Sprintf("%s %s", statusIcon, pageText)

		if i == s.selectedPage {
			line = styles.SelectedStyle.Render(line)
		} else {
			line = statusColor.Render(line)
		}

		b.WriteString(line)
		b.WriteString("\n")
	}

	if len(pages) > 10 {
		b.WriteString("\n")
		b.WriteString(styles.MutedStyle.Render(
			fmt.Sprintf("Showing %d-%d of %d pages", start+1, end, len(pages)),
		))
	}

	return b.String()
}

// Messages
type issueLoadedMsg struct {
	entry *data.Entry
	issue *comicinfo.Issue
	err   error
}

// Commands
func (s *DetailsScreen) loadDetails() tea.Msg {
	entry, err := s.repo.GetEntry(s.path)
	if err != nil {
		return issueLoadedMsg{err: err}
	}
	if entry == nil {
		return issueLoadedMsg{err: fmt.Errorf("entry not found")}
	}

	var issue *comicinfo.Issue
	if strings.HasSuffix(strings.ToLower(s.path), ".cbz") {
		issue, err = integrations.ReadCBZ(s.path)
	} else {
		issue, err = comicinfo.LoadFile(s.path)
	}
	if err != nil {
		return issueLoadedMsg{entry: entry, err: err}
	}

	return issueLoadedMsg{entry: entry, issue: issue}
}
