package screens

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/kerbaras/comicmeta/pkg/app/components"
	"github.com/kerbaras/comicmeta/pkg/app/styles"
	"github.com/kerbaras/comicmeta/pkg/data"
)

type LibraryScreen struct {
	repo      *data.Repository
	issueList *components.IssueList
	width     int
	height    int
	err       error
}

func NewLibraryScreen(repo *data.Repository) *LibraryScreen {
	return &LibraryScreen{
		repo:      repo,
		issueList: components.NewIssueList(),
	}
}

func (s *LibraryScreen) Init() tea.Cmd {
	return s.loadCatalog
}

func (s *LibraryScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.width = msg.Width
		s.height = msg.Height
		s.issueList.Width = msg.Width - 4
		s.issueList.Height = msg.Height - 10

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			s.issueList.Prev()
		case "down", "j":
			s.issueList.Next()
		case "r":
			return s, s.loadCatalog
		case "d":
			// Remove selected entry from catalog
			selected := s.issueList.Selected()
			if selected != nil {
				return s, s.deleteEntry(selected.Path)
			}
		case "enter":
			// Switch to details view for the selected entry
			selected := s.issueList.Selected()
			if selected != nil {
				return s, func() tea.Msg {
					return SwitchScreenMsg{Screen: "details", Data: selected.Path}
				}
			}
		}

	case catalogLoadedMsg:
		s.issueList.SetItems(msg.entries)
		s.err = msg.err

	case entryDeletedMsg:
		if msg.err != nil {
			s.err = msg.err
		}
		return s, s.loadCatalog
	}

	return s, nil
}

func (s *LibraryScreen) View() string {
	if s.width == 0 {
		return "Loading..."
	}

	header := styles.TitleStyle.Render("📚 Comic Catalog")

	var errorMsg string
	if s.err != nil {
		errorMsg = styles.StatusError.Render(fmt.Sprintf("Error: %s", s.err))
		errorMsg += "\n\n"
	}

	listView := s.issueList.View()

	help := styles.HelpStyle.Render(
		"↑/k: up • ↓/j: down • enter: details • d: remove • r: refresh • tab: switch view • q: quit",
	)

	content := fmt.Sprintf("%s\n\n%s%s\n%s", header, errorMsg, listView, help)

	return content
}

// Messages
type catalogLoadedMsg struct {
	entries []*data.Entry
	err     error
}

type entryDeletedMsg struct {
	err error
}

// Commands
func (s *LibraryScreen) loadCatalog() tea.Msg {
	entries, err := s.repo.ListEntries()
	if err != nil {
		return catalogLoadedMsg{err: err}
	}

	return catalogLoadedMsg{entries: entries}
}

func (s *LibraryScreen) deleteEntry(path string) tea.Cmd {
	return func() tea.Msg {
		err := s.repo.DeleteEntry(path)
		return entryDeletedMsg{err: err}
	}
}
