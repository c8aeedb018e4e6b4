package screens

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/kerbaras/comicmeta/pkg/app/styles"
	"github.com/kerbaras/comicmeta/pkg/data"
	"github.com/kerbaras/comicmeta/pkg/services"
)

type screenType int

const (
	libraryView screenType = iota
	scanView
	detailsView
)

type RootScreen struct {
	repo    *data.Repository
	scanner *services.Scanner

	currentView screenType
	library     *LibraryScreen
	scan        *ScanScreen
	details     *DetailsScreen

	width  int
	height int
}

func NewRootScreen() *RootScreen {
	// Initialize dependencies
	repo := data.NewDuckDBRepository()
	scanner := services.NewScanner(repo, nil)

	// Create screens
	library := NewLibraryScreen(repo)
	scan := NewScanScreen(scanner)

	return &RootScreen{
		repo:        repo,
		scanner:     scanner,
		currentView: libraryView,
		library:     library,
		scan:        scan,
	}
}

func (r *RootScreen) Init() tea.Cmd {
	return r.library.Init()
}

func (r *RootScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		r.width = msg.Width
		r.height = msg.Height

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return r, tea.Quit
		case "tab":
			// Cycle through views
			if r.currentView == detailsView {
				// Can't tab away from details, use esc
				break
			}
			r.currentView = (r.currentView + 1) % 2
			if r.currentView == scanView {
				cmd = r.scan.Init()
			} else {
				cmd = r.library.Init()
			}
			return r, cmd
		}

	case SwitchScreenMsg:
		// Handle screen switching from sub-screens
		switch msg.Screen {
		case "library":
			r.currentView = libraryView
			cmd = r.library.Init()
		case "scan":
			r.currentView = scanView
			cmd = r.scan.Init()
		case "details":
			if path, ok := msg.Data.(string); ok {
				r.details = NewDetailsScreen(r.repo, path)
				r.currentView = detailsView
				cmd = r.details.Init()
			}
		}
		return r, cmd
	}

	// Forward message to active screen
	switch r.currentView {
	case libraryView:
		newModel, newCmd := r.library.Update(msg)
		r.library = newModel.(*LibraryScreen)
		return r, newCmd
	case scanView:
		newModel, newCmd := r.scan.Update(msg)
		r.scan = newModel.(*ScanScreen)
		return r, newCmd
	case detailsView:
		if r.details != nil {
			newModel, newCmd := r.details.Update(msg)
			r.details = newModel.(*DetailsScreen)
			return r, newCmd
		}
	}

	return r, cmd
}

func (r *RootScreen) View() string {
	// Render tabs
	tabs := r.renderTabs()

	// Render active screen
	var content string
	switch r.currentView {
	case libraryView:
		content = r.library.View()
	case scanView:
		content = r.scan.View()
	case detailsView:
		if r.details != nil {
			content = r.details.View()
		}
	}

	return fmt.Sprintf("%s\n\n%s", tabs, content)
}

func (r *RootScreen) renderTabs() string {
	if r.currentView == detailsView {
		// Don't show tabs in details view
		return ""
	}

	libraryTab := "Library"
	scanTab := "Scan"

	if r.currentView == libraryView {
		libraryTab = styles.ActiveTabStyle.Render(libraryTab)
		scanTab = styles.InactiveTabStyle.Render(scanTab)
	} else {
		libraryTab = styles.InactiveTabStyle.Render(libraryTab)
		scanTab = styles.ActiveTabStyle.Render(scanTab)
	}

	tabs := lipgloss.JoinHorizontal(lipgloss.Top, libraryTab, scanTab)
	return tabs
}
