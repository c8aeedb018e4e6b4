package screens

import (
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/kerbaras/comicmeta/pkg/app/components"
	"github.com/kerbaras/comicmeta/pkg/app/styles"
	"github.com/kerbaras/comicmeta/pkg/services"
)

type ScanScreen struct {
	scanner  *services.Scanner
	input    textinput.Model
	tracker  *components.ScanTracker
	scanning bool
	result   *services.ScanResult
	width    int
	height   int
	err      error
}

func NewScanScreen(scanner *services.Scanner) *ScanScreen {
	ti := textinput.New()
	ti.Placeholder = "Path to comic library..."
	ti.Focus()
	ti.CharLimit = 200
	ti.Width = 50

	return &ScanScreen{
		scanner: scanner,
		input:   ti,
		tracker: components.NewScanTracker(80),
	}
}

func (s *ScanScreen) Init() tea.Cmd {
	return textinput.Blink
}

func (s *ScanScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.width = msg.Width
		s.height = msg.Height
		s.tracker = components.NewScanTracker(msg.Width - 4)

	case tea.KeyMsg:
		// Ignore input while a scan is running
		if s.scanning {
			return s, nil
		}

		switch msg.String() {
		case "enter":
			path := s.input.Value()
			if path != "" {
				s.scanning = true
				s.result = nil
				s.err = nil
				s.tracker.Clear()
				return s, tea.Batch(s.runScan(path), s.listenForProgress)
			}
		}

	case services.ScanProgress:
		s.tracker.Update(msg)
		return s, s.listenForProgress

	case scanFinishedMsg:
		s.scanning = false
		s.result = msg.result
		s.err = msg.err
		return s, nil
	}

	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

func (s *ScanScreen) View() string {
	if s.width == 0 {
		return "Loading..."
	}

	header := styles.TitleStyle.Render("🔍 Scan Library")

	inputStyle := styles.FocusedInputStyle
	if s.scanning {
		inputStyle = styles.InputStyle
	}
	inputView := inputStyle.Render(s.input.View())

	var status string
	if s.scanning {
		status = styles.StatusScanning.Render("Scanning...")
	} else if s.err != nil {
		status = styles.StatusError.Render(fmt.Sprintf("Error: %s", s.err))
	} else if s.result != nil {
		status = styles.StatusCompleted.Render(
			fmt.Sprintf("Done: %d scanned, %d failed", s.result.Scanned, s.result.Failed),
		)
	}

	progressView := s.tracker.View()

	help := styles.HelpStyle.Render(
		"enter: scan • tab: switch view • q: quit",
	)

	return fmt.Sprintf("%s\n\n%s\n\n%s\n\n%s\n%s",
		header, inputView, status, progressView, help)
}

// Messages
type SwitchScreenMsg struct {
	Screen string
	Data   interface{}
}

type scanFinishedMsg struct {
	result *services.ScanResult
	err    error
}

// Commands
func (s *ScanScreen) runScan(path string) tea.Cmd {
	return func() tea.Msg {
		result, err := s.scanner.Scan(path)
		return scanFinishedMsg{result: &result, err: err}
	}
}

func (s *ScanScreen) listenForProgress() tea.Msg {
	return <-s.scanner.GetProgressChannel()
}
