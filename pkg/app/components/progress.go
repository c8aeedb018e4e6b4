package components

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/kerbaras/comicmeta/pkg/app/styles"
	"github.com/kerbaras/comicmeta/pkg/services"
)

type ScanTracker struct {
	active  map[string]*services.ScanProgress
	scanned int
	failed  int
	width   int
}

func NewScanTracker(width int) *ScanTracker {
	return &ScanTracker{
		active: make(map[string]*services.ScanProgress),
		width:  width,
	}
}

func (p *ScanTracker) Update(progress services.ScanProgress) {
	switch progress.Status {
	case "complete":
		delete(p.active, progress.Path)
		p.scanned++
	case "error":
		delete(p.active, progress.Path)
		p.failed++
	default:
		prog := progress // Copy
		p.active[progress.Path] = &prog
	}
}

func (p *ScanTracker) Clear() {
	p.active = make(map[string]*services.ScanProgress)
	p.scanned = 0
	p.failed = 0
}

func (p *ScanTracker) HasActive() bool {
	return len(p.active) > 0
}

func (p *ScanTracker) Scanned() int {
	return p.scanned
}

func (p *ScanTracker) Failed() int {
	return p.failed
}

func (p *ScanTracker) View() string {
	if len(p.active) == 0 && p.scanned == 0 && p.failed == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString(styles.TitleStyle.Render("Scanning Library"))
	b.WriteString("\n\n")

	for _, progress := range p.active {
		name := filepath.Base(filepath.Dir(progress.Path))
		if name == "." || name == "/" {
			name = progress.Path
		}

		b.WriteString(styles.TextStyle.Render(name))
		b.WriteString("\n")

		statusStyle := styles.StatusStyle(progress.Status)
		b.WriteString(statusStyle.Render(progress.Status))
		b.WriteString("\n")

		if progress.Error != nil {
			errMsg := styles.StatusError.Render(fmt.Sprintf("Error: %s", progress.Error))
			b.WriteString(errMsg)
			b.WriteString("\n")
		}

		b.WriteString("\n")
	}

	summary := fmt.Sprintf("%d scanned", p.scanned)
	if p.failed > 0 {
		summary = fmt.Sprintf("%s, %d failed", summary, p.failed)
	}
	b.WriteString(styles.MutedStyle.Render(summary))
	b.WriteString("\n")

	return b.String()
}
