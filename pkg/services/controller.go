package services

import (
	"fmt"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/kerbaras/comicmeta/pkg/data"
	"github.com/kerbaras/comicmeta/pkg/integrations"
)

// Controller wires the catalog, scanner and exporter together for the
// CLI and TUI layers.
type Controller struct {
	repo     Repository
	scanner  *Scanner
	exporter integrations.Exporter
}

func NewController(log *zap.Logger) *Controller {
	repo := data.NewDuckDBRepository()
	return &Controller{
		repo:     repo,
		scanner:  NewScanner(repo, log),
		exporter: integrations.NewEPubBuilder(),
	}
}

func (c *Controller) Repository() Repository { return c.repo }
func (c *Controller) Scanner() *Scanner      { return c.scanner }

// ExportEPUB renders a cataloged issue's images directory to an EPUB
// next to it, named after the entry.
func (c *Controller) ExportEPUB(entryPath, imagesDir string) (string, error) {
	issue, err := c.scanner.loadIssue(entryPath)
	if err != nil {
		return "", err
	}

	entry := data.NewEntry(entryPath, issue)
	name := integrations.SafeFilename(entry.DisplayTitle()) + ".epub"
	outputPath := filepath.Join(filepath.Dir(entryPath), name)

	if err := c.exporter.Export(issue, imagesDir, outputPath); err != nil {
		return "", fmt.Errorf("failed to export %s: %w", entryPath, err)
	}
	return outputPath, nil
}
