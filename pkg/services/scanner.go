package services

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/kerbaras/comicmeta/pkg/comicinfo"
	"github.com/kerbaras/comicmeta/pkg/data"
	"github.com/kerbaras/comicmeta/pkg/integrations"
)

// ScanProgress represents the progress of a library scan
type ScanProgress struct {
	Path   string
	Status string // "parsing", "complete", "error"
	Error  error
}

// ScanResult summarizes a finished scan.
type ScanResult struct {
	Scanned int
	Failed  int
}

// Repository interface needed by the scanner
type Repository interface {
	SaveEntry(e *data.Entry) error
	GetEntry(path string) (*data.Entry, error)
	ListEntries() ([]*data.Entry, error)
	SearchEntries(query string) ([]*data.Entry, error)
	DeleteEntry(path string) error
}

// Scanner walks a library directory for ComicInfo.xml files and .cbz
// archives, parses each one and catalogs the result. Files are parsed
// concurrently; a file that fails to parse is logged and skipped rather
// than aborting the batch (each individual document still fails on its
// first error, per the parser's contract).
type Scanner struct {
	repo         Repository
	log          *zap.Logger
	workers      int
	progressChan chan ScanProgress
}

// NewScanner creates a Scanner persisting into repo.
func NewScanner(repo Repository, log *zap.Logger) *Scanner {
	if log == nil {
		log = zap.NewNop()
	}
	return &Scanner{
		repo:         repo,
		log:          log,
		workers:      4,
		progressChan: make(chan ScanProgress, 100),
	}
}

// GetProgressChannel returns the channel for receiving scan progress updates
func (s *Scanner) GetProgressChannel() <-chan ScanProgress {
	return s.progressChan
}

// Scan walks root and catalogs everything it can parse. The returned
// error covers the walk itself; per-file failures only count toward
// ScanResult.Failed.
func (s *Scanner) Scan(root string) (ScanResult, error) {
	candidates, err := s.collect(root)
	if err != nil {
		return ScanResult{}, fmt.Errorf("failed to walk %s: %w", root, err)
	}

	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		result    ScanResult
		semaphore = make(chan struct{}, s.workers)
	)

	for _, path := range candidates {
		wg.Add(1)
		go func(path string) {
			defer wg.Done()
			semaphore <- struct{}{}
			defer func() { <-semaphore }()

			err := s.scanFile(path)

			mu.Lock()
			if err != nil {
				result.Failed++
			} else {
				result.Scanned++
			}
			mu.Unlock()
		}(path)
	}

	wg.Wait()
	s.log.Info("Scan finished",
		zap.String("root", root),
		zap.Int("scanned", result.Scanned),
		zap.Int("failed", result.Failed))
	return result, nil
}

// collect gathers candidate paths in walk order.
func (s *Scanner) collect(root string) ([]string, error) {
	var candidates []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		name := strings.ToLower(d.Name())
		if name == "comicinfo.xml" || strings.HasSuffix(name, ".cbz") {
			candidates = append(candidates, path)
		}
		return nil
	})
	return candidates, err
}

// scanFile parses one candidate and catalogs it.
func (s *Scanner) scanFile(path string) error {
	s.sendProgress(ScanProgress{Path: path, Status: "parsing"})

	issue, err := s.loadIssue(path)
	if err != nil {
		s.log.Warn("Skipping unparseable file", zap.String("path", path), zap.Error(err))
		s.sendProgress(ScanProgress{Path: path, Status: "error", Error: err})
		return err
	}

	if err := s.repo.SaveEntry(data.NewEntry(path, issue)); err != nil {
		s.log.Error("Failed to catalog file", zap.String("path", path), zap.Error(err))
		s.sendProgress(ScanProgress{Path: path, Status: "error", Error: err})
		return err
	}

	s.sendProgress(ScanProgress{Path: path, Status: "complete"})
	return nil
}

func (s *Scanner) loadIssue(path string) (*comicinfo.Issue, error) {
	if strings.EqualFold(filepath.Ext(path), ".cbz") {
		return integrations.ReadCBZ(path)
	}
	return comicinfo.LoadFile(path)
}

// sendProgress sends a progress update (non-blocking)
func (s *Scanner) sendProgress(progress ScanProgress) {
	select {
	case s.progressChan <- progress:
	default:
		// Channel full, skip this update
	}
}

// Close releases the progress channel.
func (s *Scanner) Close() {
	close(s.progressChan)
}
