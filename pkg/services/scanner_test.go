package services

import (
	"archive/zip"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"go.uber.org/zap"

	"github.com/kerbaras/comicmeta/pkg/data"
)

// Mock implementations for testing

type mockRepository struct {
	mu      sync.Mutex
	entries map[string]*data.Entry

	saveEntryFunc func(e *data.Entry) error
}

func newMockRepository() *mockRepository {
	return &mockRepository{entries: map[string]*data.Entry{}}
}

func (m *mockRepository) SaveEntry(e *data.Entry) error {
	if m.saveEntryFunc != nil {
		return m.saveEntryFunc(e)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[e.Path] = e
	return nil
}

func (m *mockRepository) GetEntry(path string) (*data.Entry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.entries[path], nil
}

func (m *mockRepository) ListEntries() ([]*data.Entry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*data.Entry
	for _, e := range m.entries {
		out = append(out, e)
	}
	return out, nil
}

func (m *mockRepository) SearchEntries(query string) ([]*data.Entry, error) {
	return m.ListEntries()
}

func (m *mockRepository) DeleteEntry(path string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.entries, path)
	return nil
}

func writeComicInfo(t *testing.T, dir, xml string) string {
	t.Helper()
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("Failed to create dir: %v", err)
	}
	path := filepath.Join(dir, "ComicInfo.xml")
	if err := os.WriteFile(path, []byte(xml), 0644); err != nil {
		t.Fatalf("Failed to write ComicInfo.xml: %v", err)
	}
	return path
}

func writeCBZ(t *testing.T, path, comicInfoXML string) {
	t.Helper()
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("Failed to create cbz: %v", err)
	}
	defer f.Close()
	w := zip.NewWriter(f)
	entry, err := w.Create("ComicInfo.xml")
	if err != nil {
		t.Fatalf("Failed to create zip entry: %v", err)
	}
	if _, err := entry.Write([]byte(comicInfoXML)); err != nil {
		t.Fatalf("Failed to write zip entry: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Failed to close zip: %v", err)
	}
}

func TestScanCatalogsLibrary(t *testing.T) {
	root := t.TempDir()
	writeComicInfo(t, filepath.Join(root, "series-a", "001"),
		`<ComicInfo><Series>Series A</Series><Number>1</Number></ComicInfo>`)
	writeComicInfo(t, filepath.Join(root, "series-a", "002"),
		`<ComicInfo><Series>Series A</Series><Number>2</Number></ComicInfo>`)
	writeCBZ(t, filepath.Join(root, "series-b.cbz"),
		`<ComicInfo><Series>Series B</Series><Number>1</Number></ComicInfo>`)

	repo := newMockRepository()
	scanner := NewScanner(repo, zap.NewNop())

	result, err := scanner.Scan(root)
	if err != nil {
		t.Fatalf("Scan failed: %v", err)
	}
	if result.Scanned != 3 {
		t.Errorf("Expected 3 scanned, got %d", result.Scanned)
	}
	if result.Failed != 0 {
		t.Errorf("Expected 0 failed, got %d", result.Failed)
	}

	entries, _ := repo.ListEntries()
	if len(entries) != 3 {
		t.Errorf("Expected 3 cataloged entries, got %d", len(entries))
	}

	cbzEntry, _ := repo.GetEntry(filepath.Join(root, "series-b.cbz"))
	if cbzEntry == nil {
		t.Fatal("Expected cbz to be cataloged")
	}
	if cbzEntry.Series != "Series B" {
		t.Errorf("Expected Series 'Series B', got '%s'", cbzEntry.Series)
	}
}

func TestScanSkipsBadFiles(t *testing.T) {
	root := t.TempDir()
	writeComicInfo(t, filepath.Join(root, "good"),
		`<ComicInfo><Title>Good</Title></ComicInfo>`)
	writeComicInfo(t, filepath.Join(root, "bad"),
		`<ComicInfo><Year>999</Year></ComicInfo>`)
	writeComicInfo(t, filepath.Join(root, "broken"),
		`<ComicInfo><Title>Oops</ComicInfo>`)

	repo := newMockRepository()
	scanner := NewScanner(repo, zap.NewNop())

	result, err := scanner.Scan(root)
	if err != nil {
		t.Fatalf("Scan failed: %v", err)
	}
	if result.Scanned != 1 {
		t.Errorf("Expected 1 scanned, got %d", result.Scanned)
	}
	if result.Failed != 2 {
		t.Errorf("Expected 2 failed, got %d", result.Failed)
	}

	entries, _ := repo.ListEntries()
	if len(entries) != 1 {
		t.Fatalf("Expected 1 cataloged entry, got %d", len(entries))
	}
	if entries[0].Title != "Good" {
		t.Errorf("Expected Title 'Good', got '%s'", entries[0].Title)
	}
}

func TestScanEmptyLibrary(t *testing.T) {
	repo := newMockRepository()
	scanner := NewScanner(repo, zap.NewNop())

	result, err := scanner.Scan(t.TempDir())
	if err != nil {
		t.Fatalf("Scan failed: %v", err)
	}
	if result.Scanned != 0 || result.Failed != 0 {
		t.Errorf("Expected empty result, got %+v", result)
	}
}

func TestScanMissingRoot(t *testing.T) {
	repo := newMockRepository()
	scanner := NewScanner(repo, zap.NewNop())

	_, err := scanner.Scan(filepath.Join(t.TempDir(), "does-not-exist"))
	if err == nil {
		t.Error("Expected error for missing root")
	}
}

func TestScanProgressEvents(t *testing.T) {
	root := t.TempDir()
	writeComicInfo(t, filepath.Join(root, "a"),
		`<ComicInfo><Title>A</Title></ComicInfo>`)

	repo := newMockRepository()
	scanner := NewScanner(repo, zap.NewNop())

	if _, err := scanner.Scan(root); err != nil {
		t.Fatalf("Scan failed: %v", err)
	}
	scanner.Close()

	var statuses []string
	for p := range scanner.GetProgressChannel() {
		statuses = append(statuses, p.Status)
	}
	if len(statuses) < 2 {
		t.Fatalf("Expected at least parsing+complete events, got %v", statuses)
	}
	if statuses[0] != "parsing" {
		t.Errorf("Expected first event 'parsing', got '%s'", statuses[0])
	}
	if statuses[len(statuses)-1] != "complete" {
		t.Errorf("Expected last event 'complete', got '%s'", statuses[len(statuses)-1])
	}
}
