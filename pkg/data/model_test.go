package data

import (
	"testing"

	"github.com/kerbaras/comicmeta/pkg/comicinfo"
)

func TestNewEntry(t *testing.T) {
	issue, err := comicinfo.LoadXML(`<ComicInfo>
		<Title>The Test</Title>
		<Series>Testing</Series>
		<Number>3</Number>
		<Volume>2</Volume>
		<Writer>A. Writer</Writer>
		<Publisher>Pub</Publisher>
		<Year>2021</Year>
		<PageCount>32</PageCount>
		<Format>TPB</Format>
	</ComicInfo>`)
	if err != nil {
		t.Fatalf("Failed to load issue: %v", err)
	}

	entry := NewEntry("/lib/ComicInfo.xml", issue)
	if entry.Path != "/lib/ComicInfo.xml" {
		t.Errorf("Expected path '/lib/ComicInfo.xml', got '%s'", entry.Path)
	}
	if entry.Title != "The Test" {
		t.Errorf("Expected Title 'The Test', got '%s'", entry.Title)
	}
	if entry.Volume != 2 {
		t.Errorf("Expected Volume 2, got %d", entry.Volume)
	}
	if entry.Year != 2021 {
		t.Errorf("Expected Year 2021, got %d", entry.Year)
	}
	if entry.PageCount != 32 {
		t.Errorf("Expected PageCount 32, got %d", entry.PageCount)
	}
	if entry.ScannedAt.IsZero() {
		t.Error("Expected ScannedAt to be set")
	}
}

func TestNewEntryPageCountFallback(t *testing.T) {
	issue, err := comicinfo.LoadXML(`<ComicInfo><Pages><Page Image="0"/><Page Image="1"/></Pages></ComicInfo>`)
	if err != nil {
		t.Fatalf("Failed to load issue: %v", err)
	}

	entry := NewEntry("/lib/ComicInfo.xml", issue)
	if entry.PageCount != 2 {
		t.Errorf("Expected page count derived from pages, got %d", entry.PageCount)
	}
}

func TestDisplayTitle(t *testing.T) {
	e := &Entry{Series: "Vagabond", Number: "12"}
	if e.DisplayTitle() != "Vagabond #12" {
		t.Errorf("Unexpected display title '%s'", e.DisplayTitle())
	}

	e = &Entry{Title: "One Shot"}
	if e.DisplayTitle() != "One Shot" {
		t.Errorf("Unexpected display title '%s'", e.DisplayTitle())
	}

	e = &Entry{Path: "/lib/x.cbz"}
	if e.DisplayTitle() != "/lib/x.cbz" {
		t.Errorf("Unexpected display title '%s'", e.DisplayTitle())
	}
}
