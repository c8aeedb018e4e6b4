package data

import (
	"time"

	"github.com/kerbaras/comicmeta/pkg/comicinfo"
)

// Entry is one cataloged comic: the flattened slice of its ComicInfo
// metadata the library views need, keyed by the file it came from.
type Entry struct {
	Path      string // ComicInfo.xml or .cbz location, unique per entry
	Title     string
	Series    string
	Number    string
	Volume    int
	Writer    string
	Publisher string
	Year      int
	PageCount int
	Format    string
	ScannedAt time.Time
}

// NewEntry flattens an issue into a catalog entry. Absent fields become
// zero values here: the catalog is a search index, not the document of
// record, and the source file keeps the full fidelity.
func NewEntry(path string, issue *comicinfo.Issue) *Entry {
	e := &Entry{Path: path, ScannedAt: time.Now().UTC()}
	if issue.Title != nil {
		e.Title = *issue.Title
	}
	if issue.Series != nil {
		e.Series = *issue.Series
	}
	if issue.Number != nil {
		e.Number = *issue.Number
	}
	if issue.Volume != nil {
		e.Volume = *issue.Volume
	}
	if issue.Writer != nil {
		e.Writer = *issue.Writer
	}
	if issue.Publisher != nil {
		e.Publisher = *issue.Publisher
	}
	if issue.Year != nil {
		e.Year = *issue.Year
	}
	if issue.Format != nil {
		e.Format = *issue.Format
	}
	if issue.PageCount != nil {
		e.PageCount = *issue.PageCount
	} else if issue.HasPages() {
		e.PageCount = len(issue.Pages)
	}
	return e
}

// DisplayTitle is the label the list views show for an entry.
func (e *Entry) DisplayTitle() string {
	switch {
	case e.Series != "" && e.Number != "":
		return e.Series + " #" + e.Number
	case e.Title != "":
		return e.Title
	default:
		return e.Path
	}
}
