package comicinfo

import (
	"net/url"
	"strings"
	"time"

	"github.com/beevik/etree"
)

// Issue is one comic book's metadata, the ComicInfo v2.0 shape. Every
// optional field is a pointer so that "unset" stays distinct from a
// zero value; whitespace-only text is normalized to unset during
// parsing, never at read time. Treat an Issue as immutable once built:
// the parser hands out a fresh value per load and nothing in this
// package mutates one afterwards.
//
// The multi-value fields (Characters, Teams, Locations, Genre,
// StoryArc, StoryArcNumber, Web) store the raw delimited string exactly
// as found in the document; the derived list views split on demand so
// the two representations cannot drift apart.
type Issue struct {
	Title           *string `json:"title,omitempty"`
	Series          *string `json:"series,omitempty"`
	Number          *string `json:"number,omitempty"`
	Count           *int    `json:"count,omitempty"`
	Volume          *int    `json:"volume,omitempty"`
	AlternateSeries *string `json:"alternateSeries,omitempty"`
	AlternateNumber *string `json:"alternateNumber,omitempty"`
	AlternateCount  *int    `json:"alternateCount,omitempty"`

	Summary *string `json:"summary,omitempty"`
	Notes   *string `json:"notes,omitempty"`
	Review  *string `json:"review,omitempty"`

	Year  *int `json:"year,omitempty"`
	Month *int `json:"month,omitempty"`
	Day   *int `json:"day,omitempty"`

	// Creator credits. A credit may hold several comma-joined names but
	// stays one string: the schema does not make these lists.
	Writer      *string `json:"writer,omitempty"`
	Penciller   *string `json:"penciller,omitempty"`
	Inker       *string `json:"inker,omitempty"`
	Colorist    *string `json:"colorist,omitempty"`
	Letterer    *string `json:"letterer,omitempty"`
	CoverArtist *string `json:"coverArtist,omitempty"`
	Editor      *string `json:"editor,omitempty"`
	Translator  *string `json:"translator,omitempty"`

	Publisher   *string `json:"publisher,omitempty"`
	Imprint     *string `json:"imprint,omitempty"`
	Format      *string `json:"format,omitempty"`
	LanguageISO *string `json:"languageISO,omitempty"`
	PageCount   *int    `json:"pageCount,omitempty"`

	// Raw delimited multi-value fields.
	Genre          *string `json:"genre,omitempty"`
	Web            *string `json:"web,omitempty"`
	Characters     *string `json:"characters,omitempty"`
	Teams          *string `json:"teams,omitempty"`
	Locations      *string `json:"locations,omitempty"`
	StoryArc       *string `json:"storyArc,omitempty"`
	StoryArcNumber *string `json:"storyArcNumber,omitempty"`

	ScanInformation     *string `json:"scanInformation,omitempty"`
	SeriesGroup         *string `json:"seriesGroup,omitempty"`
	MainCharacterOrTeam *string `json:"mainCharacterOrTeam,omitempty"`

	// Enum fields; nil means the document did not specify a value,
	// which is not the same as the enum's own Unknown.
	AgeRating     *AgeRating     `json:"ageRating,omitempty"`
	BlackAndWhite *BlackAndWhite `json:"blackAndWhite,omitempty"`
	Manga         *Manga         `json:"manga,omitempty"`

	CommunityRating *float64 `json:"communityRating,omitempty"`

	Pages []Page `json:"pages,omitempty"`
}

// Numeric field bounds from the schema.
const (
	minYear  = 1000
	maxYear  = 9999
	minMonth = 1
	maxMonth = 12
	minDay   = 1
	maxDay   = 31

	minCommunityRating = 0.0
	maxCommunityRating = 5.0
)

// CharacterList returns the characters as a trimmed list.
func (i *Issue) CharacterList() []string { return splitList(i.Characters) }

// TeamList returns the teams as a trimmed list.
func (i *Issue) TeamList() []string { return splitList(i.Teams) }

// LocationList returns the locations as a trimmed list.
func (i *Issue) LocationList() []string { return splitList(i.Locations) }

// GenreList returns the genres as a trimmed list.
func (i *Issue) GenreList() []string { return splitList(i.Genre) }

// StoryArcList returns the story arcs as a trimmed list.
func (i *Issue) StoryArcList() []string { return splitList(i.StoryArc) }

// StoryArcNumberList returns the story arc numbers as a trimmed list.
func (i *Issue) StoryArcNumberList() []string { return splitList(i.StoryArcNumber) }

// WebURLs splits the Web field on whitespace and parses each token,
// dropping tokens that fail to parse. The raw string is untouched.
func (i *Issue) WebURLs() []*url.URL {
	if i.Web == nil {
		return nil
	}
	var urls []*url.URL
	for _, token := range strings.Fields(*i.Web) {
		u, err := url.Parse(token)
		if err != nil {
			continue
		}
		urls = append(urls, u)
	}
	return urls
}

// HasPages reports whether any page metadata is present.
func (i *Issue) HasPages() bool {
	return len(i.Pages) > 0
}

// CoverPages returns the cover pages in document order.
func (i *Issue) CoverPages() []Page {
	var covers []Page
	for _, p := range i.Pages {
		if p.IsCover() {
			covers = append(covers, p)
		}
	}
	return covers
}

// StoryPages returns the story pages in document order.
func (i *Issue) StoryPages() []Page {
	var story []Page
	for _, p := range i.Pages {
		if p.IsStory() {
			story = append(story, p)
		}
	}
	return story
}

// PublicationDate combines Year, Month and Day into a calendar date.
// Year must be present and positive; Month and Day fall back to 1.
// The second return is false when no date can be derived.
func (i *Issue) PublicationDate() (time.Time, bool) {
	if i.Year == nil || *i.Year <= 0 {
		return time.Time{}, false
	}
	month, day := 1, 1
	if i.Month != nil {
		month = *i.Month
	}
	if i.Day != nil {
		day = *i.Day
	}
	return time.Date(*i.Year, time.Month(month), day, 0, 0, 0, 0, time.UTC), true
}

// IsManga reports whether the book is marked as manga.
func (i *Issue) IsManga() bool {
	return i.Manga != nil && (*i.Manga == MangaYes || *i.Manga == MangaYesRightToLeft)
}

// IsRightToLeft reports whether the book reads right to left.
func (i *Issue) IsRightToLeft() bool {
	return i.Manga != nil && *i.Manga == MangaYesRightToLeft
}

// IsBlackAndWhite reports whether the book is marked black and white.
func (i *Issue) IsBlackAndWhite() bool {
	return i.BlackAndWhite != nil && *i.BlackAndWhite == BlackAndWhiteYes
}

// parseIssue extracts every scalar field and the page collection from
// the validated root element. The first failing field aborts the whole
// load; there is no partial Issue.
func parseIssue(root *etree.Element) (*Issue, error) {
	issue := &Issue{
		Title:           optionalString(root, "Title"),
		Series:          optionalString(root, "Series"),
		Number:          optionalString(root, "Number"),
		AlternateSeries: optionalString(root, "AlternateSeries"),
		AlternateNumber: optionalString(root, "AlternateNumber"),

		Summary: optionalString(root, "Summary"),
		Notes:   optionalString(root, "Notes"),
		Review:  optionalString(root, "Review"),

		Writer:      optionalString(root, "Writer"),
		Penciller:   optionalString(root, "Penciller"),
		Inker:       optionalString(root, "Inker"),
		Colorist:    optionalString(root, "Colorist"),
		Letterer:    optionalString(root, "Letterer"),
		CoverArtist: optionalString(root, "CoverArtist"),
		Editor:      optionalString(root, "Editor"),
		Translator:  optionalString(root, "Translator"),

		Publisher:   optionalString(root, "Publisher"),
		Imprint:     optionalString(root, "Imprint"),
		Format:      optionalString(root, "Format"),
		LanguageISO: optionalString(root, "LanguageISO"),

		Genre:          optionalString(root, "Genre"),
		Web:            optionalString(root, "Web"),
		Characters:     optionalString(root, "Characters"),
		Teams:          optionalString(root, "Teams"),
		Locations:      optionalString(root, "Locations"),
		StoryArc:       optionalString(root, "StoryArc"),
		StoryArcNumber: optionalString(root, "StoryArcNumber"),

		ScanInformation:     optionalString(root, "ScanInformation"),
		SeriesGroup:         optionalString(root, "SeriesGroup"),
		MainCharacterOrTeam: optionalString(root, "MainCharacterOrTeam"),
	}

	var err error
	if issue.Count, err = optionalInt(root, "Count"); err != nil {
		return nil, err
	}
	if issue.Volume, err = optionalInt(root, "Volume"); err != nil {
		return nil, err
	}
	if issue.AlternateCount, err = optionalInt(root, "AlternateCount"); err != nil {
		return nil, err
	}
	if issue.PageCount, err = optionalInt(root, "PageCount"); err != nil {
		return nil, err
	}
	if issue.Year, err = rangedInt(root, "Year", minYear, maxYear); err != nil {
		return nil, err
	}
	if issue.Month, err = rangedInt(root, "Month", minMonth, maxMonth); err != nil {
		return nil, err
	}
	if issue.Day, err = rangedInt(root, "Day", minDay, maxDay); err != nil {
		return nil, err
	}
	if issue.CommunityRating, err = rangedFloat(root, "CommunityRating", minCommunityRating, maxCommunityRating); err != nil {
		return nil, err
	}

	if text, ok := elementText(root, "AgeRating"); ok {
		rating, err := ParseAgeRatingStrict("AgeRating", text)
		if err != nil {
			return nil, err
		}
		issue.AgeRating = &rating
	}
	if text, ok := elementText(root, "BlackAndWhite"); ok {
		bw, err := ParseBlackAndWhiteStrict("BlackAndWhite", text)
		if err != nil {
			return nil, err
		}
		issue.BlackAndWhite = &bw
	}
	if text, ok := elementText(root, "Manga"); ok {
		manga, err := ParseMangaStrict("Manga", text)
		if err != nil {
			return nil, err
		}
		issue.Manga = &manga
	}

	if issue.Pages, err = parsePages(root); err != nil {
		return nil, err
	}
	return issue, nil
}
