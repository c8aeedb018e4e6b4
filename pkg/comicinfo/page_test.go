package comicinfo

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadPages(t *testing.T, pagesXML string) []Page {
	t.Helper()
	issue, err := LoadXML(fmt.Sprintf("<ComicInfo><Pages>%s</Pages></ComicInfo>", pagesXML))
	require.NoError(t, err)
	return issue.Pages
}

func TestPageDefaults(t *testing.T) {
	pages := loadPages(t, `<Page Image="5"/>`)
	require.Len(t, pages, 1)

	p := pages[0]
	assert.Equal(t, 5, p.Image)
	assert.Equal(t, PageTypeStory, p.Type)
	assert.False(t, p.DoublePage)
	assert.Equal(t, int64(0), p.ImageSize)
	assert.Equal(t, "", p.Key)
	assert.Equal(t, "", p.Bookmark)
	assert.Equal(t, -1, p.ImageWidth)
	assert.Equal(t, -1, p.ImageHeight)
}

func TestPageMissingImage(t *testing.T) {
	_, err := LoadXML(`<ComicInfo><Pages><Page Type="Story"/></Pages></ComicInfo>`)
	var schemaErr *SchemaError
	assert.ErrorAs(t, err, &schemaErr)
}

func TestPageBadImage(t *testing.T) {
	_, err := LoadXML(`<ComicInfo><Pages><Page Image="five"/></Pages></ComicInfo>`)
	var coercionErr *TypeCoercionError
	if assert.ErrorAs(t, err, &coercionErr) {
		assert.Equal(t, "Page.Image", coercionErr.Field)
		assert.Equal(t, "five", coercionErr.Value)
		assert.Equal(t, "Int", coercionErr.ExpectedType)
	}
}

func TestPageStrictType(t *testing.T) {
	_, err := LoadXML(`<ComicInfo><Pages><Page Image="0" Type="Centerfold"/></Pages></ComicInfo>`)
	var enumErr *InvalidEnumError
	if assert.ErrorAs(t, err, &enumErr) {
		assert.Equal(t, "Page.Type", enumErr.Field)
	}
}

func TestPageLenientAttributes(t *testing.T) {
	// DoublePage, ImageSize, ImageWidth and ImageHeight fall back to
	// their defaults on malformed input rather than failing the load.
	pages := loadPages(t, `<Page Image="0" DoublePage="maybe" ImageSize="huge" ImageWidth="wide" ImageHeight="tall"/>`)
	require.Len(t, pages, 1)

	p := pages[0]
	assert.False(t, p.DoublePage)
	assert.Equal(t, int64(0), p.ImageSize)
	assert.Equal(t, -1, p.ImageWidth)
	assert.Equal(t, -1, p.ImageHeight)
}

func TestPageDoublePageSpellings(t *testing.T) {
	for _, raw := range []string{"true", "TRUE", "1", "yes", "Yes"} {
		pages := loadPages(t, fmt.Sprintf(`<Page Image="0" DoublePage=%q/>`, raw))
		assert.True(t, pages[0].DoublePage, "DoublePage=%q", raw)
	}
	for _, raw := range []string{"false", "0", "no", "", "2"} {
		pages := loadPages(t, fmt.Sprintf(`<Page Image="0" DoublePage=%q/>`, raw))
		assert.False(t, pages[0].DoublePage, "DoublePage=%q", raw)
	}
}

func TestPagePredicates(t *testing.T) {
	front := NewPage(0)
	front.Type = PageTypeFrontCover
	assert.True(t, front.IsCover())
	assert.False(t, front.IsStory())

	story := NewPage(1)
	assert.True(t, story.IsStory())
	assert.False(t, story.IsCover())

	deleted := NewPage(2)
	deleted.Type = PageTypeDeleted
	assert.True(t, deleted.IsDeleted())
}

func TestPageAspectRatio(t *testing.T) {
	p := NewPage(0)
	_, ok := p.AspectRatio()
	assert.False(t, ok, "unknown dimensions have no aspect ratio")
	assert.False(t, p.DimensionsAvailable())

	p.ImageWidth = 1000
	p.ImageHeight = 1500
	assert.True(t, p.DimensionsAvailable())
	ratio, ok := p.AspectRatio()
	assert.True(t, ok)
	assert.InDelta(t, 0.6667, ratio, 0.001)

	p.ImageHeight = 0
	assert.True(t, p.DimensionsAvailable())
	_, ok = p.AspectRatio()
	assert.False(t, ok, "zero height has no aspect ratio")
}

func TestPageHasBookmark(t *testing.T) {
	p := NewPage(0)
	assert.False(t, p.HasBookmark())
	// raw emptiness check: whitespace counts as a bookmark
	p.Bookmark = " "
	assert.True(t, p.HasBookmark())
}

func TestPageOrderPreserved(t *testing.T) {
	pages := loadPages(t, `<Page Image="2"/><Page Image="0"/><Page Image="1"/>`)
	require.Len(t, pages, 3)
	assert.Equal(t, 2, pages[0].Image)
	assert.Equal(t, 0, pages[1].Image)
	assert.Equal(t, 1, pages[2].Image)
}
