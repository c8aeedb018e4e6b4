package comicinfo

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMinimalDocument(t *testing.T) {
	issue, err := LoadXML(`<ComicInfo><Title>Minimal Comic</Title><Series>Test Series</Series><Number>1</Number></ComicInfo>`)
	require.NoError(t, err)

	require.NotNil(t, issue.Title)
	assert.Equal(t, "Minimal Comic", *issue.Title)
	require.NotNil(t, issue.Series)
	assert.Equal(t, "Test Series", *issue.Series)
	require.NotNil(t, issue.Number)
	assert.Equal(t, "1", *issue.Number)

	assert.Nil(t, issue.Writer)
	assert.Nil(t, issue.Year)
	assert.Nil(t, issue.Manga)
	assert.Nil(t, issue.CommunityRating)
	assert.Empty(t, issue.Pages)
	assert.False(t, issue.HasPages())
}

func TestLoadEmptyInput(t *testing.T) {
	for _, input := range []string{"", "   ", "\n\t"} {
		_, err := LoadXML(input)
		var parseErr *ParseError
		assert.ErrorAs(t, err, &parseErr, "input %q", input)
	}
}

func TestLoadMalformedXML(t *testing.T) {
	_, err := LoadXML(`<ComicInfo><Title>Test</ComicInfo>`)
	var parseErr *ParseError
	assert.ErrorAs(t, err, &parseErr)
}

func TestLoadWrongRoot(t *testing.T) {
	_, err := LoadXML(`<ComicBook><Title>Test</Title></ComicBook>`)
	var parseErr *ParseError
	if assert.ErrorAs(t, err, &parseErr) {
		assert.Contains(t, parseErr.Message, "ComicBook")
	}
}

func TestLoadTrimsFieldText(t *testing.T) {
	issue, err := LoadXML("<ComicInfo><Title>  Padded Title \n</Title></ComicInfo>")
	require.NoError(t, err)
	require.NotNil(t, issue.Title)
	assert.Equal(t, "Padded Title", *issue.Title)
}

func TestLoadBlankFieldsAreAbsent(t *testing.T) {
	issue, err := LoadXML(`<ComicInfo><Title>  </Title><Month> </Month><Day></Day></ComicInfo>`)
	require.NoError(t, err)
	assert.Nil(t, issue.Title, "whitespace-only string normalizes to absent")
	assert.Nil(t, issue.Month, "blank month is valid-but-unset, not zero")
	assert.Nil(t, issue.Day)
}

func TestLoadYearBounds(t *testing.T) {
	cases := []struct {
		year string
		ok   bool
	}{
		{"999", false},
		{"1000", true},
		{"9999", true},
		{"10000", false},
	}
	for _, tc := range cases {
		issue, err := LoadXML(fmt.Sprintf("<ComicInfo><Year>%s</Year></ComicInfo>", tc.year))
		if tc.ok {
			require.NoError(t, err, "Year=%s", tc.year)
			require.NotNil(t, issue.Year)
		} else {
			var rangeErr *RangeError
			if assert.ErrorAs(t, err, &rangeErr, "Year=%s", tc.year) {
				assert.Equal(t, "Year", rangeErr.Field)
				assert.Equal(t, tc.year, rangeErr.Value)
				assert.Equal(t, 1000.0, rangeErr.Min)
				assert.Equal(t, 9999.0, rangeErr.Max)
			}
		}
	}
}

func TestLoadMonthAndDayBounds(t *testing.T) {
	for _, month := range []string{"0", "13"} {
		_, err := LoadXML(fmt.Sprintf("<ComicInfo><Month>%s</Month></ComicInfo>", month))
		var rangeErr *RangeError
		assert.ErrorAs(t, err, &rangeErr, "Month=%s", month)
	}
	for _, day := range []string{"0", "32"} {
		_, err := LoadXML(fmt.Sprintf("<ComicInfo><Day>%s</Day></ComicInfo>", day))
		var rangeErr *RangeError
		assert.ErrorAs(t, err, &rangeErr, "Day=%s", day)
	}
	// no calendar-aware validation: Feb 31 passes
	issue, err := LoadXML(`<ComicInfo><Year>2020</Year><Month>2</Month><Day>31</Day></ComicInfo>`)
	require.NoError(t, err)
	assert.Equal(t, 31, *issue.Day)
}

func TestLoadCommunityRatingBounds(t *testing.T) {
	for _, rating := range []string{"5.1", "-0.1"} {
		_, err := LoadXML(fmt.Sprintf("<ComicInfo><CommunityRating>%s</CommunityRating></ComicInfo>", rating))
		var rangeErr *RangeError
		if assert.ErrorAs(t, err, &rangeErr, "CommunityRating=%s", rating) {
			assert.Equal(t, 0.0, rangeErr.Min)
			assert.Equal(t, 5.0, rangeErr.Max)
		}
	}
	for _, rating := range []string{"0", "5.0", "3.75"} {
		issue, err := LoadXML(fmt.Sprintf("<ComicInfo><CommunityRating>%s</CommunityRating></ComicInfo>", rating))
		require.NoError(t, err, "CommunityRating=%s", rating)
		require.NotNil(t, issue.CommunityRating)
	}
}

func TestLoadTypeCoercionErrors(t *testing.T) {
	_, err := LoadXML(`<ComicInfo><Day>not a number</Day></ComicInfo>`)
	var coercionErr *TypeCoercionError
	if assert.ErrorAs(t, err, &coercionErr) {
		assert.Equal(t, "Day", coercionErr.Field)
		assert.Equal(t, "not a number", coercionErr.Value)
		assert.Equal(t, "Int", coercionErr.ExpectedType)
	}

	_, err = LoadXML(`<ComicInfo><CommunityRating>good</CommunityRating></ComicInfo>`)
	if assert.ErrorAs(t, err, &coercionErr) {
		assert.Equal(t, "CommunityRating", coercionErr.Field)
		assert.Equal(t, "Double", coercionErr.ExpectedType)
	}
}

func TestLoadEnumFields(t *testing.T) {
	issue, err := LoadXML(`<ComicInfo><Manga>YesAndRightToLeft</Manga><BlackAndWhite>Yes</BlackAndWhite><AgeRating>Teen</AgeRating></ComicInfo>`)
	require.NoError(t, err)
	require.NotNil(t, issue.Manga)
	assert.Equal(t, MangaYesRightToLeft, *issue.Manga)
	assert.True(t, issue.IsManga())
	assert.True(t, issue.IsRightToLeft())
	assert.True(t, issue.IsBlackAndWhite())
	require.NotNil(t, issue.AgeRating)
	assert.Equal(t, AgeRatingTeen, *issue.AgeRating)

	_, err = LoadXML(`<ComicInfo><Manga>InvalidValue</Manga></ComicInfo>`)
	var enumErr *InvalidEnumError
	if assert.ErrorAs(t, err, &enumErr) {
		assert.Equal(t, "Manga", enumErr.Field)
		assert.Equal(t, "InvalidValue", enumErr.Value)
	}
}

func TestLoadFirstElementWins(t *testing.T) {
	issue, err := LoadXML(`<ComicInfo><Title>First</Title><Title>Second</Title></ComicInfo>`)
	require.NoError(t, err)
	assert.Equal(t, "First", *issue.Title)
}

func TestLoadFileFromPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "ComicInfo.xml")
	err := os.WriteFile(path, []byte(`<ComicInfo><Title>On Disk</Title></ComicInfo>`), 0644)
	require.NoError(t, err)

	issue, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "On Disk", *issue.Title)
}

func TestLoadFileInlineXML(t *testing.T) {
	// content starting with "<" is parsed directly instead of being
	// treated as a path
	issue, err := LoadFile("  <ComicInfo><Title>Inline</Title></ComicInfo>")
	require.NoError(t, err)
	assert.Equal(t, "Inline", *issue.Title)
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.xml"))
	var fileErr *FileError
	if assert.ErrorAs(t, err, &fileErr) {
		assert.ErrorIs(t, err, os.ErrNotExist)
	}
}

func TestLoadURL(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `<ComicInfo><Title>Remote</Title></ComicInfo>`)
	}))
	defer server.Close()

	issue, err := LoadURL(server.URL)
	require.NoError(t, err)
	assert.Equal(t, "Remote", *issue.Title)
}

func TestLoadURLErrors(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer server.Close()

	_, err := LoadURL(server.URL)
	var fileErr *FileError
	assert.ErrorAs(t, err, &fileErr)

	// typed errors from the XML stage pass through unchanged
	badXML := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `<ComicInfo><Year>999</Year></ComicInfo>`)
	}))
	defer badXML.Close()

	_, err = LoadURL(badXML.URL)
	var rangeErr *RangeError
	assert.ErrorAs(t, err, &rangeErr)
}
