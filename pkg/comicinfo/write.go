package comicinfo

import (
	"strconv"

	"github.com/beevik/etree"
)

// Standard namespace declarations carried on the root element.
const (
	xsdNamespace = "http://www.w3.org/2001/XMLSchema"
	xsiNamespace = "http://www.w3.org/2001/XMLSchema-instance"
)

// WriteXML renders the issue back to schema-conformant XML text.
// Absent fields are omitted entirely rather than written as empty
// elements, so a serialize/parse round trip preserves "unset". Page
// attributes other than Image and Type appear only when they differ
// from their schema defaults.
func WriteXML(issue *Issue) (string, error) {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="utf-8"`)

	root := doc.CreateElement(rootTag)
	root.CreateAttr("xmlns:xsd", xsdNamespace)
	root.CreateAttr("xmlns:xsi", xsiNamespace)

	writeString(root, "Title", issue.Title)
	writeString(root, "Series", issue.Series)
	writeString(root, "Number", issue.Number)
	writeInt(root, "Count", issue.Count)
	writeInt(root, "Volume", issue.Volume)
	writeString(root, "AlternateSeries", issue.AlternateSeries)
	writeString(root, "AlternateNumber", issue.AlternateNumber)
	writeInt(root, "AlternateCount", issue.AlternateCount)
	writeString(root, "Summary", issue.Summary)
	writeString(root, "Notes", issue.Notes)
	writeInt(root, "Year", issue.Year)
	writeInt(root, "Month", issue.Month)
	writeInt(root, "Day", issue.Day)
	writeString(root, "Writer", issue.Writer)
	writeString(root, "Penciller", issue.Penciller)
	writeString(root, "Inker", issue.Inker)
	writeString(root, "Colorist", issue.Colorist)
	writeString(root, "Letterer", issue.Letterer)
	writeString(root, "CoverArtist", issue.CoverArtist)
	writeString(root, "Editor", issue.Editor)
	writeString(root, "Translator", issue.Translator)
	writeString(root, "Publisher", issue.Publisher)
	writeString(root, "Imprint", issue.Imprint)
	writeString(root, "Genre", issue.Genre)
	writeString(root, "Web", issue.Web)
	writeInt(root, "PageCount", issue.PageCount)
	writeString(root, "LanguageISO", issue.LanguageISO)
	writeString(root, "Format", issue.Format)
	if issue.BlackAndWhite != nil {
		root.CreateElement("BlackAndWhite").SetText(string(*issue.BlackAndWhite))
	}
	if issue.Manga != nil {
		root.CreateElement("Manga").SetText(string(*issue.Manga))
	}
	writeString(root, "Characters", issue.Characters)
	writeString(root, "Teams", issue.Teams)
	writeString(root, "Locations", issue.Locations)
	writeString(root, "ScanInformation", issue.ScanInformation)
	writeString(root, "StoryArc", issue.StoryArc)
	writeString(root, "StoryArcNumber", issue.StoryArcNumber)
	writeString(root, "SeriesGroup", issue.SeriesGroup)
	if issue.AgeRating != nil {
		root.CreateElement("AgeRating").SetText(string(*issue.AgeRating))
	}
	writeFloat(root, "CommunityRating", issue.CommunityRating)
	writeString(root, "MainCharacterOrTeam", issue.MainCharacterOrTeam)
	writeString(root, "Review", issue.Review)

	if len(issue.Pages) > 0 {
		container := root.CreateElement("Pages")
		for _, p := range issue.Pages {
			appendPageElement(container, p)
		}
	}

	doc.Indent(2)
	text, err := doc.WriteToString()
	if err != nil {
		return "", &ParseError{Message: err.Error()}
	}
	return text, nil
}

func writeString(root *etree.Element, tag string, v *string) {
	if v == nil {
		return
	}
	root.CreateElement(tag).SetText(*v)
}

func writeInt(root *etree.Element, tag string, v *int) {
	if v == nil {
		return
	}
	root.CreateElement(tag).SetText(strconv.Itoa(*v))
}

func writeFloat(root *etree.Element, tag string, v *float64) {
	if v == nil {
		return
	}
	root.CreateElement(tag).SetText(strconv.FormatFloat(*v, 'f', -1, 64))
}
