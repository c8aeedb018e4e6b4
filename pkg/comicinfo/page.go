package comicinfo

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/beevik/etree"
)

// Page holds the metadata of a single page image. Unlike Issue fields,
// page fields are carried as XML attributes of a <Page> element inside
// <Pages>. A Page is a plain value; construct it fully and do not
// mutate it afterwards.
type Page struct {
	// Image is the zero-based page index. It is the only required
	// attribute; a <Page> without it is a schema violation.
	Image int `json:"image"`

	// Type is the page's role, Story when unspecified.
	Type PageType `json:"type"`

	// DoublePage marks a two-page spread.
	DoublePage bool `json:"doublePage"`

	// ImageSize is the image file size in bytes, 0 when unknown.
	ImageSize int64 `json:"imageSize"`

	// Key is an opaque identifier; empty string means no key.
	Key string `json:"key"`

	// Bookmark is a reader annotation; empty string means none.
	Bookmark string `json:"bookmark"`

	// ImageWidth and ImageHeight are pixel dimensions, -1 when unknown.
	ImageWidth  int `json:"imageWidth"`
	ImageHeight int `json:"imageHeight"`
}

// NewPage returns a Page with the schema defaults filled in for every
// field except the required index.
func NewPage(image int) Page {
	return Page{
		Image:       image,
		Type:        PageTypeStory,
		ImageWidth:  -1,
		ImageHeight: -1,
	}
}

// IsCover reports whether the page is any kind of cover.
func (p Page) IsCover() bool {
	switch p.Type {
	case PageTypeFrontCover, PageTypeInnerCover, PageTypeBackCover:
		return true
	default:
		return false
	}
}

// IsStory reports whether the page is regular story content.
func (p Page) IsStory() bool {
	return p.Type == PageTypeStory
}

// IsDeleted reports whether the page has been marked deleted.
func (p Page) IsDeleted() bool {
	return p.Type == PageTypeDeleted
}

// HasBookmark reports whether the page carries a bookmark annotation.
// The raw value decides; surrounding whitespace counts as content.
func (p Page) HasBookmark() bool {
	return p.Bookmark != ""
}

// DimensionsAvailable reports whether both pixel dimensions are known.
func (p Page) DimensionsAvailable() bool {
	return p.ImageWidth != -1 && p.ImageHeight != -1
}

// AspectRatio returns width/height. The second return is false when a
// dimension is unknown or the height is zero.
func (p Page) AspectRatio() (float64, bool) {
	if !p.DimensionsAvailable() || p.ImageHeight == 0 {
		return 0, false
	}
	return float64(p.ImageWidth) / float64(p.ImageHeight), true
}

// parsePages reads the optional <Pages> container. An absent container
// means no pages, not an error. Page order follows document order.
func parsePages(root *etree.Element) ([]Page, error) {
	container := root.SelectElement("Pages")
	if container == nil {
		return nil, nil
	}
	var pages []Page
	for _, el := range container.SelectElements("Page") {
		page, err := parsePage(el)
		if err != nil {
			return nil, err
		}
		pages = append(pages, page)
	}
	return pages, nil
}

// parsePage reads one <Page> element. Image is required and strictly
// coerced; Type is strictly validated; DoublePage, ImageSize,
// ImageWidth and ImageHeight silently keep their defaults on bad input
// to tolerate minor producer noise.
func parsePage(el *etree.Element) (Page, error) {
	imageAttr := el.SelectAttr("Image")
	if imageAttr == nil {
		return Page{}, &SchemaError{Message: "Page element is missing the required Image attribute"}
	}
	image, err := strconv.Atoi(strings.TrimSpace(imageAttr.Value))
	if err != nil {
		return Page{}, &TypeCoercionError{Field: "Page.Image", Value: imageAttr.Value, ExpectedType: "Int"}
	}

	pageType, err := ParsePageTypeStrict("Page.Type", attrString(el, "Type", string(PageTypeStory)))
	if err != nil {
		return Page{}, err
	}

	page := NewPage(image)
	page.Type = pageType
	page.DoublePage = attrBoolLenient(el, "DoublePage")
	page.ImageSize = attrInt64Lenient(el, "ImageSize", 0)
	page.Key = attrString(el, "Key", "")
	page.Bookmark = attrString(el, "Bookmark", "")
	page.ImageWidth = attrIntLenient(el, "ImageWidth", -1)
	page.ImageHeight = attrIntLenient(el, "ImageHeight", -1)
	return page, nil
}

// appendPageElement renders a page under the given <Pages> element.
// Image and Type are always written; the remaining attributes only when
// they differ from their defaults.
func appendPageElement(container *etree.Element, p Page) {
	el := container.CreateElement("Page")
	el.CreateAttr("Image", strconv.Itoa(p.Image))
	el.CreateAttr("Type", string(p.Type))
	if p.DoublePage {
		el.CreateAttr("DoublePage", "true")
	}
	if p.ImageSize != 0 {
		el.CreateAttr("ImageSize", strconv.FormatInt(p.ImageSize, 10))
	}
	if p.Key != "" {
		el.CreateAttr("Key", p.Key)
	}
	if p.Bookmark != "" {
		el.CreateAttr("Bookmark", p.Bookmark)
	}
	if p.ImageWidth != -1 {
		el.CreateAttr("ImageWidth", strconv.Itoa(p.ImageWidth))
	}
	if p.ImageHeight != -1 {
		el.CreateAttr("ImageHeight", strconv.Itoa(p.ImageHeight))
	}
}

// String summarizes the page for logs and the details screen.
func (p Page) String() string {
	if p.DimensionsAvailable() {
		return fmt.Sprintf("page %d (%s, %dx%d)", p.Image, p.Type, p.ImageWidth, p.ImageHeight)
	}
	return fmt.Sprintf("page %d (%s)", p.Image, p.Type)
}
