package comicinfo

// The enumerations below carry their canonical XML spelling as the
// string value. Comparison against the document is exact and
// case-sensitive. Each type has a lenient parser that falls back to the
// default value and a strict parser that returns *InvalidEnumError.

// Manga marks whether a book is manga and its reading direction.
type Manga string

const (
	MangaUnknown        Manga = "Unknown"
	MangaNo             Manga = "No"
	MangaYes            Manga = "Yes"
	MangaYesRightToLeft Manga = "YesAndRightToLeft"
)

// MangaValues lists the canonical strings in schema order.
func MangaValues() []string {
	return []string{
		string(MangaUnknown),
		string(MangaNo),
		string(MangaYes),
		string(MangaYesRightToLeft),
	}
}

// ParseManga resolves s leniently, defaulting to MangaUnknown.
func ParseManga(s string) Manga {
	switch Manga(s) {
	case MangaNo, MangaYes, MangaYesRightToLeft:
		return Manga(s)
	default:
		return MangaUnknown
	}
}

// ParseMangaStrict resolves s or fails with *InvalidEnumError.
func ParseMangaStrict(field, s string) (Manga, error) {
	switch Manga(s) {
	case MangaUnknown, MangaNo, MangaYes, MangaYesRightToLeft:
		return Manga(s), nil
	default:
		return MangaUnknown, &InvalidEnumError{Field: field, Value: s, ValidValues: MangaValues()}
	}
}

// AgeRating is the audience rating assigned to a book.
type AgeRating string

const (
	AgeRatingUnknown        AgeRating = "Unknown"
	AgeRatingAdultsOnly     AgeRating = "Adults Only 18+"
	AgeRatingEarlyChildhood AgeRating = "Early Childhood"
	AgeRatingEveryone       AgeRating = "Everyone"
	AgeRatingEveryone10     AgeRating = "Everyone 10+"
	AgeRatingG              AgeRating = "G"
	AgeRatingKidsToAdults   AgeRating = "Kids to Adults"
	AgeRatingM              AgeRating = "M"
	AgeRatingMA15           AgeRating = "MA15+"
	AgeRatingMature17       AgeRating = "Mature 17+"
	AgeRatingPG             AgeRating = "PG"
	AgeRatingR18            AgeRating = "R18+"
	AgeRatingPending        AgeRating = "Rating Pending"
	AgeRatingTeen           AgeRating = "Teen"
	AgeRatingX18            AgeRating = "X18+"
)

// AgeRatingValues lists the canonical strings in schema order.
func AgeRatingValues() []string {
	return []string{
		string(AgeRatingUnknown),
		string(AgeRatingAdultsOnly),
		string(AgeRatingEarlyChildhood),
		string(AgeRatingEveryone),
		string(AgeRatingEveryone10),
		string(AgeRatingG),
		string(AgeRatingKidsToAdults),
		string(AgeRatingM),
		string(AgeRatingMA15),
		string(AgeRatingMature17),
		string(AgeRatingPG),
		string(AgeRatingR18),
		string(AgeRatingPending),
		string(AgeRatingTeen),
		string(AgeRatingX18),
	}
}

// ParseAgeRating resolves s leniently, defaulting to AgeRatingUnknown.
func ParseAgeRating(s string) AgeRating {
	for _, v := range AgeRatingValues() {
		if s == v {
			return AgeRating(s)
		}
	}
	return AgeRatingUnknown
}

// ParseAgeRatingStrict resolves s or fails with *InvalidEnumError.
func ParseAgeRatingStrict(field, s string) (AgeRating, error) {
	for _, v := range AgeRatingValues() {
		if s == v {
			return AgeRating(s), nil
		}
	}
	return AgeRatingUnknown, &InvalidEnumError{Field: field, Value: s, ValidValues: AgeRatingValues()}
}

// BlackAndWhite marks whether a book is printed in black and white.
type BlackAndWhite string

const (
	BlackAndWhiteUnknown BlackAndWhite = "Unknown"
	BlackAndWhiteNo      BlackAndWhite = "No"
	BlackAndWhiteYes     BlackAndWhite = "Yes"
)

// BlackAndWhiteValues lists the canonical strings in schema order.
func BlackAndWhiteValues() []string {
	return []string{
		string(BlackAndWhiteUnknown),
		string(BlackAndWhiteNo),
		string(BlackAndWhiteYes),
	}
}

// ParseBlackAndWhite resolves s leniently, defaulting to BlackAndWhiteUnknown.
func ParseBlackAndWhite(s string) BlackAndWhite {
	switch BlackAndWhite(s) {
	case BlackAndWhiteNo, BlackAndWhiteYes:
		return BlackAndWhite(s)
	default:
		return BlackAndWhiteUnknown
	}
}

// ParseBlackAndWhiteStrict resolves s or fails with *InvalidEnumError.
func ParseBlackAndWhiteStrict(field, s string) (BlackAndWhite, error) {
	switch BlackAndWhite(s) {
	case BlackAndWhiteUnknown, BlackAndWhiteNo, BlackAndWhiteYes:
		return BlackAndWhite(s), nil
	default:
		return BlackAndWhiteUnknown, &InvalidEnumError{Field: field, Value: s, ValidValues: BlackAndWhiteValues()}
	}
}

// PageType is the role a page plays in a book.
type PageType string

const (
	PageTypeFrontCover    PageType = "FrontCover"
	PageTypeInnerCover    PageType = "InnerCover"
	PageTypeRoundup       PageType = "Roundup"
	PageTypeStory         PageType = "Story"
	PageTypeAdvertisement PageType = "Advertisement"
	PageTypeEditorial     PageType = "Editorial"
	PageTypeLetters       PageType = "Letters"
	PageTypePreview       PageType = "Preview"
	PageTypeBackCover     PageType = "BackCover"
	PageTypeOther         PageType = "Other"
	PageTypeDeleted       PageType = "Deleted"
)

// PageTypeValues lists the canonical strings in schema order.
func PageTypeValues() []string {
	return []string{
		string(PageTypeFrontCover),
		string(PageTypeInnerCover),
		string(PageTypeRoundup),
		string(PageTypeStory),
		string(PageTypeAdvertisement),
		string(PageTypeEditorial),
		string(PageTypeLetters),
		string(PageTypePreview),
		string(PageTypeBackCover),
		string(PageTypeOther),
		string(PageTypeDeleted),
	}
}

// ParsePageType resolves s leniently, defaulting to PageTypeStory.
func ParsePageType(s string) PageType {
	for _, v := range PageTypeValues() {
		if s == v {
			return PageType(s)
		}
	}
	return PageTypeStory
}

// ParsePageTypeStrict resolves s or fails with *InvalidEnumError.
func ParsePageTypeStrict(field, s string) (PageType, error) {
	for _, v := range PageTypeValues() {
		if s == v {
			return PageType(s), nil
		}
	}
	return PageTypeStory, &InvalidEnumError{Field: field, Value: s, ValidValues: PageTypeValues()}
}
