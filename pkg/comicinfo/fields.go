package comicinfo

import (
	"strconv"
	"strings"

	"github.com/beevik/etree"
)

// Issue fields live in child elements, Page fields in attributes. The
// two shapes are kept as separate helpers on purpose: unifying them
// would hide the real schema.

// elementText returns the trimmed text of the first child element with
// the given tag. The second return is false when the element is absent
// or its text trims to empty; both count as "not set".
func elementText(root *etree.Element, tag string) (string, bool) {
	child := root.SelectElement(tag)
	if child == nil {
		return "", false
	}
	text := strings.TrimSpace(child.Text())
	if text == "" {
		return "", false
	}
	return text, true
}

// optionalString extracts a plain string field, nil when absent.
func optionalString(root *etree.Element, tag string) *string {
	text, ok := elementText(root, tag)
	if !ok {
		return nil
	}
	return &text
}

// optionalInt extracts a base-10 integer field, nil when absent.
func optionalInt(root *etree.Element, tag string) (*int, error) {
	text, ok := elementText(root, tag)
	if !ok {
		return nil, nil
	}
	v, err := strconv.Atoi(text)
	if err != nil {
		return nil, &TypeCoercionError{Field: tag, Value: text, ExpectedType: "Int"}
	}
	return &v, nil
}

// rangedInt extracts an integer field and checks it against a closed
// range. The range check fires only after a successful coercion.
func rangedInt(root *etree.Element, tag string, min, max int) (*int, error) {
	v, err := optionalInt(root, tag)
	if err != nil || v == nil {
		return v, err
	}
	if *v < min || *v > max {
		return nil, &RangeError{Field: tag, Value: strconv.Itoa(*v), Min: float64(min), Max: float64(max)}
	}
	return v, nil
}

// rangedFloat extracts a decimal field and checks it against a closed range.
func rangedFloat(root *etree.Element, tag string, min, max float64) (*float64, error) {
	text, ok := elementText(root, tag)
	if !ok {
		return nil, nil
	}
	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return nil, &TypeCoercionError{Field: tag, Value: text, ExpectedType: "Double"}
	}
	if v < min || v > max {
		return nil, &RangeError{Field: tag, Value: text, Min: min, Max: max}
	}
	return &v, nil
}

// attrString returns an attribute value, or the default when absent.
func attrString(el *etree.Element, key, def string) string {
	if attr := el.SelectAttr(key); attr != nil {
		return attr.Value
	}
	return def
}

// attrIntLenient parses an integer attribute, silently falling back to
// def when the attribute is absent or unparseable. Used for the page
// attributes that tolerate producer noise.
func attrIntLenient(el *etree.Element, key string, def int) int {
	attr := el.SelectAttr(key)
	if attr == nil {
		return def
	}
	v, err := strconv.Atoi(strings.TrimSpace(attr.Value))
	if err != nil {
		return def
	}
	return v
}

// attrInt64Lenient is attrIntLenient for byte counts.
func attrInt64Lenient(el *etree.Element, key string, def int64) int64 {
	attr := el.SelectAttr(key)
	if attr == nil {
		return def
	}
	v, err := strconv.ParseInt(strings.TrimSpace(attr.Value), 10, 64)
	if err != nil {
		return def
	}
	return v
}

// attrBoolLenient interprets a boolean attribute case-insensitively:
// true/1/yes are true, anything else (bad values included) is false.
func attrBoolLenient(el *etree.Element, key string) bool {
	attr := el.SelectAttr(key)
	if attr == nil {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(attr.Value)) {
	case "true", "1", "yes":
		return true
	default:
		return false
	}
}

// splitList splits a comma-delimited raw value, trimming each part and
// dropping parts that trim to empty.
func splitList(raw *string) []string {
	if raw == nil {
		return nil
	}
	var out []string
	for _, part := range strings.Split(*raw, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}
