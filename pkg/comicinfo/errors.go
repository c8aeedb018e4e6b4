package comicinfo

import (
	"fmt"
	"strings"
)

// ParseError reports malformed input: empty documents, XML syntax
// failures, a missing or wrong root element, or an unrenderable tree.
type ParseError struct {
	Message string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("comicinfo: parse error: %s", e.Message)
}

// FileError reports an I/O failure while reading a path or URL. The
// underlying error is kept for errors.Is/As inspection.
type FileError struct {
	Message string
	Err     error
}

func (e *FileError) Error() string {
	return fmt.Sprintf("comicinfo: file error: %s", e.Message)
}

func (e *FileError) Unwrap() error {
	return e.Err
}

// InvalidEnumError reports a value outside an enumeration's closed set.
type InvalidEnumError struct {
	Field       string
	Value       string
	ValidValues []string
}

func (e *InvalidEnumError) Error() string {
	return fmt.Sprintf("comicinfo: invalid value %q for %s (valid: %s)",
		e.Value, e.Field, strings.Join(e.ValidValues, ", "))
}

// RangeError reports a numeric field that coerced successfully but lies
// outside its closed bounds.
type RangeError struct {
	Field string
	Value string
	Min   float64
	Max   float64
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("comicinfo: %s value %q out of range [%v, %v]",
		e.Field, e.Value, e.Min, e.Max)
}

// TypeCoercionError reports field text that could not be converted to
// its required scalar type.
type TypeCoercionError struct {
	Field        string
	Value        string
	ExpectedType string
}

func (e *TypeCoercionError) Error() string {
	return fmt.Sprintf("comicinfo: cannot convert %s value %q to %s",
		e.Field, e.Value, e.ExpectedType)
}

// SchemaError reports a structural violation not covered by the other
// kinds, such as a Page element missing its required Image attribute.
type SchemaError struct {
	Message string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("comicinfo: schema error: %s", e.Message)
}
