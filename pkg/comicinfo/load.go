package comicinfo

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/beevik/etree"
)

// rootTag is the fixed name of the schema's root element.
const rootTag = "ComicInfo"

// LoadXML parses a ComicInfo document from its XML text. Blank input,
// syntax failures and a missing or wrong root element are all
// *ParseError; field-level failures surface as the typed errors from
// the extraction layer. The first error wins and the load stops there.
func LoadXML(text string) (*Issue, error) {
	if strings.TrimSpace(text) == "" {
		return nil, &ParseError{Message: "document is empty"}
	}

	doc := etree.NewDocument()
	if err := doc.ReadFromString(text); err != nil {
		return nil, &ParseError{Message: err.Error()}
	}

	root := doc.Root()
	if root == nil {
		return nil, &ParseError{Message: "document has no root element"}
	}
	if root.Tag != rootTag {
		return nil, &ParseError{Message: fmt.Sprintf("unexpected root element %q, want %q", root.Tag, rootTag)}
	}

	return parseIssue(root)
}

// LoadFile loads a ComicInfo document from a filesystem path. As a
// convenience the argument may also be the XML text itself: content
// that starts with "<" after trimming is parsed directly instead of
// being treated as a path.
func LoadFile(pathOrXML string) (*Issue, error) {
	if strings.HasPrefix(strings.TrimSpace(pathOrXML), "<") {
		return LoadXML(pathOrXML)
	}
	data, err := os.ReadFile(pathOrXML)
	if err != nil {
		return nil, &FileError{Message: err.Error(), Err: err}
	}
	return LoadXML(string(data))
}

// LoadURL fetches and parses a ComicInfo document over HTTP.
func LoadURL(rawURL string) (*Issue, error) {
	return LoadURLContext(context.Background(), rawURL)
}

// LoadURLContext is LoadURL with a caller-supplied context. Transport
// failures become *FileError; errors from the XML stage pass through
// unchanged.
func LoadURLContext(ctx context.Context, rawURL string) (*Issue, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, &FileError{Message: err.Error(), Err: err}
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, &FileError{Message: err.Error(), Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &FileError{Message: fmt.Sprintf("GET %s: %s", rawURL, resp.Status)}
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &FileError{Message: err.Error(), Err: err}
	}
	return LoadXML(string(data))
}
