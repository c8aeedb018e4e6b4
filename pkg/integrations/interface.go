package integrations

import "github.com/kerbaras/comicmeta/pkg/comicinfo"

// Exporter turns an issue plus its page images into another book format.
type Exporter interface {
	Export(issue *comicinfo.Issue, imagesDir, outputPath string) error
}
