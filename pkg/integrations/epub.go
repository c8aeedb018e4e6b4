package integrations

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/go-shiori/go-epub"
	"github.com/kerbaras/comicmeta/pkg/comicinfo"
)

// EPubBuilder renders an issue's page images into a single EPUB with
// the ComicInfo metadata mapped onto the EPUB's own fields.
type EPubBuilder struct{}

func NewEPubBuilder() *EPubBuilder {
	return &EPubBuilder{}
}

// Export builds an EPUB at outputPath from the images in imagesDir,
// sorted by filename, one section for the whole issue in reading order.
func (b *EPubBuilder) Export(issue *comicinfo.Issue, imagesDir, outputPath string) error {
	files, err := os.ReadDir(imagesDir)
	if err != nil {
		return fmt.Errorf("failed to read images directory: %w", err)
	}

	var imageFiles []os.DirEntry
	for _, file := range files {
		if !file.IsDir() && isImageFile(file.Name()) {
			imageFiles = append(imageFiles, file)
		}
	}
	if len(imageFiles) == 0 {
		return fmt.Errorf("no images found in %s", imagesDir)
	}
	sort.Slice(imageFiles, func(i, j int) bool {
		return imageFiles[i].Name() < imageFiles[j].Name()
	})

	title := epubTitle(issue)
	e, err := epub.NewEpub(title)
	if err != nil {
		return fmt.Errorf("failed to create EPub: %w", err)
	}

	if issue.Writer != nil {
		e.SetAuthor(*issue.Writer)
	}
	if issue.Summary != nil {
		e.SetDescription(*issue.Summary)
	}
	if issue.LanguageISO != nil {
		e.SetLang(*issue.LanguageISO)
	}

	var htmlContent strings.Builder
	htmlContent.WriteString(fmt.Sprintf("<h1>%s</h1>\n", title))
	for i, imgFile := range imageFiles {
		imgPath := filepath.Join(imagesDir, imgFile.Name())
		internalPath, err := e.AddImage(imgPath, "")
		if err != nil {
			return fmt.Errorf("failed to add image %s: %w", imgFile.Name(), err)
		}
		htmlContent.WriteString(fmt.Sprintf(
			`<div class="page"><img src="%s" alt="Page %d" style="width:100%%;height:auto;"/></div>%s`,
			internalPath, i+1, "\n",
		))
	}

	if _, err := e.AddSection(htmlContent.String(), title, "", ""); err != nil {
		return fmt.Errorf("failed to add section: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(outputPath), 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	if err := e.Write(outputPath); err != nil {
		return fmt.Errorf("failed to write EPub: %w", err)
	}
	return nil
}

// epubTitle composes "Series #Number" when both are known, falling back
// to Title, then to a placeholder.
func epubTitle(issue *comicinfo.Issue) string {
	if issue.Series != nil && issue.Number != nil {
		return fmt.Sprintf("%s #%s", *issue.Series, *issue.Number)
	}
	if issue.Title != nil {
		return *issue.Title
	}
	return "Untitled Comic"
}

// SafeFilename removes characters that are invalid in filenames.
func SafeFilename(name string) string {
	invalid := []string{"/", "\\", ":", "*", "?", "\"", "<", ">", "|"}
	result := name
	for _, char := range invalid {
		result = strings.ReplaceAll(result, char, "_")
	}
	result = strings.TrimSpace(result)
	result = strings.Trim(result, ".")
	return result
}

// isImageFile checks if a file has an image extension
func isImageFile(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	return ext == ".jpg" || ext == ".jpeg" || ext == ".png" || ext == ".gif" || ext == ".webp"
}
