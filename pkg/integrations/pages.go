package integrations

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"sort"

	_ "golang.org/x/image/webp"

	"github.com/kerbaras/comicmeta/pkg/comicinfo"
)

// BuildPages scans a directory of page images (sorted by filename, the
// conventional reading order) and produces the Pages collection for a
// ComicInfo document: index, byte size and pixel dimensions per page,
// with the first page typed as the front cover. Images whose header
// cannot be decoded keep the schema's unknown-dimension default.
func BuildPages(imagesDir string) ([]comicinfo.Page, error) {
	files, err := os.ReadDir(imagesDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read images directory: %w", err)
	}

	var names []string
	for _, file := range files {
		if !file.IsDir() && isImageFile(file.Name()) {
			names = append(names, file.Name())
		}
	}
	if len(names) == 0 {
		return nil, fmt.Errorf("no images found in %s", imagesDir)
	}
	sort.Strings(names)

	pages := make([]comicinfo.Page, 0, len(names))
	for i, name := range names {
		page := comicinfo.NewPage(i)
		if i == 0 {
			page.Type = comicinfo.PageTypeFrontCover
		}

		path := filepath.Join(imagesDir, name)
		if info, err := os.Stat(path); err == nil {
			page.ImageSize = info.Size()
		}
		if width, height, err := probeDimensions(path); err == nil {
			page.ImageWidth = width
			page.ImageHeight = height
		}
		pages = append(pages, page)
	}
	return pages, nil
}

// probeDimensions reads just the image header, not the full pixel data.
func probeDimensions(path string) (int, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, 0, err
	}
	defer f.Close()

	cfg, _, err := image.DecodeConfig(f)
	if err != nil {
		return 0, 0, err
	}
	return cfg.Width, cfg.Height, nil
}
