package integrations

import (
	"archive/zip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/kerbaras/comicmeta/pkg/comicinfo"
)

// comicInfoName is the conventional metadata filename inside a comic
// archive. Producers disagree on casing, so lookups are
// case-insensitive while writes use the canonical spelling.
const comicInfoName = "ComicInfo.xml"

// ReadCBZ extracts and parses the ComicInfo document from a comic zip
// archive. The metadata file may sit at any depth in the archive.
func ReadCBZ(path string) (*comicinfo.Issue, error) {
	r, err := zip.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open archive: %w", err)
	}
	defer r.Close()

	for _, file := range r.File {
		if !strings.EqualFold(filepath.Base(file.Name), comicInfoName) {
			continue
		}
		rc, err := file.Open()
		if err != nil {
			return nil, fmt.Errorf("failed to open %s: %w", file.Name, err)
		}
		data, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", file.Name, err)
		}
		return comicinfo.LoadXML(string(data))
	}
	return nil, fmt.Errorf("no %s found in %s", comicInfoName, path)
}

// WriteCBZ rewrites the archive with the given issue as its
// ComicInfo.xml, replacing any existing metadata file and leaving all
// other entries untouched. The archive is replaced atomically via a
// temp file next to it.
func WriteCBZ(path string, issue *comicinfo.Issue) error {
	text, err := comicinfo.WriteXML(issue)
	if err != nil {
		return err
	}

	src, err := zip.OpenReader(path)
	if err != nil {
		return fmt.Errorf("failed to open archive: %w", err)
	}
	defer src.Close()

	tmp, err := os.CreateTemp(filepath.Dir(path), ".comicmeta-*.cbz")
	if err != nil {
		return fmt.Errorf("failed to create temp archive: %w", err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	w := zip.NewWriter(tmp)
	for _, file := range src.File {
		if strings.EqualFold(filepath.Base(file.Name), comicInfoName) {
			continue
		}
		if err := copyZipEntry(w, file); err != nil {
			tmp.Close()
			return err
		}
	}

	meta, err := w.Create(comicInfoName)
	if err != nil {
		tmp.Close()
		return fmt.Errorf("failed to add %s: %w", comicInfoName, err)
	}
	if _, err := meta.Write([]byte(text)); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write %s: %w", comicInfoName, err)
	}

	if err := w.Close(); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to finalize archive: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmpPath, path)
}

func copyZipEntry(w *zip.Writer, file *zip.File) error {
	header := file.FileHeader
	out, err := w.CreateHeader(&header)
	if err != nil {
		return fmt.Errorf("failed to copy %s: %w", file.Name, err)
	}
	rc, err := file.Open()
	if err != nil {
		return fmt.Errorf("failed to copy %s: %w", file.Name, err)
	}
	defer rc.Close()
	if _, err := io.Copy(out, rc); err != nil {
		return fmt.Errorf("failed to copy %s: %w", file.Name, err)
	}
	return nil
}
