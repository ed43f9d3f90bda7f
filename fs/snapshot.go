package fs

import (
	"net/url"
	"path/filepath"
	"strings"
	"time"

	plantscraper "github.com/niklas-joh/plantScraper"
)

// LinkToPath converts a plant guide URL to a relative snapshot path.
// Example: https://www.almanac.com/plant/artichokes → plant/artichokes.md
func LinkToPath(rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", err
	}

	path := strings.TrimPrefix(u.Path, "/")
	if path == "" {
		return "index.md", nil
	}
	if strings.HasSuffix(path, "/") {
		return path + "index.md", nil
	}
	return path + ".md", nil
}

// SnapshotWriter writes per-plant markdown snapshots of fetched guide
// pages, useful for inspecting what the extractor saw.
type SnapshotWriter struct {
	baseDir   string
	converter plantscraper.Converter
}

// NewSnapshotWriter creates a SnapshotWriter rooted at baseDir that
// converts page HTML with the given converter.
func NewSnapshotWriter(baseDir string, converter plantscraper.Converter) *SnapshotWriter {
	return &SnapshotWriter{baseDir: baseDir, converter: converter}
}

// WriteSnapshot converts the page HTML to markdown and writes it under
// the writer's base directory, with frontmatter recording the source
// URL, plant name and fetch date.
func (w *SnapshotWriter) WriteSnapshot(plant *plantscraper.Plant, html string, fetchedAt time.Time) (string, error) {
	if err := plant.Validate(); err != nil {
		return "", err
	}

	markdown, err := w.converter.Convert(html)
	if err != nil {
		return "", err
	}

	relPath, err := LinkToPath(plant.Link)
	if err != nil {
		return "", err
	}
	fullPath := filepath.Join(w.baseDir, relPath)

	var b strings.Builder
	b.WriteString("---\n")
	b.WriteString("source: ")
	b.WriteString(plant.Link)
	b.WriteString("\nplant: ")
	b.WriteString(plant.Name)
	b.WriteString("\nfetched: ")
	b.WriteString(fetchedAt.Format("2006-01-02"))
	b.WriteString("\n---\n\n")
	b.WriteString(markdown)

	if err := atomicWrite(fullPath, []byte(b.String())); err != nil {
		return "", err
	}
	return fullPath, nil
}
