package gallery

import (
	"fmt"
	"log/slog"
	"os"

	"marquee/internal/fileutil"
	"marquee/internal/logging"
	"marquee/internal/movies"
)

// Publisher reads the page template from disk and writes the rendered
// gallery.
type Publisher struct {
	TemplatePath string
	OutputPath   string
	Title        string
	Logger       *slog.Logger
}

// Publish renders catalog and writes the result to OutputPath. Read and write
// failures wrap movies.ErrTemplateUnavailable.
func (p Publisher) Publish(catalog *movies.Catalog) error {
	logger := logging.NewComponentLogger(p.Logger, "gallery")

	page, err := os.ReadFile(p.TemplatePath)
	if err != nil {
		return fmt.Errorf("%w: read template: %w", movies.ErrTemplateUnavailable, err)
	}
	out, err := Render(catalog, p.Title, page)
	if err != nil {
		return err
	}
	if err := fileutil.WriteFileAtomic(p.OutputPath, out, 0o644); err != nil {
		return fmt.Errorf("%w: write gallery: %w", movies.ErrTemplateUnavailable, err)
	}

	logger.Info("gallery written",
		logging.String(logging.FieldEventType, "gallery_written"),
		logging.String("output", p.OutputPath),
		logging.Int("movies", catalog.Len()))
	return nil
}

// WriteDefaultTemplate writes the bundled template to path unless a file
// already exists there.
func WriteDefaultTemplate(path string) error {
	exists, err := fileutil.Exists(path)
	if err != nil {
		return fmt.Errorf("check template path: %w", err)
	}
	if exists {
		return fmt.Errorf("template already exists at %s", path)
	}
	return fileutil.WriteFileAtomic(path, DefaultTemplate(), 0o644)
}
