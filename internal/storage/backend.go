package storage

import (
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"

	"marquee/internal/movies"
)

// ErrUnsupportedExtension is returned by ForPath for files that are neither
// .json nor .csv.
var ErrUnsupportedExtension = errors.New("unsupported storage file extension")

// Backend is the catalog persistence contract.
type Backend interface {
	ListMovies() (*movies.Catalog, error)
	AddMovie(title string, year int, rating float64, posterURL, imdbURL string) error
	DeleteMovie(title string) error
	UpdateMovie(title, notes string) error
	Contains(title string) (bool, error)
}

var _ Backend = (*FileStore)(nil)

// ForPath selects the backend for path by its extension.
func ForPath(path string, logger *slog.Logger) (*FileStore, error) {
	switch filepath.Ext(path) {
	case ".json":
		return NewJSON(path, logger), nil
	case ".csv":
		return NewCSV(path, logger), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedExtension, path)
	}
}
