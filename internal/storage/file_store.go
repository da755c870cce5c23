package storage

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"marquee/internal/fileutil"
	"marquee/internal/logging"
	"marquee/internal/movies"
)

// Codec converts between a catalog and its on-disk bytes.
type Codec interface {
	Name() string
	Decode(data []byte) (*movies.Catalog, error)
	Encode(catalog *movies.Catalog) ([]byte, error)
}

// FileStore is a Backend that keeps the full catalog in one file.
type FileStore struct {
	path   string
	codec  Codec
	logger *slog.Logger
}

// NewFileStore creates a store for path using codec.
func NewFileStore(path string, codec Codec, logger *slog.Logger) *FileStore {
	return &FileStore{
		path:   path,
		codec:  codec,
		logger: logging.NewComponentLogger(logger, "storage"),
	}
}

// NewCSV creates a CSV-backed store.
func NewCSV(path string, logger *slog.Logger) *FileStore {
	return NewFileStore(path, CSVCodec{}, logger)
}

// NewJSON creates a JSON-backed store.
func NewJSON(path string, logger *slog.Logger) *FileStore {
	return NewFileStore(path, JSONCodec{}, logger)
}

// Path returns the backing file path.
func (s *FileStore) Path() string {
	return s.path
}

// Format returns the codec name, "csv" or "json".
func (s *FileStore) Format() string {
	return s.codec.Name()
}

// ListMovies loads the catalog. A missing file is an empty catalog.
func (s *FileStore) ListMovies() (*movies.Catalog, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return movies.NewCatalog(), nil
		}
		return nil, fmt.Errorf("read %s: %w", s.path, err)
	}
	catalog, err := s.codec.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", s.path, err)
	}
	s.logger.Debug("catalog loaded",
		logging.String("path", s.path),
		logging.String("format", s.codec.Name()),
		logging.Int("movie_count", catalog.Len()))
	return catalog, nil
}

// AddMovie inserts a new record with empty notes. The title must not already
// be present.
func (s *FileStore) AddMovie(title string, year int, rating float64, posterURL, imdbURL string) error {
	catalog, err := s.ListMovies()
	if err != nil {
		return err
	}
	if catalog.Contains(title) {
		return fmt.Errorf("movie with title %q: %w", title, movies.ErrAlreadyExists)
	}
	catalog.Put(movies.Record{
		Title:     title,
		Year:      year,
		Rating:    rating,
		PosterURL: posterURL,
		IMDbURL:   imdbURL,
	})
	if err := s.save(catalog); err != nil {
		return err
	}
	s.logger.Info("movie added", logging.String("title", title), logging.Int("year", year))
	return nil
}

// DeleteMovie removes the record with the exact title.
func (s *FileStore) DeleteMovie(title string) error {
	catalog, err := s.ListMovies()
	if err != nil {
		return err
	}
	if !catalog.Remove(title) {
		return fmt.Errorf("movie with title %q: %w", title, movies.ErrNotFound)
	}
	if err := s.save(catalog); err != nil {
		return err
	}
	s.logger.Info("movie deleted", logging.String("title", title))
	return nil
}

// UpdateMovie replaces the notes of the record with the exact title.
func (s *FileStore) UpdateMovie(title, notes string) error {
	catalog, err := s.ListMovies()
	if err != nil {
		return err
	}
	rec, ok := catalog.Get(title)
	if !ok {
		return fmt.Errorf("movie with title %q: %w", title, movies.ErrNotFound)
	}
	rec.Notes = notes
	catalog.Put(rec)
	if err := s.save(catalog); err != nil {
		return err
	}
	s.logger.Info("movie notes updated", logging.String("title", title))
	return nil
}

// Contains reports whether the exact title is stored.
func (s *FileStore) Contains(title string) (bool, error) {
	catalog, err := s.ListMovies()
	if err != nil {
		return false, err
	}
	return catalog.Contains(title), nil
}

// Save rewrites the backing file with catalog.
func (s *FileStore) Save(catalog *movies.Catalog) error {
	return s.save(catalog)
}

func (s *FileStore) save(catalog *movies.Catalog) error {
	data, err := s.codec.Encode(catalog)
	if err != nil {
		return fmt.Errorf("encode %s catalog: %w", s.codec.Name(), err)
	}
	if err := fileutil.WriteFileAtomic(s.path, data, 0o644); err != nil {
		return fmt.Errorf("write %s catalog: %w", s.codec.Name(), err)
	}
	s.logger.Debug("catalog saved",
		logging.String("path", s.path),
		logging.Int("movie_count", catalog.Len()))
	return nil
}
