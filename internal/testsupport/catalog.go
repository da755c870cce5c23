package testsupport

import (
	"testing"

	"marquee/internal/logging"
	"marquee/internal/movies"
	"marquee/internal/storage"
)

// SeedCatalog writes records, in order, to a catalog file at path and returns
// a store for it. The format follows the file extension.
func SeedCatalog(t testing.TB, path string, records ...movies.Record) *storage.FileStore {
	t.Helper()

	store, err := storage.ForPath(path, logging.NewNop())
	if err != nil {
		t.Fatalf("storage.ForPath: %v", err)
	}
	catalog := movies.NewCatalog()
	for _, rec := range records {
		catalog.Put(rec)
	}
	if err := store.Save(catalog); err != nil {
		t.Fatalf("seed catalog: %v", err)
	}
	return store
}

// MustList loads the catalog behind store or fails the test.
func MustList(t testing.TB, store storage.Backend) *movies.Catalog {
	t.Helper()

	catalog, err := store.ListMovies()
	if err != nil {
		t.Fatalf("ListMovies: %v", err)
	}
	return catalog
}
