package storage_test

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"marquee/internal/logging"
	"marquee/internal/movies"
	"marquee/internal/storage"
)

type backendCase struct {
	name string
	open func(path string) *storage.FileStore
	file string
}

var backendCases = []backendCase{
	{name: "csv", file: "movies.csv", open: func(path string) *storage.FileStore { return storage.NewCSV(path, logging.NewNop()) }},
	{name: "json", file: "movies.json", open: func(path string) *storage.FileStore { return storage.NewJSON(path, logging.NewNop()) }},
}

func forEachBackend(t *testing.T, fn func(t *testing.T, store *storage.FileStore)) {
	t.Helper()
	for _, tc := range backendCases {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), tc.file)
			fn(t, tc.open(path))
		})
	}
}

func readFile(t *testing.T, path string) []byte {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	return data
}

func TestListMoviesMissingFileIsEmpty(t *testing.T) {
	forEachBackend(t, func(t *testing.T, store *storage.FileStore) {
		catalog, err := store.ListMovies()
		if err != nil {
			t.Fatalf("ListMovies returned error: %v", err)
		}
		if catalog.Len() != 0 {
			t.Fatalf("expected empty catalog, got %v", catalog.Titles())
		}
	})
}

func TestAddMovieThenList(t *testing.T) {
	forEachBackend(t, func(t *testing.T, store *storage.FileStore) {
		if err := store.AddMovie("Up", 2009, 8.3, "https://img/up.jpg", "https://www.imdb.com/title/tt1049413/"); err != nil {
			t.Fatalf("AddMovie returned error: %v", err)
		}
		if err := store.AddMovie("Heat", 1995, 8, "", ""); err != nil {
			t.Fatalf("AddMovie returned error: %v", err)
		}

		catalog, err := store.ListMovies()
		if err != nil {
			t.Fatalf("ListMovies returned error: %v", err)
		}
		got, ok := catalog.Get("Up")
		if !ok {
			t.Fatalf("expected Up in catalog, got %v", catalog.Titles())
		}
		want := movies.Record{
			Title:     "Up",
			Year:      2009,
			Rating:    8.3,
			PosterURL: "https://img/up.jpg",
			IMDbURL:   "https://www.imdb.com/title/tt1049413/",
		}
		if got != want {
			t.Fatalf("unexpected record: got %#v want %#v", got, want)
		}
		if titles := catalog.Titles(); len(titles) != 2 || titles[0] != "Up" || titles[1] != "Heat" {
			t.Fatalf("unexpected order: %v", titles)
		}
		heat, _ := catalog.Get("Heat")
		if heat.Notes != "" || heat.PosterURL != "" || heat.Rating != 8 {
			t.Fatalf("unexpected Heat record: %#v", heat)
		}
	})
}

func TestAddExistingMovieFailsWithoutChange(t *testing.T) {
	forEachBackend(t, func(t *testing.T, store *storage.FileStore) {
		if err := store.AddMovie("Up", 2009, 8.3, "p", "i"); err != nil {
			t.Fatalf("AddMovie returned error: %v", err)
		}
		before := readFile(t, store.Path())

		err := store.AddMovie("Up", 2010, 1, "x", "y")
		if !errors.Is(err, movies.ErrAlreadyExists) {
			t.Fatalf("expected ErrAlreadyExists, got %v", err)
		}
		if after := readFile(t, store.Path()); !bytes.Equal(before, after) {
			t.Fatalf("file changed after rejected add:\n%s\n---\n%s", before, after)
		}
	})
}

func TestAddIsExactMatchOnly(t *testing.T) {
	forEachBackend(t, func(t *testing.T, store *storage.FileStore) {
		if err := store.AddMovie("Up", 2009, 8.3, "", ""); err != nil {
			t.Fatalf("AddMovie returned error: %v", err)
		}
		if err := store.AddMovie("UP", 2009, 8.3, "", ""); err != nil {
			t.Fatalf("expected differently cased title to be accepted by storage, got %v", err)
		}
	})
}

func TestDeleteAndUpdateAbsentTitle(t *testing.T) {
	forEachBackend(t, func(t *testing.T, store *storage.FileStore) {
		if err := store.AddMovie("Up", 2009, 8.3, "", ""); err != nil {
			t.Fatalf("AddMovie returned error: %v", err)
		}
		before := readFile(t, store.Path())

		if err := store.DeleteMovie("Down"); !errors.Is(err, movies.ErrNotFound) {
			t.Fatalf("expected ErrNotFound from delete, got %v", err)
		}
		if err := store.UpdateMovie("Down", "note"); !errors.Is(err, movies.ErrNotFound) {
			t.Fatalf("expected ErrNotFound from update, got %v", err)
		}
		if after := readFile(t, store.Path()); !bytes.Equal(before, after) {
			t.Fatal("file changed after rejected delete/update")
		}
	})
}

func TestDeleteMovie(t *testing.T) {
	forEachBackend(t, func(t *testing.T, store *storage.FileStore) {
		for _, title := range []string{"Up", "Heat"} {
			if err := store.AddMovie(title, 2000, 7, "", ""); err != nil {
				t.Fatalf("AddMovie(%q): %v", title, err)
			}
		}
		if err := store.DeleteMovie("Up"); err != nil {
			t.Fatalf("DeleteMovie returned error: %v", err)
		}
		ok, err := store.Contains("Up")
		if err != nil || ok {
			t.Fatalf("expected Up to be gone, ok=%v err=%v", ok, err)
		}
		ok, err = store.Contains("Heat")
		if err != nil || !ok {
			t.Fatalf("expected Heat to remain, ok=%v err=%v", ok, err)
		}
	})
}

func TestUpdateMovieSetsNotes(t *testing.T) {
	forEachBackend(t, func(t *testing.T, store *storage.FileStore) {
		if err := store.AddMovie("Up", 2009, 8.3, "", ""); err != nil {
			t.Fatalf("AddMovie returned error: %v", err)
		}
		if err := store.UpdateMovie("Up", "Balloons, \"house\", and\na dog"); err != nil {
			t.Fatalf("UpdateMovie returned error: %v", err)
		}
		catalog, err := store.ListMovies()
		if err != nil {
			t.Fatalf("ListMovies returned error: %v", err)
		}
		rec, _ := catalog.Get("Up")
		if rec.Notes != "Balloons, \"house\", and\na dog" {
			t.Fatalf("unexpected notes %q", rec.Notes)
		}
	})
}

func TestContainsIsExact(t *testing.T) {
	forEachBackend(t, func(t *testing.T, store *storage.FileStore) {
		if err := store.AddMovie("Test Movie", 2000, 8.0, "poster_url", "imdb_url"); err != nil {
			t.Fatalf("AddMovie returned error: %v", err)
		}
		if ok, err := store.Contains("Test Movie"); err != nil || !ok {
			t.Fatalf("expected Test Movie present, ok=%v err=%v", ok, err)
		}
		if ok, err := store.Contains("test movie"); err != nil || ok {
			t.Fatalf("expected lowercase title absent, ok=%v err=%v", ok, err)
		}
	})
}

func TestSaveLoadRoundTrip(t *testing.T) {
	forEachBackend(t, func(t *testing.T, store *storage.FileStore) {
		if err := store.AddMovie("Zodiac", 2007, 7.7, "z.jpg", "z"); err != nil {
			t.Fatal(err)
		}
		if err := store.AddMovie("Alien", 1979, 8.5, "a.jpg", "a"); err != nil {
			t.Fatal(err)
		}
		if err := store.UpdateMovie("Alien", "in space"); err != nil {
			t.Fatal(err)
		}
		first, err := store.ListMovies()
		if err != nil {
			t.Fatal(err)
		}
		before := readFile(t, store.Path())

		if err := store.Save(first); err != nil {
			t.Fatalf("Save returned error: %v", err)
		}
		second, err := store.ListMovies()
		if err != nil {
			t.Fatal(err)
		}
		if after := readFile(t, store.Path()); !bytes.Equal(before, after) {
			t.Fatalf("round trip changed file:\n%s\n---\n%s", before, after)
		}
		a, b := first.Records(), second.Records()
		if len(a) != len(b) {
			t.Fatalf("record count changed: %d vs %d", len(a), len(b))
		}
		for i := range a {
			if a[i] != b[i] {
				t.Fatalf("record %d changed: %#v vs %#v", i, a[i], b[i])
			}
		}
	})
}

func TestForPath(t *testing.T) {
	tests := []struct {
		path   string
		format string
		err    bool
	}{
		{path: "movies.json", format: "json"},
		{path: "data/movies.csv", format: "csv"},
		{path: "movies.txt", err: true},
		{path: "movies", err: true},
		{path: "movies.JSON", err: true},
	}
	for _, tt := range tests {
		store, err := storage.ForPath(tt.path, nil)
		if tt.err {
			if !errors.Is(err, storage.ErrUnsupportedExtension) {
				t.Errorf("ForPath(%q) error = %v, want ErrUnsupportedExtension", tt.path, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("ForPath(%q) returned error: %v", tt.path, err)
			continue
		}
		if store.Format() != tt.format {
			t.Errorf("ForPath(%q) format = %q, want %q", tt.path, store.Format(), tt.format)
		}
	}
}
