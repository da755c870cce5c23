package commands_test

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"marquee/internal/commands"
	"marquee/internal/movies"
	"marquee/internal/omdb"
	"marquee/internal/storage"
	"marquee/internal/testsupport"
)

type fakeLookuper struct {
	movies  map[string]omdb.Movie
	err     error
	queries []string
}

func (f *fakeLookuper) Lookup(_ context.Context, title string) (*omdb.Movie, error) {
	f.queries = append(f.queries, title)
	if f.err != nil {
		return nil, f.err
	}
	movie, ok := f.movies[strings.ToLower(title)]
	if !ok {
		return nil, omdb.ErrNotFound
	}
	return &movie, nil
}

type fakePublisher struct {
	published *movies.Catalog
	err       error
}

func (f *fakePublisher) Publish(catalog *movies.Catalog) error {
	if f.err != nil {
		return f.err
	}
	f.published = catalog
	return nil
}

type harness struct {
	app     *commands.App
	store   *storage.FileStore
	lookup  *fakeLookuper
	gallery *fakePublisher
	out     *bytes.Buffer
}

func newHarness(t *testing.T, input string, seed ...movies.Record) *harness {
	t.Helper()
	store := testsupport.SeedCatalog(t, filepath.Join(t.TempDir(), "movies.json"), seed...)
	h := &harness{
		store: store,
		lookup: &fakeLookuper{movies: map[string]omdb.Movie{
			"the matrix": {Title: "The Matrix", Year: "1999", IMDbRating: "8.7", Poster: "https://img/matrix.jpg", IMDbID: "tt0133093"},
			"matrix":     {Title: "The Matrix", Year: "1999", IMDbRating: "8.7", Poster: "https://img/matrix.jpg", IMDbID: "tt0133093"},
			"obscure":    {Title: "Obscure", Year: "2001", IMDbRating: "", Poster: "p", IMDbID: "tt1"},
			"series":     {Title: "Series", Year: "2010–2012", IMDbRating: "7.0", Poster: "p", IMDbID: "tt2"},
		}},
		gallery: &fakePublisher{},
		out:     &bytes.Buffer{},
	}
	console := commands.NewConsole(strings.NewReader(input), h.out, false)
	h.app = commands.New(store, h.lookup, h.gallery, console, commands.WithRandom(func(int) int { return 1 }))
	return h
}

func (h *harness) catalog(t *testing.T) *movies.Catalog {
	t.Helper()
	return testsupport.MustList(t, h.store)
}

var (
	up         = movies.Record{Title: "Up", Year: 2009, Rating: 8.3}
	upsideDown = movies.Record{Title: "Upside Down", Year: 2012, Rating: 6.3, Notes: "pretty"}
	heat       = movies.Record{Title: "Heat", Year: 1995, Rating: 8.3}
)

func TestListEmpty(t *testing.T) {
	h := newHarness(t, "")
	if err := h.app.List(); err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if got := h.out.String(); got != "No movies found in the database.\n" {
		t.Fatalf("unexpected output %q", got)
	}
}

func TestListFormatsRecords(t *testing.T) {
	h := newHarness(t, "", heat, movies.Record{Title: "Alien", Year: 1979, Rating: 8})
	if err := h.app.List(); err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	want := "Heat (1995) - Rating: 8.3\nAlien (1979) - Rating: 8.0\n"
	if got := h.out.String(); got != want {
		t.Fatalf("unexpected output %q", got)
	}
}

func TestAddConfirmed(t *testing.T) {
	h := newHarness(t, "y\n")
	if err := h.app.Add(context.Background(), "the matrix"); err != nil {
		t.Fatalf("Add returned error: %v", err)
	}
	rec, ok := h.catalog(t).Get("The Matrix")
	if !ok {
		t.Fatal("expected canonical title to be stored")
	}
	if rec.Year != 1999 || rec.Rating != 8.7 || rec.IMDbURL != "https://www.imdb.com/title/tt0133093/" || rec.Notes != "" {
		t.Fatalf("unexpected stored record %#v", rec)
	}
	if !strings.Contains(h.out.String(), "The movie The Matrix (1999) was added successfully.") {
		t.Fatalf("missing success message in %q", h.out.String())
	}
}

func TestAddDeclined(t *testing.T) {
	h := newHarness(t, "n\n")
	if err := h.app.Add(context.Background(), "The Matrix"); err != nil {
		t.Fatalf("Add returned error: %v", err)
	}
	if h.catalog(t).Len() != 0 {
		t.Fatal("expected no mutation when declined")
	}
	if !strings.Contains(h.out.String(), "Movie addition canceled.") {
		t.Fatalf("missing cancel message in %q", h.out.String())
	}
}

func TestAddRejectsNonMatchingCanonicalTitle(t *testing.T) {
	h := newHarness(t, "y\n")
	err := h.app.Add(context.Background(), "Matrix")
	if !errors.Is(err, movies.ErrLookupFailed) {
		t.Fatalf("expected ErrLookupFailed, got %v", err)
	}
	if h.catalog(t).Len() != 0 {
		t.Fatal("expected no mutation for mismatched title")
	}
}

func TestAddFailures(t *testing.T) {
	tests := []struct {
		name    string
		query   string
		lookErr error
		kind    error
		message string
	}{
		{name: "duplicate ignoring case", query: "HEAT", kind: movies.ErrAlreadyExists, message: "The movie already exists in the database."},
		{name: "not found", query: "Nope", kind: movies.ErrLookupFailed, message: "Movie not found."},
		{name: "transport", query: "The Matrix", lookErr: errors.New("dial tcp: refused"), kind: movies.ErrLookupFailed, message: "Error while connecting to the OMDb API."},
		{name: "missing fields", query: "Obscure", kind: movies.ErrLookupFailed, message: "The movie data from the OMDb API is missing some necessary information."},
		{name: "unparseable year", query: "Series", kind: movies.ErrMalformedData, message: "Couldn't convert Year or imdbRating to numeric types."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t, "y\n", heat)
			h.lookup.err = tt.lookErr
			err := h.app.Add(context.Background(), tt.query)
			if !errors.Is(err, tt.kind) {
				t.Fatalf("expected %v, got %v", tt.kind, err)
			}
			if got := commands.UserMessage(err); got != tt.message {
				t.Fatalf("unexpected message %q", got)
			}
			if h.catalog(t).Len() != 1 {
				t.Fatal("expected catalog to be unchanged")
			}
		})
	}
}

func TestAddDuplicateSkipsLookup(t *testing.T) {
	h := newHarness(t, "", heat)
	_ = h.app.Add(context.Background(), "heat")
	if len(h.lookup.queries) != 0 {
		t.Fatalf("expected no lookup for duplicate, got %v", h.lookup.queries)
	}
}

func TestDeleteSingleMatch(t *testing.T) {
	h := newHarness(t, "y\n", heat, up)
	if err := h.app.Delete("hea"); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	if h.catalog(t).Contains("Heat") {
		t.Fatal("expected Heat to be deleted")
	}
	if !strings.Contains(h.out.String(), "Movie 'Heat' (1995) deleted successfully.") {
		t.Fatalf("missing success message in %q", h.out.String())
	}
}

func TestDeleteMultipleMatchesPicksByIndex(t *testing.T) {
	h := newHarness(t, "2\ny\n", up, upsideDown, heat)
	if err := h.app.Delete("up"); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	out := h.out.String()
	if !strings.Contains(out, "1. Up (2009)\n2. Upside Down (2012)\n") {
		t.Fatalf("expected numbered matches in catalog order, got %q", out)
	}
	catalog := h.catalog(t)
	if catalog.Contains("Upside Down") || !catalog.Contains("Up") {
		t.Fatalf("expected only Upside Down removed, got %v", catalog.Titles())
	}
}

func TestDeleteSelectionCancelAndInvalid(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		invalid bool
	}{
		{name: "zero cancels", input: "0\n"},
		{name: "out of range", input: "5\n", invalid: true},
		{name: "not a number", input: "abc\n", invalid: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t, tt.input, up, upsideDown)
			if err := h.app.Delete("UP"); err != nil {
				t.Fatalf("Delete returned error: %v", err)
			}
			out := h.out.String()
			if strings.Contains(out, "Invalid choice.") != tt.invalid {
				t.Fatalf("unexpected invalid-choice output %q", out)
			}
			if !strings.Contains(out, "Deletion cancelled.") {
				t.Fatalf("expected cancellation in %q", out)
			}
			if h.catalog(t).Len() != 2 {
				t.Fatal("expected catalog to be unchanged")
			}
		})
	}
}

func TestDeleteNoMatch(t *testing.T) {
	h := newHarness(t, "", heat)
	err := h.app.Delete("Alien")
	if !errors.Is(err, movies.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if got := commands.UserMessage(err); got != "No movies found with the name 'alien'." {
		t.Fatalf("unexpected message %q", got)
	}
}

func TestUpdateNotes(t *testing.T) {
	h := newHarness(t, "y\nWatch with friends\n", upsideDown)
	if err := h.app.Update(context.Background(), "down"); err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	rec, _ := h.catalog(t).Get("Upside Down")
	if rec.Notes != "Watch with friends" {
		t.Fatalf("unexpected notes %q", rec.Notes)
	}
	if !strings.Contains(h.out.String(), "Current notes: pretty\n") {
		t.Fatalf("expected current notes in %q", h.out.String())
	}
}

func TestUpdateDeclined(t *testing.T) {
	h := newHarness(t, "n\n", upsideDown)
	if err := h.app.Update(context.Background(), "down"); err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if !strings.Contains(h.out.String(), "Update cancelled.") {
		t.Fatalf("expected cancellation in %q", h.out.String())
	}
	rec, _ := h.catalog(t).Get("Upside Down")
	if rec.Notes != "pretty" {
		t.Fatalf("expected notes unchanged, got %q", rec.Notes)
	}
}

func TestUpdateRedirectsToAdd(t *testing.T) {
	h := newHarness(t, "y\nThe Matrix\ny\n", heat)
	if err := h.app.Update(context.Background(), "Matrix"); err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if !h.catalog(t).Contains("The Matrix") {
		t.Fatal("expected redirect to add The Matrix")
	}
}

func TestStats(t *testing.T) {
	h := newHarness(t, "", up, upsideDown, movies.Record{Title: "Cats", Year: 2019, Rating: 2.8})
	if err := h.app.Stats(); err != nil {
		t.Fatalf("Stats returned error: %v", err)
	}
	want := "\nAverage rating: 5.8\nMedian rating: 6.3\nBest movie: Up with a rating of 8.3\nWorst movie: Cats with a rating of 2.8\n"
	if got := h.out.String(); got != want {
		t.Fatalf("unexpected output %q", got)
	}
}

func TestRandomUsesInjectedSource(t *testing.T) {
	h := newHarness(t, "", up, heat)
	if err := h.app.Random(); err != nil {
		t.Fatalf("Random returned error: %v", err)
	}
	if got := h.out.String(); got != "Your movie for tonight: Heat (rated 8.3)\n" {
		t.Fatalf("unexpected output %q", got)
	}
}

func TestSearch(t *testing.T) {
	h := newHarness(t, "", up, upsideDown, heat)
	if err := h.app.Search("DOWN"); err != nil {
		t.Fatalf("Search returned error: %v", err)
	}
	if got := h.out.String(); got != "Upside Down, Rating: 6.3, Year: 2012\n" {
		t.Fatalf("unexpected output %q", got)
	}

	h.out.Reset()
	_ = h.app.Search("zzz")
	if got := h.out.String(); got != "No movies found with your given search query.\n" {
		t.Fatalf("unexpected output %q", got)
	}
}

func TestSortedByRatingIsStable(t *testing.T) {
	h := newHarness(t, "", upsideDown, up, heat)
	if err := h.app.SortedByRating(); err != nil {
		t.Fatalf("SortedByRating returned error: %v", err)
	}
	want := "\nMovies sorted by rating:\nUp: 8.3\nHeat: 8.3\nUpside Down: 6.3\n"
	if got := h.out.String(); got != want {
		t.Fatalf("unexpected output %q", got)
	}
}

func TestGenerateGallery(t *testing.T) {
	h := newHarness(t, "", heat)
	if err := h.app.GenerateGallery(); err != nil {
		t.Fatalf("GenerateGallery returned error: %v", err)
	}
	if h.gallery.published == nil || h.gallery.published.Len() != 1 {
		t.Fatal("expected catalog to be published")
	}

	h.gallery.err = errors.New("permission denied")
	err := h.app.GenerateGallery()
	if !errors.Is(err, movies.ErrTemplateUnavailable) {
		t.Fatalf("expected ErrTemplateUnavailable, got %v", err)
	}
}
