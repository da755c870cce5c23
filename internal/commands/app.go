package commands

import (
	"context"
	"log/slog"
	"math/rand/v2"

	"marquee/internal/logging"
	"marquee/internal/movies"
	"marquee/internal/omdb"
	"marquee/internal/storage"
)

// Lookuper fetches movie metadata by title.
type Lookuper interface {
	Lookup(ctx context.Context, title string) (*omdb.Movie, error)
}

// GalleryPublisher renders a catalog into the static gallery page.
type GalleryPublisher interface {
	Publish(catalog *movies.Catalog) error
}

// App wires the catalog commands to their collaborators.
type App struct {
	store   storage.Backend
	lookup  Lookuper
	gallery GalleryPublisher
	console Prompter
	logger  *slog.Logger
	randInt func(n int) int
}

// Option configures an App.
type Option func(*App)

// WithLogger sets the logger used for command diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(a *App) {
		if logger != nil {
			a.logger = logger
		}
	}
}

// WithRandom overrides the source used by Random. fn must return a value in
// [0, n).
func WithRandom(fn func(n int) int) Option {
	return func(a *App) {
		if fn != nil {
			a.randInt = fn
		}
	}
}

// New constructs an App.
func New(store storage.Backend, lookup Lookuper, gallery GalleryPublisher, console Prompter, opts ...Option) *App {
	app := &App{
		store:   store,
		lookup:  lookup,
		gallery: gallery,
		console: console,
		logger:  logging.NewNop(),
		randInt: rand.IntN,
	}
	for _, opt := range opts {
		opt(app)
	}
	app.logger = logging.NewComponentLogger(app.logger, "commands")
	return app
}

// Catalog loads the current catalog from the backend.
func (a *App) Catalog() (*movies.Catalog, error) {
	return a.store.ListMovies()
}

func (a *App) noMovies() {
	a.console.Println("No movies found in the database.")
}
