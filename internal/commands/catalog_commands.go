package commands

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"marquee/internal/logging"
	"marquee/internal/movies"
	"marquee/internal/omdb"
)

// List prints every movie as "title (year) - Rating: r".
func (a *App) List() error {
	catalog, err := a.store.ListMovies()
	if err != nil {
		return err
	}
	if catalog.Len() == 0 {
		a.noMovies()
		return nil
	}
	for _, rec := range catalog.Records() {
		a.console.Printf("%s (%d) - Rating: %s\n", rec.Title, rec.Year, movies.FormatRating(rec.Rating))
	}
	return nil
}

// Add looks query up in OMDb and, after confirmation, stores the canonical
// record. OMDb must return a title equal to query ignoring case.
func (a *App) Add(ctx context.Context, query string) error {
	catalog, err := a.store.ListMovies()
	if err != nil {
		return err
	}
	if _, exists := movies.FindTitle(catalog, query); exists {
		return fail(movies.ErrAlreadyExists, "The movie already exists in the database.")
	}

	if a.lookup == nil {
		return fail(movies.ErrLookupFailed, "Error while connecting to the OMDb API.")
	}
	found, err := a.lookup.Lookup(ctx, query)
	if err != nil {
		a.logger.Warn("omdb lookup failed",
			logging.String(logging.FieldEventType, "omdb_lookup_failed"),
			logging.String("query", query),
			logging.Error(err),
			logging.String(logging.FieldErrorHint, "check the title spelling and the OMDb API key"))
		if errors.Is(err, omdb.ErrNotFound) {
			return fail(movies.ErrLookupFailed, "Movie not found.")
		}
		return fail(movies.ErrLookupFailed, "Error while connecting to the OMDb API.")
	}
	if found == nil || !strings.EqualFold(found.Title, query) {
		canonical := ""
		if found != nil {
			canonical = found.Title
		}
		return fail(movies.ErrLookupFailed, "OMDb returned %q, which does not match %q.", canonical, query)
	}

	if found.Year == "" || found.IMDbRating == "" || found.Poster == "" || found.IMDbID == "" {
		return fail(movies.ErrLookupFailed, "The movie data from the OMDb API is missing some necessary information.")
	}
	year, yearErr := strconv.Atoi(strings.TrimSpace(found.Year))
	rating, ratingErr := strconv.ParseFloat(strings.TrimSpace(found.IMDbRating), 64)
	if yearErr != nil || ratingErr != nil {
		return fail(movies.ErrMalformedData, "Couldn't convert Year or imdbRating to numeric types.")
	}
	imdbURL := movies.IMDbTitleURL(found.IMDbID)

	a.console.Println("\n************")
	a.console.Println("Movie Found:")
	a.console.Printf("Title: %s\n", found.Title)
	a.console.Printf("Year: %d\n", year)
	a.console.Printf("Rating: %s\n", movies.FormatRating(rating))
	a.console.Printf("Poster: %s\n", found.Poster)
	a.console.Printf("IMDb URL: %s\n", imdbURL)
	a.console.Println("************")
	a.console.Println()

	ok, err := confirm(a.console, "\nDo you want to add "+found.Title+" ("+strconv.Itoa(year)+") ? (y/n): ")
	if err != nil {
		return err
	}
	if !ok {
		a.console.Println("Movie addition canceled.")
		return nil
	}

	if err := a.store.AddMovie(found.Title, year, rating, found.Poster, imdbURL); err != nil {
		if errors.Is(err, movies.ErrAlreadyExists) {
			return fail(movies.ErrAlreadyExists, "Movie with title '%s' already exists.", found.Title)
		}
		return err
	}
	a.console.Printf("The movie %s (%d) was added successfully.\n", found.Title, year)
	return nil
}

// Delete removes the movie matching query after confirmation.
func (a *App) Delete(query string) error {
	catalog, err := a.store.ListMovies()
	if err != nil {
		return err
	}
	matches := movies.Match(catalog, query)
	if len(matches) == 0 {
		return fail(movies.ErrNotFound, "No movies found with the name '%s'.", strings.ToLower(query))
	}

	selected, ok, err := a.choose(matches, "delete")
	if err != nil {
		return err
	}
	if !ok {
		a.console.Println("Deletion cancelled.")
		return nil
	}

	ok, err = confirm(a.console, "Are you sure you want to delete '"+selected.Title+"' ("+strconv.Itoa(selected.Year)+")? (y/n): ")
	if err != nil {
		return err
	}
	if !ok {
		a.console.Println("Deletion cancelled.")
		return nil
	}
	if err := a.store.DeleteMovie(selected.Title); err != nil {
		return notFoundFailure(err, selected.Title)
	}
	a.console.Printf("Movie '%s' (%d) deleted successfully.\n", selected.Title, selected.Year)
	return nil
}

// Update replaces the notes of the movie matching query. When nothing
// matches, the user may switch to adding a movie instead.
func (a *App) Update(ctx context.Context, query string) error {
	catalog, err := a.store.ListMovies()
	if err != nil {
		return err
	}
	matches := movies.Match(catalog, query)
	if len(matches) == 0 {
		a.console.Printf("No movies found with the name '%s'.\n", strings.ToLower(query))
		ok, err := confirm(a.console, "Would you like to add this movie instead? (y/n): ")
		if err != nil || !ok {
			return err
		}
		return a.promptAdd(ctx)
	}

	selected, ok, err := a.choose(matches, "update")
	if err != nil {
		return err
	}
	if !ok {
		a.console.Println("Update cancelled.")
		return nil
	}

	ok, err = confirm(a.console, "Are you sure you want to update '"+selected.Title+"' ("+strconv.Itoa(selected.Year)+")? (y/n): ")
	if err != nil {
		return err
	}
	if !ok {
		a.console.Println("Update cancelled.")
		return nil
	}
	a.console.Printf("Current notes: %s\n", selected.Notes)
	notes, err := a.console.Prompt("Enter new movie notes: ")
	if err != nil {
		return err
	}
	if err := a.store.UpdateMovie(selected.Title, notes); err != nil {
		return notFoundFailure(err, selected.Title)
	}
	a.console.Printf("Movie '%s' (%d) updated successfully.\n", selected.Title, selected.Year)
	return nil
}

// choose resolves matches to a single record, prompting with a numbered list
// when there is more than one. ok is false when the user cancels.
func (a *App) choose(matches []movies.Record, verb string) (movies.Record, bool, error) {
	if len(matches) == 1 {
		return matches[0], true, nil
	}
	a.console.Println("Multiple movies found with the given name:")
	for i, rec := range matches {
		a.console.Printf("%d. %s (%d)\n", i+1, rec.Title, rec.Year)
	}
	answer, err := a.console.Prompt("Enter the number of the movie to " + verb + " (0 to cancel): ")
	if err != nil {
		return movies.Record{}, false, err
	}
	selected, ok, err := movies.SelectMatch(matches, answer)
	if errors.Is(err, movies.ErrAmbiguousChoice) {
		a.logger.Debug("match selection rejected",
			logging.String(logging.FieldErrorKind, movies.KindOf(err)),
			logging.String("input", answer))
		a.console.Println("Invalid choice.")
		return movies.Record{}, false, nil
	}
	return selected, ok, err
}

func notFoundFailure(err error, title string) error {
	if errors.Is(err, movies.ErrNotFound) {
		return fail(movies.ErrNotFound, "No movie with title '%s' found.", title)
	}
	return err
}

// Stats prints the average, median, best, and worst ratings.
func (a *App) Stats() error {
	catalog, err := a.store.ListMovies()
	if err != nil {
		return err
	}
	summary, ok := movies.Summarize(catalog)
	if !ok {
		a.noMovies()
		return nil
	}
	a.console.Printf("\nAverage rating: %s\n", movies.FormatRating(summary.Average))
	a.console.Printf("Median rating: %s\n", movies.FormatRating(summary.Median))
	a.console.Printf("Best movie: %s with a rating of %s\n", summary.Best.Title, movies.FormatRating(summary.Best.Rating))
	a.console.Printf("Worst movie: %s with a rating of %s\n", summary.Worst.Title, movies.FormatRating(summary.Worst.Rating))
	return nil
}

// Random prints one movie chosen uniformly at random.
func (a *App) Random() error {
	catalog, err := a.store.ListMovies()
	if err != nil {
		return err
	}
	records := catalog.Records()
	if len(records) == 0 {
		a.noMovies()
		return nil
	}
	pick := records[a.randInt(len(records))]
	a.console.Printf("Your movie for tonight: %s (rated %s)\n", pick.Title, movies.FormatRating(pick.Rating))
	return nil
}

// Search prints every movie whose title contains query, ignoring case.
func (a *App) Search(query string) error {
	catalog, err := a.store.ListMovies()
	if err != nil {
		return err
	}
	matches := movies.Match(catalog, query)
	if len(matches) == 0 {
		a.console.Println("No movies found with your given search query.")
		return nil
	}
	for _, rec := range matches {
		a.console.Printf("%s, Rating: %s, Year: %d\n", rec.Title, movies.FormatRating(rec.Rating), rec.Year)
	}
	return nil
}

// SortedByRating prints the catalog ordered by rating, highest first.
func (a *App) SortedByRating() error {
	catalog, err := a.store.ListMovies()
	if err != nil {
		return err
	}
	if catalog.Len() == 0 {
		a.noMovies()
		return nil
	}
	a.console.Println("\nMovies sorted by rating:")
	for _, rec := range movies.SortedByRating(catalog) {
		a.console.Printf("%s: %s\n", rec.Title, movies.FormatRating(rec.Rating))
	}
	return nil
}

// GenerateGallery publishes the HTML gallery for the current catalog.
func (a *App) GenerateGallery() error {
	catalog, err := a.store.ListMovies()
	if err != nil {
		return err
	}
	if catalog.Len() == 0 {
		a.noMovies()
		return nil
	}
	if a.gallery == nil {
		return fail(movies.ErrTemplateUnavailable, "An error occurred trying to generate the website. Make sure the template exists/readable.")
	}
	if err := a.gallery.Publish(catalog); err != nil {
		a.logger.Warn("gallery generation failed",
			logging.String(logging.FieldEventType, "gallery_failed"),
			logging.Error(err),
			logging.String(logging.FieldErrorHint, "check gallery.template_path and gallery.output_path"))
		return fail(movies.ErrTemplateUnavailable, "An error occurred trying to generate the website. Make sure the template exists/readable.")
	}
	a.console.Println("Website generated!")
	return nil
}

func (a *App) promptAdd(ctx context.Context) error {
	title, err := a.console.Prompt("Enter the new movie name: ")
	if err != nil {
		return err
	}
	return a.Add(ctx, title)
}
