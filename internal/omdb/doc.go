// Package omdb provides the minimal OMDb API client used to enrich new catalog
// entries.
//
// Lookup fetches a single title and returns the canonical title, year, IMDb
// rating, poster URL, and IMDb identifier. OMDb reports missing values as
// "N/A"; the client normalizes those to empty strings so callers only have to
// check for blanks. Options allow tests to supply custom HTTP clients.
package omdb
