package movies

import (
	"math"
	"strconv"
	"strings"
)

// Record is a single movie entry. Title is the catalog key and is stored
// verbatim.
type Record struct {
	Title     string  `json:"title"`
	Year      int     `json:"year"`
	Rating    float64 `json:"rating"`
	PosterURL string  `json:"poster_url"`
	IMDbURL   string  `json:"imdb_url"`
	Notes     string  `json:"notes"`
}

// FormatRating renders a rating with at least one fractional digit, so 8 is
// written as "8.0" and 7.25 stays "7.25".
func FormatRating(value float64) string {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return strconv.FormatFloat(value, 'f', -1, 64)
	}
	text := strconv.FormatFloat(value, 'f', -1, 64)
	if !strings.ContainsAny(text, ".e") {
		text += ".0"
	}
	return text
}

// IMDbTitleURL builds the canonical IMDb page URL for an IMDb identifier.
func IMDbTitleURL(imdbID string) string {
	return "https://www.imdb.com/title/" + strings.TrimSpace(imdbID) + "/"
}
