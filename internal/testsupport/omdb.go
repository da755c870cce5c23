package testsupport

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"marquee/internal/omdb"
)

// OMDbServer is an httptest stand-in for the OMDb API.
type OMDbServer struct {
	URL    string
	APIKey string

	requests atomic.Int32
}

// Requests returns how many lookups reached the server.
func (s *OMDbServer) Requests() int {
	return int(s.requests.Load())
}

// NewOMDbServer serves the given movies, matched by title ignoring case. Any
// other title gets OMDb's "Movie not found!" response; a wrong key gets 401.
func NewOMDbServer(t testing.TB, apiKey string, catalog ...omdb.Movie) *OMDbServer {
	t.Helper()

	byTitle := make(map[string]omdb.Movie, len(catalog))
	for _, movie := range catalog {
		byTitle[strings.ToLower(movie.Title)] = movie
	}

	fake := &OMDbServer{APIKey: apiKey}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fake.requests.Add(1)
		w.Header().Set("Content-Type", "application/json")
		if r.URL.Query().Get("apikey") != apiKey {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"Response":"False","Error":"Invalid API key!"}`))
			return
		}
		movie, ok := byTitle[strings.ToLower(r.URL.Query().Get("t"))]
		if !ok {
			_, _ = w.Write([]byte(`{"Response":"False","Error":"Movie not found!"}`))
			return
		}
		payload := map[string]string{
			"Title":      movie.Title,
			"Year":       orNA(movie.Year),
			"imdbRating": orNA(movie.IMDbRating),
			"Poster":     orNA(movie.Poster),
			"imdbID":     orNA(movie.IMDbID),
			"Response":   "True",
		}
		_ = json.NewEncoder(w).Encode(payload)
	}))
	t.Cleanup(server.Close)
	fake.URL = server.URL
	return fake
}

func orNA(value string) string {
	if value == "" {
		return "N/A"
	}
	return value
}

// Matrix is a complete OMDb record used across tests.
var Matrix = omdb.Movie{
	Title:      "The Matrix",
	Year:       "1999",
	IMDbRating: "8.7",
	Poster:     "https://img/matrix.jpg",
	IMDbID:     "tt0133093",
}
