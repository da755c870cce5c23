package storage

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"

	"marquee/internal/movies"
)

const jsonIndent = "    "

// JSONCodec reads and writes a single JSON object keyed by title. Key order is
// kept in both directions.
type JSONCodec struct{}

// Name implements Codec.
func (JSONCodec) Name() string { return "json" }

type jsonEntry struct {
	Title     string      `json:"title"`
	Year      json.Number `json:"year"`
	Rating    json.Number `json:"rating"`
	PosterURL string      `json:"poster_url"`
	IMDbURL   string      `json:"imdb_url"`
	Notes     string      `json:"notes"`
}

type jsonRating float64

func (r jsonRating) MarshalJSON() ([]byte, error) {
	value := float64(r)
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return nil, fmt.Errorf("rating %v is not representable in JSON", value)
	}
	return []byte(movies.FormatRating(value)), nil
}

type jsonRecord struct {
	Title     string     `json:"title"`
	Year      int        `json:"year"`
	Rating    jsonRating `json:"rating"`
	PosterURL string     `json:"poster_url"`
	IMDbURL   string     `json:"imdb_url"`
	Notes     string     `json:"notes"`
}

// Decode parses a JSON catalog. Empty input is an empty catalog.
func (JSONCodec) Decode(data []byte) (*movies.Catalog, error) {
	catalog := movies.NewCatalog()
	if len(bytes.TrimSpace(data)) == 0 {
		return catalog, nil
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", movies.ErrMalformedData, err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("%w: catalog must be a JSON object", movies.ErrMalformedData)
	}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("%w: %v", movies.ErrMalformedData, err)
		}
		title, _ := keyTok.(string)
		var entry jsonEntry
		if err := dec.Decode(&entry); err != nil {
			return nil, fmt.Errorf("%w: entry %q: %v", movies.ErrMalformedData, title, err)
		}
		year, err := strconv.Atoi(entry.Year.String())
		if err != nil {
			return nil, fmt.Errorf("%w: year %q for %q", movies.ErrMalformedData, entry.Year, title)
		}
		rating, err := entry.Rating.Float64()
		if err != nil {
			return nil, fmt.Errorf("%w: rating %q for %q", movies.ErrMalformedData, entry.Rating, title)
		}
		catalog.Put(movies.Record{
			Title:     title,
			Year:      year,
			Rating:    rating,
			PosterURL: entry.PosterURL,
			IMDbURL:   entry.IMDbURL,
			Notes:     entry.Notes,
		})
	}
	if _, err := dec.Token(); err != nil {
		return nil, fmt.Errorf("%w: %v", movies.ErrMalformedData, err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: trailing data after catalog object", movies.ErrMalformedData)
	}
	return catalog, nil
}

// Encode writes the catalog as an indented object in catalog order.
func (JSONCodec) Encode(catalog *movies.Catalog) ([]byte, error) {
	records := catalog.Records()
	if len(records) == 0 {
		return []byte("{}"), nil
	}
	var buf bytes.Buffer
	buf.WriteString("{\n")
	for i, rec := range records {
		key, err := marshalJSON(rec.Title, "", "")
		if err != nil {
			return nil, err
		}
		value, err := marshalJSON(jsonRecord{
			Title:     rec.Title,
			Year:      rec.Year,
			Rating:    jsonRating(rec.Rating),
			PosterURL: rec.PosterURL,
			IMDbURL:   rec.IMDbURL,
			Notes:     rec.Notes,
		}, jsonIndent, jsonIndent)
		if err != nil {
			return nil, fmt.Errorf("encode %q: %w", rec.Title, err)
		}
		buf.WriteString(jsonIndent)
		buf.Write(key)
		buf.WriteString(": ")
		buf.Write(value)
		if i < len(records)-1 {
			buf.WriteByte(',')
		}
		buf.WriteByte('\n')
	}
	buf.WriteString("}")
	return buf.Bytes(), nil
}

func marshalJSON(v any, prefix, indent string) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if indent != "" {
		enc.SetIndent(prefix, indent)
	}
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
