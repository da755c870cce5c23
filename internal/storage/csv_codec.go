package storage

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"marquee/internal/movies"
)

// csvHeader is the fixed column order written by CSVCodec.
var csvHeader = []string{"title", "year", "rating", "poster_url", "imdb_url", "notes"}

// CSVCodec reads and writes the header-plus-rows CSV catalog format.
type CSVCodec struct{}

// Name implements Codec.
func (CSVCodec) Name() string { return "csv" }

// Decode parses CSV data. Columns are located by header name, so files without
// optional trailing columns still load.
func (CSVCodec) Decode(data []byte) (*movies.Catalog, error) {
	catalog := movies.NewCatalog()
	reader := csv.NewReader(bytes.NewReader(data))
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return catalog, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: read csv header: %v", movies.ErrMalformedData, err)
	}
	columns := make(map[string]int, len(header))
	for i, name := range header {
		if _, seen := columns[name]; !seen {
			columns[name] = i
		}
	}
	for _, required := range []string{"title", "year", "rating"} {
		if _, ok := columns[required]; !ok {
			return nil, fmt.Errorf("%w: csv header missing %q column", movies.ErrMalformedData, required)
		}
	}

	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: read csv row: %v", movies.ErrMalformedData, err)
		}
		field := func(name string) string {
			idx, ok := columns[name]
			if !ok || idx >= len(row) {
				return ""
			}
			return row[idx]
		}
		title := field("title")
		year, err := strconv.Atoi(strings.TrimSpace(field("year")))
		if err != nil {
			return nil, fmt.Errorf("%w: year %q for %q", movies.ErrMalformedData, field("year"), title)
		}
		rating, err := strconv.ParseFloat(strings.TrimSpace(field("rating")), 64)
		if err != nil {
			return nil, fmt.Errorf("%w: rating %q for %q", movies.ErrMalformedData, field("rating"), title)
		}
		catalog.Put(movies.Record{
			Title:     title,
			Year:      year,
			Rating:    rating,
			PosterURL: field("poster_url"),
			IMDbURL:   field("imdb_url"),
			Notes:     field("notes"),
		})
	}
	return catalog, nil
}

// Encode writes the header row followed by one row per record.
func (CSVCodec) Encode(catalog *movies.Catalog) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)
	if err := writer.Write(csvHeader); err != nil {
		return nil, err
	}
	for _, rec := range catalog.Records() {
		row := []string{
			rec.Title,
			strconv.Itoa(rec.Year),
			movies.FormatRating(rec.Rating),
			rec.PosterURL,
			rec.IMDbURL,
			rec.Notes,
		}
		if err := writer.Write(row); err != nil {
			return nil, err
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
