package gallery

import (
	"bytes"
	_ "embed"
	"fmt"
	"html"
	"html/template"

	"marquee/internal/movies"
)

// Template markers replaced during rendering.
const (
	TitleMarker = "__TEMPLATE_TITLE__"
	GridMarker  = "__TEMPLATE_MOVIE_GRID__"
)

// Fallbacks used when a record has no poster or IMDb link.
const (
	PlaceholderPoster = "https://via.placeholder.com/150"
	PlaceholderLink   = "#"
)

//go:embed default_template.html
var defaultTemplate []byte

// DefaultTemplate returns a copy of the bundled page template.
func DefaultTemplate() []byte {
	return bytes.Clone(defaultTemplate)
}

var cardTemplate = template.Must(template.New("cards").Parse(
	`{{range .}}<li><div class="movie">` +
		`<a href="{{.Link}}" target="_blank">` +
		`<img src="{{.Poster}}" alt="{{.Title}} Poster" class="movie-poster">` +
		`</a><div class="movie-details">` +
		`<div class="movie-title">{{.Title}} ({{.Year}})</div>` +
		`<div class="movie-rating">Rating: {{.Rating}}</div>` +
		`{{if .Notes}}<div class='movie-note'>{{.Notes}}</div>{{end}}` +
		`</div></div></li>{{end}}`))

type card struct {
	Title  string
	Year   int
	Rating string
	Notes  string
	Poster string
	Link   string
}

// Render fills page with the catalog. Both markers must be present; a
// template without them fails with movies.ErrTemplateUnavailable.
func Render(catalog *movies.Catalog, title string, page []byte) ([]byte, error) {
	for _, marker := range []string{TitleMarker, GridMarker} {
		if !bytes.Contains(page, []byte(marker)) {
			return nil, fmt.Errorf("%w: template is missing %s", movies.ErrTemplateUnavailable, marker)
		}
	}

	grid, err := renderGrid(catalog)
	if err != nil {
		return nil, err
	}

	out := bytes.ReplaceAll(page, []byte(TitleMarker), []byte(html.EscapeString(title)))
	out = bytes.ReplaceAll(out, []byte(GridMarker), grid)
	return out, nil
}

func renderGrid(catalog *movies.Catalog) ([]byte, error) {
	records := catalog.Records()
	cards := make([]card, 0, len(records))
	for _, rec := range records {
		c := card{
			Title:  rec.Title,
			Year:   rec.Year,
			Rating: movies.FormatRating(rec.Rating),
			Notes:  rec.Notes,
			Poster: rec.PosterURL,
			Link:   rec.IMDbURL,
		}
		if c.Poster == "" {
			c.Poster = PlaceholderPoster
		}
		if c.Link == "" {
			c.Link = PlaceholderLink
		}
		cards = append(cards, c)
	}

	var buf bytes.Buffer
	if err := cardTemplate.Execute(&buf, cards); err != nil {
		return nil, fmt.Errorf("render movie grid: %w", err)
	}
	return buf.Bytes(), nil
}
