package movies

import (
	"strconv"

	"marquee/internal/textutil"
)

// Match returns every record whose title contains query, ignoring case, in
// catalog order. Matching is plain substring containment.
func Match(catalog *Catalog, query string) []Record {
	var matches []Record
	for _, rec := range catalog.Records() {
		if textutil.ContainsFold(rec.Title, query) {
			matches = append(matches, rec)
		}
	}
	return matches
}

// FindTitle returns the record whose title equals query, ignoring case.
func FindTitle(catalog *Catalog, query string) (Record, bool) {
	for _, rec := range catalog.Records() {
		if textutil.EqualFold(rec.Title, query) {
			return rec, true
		}
	}
	return Record{}, false
}

// SelectMatch resolves a numbered-list answer against matches. Input "1" picks
// the first match; "0" cancels and returns ok=false with a nil error. Anything
// else, including out-of-range numbers, returns ErrAmbiguousChoice.
func SelectMatch(matches []Record, input string) (Record, bool, error) {
	if input == "0" {
		return Record{}, false, nil
	}
	if !textutil.IsDigits(input) {
		return Record{}, false, ErrAmbiguousChoice
	}
	index, err := strconv.Atoi(input)
	if err != nil || index < 1 || index > len(matches) {
		return Record{}, false, ErrAmbiguousChoice
	}
	return matches[index-1], true, nil
}
