package movies

import (
	"math"
	"slices"
)

// Summary holds aggregate rating statistics for a catalog.
type Summary struct {
	Count   int     `json:"count"`
	Average float64 `json:"average"`
	Median  float64 `json:"median"`
	Best    Record  `json:"best"`
	Worst   Record  `json:"worst"`
}

// Summarize computes rating statistics. It reports false for an empty catalog.
// Average is rounded to three decimals.
func Summarize(catalog *Catalog) (Summary, bool) {
	records := catalog.Records()
	if len(records) == 0 {
		return Summary{}, false
	}
	ratings := make([]float64, 0, len(records))
	for _, rec := range records {
		ratings = append(ratings, rec.Rating)
	}
	best, _ := Highest(records)
	worst, _ := Lowest(records)
	return Summary{
		Count:   len(records),
		Average: Round(Average(ratings), 3),
		Median:  Median(ratings),
		Best:    best,
		Worst:   worst,
	}, true
}

// Average returns the arithmetic mean of values, or 0 for none.
func Average(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// Median returns the middle value of values; for an even count it is the mean
// of the two middle values. The input slice is not modified.
func Median(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sorted := slices.Clone(values)
	slices.Sort(sorted)
	mid := len(sorted) / 2
	if len(sorted)%2 == 0 {
		return (sorted[mid-1] + sorted[mid]) / 2
	}
	return sorted[mid]
}

// Round rounds value to the given number of decimal places.
func Round(value float64, places int) float64 {
	scale := math.Pow(10, float64(places))
	return math.Round(value*scale) / scale
}

// Highest returns the best-rated record. The first record wins ties.
func Highest(records []Record) (Record, bool) {
	if len(records) == 0 {
		return Record{}, false
	}
	best := records[0]
	for _, rec := range records[1:] {
		if rec.Rating > best.Rating {
			best = rec
		}
	}
	return best, true
}

// Lowest returns the worst-rated record. The first record wins ties.
func Lowest(records []Record) (Record, bool) {
	if len(records) == 0 {
		return Record{}, false
	}
	worst := records[0]
	for _, rec := range records[1:] {
		if rec.Rating < worst.Rating {
			worst = rec
		}
	}
	return worst, true
}

// SortedByRating returns the records ordered by rating, highest first. Equal
// ratings keep catalog order.
func SortedByRating(catalog *Catalog) []Record {
	records := catalog.Records()
	slices.SortStableFunc(records, func(a, b Record) int {
		switch {
		case a.Rating > b.Rating:
			return -1
		case a.Rating < b.Rating:
			return 1
		default:
			return 0
		}
	})
	return records
}
