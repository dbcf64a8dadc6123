package catalog

import (
	"fmt"
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"staycation/internal/domain"
)

type SortKey string

const (
	SortPriceLow   SortKey = "price-low"
	SortPriceHigh  SortKey = "price-high"
	SortRatingHigh SortKey = "rating-high"
	SortRatingLow  SortKey = "rating-low"
	SortName       SortKey = "name"
)

var SortKeys = []SortKey{SortPriceLow, SortPriceHigh, SortRatingHigh, SortRatingLow, SortName}

// ParseSortKey maps a sort option to a key. Empty selects SortPriceLow.
func ParseSortKey(s string) (SortKey, error) {
	if s == "" {
		return SortPriceLow, nil
	}
	for _, k := range SortKeys {
		if string(k) == s {
			return k, nil
		}
	}
	return "", fmt.Errorf("%w: unknown sort %q", domain.ErrValidation, s)
}

// Search filters hotels by query and filters, then orders them by key.
// The input slice is left untouched; ties keep catalog order.
func Search(hotels []domain.Hotel, q Query, f Filters, key SortKey) []domain.Hotel {
	out := make([]domain.Hotel, 0, len(hotels))
	for _, h := range hotels {
		if !q.matches(h) {
			continue
		}
		if !f.Match(h) {
			continue
		}
		out = append(out, h)
	}
	Sort(out, key)
	return out
}

// Sort orders hotels in place, stably.
func Sort(hotels []domain.Hotel, key SortKey) {
	var less func(a, b domain.Hotel) bool
	switch key {
	case SortPriceLow:
		less = func(a, b domain.Hotel) bool { return a.Price < b.Price }
	case SortPriceHigh:
		less = func(a, b domain.Hotel) bool { return a.Price > b.Price }
	case SortRatingHigh:
		less = func(a, b domain.Hotel) bool { return a.Rating > b.Rating }
	case SortRatingLow:
		less = func(a, b domain.Hotel) bool { return a.Rating < b.Rating }
	case SortName:
		// collators are not safe for concurrent use
		c := collate.New(language.English, collate.Loose)
		less = func(a, b domain.Hotel) bool { return c.CompareString(a.Name, b.Name) < 0 }
	default:
		return
	}
	sort.SliceStable(hotels, func(i, j int) bool { return less(hotels[i], hotels[j]) })
}
