package catalog

import (
	"strings"

	"staycation/internal/domain"
)

// DefaultPriceMax is the upper bound the UI treats as "no limit". It is
// still applied as a literal bound.
const DefaultPriceMax = 10000

type Query struct {
	Location string
}

type Filters struct {
	PriceMin  float64
	PriceMax  float64
	Stars     []int
	RoomTypes []string
	Amenities []string
}

func DefaultFilters() Filters {
	return Filters{PriceMin: 0, PriceMax: DefaultPriceMax}
}

// Active reports whether any filter narrows the default result set.
func (f Filters) Active() bool {
	return len(f.Stars) > 0 || len(f.RoomTypes) > 0 || len(f.Amenities) > 0 ||
		f.PriceMin > 0 || f.PriceMax < DefaultPriceMax
}

func (q Query) matches(h domain.Hotel) bool {
	term := strings.ToLower(strings.TrimSpace(q.Location))
	if term == "" {
		return true
	}
	return strings.Contains(strings.ToLower(h.Name), term) ||
		strings.Contains(strings.ToLower(h.Location), term) ||
		strings.Contains(strings.ToLower(h.City), term)
}

func (f Filters) matchPrice(h domain.Hotel) bool {
	return h.Price >= f.PriceMin && h.Price <= f.PriceMax
}

func (f Filters) matchStars(h domain.Hotel) bool {
	if len(f.Stars) == 0 {
		return true
	}
	for _, s := range f.Stars {
		if s == h.Rating {
			return true
		}
	}
	return false
}

func (f Filters) matchRoomTypes(h domain.Hotel) bool {
	if len(f.RoomTypes) == 0 {
		return true
	}
	for _, want := range f.RoomTypes {
		for _, rt := range h.RoomTypes {
			if rt == want {
				return true
			}
		}
	}
	return false
}

func (f Filters) matchAmenities(h domain.Hotel) bool {
	for _, a := range f.Amenities {
		if !h.HasAmenity(a) {
			return false
		}
	}
	return true
}

// Match reports whether h passes every active predicate.
func (f Filters) Match(h domain.Hotel) bool {
	return f.matchPrice(h) && f.matchStars(h) && f.matchRoomTypes(h) && f.matchAmenities(h)
}
