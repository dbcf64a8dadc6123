package app

import (
	"math"
	"strings"

	"staycation/internal/domain"
)

/********** alias registries (single source of truth) **********/

// amenityAliases maps the spellings upstream feeds use onto the amenity
// ids the filters understand.
var amenityAliases = map[string][]string{
	"wifi":        {"wifi", "wi-fi", "free wifi", "wireless internet", "internet"},
	"pool":        {"pool", "swimming pool", "outdoor pool", "indoor pool"},
	"ac":          {"ac", "a/c", "air conditioning", "air-conditioning", "aircon"},
	"gym":         {"gym", "fitness", "fitness center", "fitness centre"},
	"parking":     {"parking", "free parking", "car park", "valet parking"},
	"restaurant":  {"restaurant", "dining", "on-site restaurant"},
	"petFriendly": {"petfriendly", "pet friendly", "pet-friendly", "pets allowed"},
}

var roomTypeAliases = map[string][]string{
	"Single": {"single", "single room"},
	"Double": {"double", "double room", "twin"},
	"Deluxe": {"deluxe", "deluxe room"},
	"Suite":  {"suite", "junior suite", "executive suite"},
}

var amenityIndex = invert(amenityAliases)
var roomTypeIndex = invert(roomTypeAliases)

func invert(m map[string][]string) map[string]string {
	out := make(map[string]string)
	for canon, names := range m {
		for _, n := range names {
			out[n] = canon
		}
	}
	return out
}

/********** tiny helpers **********/

// canonical lower-cases and trims s, then resolves it through idx. Unknown
// names pass through trimmed.
func canonical(idx map[string]string, s string) string {
	t := strings.TrimSpace(s)
	if c, ok := idx[strings.ToLower(t)]; ok {
		return c
	}
	return t
}

// canonicalSet resolves every name and removes empties and duplicates,
// keeping first-seen order.
func canonicalSet(idx map[string]string, in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, 0, len(in))
	seen := make(map[string]bool, len(in))
	for _, s := range in {
		c := canonical(idx, s)
		if c == "" || seen[c] {
			continue
		}
		seen[c] = true
		out = append(out, c)
	}
	return out
}

func trimAll(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, 0, len(in))
	for _, s := range in {
		if t := strings.TrimSpace(s); t != "" {
			out = append(out, t)
		}
	}
	return out
}

/********** hotel **********/

// normalizeHotel cleans an upstream hotel record before it is stored.
func normalizeHotel(h domain.Hotel) domain.Hotel {
	h.Name = strings.TrimSpace(h.Name)
	h.Location = strings.TrimSpace(h.Location)
	h.City = strings.TrimSpace(h.City)
	h.Address = strings.TrimSpace(h.Address)
	h.Description = strings.TrimSpace(h.Description)
	h.Phone = strings.TrimSpace(h.Phone)
	h.Email = domain.NormalizeEmail(h.Email)
	if h.Location == "" {
		h.Location = h.City
	}
	h.Amenities = canonicalSet(amenityIndex, h.Amenities)
	h.RoomTypes = canonicalSet(roomTypeIndex, h.RoomTypes)
	h.Policies = trimAll(h.Policies)
	if h.Discount == nil && h.OriginalPrice != nil && *h.OriginalPrice > h.Price && h.Price > 0 {
		ratio := h.Price / *h.OriginalPrice
		d := int(math.Round((1 - ratio) * 100))
		h.Discount = &d
	}
	// Reviews arrive through their own write path.
	h.Reviews = nil
	return h
}
