package domain

import (
	"encoding/json"
	"sort"
	"strings"
	"time"
)

type User struct {
	ID           int64       `json:"id"`
	Name         string      `json:"name"`
	Email        string      `json:"email"`
	PasswordHash string      `json:"-"`
	Phone        string      `json:"phone"`
	Favorites    FavoriteSet `json:"favorites"`
	Bookings     []Booking   `json:"bookings"`
	CreatedAt    time.Time   `json:"createdAt"`
}

// Identity is what a verified session token tells us about the caller.
type Identity struct {
	UserID   int64
	Email    string
	IssuedAt time.Time
}

// NormalizeEmail trims and lower-cases an address before it is compared
// or stored.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// FavoriteSet is a set of hotel ids. The zero value is an empty set ready
// to use after Add initializes it.
type FavoriteSet map[int64]struct{}

func NewFavoriteSet(ids ...int64) FavoriteSet {
	s := make(FavoriteSet, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}
	return s
}

func (s FavoriteSet) Has(id int64) bool {
	_, ok := s[id]
	return ok
}

// Toggle flips membership of id and reports whether it is now present.
func (s *FavoriteSet) Toggle(id int64) bool {
	if *s == nil {
		*s = FavoriteSet{}
	}
	if s.Has(id) {
		delete(*s, id)
		return false
	}
	(*s)[id] = struct{}{}
	return true
}

// IDs returns the members in ascending order.
func (s FavoriteSet) IDs() []int64 {
	out := make([]int64, 0, len(s))
	for id := range s {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func (s FavoriteSet) Clone() FavoriteSet {
	return NewFavoriteSet(s.IDs()...)
}

// MarshalJSON encodes the set as a sorted array of ids.
func (s FavoriteSet) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.IDs())
}

func (s *FavoriteSet) UnmarshalJSON(b []byte) error {
	var ids []int64
	if err := json.Unmarshal(b, &ids); err != nil {
		return err
	}
	*s = NewFavoriteSet(ids...)
	return nil
}
