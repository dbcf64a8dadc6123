package domain

import (
	"strconv"
	"time"
)

type Hotel struct {
	ID            int64    `json:"id" yaml:"id"`
	Name          string   `json:"name" yaml:"name"`
	Location      string   `json:"location" yaml:"location"`
	City          string   `json:"city" yaml:"city"`
	Address       string   `json:"address,omitempty" yaml:"address"`
	Rating        int      `json:"rating" yaml:"rating"` // stars 1..5
	Price         float64  `json:"price" yaml:"price"`   // per night
	OriginalPrice *float64 `json:"originalPrice,omitempty" yaml:"original_price"`
	Discount      *int     `json:"discount,omitempty" yaml:"discount"` // percent
	RoomTypes     []string `json:"roomTypes" yaml:"room_types"`
	Amenities     []string `json:"amenities" yaml:"amenities"`
	Description   string   `json:"description,omitempty" yaml:"description"`
	Policies      []string `json:"policies,omitempty" yaml:"policies"`
	Phone         string   `json:"phone,omitempty" yaml:"phone"`
	Email         string   `json:"email,omitempty" yaml:"email"`
	CheckInTime   string   `json:"checkIn,omitempty" yaml:"check_in"`
	CheckOutTime  string   `json:"checkOut,omitempty" yaml:"check_out"`
	SoldOut       bool     `json:"soldOut" yaml:"sold_out"`
	Reviews       []Review `json:"reviews,omitempty" yaml:"-"`
}

// PlaceholderHotel is the record created when a review references a hotel
// the store has never seen.
func PlaceholderHotel(id int64) Hotel {
	return Hotel{ID: id, Name: "Hotel " + strconv.FormatInt(id, 10)}
}

// HasAmenity reports whether the hotel lists a.
func (h Hotel) HasAmenity(a string) bool {
	for _, x := range h.Amenities {
		if x == a {
			return true
		}
	}
	return false
}

type Review struct {
	Author    string    `json:"user"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"date"`
}

const (
	MinRating = 1
	MaxRating = 5
)

func ValidRating(r int) bool { return r >= MinRating && r <= MaxRating }
