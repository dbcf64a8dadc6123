package domain

import (
	"fmt"
	"time"
)

type BookingStatus string

const (
	BookingConfirmed BookingStatus = "confirmed"
	BookingCancelled BookingStatus = "cancelled"
	BookingCompleted BookingStatus = "completed"
)

// transitions lists the statuses reachable from each status. Statuses
// without an entry are terminal.
var transitions = map[BookingStatus][]BookingStatus{
	BookingConfirmed: {BookingCancelled, BookingCompleted},
}

func (s BookingStatus) Valid() bool {
	switch s {
	case BookingConfirmed, BookingCancelled, BookingCompleted:
		return true
	}
	return false
}

func (s BookingStatus) Terminal() bool { return len(transitions[s]) == 0 }

func (s BookingStatus) CanTransition(to BookingStatus) bool {
	for _, next := range transitions[s] {
		if next == to {
			return true
		}
	}
	return false
}

type Guests struct {
	Adults   int `json:"adults"`
	Children int `json:"children"`
}

func (g Guests) Total() int { return g.Adults + g.Children }

func (g Guests) Validate() error {
	if g.Adults < 0 || g.Children < 0 || g.Total() < 1 {
		return ErrInvalidGuests
	}
	return nil
}

type Booking struct {
	ID         string        `json:"id"`
	HotelID    int64         `json:"hotelId"`
	HotelName  string        `json:"hotelName"`
	CheckIn    time.Time     `json:"checkIn"`
	CheckOut   time.Time     `json:"checkOut"`
	Guests     Guests        `json:"guests"`
	TotalPrice float64       `json:"totalPrice"`
	Status     BookingStatus `json:"status"`
	BookedAt   time.Time     `json:"bookingDate"`
	UpdatedAt  time.Time     `json:"updatedAt"`
}

// ValidateStay checks the request-level invariants of a new booking.
func ValidateStay(checkIn, checkOut time.Time, g Guests, total float64) error {
	if checkIn.IsZero() || checkOut.IsZero() || !checkIn.Before(checkOut) {
		return ErrInvalidDateRange
	}
	if err := g.Validate(); err != nil {
		return err
	}
	if total <= 0 {
		return ErrInvalidPrice
	}
	return nil
}

// Transition moves the booking to status to, or fails with
// ErrInvalidTransition when the lifecycle does not allow it.
func (b *Booking) Transition(to BookingStatus, now time.Time) error {
	if !b.Status.CanTransition(to) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, b.Status, to)
	}
	b.Status = to
	b.UpdatedAt = now
	return nil
}
