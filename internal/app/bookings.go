package app

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"staycation/internal/domain"
	"staycation/internal/pricing"
)

// Currency of every amount in the catalog.
const Currency = "INR"

type BookingRequest struct {
	HotelID    int64
	HotelName  string
	CheckIn    time.Time
	CheckOut   time.Time
	Guests     domain.Guests
	TotalPrice float64
}

type BookingService struct {
	users  domain.UserRepository
	hotels domain.HotelRepository
	pay    domain.PaymentGateway
	calc   pricing.Calculator
	now    func() time.Time
}

func NewBookingService(users domain.UserRepository, hotels domain.HotelRepository, pay domain.PaymentGateway, calc pricing.Calculator) *BookingService {
	return &BookingService{users: users, hotels: hotels, pay: pay, calc: calc, now: time.Now}
}

// WithClock replaces the time source; used by tests.
func (s *BookingService) WithClock(now func() time.Time) *BookingService {
	s.now = now
	return s
}

// Create validates the stay, authorizes payment and appends the booking
// to the user's history. The hotel name is copied onto the booking; when
// the request omits it the catalog name is used.
func (s *BookingService) Create(ctx context.Context, userID int64, req BookingRequest) (domain.Booking, error) {
	checkIn, checkOut := pricing.DateOnly(req.CheckIn), pricing.DateOnly(req.CheckOut)
	if err := domain.ValidateStay(checkIn, checkOut, req.Guests, req.TotalPrice); err != nil {
		return domain.Booking{}, err
	}
	if _, err := s.users.UserByID(ctx, userID); err != nil {
		return domain.Booking{}, err
	}

	name := strings.TrimSpace(req.HotelName)
	if name == "" {
		h, err := s.hotels.GetHotel(ctx, req.HotelID)
		if err != nil {
			return domain.Booking{}, err
		}
		name = h.Name
	}

	now := s.now().UTC()
	b := domain.Booking{
		ID:         uuid.NewString(),
		HotelID:    req.HotelID,
		HotelName:  name,
		CheckIn:    checkIn,
		CheckOut:   checkOut,
		Guests:     req.Guests,
		TotalPrice: req.TotalPrice,
		Status:     domain.BookingConfirmed,
		BookedAt:   now,
		UpdatedAt:  now,
	}

	rc, err := s.pay.Authorize(ctx, domain.PaymentRequest{
		UserID: userID, BookingID: b.ID, Amount: b.TotalPrice, Currency: Currency,
	})
	if err != nil {
		if errors.Is(err, domain.ErrPaymentDeclined) {
			return domain.Booking{}, err
		}
		return domain.Booking{}, fmt.Errorf("authorize payment: %w", err)
	}
	if !rc.Approved {
		return domain.Booking{}, domain.ErrPaymentDeclined
	}

	if err := s.users.AppendBooking(ctx, userID, b); err != nil {
		return domain.Booking{}, fmt.Errorf("append booking: %w", err)
	}
	log.Info().
		Int64("user_id", userID).
		Str("booking_id", b.ID).
		Int64("hotel_id", b.HotelID).
		Float64("total", b.TotalPrice).
		Str("payment_ref", rc.Reference).
		Msg("booking created")
	return b, nil
}

// List returns the user's bookings in creation order.
func (s *BookingService) List(ctx context.Context, userID int64) ([]domain.Booking, error) {
	u, err := s.users.UserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if u.Bookings == nil {
		return []domain.Booking{}, nil
	}
	return u.Bookings, nil
}

func (s *BookingService) Cancel(ctx context.Context, userID int64, bookingID string) (domain.Booking, error) {
	return s.transition(ctx, userID, bookingID, domain.BookingCancelled)
}

func (s *BookingService) Complete(ctx context.Context, userID int64, bookingID string) (domain.Booking, error) {
	return s.transition(ctx, userID, bookingID, domain.BookingCompleted)
}

func (s *BookingService) transition(ctx context.Context, userID int64, bookingID string, to domain.BookingStatus) (domain.Booking, error) {
	u, err := s.users.UserByID(ctx, userID)
	if err != nil {
		return domain.Booking{}, err
	}
	for _, b := range u.Bookings {
		if b.ID != bookingID {
			continue
		}
		if err := b.Transition(to, s.now().UTC()); err != nil {
			return domain.Booking{}, err
		}
		if err := s.users.UpdateBooking(ctx, userID, b); err != nil {
			return domain.Booking{}, fmt.Errorf("update booking: %w", err)
		}
		log.Info().Int64("user_id", userID).Str("booking_id", b.ID).Str("status", string(to)).Msg("booking status changed")
		return b, nil
	}
	return domain.Booking{}, domain.ErrBookingNotFound
}

// Quote prices a stay at the hotel's current nightly rate.
func (s *BookingService) Quote(ctx context.Context, hotelID int64, checkIn, checkOut time.Time) (pricing.Breakdown, error) {
	h, err := s.hotels.GetHotel(ctx, hotelID)
	if err != nil {
		return pricing.Breakdown{}, err
	}
	return s.calc.Quote(h.Price, checkIn, checkOut), nil
}
