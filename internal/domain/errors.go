package domain

import "errors"

var (
	ErrNotFound        = errors.New("not found")
	ErrUserNotFound    = errors.New("user not found")
	ErrHotelNotFound   = errors.New("hotel not found")
	ErrBookingNotFound = errors.New("booking not found")
)

var (
	ErrValidation       = errors.New("validation error")
	ErrInvalidDateRange = errors.New("check-out must be after check-in")
	ErrInvalidGuests    = errors.New("at least one guest is required")
	ErrInvalidPrice     = errors.New("total price must be positive")
	ErrInvalidRating    = errors.New("rating must be between 1 and 5")
)

var (
	ErrEmailTaken         = errors.New("user already exists with this email")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidToken       = errors.New("invalid token")
)

var (
	ErrInvalidTransition = errors.New("booking status transition not allowed")
	ErrPaymentDeclined   = errors.New("payment declined")
)
