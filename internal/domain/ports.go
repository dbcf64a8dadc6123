package domain

import "context"

type HotelRepository interface {
	// Write paths
	UpsertHotel(ctx context.Context, h Hotel) error
	EnsureHotel(ctx context.Context, h Hotel) error // inserts h only when its id is unknown
	AppendReview(ctx context.Context, hotelID int64, r Review) error

	// Read paths
	GetHotel(ctx context.Context, id int64) (Hotel, error)
	ListHotels(ctx context.Context) ([]Hotel, error)
	ListReviews(ctx context.Context, hotelID int64) ([]Review, error)
}

// UserRepository stores the user aggregate. Favorites and bookings are
// written back whole; concurrent writers for one user are last-write-wins.
type UserRepository interface {
	CreateUser(ctx context.Context, u *User) error // fills u.ID; ErrEmailTaken on duplicate
	UserByID(ctx context.Context, id int64) (User, error)
	UserByEmail(ctx context.Context, email string) (User, error)
	SaveFavorites(ctx context.Context, userID int64, favs FavoriteSet) error
	AppendBooking(ctx context.Context, userID int64, b Booking) error
	UpdateBooking(ctx context.Context, userID int64, b Booking) error
}

type Cache interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, v any, ttlSec int) error
	Del(ctx context.Context, key string) error
}

// CatalogSource fetches the hotel catalog from an upstream content API.
type CatalogSource interface {
	ListHotels(ctx context.Context) ([]Hotel, error)
	GetHotel(ctx context.Context, id int64) (Hotel, error)
}

// PaymentGateway is the external payment collaborator. Booking creation
// asks it to authorize the stay total before persisting.
type PaymentGateway interface {
	Authorize(ctx context.Context, p PaymentRequest) (PaymentReceipt, error)
}

type PaymentRequest struct {
	UserID    int64
	BookingID string
	Amount    float64
	Currency  string
}

type PaymentReceipt struct {
	Reference string
	Approved  bool
}
