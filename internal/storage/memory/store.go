// Package memory is a process-local implementation of the hotel and user
// repositories, used for development and tests.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"staycation/internal/domain"
)

type Store struct {
	mu      sync.RWMutex
	hotels  map[int64]domain.Hotel
	users   map[int64]domain.User
	byEmail map[string]int64
	nextID  int64
	now     func() time.Time
}

func New() *Store {
	return &Store{
		hotels:  make(map[int64]domain.Hotel),
		users:   make(map[int64]domain.User),
		byEmail: make(map[string]int64),
		now:     time.Now,
	}
}

// ---- hotels ----

func (s *Store) UpsertHotel(ctx context.Context, h domain.Hotel) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if old, ok := s.hotels[h.ID]; ok {
		h.Reviews = old.Reviews
	} else {
		h.Reviews = nil
	}
	s.hotels[h.ID] = cloneHotel(h)
	return nil
}

func (s *Store) EnsureHotel(ctx context.Context, h domain.Hotel) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.hotels[h.ID]; !ok {
		h.Reviews = nil
		s.hotels[h.ID] = cloneHotel(h)
	}
	return nil
}

func (s *Store) AppendReview(ctx context.Context, hotelID int64, r domain.Review) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	h, ok := s.hotels[hotelID]
	if !ok {
		return domain.ErrHotelNotFound
	}
	h.Reviews = append(append([]domain.Review(nil), h.Reviews...), r)
	s.hotels[hotelID] = h
	return nil
}

func (s *Store) GetHotel(ctx context.Context, id int64) (domain.Hotel, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	h, ok := s.hotels[id]
	if !ok {
		return domain.Hotel{}, domain.ErrHotelNotFound
	}
	return cloneHotel(h), nil
}

// ListHotels returns hotels with a price, i.e. catalog entries, by id.
// Placeholder records created by reviews are left out.
func (s *Store) ListHotels(ctx context.Context) ([]domain.Hotel, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Hotel, 0, len(s.hotels))
	for _, h := range s.hotels {
		if h.Price <= 0 {
			continue
		}
		h := cloneHotel(h)
		h.Reviews = nil
		out = append(out, h)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *Store) ListReviews(ctx context.Context, hotelID int64) ([]domain.Review, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	h, ok := s.hotels[hotelID]
	if !ok {
		return []domain.Review{}, nil
	}
	return append([]domain.Review{}, h.Reviews...), nil
}

// ---- users ----

func (s *Store) CreateUser(ctx context.Context, u *domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	email := domain.NormalizeEmail(u.Email)
	if _, dup := s.byEmail[email]; dup {
		return domain.ErrEmailTaken
	}
	s.nextID++
	u.ID = s.nextID
	u.Email = email
	if u.CreatedAt.IsZero() {
		u.CreatedAt = s.now().UTC()
	}
	s.users[u.ID] = cloneUser(*u)
	s.byEmail[email] = u.ID
	return nil
}

func (s *Store) UserByID(ctx context.Context, id int64) (domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.users[id]
	if !ok {
		return domain.User{}, domain.ErrUserNotFound
	}
	return cloneUser(u), nil
}

func (s *Store) UserByEmail(ctx context.Context, email string) (domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	id, ok := s.byEmail[domain.NormalizeEmail(email)]
	if !ok {
		return domain.User{}, domain.ErrUserNotFound
	}
	return cloneUser(s.users[id]), nil
}

func (s *Store) SaveFavorites(ctx context.Context, userID int64, favs domain.FavoriteSet) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[userID]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.Favorites = favs.Clone()
	s.users[userID] = u
	return nil
}

func (s *Store) AppendBooking(ctx context.Context, userID int64, b domain.Booking) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[userID]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.Bookings = append(append([]domain.Booking(nil), u.Bookings...), b)
	s.users[userID] = u
	return nil
}

func (s *Store) UpdateBooking(ctx context.Context, userID int64, b domain.Booking) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[userID]
	if !ok {
		return domain.ErrUserNotFound
	}
	for i := range u.Bookings {
		if u.Bookings[i].ID == b.ID {
			bs := append([]domain.Booking(nil), u.Bookings...)
			bs[i] = b
			u.Bookings = bs
			s.users[userID] = u
			return nil
		}
	}
	return domain.ErrBookingNotFound
}

func cloneHotel(h domain.Hotel) domain.Hotel {
	h.RoomTypes = append([]string(nil), h.RoomTypes...)
	h.Amenities = append([]string(nil), h.Amenities...)
	h.Policies = append([]string(nil), h.Policies...)
	h.Reviews = append([]domain.Review(nil), h.Reviews...)
	return h
}

func cloneUser(u domain.User) domain.User {
	u.Favorites = u.Favorites.Clone()
	u.Bookings = append([]domain.Booking{}, u.Bookings...)
	return u
}
