package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"staycation/internal/domain"
)

type ReviewService struct {
	hotels   domain.HotelRepository
	cache    domain.Cache
	cacheTTL time.Duration
	now      func() time.Time
}

func NewReviewService(hotels domain.HotelRepository, c domain.Cache, ttl time.Duration) *ReviewService {
	return &ReviewService{hotels: hotels, cache: c, cacheTTL: ttl, now: time.Now}
}

func (s *ReviewService) WithClock(now func() time.Time) *ReviewService {
	s.now = now
	return s
}

// Add appends a review to the hotel's history. A hotel the store has
// never seen is created as a placeholder first.
func (s *ReviewService) Add(ctx context.Context, hotelID int64, author string, rating int, comment string) (domain.Review, error) {
	if !domain.ValidRating(rating) {
		return domain.Review{}, domain.ErrInvalidRating
	}
	if err := s.hotels.EnsureHotel(ctx, domain.PlaceholderHotel(hotelID)); err != nil {
		return domain.Review{}, fmt.Errorf("ensure hotel: %w", err)
	}
	r := domain.Review{
		Author:    strings.TrimSpace(author),
		Rating:    rating,
		Comment:   strings.TrimSpace(comment),
		CreatedAt: s.now().UTC(),
	}
	if err := s.hotels.AppendReview(ctx, hotelID, r); err != nil {
		return domain.Review{}, fmt.Errorf("append review: %w", err)
	}
	_ = s.cache.Del(ctx, reviewsKey(hotelID))
	_ = s.cache.Del(ctx, hotelKey(hotelID))
	log.Info().Int64("hotel_id", hotelID).Int("rating", rating).Msg("review added")
	return r, nil
}

// List returns the hotel's reviews oldest first. Unknown hotels have none.
func (s *ReviewService) List(ctx context.Context, hotelID int64) ([]domain.Review, error) {
	key := reviewsKey(hotelID)
	var out []domain.Review
	if cacheGet(ctx, s.cache, key, &out) && out != nil {
		return out, nil
	}
	rs, err := s.hotels.ListReviews(ctx, hotelID)
	if err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}
	// copy to avoid aliasing the repo's backing array
	out = append([]domain.Review{}, rs...)
	_ = s.cache.Set(ctx, key, out, int(s.cacheTTL.Seconds()))
	return out, nil
}
