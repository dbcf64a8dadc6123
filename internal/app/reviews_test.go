package app_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"staycation/internal/app"
	"staycation/internal/domain"
	"staycation/internal/storage/memory"
)

func TestReviews_UnknownHotelIsCreated(t *testing.T) {
	ctx := context.Background()
	store := memory.New()
	svc := app.NewReviewService(store, &fakeCache{}, time.Minute)

	_, err := svc.Add(ctx, 42, "Asha", 5, "Great stay")
	require.NoError(t, err)

	rs, err := svc.List(ctx, 42)
	require.NoError(t, err)
	require.Len(t, rs, 1)
	assert.Equal(t, "Asha", rs[0].Author)

	h, err := store.GetHotel(ctx, 42)
	require.NoError(t, err)
	assert.Equal(t, "Hotel 42", h.Name)
}

func TestReviews_ExistingHotelKeepsRecord(t *testing.T) {
	ctx := context.Background()
	store := memory.New()
	require.NoError(t, store.UpsertHotel(ctx, domain.Hotel{ID: 1, Name: "Sea Breeze", Price: 10, Rating: 4}))
	svc := app.NewReviewService(store, &fakeCache{}, time.Minute)

	_, err := svc.Add(ctx, 1, "A", 3, "ok")
	require.NoError(t, err)
	_, err = svc.Add(ctx, 1, "B", 4, "good")
	require.NoError(t, err)

	rs, err := svc.List(ctx, 1)
	require.NoError(t, err)
	require.Len(t, rs, 2)
	assert.Equal(t, "A", rs[0].Author)
	assert.Equal(t, "B", rs[1].Author)

	h, err := store.GetHotel(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Sea Breeze", h.Name)
}

func TestReviews_RatingBounds(t *testing.T) {
	svc := app.NewReviewService(memory.New(), &fakeCache{}, time.Minute)
	for _, r := range []int{0, 6, -1} {
		_, err := svc.Add(context.Background(), 1, "A", r, "")
		assert.ErrorIs(t, err, domain.ErrInvalidRating)
	}
}

func TestReviews_CacheAsideAndInvalidation(t *testing.T) {
	ctx := context.Background()
	cache := &fakeCache{}
	svc := app.NewReviewService(memory.New(), cache, time.Minute)

	rs, err := svc.List(ctx, 3)
	require.NoError(t, err)
	assert.Empty(t, rs)
	assert.NotNil(t, rs)

	_, err = svc.Add(ctx, 3, "A", 4, "nice")
	require.NoError(t, err)
	assert.Contains(t, cache.dels, "reviews:3")

	rs, err = svc.List(ctx, 3)
	require.NoError(t, err)
	require.Len(t, rs, 1, "stale empty list must not be served after an add")

	hits := cache.hits
	rs, err = svc.List(ctx, 3)
	require.NoError(t, err)
	assert.Len(t, rs, 1)
	assert.Equal(t, hits+1, cache.hits)
}
