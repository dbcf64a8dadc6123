package app_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"staycation/internal/app"
	"staycation/internal/catalog"
	"staycation/internal/domain"
	"staycation/internal/storage/memory"
)

func seededStore(t *testing.T) *memory.Store {
	t.Helper()
	hs, err := catalog.LoadFile("../../data/hotels.yaml")
	require.NoError(t, err)
	store := memory.New()
	for _, h := range hs {
		require.NoError(t, store.UpsertHotel(context.Background(), h))
	}
	return store
}

func TestSearch_PaginatesAndCaches(t *testing.T) {
	ctx := context.Background()
	cache := &fakeCache{}
	q := app.NewQueryService(seededStore(t), cache, 10*time.Minute)

	res, err := q.Search(ctx, app.SearchParams{Filters: catalog.DefaultFilters(), PageSize: 5, Page: 1})
	require.NoError(t, err)
	assert.Equal(t, 12, res.Total)
	assert.Equal(t, 3, res.TotalPages)
	assert.Len(t, res.Hotels, 5)
	assert.NotEmpty(t, res.Pager)
	for i := 1; i < len(res.Hotels); i++ {
		assert.LessOrEqual(t, res.Hotels[i-1].Price, res.Hotels[i].Price)
	}

	res, err = q.Search(ctx, app.SearchParams{Filters: catalog.DefaultFilters(), PageSize: 5, Page: 3})
	require.NoError(t, err)
	assert.Len(t, res.Hotels, 2)
	assert.Equal(t, 1, cache.hits, "second search reads the cached catalog")

	res, err = q.Search(ctx, app.SearchParams{Filters: catalog.DefaultFilters(), PageSize: 5, Page: 9})
	require.NoError(t, err)
	assert.Empty(t, res.Hotels)
	assert.Equal(t, 12, res.Total)
}

func TestSearch_QueryAndFilters(t *testing.T) {
	q := app.NewQueryService(seededStore(t), &fakeCache{}, time.Minute)
	f := catalog.DefaultFilters()
	f.Amenities = []string{"wifi"}
	res, err := q.Search(context.Background(), app.SearchParams{
		Query: catalog.Query{Location: "mumbai"}, Filters: f, Sort: catalog.SortRatingHigh,
	})
	require.NoError(t, err)
	require.NotEmpty(t, res.Hotels)
	for _, h := range res.Hotels {
		assert.Equal(t, "Mumbai", h.City)
		assert.True(t, h.HasAmenity("wifi"))
	}
}

func TestGetHotel_CacheMissThenHit(t *testing.T) {
	ctx := context.Background()
	store := memory.New()
	require.NoError(t, store.UpsertHotel(ctx, domain.Hotel{ID: 42, Name: "Test", Price: 10, Rating: 3}))
	cache := &fakeCache{}
	q := app.NewQueryService(store, cache, time.Minute)

	h, err := q.GetHotel(ctx, 42)
	require.NoError(t, err)
	assert.Equal(t, "Test", h.Name)
	assert.Equal(t, 0, cache.hits)

	h, err = q.GetHotel(ctx, 42)
	require.NoError(t, err)
	assert.Equal(t, "Test", h.Name)
	assert.Equal(t, 1, cache.hits)

	_, err = q.GetHotel(ctx, 1)
	assert.ErrorIs(t, err, domain.ErrHotelNotFound)
}

func TestInvalidateCatalog(t *testing.T) {
	ctx := context.Background()
	store := memory.New()
	cache := &fakeCache{}
	q := app.NewQueryService(store, cache, time.Minute)

	hs, err := q.Catalog(ctx)
	require.NoError(t, err)
	assert.Empty(t, hs)

	require.NoError(t, store.UpsertHotel(ctx, domain.Hotel{ID: 1, Name: "New", Price: 10, Rating: 3}))
	require.NoError(t, q.InvalidateCatalog(ctx))

	hs, err = q.Catalog(ctx)
	require.NoError(t, err)
	assert.Len(t, hs, 1)
}

func TestQueries_CorruptCacheFallsBackToStore(t *testing.T) {
	ctx := context.Background()
	cache := &fakeCache{store: map[string][]byte{
		"catalog:v1": []byte("{not json"),
		"hotel:2":    []byte(`"oops"`),
	}}
	q := app.NewQueryService(seededStore(t), cache, time.Minute)

	hs, err := q.Catalog(ctx)
	require.NoError(t, err)
	assert.Len(t, hs, 12)

	h, err := q.GetHotel(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, "Marine Drive Residency", h.Name)

	// the bad entries were overwritten with good ones
	var cached []domain.Hotel
	require.NoError(t, json.Unmarshal(cache.store["catalog:v1"], &cached))
	assert.Len(t, cached, 12)
	var one domain.Hotel
	require.NoError(t, json.Unmarshal(cache.store["hotel:2"], &one))
	assert.Equal(t, int64(2), one.ID)
}
