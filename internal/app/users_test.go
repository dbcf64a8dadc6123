package app_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"staycation/internal/app"
	"staycation/internal/domain"
	"staycation/internal/storage/memory"
)

func TestUsers_ToggleFavoriteTwiceRestores(t *testing.T) {
	ctx := context.Background()
	store := memory.New()
	u := &domain.User{Name: "A", Email: "a@x.com", Favorites: domain.NewFavoriteSet(2)}
	require.NoError(t, store.CreateUser(ctx, u))
	svc := app.NewUserService(store)

	added, favs, err := svc.ToggleFavorite(ctx, u.ID, 7)
	require.NoError(t, err)
	assert.True(t, added)
	assert.Equal(t, []int64{2, 7}, favs)

	added, favs, err = svc.ToggleFavorite(ctx, u.ID, 7)
	require.NoError(t, err)
	assert.False(t, added)
	assert.Equal(t, []int64{2}, favs)

	p, err := svc.Profile(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, []int64{2}, p.Favorites.IDs())
}

func TestUsers_UnknownUser(t *testing.T) {
	svc := app.NewUserService(memory.New())
	_, err := svc.Profile(context.Background(), 5)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
	_, _, err = svc.ToggleFavorite(context.Background(), 5, 1)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}
