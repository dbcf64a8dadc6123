package redisad_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	redisad "staycation/internal/adapters/redis"
	"staycation/internal/domain"
)

func newCache(t *testing.T) (*redisad.Cache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	c := redisad.NewFromClient(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
	t.Cleanup(func() { _ = c.Close() })
	return c, mr
}

func TestCache_SetGetDel(t *testing.T) {
	c, _ := newCache(t)
	ctx := context.Background()
	require.NoError(t, c.Ping(ctx))

	var got []domain.Review
	ok, err := c.Get(ctx, "reviews:1", &got)
	require.NoError(t, err)
	assert.False(t, ok)

	in := []domain.Review{{Author: "Asha", Rating: 4, Comment: "Nice"}}
	require.NoError(t, c.Set(ctx, "reviews:1", in, 60))

	ok, err = c.Get(ctx, "reviews:1", &got)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "Asha", got[0].Author)

	require.NoError(t, c.Del(ctx, "reviews:1"))
	ok, err = c.Get(ctx, "reviews:1", &got)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestCache_TTL(t *testing.T) {
	c, mr := newCache(t)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "k", 42, 10))
	mr.FastForward(11 * time.Second)

	var n int
	ok, err := c.Get(ctx, "k", &n)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestNop(t *testing.T) {
	var c domain.Cache = redisad.Nop{}
	ctx := context.Background()
	require.NoError(t, c.Set(ctx, "k", 1, 10))
	var n int
	ok, err := c.Get(ctx, "k", &n)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.NoError(t, c.Del(ctx, "k"))
}

func TestCache_CorruptEntryIsMiss(t *testing.T) {
	c, mr := newCache(t)
	ctx := context.Background()
	require.NoError(t, mr.Set("catalog:v1", "{not json"))

	var hs []domain.Hotel
	ok, err := c.Get(ctx, "catalog:v1", &hs)
	assert.Error(t, err)
	assert.False(t, ok)
}
