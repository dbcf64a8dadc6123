package app_test

import (
	"context"
	"encoding/json"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"staycation/internal/auth"
	"staycation/internal/domain"
)

// ---- fakes ----

// fakeCache round-trips values through JSON like the redis adapter does.
type fakeCache struct {
	mu    sync.Mutex
	store map[string][]byte
	gets  int
	hits  int
	dels  []string
}

func (c *fakeCache) Get(ctx context.Context, key string, dst any) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.gets++
	b, ok := c.store[key]
	if !ok {
		return false, nil
	}
	c.hits++
	return true, json.Unmarshal(b, dst)
}

func (c *fakeCache) Set(ctx context.Context, key string, v any, ttlSec int) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.store == nil {
		c.store = map[string][]byte{}
	}
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	c.store[key] = b
	return nil
}

func (c *fakeCache) Del(ctx context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.dels = append(c.dels, key)
	delete(c.store, key)
	return nil
}

type fakePayments struct {
	approve bool
	err     error
	calls   []domain.PaymentRequest
}

func (p *fakePayments) Authorize(ctx context.Context, req domain.PaymentRequest) (domain.PaymentReceipt, error) {
	p.calls = append(p.calls, req)
	if p.err != nil {
		return domain.PaymentReceipt{}, p.err
	}
	return domain.PaymentReceipt{Reference: "ref-1", Approved: p.approve}, nil
}

type fakeSource struct {
	hotels []domain.Hotel
	err    error
}

func (f *fakeSource) ListHotels(ctx context.Context) ([]domain.Hotel, error) {
	return f.hotels, f.err
}

func (f *fakeSource) GetHotel(ctx context.Context, id int64) (domain.Hotel, error) {
	if f.err != nil {
		return domain.Hotel{}, f.err
	}
	for _, h := range f.hotels {
		if h.ID == id {
			return h, nil
		}
	}
	return domain.Hotel{}, domain.ErrHotelNotFound
}

func newHasher(t *testing.T) *auth.Hasher {
	t.Helper()
	h, err := auth.NewHasher(4) // bcrypt.MinCost keeps tests fast
	require.NoError(t, err)
	return h
}

func newTokens(t *testing.T) *auth.Tokens {
	t.Helper()
	tk, err := auth.NewTokens("test-secret", auth.DefaultTTL)
	require.NoError(t, err)
	return tk
}

func pf(f float64) *float64 { return &f }
