package pricing_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"staycation/internal/domain"
	"staycation/internal/pricing"
)

func date(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := pricing.ParseDate(s)
	require.NoError(t, err)
	return d
}

func TestQuote_ThreeNights(t *testing.T) {
	c := pricing.New(pricing.DefaultTaxRate)
	got := c.Quote(1000, date(t, "2024-01-01"), date(t, "2024-01-04"))
	assert.Equal(t, pricing.Breakdown{Nights: 3, BasePrice: 3000, Taxes: 540, Total: 3540}, got)
}

func TestQuote_MissingDate(t *testing.T) {
	c := pricing.New(pricing.DefaultTaxRate)
	assert.Equal(t, pricing.Breakdown{}, c.Quote(1000, time.Time{}, date(t, "2024-01-04")))
	assert.Equal(t, pricing.Breakdown{}, c.Quote(1000, date(t, "2024-01-04"), time.Time{}))
}

func TestQuote_CustomRate(t *testing.T) {
	c := pricing.New(0.05)
	got := c.Quote(2500, date(t, "2024-03-10"), date(t, "2024-03-12"))
	assert.Equal(t, 2, got.Nights)
	assert.Equal(t, 5000.0, got.BasePrice)
	assert.Equal(t, 250.0, got.Taxes)
	assert.Equal(t, 5250.0, got.Total)
}

func TestNights_IgnoresTimeOfDay(t *testing.T) {
	ist := time.FixedZone("IST", 5*3600+1800)
	in := time.Date(2024, 1, 1, 23, 30, 0, 0, ist)
	out := time.Date(2024, 1, 3, 0, 15, 0, 0, time.UTC)
	assert.Equal(t, 2, pricing.Nights(in, out))
}

func TestNights_ReversedIsAbsolute(t *testing.T) {
	assert.Equal(t, 3, pricing.Nights(date(t, "2024-01-04"), date(t, "2024-01-01")))
}

func TestParseDate(t *testing.T) {
	d, err := pricing.ParseDate("2024-02-29T18:00:00Z")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC), d)

	d, err = pricing.ParseDate("")
	require.NoError(t, err)
	assert.True(t, d.IsZero())

	_, err = pricing.ParseDate("29/02/2024")
	assert.ErrorIs(t, err, domain.ErrValidation)
}
