// Package pricing derives the price breakdown of a stay from its dates
// and the nightly rate.
package pricing

import (
	"fmt"
	"math"
	"strings"
	"time"

	"staycation/internal/domain"
)

// DefaultTaxRate is the GST applied to the base price. Deployments
// override it with TAX_RATE.
const DefaultTaxRate = 0.18

const DateLayout = "2006-01-02"

type Breakdown struct {
	Nights    int     `json:"nights"`
	BasePrice float64 `json:"basePrice"`
	Taxes     float64 `json:"taxes"`
	Total     float64 `json:"total"`
}

type Calculator struct {
	TaxRate float64
}

func New(taxRate float64) Calculator {
	if taxRate < 0 {
		taxRate = DefaultTaxRate
	}
	return Calculator{TaxRate: taxRate}
}

// Quote prices a stay at nightly per night. A zero check-in or check-out
// yields an all-zero breakdown.
func (c Calculator) Quote(nightly float64, checkIn, checkOut time.Time) Breakdown {
	n := Nights(checkIn, checkOut)
	if n == 0 {
		return Breakdown{}
	}
	base := nightly * float64(n)
	taxes := base * c.TaxRate
	return Breakdown{
		Nights:    n,
		BasePrice: round2(base),
		Taxes:     round2(taxes),
		Total:     round2(base + taxes),
	}
}

// Nights counts calendar days between the two dates, ignoring time of
// day and zone: both are reduced to midnight UTC of their own date.
func Nights(checkIn, checkOut time.Time) int {
	if checkIn.IsZero() || checkOut.IsZero() {
		return 0
	}
	d := DateOnly(checkOut).Sub(DateOnly(checkIn)).Hours() / 24
	return int(math.Ceil(math.Abs(d)))
}

// DateOnly returns midnight UTC of t's calendar date in t's location.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ParseDate accepts YYYY-MM-DD or an RFC 3339 timestamp. Empty input
// returns the zero time.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, nil
	}
	if t, err := time.Parse(DateLayout, s); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: invalid date %q, expected YYYY-MM-DD", domain.ErrValidation, s)
	}
	return DateOnly(t), nil
}

func round2(v float64) float64 { return math.Round(v*100) / 100 }
