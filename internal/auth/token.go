// Package auth hashes credentials and issues/verifies session tokens.
package auth

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"staycation/internal/domain"
)

// DefaultTTL is how long a session token stays valid.
const DefaultTTL = 24 * time.Hour

type claims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

type Tokens struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewTokens(secret string, ttl time.Duration) (*Tokens, error) {
	if secret == "" {
		return nil, errors.New("token secret is required")
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Tokens{secret: []byte(secret), ttl: ttl, now: time.Now}, nil
}

// WithClock replaces the time source; tests use it to expire tokens.
func (t *Tokens) WithClock(now func() time.Time) *Tokens {
	cp := *t
	cp.now = now
	return &cp
}

func (t *Tokens) Issue(userID int64, email string) (string, error) {
	now := t.now()
	c := claims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(userID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(t.ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, c).SignedString(t.secret)
}

// Verify parses a token and returns the caller identity. Every failure,
// expiry included, is reported as domain.ErrInvalidToken.
func (t *Tokens) Verify(token string) (domain.Identity, error) {
	var c claims
	tok, err := jwt.ParseWithClaims(token, &c, func(tk *jwt.Token) (any, error) {
		return t.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(t.now), jwt.WithExpirationRequired())
	if err != nil || !tok.Valid {
		return domain.Identity{}, fmt.Errorf("%w: %v", domain.ErrInvalidToken, err)
	}
	id, err := strconv.ParseInt(c.Subject, 10, 64)
	if err != nil || id <= 0 {
		return domain.Identity{}, fmt.Errorf("%w: bad subject", domain.ErrInvalidToken)
	}
	ident := domain.Identity{UserID: id, Email: c.Email}
	if c.IssuedAt != nil {
		ident.IssuedAt = c.IssuedAt.Time
	}
	return ident, nil
}

// BearerToken extracts the token from an Authorization header value.
func BearerToken(header string) string {
	h := strings.TrimSpace(header)
	if len(h) > 7 && strings.EqualFold(h[:7], "bearer ") {
		return strings.TrimSpace(h[7:])
	}
	return ""
}
