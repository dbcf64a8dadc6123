package auth

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"staycation/internal/domain"
)

// MaxPasswordBytes is the longest input bcrypt accepts.
const MaxPasswordBytes = 72

// DefaultCost matches the salt rounds passwords were originally hashed with.
const DefaultCost = 10

type Hasher struct {
	cost  int
	dummy []byte
}

func NewHasher(cost int) (*Hasher, error) {
	if cost < bcrypt.MinCost {
		cost = DefaultCost
	}
	// dummy is compared against when the account does not exist so both login
	// failure paths spend the same bcrypt time.
	dummy, err := bcrypt.GenerateFromPassword([]byte("staycation-dummy-password"), cost)
	if err != nil {
		return nil, err
	}
	return &Hasher{cost: cost, dummy: dummy}, nil
}

func (h *Hasher) Hash(password string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return "", fmt.Errorf("%w: password must be at most %d bytes", domain.ErrValidation, MaxPasswordBytes)
	}
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Check reports whether password matches hash. An empty hash is checked
// against the dummy and always fails.
func (h *Hasher) Check(hash, password string) bool {
	if hash == "" {
		_ = bcrypt.CompareHashAndPassword(h.dummy, []byte(password))
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
