package app

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	"staycation/internal/auth"
	"staycation/internal/domain"
)

type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Phone    string
}

type AuthService struct {
	users  domain.UserRepository
	hasher *auth.Hasher
	tokens *auth.Tokens
}

func NewAuthService(users domain.UserRepository, h *auth.Hasher, t *auth.Tokens) *AuthService {
	return &AuthService{users: users, hasher: h, tokens: t}
}

// Register creates the account and returns it together with a session
// token. The email is stored normalized.
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (domain.User, string, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = domain.NormalizeEmail(in.Email)
	in.Phone = strings.TrimSpace(in.Phone)
	if in.Name == "" || in.Email == "" || in.Password == "" {
		return domain.User{}, "", fmt.Errorf("%w: name, email and password are required", domain.ErrValidation)
	}

	hash, err := s.hasher.Hash(in.Password)
	if errors.Is(err, domain.ErrValidation) {
		return domain.User{}, "", err
	}
	if err != nil {
		return domain.User{}, "", fmt.Errorf("hash password: %w", err)
	}
	u := domain.User{
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: hash,
		Phone:        in.Phone,
		Favorites:    domain.FavoriteSet{},
		Bookings:     []domain.Booking{},
	}
	if err := s.users.CreateUser(ctx, &u); err != nil {
		if errors.Is(err, domain.ErrEmailTaken) {
			return domain.User{}, "", err
		}
		return domain.User{}, "", fmt.Errorf("create user: %w", err)
	}

	tok, err := s.tokens.Issue(u.ID, u.Email)
	if err != nil {
		return domain.User{}, "", fmt.Errorf("issue token: %w", err)
	}
	log.Info().Int64("user_id", u.ID).Msg("user registered")
	return u, tok, nil
}

// Login checks the credentials. Unknown email and wrong password fail the
// same way and take the same bcrypt time.
func (s *AuthService) Login(ctx context.Context, email, password string) (domain.User, string, error) {
	u, err := s.users.UserByEmail(ctx, email)
	switch {
	case errors.Is(err, domain.ErrUserNotFound):
		s.hasher.Check("", password)
		return domain.User{}, "", domain.ErrInvalidCredentials
	case err != nil:
		return domain.User{}, "", fmt.Errorf("lookup user: %w", err)
	}
	if !s.hasher.Check(u.PasswordHash, password) {
		return domain.User{}, "", domain.ErrInvalidCredentials
	}

	tok, err := s.tokens.Issue(u.ID, u.Email)
	if err != nil {
		return domain.User{}, "", fmt.Errorf("issue token: %w", err)
	}
	return u, tok, nil
}

func (s *AuthService) Verify(token string) (domain.Identity, error) {
	return s.tokens.Verify(token)
}
