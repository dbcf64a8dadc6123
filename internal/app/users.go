package app

import (
	"context"
	"fmt"

	"staycation/internal/domain"
)

type UserService struct {
	users domain.UserRepository
}

func NewUserService(users domain.UserRepository) *UserService {
	return &UserService{users: users}
}

func (s *UserService) Profile(ctx context.Context, userID int64) (domain.User, error) {
	return s.users.UserByID(ctx, userID)
}

// ToggleFavorite flips hotelID in the user's favorites and reports whether
// it is now a favorite, along with the resulting ids.
func (s *UserService) ToggleFavorite(ctx context.Context, userID, hotelID int64) (bool, []int64, error) {
	u, err := s.users.UserByID(ctx, userID)
	if err != nil {
		return false, nil, err
	}
	favs := u.Favorites.Clone()
	added := favs.Toggle(hotelID)
	if err := s.users.SaveFavorites(ctx, userID, favs); err != nil {
		return false, nil, fmt.Errorf("save favorites: %w", err)
	}
	return added, favs.IDs(), nil
}
