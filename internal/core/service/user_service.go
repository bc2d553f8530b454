package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/bookverse/bookstore-api/internal/core/domain"
	"github.com/bookverse/bookstore-api/internal/core/ports"
)

// UserService implements profile operations scoped to the acting identity.
type UserService struct {
	users ports.UserRepository
	log   zerolog.Logger
}

func NewUserService(users ports.UserRepository, log zerolog.Logger) *UserService {
	return &UserService{users: users, log: log}
}

func (s *UserService) GetProfile(ctx context.Context, username string) (*domain.User, error) {
	return s.users.FindByUsername(ctx, username)
}

func (s *UserService) UpdateAddress(ctx context.Context, username, address string) error {
	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		return err
	}
	if err := s.users.SetAddress(ctx, user.ID, address); err != nil {
		return fmt.Errorf("update address: %w", err)
	}
	return nil
}
