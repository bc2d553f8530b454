package ports

import (
	"context"

	"github.com/bookverse/bookstore-api/internal/core/domain"
)

// UserService exposes profile operations, always scoped to the acting
// identity resolved from the session claims.
type UserService interface {
	GetProfile(ctx context.Context, username string) (*domain.User, error)
	UpdateAddress(ctx context.Context, username, address string) error
}
