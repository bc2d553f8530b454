package ports

import (
	"context"

	"github.com/bookverse/bookstore-api/internal/core/domain"
)

// UserRepository defines persistence operations for user accounts, including
// the cart and favourites arrays embedded in the user document.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	SetAddress(ctx context.Context, id, address string) error

	// PushCart / PullCart append or remove a single book reference. Presence
	// checks are the caller's responsibility; the operations themselves are
	// unconditional array updates.
	PushCart(ctx context.Context, id, bookID string) error
	PullCart(ctx context.Context, id, bookID string) error
	PushFavourite(ctx context.Context, id, bookID string) error
	PullFavourite(ctx context.Context, id, bookID string) error
}
