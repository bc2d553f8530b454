package ports

import (
	"context"

	"github.com/bookverse/bookstore-api/internal/core/domain"
)

// CartService manages a user's cart and favourites. Both follow the same
// contract: adds are idempotent, removals fail when the entry is absent.
type CartService interface {
	// AddToCart reports added=false without duplicating when the book is
	// already in the cart.
	AddToCart(ctx context.Context, username, bookID string) (added bool, err error)
	RemoveFromCart(ctx context.Context, username, bookID string) error
	// GetCart resolves cart references against the catalog, most recently
	// added first. References that no longer resolve are dropped from the
	// result without fixing up storage.
	GetCart(ctx context.Context, username string) ([]*domain.Book, error)

	AddFavourite(ctx context.Context, username, bookID string) (added bool, err error)
	RemoveFavourite(ctx context.Context, username, bookID string) error
	GetFavourites(ctx context.Context, username string) ([]*domain.Book, error)
}
