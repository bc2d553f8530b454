package ports

import (
	"context"

	"github.com/bookverse/bookstore-api/internal/core/domain"
)

// OrderRepository defines persistence operations for orders.
type OrderRepository interface {
	// PlaceOrder persists one order for the given user and book as a single
	// unit of work: insert the order with the default "Placed" status, append
	// its identifier to the user's order history, and remove the book
	// reference from the user's cart. Returns the new order's identifier.
	PlaceOrder(ctx context.Context, userID, bookID string) (string, error)

	FindByID(ctx context.Context, id string) (*domain.Order, error)
	// FindAll returns every order, newest first.
	FindAll(ctx context.Context) ([]*domain.Order, error)
	UpdateStatus(ctx context.Context, id string, status domain.OrderStatus) error
}
