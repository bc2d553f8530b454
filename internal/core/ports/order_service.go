package ports

import (
	"context"

	"github.com/bookverse/bookstore-api/internal/core/domain"
)

// OrderHistoryItem is one entry in a user's order history with the book
// reference resolved.
type OrderHistoryItem struct {
	OrderID string
	Status  domain.OrderStatus
	Book    *domain.Book
}

// OrderDetail is the admin view of an order with user and book populated.
type OrderDetail struct {
	Order *domain.Order
	User  *domain.User
	Book  *domain.Book
}

// OrderService defines the order placement workflow and fulfilment
// operations.
type OrderService interface {
	// PlaceOrder converts the given cart entries into persisted orders,
	// sequentially per item. The first failing item aborts the remaining
	// ones; success is reported only after every item is processed.
	PlaceOrder(ctx context.Context, username string, bookIDs []string) error
	// History returns the user's orders, newest first, with unresolvable
	// order or book references silently dropped.
	History(ctx context.Context, username string) ([]OrderHistoryItem, error)
	ListAll(ctx context.Context) ([]OrderDetail, error)
	UpdateStatus(ctx context.Context, orderID string, status string) error
}
