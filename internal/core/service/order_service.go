package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/bookverse/bookstore-api/internal/api/metrics"
	"github.com/bookverse/bookstore-api/internal/core/domain"
	"github.com/bookverse/bookstore-api/internal/core/ports"
)

// OrderService implements the cart-to-order workflow and fulfilment
// operations.
type OrderService struct {
	orders ports.OrderRepository
	users  ports.UserRepository
	books  ports.BookRepository
	log    zerolog.Logger
}

func NewOrderService(orders ports.OrderRepository, users ports.UserRepository, books ports.BookRepository, log zerolog.Logger) *OrderService {
	return &OrderService{orders: orders, users: users, books: books, log: log}
}

// PlaceOrder converts each requested cart entry into a persisted order. Each
// item is one unit of work in the repository (create order, link history,
// clear the cart entry); items are processed sequentially and the first
// failure aborts the remaining ones without compensation. The caller only
// ever sees all-or-nothing signaling: success means every item went through.
func (s *OrderService) PlaceOrder(ctx context.Context, username string, bookIDs []string) error {
	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		return err
	}

	for _, bookID := range bookIDs {
		orderID, err := s.orders.PlaceOrder(ctx, user.ID, bookID)
		if err != nil {
			return fmt.Errorf("place order: %w", err)
		}
		s.log.Info().
			Str("username", username).
			Str("book_id", bookID).
			Str("order_id", orderID).
			Msg("order placed")
		metrics.OrdersPlacedTotal.Inc()
	}

	return nil
}

// History returns the user's orders newest first. Order references that no
// longer resolve, or orders whose book vanished from the catalog, are
// dropped from the view; storage is not fixed up.
func (s *OrderService) History(ctx context.Context, username string) ([]ports.OrderHistoryItem, error) {
	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}

	items := make([]ports.OrderHistoryItem, 0, len(user.Orders))
	for i := len(user.Orders) - 1; i >= 0; i-- {
		order, err := s.orders.FindByID(ctx, user.Orders[i])
		if err != nil {
			if errors.Is(err, domain.ErrOrderNotFound) {
				continue
			}
			return nil, fmt.Errorf("order history: %w", err)
		}

		book, err := s.books.FindByID(ctx, order.BookID)
		if err != nil {
			if errors.Is(err, domain.ErrBookNotFound) {
				continue
			}
			return nil, fmt.Errorf("order history: %w", err)
		}

		items = append(items, ports.OrderHistoryItem{
			OrderID: order.ID,
			Status:  order.Status,
			Book:    book,
		})
	}

	return items, nil
}

// ListAll returns every order with user and book populated, newest first.
// Orders pointing at a missing user or book are skipped.
func (s *OrderService) ListAll(ctx context.Context) ([]ports.OrderDetail, error) {
	orders, err := s.orders.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}

	details := make([]ports.OrderDetail, 0, len(orders))
	for _, order := range orders {
		user, err := s.users.FindByID(ctx, order.UserID)
		if err != nil {
			if errors.Is(err, domain.ErrUserNotFound) {
				continue
			}
			return nil, fmt.Errorf("list orders: %w", err)
		}
		book, err := s.books.FindByID(ctx, order.BookID)
		if err != nil {
			if errors.Is(err, domain.ErrBookNotFound) {
				continue
			}
			return nil, fmt.Errorf("list orders: %w", err)
		}
		details = append(details, ports.OrderDetail{Order: order, User: user, Book: book})
	}

	return details, nil
}

// UpdateStatus sets an order's lifecycle status. Values outside the
// enumerated set are rejected without mutating; any enumerated value is
// accepted regardless of the order's current state.
func (s *OrderService) UpdateStatus(ctx context.Context, orderID string, status string) error {
	st := domain.OrderStatus(status)
	if !st.Valid() {
		return domain.ErrInvalidStatus
	}

	if err := s.orders.UpdateStatus(ctx, orderID, st); err != nil {
		return err
	}

	s.log.Info().Str("order_id", orderID).Str("status", status).Msg("order status updated")
	metrics.OrderStatusUpdatesTotal.WithLabelValues(status).Inc()
	return nil
}
