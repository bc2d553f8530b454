package domain

import (
	"errors"
	"time"
)

// OrderStatus represents the lifecycle state of a placed order.
type OrderStatus string

const (
	StatusPlaced         OrderStatus = "Placed"
	StatusOutForDelivery OrderStatus = "Out for delivery"
	StatusDelivered      OrderStatus = "Delivered"
	StatusCanceled       OrderStatus = "Canceled"
)

var (
	ErrOrderNotFound = errors.New("order not found")
	ErrInvalidStatus = errors.New("invalid status")
)

// Valid reports whether s is one of the enumerated statuses.
//
// The nominal lifecycle runs Placed, then Out for delivery, then Delivered, with
// Canceled reachable until the order ships. Transitions are operator-driven
// and, matching current product behaviour, any enumerated status is accepted
// from any prior state; only values outside the enum are rejected.
func (s OrderStatus) Valid() bool {
	switch s {
	case StatusPlaced, StatusOutForDelivery, StatusDelivered, StatusCanceled:
		return true
	}
	return false
}

// Order links one user to one book reference with a lifecycle status.
// Orders are created exactly once per cart item and never deleted.
type Order struct {
	ID        string      `json:"id"`
	UserID    string      `json:"user_id"`
	BookID    string      `json:"book_id"`
	Status    OrderStatus `json:"status"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}
