package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/bookverse/bookstore-api/internal/core/ports"
)

// OrderHandler serves order placement, per-user history, and the admin
// fulfilment endpoints.
type OrderHandler struct {
	orders ports.OrderService
	log    zerolog.Logger
}

func NewOrderHandler(orders ports.OrderService, log zerolog.Logger) *OrderHandler {
	return &OrderHandler{orders: orders, log: log}
}

// Place converts the listed cart items into orders for the authenticated
// user. Each item becomes its own order and leaves the cart atomically.
//
//	POST /place-order
func (h *OrderHandler) Place(c echo.Context) error {
	username, _, err := ctxClaims(c)
	if err != nil {
		return err
	}

	var req placeOrderRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	bookIDs := make([]string, 0, len(req.Order))
	for _, item := range req.Order {
		bookIDs = append(bookIDs, item.BookID)
	}

	if err := h.orders.PlaceOrder(c.Request().Context(), username, bookIDs); err != nil {
		return err
	}

	h.log.Info().Str("username", username).Int("items", len(bookIDs)).Msg("order placed")

	return c.JSON(http.StatusOK, messageResponse{Message: "order placed successfully"})
}

// History lists the authenticated user's orders, newest first, each joined
// with its book.
//
//	GET /get-order-history
func (h *OrderHandler) History(c echo.Context) error {
	username, _, err := ctxClaims(c)
	if err != nil {
		return err
	}

	history, err := h.orders.History(c.Request().Context(), username)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dataResponse{Data: history})
}

// ListAll returns every order in the system with user and book joined.
// Admin only.
//
//	GET /get-all-orders
func (h *OrderHandler) ListAll(c echo.Context) error {
	orders, err := h.orders.ListAll(c.Request().Context())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dataResponse{Data: orders})
}

// UpdateStatus moves an order to a new lifecycle status. Admin only.
//
//	PUT /update-status/:id
func (h *OrderHandler) UpdateStatus(c echo.Context) error {
	var req updateStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	orderID := c.Param("id")
	if err := h.orders.UpdateStatus(c.Request().Context(), orderID, req.Status); err != nil {
		return err
	}

	h.log.Info().Str("order_id", orderID).Str("status", req.Status).Msg("order status updated")

	return c.JSON(http.StatusOK, messageResponse{Message: "status updated successfully"})
}
