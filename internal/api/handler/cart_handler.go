package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/bookverse/bookstore-api/internal/core/ports"
)

// CartHandler serves the authenticated user's shopping cart.
type CartHandler struct {
	cart ports.CartService
}

func NewCartHandler(cart ports.CartService) *CartHandler {
	return &CartHandler{cart: cart}
}

type cartItemRequest struct {
	BookID string `json:"book_id" validate:"required"`
}

// Add puts a book in the cart. Adding a book that is already there is
// reported as such rather than failing.
//
//	PUT /add-to-cart
func (h *CartHandler) Add(c echo.Context) error {
	username, _, err := ctxClaims(c)
	if err != nil {
		return err
	}

	var req cartItemRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	added, err := h.cart.AddToCart(c.Request().Context(), username, req.BookID)
	if err != nil {
		return err
	}

	msg := "book added to cart"
	if !added {
		msg = "book is already in cart"
	}

	return c.JSON(http.StatusOK, messageResponse{Message: msg})
}

// Remove takes a book out of the cart.
//
//	PUT /remove-from-cart/:bookid
func (h *CartHandler) Remove(c echo.Context) error {
	username, _, err := ctxClaims(c)
	if err != nil {
		return err
	}

	if err := h.cart.RemoveFromCart(c.Request().Context(), username, c.Param("bookid")); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, messageResponse{Message: "book removed from cart"})
}

// Get lists the cart's books, most recently added first.
//
//	GET /get-user-cart
func (h *CartHandler) Get(c echo.Context) error {
	username, _, err := ctxClaims(c)
	if err != nil {
		return err
	}

	books, err := h.cart.GetCart(c.Request().Context(), username)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dataResponse{Data: books})
}
