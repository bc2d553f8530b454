package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/bookverse/bookstore-api/internal/core/ports"
)

// FavouriteHandler serves the authenticated user's favourites list.
type FavouriteHandler struct {
	cart ports.CartService
}

func NewFavouriteHandler(cart ports.CartService) *FavouriteHandler {
	return &FavouriteHandler{cart: cart}
}

// Add marks a book as a favourite. Already-favourited books are reported
// without error.
//
//	PUT /add-book-to-favourite
func (h *FavouriteHandler) Add(c echo.Context) error {
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

	added, err := h.cart.AddFavourite(c.Request().Context(), username, req.BookID)
	if err != nil {
		return err
	}

	msg := "book added to favourites"
	if !added {
		msg = "book is already in favourites"
	}

	return c.JSON(http.StatusOK, messageResponse{Message: msg})
}

// Remove unmarks a favourite book.
//
//	PUT /remove-book-from-favourite
func (h *FavouriteHandler) Remove(c echo.Context) error {
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

	if err := h.cart.RemoveFavourite(c.Request().Context(), username, req.BookID); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, messageResponse{Message: "book removed from favourites"})
}

// Get lists the favourite books in the order they were added.
//
//	GET /get-favourite-books
func (h *FavouriteHandler) Get(c echo.Context) error {
	username, _, err := ctxClaims(c)
	if err != nil {
		return err
	}

	books, err := h.cart.GetFavourites(c.Request().Context(), username)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dataResponse{Data: books})
}
