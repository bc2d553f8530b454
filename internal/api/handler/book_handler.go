package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/bookverse/bookstore-api/internal/core/ports"
)

// BookHandler serves the public catalog endpoints and the admin catalog
// mutations.
type BookHandler struct {
	books ports.BookService
	log   zerolog.Logger
}

func NewBookHandler(books ports.BookService, log zerolog.Logger) *BookHandler {
	return &BookHandler{books: books, log: log}
}

// Add creates a catalog entry. Admin only.
//
//	POST /add-book
func (h *BookHandler) Add(c echo.Context) error {
	var req bookRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	book, err := h.books.Add(c.Request().Context(), toBookInput(req))
	if err != nil {
		return err
	}

	h.log.Info().Str("book_id", book.ID).Str("title", book.Title).Msg("book added")

	return c.JSON(http.StatusCreated, messageResponse{Message: "book added successfully"})
}

// Update replaces a catalog entry's fields. Admin only.
//
//	PUT /update-book/:id
func (h *BookHandler) Update(c echo.Context) error {
	var req bookRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	if err := h.books.Update(c.Request().Context(), c.Param("id"), toBookInput(req)); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, messageResponse{Message: "book updated successfully"})
}

// Delete removes a catalog entry. Admin only. Stale references left in
// carts and favourites are dropped at read time.
//
//	DELETE /delete-book/:id
func (h *BookHandler) Delete(c echo.Context) error {
	if err := h.books.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, messageResponse{Message: "book deleted successfully"})
}

// GetAll lists the whole catalog. Public.
//
//	GET /get-all-books
func (h *BookHandler) GetAll(c echo.Context) error {
	books, err := h.books.GetAll(c.Request().Context())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dataResponse{Data: books})
}

// GetRecent lists the newest catalog entries. Public.
//
//	GET /get-recent-books
func (h *BookHandler) GetRecent(c echo.Context) error {
	books, err := h.books.GetRecent(c.Request().Context())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dataResponse{Data: books})
}

// GetByID fetches one catalog entry. Public.
//
//	GET /get-book-by-id/:id
func (h *BookHandler) GetByID(c echo.Context) error {
	book, err := h.books.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dataResponse{Data: book})
}

func toBookInput(req bookRequest) ports.BookInput {
	return ports.BookInput{
		URL:      req.URL,
		Title:    req.Title,
		Author:   req.Author,
		Price:    req.Price,
		Desc:     req.Desc,
		Language: req.Language,
	}
}
