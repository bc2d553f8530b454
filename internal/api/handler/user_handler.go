package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/bookverse/bookstore-api/internal/core/ports"
)

// UserHandler serves profile endpoints for the authenticated user.
type UserHandler struct {
	users ports.UserService
}

func NewUserHandler(users ports.UserService) *UserHandler {
	return &UserHandler{users: users}
}

type updateAddressRequest struct {
	Address string `json:"address" validate:"required"`
}

// GetInformation returns the authenticated user's profile. The password
// hash is never serialised.
//
//	GET /get-user-information
func (h *UserHandler) GetInformation(c echo.Context) error {
	username, _, err := ctxClaims(c)
	if err != nil {
		return err
	}

	user, err := h.users.GetProfile(c.Request().Context(), username)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dataResponse{Data: user})
}

// UpdateAddress replaces the authenticated user's delivery address.
//
//	PUT /update-address
func (h *UserHandler) UpdateAddress(c echo.Context) error {
	username, _, err := ctxClaims(c)
	if err != nil {
		return err
	}

	var req updateAddressRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	if err := h.users.UpdateAddress(c.Request().Context(), username, req.Address); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, messageResponse{Message: "address updated successfully"})
}
