package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/bookverse/bookstore-api/internal/core/ports"
)

// AuthHandler serves the public sign-up and sign-in endpoints.
type AuthHandler struct {
	auth ports.AuthService
	log  zerolog.Logger
}

func NewAuthHandler(auth ports.AuthService, log zerolog.Logger) *AuthHandler {
	return &AuthHandler{auth: auth, log: log}
}

// SignUp registers a new customer account.
//
//	POST /sign-up
func (h *AuthHandler) SignUp(c echo.Context) error {
	var req signUpRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	user, err := h.auth.Register(c.Request().Context(), ports.RegisterInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
		Address:  req.Address,
		Avatar:   req.Avatar,
	})
	if err != nil {
		return err
	}

	h.log.Info().Str("username", user.Username).Msg("user registered")

	return c.JSON(http.StatusCreated, messageResponse{Message: "user registered successfully"})
}

// SignIn authenticates a user and returns a session token.
//
//	POST /sign-in
func (h *AuthHandler) SignIn(c echo.Context) error {
	var req signInRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	token, user, err := h.auth.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, signInResponse{
		Success: true,
		ID:      user.ID,
		Role:    user.Role,
		Token:   token,
	})
}
