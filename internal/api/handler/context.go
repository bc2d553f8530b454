package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ctxClaims extracts the session identity stored by the auth middleware.
// Handlers behind the gate call this instead of trusting anything the
// client sent in the request body or headers.
func ctxClaims(c echo.Context) (username, role string, err error) {
	username, _ = c.Get("username").(string)
	role, _ = c.Get("role").(string)
	if username == "" {
		return "", "", echo.NewHTTPError(http.StatusUnauthorized, "authentication token required")
	}
	return username, role, nil
}

// messageResponse is the envelope for operations that only report an outcome.
type messageResponse struct {
	Message string `json:"message"`
}

// dataResponse wraps list and detail payloads.
type dataResponse struct {
	Data interface{} `json:"data"`
}
