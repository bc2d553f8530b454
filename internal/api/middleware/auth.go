package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/bookverse/bookstore-api/internal/api/metrics"
	"github.com/bookverse/bookstore-api/internal/core/domain"
	"github.com/bookverse/bookstore-api/internal/core/ports"
)

// Auth enforces a valid bearer token and injects the session claims into the
// request context. A missing token yields 401; an invalid or expired one
// yields 403 so the client knows to sign in again. The handler is never
// invoked on rejection.
func Auth(tokens ports.TokenService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				metrics.AuthRejectionsTotal.WithLabelValues("missing_token").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "authentication token required")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") || parts[1] == "" {
				metrics.AuthRejectionsTotal.WithLabelValues("missing_token").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			claims, err := tokens.Verify(parts[1])
			if err != nil {
				reason := "invalid_token"
				if errors.Is(err, domain.ErrTokenExpired) {
					reason = "expired_token"
				}
				metrics.AuthRejectionsTotal.WithLabelValues(reason).Inc()
				return echo.NewHTTPError(http.StatusForbidden, "token expired or invalid, please sign in again")
			}

			c.Set("username", claims.Username)
			c.Set("role", claims.Role)

			return next(c)
		}
	}
}
