package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/bookverse/bookstore-api/internal/api/metrics"
)

// RBAC enforces role-based access control on the role claim set by Auth.
// The acting identity comes exclusively from the verified token; no
// client-supplied identifier is consulted.
func RBAC(allowedRoles ...string) echo.MiddlewareFunc {
	allowed := make(map[string]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, _ := c.Get("role").(string)
			if _, ok := allowed[role]; !ok {
				metrics.AuthRejectionsTotal.WithLabelValues("forbidden_role").Inc()
				return echo.NewHTTPError(http.StatusForbidden, "forbidden")
			}
			return next(c)
		}
	}
}
