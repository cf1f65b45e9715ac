package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ligonine/hospital-system/internal/api/metrics"
)

// RequireRoles enforces the role policy: the caller must hold at least one
// of roles. It must run after Auth.
func RequireRoles(roles ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			principal := PrincipalFrom(c)
			if principal == nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authentication")
			}
			if !principal.HasAnyRole(roles...) {
				metrics.AccessDeniedTotal.WithLabelValues("role").Inc()
				return echo.NewHTTPError(http.StatusForbidden, "access forbidden")
			}
			return next(c)
		}
	}
}
