package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ligonine/hospital-system/internal/api/middleware"
	"github.com/ligonine/hospital-system/internal/core/domain"
)

// caller returns the principal injected by the Auth middleware. A missing
// principal means the route was registered without Auth and is rejected.
func caller(c echo.Context) (*domain.Principal, error) {
	p := middleware.PrincipalFrom(c)
	if p == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return p, nil
}

// bindAndValidate binds the body into req. Shape errors are 400, rule
// violations are 422.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	return c.Validate(req)
}
