package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/ligonine/hospital-system/internal/api/metrics"
	"github.com/ligonine/hospital-system/internal/core/domain"
)

// errorResponse is the canonical error envelope for all API errors.
type errorResponse struct {
	Error string `json:"error"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to their appropriate HTTP status codes.
//   - Logs unexpected errors internally without leaking details to the client.
//   - Renders a consistent JSON envelope: {"error": "<message>"}.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg := resolveError(err, log, c)
		if c.Request().Method == http.MethodHead {
			_ = c.NoContent(code)
			return
		}
		_ = c.JSON(code, errorResponse{Error: msg})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string) {
	// Echo's own errors (bind failures, 404 from router, middleware rejections).
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		return http.StatusUnprocessableEntity, ve.Reason
	}

	var oe *domain.OwnershipError
	if errors.As(err, &oe) {
		metrics.AccessDeniedTotal.WithLabelValues("ownership").Inc()
		return http.StatusForbidden, oe.Error()
	}

	// Known domain errors → deterministic HTTP codes.
	switch {
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden, "access forbidden"
	case errors.Is(err, domain.ErrUnauthenticated):
		return http.StatusUnauthorized, "unauthenticated"
	case errors.Is(err, domain.ErrDepartmentNotFound):
		return http.StatusNotFound, "Department not found"
	case errors.Is(err, domain.ErrDoctorNotFound):
		return http.StatusNotFound, "Doctor not found in this department"
	case errors.Is(err, domain.ErrOperationNotFound):
		return http.StatusNotFound, "Operation not found for this doctor"
	case errors.Is(err, domain.ErrUserNameTaken):
		return http.StatusUnprocessableEntity, "UserName already taken"
	case errors.Is(err, domain.ErrEmailTaken):
		return http.StatusUnprocessableEntity, "Email already taken"
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusUnprocessableEntity, "User does not exist"
	case errors.Is(err, domain.ErrValidation):
		return http.StatusUnprocessableEntity, "validation failed"
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "internal server error"
}
