package middleware

import (
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/ligonine/hospital-system/internal/core/domain"
)

func withPrincipal(p *domain.Principal) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			SetPrincipal(c, p)
			return next(c)
		}
	}
}

func TestRequireRoles_Allows(t *testing.T) {
	doctor := domain.NewPrincipal("u1", "house", []string{domain.RoleHospitalUser, domain.RoleDoctor})

	rec, called := serve(t, "", withPrincipal(doctor), RequireRoles(domain.RoleAdmin, domain.RoleDoctor))
	if !called {
		t.Fatalf("next handler not called")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestRequireRoles_Forbids(t *testing.T) {
	user := domain.NewPrincipal("u1", "alice", []string{domain.RoleHospitalUser})

	rec, called := serve(t, "", withPrincipal(user), RequireRoles(domain.RoleAdmin))
	if called {
		t.Fatalf("should not reach next handler")
	}
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
}

func TestRequireRoles_WithoutAuth(t *testing.T) {
	rec, called := serve(t, "", RequireRoles(domain.RoleAdmin))
	if called {
		t.Fatalf("should not reach next handler")
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAuthThenRequireRoles(t *testing.T) {
	rec, called := serve(t, "Bearer good", Auth(authn), RequireRoles(domain.RoleAdmin))
	if called || rec.Code != http.StatusForbidden {
		t.Fatalf("non-admin must be rejected before the handler, got %d", rec.Code)
	}
}
