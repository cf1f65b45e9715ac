package ports

import (
	"context"
	"time"

	"github.com/ligonine/hospital-system/internal/core/domain"
)

type RegisterInput struct {
	UserName string
	Email    string
	Password string
}

type LoginInput struct {
	UserName string
	Password string
}

// TokenPair is returned by login and refresh. RefreshToken travels to the
// client in a cookie that expires at RefreshExpiresAt.
type TokenPair struct {
	AccessToken      string
	RefreshToken     string
	RefreshExpiresAt time.Time
}

// AuthService is the auth core consumed by the HTTP layer.
type AuthService interface {
	Register(ctx context.Context, in RegisterInput) (*domain.User, error)
	Login(ctx context.Context, in LoginInput) (*TokenPair, error)
	Refresh(ctx context.Context, refreshToken string) (*TokenPair, error)
	Logout(ctx context.Context, refreshToken string) error
	GrantDoctorRole(ctx context.Context, userName string) error
	// Authenticate validates a bearer access token. It does not consult the
	// session store.
	Authenticate(accessToken string) (*domain.Principal, error)
}
