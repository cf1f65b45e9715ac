package ports

import (
	"context"
	"time"

	"github.com/ligonine/hospital-system/internal/core/domain"
)

// SessionRepository persists session rows. Implementations store hashes
// only; they never see a plaintext refresh token.
type SessionRepository interface {
	Create(ctx context.Context, s *domain.Session) error
	// FindByID returns (nil, nil) when no row exists.
	FindByID(ctx context.Context, id string) (*domain.Session, error)
	// UpdateRefresh overwrites hash and expiry of a live session and reports
	// whether it did. Missing and revoked rows are left alone and report false.
	UpdateRefresh(ctx context.Context, id, refreshTokenHash string, expiresAt time.Time) (bool, error)
	// Revoke sets revoked=true. Missing rows are a no-op.
	Revoke(ctx context.Context, id string) error
}

// SessionPruner removes rows that can no longer be exchanged.
type SessionPruner interface {
	DeleteStale(ctx context.Context, before time.Time) (int64, error)
}
