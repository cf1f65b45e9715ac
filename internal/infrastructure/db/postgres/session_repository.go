package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/ligonine/hospital-system/internal/core/domain"
	"github.com/ligonine/hospital-system/internal/core/ports"
)

type SessionRepository struct {
	db *sql.DB
}

func NewSessionRepository(db *sql.DB) *SessionRepository {
	return &SessionRepository{db: db}
}

var (
	_ ports.SessionRepository = (*SessionRepository)(nil)
	_ ports.SessionPruner     = (*SessionRepository)(nil)
)

func (r *SessionRepository) Create(ctx context.Context, s *domain.Session) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO sessions (id, user_id, current_refresh_token_hash, initiated_at, expires_at, revoked)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		s.ID, s.UserID, s.CurrentRefreshTokenHash, s.InitiatedAt, s.ExpiresAt, s.Revoked,
	)
	if err != nil {
		return fmt.Errorf("insert session: %w", err)
	}
	return nil
}

// FindByID returns (nil, nil) when no session has that id.
func (r *SessionRepository) FindByID(ctx context.Context, id string) (*domain.Session, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var s domain.Session
	err := r.db.QueryRowContext(ctx,
		`SELECT id, user_id, current_refresh_token_hash, initiated_at, expires_at, revoked, version
		 FROM sessions WHERE id = $1`,
		id,
	).Scan(&s.ID, &s.UserID, &s.CurrentRefreshTokenHash, &s.InitiatedAt, &s.ExpiresAt, &s.Revoked, &s.Version)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("find session: %w", err)
	}
	s.InitiatedAt = s.InitiatedAt.UTC()
	s.ExpiresAt = s.ExpiresAt.UTC()
	return &s, nil
}

// UpdateRefresh swaps the stored hash. Revoked sessions are left untouched
// and report false.
func (r *SessionRepository) UpdateRefresh(ctx context.Context, id, hash string, expiresAt time.Time) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.db.ExecContext(ctx,
		`UPDATE sessions SET current_refresh_token_hash = $2, expires_at = $3, version = version + 1
		 WHERE id = $1 AND NOT revoked`,
		id, hash, expiresAt,
	)
	if err != nil {
		return false, fmt.Errorf("update session: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("update session: %w", err)
	}
	return n > 0, nil
}

// Revoke bumps the version only on the first revocation.
func (r *SessionRepository) Revoke(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.db.ExecContext(ctx,
		`UPDATE sessions SET revoked = TRUE, version = version + 1 WHERE id = $1 AND NOT revoked`,
		id,
	)
	if err != nil {
		return fmt.Errorf("revoke session: %w", err)
	}
	return nil
}

// DeleteStale removes sessions that expired before the cutoff and revoked
// sessions started before it.
func (r *SessionRepository) DeleteStale(ctx context.Context, before time.Time) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.db.ExecContext(ctx,
		`DELETE FROM sessions WHERE expires_at < $1 OR (revoked AND initiated_at < $1)`,
		before,
	)
	if err != nil {
		return 0, fmt.Errorf("delete stale sessions: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("delete stale sessions: %w", err)
	}
	return n, nil
}
