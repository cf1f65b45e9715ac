package service

import (
	"context"
	"fmt"
	"time"

	"github.com/ligonine/hospital-system/internal/core/domain"
	"github.com/ligonine/hospital-system/internal/core/ports"
	"github.com/ligonine/hospital-system/internal/infrastructure/security"
)

// SessionStore owns session rows. Refresh tokens are hashed here before
// they reach the repository.
type SessionStore struct {
	repo ports.SessionRepository
	now  func() time.Time
}

func NewSessionStore(repo ports.SessionRepository) *SessionStore {
	return &SessionStore{repo: repo, now: time.Now}
}

// Create inserts a new, unrevoked session bound to refreshToken.
func (s *SessionStore) Create(ctx context.Context, sessionID, userID, refreshToken string, expiresAt time.Time) error {
	session := &domain.Session{
		ID:                      sessionID,
		UserID:                  userID,
		CurrentRefreshTokenHash: security.HashRefreshToken(refreshToken),
		InitiatedAt:             s.now().UTC(),
		ExpiresAt:               expiresAt.UTC(),
	}
	if err := s.repo.Create(ctx, session); err != nil {
		return fmt.Errorf("create session: %w", err)
	}
	return nil
}

// Extend rotates the session onto newRefreshToken and reports whether it
// did. The previous token stops matching immediately. Missing and revoked
// sessions are not an error; they report false.
func (s *SessionStore) Extend(ctx context.Context, sessionID, newRefreshToken string, newExpiresAt time.Time) (bool, error) {
	updated, err := s.repo.UpdateRefresh(ctx, sessionID, security.HashRefreshToken(newRefreshToken), newExpiresAt.UTC())
	if err != nil {
		return false, fmt.Errorf("extend session: %w", err)
	}
	return updated, nil
}

// Revoke permanently disables the session. Unknown ids are a no-op.
func (s *SessionStore) Revoke(ctx context.Context, sessionID string) error {
	if err := s.repo.Revoke(ctx, sessionID); err != nil {
		return fmt.Errorf("revoke session: %w", err)
	}
	return nil
}

// IsValid reports whether presented is the current refresh token of a live
// session. Store failures are returned, not folded into false.
func (s *SessionStore) IsValid(ctx context.Context, sessionID, presented string) (bool, error) {
	session, err := s.repo.FindByID(ctx, sessionID)
	if err != nil {
		return false, fmt.Errorf("load session: %w", err)
	}
	if session == nil {
		return false, nil
	}
	return session.IsValid(security.HashRefreshToken(presented), s.now()), nil
}
