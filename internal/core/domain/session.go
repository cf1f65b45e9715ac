package domain

import (
	"crypto/subtle"
	"time"
)

// Session is the server-side record of one login. Only the hash of the
// current refresh token is kept.
type Session struct {
	ID                      string
	UserID                  string
	CurrentRefreshTokenHash string
	InitiatedAt             time.Time
	ExpiresAt               time.Time
	Revoked                 bool
	// Version increases on every rotation and on revocation. Caches use it
	// to refuse writing an older copy over a newer one.
	Version int64
}

// IsValid reports whether presentedHash may be exchanged on this session at now.
// A superseded refresh token fails the hash comparison even before expiry.
func (s *Session) IsValid(presentedHash string, now time.Time) bool {
	if s == nil || s.Revoked {
		return false
	}
	if !now.Before(s.ExpiresAt) {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(presentedHash), []byte(s.CurrentRefreshTokenHash)) == 1
}
