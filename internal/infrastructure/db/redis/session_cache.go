package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/ligonine/hospital-system/internal/core/domain"
	"github.com/ligonine/hospital-system/internal/core/ports"
)

const defaultSessionTTL = 5 * time.Minute

// fillScript stores a session copy unless the cached copy is at least as
// new. KEYS[1] is the session key, ARGV is version, payload, ttl in ms.
var fillScript = redis.NewScript(`
local current = redis.call('HGET', KEYS[1], 'version')
if current and tonumber(current) >= tonumber(ARGV[1]) then
	return 0
end
redis.call('DEL', KEYS[1])
redis.call('HSET', KEYS[1], 'version', ARGV[1], 'data', ARGV[2])
redis.call('PEXPIRE', KEYS[1], ARGV[3])
return 1
`)

// SessionCache is a read-through cache in front of a SessionRepository.
// Key format: session:<id>, a hash holding the row version and its JSON.
//
// Every cache write is ordered by Session.Version, so a reader that loaded
// a row before a rotation or revocation can never put it back over the
// newer copy written by UpdateRefresh or Revoke. Redis errors are logged and
// the call falls through to the store.
type SessionCache struct {
	client *redis.Client
	next   ports.SessionRepository
	ttl    time.Duration
	log    zerolog.Logger
	now    func() time.Time
}

func NewSessionCache(client *redis.Client, next ports.SessionRepository, ttl time.Duration, log zerolog.Logger) *SessionCache {
	if ttl <= 0 {
		ttl = defaultSessionTTL
	}
	return &SessionCache{client: client, next: next, ttl: ttl, log: log, now: time.Now}
}

var _ ports.SessionRepository = (*SessionCache)(nil)

type cachedSession struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	Hash        string    `json:"hash"`
	InitiatedAt time.Time `json:"initiated_at"`
	ExpiresAt   time.Time `json:"expires_at"`
	Revoked     bool      `json:"revoked"`
	Version     int64     `json:"version"`
}

func (c *SessionCache) Create(ctx context.Context, s *domain.Session) error {
	return c.next.Create(ctx, s)
}

func (c *SessionCache) FindByID(ctx context.Context, id string) (*domain.Session, error) {
	key := c.key(id)

	data, err := c.client.HGet(ctx, key, "data").Bytes()
	switch {
	case err == nil:
		var cs cachedSession
		if jerr := json.Unmarshal(data, &cs); jerr == nil {
			return cs.toDomain(), nil
		}
		c.client.Del(ctx, key)
	case strings.HasPrefix(err.Error(), "WRONGTYPE"):
		c.client.Del(ctx, key)
	case !errors.Is(err, redis.Nil):
		c.log.Warn().Err(err).Str("session_id", id).Msg("session cache read failed")
	}

	s, err := c.next.FindByID(ctx, id)
	if err != nil || s == nil {
		return s, err
	}
	c.fill(ctx, s)
	return s, nil
}

func (c *SessionCache) UpdateRefresh(ctx context.Context, id, hash string, expiresAt time.Time) (bool, error) {
	updated, err := c.next.UpdateRefresh(ctx, id, hash, expiresAt)
	if err != nil {
		return false, err
	}
	c.reload(ctx, id)
	return updated, nil
}

func (c *SessionCache) Revoke(ctx context.Context, id string) error {
	if err := c.next.Revoke(ctx, id); err != nil {
		return err
	}
	c.reload(ctx, id)
	return nil
}

// reload pushes the stored row into the cache after a write. When the row
// cannot be read or cached the key is dropped instead.
func (c *SessionCache) reload(ctx context.Context, id string) {
	s, err := c.next.FindByID(ctx, id)
	if err != nil {
		c.log.Warn().Err(err).Str("session_id", id).Msg("session reload failed")
	}
	if err != nil || s == nil || !c.fill(ctx, s) {
		c.invalidate(ctx, id)
	}
}

// fill caches s until the sooner of the cache TTL and its own expiry. It
// reports false when nothing at least as new as s is cached afterwards.
func (c *SessionCache) fill(ctx context.Context, s *domain.Session) bool {
	ttl := c.ttl
	if remaining := s.ExpiresAt.Sub(c.now()); remaining < ttl {
		ttl = remaining
	}
	if ttl < time.Millisecond {
		return false
	}
	data, err := json.Marshal(fromDomain(s))
	if err != nil {
		return false
	}
	err = fillScript.Run(ctx, c.client, []string{c.key(s.ID)}, s.Version, data, ttl.Milliseconds()).Err()
	if err != nil {
		c.log.Warn().Err(err).Str("session_id", s.ID).Msg("session cache write failed")
		return false
	}
	return true
}

func (c *SessionCache) invalidate(ctx context.Context, id string) {
	if err := c.client.Del(ctx, c.key(id)).Err(); err != nil {
		c.log.Error().Err(err).Str("session_id", id).Msg("session cache invalidation failed")
	}
}

func (c *SessionCache) key(id string) string {
	return fmt.Sprintf("session:%s", id)
}

func fromDomain(s *domain.Session) cachedSession {
	return cachedSession{
		ID:          s.ID,
		UserID:      s.UserID,
		Hash:        s.CurrentRefreshTokenHash,
		InitiatedAt: s.InitiatedAt,
		ExpiresAt:   s.ExpiresAt,
		Revoked:     s.Revoked,
		Version:     s.Version,
	}
}

func (cs cachedSession) toDomain() *domain.Session {
	return &domain.Session{
		ID:                      cs.ID,
		UserID:                  cs.UserID,
		CurrentRefreshTokenHash: cs.Hash,
		InitiatedAt:             cs.InitiatedAt.UTC(),
		ExpiresAt:               cs.ExpiresAt.UTC(),
		Revoked:                 cs.Revoked,
		Version:                 cs.Version,
	}
}
