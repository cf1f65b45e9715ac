package service

import (
	"context"
	"errors"
	"slices"
	"strconv"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/ligonine/hospital-system/internal/core/domain"
	"github.com/ligonine/hospital-system/internal/infrastructure/security"
)

// ---------------------------------------------------------------------------
// In-memory stub repositories
// ---------------------------------------------------------------------------

type stubUserRepo struct {
	mu     sync.Mutex
	byName map[string]*domain.User
	nextID int
	err    error // if set, every call returns it
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{byName: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	clone := *u
	clone.Roles = slices.Clone(u.Roles)
	return &clone
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	if _, exists := r.byName[user.UserName]; exists {
		return nil, domain.ErrUserNameTaken
	}
	for _, u := range r.byName {
		if u.Email == user.Email {
			return nil, domain.ErrEmailTaken
		}
	}
	r.nextID++
	stored := cloneUser(user)
	stored.ID = "user-" + strconv.Itoa(r.nextID)
	r.byName[stored.UserName] = stored
	return cloneUser(stored), nil
}

func (r *stubUserRepo) FindByUserName(_ context.Context, userName string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	u, ok := r.byName[userName]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return cloneUser(u), nil
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.byName {
		if u.ID == id {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) AddRole(_ context.Context, userID, role string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.byName {
		if u.ID == userID {
			if !slices.Contains(u.Roles, role) {
				u.Roles = append(u.Roles, role)
			}
			return nil
		}
	}
	return nil
}

type stubSessionRepo struct {
	mu       sync.Mutex
	sessions map[string]*domain.Session
	findErr  error
	// beforeUpdate runs inside UpdateRefresh before the revoked check.
	beforeUpdate func(id string)
}

func newStubSessionRepo() *stubSessionRepo {
	return &stubSessionRepo{sessions: make(map[string]*domain.Session)}
}

func (r *stubSessionRepo) Create(_ context.Context, s *domain.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	clone := *s
	r.sessions[s.ID] = &clone
	return nil
}

func (r *stubSessionRepo) FindByID(_ context.Context, id string) (*domain.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.findErr != nil {
		return nil, r.findErr
	}
	s, ok := r.sessions[id]
	if !ok {
		return nil, nil
	}
	clone := *s
	return &clone, nil
}

func (r *stubSessionRepo) UpdateRefresh(_ context.Context, id, hash string, expiresAt time.Time) (bool, error) {
	r.mu.Lock()
	s, ok := r.sessions[id]
	beforeUpdate := r.beforeUpdate
	r.mu.Unlock()
	if !ok {
		return false, nil
	}
	if beforeUpdate != nil {
		beforeUpdate(id)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if s.Revoked {
		return false, nil
	}
	s.CurrentRefreshTokenHash = hash
	s.ExpiresAt = expiresAt
	s.Version++
	return true, nil
}

func (r *stubSessionRepo) Revoke(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if s, ok := r.sessions[id]; ok && !s.Revoked {
		s.Revoked = true
		s.Version++
	}
	return nil
}

func (r *stubSessionRepo) only() *domain.Session {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, s := range r.sessions {
		clone := *s
		return &clone
	}
	return nil
}

// memEntityRepo mirrors the parent-scoped filtering of the Mongo repository.
type memEntityRepo[T any] struct {
	items    map[string]T
	order    []string
	parentOf func(T) string
	idOf     func(T) string
}

func newMemEntityRepo[T any](idOf, parentOf func(T) string) *memEntityRepo[T] {
	return &memEntityRepo[T]{items: make(map[string]T), idOf: idOf, parentOf: parentOf}
}

func (r *memEntityRepo[T]) List(_ context.Context, parentID string) ([]T, error) {
	out := []T{}
	for _, id := range r.order {
		item, ok := r.items[id]
		if ok && r.parentOf(item) == parentID {
			out = append(out, item)
		}
	}
	return out, nil
}

func (r *memEntityRepo[T]) Get(_ context.Context, parentID, id string) (*T, error) {
	item, ok := r.items[id]
	if !ok || r.parentOf(item) != parentID {
		return nil, nil
	}
	return &item, nil
}

func (r *memEntityRepo[T]) Create(_ context.Context, entity *T) error {
	id := r.idOf(*entity)
	r.items[id] = *entity
	r.order = append(r.order, id)
	return nil
}

func (r *memEntityRepo[T]) Update(_ context.Context, parentID, id string, entity *T) error {
	item, ok := r.items[id]
	if !ok || r.parentOf(item) != parentID {
		return errors.New("not found")
	}
	r.items[id] = *entity
	return nil
}

func (r *memEntityRepo[T]) Delete(_ context.Context, parentID, id string) error {
	if item, ok := r.items[id]; ok && r.parentOf(item) == parentID {
		delete(r.items, id)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Fixtures
// ---------------------------------------------------------------------------

const testSecret = "0123456789abcdef0123456789abcdef"

func newTestTokens() *security.TokenService {
	return security.NewTokenService(security.TokenConfig{
		Secret:   testSecret,
		Issuer:   "hospital-api",
		Audience: "hospital-web",
	})
}

type authFixture struct {
	svc      *AuthService
	users    *stubUserRepo
	sessions *stubSessionRepo
	tokens   *security.TokenService
}

func newAuthFixture(cfg AuthConfig) *authFixture {
	users := newStubUserRepo()
	sessions := newStubSessionRepo()
	tokens := newTestTokens()
	svc := NewAuthService(users, NewSessionStore(sessions), tokens, security.NewHasher(bcrypt.MinCost), cfg, zerolog.Nop())
	return &authFixture{svc: svc, users: users, sessions: sessions, tokens: tokens}
}
