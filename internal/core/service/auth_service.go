package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/ligonine/hospital-system/internal/core/domain"
	"github.com/ligonine/hospital-system/internal/core/ports"
	"github.com/ligonine/hospital-system/internal/infrastructure/security"
)

// DefaultRefreshTTL is how long a session lives past its last login or refresh.
const DefaultRefreshTTL = 48 * time.Hour

// TokenIssuer abstracts the token service.
type TokenIssuer interface {
	MintAccessToken(userName, userID string, roles []string) (string, error)
	MintRefreshToken(sessionID, userID string, expiresAt time.Time) (string, error)
	ValidateRefreshToken(token string) (*security.RefreshClaims, error)
	ValidateAccessToken(token string) (*security.AccessClaims, error)
}

// PasswordHasher abstracts the password hashing primitive.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) error
}

type AuthConfig struct {
	RefreshTTL time.Duration
	// UniformLoginErrors hides whether the user name or the password was
	// wrong on login.
	UniformLoginErrors bool
}

// AuthService implements registration, login, refresh-token rotation,
// logout and role grants.
type AuthService struct {
	users    ports.UserRepository
	sessions *SessionStore
	tokens   TokenIssuer
	hasher   PasswordHasher
	cfg      AuthConfig
	logger   zerolog.Logger
	now      func() time.Time
}

func NewAuthService(users ports.UserRepository, sessions *SessionStore, tokens TokenIssuer, hasher PasswordHasher, cfg AuthConfig, logger zerolog.Logger) *AuthService {
	if cfg.RefreshTTL <= 0 {
		cfg.RefreshTTL = DefaultRefreshTTL
	}
	return &AuthService{
		users:    users,
		sessions: sessions,
		tokens:   tokens,
		hasher:   hasher,
		cfg:      cfg,
		logger:   logger,
		now:      time.Now,
	}
}

var _ ports.AuthService = (*AuthService)(nil)

func (s *AuthService) Register(ctx context.Context, in ports.RegisterInput) (*domain.User, error) {
	in.UserName = strings.TrimSpace(in.UserName)
	in.Email = strings.TrimSpace(in.Email)
	if in.UserName == "" || in.Email == "" || in.Password == "" {
		return nil, &domain.ValidationError{Reason: "userName, email and password are required"}
	}
	if !domain.IsStrongPassword(in.Password) {
		return nil, &domain.ValidationError{Reason: domain.PasswordRequirements}
	}

	existing, err := s.users.FindByUserName(ctx, in.UserName)
	switch {
	case err == nil && existing != nil:
		return nil, domain.ErrUserNameTaken
	case err != nil && !errors.Is(err, domain.ErrUserNotFound):
		return nil, err
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	created, err := s.users.Create(ctx, &domain.User{
		UserName:     in.UserName,
		Email:        in.Email,
		PasswordHash: hash,
		Roles:        []string{domain.RoleHospitalUser},
		CreatedAt:    s.now().UTC(),
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("user_id", created.ID).Str("user_name", created.UserName).Msg("user registered")
	return created, nil
}

// Login verifies the password and opens a new session.
func (s *AuthService) Login(ctx context.Context, in ports.LoginInput) (*ports.TokenPair, error) {
	user, err := s.users.FindByUserName(ctx, in.UserName)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, s.loginFailure(domain.ErrUserNotFound)
		}
		return nil, err
	}

	if s.hasher.Compare(user.PasswordHash, in.Password) != nil {
		return nil, s.loginFailure(domain.ErrIncorrectPassword)
	}

	sessionID := uuid.NewString()
	expiresAt := s.sessionExpiry()

	pair, err := s.issue(user, sessionID, expiresAt)
	if err != nil {
		return nil, err
	}
	if err := s.sessions.Create(ctx, sessionID, user.ID, pair.RefreshToken, expiresAt); err != nil {
		return nil, err
	}

	s.logger.Info().Str("user_id", user.ID).Str("session_id", sessionID).Msg("session started")
	return pair, nil
}

func (s *AuthService) loginFailure(reason error) error {
	if s.cfg.UniformLoginErrors {
		return domain.ErrInvalidCredentials
	}
	return reason
}

// Refresh exchanges the session's current refresh token for a new pair and
// rotates the session onto the new refresh token. Every precondition
// failure returns domain.ErrUnauthenticated.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*ports.TokenPair, error) {
	sessionID, claims, err := s.sessionFromToken(refreshToken)
	if err != nil {
		return nil, err
	}

	valid, err := s.sessions.IsValid(ctx, sessionID, refreshToken)
	if err != nil {
		return nil, err
	}
	if !valid {
		s.logger.Debug().Str("session_id", sessionID).Msg("refresh rejected")
		return nil, domain.ErrUnauthenticated
	}

	user, err := s.users.FindByID(ctx, claims.Subject)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrUnauthenticated
		}
		return nil, err
	}

	expiresAt := s.sessionExpiry()
	pair, err := s.issue(user, sessionID, expiresAt)
	if err != nil {
		return nil, err
	}
	extended, err := s.sessions.Extend(ctx, sessionID, pair.RefreshToken, expiresAt)
	if err != nil {
		return nil, err
	}
	if !extended {
		s.logger.Debug().Str("session_id", sessionID).Msg("session ended during refresh")
		return nil, domain.ErrUnauthenticated
	}

	s.logger.Debug().Str("user_id", user.ID).Str("session_id", sessionID).Msg("session refreshed")
	return pair, nil
}

// Logout revokes the session named by the refresh token. Revoking an
// already revoked or missing session succeeds.
func (s *AuthService) Logout(ctx context.Context, refreshToken string) error {
	sessionID, _, err := s.sessionFromToken(refreshToken)
	if err != nil {
		return err
	}
	if err := s.sessions.Revoke(ctx, sessionID); err != nil {
		return err
	}
	s.logger.Info().Str("session_id", sessionID).Msg("session revoked")
	return nil
}

func (s *AuthService) GrantDoctorRole(ctx context.Context, userName string) error {
	user, err := s.users.FindByUserName(ctx, userName)
	if err != nil {
		return err
	}
	if err := s.users.AddRole(ctx, user.ID, domain.RoleDoctor); err != nil {
		return fmt.Errorf("grant doctor role: %w", err)
	}
	s.logger.Info().Str("user_id", user.ID).Str("role", domain.RoleDoctor).Msg("role granted")
	return nil
}

// Authenticate turns a bearer token into a principal. A revoked session
// does not invalidate access tokens already issued from it.
func (s *AuthService) Authenticate(accessToken string) (*domain.Principal, error) {
	claims, err := s.tokens.ValidateAccessToken(accessToken)
	if err != nil {
		return nil, domain.ErrUnauthenticated
	}
	return domain.NewPrincipal(claims.Subject, claims.UserName, claims.Roles), nil
}

func (s *AuthService) sessionFromToken(refreshToken string) (string, *security.RefreshClaims, error) {
	if refreshToken == "" {
		return "", nil, domain.ErrUnauthenticated
	}
	claims, err := s.tokens.ValidateRefreshToken(refreshToken)
	if err != nil {
		return "", nil, domain.ErrUnauthenticated
	}
	id, err := uuid.Parse(strings.TrimSpace(claims.SessionID))
	if err != nil {
		return "", nil, domain.ErrUnauthenticated
	}
	return id.String(), claims, nil
}

func (s *AuthService) issue(user *domain.User, sessionID string, expiresAt time.Time) (*ports.TokenPair, error) {
	access, err := s.tokens.MintAccessToken(user.UserName, user.ID, user.Roles)
	if err != nil {
		return nil, fmt.Errorf("mint access token: %w", err)
	}
	refresh, err := s.tokens.MintRefreshToken(sessionID, user.ID, expiresAt)
	if err != nil {
		return nil, fmt.Errorf("mint refresh token: %w", err)
	}
	return &ports.TokenPair{AccessToken: access, RefreshToken: refresh, RefreshExpiresAt: expiresAt}, nil
}

// sessionExpiry is truncated to whole seconds so the cookie, the token exp
// claim and the stored row agree.
func (s *AuthService) sessionExpiry() time.Time {
	return s.now().UTC().Add(s.cfg.RefreshTTL).Truncate(time.Second)
}
