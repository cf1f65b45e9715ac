package security

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	// DefaultAccessTokenTTL is the lifetime of an access token.
	DefaultAccessTokenTTL = 20 * time.Minute

	tokenUseAccess  = "access"
	tokenUseRefresh = "refresh"
)

// ErrInvalidToken is the only failure validation reports. Signature,
// expiry, structure, issuer and audience problems all collapse into it.
var ErrInvalidToken = errors.New("invalid token")

// AccessClaims is the payload of a bearer access token.
type AccessClaims struct {
	jwt.RegisteredClaims
	TokenUse string   `json:"token_use"`
	UserName string   `json:"name"`
	Roles    []string `json:"roles"`
}

// RefreshClaims is the payload of a refresh token. SessionID binds it to a
// server-side session row.
type RefreshClaims struct {
	jwt.RegisteredClaims
	TokenUse  string `json:"token_use"`
	SessionID string `json:"SessionId"`
}

// TokenConfig holds the signing key and the claims checked on validation.
type TokenConfig struct {
	Secret    string
	Issuer    string
	Audience  string
	AccessTTL time.Duration
}

// TokenService mints and validates HS256 tokens. It keeps no mutable state
// and is safe for concurrent use.
type TokenService struct {
	secret    []byte
	issuer    string
	audience  string
	accessTTL time.Duration
	now       func() time.Time
}

func NewTokenService(cfg TokenConfig) *TokenService {
	ttl := cfg.AccessTTL
	if ttl <= 0 {
		ttl = DefaultAccessTokenTTL
	}
	return &TokenService{
		secret:    []byte(cfg.Secret),
		issuer:    cfg.Issuer,
		audience:  cfg.Audience,
		accessTTL: ttl,
		now:       time.Now,
	}
}

// WithClock returns a copy of s that reads time from now.
func (s *TokenService) WithClock(now func() time.Time) *TokenService {
	clone := *s
	clone.now = now
	return &clone
}

// MintAccessToken issues a short-lived token for the user carrying one
// entry per role.
func (s *TokenService) MintAccessToken(userName, userID string, roles []string) (string, error) {
	now := s.now()
	claims := AccessClaims{
		RegisteredClaims: s.registered(userID, now, now.Add(s.accessTTL)),
		TokenUse:         tokenUseAccess,
		UserName:         userName,
		Roles:            roles,
	}
	return s.sign(claims)
}

// MintRefreshToken issues a refresh token expiring at expiresAt. How long a
// session lives is the caller's decision.
func (s *TokenService) MintRefreshToken(sessionID, userID string, expiresAt time.Time) (string, error) {
	claims := RefreshClaims{
		RegisteredClaims: s.registered(userID, s.now(), expiresAt),
		TokenUse:         tokenUseRefresh,
		SessionID:        sessionID,
	}
	return s.sign(claims)
}

// ValidateRefreshToken checks signature, issuer, audience and lifetime. It
// does not know whether the session behind the token is still valid.
func (s *TokenService) ValidateRefreshToken(token string) (*RefreshClaims, error) {
	claims := &RefreshClaims{}
	if err := s.parse(token, claims); err != nil {
		return nil, err
	}
	if claims.TokenUse != tokenUseRefresh {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// ValidateAccessToken runs the same checks for bearer tokens.
func (s *TokenService) ValidateAccessToken(token string) (*AccessClaims, error) {
	claims := &AccessClaims{}
	if err := s.parse(token, claims); err != nil {
		return nil, err
	}
	if claims.TokenUse != tokenUseAccess || claims.Subject == "" {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

func (s *TokenService) registered(subject string, issuedAt, expiresAt time.Time) jwt.RegisteredClaims {
	return jwt.RegisteredClaims{
		ID:        uuid.NewString(),
		Subject:   subject,
		Issuer:    s.issuer,
		Audience:  jwt.ClaimStrings{s.audience},
		IssuedAt:  jwt.NewNumericDate(issuedAt),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	}
}

func (s *TokenService) sign(claims jwt.Claims) (string, error) {
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

func (s *TokenService) parse(token string, claims jwt.Claims) error {
	_, err := jwt.ParseWithClaims(token, claims,
		func(*jwt.Token) (interface{}, error) { return s.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(s.issuer),
		jwt.WithAudience(s.audience),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return ErrInvalidToken
	}
	return nil
}
