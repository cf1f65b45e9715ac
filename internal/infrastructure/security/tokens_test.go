package security

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func newTestTokenService(now time.Time) *TokenService {
	return NewTokenService(TokenConfig{
		Secret:   testSecret,
		Issuer:   "hospital-api",
		Audience: "hospital-web",
	}).WithClock(func() time.Time { return now })
}

func TestTokenService_AccessRoundTrip(t *testing.T) {
	now := time.Now()
	svc := newTestTokenService(now)

	token, err := svc.MintAccessToken("alice", "user-1", []string{"HospitalUser", "Doctor"})
	if err != nil {
		t.Fatalf("mint: %v", err)
	}

	claims, err := svc.ValidateAccessToken(token)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if claims.Subject != "user-1" {
		t.Fatalf("expected subject user-1, got %s", claims.Subject)
	}
	if claims.UserName != "alice" {
		t.Fatalf("expected name alice, got %s", claims.UserName)
	}
	if len(claims.Roles) != 2 || claims.Roles[0] != "HospitalUser" || claims.Roles[1] != "Doctor" {
		t.Fatalf("unexpected roles: %v", claims.Roles)
	}
	if claims.ID == "" {
		t.Fatalf("expected token id")
	}
	if got := claims.ExpiresAt.Sub(claims.IssuedAt.Time); got != DefaultAccessTokenTTL {
		t.Fatalf("expected lifetime %s, got %s", DefaultAccessTokenTTL, got)
	}
}

func TestTokenService_AccessExpires(t *testing.T) {
	issued := time.Now()
	token, err := newTestTokenService(issued).MintAccessToken("alice", "user-1", nil)
	if err != nil {
		t.Fatalf("mint: %v", err)
	}

	later := newTestTokenService(issued.Add(DefaultAccessTokenTTL + time.Second))
	if _, err := later.ValidateAccessToken(token); err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken after expiry, got %v", err)
	}
}

func TestTokenService_RefreshRoundTrip(t *testing.T) {
	now := time.Now()
	svc := newTestTokenService(now)
	expiresAt := now.Add(48 * time.Hour)

	token, err := svc.MintRefreshToken("session-1", "user-1", expiresAt)
	if err != nil {
		t.Fatalf("mint: %v", err)
	}

	claims, err := svc.ValidateRefreshToken(token)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if claims.SessionID != "session-1" || claims.Subject != "user-1" {
		t.Fatalf("unexpected claims: %+v", claims)
	}
	if claims.ExpiresAt.Unix() != expiresAt.Unix() {
		t.Fatalf("expected exp %d, got %d", expiresAt.Unix(), claims.ExpiresAt.Unix())
	}

	after := newTestTokenService(expiresAt.Add(time.Second))
	if _, err := after.ValidateRefreshToken(token); err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken after expiry, got %v", err)
	}
}

func TestTokenService_RejectsWrongTokenUse(t *testing.T) {
	now := time.Now()
	svc := newTestTokenService(now)

	refresh, _ := svc.MintRefreshToken("session-1", "user-1", now.Add(time.Hour))
	if _, err := svc.ValidateAccessToken(refresh); err != ErrInvalidToken {
		t.Fatalf("refresh token accepted as access token: %v", err)
	}

	access, _ := svc.MintAccessToken("alice", "user-1", nil)
	if _, err := svc.ValidateRefreshToken(access); err != ErrInvalidToken {
		t.Fatalf("access token accepted as refresh token: %v", err)
	}
}

func TestTokenService_RejectsForeignTokens(t *testing.T) {
	now := time.Now()
	svc := newTestTokenService(now)

	otherKey := NewTokenService(TokenConfig{Secret: "another-secret-another-secret-xx", Issuer: "hospital-api", Audience: "hospital-web"})
	otherIssuer := NewTokenService(TokenConfig{Secret: testSecret, Issuer: "someone-else", Audience: "hospital-web"})
	otherAudience := NewTokenService(TokenConfig{Secret: testSecret, Issuer: "hospital-api", Audience: "mobile"})

	for name, minter := range map[string]*TokenService{
		"key":      otherKey,
		"issuer":   otherIssuer,
		"audience": otherAudience,
	} {
		token, err := minter.MintRefreshToken("session-1", "user-1", now.Add(time.Hour))
		if err != nil {
			t.Fatalf("%s: mint: %v", name, err)
		}
		if _, err := svc.ValidateRefreshToken(token); err != ErrInvalidToken {
			t.Fatalf("%s: expected ErrInvalidToken, got %v", name, err)
		}
	}
}

func TestTokenService_RejectsMalformedAndUnsigned(t *testing.T) {
	svc := newTestTokenService(time.Now())

	if _, err := svc.ValidateRefreshToken("not-a-token"); err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}

	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"sub":       "user-1",
		"iss":       "hospital-api",
		"aud":       "hospital-web",
		"exp":       time.Now().Add(time.Hour).Unix(),
		"token_use": "access",
	})
	raw, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("sign none: %v", err)
	}
	if _, err := svc.ValidateAccessToken(raw); err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken for alg=none, got %v", err)
	}

	valid, _ := svc.MintAccessToken("alice", "user-1", nil)
	parts := strings.Split(valid, ".")
	tampered := parts[0] + "." + parts[1] + "." + strings.Repeat("A", len(parts[2]))
	if _, err := svc.ValidateAccessToken(tampered); err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken for tampered signature, got %v", err)
	}
}

func TestHashRefreshToken(t *testing.T) {
	a := HashRefreshToken("token-a")
	if a == "token-a" || len(a) != 64 {
		t.Fatalf("unexpected hash %q", a)
	}
	if a != HashRefreshToken("token-a") {
		t.Fatalf("hash is not deterministic")
	}
	if a == HashRefreshToken("token-b") {
		t.Fatalf("different tokens share a hash")
	}
}
