package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ligonine/hospital-system/internal/core/domain"
	"github.com/ligonine/hospital-system/internal/core/ports"
)

func registerAlice(t *testing.T, f *authFixture) *domain.User {
	t.Helper()
	user, err := f.svc.Register(context.Background(), ports.RegisterInput{
		UserName: "alice",
		Email:    "a@x.com",
		Password: "Abc123!@#",
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	return user
}

func loginAlice(t *testing.T, f *authFixture) *ports.TokenPair {
	t.Helper()
	pair, err := f.svc.Login(context.Background(), ports.LoginInput{UserName: "alice", Password: "Abc123!@#"})
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	return pair
}

func TestAuthService_Register_AssignsHospitalUser(t *testing.T) {
	f := newAuthFixture(AuthConfig{})
	user := registerAlice(t, f)

	if user.PasswordHash == "Abc123!@#" {
		t.Fatalf("expected password to be hashed")
	}
	if len(user.Roles) != 1 || user.Roles[0] != domain.RoleHospitalUser {
		t.Fatalf("expected [HospitalUser], got %v", user.Roles)
	}
}

func TestAuthService_Register_Duplicate(t *testing.T) {
	f := newAuthFixture(AuthConfig{})
	registerAlice(t, f)

	_, err := f.svc.Register(context.Background(), ports.RegisterInput{UserName: "alice", Email: "other@x.com", Password: "Abc123!@#"})
	if err != domain.ErrUserNameTaken {
		t.Fatalf("expected ErrUserNameTaken, got %v", err)
	}
}

func TestAuthService_Register_Validation(t *testing.T) {
	f := newAuthFixture(AuthConfig{})

	_, err := f.svc.Register(context.Background(), ports.RegisterInput{UserName: " ", Email: "a@x.com", Password: "pw"})
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}

func TestAuthService_Register_RejectsWeakPassword(t *testing.T) {
	f := newAuthFixture(AuthConfig{})

	_, err := f.svc.Register(context.Background(), ports.RegisterInput{UserName: "bob", Email: "b@x.com", Password: "password"})
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
	if _, err := f.users.FindByUserName(context.Background(), "bob"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("weak registration must not create a user, got %v", err)
	}
}

func TestAuthService_Login_TokenCarriesIdentity(t *testing.T) {
	f := newAuthFixture(AuthConfig{})
	user := registerAlice(t, f)

	pair := loginAlice(t, f)
	if pair.AccessToken == "" || pair.RefreshToken == "" {
		t.Fatalf("expected both tokens, got %+v", pair)
	}

	claims, err := f.tokens.ValidateAccessToken(pair.AccessToken)
	if err != nil {
		t.Fatalf("access token invalid: %v", err)
	}
	if claims.Subject != user.ID {
		t.Fatalf("expected subject %s, got %s", user.ID, claims.Subject)
	}
	if len(claims.Roles) != 1 || claims.Roles[0] != domain.RoleHospitalUser {
		t.Fatalf("unexpected roles %v", claims.Roles)
	}

	session := f.sessions.only()
	if session == nil {
		t.Fatalf("expected a session row")
	}
	if session.UserID != user.ID || session.Revoked {
		t.Fatalf("unexpected session %+v", session)
	}
	if session.CurrentRefreshTokenHash == pair.RefreshToken {
		t.Fatalf("refresh token stored in plaintext")
	}
	if !session.ExpiresAt.Equal(pair.RefreshExpiresAt) {
		t.Fatalf("session expiry %s != cookie expiry %s", session.ExpiresAt, pair.RefreshExpiresAt)
	}
	if d := time.Until(pair.RefreshExpiresAt); d < DefaultRefreshTTL-time.Minute || d > DefaultRefreshTTL {
		t.Fatalf("unexpected refresh lifetime %s", d)
	}

	refreshClaims, err := f.tokens.ValidateRefreshToken(pair.RefreshToken)
	if err != nil {
		t.Fatalf("refresh token invalid: %v", err)
	}
	if refreshClaims.SessionID != session.ID {
		t.Fatalf("refresh token bound to %s, session is %s", refreshClaims.SessionID, session.ID)
	}
}

func TestAuthService_Login_Failures(t *testing.T) {
	f := newAuthFixture(AuthConfig{})
	registerAlice(t, f)

	if _, err := f.svc.Login(context.Background(), ports.LoginInput{UserName: "alice", Password: "wrong"}); err != domain.ErrIncorrectPassword {
		t.Fatalf("expected ErrIncorrectPassword, got %v", err)
	}
	if _, err := f.svc.Login(context.Background(), ports.LoginInput{UserName: "ghost", Password: "pw"}); err != domain.ErrUserNotFound {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
	if f.sessions.only() != nil {
		t.Fatalf("failed logins must not create sessions")
	}
}

func TestAuthService_Login_UniformErrors(t *testing.T) {
	f := newAuthFixture(AuthConfig{UniformLoginErrors: true})
	registerAlice(t, f)

	_, wrongPassword := f.svc.Login(context.Background(), ports.LoginInput{UserName: "alice", Password: "wrong"})
	_, unknownUser := f.svc.Login(context.Background(), ports.LoginInput{UserName: "ghost", Password: "pw"})
	if wrongPassword != domain.ErrInvalidCredentials || unknownUser != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials for both, got %v / %v", wrongPassword, unknownUser)
	}
}

func TestAuthService_Refresh_RotatesSingleUse(t *testing.T) {
	f := newAuthFixture(AuthConfig{})
	registerAlice(t, f)
	first := loginAlice(t, f)

	second, err := f.svc.Refresh(context.Background(), first.RefreshToken)
	if err != nil {
		t.Fatalf("refresh: %v", err)
	}
	if second.RefreshToken == first.RefreshToken {
		t.Fatalf("expected a new refresh token")
	}
	if second.AccessToken == "" {
		t.Fatalf("expected a new access token")
	}

	firstClaims, _ := f.tokens.ValidateRefreshToken(first.RefreshToken)
	secondClaims, _ := f.tokens.ValidateRefreshToken(second.RefreshToken)
	if firstClaims.SessionID != secondClaims.SessionID {
		t.Fatalf("rotation must keep the session id")
	}

	if _, err := f.svc.Refresh(context.Background(), first.RefreshToken); err != domain.ErrUnauthenticated {
		t.Fatalf("replayed refresh token: expected ErrUnauthenticated, got %v", err)
	}

	if _, err := f.svc.Refresh(context.Background(), second.RefreshToken); err != nil {
		t.Fatalf("current refresh token rejected: %v", err)
	}
}

func TestAuthService_Refresh_PicksUpNewRoles(t *testing.T) {
	f := newAuthFixture(AuthConfig{})
	registerAlice(t, f)
	pair := loginAlice(t, f)

	if err := f.svc.GrantDoctorRole(context.Background(), "alice"); err != nil {
		t.Fatalf("grant: %v", err)
	}

	refreshed, err := f.svc.Refresh(context.Background(), pair.RefreshToken)
	if err != nil {
		t.Fatalf("refresh: %v", err)
	}
	principal, err := f.svc.Authenticate(refreshed.AccessToken)
	if err != nil {
		t.Fatalf("authenticate: %v", err)
	}
	if !principal.HasAnyRole(domain.RoleDoctor) {
		t.Fatalf("expected Doctor role after refresh, got %v", principal.Roles)
	}
}

func TestAuthService_Refresh_RejectsGarbage(t *testing.T) {
	f := newAuthFixture(AuthConfig{})

	for _, token := range []string{"", "garbage"} {
		if _, err := f.svc.Refresh(context.Background(), token); err != domain.ErrUnauthenticated {
			t.Fatalf("token %q: expected ErrUnauthenticated, got %v", token, err)
		}
	}

	malformedSession, _ := f.tokens.MintRefreshToken("not-a-uuid", "user-1", time.Now().Add(time.Hour))
	if _, err := f.svc.Refresh(context.Background(), malformedSession); err != domain.ErrUnauthenticated {
		t.Fatalf("malformed session id: expected ErrUnauthenticated, got %v", err)
	}

	unknownSession, _ := f.tokens.MintRefreshToken("5b0a3a4e-1b7b-4f0b-9a56-0f3e5c8d2a11", "user-1", time.Now().Add(time.Hour))
	if _, err := f.svc.Refresh(context.Background(), unknownSession); err != domain.ErrUnauthenticated {
		t.Fatalf("unknown session: expected ErrUnauthenticated, got %v", err)
	}
}

func TestAuthService_Refresh_StoreFailureIsNotHidden(t *testing.T) {
	f := newAuthFixture(AuthConfig{})
	registerAlice(t, f)
	pair := loginAlice(t, f)

	storeErr := errors.New("connection refused")
	f.sessions.findErr = storeErr

	_, err := f.svc.Refresh(context.Background(), pair.RefreshToken)
	if !errors.Is(err, storeErr) {
		t.Fatalf("expected store error to propagate, got %v", err)
	}
}

func TestAuthService_Refresh_LosesToConcurrentLogout(t *testing.T) {
	f := newAuthFixture(AuthConfig{})
	registerAlice(t, f)
	pair := loginAlice(t, f)

	f.sessions.beforeUpdate = func(string) {
		f.sessions.beforeUpdate = nil
		if err := f.svc.Logout(context.Background(), pair.RefreshToken); err != nil {
			t.Errorf("logout: %v", err)
		}
	}

	refreshed, err := f.svc.Refresh(context.Background(), pair.RefreshToken)
	if err != domain.ErrUnauthenticated {
		t.Fatalf("expected ErrUnauthenticated, got %v", err)
	}
	if refreshed != nil {
		t.Fatalf("no token pair may be handed out for a revoked session")
	}
	if s := f.sessions.only(); !s.Revoked || s.CurrentRefreshTokenHash == "" {
		t.Fatalf("session should stay revoked with its old hash, got %+v", s)
	}
}

func TestAuthService_Logout_RevokesSession(t *testing.T) {
	f := newAuthFixture(AuthConfig{})
	registerAlice(t, f)
	pair := loginAlice(t, f)

	if err := f.svc.Logout(context.Background(), pair.RefreshToken); err != nil {
		t.Fatalf("logout: %v", err)
	}
	if !f.sessions.only().Revoked {
		t.Fatalf("expected session to be revoked")
	}

	if _, err := f.svc.Refresh(context.Background(), pair.RefreshToken); err != domain.ErrUnauthenticated {
		t.Fatalf("refresh after logout: expected ErrUnauthenticated, got %v", err)
	}

	// idempotent
	if err := f.svc.Logout(context.Background(), pair.RefreshToken); err != nil {
		t.Fatalf("second logout: %v", err)
	}
}

func TestAuthService_Logout_RequiresValidToken(t *testing.T) {
	f := newAuthFixture(AuthConfig{})

	if err := f.svc.Logout(context.Background(), ""); err != domain.ErrUnauthenticated {
		t.Fatalf("expected ErrUnauthenticated, got %v", err)
	}
	if err := f.svc.Logout(context.Background(), "garbage"); err != domain.ErrUnauthenticated {
		t.Fatalf("expected ErrUnauthenticated, got %v", err)
	}
}

func TestAuthService_AccessTokenOutlivesLogout(t *testing.T) {
	f := newAuthFixture(AuthConfig{})
	registerAlice(t, f)
	pair := loginAlice(t, f)

	if err := f.svc.Logout(context.Background(), pair.RefreshToken); err != nil {
		t.Fatalf("logout: %v", err)
	}
	if _, err := f.svc.Authenticate(pair.AccessToken); err != nil {
		t.Fatalf("access token should stay valid until it expires: %v", err)
	}
}

func TestAuthService_GrantDoctorRole_UnknownUser(t *testing.T) {
	f := newAuthFixture(AuthConfig{})

	if err := f.svc.GrantDoctorRole(context.Background(), "ghost"); err != domain.ErrUserNotFound {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestAuthService_Authenticate_RejectsRefreshToken(t *testing.T) {
	f := newAuthFixture(AuthConfig{})
	registerAlice(t, f)
	pair := loginAlice(t, f)

	if _, err := f.svc.Authenticate(pair.RefreshToken); err != domain.ErrUnauthenticated {
		t.Fatalf("expected ErrUnauthenticated, got %v", err)
	}
}
