package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/ligonine/hospital-system/internal/api/metrics"
	"github.com/ligonine/hospital-system/internal/core/domain"
	"github.com/ligonine/hospital-system/internal/core/ports"
)

// RefreshCookieName is the cookie carrying the refresh token.
const RefreshCookieName = "RefreshToken"

// CookieConfig controls the attributes of the refresh token cookie.
type CookieConfig struct {
	Secure bool
	Domain string
}

type AuthHandler struct {
	authService ports.AuthService
	cookie      CookieConfig
}

func NewAuthHandler(authService ports.AuthService, cookie CookieConfig) *AuthHandler {
	return &AuthHandler{authService: authService, cookie: cookie}
}

type registerRequest struct {
	UserName string `json:"userName" validate:"required,max=64"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,password"`
}

type loginRequest struct {
	UserName string `json:"userName" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type addDoctorRoleRequest struct {
	UserName string `json:"userName" validate:"required"`
}

type userResponse struct {
	ID       string   `json:"id"`
	UserName string   `json:"userName"`
	Email    string   `json:"email"`
	Roles    []string `json:"roles"`
}

type accessTokenResponse struct {
	AccessToken string `json:"accessToken"`
}

// Register creates a new account with the HospitalUser role.
//
// @Summary      Register a new user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "User registration details"
// @Success      201   {object}  userResponse
// @Failure      400   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /api/accounts [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	user, err := h.authService.Register(c.Request().Context(), ports.RegisterInput{
		UserName: req.UserName,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		metrics.AuthAttemptsTotal.WithLabelValues("register", failureReason(err)).Inc()
		return err
	}

	metrics.AuthAttemptsTotal.WithLabelValues("register", "success").Inc()
	return c.JSON(http.StatusCreated, userResponse{
		ID:       user.ID,
		UserName: user.UserName,
		Email:    user.Email,
		Roles:    user.Roles,
	})
}

// Login verifies credentials, opens a session and sets the refresh cookie.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  accessTokenResponse
// @Failure      400   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /api/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	pair, err := h.authService.Login(c.Request().Context(), ports.LoginInput{
		UserName: req.UserName,
		Password: req.Password,
	})
	if err != nil {
		metrics.AuthAttemptsTotal.WithLabelValues("login", failureReason(err)).Inc()
		switch {
		case errors.Is(err, domain.ErrUserNotFound):
			return c.JSON(http.StatusUnprocessableEntity, map[string]string{"error": "UserName does not exist"})
		case errors.Is(err, domain.ErrIncorrectPassword), errors.Is(err, domain.ErrInvalidCredentials):
			return c.JSON(http.StatusUnprocessableEntity, map[string]string{"error": "Username or password was incorrect."})
		}
		return err
	}

	metrics.AuthAttemptsTotal.WithLabelValues("login", "success").Inc()
	c.SetCookie(h.refreshCookie(pair.RefreshToken, pair.RefreshExpiresAt))
	return c.JSON(http.StatusOK, accessTokenResponse{AccessToken: pair.AccessToken})
}

// Refresh rotates the session behind the refresh cookie.
//
// @Summary      Exchange the refresh cookie for a new access token
// @Tags         auth
// @Produce      json
// @Success      200   {object}  accessTokenResponse
// @Failure      422   {object}  map[string]string
// @Router       /api/accessToken [post]
func (h *AuthHandler) Refresh(c echo.Context) error {
	pair, err := h.authService.Refresh(c.Request().Context(), h.readRefreshCookie(c))
	if err != nil {
		metrics.AuthAttemptsTotal.WithLabelValues("refresh", failureReason(err)).Inc()
		if errors.Is(err, domain.ErrUnauthenticated) {
			return c.JSON(http.StatusUnprocessableEntity, map[string]string{"error": "invalid session"})
		}
		return err
	}

	metrics.AuthAttemptsTotal.WithLabelValues("refresh", "success").Inc()
	c.SetCookie(h.refreshCookie(pair.RefreshToken, pair.RefreshExpiresAt))
	return c.JSON(http.StatusOK, accessTokenResponse{AccessToken: pair.AccessToken})
}

// Logout revokes the session behind the refresh cookie and deletes it.
//
// @Summary      Logout
// @Tags         auth
// @Success      200
// @Failure      422   {object}  map[string]string
// @Router       /api/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	if err := h.authService.Logout(c.Request().Context(), h.readRefreshCookie(c)); err != nil {
		metrics.AuthAttemptsTotal.WithLabelValues("logout", failureReason(err)).Inc()
		if errors.Is(err, domain.ErrUnauthenticated) {
			return c.JSON(http.StatusUnprocessableEntity, map[string]string{"error": "invalid session"})
		}
		return err
	}

	metrics.AuthAttemptsTotal.WithLabelValues("logout", "success").Inc()
	c.SetCookie(h.expiredCookie())
	return c.NoContent(http.StatusOK)
}

// AddDoctorRole grants the Doctor role. Admin only.
//
// @Summary      Grant the Doctor role
// @Tags         auth
// @Accept       json
// @Security     BearerAuth
// @Param        body  body      addDoctorRoleRequest  true  "Target user"
// @Success      200
// @Failure      401   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /api/addDoctorRole [post]
func (h *AuthHandler) AddDoctorRole(c echo.Context) error {
	var req addDoctorRoleRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	if err := h.authService.GrantDoctorRole(c.Request().Context(), req.UserName); err != nil {
		metrics.AuthAttemptsTotal.WithLabelValues("grant_role", failureReason(err)).Inc()
		if errors.Is(err, domain.ErrUserNotFound) {
			return c.JSON(http.StatusUnprocessableEntity, map[string]string{"error": "User does not exist"})
		}
		return err
	}

	metrics.AuthAttemptsTotal.WithLabelValues("grant_role", "success").Inc()
	return c.NoContent(http.StatusOK)
}

func (h *AuthHandler) readRefreshCookie(c echo.Context) string {
	cookie, err := c.Cookie(RefreshCookieName)
	if err != nil {
		return ""
	}
	return cookie.Value
}

func (h *AuthHandler) refreshCookie(token string, expiresAt time.Time) *http.Cookie {
	return &http.Cookie{
		Name:     RefreshCookieName,
		Value:    token,
		Path:     "/",
		Domain:   h.cookie.Domain,
		Expires:  expiresAt,
		HttpOnly: true,
		Secure:   h.cookie.Secure,
		SameSite: http.SameSiteLaxMode,
	}
}

func (h *AuthHandler) expiredCookie() *http.Cookie {
	cookie := h.refreshCookie("", time.Unix(0, 0))
	cookie.MaxAge = -1
	return cookie
}

func failureReason(err error) string {
	switch {
	case errors.Is(err, domain.ErrValidation):
		return "validation"
	case errors.Is(err, domain.ErrUserNameTaken), errors.Is(err, domain.ErrEmailTaken):
		return "conflict"
	case errors.Is(err, domain.ErrUserNotFound):
		return "user_not_found"
	case errors.Is(err, domain.ErrIncorrectPassword), errors.Is(err, domain.ErrInvalidCredentials):
		return "bad_credentials"
	case errors.Is(err, domain.ErrUnauthenticated):
		return "unauthenticated"
	default:
		return "error"
	}
}
