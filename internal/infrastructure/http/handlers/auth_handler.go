package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/ufernand853/seguros-main-sub000/internal/application/auth"
	"github.com/ufernand853/seguros-main-sub000/internal/domain"
	domerrors "github.com/ufernand853/seguros-main-sub000/internal/domain/errors"
	"github.com/ufernand853/seguros-main-sub000/internal/infrastructure/http/middleware"
	"github.com/ufernand853/seguros-main-sub000/internal/infrastructure/lockout"
)

// AuthHandler serves /auth/*.
type AuthHandler struct {
	login    *auth.Login
	refresh  *auth.Refresh
	logout   *auth.Logout
	lockout  *lockout.MemoryStore
	validate *validator.Validate
	log      zerolog.Logger
}

// NewAuthHandler builds the auth endpoints. lockoutStore may be nil to
// disable brute-force lockout.
func NewAuthHandler(login *auth.Login, refresh *auth.Refresh, logout *auth.Logout, lockoutStore *lockout.MemoryStore, log zerolog.Logger) *AuthHandler {
	return &AuthHandler{
		login:    login,
		refresh:  refresh,
		logout:   logout,
		lockout:  lockoutStore,
		validate: validator.New(),
		log:      log,
	}
}

// userResponse is the sanitized account: the password credential never
// leaves the server.
type userResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

func sanitizeAccount(a *domain.Account) userResponse {
	return userResponse{
		ID:    a.ID.String(),
		Email: a.Email,
		Name:  a.Name,
		Role:  a.Role.String(),
	}
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Email    string `json:"email" validate:"required,email,max=254"`
		Password string `json:"password" validate:"required,max=128"`
	}
	if !decodeAndValidate(w, r, h.validate, &body) {
		return
	}
	email := SanitizeEmail(body.Email)
	if email == "" {
		writeErr(w, http.StatusBadRequest, ErrCodeInvalidRequest, "Faltan campos obligatorios o son inválidos")
		return
	}
	if h.lockout != nil {
		if locked, retryAfter := h.lockout.IsLocked(email); locked {
			w.Header().Set("Retry-After", strconv.Itoa(retryAfter))
			writeErr(w, http.StatusTooManyRequests, ErrCodeTooManyAttempts, "Demasiados intentos, reintente más tarde")
			return
		}
	}
	result, err := h.login.Execute(r.Context(), auth.LoginInput{Email: email, Password: body.Password})
	if err != nil {
		if h.lockout != nil && errors.Is(err, domerrors.ErrInvalidCredentials) {
			h.lockout.RecordFailure(email)
		}
		middleware.RecordAuthAttempt("login", false)
		h.log.Warn().Err(err).Str("email", email).Msg("login failed")
		writeDomainErr(w, err)
		return
	}
	if h.lockout != nil {
		h.lockout.RecordSuccess(email)
	}
	middleware.RecordAuthAttempt("login", true)
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"user":             sanitizeAccount(result.Account),
		"accessToken":      result.AccessToken,
		"refreshToken":     result.RefreshToken,
		"expiresInSeconds": result.ExpiresIn,
	})
}

func (h *AuthHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	var body struct {
		RefreshToken string `json:"refreshToken" validate:"required,max=1024"`
	}
	if !decodeAndValidate(w, r, h.validate, &body) {
		return
	}
	result, err := h.refresh.Execute(r.Context(), auth.RefreshInput{RefreshToken: body.RefreshToken})
	if err != nil {
		middleware.RecordAuthAttempt("refresh", false)
		writeDomainErr(w, err)
		return
	}
	middleware.RecordAuthAttempt("refresh", true)
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"accessToken":      result.AccessToken,
		"expiresInSeconds": result.ExpiresIn,
	})
}

// Logout always answers 200: revoking an invalid or absent token must
// never fail the caller.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	var body struct {
		RefreshToken string `json:"refreshToken"`
	}
	_ = decodeBestEffort(r, &body)
	if err := h.logout.Execute(r.Context(), body.RefreshToken); err != nil {
		h.log.Warn().Err(err).Msg("logout revoke failed")
	}
	middleware.RecordAuthAttempt("logout", true)
	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

// Me echoes the guard-verified claims of the current access token.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	claims := middleware.ClaimsFromContext(r.Context())
	if claims == nil {
		writeErr(w, http.StatusUnauthorized, ErrCodeUnauthorized, "No autenticado")
		return
	}
	writeJSON(w, http.StatusOK, userResponse{
		ID:    claims.AccountID.String(),
		Email: claims.Email,
		Name:  claims.Name,
		Role:  claims.Role.String(),
	})
}
