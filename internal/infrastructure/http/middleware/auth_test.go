package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ufernand853/seguros-main-sub000/internal/domain"
	infraauth "github.com/ufernand853/seguros-main-sub000/internal/infrastructure/auth"
)

var guardSecret = []byte("guard-test-secret")

func guardedEcho(t *testing.T, ttl time.Duration) (*infraauth.TokenIssuer, http.Handler) {
	t.Helper()
	issuer := infraauth.NewTokenIssuer(guardSecret, "seguros", ttl)
	guard := NewRequestGuard(issuer)
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims := ClaimsFromContext(r.Context())
		require.NotNil(t, claims, "guard must inject claims before the handler runs")
		w.WriteHeader(http.StatusOK)
	})
	return issuer, guard.Handler(next)
}

func TestRequestGuard_ValidToken(t *testing.T) {
	t.Parallel()
	issuer, h := guardedEcho(t, time.Hour)
	tok, err := issuer.Issue(&domain.Account{
		ID:    domain.NewAccountID(uuid.New()),
		Email: "demo@seguros.test",
		Name:  "Demo",
		Role:  domain.RoleViewer,
	})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/clients", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRequestGuard_MissingOrMalformedHeader(t *testing.T) {
	t.Parallel()
	_, h := guardedEcho(t, time.Hour)

	for _, header := range []string{"", "Basic abc", "Bearer", "bearer x"} {
		req := httptest.NewRequest(http.MethodGet, "/clients", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code, "header %q", header)
		assert.JSONEq(t, `{"error":"No autenticado","code":"unauthorized"}`, rec.Body.String())
	}
}

func TestRequestGuard_ExpiredToken(t *testing.T) {
	t.Parallel()
	// Token expired 1 second ago; signature is still valid.
	expiredIssuer := infraauth.NewTokenIssuer(guardSecret, "seguros", -time.Second)
	tok, err := expiredIssuer.Issue(&domain.Account{
		ID:   domain.NewAccountID(uuid.New()),
		Role: domain.RoleViewer,
	})
	require.NoError(t, err)

	_, h := guardedEcho(t, time.Hour)
	req := httptest.NewRequest(http.MethodGet, "/clients", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireRole(t *testing.T) {
	t.Parallel()
	issuer := infraauth.NewTokenIssuer(guardSecret, "seguros", time.Hour)
	guard := NewRequestGuard(issuer)
	var h http.Handler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	h = guard.Handler(RequireRole(domain.RoleAdmin)(h))

	operatorTok, err := issuer.Issue(&domain.Account{ID: domain.NewAccountID(uuid.New()), Role: domain.RoleOperator})
	require.NoError(t, err)
	adminTok, err := issuer.Issue(&domain.Account{ID: domain.NewAccountID(uuid.New()), Role: domain.RoleAdmin})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/accounts", nil)
	req.Header.Set("Authorization", "Bearer "+operatorTok)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	req = httptest.NewRequest(http.MethodPost, "/accounts", nil)
	req.Header.Set("Authorization", "Bearer "+adminTok)
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}
