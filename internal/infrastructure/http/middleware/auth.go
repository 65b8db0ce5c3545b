package middleware

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/ufernand853/seguros-main-sub000/internal/application/ports"
	"github.com/ufernand853/seguros-main-sub000/internal/domain"
)

// RequestGuard verifies the bearer access token on protected routes and
// injects the decoded claims into the request context. It trusts the
// token for its whole lifetime: no account re-check against storage.
type RequestGuard struct {
	issuer ports.TokenIssuer
}

func NewRequestGuard(issuer ports.TokenIssuer) *RequestGuard {
	return &RequestGuard{issuer: issuer}
}

func (g *RequestGuard) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			writeUnauthenticated(w)
			return
		}
		token := strings.TrimPrefix(header, "Bearer ")
		claims, err := g.issuer.Verify(token)
		if err != nil {
			writeUnauthenticated(w)
			return
		}
		next.ServeHTTP(w, r.WithContext(WithClaims(r.Context(), claims)))
	})
}

// RequireRole gates a route group on the role claim. Must run after the
// request guard.
func RequireRole(role domain.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims := ClaimsFromContext(r.Context())
			if claims == nil {
				writeUnauthenticated(w)
				return
			}
			if claims.Role != role {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusForbidden)
				_ = json.NewEncoder(w).Encode(map[string]string{"error": "Permisos insuficientes", "code": "forbidden"})
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// writeUnauthenticated emits the single generic 401 body used for every
// guard failure, so clients cannot tell a missing header from a tampered
// or expired token.
func writeUnauthenticated(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": "No autenticado", "code": "unauthorized"})
}
