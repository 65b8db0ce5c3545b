// Package handlers implements the JSON HTTP endpoints of the back office.
package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	domerrors "github.com/ufernand853/seguros-main-sub000/internal/domain/errors"
)

func writeJSON(w http.ResponseWriter, code int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

// writeErr sends {"error": message, "code": code}. The message is the
// user-visible (Spanish) text; the code is stable for client handling.
func writeErr(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, map[string]string{"error": message, "code": code})
}

// writeDomainErr maps sentinel errors to HTTP responses. Anything
// unrecognized becomes a generic 500: raw internal errors never reach
// the client body.
func writeDomainErr(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domerrors.ErrInvalidCredentials):
		writeErr(w, http.StatusUnauthorized, ErrCodeInvalidCredentials, "Credenciales inválidas")
	case errors.Is(err, domerrors.ErrInvalidRefreshToken):
		writeErr(w, http.StatusUnauthorized, ErrCodeInvalidToken, "Sesión inválida o expirada")
	case errors.Is(err, domerrors.ErrInvalidAccessToken):
		writeErr(w, http.StatusUnauthorized, ErrCodeUnauthorized, "No autenticado")
	case errors.Is(err, domerrors.ErrNotFound):
		writeErr(w, http.StatusNotFound, ErrCodeNotFound, "No encontrado")
	case errors.Is(err, domerrors.ErrEmailTaken):
		writeErr(w, http.StatusConflict, ErrCodeConflict, "El email ya está registrado")
	case errors.Is(err, domerrors.ErrUnavailable):
		writeErr(w, http.StatusServiceUnavailable, ErrCodeUnavailable, "Servicio no disponible, reintente")
	default:
		writeErr(w, http.StatusInternalServerError, ErrCodeInternal, "Error interno")
	}
}
