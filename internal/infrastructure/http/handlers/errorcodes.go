package handlers

// API error codes returned in {"error": "...", "code": "..."} for stable
// client handling.
const (
	ErrCodeInvalidCredentials = "invalid_credentials"
	ErrCodeInvalidToken       = "invalid_token"
	ErrCodeUnauthorized       = "unauthorized"
	ErrCodeInvalidRequest     = "invalid_request"
	ErrCodeNotFound           = "not_found"
	ErrCodeConflict           = "conflict"
	ErrCodeForbidden          = "forbidden"
	ErrCodeTooManyAttempts    = "too_many_attempts"
	ErrCodeUnavailable        = "unavailable"
	ErrCodeInternal           = "internal_error"
)
