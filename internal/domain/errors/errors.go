// Package errors holds the sentinel errors handlers map to HTTP status.
package errors

import "errors"

var (
	// ErrInvalidCredentials covers both unknown email and wrong password;
	// callers must not distinguish the two.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrInvalidRefreshToken covers absent, malformed and expired refresh tokens.
	ErrInvalidRefreshToken = errors.New("invalid or expired refresh token")
	// ErrInvalidAccessToken covers bad signature, malformed structure or expiry.
	ErrInvalidAccessToken = errors.New("invalid or expired access token")
	// ErrNotFound is returned by repositories when an entity is absent.
	ErrNotFound = errors.New("not found")
	// ErrEmailTaken is returned when creating an account with a duplicate email.
	ErrEmailTaken = errors.New("email already registered")
	// ErrUnavailable wraps store timeouts/connection failures so clients can
	// retry instead of re-prompting for credentials.
	ErrUnavailable = errors.New("storage unavailable")
)
