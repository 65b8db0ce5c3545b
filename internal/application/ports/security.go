package ports

import (
	"time"

	"github.com/ufernand853/seguros-main-sub000/internal/domain"
)

// PasswordHasher derives and verifies password credentials (Argon2id,
// stored as hex salt:hash).
type PasswordHasher interface {
	Hash(password string) (string, error)
	// Verify must compare in constant time and return false, not an error,
	// on malformed stored credentials.
	Verify(password, encoded string) bool
}

// AccessClaims is the decoded claim set of a verified access token.
type AccessClaims struct {
	AccountID domain.AccountID
	Email     string
	Name      string
	Role      domain.Role
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// TokenIssuer signs and verifies self-contained access tokens (HS256).
// Verification is purely computational; it never touches storage.
type TokenIssuer interface {
	Issue(account *domain.Account) (string, error)
	// Verify returns ErrInvalidAccessToken on bad signature, malformed
	// structure or expiry.
	Verify(token string) (*AccessClaims, error)
}
