package auth

import (
	"context"

	"github.com/ufernand853/seguros-main-sub000/internal/application/ports"
)

// Logout revokes a refresh token. It never fails the caller: revoking an
// absent or already-revoked token is a no-op, and store errors are
// surfaced only so the handler can log them.
type Logout struct {
	tokens ports.RefreshTokenStore
}

func NewLogout(tokens ports.RefreshTokenStore) *Logout {
	return &Logout{tokens: tokens}
}

func (uc *Logout) Execute(ctx context.Context, refreshToken string) error {
	if refreshToken == "" {
		return nil
	}
	return uc.tokens.Revoke(ctx, refreshToken)
}
