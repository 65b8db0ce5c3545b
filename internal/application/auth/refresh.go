package auth

import (
	"context"
	"time"

	"github.com/ufernand853/seguros-main-sub000/internal/application/ports"
	domerrors "github.com/ufernand853/seguros-main-sub000/internal/domain/errors"
)

type RefreshInput struct {
	RefreshToken string
}

type RefreshResult struct {
	AccessToken string
	ExpiresIn   int64
}

// Refresh exchanges a live refresh token for a new access token. The
// refresh token is deliberately not rotated: it stays valid until its
// own expiry or an explicit logout.
type Refresh struct {
	accounts  ports.AccountRepository
	issuer    ports.TokenIssuer
	tokens    ports.RefreshTokenStore
	accessTTL time.Duration
}

func NewRefresh(accounts ports.AccountRepository, issuer ports.TokenIssuer, tokens ports.RefreshTokenStore, accessTTL time.Duration) *Refresh {
	if accessTTL <= 0 {
		accessTTL = DefaultAccessTokenTTL
	}
	return &Refresh{accounts: accounts, issuer: issuer, tokens: tokens, accessTTL: accessTTL}
}

func (uc *Refresh) Execute(ctx context.Context, input RefreshInput) (*RefreshResult, error) {
	if input.RefreshToken == "" {
		return nil, domerrors.ErrInvalidRefreshToken
	}
	accountID, err := uc.tokens.Validate(ctx, input.RefreshToken)
	if err != nil {
		return nil, err
	}
	if accountID == nil {
		return nil, domerrors.ErrInvalidRefreshToken
	}
	// Re-fetch: the account may have been deleted after the token was issued.
	account, err := uc.accounts.GetByID(ctx, *accountID)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, domerrors.ErrInvalidRefreshToken
	}
	accessToken, err := uc.issuer.Issue(account)
	if err != nil {
		return nil, err
	}
	return &RefreshResult{
		AccessToken: accessToken,
		ExpiresIn:   int64(uc.accessTTL.Seconds()),
	}, nil
}
