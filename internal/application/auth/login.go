// Package auth orchestrates the session lifecycle: login, refresh, logout.
package auth

import (
	"context"
	"time"

	"github.com/ufernand853/seguros-main-sub000/internal/application/ports"
	"github.com/ufernand853/seguros-main-sub000/internal/domain"
	domerrors "github.com/ufernand853/seguros-main-sub000/internal/domain/errors"
)

// Default TTLs, overridable through config.
const (
	DefaultAccessTokenTTL  = 7200 * time.Second  // 2h
	DefaultRefreshTokenTTL = 86400 * time.Second // 24h
)

type LoginInput struct {
	Email    string
	Password string
}

type LoginResult struct {
	Account      *domain.Account
	AccessToken  string
	RefreshToken string
	// ExpiresIn is the access-token TTL in seconds.
	ExpiresIn int64
}

// Login verifies credentials and issues both tokens. The three steps
// (lookup, verify, issue+store) run strictly in order and short-circuit
// on the first failure, so no token is ever issued partially.
type Login struct {
	accounts  ports.AccountRepository
	hasher    ports.PasswordHasher
	issuer    ports.TokenIssuer
	tokens    ports.RefreshTokenStore
	accessTTL time.Duration
	// dummyHash is verified against when the email is unknown so both
	// failure paths pay the same hashing cost.
	dummyHash string
}

func NewLogin(accounts ports.AccountRepository, hasher ports.PasswordHasher, issuer ports.TokenIssuer, tokens ports.RefreshTokenStore, accessTTL time.Duration) *Login {
	if accessTTL <= 0 {
		accessTTL = DefaultAccessTokenTTL
	}
	dummyHash, _ := hasher.Hash("cf6a4c5af2191884f3a1b0fa2c0006e1")
	return &Login{accounts: accounts, hasher: hasher, issuer: issuer, tokens: tokens, accessTTL: accessTTL, dummyHash: dummyHash}
}

func (uc *Login) Execute(ctx context.Context, input LoginInput) (*LoginResult, error) {
	account, err := uc.accounts.GetByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	// Unknown email and wrong password collapse into the same error, and
	// the unknown-email path still runs a full verification against a
	// dummy credential so response latency carries no enumeration signal
	// either.
	if account == nil {
		uc.hasher.Verify(input.Password, uc.dummyHash)
		return nil, domerrors.ErrInvalidCredentials
	}
	if !uc.hasher.Verify(input.Password, account.PasswordHash) {
		return nil, domerrors.ErrInvalidCredentials
	}
	accessToken, err := uc.issuer.Issue(account)
	if err != nil {
		return nil, err
	}
	refreshToken, _, err := uc.tokens.Create(ctx, account.ID)
	if err != nil {
		return nil, err
	}
	return &LoginResult{
		Account:      account,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    int64(uc.accessTTL.Seconds()),
	}, nil
}
