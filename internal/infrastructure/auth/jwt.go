// Package auth implements the access-token issuer on HS256 JWTs.
package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/ufernand853/seguros-main-sub000/internal/application/ports"
	"github.com/ufernand853/seguros-main-sub000/internal/domain"
	domerrors "github.com/ufernand853/seguros-main-sub000/internal/domain/errors"
)

// TokenIssuer implements ports.TokenIssuer with a process-wide symmetric
// secret. The secret must be identical across all instances so tokens
// issued by one verify on another.
type TokenIssuer struct {
	secret    []byte
	issuer    string
	accessTTL time.Duration
	now       func() time.Time
}

type accessClaims struct {
	jwt.RegisteredClaims
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

func NewTokenIssuer(secret []byte, issuer string, accessTTL time.Duration) *TokenIssuer {
	return &TokenIssuer{secret: secret, issuer: issuer, accessTTL: accessTTL, now: time.Now}
}

// WithClock overrides the issuing time source. Tests use it to move the
// iat claim forward without sleeping.
func (t *TokenIssuer) WithClock(now func() time.Time) *TokenIssuer {
	t.now = now
	return t
}

// AccessTTL returns the configured access-token lifetime.
func (t *TokenIssuer) AccessTTL() time.Duration { return t.accessTTL }

func (t *TokenIssuer) Issue(account *domain.Account) (string, error) {
	now := t.now()
	claims := accessClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    t.issuer,
			Subject:   account.ID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(t.accessTTL)),
		},
		Email: account.Email,
		Name:  account.Name,
		Role:  account.Role.String(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(t.secret)
}

// Verify checks signature and expiry without any storage round trip.
// Every failure collapses into ErrInvalidAccessToken so callers cannot
// distinguish tampering from expiry.
func (t *TokenIssuer) Verify(tokenString string) (*ports.AccessClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &accessClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return t.secret, nil
	}, jwt.WithValidMethods([]string{"HS256"}), jwt.WithExpirationRequired(), jwt.WithIssuer(t.issuer))
	if err != nil {
		return nil, domerrors.ErrInvalidAccessToken
	}
	claims, ok := token.Claims.(*accessClaims)
	if !ok || !token.Valid {
		return nil, domerrors.ErrInvalidAccessToken
	}
	accountID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, domerrors.ErrInvalidAccessToken
	}
	role, err := domain.ParseRole(claims.Role)
	if err != nil {
		return nil, domerrors.ErrInvalidAccessToken
	}
	return &ports.AccessClaims{
		AccountID: domain.NewAccountID(accountID),
		Email:     claims.Email,
		Name:      claims.Name,
		Role:      role,
		IssuedAt:  claims.IssuedAt.Time,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}

var _ ports.TokenIssuer = (*TokenIssuer)(nil)
