package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ufernand853/seguros-main-sub000/internal/domain"
	domerrors "github.com/ufernand853/seguros-main-sub000/internal/domain/errors"
)

var testSecret = []byte("test-secret-0123456789abcdef")

func testAccount() *domain.Account {
	return &domain.Account{
		ID:    domain.NewAccountID(uuid.New()),
		Email: "demo@seguros.test",
		Name:  "Demo",
		Role:  domain.RoleOperator,
	}
}

func TestIssueVerifyRoundTrip(t *testing.T) {
	t.Parallel()
	issuer := NewTokenIssuer(testSecret, "seguros", 2*time.Hour)
	acc := testAccount()

	tok, err := issuer.Issue(acc)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	claims, err := issuer.Verify(tok)
	require.NoError(t, err)
	assert.Equal(t, acc.ID, claims.AccountID)
	assert.Equal(t, acc.Email, claims.Email)
	assert.Equal(t, acc.Name, claims.Name)
	assert.Equal(t, acc.Role, claims.Role)
	assert.WithinDuration(t, time.Now().Add(2*time.Hour), claims.ExpiresAt, 5*time.Second)
}

func TestVerifyExpiredToken(t *testing.T) {
	t.Parallel()
	// TTL already elapsed: exp sits 1 second in the past.
	issuer := NewTokenIssuer(testSecret, "seguros", -time.Second)
	tok, err := issuer.Issue(testAccount())
	require.NoError(t, err)

	_, err = issuer.Verify(tok)
	assert.ErrorIs(t, err, domerrors.ErrInvalidAccessToken)
}

func TestVerifyWrongSecret(t *testing.T) {
	t.Parallel()
	issuer := NewTokenIssuer(testSecret, "seguros", time.Hour)
	tok, err := issuer.Issue(testAccount())
	require.NoError(t, err)

	other := NewTokenIssuer([]byte("a-different-secret"), "seguros", time.Hour)
	_, err = other.Verify(tok)
	assert.ErrorIs(t, err, domerrors.ErrInvalidAccessToken)
}

func TestVerifyMalformedAndWrongAlg(t *testing.T) {
	t.Parallel()
	issuer := NewTokenIssuer(testSecret, "seguros", time.Hour)

	_, err := issuer.Verify("not-a-jwt")
	assert.ErrorIs(t, err, domerrors.ErrInvalidAccessToken)

	// alg=none must never pass.
	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{
		Subject:   uuid.NewString(),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	raw, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)
	_, err = issuer.Verify(raw)
	assert.ErrorIs(t, err, domerrors.ErrInvalidAccessToken)
}

func TestVerifyWrongIssuer(t *testing.T) {
	t.Parallel()
	foreign := NewTokenIssuer(testSecret, "otro-sistema", time.Hour)
	tok, err := foreign.Issue(testAccount())
	require.NoError(t, err)

	// Same secret, different iss claim: must not verify.
	issuer := NewTokenIssuer(testSecret, "seguros", time.Hour)
	_, err = issuer.Verify(tok)
	assert.ErrorIs(t, err, domerrors.ErrInvalidAccessToken)
}

func TestIssueUsesInjectedClock(t *testing.T) {
	t.Parallel()
	acc := testAccount()
	base := time.Now()
	issuer := NewTokenIssuer(testSecret, "seguros", time.Hour).WithClock(func() time.Time { return base })

	first, err := issuer.Issue(acc)
	require.NoError(t, err)
	second, err := issuer.Issue(acc)
	require.NoError(t, err)
	assert.Equal(t, first, second, "a frozen clock yields identical tokens")

	issuer.WithClock(func() time.Time { return base.Add(2 * time.Second) })
	later, err := issuer.Issue(acc)
	require.NoError(t, err)
	assert.NotEqual(t, first, later, "a later iat yields a different token")
}

func TestVerifyRejectsUnknownRole(t *testing.T) {
	t.Parallel()
	issuer := NewTokenIssuer(testSecret, "seguros", time.Hour)
	acc := testAccount()
	acc.Role = domain.Role("superuser")

	tok, err := issuer.Issue(acc)
	require.NoError(t, err)
	_, err = issuer.Verify(tok)
	assert.ErrorIs(t, err, domerrors.ErrInvalidAccessToken)
}
