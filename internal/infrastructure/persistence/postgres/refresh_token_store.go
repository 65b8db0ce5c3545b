package postgres

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/ufernand853/seguros-main-sub000/internal/application/ports"
	"github.com/ufernand853/seguros-main-sub000/internal/domain"
)

// refreshTokenBytes gives 256 bits of entropy; the hex form is the
// primary key of the refresh_tokens table.
const refreshTokenBytes = 32

// RefreshTokenStore implements ports.RefreshTokenStore with lazy expiry:
// expired rows are invalid at read time and deleted opportunistically.
type RefreshTokenStore struct {
	db  *DB
	ttl time.Duration
	now func() time.Time
}

func NewRefreshTokenStore(db *DB, ttl time.Duration) *RefreshTokenStore {
	return &RefreshTokenStore{db: db, ttl: ttl, now: time.Now}
}

func (s *RefreshTokenStore) Create(ctx context.Context, accountID domain.AccountID) (string, time.Time, error) {
	raw := make([]byte, refreshTokenBytes)
	if _, err := rand.Read(raw); err != nil {
		return "", time.Time{}, err
	}
	token := hex.EncodeToString(raw)
	expiresAt := s.now().Add(s.ttl)
	const q = `
INSERT INTO refresh_tokens (token, account_id, expires_at, created_at)
VALUES ($1, $2, $3, $4)`
	if _, err := s.db.Pool.Exec(ctx, q, token, accountID.UUID, expiresAt, s.now()); err != nil {
		return "", time.Time{}, classify(err)
	}
	return token, expiresAt, nil
}

// Validate resolves a token to its account id, or (nil, nil) when the
// token is absent or expired. The delete of an expired row is best-effort
// cleanup: a concurrent Validate losing the race still returns nil.
func (s *RefreshTokenStore) Validate(ctx context.Context, token string) (*domain.AccountID, error) {
	const q = `SELECT account_id, expires_at FROM refresh_tokens WHERE token = $1`
	var accountID domain.AccountID
	var expiresAt time.Time
	err := s.db.Pool.QueryRow(ctx, q, token).Scan(&accountID.UUID, &expiresAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, classify(err)
	}
	if s.now().After(expiresAt) {
		_ = s.Revoke(ctx, token)
		return nil, nil
	}
	return &accountID, nil
}

// Revoke deletes the row if present; revoking an absent token is not an error.
func (s *RefreshTokenStore) Revoke(ctx context.Context, token string) error {
	const q = `DELETE FROM refresh_tokens WHERE token = $1`
	_, err := s.db.Pool.Exec(ctx, q, token)
	return classify(err)
}

var _ ports.RefreshTokenStore = (*RefreshTokenStore)(nil)
