package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	pgxmock "github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/require"

	"github.com/ufernand853/seguros-main-sub000/internal/domain"
)

func TestRefreshTokenStore_Create(t *testing.T) {
	db, mock := newDB(t)
	defer mock.Close()
	s := NewRefreshTokenStore(db, 24*time.Hour)
	accountID := domain.NewAccountID(uuid.New())

	mock.ExpectExec(`INSERT INTO refresh_tokens`).
		WithArgs(pgxmock.AnyArg(), accountID.UUID, pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	token, expiresAt, err := s.Create(context.Background(), accountID)
	require.NoError(t, err)
	require.Len(t, token, 64, "32 random bytes hex-encoded")
	require.WithinDuration(t, time.Now().Add(24*time.Hour), expiresAt, 5*time.Second)
}

func TestRefreshTokenStore_Validate_Live(t *testing.T) {
	db, mock := newDB(t)
	defer mock.Close()
	s := NewRefreshTokenStore(db, 24*time.Hour)
	accountID := uuid.New()

	mock.ExpectQuery(`SELECT account_id, expires_at FROM refresh_tokens WHERE token = \$1`).
		WithArgs("tok").
		WillReturnRows(pgxmock.NewRows([]string{"account_id", "expires_at"}).
			AddRow(accountID, time.Now().Add(time.Hour)))

	got, err := s.Validate(context.Background(), "tok")
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, accountID, got.UUID)
}

func TestRefreshTokenStore_Validate_ExpiredDeletesRow(t *testing.T) {
	db, mock := newDB(t)
	defer mock.Close()
	s := NewRefreshTokenStore(db, 24*time.Hour)

	mock.ExpectQuery(`SELECT account_id, expires_at FROM refresh_tokens WHERE token = \$1`).
		WithArgs("stale").
		WillReturnRows(pgxmock.NewRows([]string{"account_id", "expires_at"}).
			AddRow(uuid.New(), time.Now().Add(-time.Minute)))
	mock.ExpectExec(`DELETE FROM refresh_tokens WHERE token = \$1`).
		WithArgs("stale").
		WillReturnResult(pgxmock.NewResult("DELETE", 1))

	got, err := s.Validate(context.Background(), "stale")
	require.NoError(t, err)
	require.Nil(t, got)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRefreshTokenStore_Validate_ExpiredSurvivesDeleteRace(t *testing.T) {
	db, mock := newDB(t)
	defer mock.Close()
	s := NewRefreshTokenStore(db, 24*time.Hour)

	// A concurrent Validate already deleted the row; ours must still
	// report invalid, not fail.
	mock.ExpectQuery(`SELECT account_id, expires_at FROM refresh_tokens WHERE token = \$1`).
		WithArgs("stale").
		WillReturnRows(pgxmock.NewRows([]string{"account_id", "expires_at"}).
			AddRow(uuid.New(), time.Now().Add(-time.Minute)))
	mock.ExpectExec(`DELETE FROM refresh_tokens WHERE token = \$1`).
		WithArgs("stale").
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	got, err := s.Validate(context.Background(), "stale")
	require.NoError(t, err)
	require.Nil(t, got)
}

func TestRefreshTokenStore_Validate_Absent(t *testing.T) {
	db, mock := newDB(t)
	defer mock.Close()
	s := NewRefreshTokenStore(db, 24*time.Hour)

	mock.ExpectQuery(`SELECT account_id, expires_at FROM refresh_tokens WHERE token = \$1`).
		WithArgs("missing").
		WillReturnError(pgx.ErrNoRows)

	got, err := s.Validate(context.Background(), "missing")
	require.NoError(t, err)
	require.Nil(t, got)
}

func TestRefreshTokenStore_Revoke_Idempotent(t *testing.T) {
	db, mock := newDB(t)
	defer mock.Close()
	s := NewRefreshTokenStore(db, 24*time.Hour)

	mock.ExpectExec(`DELETE FROM refresh_tokens WHERE token = \$1`).
		WithArgs("tok").
		WillReturnResult(pgxmock.NewResult("DELETE", 1))
	require.NoError(t, s.Revoke(context.Background(), "tok"))

	mock.ExpectExec(`DELETE FROM refresh_tokens WHERE token = \$1`).
		WithArgs("tok").
		WillReturnResult(pgxmock.NewResult("DELETE", 0))
	require.NoError(t, s.Revoke(context.Background(), "tok"), "second revoke is a no-op")
}
