package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	pgxmock "github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/require"

	"github.com/ufernand853/seguros-main-sub000/internal/domain"
	domerrors "github.com/ufernand853/seguros-main-sub000/internal/domain/errors"
)

func newDB(t *testing.T) (*DB, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	return &DB{Pool: mock}, mock
}

func accountColumns() []string {
	return []string{"id", "email", "name", "password_hash", "role", "created_at", "updated_at"}
}

func TestAccountRepository_Create_OK_and_DuplicateEmail(t *testing.T) {
	db, mock := newDB(t)
	defer mock.Close()
	r := NewAccountRepository(db)
	ctx := context.Background()

	now := time.Now()
	a := &domain.Account{
		ID:           domain.NewAccountID(uuid.New()),
		Email:        "Demo@Seguros.Test",
		Name:         "Demo",
		PasswordHash: "aa:bb",
		Role:         domain.RoleAdmin,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	mock.ExpectExec(`INSERT INTO accounts`).
		WithArgs(a.ID.UUID, "demo@seguros.test", a.Name, a.PasswordHash, "admin", now, now).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	require.NoError(t, r.Create(ctx, a))

	mock.ExpectExec(`INSERT INTO accounts`).
		WithArgs(a.ID.UUID, "demo@seguros.test", a.Name, a.PasswordHash, "admin", now, now).
		WillReturnError(&pgconn.PgError{Code: "23505"})
	require.ErrorIs(t, r.Create(ctx, a), domerrors.ErrEmailTaken)
}

func TestAccountRepository_GetByEmail_LowercasesLookup(t *testing.T) {
	db, mock := newDB(t)
	defer mock.Close()
	r := NewAccountRepository(db)
	ctx := context.Background()
	id := uuid.New()
	now := time.Now()

	mock.ExpectQuery(`SELECT id, email, name, password_hash, role, created_at, updated_at\s+FROM accounts WHERE email = \$1`).
		WithArgs("demo@seguros.test").
		WillReturnRows(pgxmock.NewRows(accountColumns()).
			AddRow(id, "demo@seguros.test", "Demo", "aa:bb", "operator", now, now))

	a, err := r.GetByEmail(ctx, "DEMO@Seguros.TEST")
	require.NoError(t, err)
	require.Equal(t, id, a.ID.UUID)
	require.Equal(t, domain.RoleOperator, a.Role)
}

func TestAccountRepository_GetByEmail_AbsentIsNilNil(t *testing.T) {
	db, mock := newDB(t)
	defer mock.Close()
	r := NewAccountRepository(db)

	mock.ExpectQuery(`FROM accounts WHERE email = \$1`).
		WithArgs("nobody@seguros.test").
		WillReturnError(pgx.ErrNoRows)

	a, err := r.GetByEmail(context.Background(), "nobody@seguros.test")
	require.NoError(t, err)
	require.Nil(t, a)
}

func TestAccountRepository_UpdatePassword_NotFound(t *testing.T) {
	db, mock := newDB(t)
	defer mock.Close()
	r := NewAccountRepository(db)
	id := domain.NewAccountID(uuid.New())

	mock.ExpectExec(`UPDATE accounts SET password_hash = \$2`).
		WithArgs(id.UUID, "cc:dd").
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	require.ErrorIs(t, r.UpdatePassword(context.Background(), id, "cc:dd"), domerrors.ErrNotFound)
}
