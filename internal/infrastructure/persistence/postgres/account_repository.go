package postgres

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/ufernand853/seguros-main-sub000/internal/application/ports"
	"github.com/ufernand853/seguros-main-sub000/internal/domain"
	domerrors "github.com/ufernand853/seguros-main-sub000/internal/domain/errors"
)

// AccountRepository implements ports.AccountRepository (the credential store).
type AccountRepository struct{ db *DB }

func NewAccountRepository(db *DB) *AccountRepository { return &AccountRepository{db: db} }

func (r *AccountRepository) Create(ctx context.Context, a *domain.Account) error {
	const q = `
INSERT INTO accounts (id, email, name, password_hash, role, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.db.Pool.Exec(ctx, q,
		a.ID.UUID, strings.ToLower(a.Email), a.Name, a.PasswordHash, a.Role.String(), a.CreatedAt, a.UpdatedAt)
	if isUniqueViolation(err) {
		return domerrors.ErrEmailTaken
	}
	return classify(err)
}

// GetByEmail looks up case-insensitively: emails are stored lowercased
// and the argument is lowercased here as well.
func (r *AccountRepository) GetByEmail(ctx context.Context, email string) (*domain.Account, error) {
	const q = `
SELECT id, email, name, password_hash, role, created_at, updated_at
FROM accounts WHERE email = $1`
	return r.scanOne(r.db.Pool.QueryRow(ctx, q, strings.ToLower(email)))
}

func (r *AccountRepository) GetByID(ctx context.Context, id domain.AccountID) (*domain.Account, error) {
	const q = `
SELECT id, email, name, password_hash, role, created_at, updated_at
FROM accounts WHERE id = $1`
	return r.scanOne(r.db.Pool.QueryRow(ctx, q, id.UUID))
}

func (r *AccountRepository) scanOne(row pgx.Row) (*domain.Account, error) {
	var a domain.Account
	var role string
	err := row.Scan(&a.ID.UUID, &a.Email, &a.Name, &a.PasswordHash, &role, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, classify(err)
	}
	parsed, err := domain.ParseRole(role)
	if err != nil {
		return nil, err
	}
	a.Role = parsed
	return &a, nil
}

func (r *AccountRepository) List(ctx context.Context, limit, offset int) ([]*domain.Account, error) {
	const q = `
SELECT id, email, name, password_hash, role, created_at, updated_at
FROM accounts ORDER BY email LIMIT $1 OFFSET $2`
	rows, err := r.db.Pool.Query(ctx, q, limit, offset)
	if err != nil {
		return nil, classify(err)
	}
	defer rows.Close()
	var list []*domain.Account
	for rows.Next() {
		var a domain.Account
		var role string
		if err := rows.Scan(&a.ID.UUID, &a.Email, &a.Name, &a.PasswordHash, &role, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, classify(err)
		}
		parsed, err := domain.ParseRole(role)
		if err != nil {
			return nil, err
		}
		a.Role = parsed
		list = append(list, &a)
	}
	return list, classify(rows.Err())
}

func (r *AccountRepository) UpdatePassword(ctx context.Context, id domain.AccountID, passwordHash string) error {
	const q = `UPDATE accounts SET password_hash = $2, updated_at = NOW() WHERE id = $1`
	tag, err := r.db.Pool.Exec(ctx, q, id.UUID, passwordHash)
	if err != nil {
		return classify(err)
	}
	if tag.RowsAffected() == 0 {
		return domerrors.ErrNotFound
	}
	return nil
}

var _ ports.AccountRepository = (*AccountRepository)(nil)
