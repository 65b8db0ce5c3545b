package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/ufernand853/seguros-main-sub000/internal/application/ports"
	"github.com/ufernand853/seguros-main-sub000/internal/domain"
	domerrors "github.com/ufernand853/seguros-main-sub000/internal/domain/errors"
)

// InsurerRepository implements ports.InsurerRepository.
type InsurerRepository struct{ db *DB }

func NewInsurerRepository(db *DB) *InsurerRepository { return &InsurerRepository{db: db} }

const insurerColumns = `id, name, contact_name, contact_email, phone, created_at, updated_at`

func (r *InsurerRepository) Create(ctx context.Context, i *domain.Insurer) error {
	const q = `
INSERT INTO insurers (id, name, contact_name, contact_email, phone, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.db.Pool.Exec(ctx, q, i.ID, i.Name, i.ContactName, i.ContactEmail, i.Phone, i.CreatedAt, i.UpdatedAt)
	return classify(err)
}

func (r *InsurerRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Insurer, error) {
	const q = `SELECT ` + insurerColumns + ` FROM insurers WHERE id = $1`
	var i domain.Insurer
	err := r.db.Pool.QueryRow(ctx, q, id).
		Scan(&i.ID, &i.Name, &i.ContactName, &i.ContactEmail, &i.Phone, &i.CreatedAt, &i.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domerrors.ErrNotFound
		}
		return nil, classify(err)
	}
	return &i, nil
}

func (r *InsurerRepository) List(ctx context.Context, limit, offset int) ([]*domain.Insurer, error) {
	const q = `SELECT ` + insurerColumns + ` FROM insurers ORDER BY name LIMIT $1 OFFSET $2`
	rows, err := r.db.Pool.Query(ctx, q, limit, offset)
	if err != nil {
		return nil, classify(err)
	}
	defer rows.Close()
	var list []*domain.Insurer
	for rows.Next() {
		var i domain.Insurer
		if err := rows.Scan(&i.ID, &i.Name, &i.ContactName, &i.ContactEmail, &i.Phone, &i.CreatedAt, &i.UpdatedAt); err != nil {
			return nil, classify(err)
		}
		list = append(list, &i)
	}
	return list, classify(rows.Err())
}

func (r *InsurerRepository) Update(ctx context.Context, i *domain.Insurer) error {
	const q = `
UPDATE insurers SET name = $2, contact_name = $3, contact_email = $4, phone = $5, updated_at = NOW()
WHERE id = $1`
	tag, err := r.db.Pool.Exec(ctx, q, i.ID, i.Name, i.ContactName, i.ContactEmail, i.Phone)
	if err != nil {
		return classify(err)
	}
	if tag.RowsAffected() == 0 {
		return domerrors.ErrNotFound
	}
	return nil
}

func (r *InsurerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Pool.Exec(ctx, `DELETE FROM insurers WHERE id = $1`, id)
	if err != nil {
		return classify(err)
	}
	if tag.RowsAffected() == 0 {
		return domerrors.ErrNotFound
	}
	return nil
}

var _ ports.InsurerRepository = (*InsurerRepository)(nil)
