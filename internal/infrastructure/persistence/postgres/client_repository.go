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

// ClientRepository implements ports.ClientRepository.
type ClientRepository struct{ db *DB }

func NewClientRepository(db *DB) *ClientRepository { return &ClientRepository{db: db} }

const clientColumns = `id, name, document, email, phone, address, notes, created_at, updated_at`

func (r *ClientRepository) Create(ctx context.Context, c *domain.Client) error {
	const q = `
INSERT INTO clients (id, name, document, email, phone, address, notes, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.db.Pool.Exec(ctx, q, c.ID, c.Name, c.Document, c.Email, c.Phone, c.Address, c.Notes, c.CreatedAt, c.UpdatedAt)
	return classify(err)
}

func (r *ClientRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Client, error) {
	const q = `SELECT ` + clientColumns + ` FROM clients WHERE id = $1`
	var c domain.Client
	err := r.db.Pool.QueryRow(ctx, q, id).
		Scan(&c.ID, &c.Name, &c.Document, &c.Email, &c.Phone, &c.Address, &c.Notes, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domerrors.ErrNotFound
		}
		return nil, classify(err)
	}
	return &c, nil
}

// List filters by name or document substring when search is non-empty.
func (r *ClientRepository) List(ctx context.Context, search string, limit, offset int) ([]*domain.Client, error) {
	const q = `
SELECT ` + clientColumns + ` FROM clients
WHERE ($1 = '' OR name ILIKE '%' || $1 || '%' OR document ILIKE '%' || $1 || '%')
ORDER BY name LIMIT $2 OFFSET $3`
	rows, err := r.db.Pool.Query(ctx, q, search, limit, offset)
	if err != nil {
		return nil, classify(err)
	}
	defer rows.Close()
	var list []*domain.Client
	for rows.Next() {
		var c domain.Client
		if err := rows.Scan(&c.ID, &c.Name, &c.Document, &c.Email, &c.Phone, &c.Address, &c.Notes, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, classify(err)
		}
		list = append(list, &c)
	}
	return list, classify(rows.Err())
}

func (r *ClientRepository) Update(ctx context.Context, c *domain.Client) error {
	const q = `
UPDATE clients SET name = $2, document = $3, email = $4, phone = $5, address = $6, notes = $7, updated_at = NOW()
WHERE id = $1`
	tag, err := r.db.Pool.Exec(ctx, q, c.ID, c.Name, c.Document, c.Email, c.Phone, c.Address, c.Notes)
	if err != nil {
		return classify(err)
	}
	if tag.RowsAffected() == 0 {
		return domerrors.ErrNotFound
	}
	return nil
}

func (r *ClientRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Pool.Exec(ctx, `DELETE FROM clients WHERE id = $1`, id)
	if err != nil {
		return classify(err)
	}
	if tag.RowsAffected() == 0 {
		return domerrors.ErrNotFound
	}
	return nil
}

var _ ports.ClientRepository = (*ClientRepository)(nil)
