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

// PolicyRepository implements ports.PolicyRepository. Reads join client
// and insurer names so list views need no extra round trips.
type PolicyRepository struct{ db *DB }

func NewPolicyRepository(db *DB) *PolicyRepository { return &PolicyRepository{db: db} }

const policySelect = `
SELECT p.id, p.number, p.client_id, c.name, p.insurer_id, i.name,
       p.branch, p.premium, p.currency, p.status, p.starts_at, p.expires_at,
       p.created_at, p.updated_at
FROM policies p
JOIN clients c ON c.id = p.client_id
JOIN insurers i ON i.id = p.insurer_id`

func (r *PolicyRepository) Create(ctx context.Context, p *domain.Policy) error {
	const q = `
INSERT INTO policies (id, number, client_id, insurer_id, branch, premium, currency, status, starts_at, expires_at, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.db.Pool.Exec(ctx, q,
		p.ID, p.Number, p.ClientID, p.InsurerID, p.Branch, p.Premium, p.Currency,
		p.Status, p.StartsAt, p.ExpiresAt, p.CreatedAt, p.UpdatedAt)
	return classify(err)
}

func (r *PolicyRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Policy, error) {
	row := r.db.Pool.QueryRow(ctx, policySelect+` WHERE p.id = $1`, id)
	p, err := scanPolicy(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domerrors.ErrNotFound
		}
		return nil, classify(err)
	}
	return p, nil
}

func (r *PolicyRepository) List(ctx context.Context, clientID *uuid.UUID, limit, offset int) ([]*domain.Policy, error) {
	const q = policySelect + `
WHERE ($1::uuid IS NULL OR p.client_id = $1)
ORDER BY p.expires_at LIMIT $2 OFFSET $3`
	rows, err := r.db.Pool.Query(ctx, q, clientID, limit, offset)
	if err != nil {
		return nil, classify(err)
	}
	defer rows.Close()
	var list []*domain.Policy
	for rows.Next() {
		p, err := scanPolicy(rows)
		if err != nil {
			return nil, classify(err)
		}
		list = append(list, p)
	}
	return list, classify(rows.Err())
}

func scanPolicy(row pgx.Row) (*domain.Policy, error) {
	var p domain.Policy
	var status string
	err := row.Scan(&p.ID, &p.Number, &p.ClientID, &p.ClientName, &p.InsurerID, &p.InsurerName,
		&p.Branch, &p.Premium, &p.Currency, &status, &p.StartsAt, &p.ExpiresAt, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	parsed, err := domain.ParsePolicyStatus(status)
	if err != nil {
		return nil, err
	}
	p.Status = parsed
	return &p, nil
}

func (r *PolicyRepository) Update(ctx context.Context, p *domain.Policy) error {
	const q = `
UPDATE policies SET number = $2, client_id = $3, insurer_id = $4, branch = $5,
       premium = $6, currency = $7, status = $8, starts_at = $9, expires_at = $10, updated_at = NOW()
WHERE id = $1`
	tag, err := r.db.Pool.Exec(ctx, q,
		p.ID, p.Number, p.ClientID, p.InsurerID, p.Branch, p.Premium, p.Currency,
		p.Status, p.StartsAt, p.ExpiresAt)
	if err != nil {
		return classify(err)
	}
	if tag.RowsAffected() == 0 {
		return domerrors.ErrNotFound
	}
	return nil
}

func (r *PolicyRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Pool.Exec(ctx, `DELETE FROM policies WHERE id = $1`, id)
	if err != nil {
		return classify(err)
	}
	if tag.RowsAffected() == 0 {
		return domerrors.ErrNotFound
	}
	return nil
}

// ExpiringWithin lists active policies whose expiry falls inside the next
// `days` days, soonest first.
func (r *PolicyRepository) ExpiringWithin(ctx context.Context, days int) ([]*domain.Renewal, error) {
	const q = `
SELECT p.id, p.number, c.name, i.name, p.branch, p.premium, p.currency, p.expires_at,
       GREATEST(0, (p.expires_at::date - NOW()::date)) AS days_left
FROM policies p
JOIN clients c ON c.id = p.client_id
JOIN insurers i ON i.id = p.insurer_id
WHERE p.status = 'active' AND p.expires_at <= NOW() + ($1 || ' days')::interval
ORDER BY p.expires_at`
	rows, err := r.db.Pool.Query(ctx, q, days)
	if err != nil {
		return nil, classify(err)
	}
	defer rows.Close()
	var list []*domain.Renewal
	for rows.Next() {
		var ren domain.Renewal
		if err := rows.Scan(&ren.PolicyID, &ren.Number, &ren.ClientName, &ren.InsurerName,
			&ren.Branch, &ren.Premium, &ren.Currency, &ren.ExpiresAt, &ren.DaysLeft); err != nil {
			return nil, classify(err)
		}
		list = append(list, &ren)
	}
	return list, classify(rows.Err())
}

var _ ports.PolicyRepository = (*PolicyRepository)(nil)
