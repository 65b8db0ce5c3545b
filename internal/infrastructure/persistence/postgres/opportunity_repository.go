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

// OpportunityRepository implements ports.OpportunityRepository.
type OpportunityRepository struct{ db *DB }

func NewOpportunityRepository(db *DB) *OpportunityRepository { return &OpportunityRepository{db: db} }

const opportunitySelect = `
SELECT o.id, o.client_id, c.name, o.branch, o.stage, o.estimated_premium,
       o.currency, o.notes, o.owner_id, o.created_at, o.updated_at
FROM opportunities o
JOIN clients c ON c.id = o.client_id`

func (r *OpportunityRepository) Create(ctx context.Context, o *domain.Opportunity) error {
	const q = `
INSERT INTO opportunities (id, client_id, branch, stage, estimated_premium, currency, notes, owner_id, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.db.Pool.Exec(ctx, q,
		o.ID, o.ClientID, o.Branch, o.Stage, o.EstimatedPremium, o.Currency, o.Notes,
		o.OwnerID.UUID, o.CreatedAt, o.UpdatedAt)
	return classify(err)
}

func (r *OpportunityRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Opportunity, error) {
	o, err := scanOpportunity(r.db.Pool.QueryRow(ctx, opportunitySelect+` WHERE o.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domerrors.ErrNotFound
		}
		return nil, classify(err)
	}
	return o, nil
}

func (r *OpportunityRepository) List(ctx context.Context, stage *domain.Stage, limit, offset int) ([]*domain.Opportunity, error) {
	const q = opportunitySelect + `
WHERE ($1::text IS NULL OR o.stage = $1)
ORDER BY o.updated_at DESC LIMIT $2 OFFSET $3`
	var stageArg *string
	if stage != nil {
		s := string(*stage)
		stageArg = &s
	}
	rows, err := r.db.Pool.Query(ctx, q, stageArg, limit, offset)
	if err != nil {
		return nil, classify(err)
	}
	defer rows.Close()
	var list []*domain.Opportunity
	for rows.Next() {
		o, err := scanOpportunity(rows)
		if err != nil {
			return nil, classify(err)
		}
		list = append(list, o)
	}
	return list, classify(rows.Err())
}

func scanOpportunity(row pgx.Row) (*domain.Opportunity, error) {
	var o domain.Opportunity
	var stage string
	err := row.Scan(&o.ID, &o.ClientID, &o.ClientName, &o.Branch, &stage, &o.EstimatedPremium,
		&o.Currency, &o.Notes, &o.OwnerID.UUID, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		return nil, err
	}
	parsed, err := domain.ParseStage(stage)
	if err != nil {
		return nil, err
	}
	o.Stage = parsed
	return &o, nil
}

func (r *OpportunityRepository) Update(ctx context.Context, o *domain.Opportunity) error {
	const q = `
UPDATE opportunities SET client_id = $2, branch = $3, stage = $4, estimated_premium = $5,
       currency = $6, notes = $7, owner_id = $8, updated_at = NOW()
WHERE id = $1`
	tag, err := r.db.Pool.Exec(ctx, q,
		o.ID, o.ClientID, o.Branch, o.Stage, o.EstimatedPremium, o.Currency, o.Notes, o.OwnerID.UUID)
	if err != nil {
		return classify(err)
	}
	if tag.RowsAffected() == 0 {
		return domerrors.ErrNotFound
	}
	return nil
}

func (r *OpportunityRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Pool.Exec(ctx, `DELETE FROM opportunities WHERE id = $1`, id)
	if err != nil {
		return classify(err)
	}
	if tag.RowsAffected() == 0 {
		return domerrors.ErrNotFound
	}
	return nil
}

var _ ports.OpportunityRepository = (*OpportunityRepository)(nil)
