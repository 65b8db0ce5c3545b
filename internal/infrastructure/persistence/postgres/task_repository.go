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

// TaskRepository implements ports.TaskRepository.
type TaskRepository struct{ db *DB }

func NewTaskRepository(db *DB) *TaskRepository { return &TaskRepository{db: db} }

const taskColumns = `id, title, description, client_id, assignee_id, due_at, done, created_at, updated_at`

func (r *TaskRepository) Create(ctx context.Context, t *domain.Task) error {
	const q = `
INSERT INTO tasks (id, title, description, client_id, assignee_id, due_at, done, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.db.Pool.Exec(ctx, q,
		t.ID, t.Title, t.Description, t.ClientID, t.AssigneeID.UUID, t.DueAt, t.Done, t.CreatedAt, t.UpdatedAt)
	return classify(err)
}

func (r *TaskRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Task, error) {
	const q = `SELECT ` + taskColumns + ` FROM tasks WHERE id = $1`
	var t domain.Task
	err := r.db.Pool.QueryRow(ctx, q, id).
		Scan(&t.ID, &t.Title, &t.Description, &t.ClientID, &t.AssigneeID.UUID, &t.DueAt, &t.Done, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domerrors.ErrNotFound
		}
		return nil, classify(err)
	}
	return &t, nil
}

func (r *TaskRepository) List(ctx context.Context, assigneeID *domain.AccountID, pendingOnly bool, limit, offset int) ([]*domain.Task, error) {
	const q = `
SELECT ` + taskColumns + ` FROM tasks
WHERE ($1::uuid IS NULL OR assignee_id = $1) AND (NOT $2 OR NOT done)
ORDER BY due_at LIMIT $3 OFFSET $4`
	var assigneeArg *uuid.UUID
	if assigneeID != nil {
		assigneeArg = &assigneeID.UUID
	}
	rows, err := r.db.Pool.Query(ctx, q, assigneeArg, pendingOnly, limit, offset)
	if err != nil {
		return nil, classify(err)
	}
	defer rows.Close()
	var list []*domain.Task
	for rows.Next() {
		var t domain.Task
		if err := rows.Scan(&t.ID, &t.Title, &t.Description, &t.ClientID, &t.AssigneeID.UUID,
			&t.DueAt, &t.Done, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, classify(err)
		}
		list = append(list, &t)
	}
	return list, classify(rows.Err())
}

func (r *TaskRepository) Update(ctx context.Context, t *domain.Task) error {
	const q = `
UPDATE tasks SET title = $2, description = $3, client_id = $4, assignee_id = $5,
       due_at = $6, done = $7, updated_at = NOW()
WHERE id = $1`
	tag, err := r.db.Pool.Exec(ctx, q,
		t.ID, t.Title, t.Description, t.ClientID, t.AssigneeID.UUID, t.DueAt, t.Done)
	if err != nil {
		return classify(err)
	}
	if tag.RowsAffected() == 0 {
		return domerrors.ErrNotFound
	}
	return nil
}

func (r *TaskRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Pool.Exec(ctx, `DELETE FROM tasks WHERE id = $1`, id)
	if err != nil {
		return classify(err)
	}
	if tag.RowsAffected() == 0 {
		return domerrors.ErrNotFound
	}
	return nil
}

var _ ports.TaskRepository = (*TaskRepository)(nil)
