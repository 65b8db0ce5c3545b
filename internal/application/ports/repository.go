// Package ports defines the interfaces the application layer depends on;
// concrete implementations live under internal/infrastructure.
package ports

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/ufernand853/seguros-main-sub000/internal/domain"
)

// AccountRepository is the credential store: durable mapping from email
// to account profile and encoded password credential.
type AccountRepository interface {
	Create(ctx context.Context, account *domain.Account) error
	// GetByEmail looks up by lowercased email. Returns (nil, nil) when absent.
	GetByEmail(ctx context.Context, email string) (*domain.Account, error)
	// GetByID returns (nil, nil) when absent.
	GetByID(ctx context.Context, id domain.AccountID) (*domain.Account, error)
	List(ctx context.Context, limit, offset int) ([]*domain.Account, error)
	UpdatePassword(ctx context.Context, id domain.AccountID, passwordHash string) error
}

// RefreshTokenStore persists opaque refresh tokens. Expired rows are
// logically invalid even before they are physically purged.
type RefreshTokenStore interface {
	// Create generates an unguessable token bound to the account and
	// persists it with an absolute expiry.
	Create(ctx context.Context, accountID domain.AccountID) (token string, expiresAt time.Time, err error)
	// Validate resolves a token to its account id. Returns (nil, nil) for
	// absent or expired tokens; expired rows are deleted best-effort.
	Validate(ctx context.Context, token string) (*domain.AccountID, error)
	// Revoke deletes the token if present. Revoking an absent token is a no-op.
	Revoke(ctx context.Context, token string) error
}

// ClientRepository persists brokerage clients.
type ClientRepository interface {
	Create(ctx context.Context, c *domain.Client) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Client, error)
	List(ctx context.Context, search string, limit, offset int) ([]*domain.Client, error)
	Update(ctx context.Context, c *domain.Client) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// InsurerRepository persists insurance companies.
type InsurerRepository interface {
	Create(ctx context.Context, i *domain.Insurer) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Insurer, error)
	List(ctx context.Context, limit, offset int) ([]*domain.Insurer, error)
	Update(ctx context.Context, i *domain.Insurer) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// PolicyRepository persists policies; reads join client and insurer names.
type PolicyRepository interface {
	Create(ctx context.Context, p *domain.Policy) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Policy, error)
	List(ctx context.Context, clientID *uuid.UUID, limit, offset int) ([]*domain.Policy, error)
	Update(ctx context.Context, p *domain.Policy) error
	Delete(ctx context.Context, id uuid.UUID) error
	// ExpiringWithin lists active policies expiring in the next `days` days,
	// soonest first.
	ExpiringWithin(ctx context.Context, days int) ([]*domain.Renewal, error)
}

// OpportunityRepository persists pipeline opportunities.
type OpportunityRepository interface {
	Create(ctx context.Context, o *domain.Opportunity) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Opportunity, error)
	List(ctx context.Context, stage *domain.Stage, limit, offset int) ([]*domain.Opportunity, error)
	Update(ctx context.Context, o *domain.Opportunity) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// TaskRepository persists follow-up tasks.
type TaskRepository interface {
	Create(ctx context.Context, t *domain.Task) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Task, error)
	List(ctx context.Context, assigneeID *domain.AccountID, pendingOnly bool, limit, offset int) ([]*domain.Task, error)
	Update(ctx context.Context, t *domain.Task) error
	Delete(ctx context.Context, id uuid.UUID) error
}
