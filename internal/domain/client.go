package domain

import (
	"time"

	"github.com/google/uuid"
)

// Client is an insured person or company managed by the brokerage.
type Client struct {
	ID        uuid.UUID
	Name      string
	Document  string // tax/national id, free-form
	Email     string
	Phone     string
	Address   string
	Notes     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Insurer is an insurance company the brokerage places policies with.
type Insurer struct {
	ID           uuid.UUID
	Name         string
	ContactName  string
	ContactEmail string
	Phone        string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
