package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Stage is the sales pipeline stage of an opportunity.
type Stage string

const (
	StageProspect    Stage = "prospect"
	StageQuoted      Stage = "quoted"
	StageNegotiating Stage = "negotiating"
	StageWon         Stage = "won"
	StageLost        Stage = "lost"
)

// ParseStage validates a pipeline stage string.
func ParseStage(s string) (Stage, error) {
	switch Stage(s) {
	case StageProspect, StageQuoted, StageNegotiating, StageWon, StageLost:
		return Stage(s), nil
	}
	return "", fmt.Errorf("unknown pipeline stage %q", s)
}

// Opportunity is a potential sale tracked through the pipeline.
type Opportunity struct {
	ID               uuid.UUID
	ClientID         uuid.UUID
	ClientName       string // denormalized for list views
	Branch           string
	Stage            Stage
	EstimatedPremium float64
	Currency         string
	Notes            string
	OwnerID          AccountID
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// Task is a follow-up item assigned to an account, optionally linked to
// a client.
type Task struct {
	ID          uuid.UUID
	Title       string
	Description string
	ClientID    *uuid.UUID
	AssigneeID  AccountID
	DueAt       time.Time
	Done        bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
