package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// PolicyStatus tracks where a policy stands in its lifecycle.
type PolicyStatus string

const (
	PolicyActive    PolicyStatus = "active"
	PolicyExpired   PolicyStatus = "expired"
	PolicyCancelled PolicyStatus = "cancelled"
)

// ParsePolicyStatus validates a stored policy status.
func ParsePolicyStatus(s string) (PolicyStatus, error) {
	switch PolicyStatus(s) {
	case PolicyActive, PolicyExpired, PolicyCancelled:
		return PolicyStatus(s), nil
	}
	return "", fmt.Errorf("unknown policy status %q", s)
}

// Policy is a placed insurance contract. ClientName and InsurerName are
// denormalized for list views and filled by joins; they are empty on writes.
type Policy struct {
	ID           uuid.UUID
	Number       string
	ClientID     uuid.UUID
	ClientName   string
	InsurerID    uuid.UUID
	InsurerName  string
	Branch       string // line of business: auto, hogar, vida...
	Premium      float64
	Currency     string
	Status       PolicyStatus
	StartsAt     time.Time
	ExpiresAt    time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Renewal is a read-only projection of a policy approaching expiry.
type Renewal struct {
	PolicyID    uuid.UUID
	Number      string
	ClientName  string
	InsurerName string
	Branch      string
	Premium     float64
	Currency    string
	ExpiresAt   time.Time
	DaysLeft    int
}
