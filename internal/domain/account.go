package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Role is the closed set of account roles carried in the access token.
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleOperator Role = "operator"
	RoleViewer   Role = "viewer"
)

// ParseRole converts a stored string into a Role, rejecting anything
// outside the closed set.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleAdmin, RoleOperator, RoleViewer:
		return Role(s), nil
	}
	return "", fmt.Errorf("unknown role %q", s)
}

// String returns the wire form of the role.
func (r Role) String() string { return string(r) }

// AccountID is a value object for account identity.
type AccountID struct{ uuid.UUID }

// NewAccountID creates an AccountID from a uuid.
func NewAccountID(id uuid.UUID) AccountID { return AccountID{UUID: id} }

// String returns the canonical string form.
func (a AccountID) String() string { return a.UUID.String() }

// Account is a back-office user that can sign in. PasswordHash is the
// encoded credential (salt:hash, hex) and must never be serialized to
// API responses.
type Account struct {
	ID           AccountID
	Email        string
	Name         string
	PasswordHash string
	Role         Role
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
