package domain

import (
	"fmt"
	"strings"
	"time"
)

// Membership links a user to an organization with a role. At most one exists per (UserID, OrgID).
type Membership struct {
	ID        string
	UserID    string
	OrgID     string
	Role      Role
	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsAdmin reports whether the membership grants admin rights.
func (m *Membership) IsAdmin() bool {
	return m != nil && m.Role == RoleAdmin
}

// Member is a membership joined with the member's display details from the identity provider.
type Member struct {
	Membership
	UserName  string
	UserEmail string
}

// Role is the closed set of roles a member can hold in an organization.
type Role string

const (
	RoleAdmin  Role = "ADMIN"
	RoleMember Role = "MEMBER"
)

// Valid reports whether r is one of the defined roles.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleMember:
		return true
	}
	return false
}

// ParseRole parses s case-insensitively. An empty string yields RoleMember.
func ParseRole(s string) (Role, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return RoleMember, nil
	}
	r := Role(strings.ToUpper(s))
	if !r.Valid() {
		return "", fmt.Errorf("unknown role %q", s)
	}
	return r, nil
}
