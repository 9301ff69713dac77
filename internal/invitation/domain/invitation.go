package domain

import (
	"time"

	membershipdomain "org-access-control/internal/membership/domain"
	orgdomain "org-access-control/internal/organization/domain"
)

// Invitation is an offer for whoever owns Email to join OrgID at Role.
// It moves once from pending to accepted and never back.
type Invitation struct {
	ID              string
	Email           string // normalized (trimmed, lower-case)
	Role            membershipdomain.Role
	OrgID           string
	InvitedByUserID string
	Accepted        bool
	AcceptedAt      *time.Time
	CreatedAt       time.Time
}

// State is the invitation lifecycle state.
type State string

const (
	StatePending  State = "pending"
	StateAccepted State = "accepted"
)

// State returns the lifecycle state derived from the accepted flag.
func (i *Invitation) State() State {
	if i.Accepted {
		return StateAccepted
	}
	return StatePending
}

// IsPending reports whether the invitation is still open.
func (i *Invitation) IsPending() bool {
	return i != nil && !i.Accepted
}

// Detail is an invitation joined with the inviter's display details and, when loaded, its organization.
type Detail struct {
	Invitation
	InvitedByName  string
	InvitedByEmail string
	Org            *orgdomain.Org
}

// AcceptOutcome is what the store reports after closing out an invitation for a user.
type AcceptOutcome struct {
	// Membership is the membership created by this acceptance; nil when the user was already a member
	// or the invitation had already been accepted.
	Membership *membershipdomain.Membership
	AcceptedAt time.Time
}
