// Package organizationv1 is the wire contract of orgaccess.organization.v1.OrganizationService.
package organizationv1

import "time"

type Organization struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type Membership struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	OrgID     string    `json:"org_id"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Member is a membership with the member's display details.
type Member struct {
	Membership *Membership `json:"membership"`
	UserName   string      `json:"user_name,omitempty"`
	UserEmail  string      `json:"user_email,omitempty"`
}

// Invitation is shared with InvitationService. Organization is set on per-user listings.
type Invitation struct {
	ID              string        `json:"id"`
	Email           string        `json:"email"`
	Role            string        `json:"role"`
	OrgID           string        `json:"org_id"`
	InvitedByUserID string        `json:"invited_by_user_id"`
	InvitedByName   string        `json:"invited_by_name,omitempty"`
	InvitedByEmail  string        `json:"invited_by_email,omitempty"`
	Accepted        bool          `json:"accepted"`
	AcceptedAt      *time.Time    `json:"accepted_at,omitempty"`
	CreatedAt       time.Time     `json:"created_at"`
	Organization    *Organization `json:"organization,omitempty"`
}

type CreateOrganizationRequest struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

type CreateOrganizationResponse struct {
	Organization *Organization `json:"organization"`
	Membership   *Membership   `json:"membership"`
}

type GetOrganizationRequest struct {
	OrgID string `json:"org_id"`
}

type GetOrganizationResponse struct {
	Organization *Organization `json:"organization"`
}

type ListOrganizationsRequest struct{}

type ListOrganizationsResponse struct {
	Organizations []*Organization `json:"organizations"`
}

type UpdateOrganizationRequest struct {
	OrgID       string `json:"org_id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

type UpdateOrganizationResponse struct {
	Organization *Organization `json:"organization"`
}

type InviteUserRequest struct {
	OrgID string `json:"org_id"`
	Email string `json:"email"`
	// Role is ADMIN or MEMBER; empty means MEMBER.
	Role string `json:"role,omitempty"`
}

type InviteUserResponse struct {
	Invitation *Invitation `json:"invitation"`
}

type GetInvitationsRequest struct {
	OrgID string `json:"org_id"`
}

type GetInvitationsResponse struct {
	Invitations []*Invitation `json:"invitations"`
}

type GetMembersRequest struct {
	OrgID string `json:"org_id"`
}

type GetMembersResponse struct {
	Members []*Member `json:"members"`
}

type GetMembershipRequest struct {
	OrgID string `json:"org_id"`
}

type GetMembershipResponse struct {
	Membership *Membership `json:"membership"`
}
