package handler

import (
	organizationv1 "org-access-control/api/organization/v1"
	invitationdomain "org-access-control/internal/invitation/domain"
	membershipdomain "org-access-control/internal/membership/domain"
	"org-access-control/internal/organization/domain"
)

// ToOrganization converts a domain organization to its wire form. nil stays nil.
func ToOrganization(o *domain.Org) *organizationv1.Organization {
	if o == nil {
		return nil
	}
	return &organizationv1.Organization{
		ID:          o.ID,
		Name:        o.Name,
		Description: o.Description,
		CreatedAt:   o.CreatedAt,
		UpdatedAt:   o.UpdatedAt,
	}
}

// ToMembership converts a domain membership to its wire form. nil stays nil.
func ToMembership(m *membershipdomain.Membership) *organizationv1.Membership {
	if m == nil {
		return nil
	}
	return &organizationv1.Membership{
		ID:        m.ID,
		UserID:    m.UserID,
		OrgID:     m.OrgID,
		Role:      string(m.Role),
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// ToInvitation converts an invitation listing entry to its wire form. nil stays nil.
func ToInvitation(d *invitationdomain.Detail) *organizationv1.Invitation {
	if d == nil {
		return nil
	}
	out := ToInvitationRecord(&d.Invitation)
	out.InvitedByName = d.InvitedByName
	out.InvitedByEmail = d.InvitedByEmail
	out.Organization = ToOrganization(d.Org)
	return out
}

// ToInvitationRecord converts a bare invitation to its wire form. nil stays nil.
func ToInvitationRecord(i *invitationdomain.Invitation) *organizationv1.Invitation {
	if i == nil {
		return nil
	}
	return &organizationv1.Invitation{
		ID:              i.ID,
		Email:           i.Email,
		Role:            string(i.Role),
		OrgID:           i.OrgID,
		InvitedByUserID: i.InvitedByUserID,
		Accepted:        i.Accepted,
		AcceptedAt:      i.AcceptedAt,
		CreatedAt:       i.CreatedAt,
	}
}

// ToInvitations converts a listing, never returning nil so the JSON field is always an array.
func ToInvitations(list []*invitationdomain.Detail) []*organizationv1.Invitation {
	out := make([]*organizationv1.Invitation, 0, len(list))
	for _, d := range list {
		out = append(out, ToInvitation(d))
	}
	return out
}
