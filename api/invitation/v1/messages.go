// Package invitationv1 is the wire contract of orgaccess.invitation.v1.InvitationService, the
// invitee's side of the invitation flow.
package invitationv1

import organizationv1 "org-access-control/api/organization/v1"

type AcceptInvitationRequest struct {
	InvitationID string `json:"invitation_id"`
}

type AcceptInvitationResponse struct {
	// Membership is the membership created by this call; absent when the caller was already a member.
	Membership    *organizationv1.Membership   `json:"membership,omitempty"`
	Organization  *organizationv1.Organization `json:"organization"`
	AlreadyMember bool                         `json:"already_member"`
	Message       string                       `json:"message"`
}

type GetPendingInvitationsRequest struct{}

type GetPendingInvitationsResponse struct {
	Invitations []*organizationv1.Invitation `json:"invitations"`
}
