package repository

import (
	"context"
	"errors"

	"org-access-control/internal/invitation/domain"
	membershipdomain "org-access-control/internal/membership/domain"
)

var (
	// ErrDuplicatePendingInvitation is returned when (email, org) already has a pending invitation.
	ErrDuplicatePendingInvitation = errors.New("pending invitation already exists")
	// ErrInvitationNotFound is returned by Accept when the invitation row does not exist.
	ErrInvitationNotFound = errors.New("invitation not found")
)

// Repository defines persistence for invitations.
type Repository interface {
	GetByID(ctx context.Context, id string) (*domain.Invitation, error)
	GetPendingByEmailAndOrg(ctx context.Context, email, orgID string) (*domain.Invitation, error)
	Create(ctx context.Context, inv *domain.Invitation) error
	ListByOrg(ctx context.Context, orgID string) ([]*domain.Detail, error)
	ListPendingByEmail(ctx context.Context, email string) ([]*domain.Detail, error)
	// Accept closes out the invitation for candidate.UserID in one transaction: unless the
	// invitation was already accepted, it creates the membership (at the invitation's role and org)
	// when the user has none, then marks the invitation accepted. candidate supplies ID, UserID and
	// timestamps; Role and OrgID are taken from the invitation row.
	Accept(ctx context.Context, invitationID string, candidate *membershipdomain.Membership) (*domain.AcceptOutcome, error)
}
