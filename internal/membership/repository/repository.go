package repository

import (
	"context"
	"errors"

	"org-access-control/internal/membership/domain"
)

// ErrDuplicateMembership is returned when the (user, org) pair already has a membership.
var ErrDuplicateMembership = errors.New("membership already exists")

// Repository defines persistence for memberships.
type Repository interface {
	GetMembershipByUserAndOrg(ctx context.Context, userID, orgID string) (*domain.Membership, error)
	ListMembersByOrg(ctx context.Context, orgID string) ([]*domain.Member, error)
}
