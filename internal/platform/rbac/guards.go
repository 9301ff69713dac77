// Package rbac holds the two authorization guards every organization-scoped operation goes through.
// Guards read current committed membership data on every call; nothing is cached.
package rbac

import (
	"context"
	"fmt"

	"org-access-control/internal/membership/domain"
	"org-access-control/internal/platform/apperrors"
)

const (
	MsgNotMember   = "not a member"
	MsgMustBeAdmin = "must be admin"
)

// OrgMembershipGetter returns a user's membership in an org, or nil when there is none.
type OrgMembershipGetter interface {
	GetMembershipByUserAndOrg(ctx context.Context, userID, orgID string) (*domain.Membership, error)
}

// RequireMembership returns userID's membership in orgID. It fails with Forbidden("not a member")
// when there is none; store failures are returned wrapped and are not Forbidden.
func RequireMembership(ctx context.Context, getter OrgMembershipGetter, userID, orgID string) (*domain.Membership, error) {
	if userID == "" || orgID == "" {
		return nil, apperrors.Forbidden(MsgNotMember)
	}
	m, err := getter.GetMembershipByUserAndOrg(ctx, userID, orgID)
	if err != nil {
		return nil, fmt.Errorf("resolve membership: %w", err)
	}
	if m == nil {
		return nil, apperrors.Forbidden(MsgNotMember)
	}
	return m, nil
}

// RequireAdmin is RequireMembership plus Forbidden("must be admin") when the role is not ADMIN.
// RequireMembership failures propagate unchanged.
func RequireAdmin(ctx context.Context, getter OrgMembershipGetter, userID, orgID string) (*domain.Membership, error) {
	m, err := RequireMembership(ctx, getter, userID, orgID)
	if err != nil {
		return nil, err
	}
	if !m.IsAdmin() {
		return nil, apperrors.Forbidden(MsgMustBeAdmin)
	}
	return m, nil
}
