package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"org-access-control/internal/identity"
	"org-access-control/internal/logger"
	membershipdomain "org-access-control/internal/membership/domain"
	"org-access-control/internal/organization/domain"
	"org-access-control/internal/platform/apperrors"
	"org-access-control/internal/platform/rbac"
	"org-access-control/internal/telemetry"
)

// MsgOrganizationNotFound is the NotFound message for a missing organization.
const MsgOrganizationNotFound = "organization not found"

// OrgRepo is the organization persistence the service needs.
type OrgRepo interface {
	GetOrganizationByID(ctx context.Context, id string) (*domain.Org, error)
	ListOrganizationsByUser(ctx context.Context, userID string) ([]*domain.Org, error)
	CreateOrganizationWithAdmin(ctx context.Context, o *domain.Org, admin *membershipdomain.Membership) error
	UpdateOrganization(ctx context.Context, o *domain.Org) (*domain.Org, error)
}

// MembershipRepo is the membership persistence the service needs.
type MembershipRepo interface {
	rbac.OrgMembershipGetter
	ListMembersByOrg(ctx context.Context, orgID string) ([]*membershipdomain.Member, error)
}

// CreateResult is a new organization with its founding admin membership.
type CreateResult struct {
	Organization *domain.Org
	Membership   *membershipdomain.Membership
}

// OrganizationService implements the organization lifecycle and membership queries.
type OrganizationService struct {
	orgs        OrgRepo
	memberships MembershipRepo
	metrics     telemetry.Recorder
}

// NewOrganizationService returns an OrganizationService. A nil metrics records nothing.
func NewOrganizationService(orgs OrgRepo, memberships MembershipRepo, metrics telemetry.Recorder) *OrganizationService {
	if metrics == nil {
		metrics = telemetry.Noop()
	}
	return &OrganizationService{orgs: orgs, memberships: memberships, metrics: metrics}
}

// CreateOrganization creates an organization with caller as its ADMIN. Both rows are written in one
// transaction: either both exist afterwards or neither does.
func (s *OrganizationService) CreateOrganization(ctx context.Context, caller identity.Caller, name, description string) (*CreateResult, error) {
	if caller.UserID == "" {
		return nil, apperrors.Validation("caller", "caller user id is required")
	}
	now := time.Now().UTC()
	org := &domain.Org{
		ID:          uuid.New().String(),
		Name:        name,
		Description: description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	org.Normalize()
	if err := org.Validate(); err != nil {
		return nil, err
	}
	admin := &membershipdomain.Membership{
		ID:        uuid.New().String(),
		UserID:    caller.UserID,
		OrgID:     org.ID,
		Role:      membershipdomain.RoleAdmin,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.orgs.CreateOrganizationWithAdmin(ctx, org, admin); err != nil {
		return nil, err
	}
	s.metrics.OrganizationCreated(ctx)
	logger.WithContext(ctx).WithField("org_id", org.ID).Info("organization created")
	return &CreateResult{Organization: org, Membership: admin}, nil
}

// GetOrganization returns orgID to one of its members.
func (s *OrganizationService) GetOrganization(ctx context.Context, caller identity.Caller, orgID string) (*domain.Org, error) {
	if _, err := rbac.RequireMembership(ctx, s.memberships, caller.UserID, orgID); err != nil {
		return nil, err
	}
	org, err := s.orgs.GetOrganizationByID(ctx, orgID)
	if err != nil {
		return nil, err
	}
	if org == nil {
		return nil, apperrors.NotFound(MsgOrganizationNotFound)
	}
	return org, nil
}

// ListOrganizations returns every organization caller belongs to, ordered by name.
func (s *OrganizationService) ListOrganizations(ctx context.Context, caller identity.Caller) ([]*domain.Org, error) {
	if caller.UserID == "" {
		return nil, nil
	}
	return s.orgs.ListOrganizationsByUser(ctx, caller.UserID)
}

// UpdateOrganization replaces the name and description of orgID. Admin only.
func (s *OrganizationService) UpdateOrganization(ctx context.Context, caller identity.Caller, orgID, name, description string) (*domain.Org, error) {
	if _, err := rbac.RequireAdmin(ctx, s.memberships, caller.UserID, orgID); err != nil {
		return nil, err
	}
	org := &domain.Org{ID: orgID, Name: name, Description: description, UpdatedAt: time.Now().UTC()}
	org.Normalize()
	if err := org.Validate(); err != nil {
		return nil, err
	}
	updated, err := s.orgs.UpdateOrganization(ctx, org)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, apperrors.NotFound(MsgOrganizationNotFound)
	}
	logger.WithContext(ctx).WithField("org_id", orgID).Info("organization updated")
	return updated, nil
}

// GetMembers lists the members of orgID, oldest first. Any member may call it.
func (s *OrganizationService) GetMembers(ctx context.Context, caller identity.Caller, orgID string) ([]*membershipdomain.Member, error) {
	if _, err := rbac.RequireMembership(ctx, s.memberships, caller.UserID, orgID); err != nil {
		return nil, err
	}
	return s.memberships.ListMembersByOrg(ctx, orgID)
}

// GetMembership returns caller's own membership in orgID.
func (s *OrganizationService) GetMembership(ctx context.Context, caller identity.Caller, orgID string) (*membershipdomain.Membership, error) {
	return rbac.RequireMembership(ctx, s.memberships, caller.UserID, orgID)
}
