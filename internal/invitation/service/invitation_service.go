package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"org-access-control/internal/identity"
	"org-access-control/internal/invitation/domain"
	"org-access-control/internal/invitation/repository"
	"org-access-control/internal/logger"
	membershipdomain "org-access-control/internal/membership/domain"
	orgdomain "org-access-control/internal/organization/domain"
	"org-access-control/internal/platform/apperrors"
	"org-access-control/internal/platform/rbac"
	"org-access-control/internal/platform/validate"
	"org-access-control/internal/telemetry"
	userdomain "org-access-control/internal/user/domain"
)

// Caller-visible messages.
const (
	MsgAlreadyMember        = "already a member"
	MsgAlreadyInvited       = "already invited"
	MsgInvitationNotFound   = "invitation not found"
	MsgNotForThisEmail      = "invitation not for this email"
	MsgOrganizationNotFound = "organization not found"
	MsgAdded                = "added to the organization"
)

// emailRules are the validator tags an invitation email must pass.
const emailRules = "required,email,max=255"

// InvitationRepo is the invitation persistence the service needs.
type InvitationRepo interface {
	GetByID(ctx context.Context, id string) (*domain.Invitation, error)
	GetPendingByEmailAndOrg(ctx context.Context, email, orgID string) (*domain.Invitation, error)
	Create(ctx context.Context, inv *domain.Invitation) error
	ListByOrg(ctx context.Context, orgID string) ([]*domain.Detail, error)
	ListPendingByEmail(ctx context.Context, email string) ([]*domain.Detail, error)
	Accept(ctx context.Context, invitationID string, candidate *membershipdomain.Membership) (*domain.AcceptOutcome, error)
}

// UserRepo resolves identity-provider users by email.
type UserRepo interface {
	GetByEmail(ctx context.Context, email string) (*userdomain.User, error)
}

// OrgRepo loads the organization an invitation belongs to.
type OrgRepo interface {
	GetOrganizationByID(ctx context.Context, id string) (*orgdomain.Org, error)
}

// AcceptResult is the outcome of AcceptInvitation. Membership is nil when the user already belonged
// to the organization.
type AcceptResult struct {
	Membership    *membershipdomain.Membership
	Organization  *orgdomain.Org
	AlreadyMember bool
	Message       string
}

// InvitationService issues, lists and accepts invitations.
type InvitationService struct {
	invitations InvitationRepo
	memberships rbac.OrgMembershipGetter
	users       UserRepo
	orgs        OrgRepo
	metrics     telemetry.Recorder
}

// NewInvitationService returns an InvitationService. A nil metrics records nothing.
func NewInvitationService(invitations InvitationRepo, memberships rbac.OrgMembershipGetter, users UserRepo, orgs OrgRepo, metrics telemetry.Recorder) *InvitationService {
	if metrics == nil {
		metrics = telemetry.Noop()
	}
	return &InvitationService{
		invitations: invitations,
		memberships: memberships,
		users:       users,
		orgs:        orgs,
		metrics:     metrics,
	}
}

// InviteUser creates a pending invitation for email to join orgID at role (MEMBER when empty).
// Only admins may invite. The stored email is normalized.
func (s *InvitationService) InviteUser(ctx context.Context, caller identity.Caller, orgID, email, role string) (*domain.Invitation, error) {
	email = identity.NormalizeEmail(email)
	if err := validateEmail(email); err != nil {
		return nil, err
	}
	r, err := membershipdomain.ParseRole(role)
	if err != nil {
		return nil, apperrors.Validation("role", "role must be ADMIN or MEMBER")
	}
	if _, err := rbac.RequireAdmin(ctx, s.memberships, caller.UserID, orgID); err != nil {
		return nil, err
	}

	existing, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		m, err := s.memberships.GetMembershipByUserAndOrg(ctx, existing.ID, orgID)
		if err != nil {
			return nil, err
		}
		if m != nil {
			return nil, apperrors.Conflict(MsgAlreadyMember)
		}
	}
	pending, err := s.invitations.GetPendingByEmailAndOrg(ctx, email, orgID)
	if err != nil {
		return nil, err
	}
	if pending.IsPending() {
		return nil, apperrors.Conflict(MsgAlreadyInvited)
	}

	inv := &domain.Invitation{
		ID:              uuid.New().String(),
		Email:           email,
		Role:            r,
		OrgID:           orgID,
		InvitedByUserID: caller.UserID,
		CreatedAt:       time.Now().UTC(),
	}
	if err := s.invitations.Create(ctx, inv); err != nil {
		// Lost a race with a concurrent invite for the same address.
		if errors.Is(err, repository.ErrDuplicatePendingInvitation) {
			return nil, apperrors.Conflict(MsgAlreadyInvited)
		}
		return nil, err
	}
	s.metrics.InvitationIssued(ctx, string(r))
	logger.WithContext(ctx).WithField("org_id", orgID).WithField("invitation_id", inv.ID).Info("invitation issued")
	return inv, nil
}

// GetInvitations lists every invitation of orgID, pending and accepted, newest first. Any member may call it.
func (s *InvitationService) GetInvitations(ctx context.Context, caller identity.Caller, orgID string) ([]*domain.Detail, error) {
	if _, err := rbac.RequireMembership(ctx, s.memberships, caller.UserID, orgID); err != nil {
		return nil, err
	}
	return s.invitations.ListByOrg(ctx, orgID)
}

// GetPendingInvitations lists the pending invitations addressed to caller's email.
func (s *InvitationService) GetPendingInvitations(ctx context.Context, caller identity.Caller) ([]*domain.Detail, error) {
	email := caller.NormalizedEmail()
	if email == "" {
		return nil, nil
	}
	return s.invitations.ListPendingByEmail(ctx, email)
}

// AcceptInvitation joins caller to the invitation's organization at the invitation's role.
// Accepting when already a member, or accepting twice, succeeds without creating a membership.
func (s *InvitationService) AcceptInvitation(ctx context.Context, caller identity.Caller, invitationID string) (*AcceptResult, error) {
	inv, err := s.invitations.GetByID(ctx, invitationID)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, apperrors.NotFound(MsgInvitationNotFound)
	}
	if email := caller.NormalizedEmail(); email == "" || email != identity.NormalizeEmail(inv.Email) {
		return nil, apperrors.Forbidden(MsgNotForThisEmail)
	}

	now := time.Now().UTC()
	outcome, err := s.invitations.Accept(ctx, inv.ID, &membershipdomain.Membership{
		ID:        uuid.New().String(),
		UserID:    caller.UserID,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		if errors.Is(err, repository.ErrInvitationNotFound) {
			return nil, apperrors.NotFound(MsgInvitationNotFound)
		}
		return nil, err
	}

	org, err := s.orgs.GetOrganizationByID(ctx, inv.OrgID)
	if err != nil {
		return nil, err
	}
	if org == nil {
		return nil, apperrors.NotFound(MsgOrganizationNotFound)
	}

	res := &AcceptResult{
		Membership:    outcome.Membership,
		Organization:  org,
		AlreadyMember: outcome.Membership == nil,
		Message:       MsgAdded,
	}
	if res.AlreadyMember {
		res.Message = MsgAlreadyMember
	}
	s.metrics.InvitationAccepted(ctx, res.AlreadyMember)
	logger.WithContext(ctx).WithField("org_id", inv.OrgID).WithField("invitation_id", inv.ID).
		WithField("already_member", res.AlreadyMember).Info("invitation accepted")
	return res, nil
}

func validateEmail(email string) error {
	switch validate.Var(email, emailRules) {
	case "":
		return nil
	case "required":
		return apperrors.Validation("email", "email is required")
	default:
		return apperrors.Validation("email", "invalid email")
	}
}
