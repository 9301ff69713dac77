package handler

import (
	"context"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	organizationv1 "org-access-control/api/organization/v1"
	"org-access-control/internal/identity"
	invitationdomain "org-access-control/internal/invitation/domain"
	"org-access-control/internal/logger"
	membershipdomain "org-access-control/internal/membership/domain"
	"org-access-control/internal/organization/domain"
	"org-access-control/internal/organization/service"
	"org-access-control/internal/platform/apperrors"
)

// OrganizationService is the organization lifecycle the handler exposes.
type OrganizationService interface {
	CreateOrganization(ctx context.Context, caller identity.Caller, name, description string) (*service.CreateResult, error)
	GetOrganization(ctx context.Context, caller identity.Caller, orgID string) (*domain.Org, error)
	ListOrganizations(ctx context.Context, caller identity.Caller) ([]*domain.Org, error)
	UpdateOrganization(ctx context.Context, caller identity.Caller, orgID, name, description string) (*domain.Org, error)
	GetMembers(ctx context.Context, caller identity.Caller, orgID string) ([]*membershipdomain.Member, error)
	GetMembership(ctx context.Context, caller identity.Caller, orgID string) (*membershipdomain.Membership, error)
}

// InvitationIssuer is the admin side of the invitation flow.
type InvitationIssuer interface {
	InviteUser(ctx context.Context, caller identity.Caller, orgID, email, role string) (*invitationdomain.Invitation, error)
	GetInvitations(ctx context.Context, caller identity.Caller, orgID string) ([]*invitationdomain.Detail, error)
}

// Server implements OrganizationService over gRPC.
type Server struct {
	organizationv1.UnimplementedOrganizationServiceServer
	orgs        OrganizationService
	invitations InvitationIssuer
}

// NewServer returns a new Organization gRPC server. A nil dependency leaves its RPCs Unimplemented.
func NewServer(orgs OrganizationService, invitations InvitationIssuer) *Server {
	return &Server{orgs: orgs, invitations: invitations}
}

// CreateOrganization creates an organization with the caller as its admin.
func (s *Server) CreateOrganization(ctx context.Context, req *organizationv1.CreateOrganizationRequest) (*organizationv1.CreateOrganizationResponse, error) {
	if s.orgs == nil {
		return s.UnimplementedOrganizationServiceServer.CreateOrganization(ctx, req)
	}
	caller, err := callerFrom(ctx)
	if err != nil {
		return nil, err
	}
	res, err := s.orgs.CreateOrganization(ctx, caller, req.Name, req.Description)
	if err != nil {
		return nil, toStatus(ctx, err)
	}
	return &organizationv1.CreateOrganizationResponse{
		Organization: ToOrganization(res.Organization),
		Membership:   ToMembership(res.Membership),
	}, nil
}

// GetOrganization returns an organization the caller belongs to.
func (s *Server) GetOrganization(ctx context.Context, req *organizationv1.GetOrganizationRequest) (*organizationv1.GetOrganizationResponse, error) {
	if s.orgs == nil {
		return s.UnimplementedOrganizationServiceServer.GetOrganization(ctx, req)
	}
	caller, err := callerFrom(ctx)
	if err != nil {
		return nil, err
	}
	org, err := s.orgs.GetOrganization(ctx, caller, req.OrgID)
	if err != nil {
		return nil, toStatus(ctx, err)
	}
	return &organizationv1.GetOrganizationResponse{Organization: ToOrganization(org)}, nil
}

// ListOrganizations returns every organization the caller belongs to.
func (s *Server) ListOrganizations(ctx context.Context, req *organizationv1.ListOrganizationsRequest) (*organizationv1.ListOrganizationsResponse, error) {
	if s.orgs == nil {
		return s.UnimplementedOrganizationServiceServer.ListOrganizations(ctx, req)
	}
	caller, err := callerFrom(ctx)
	if err != nil {
		return nil, err
	}
	list, err := s.orgs.ListOrganizations(ctx, caller)
	if err != nil {
		return nil, toStatus(ctx, err)
	}
	orgs := make([]*organizationv1.Organization, 0, len(list))
	for _, o := range list {
		orgs = append(orgs, ToOrganization(o))
	}
	return &organizationv1.ListOrganizationsResponse{Organizations: orgs}, nil
}

// UpdateOrganization replaces name and description. Admin only.
func (s *Server) UpdateOrganization(ctx context.Context, req *organizationv1.UpdateOrganizationRequest) (*organizationv1.UpdateOrganizationResponse, error) {
	if s.orgs == nil {
		return s.UnimplementedOrganizationServiceServer.UpdateOrganization(ctx, req)
	}
	caller, err := callerFrom(ctx)
	if err != nil {
		return nil, err
	}
	org, err := s.orgs.UpdateOrganization(ctx, caller, req.OrgID, req.Name, req.Description)
	if err != nil {
		return nil, toStatus(ctx, err)
	}
	return &organizationv1.UpdateOrganizationResponse{Organization: ToOrganization(org)}, nil
}

// InviteUser issues a pending invitation. Admin only.
func (s *Server) InviteUser(ctx context.Context, req *organizationv1.InviteUserRequest) (*organizationv1.InviteUserResponse, error) {
	if s.invitations == nil {
		return s.UnimplementedOrganizationServiceServer.InviteUser(ctx, req)
	}
	caller, err := callerFrom(ctx)
	if err != nil {
		return nil, err
	}
	inv, err := s.invitations.InviteUser(ctx, caller, req.OrgID, req.Email, req.Role)
	if err != nil {
		return nil, toStatus(ctx, err)
	}
	return &organizationv1.InviteUserResponse{Invitation: ToInvitationRecord(inv)}, nil
}

// GetInvitations lists the organization's invitations.
func (s *Server) GetInvitations(ctx context.Context, req *organizationv1.GetInvitationsRequest) (*organizationv1.GetInvitationsResponse, error) {
	if s.invitations == nil {
		return s.UnimplementedOrganizationServiceServer.GetInvitations(ctx, req)
	}
	caller, err := callerFrom(ctx)
	if err != nil {
		return nil, err
	}
	list, err := s.invitations.GetInvitations(ctx, caller, req.OrgID)
	if err != nil {
		return nil, toStatus(ctx, err)
	}
	return &organizationv1.GetInvitationsResponse{Invitations: ToInvitations(list)}, nil
}

// GetMembers lists the organization's members.
func (s *Server) GetMembers(ctx context.Context, req *organizationv1.GetMembersRequest) (*organizationv1.GetMembersResponse, error) {
	if s.orgs == nil {
		return s.UnimplementedOrganizationServiceServer.GetMembers(ctx, req)
	}
	caller, err := callerFrom(ctx)
	if err != nil {
		return nil, err
	}
	list, err := s.orgs.GetMembers(ctx, caller, req.OrgID)
	if err != nil {
		return nil, toStatus(ctx, err)
	}
	members := make([]*organizationv1.Member, 0, len(list))
	for _, m := range list {
		members = append(members, &organizationv1.Member{
			Membership: ToMembership(&m.Membership),
			UserName:   m.UserName,
			UserEmail:  m.UserEmail,
		})
	}
	return &organizationv1.GetMembersResponse{Members: members}, nil
}

// GetMembership returns the caller's own membership.
func (s *Server) GetMembership(ctx context.Context, req *organizationv1.GetMembershipRequest) (*organizationv1.GetMembershipResponse, error) {
	if s.orgs == nil {
		return s.UnimplementedOrganizationServiceServer.GetMembership(ctx, req)
	}
	caller, err := callerFrom(ctx)
	if err != nil {
		return nil, err
	}
	m, err := s.orgs.GetMembership(ctx, caller, req.OrgID)
	if err != nil {
		return nil, toStatus(ctx, err)
	}
	return &organizationv1.GetMembershipResponse{Membership: ToMembership(m)}, nil
}

func callerFrom(ctx context.Context) (identity.Caller, error) {
	c, ok := identity.FromContext(ctx)
	if !ok {
		return identity.Caller{}, status.Error(codes.Unauthenticated, "missing identity")
	}
	return c, nil
}

// toStatus maps err to a gRPC status, logging failures that are not caller errors.
func toStatus(ctx context.Context, err error) error {
	if apperrors.KindOf(err) == apperrors.KindUnknown {
		logger.WithContext(ctx).WithError(err).Error("request failed")
	}
	return apperrors.ToStatus(err)
}
