package handler

import (
	"context"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	invitationv1 "org-access-control/api/invitation/v1"
	"org-access-control/internal/identity"
	"org-access-control/internal/invitation/domain"
	"org-access-control/internal/invitation/service"
	"org-access-control/internal/logger"
	orghandler "org-access-control/internal/organization/handler"
	"org-access-control/internal/platform/apperrors"
)

// InvitationService is the invitee side of the invitation flow.
type InvitationService interface {
	AcceptInvitation(ctx context.Context, caller identity.Caller, invitationID string) (*service.AcceptResult, error)
	GetPendingInvitations(ctx context.Context, caller identity.Caller) ([]*domain.Detail, error)
}

// Server implements InvitationService over gRPC.
type Server struct {
	invitationv1.UnimplementedInvitationServiceServer
	svc InvitationService
}

// NewServer returns a new Invitation gRPC server. svc may be nil; then all RPCs return Unimplemented.
func NewServer(svc InvitationService) *Server {
	return &Server{svc: svc}
}

// AcceptInvitation joins the caller to the invitation's organization.
func (s *Server) AcceptInvitation(ctx context.Context, req *invitationv1.AcceptInvitationRequest) (*invitationv1.AcceptInvitationResponse, error) {
	if s.svc == nil {
		return s.UnimplementedInvitationServiceServer.AcceptInvitation(ctx, req)
	}
	caller, ok := identity.FromContext(ctx)
	if !ok {
		return nil, status.Error(codes.Unauthenticated, "missing identity")
	}
	if req.InvitationID == "" {
		return nil, status.Error(codes.InvalidArgument, "invitation_id is required")
	}
	res, err := s.svc.AcceptInvitation(ctx, caller, req.InvitationID)
	if err != nil {
		return nil, toStatus(ctx, err)
	}
	return &invitationv1.AcceptInvitationResponse{
		Membership:    orghandler.ToMembership(res.Membership),
		Organization:  orghandler.ToOrganization(res.Organization),
		AlreadyMember: res.AlreadyMember,
		Message:       res.Message,
	}, nil
}

// GetPendingInvitations lists invitations addressed to the caller's verified email.
func (s *Server) GetPendingInvitations(ctx context.Context, req *invitationv1.GetPendingInvitationsRequest) (*invitationv1.GetPendingInvitationsResponse, error) {
	if s.svc == nil {
		return s.UnimplementedInvitationServiceServer.GetPendingInvitations(ctx, req)
	}
	caller, ok := identity.FromContext(ctx)
	if !ok {
		return nil, status.Error(codes.Unauthenticated, "missing identity")
	}
	list, err := s.svc.GetPendingInvitations(ctx, caller)
	if err != nil {
		return nil, toStatus(ctx, err)
	}
	return &invitationv1.GetPendingInvitationsResponse{Invitations: orghandler.ToInvitations(list)}, nil
}

func toStatus(ctx context.Context, err error) error {
	if apperrors.KindOf(err) == apperrors.KindUnknown {
		logger.WithContext(ctx).WithError(err).Error("request failed")
	}
	return apperrors.ToStatus(err)
}
