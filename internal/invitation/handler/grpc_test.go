package handler

import (
	"context"
	"errors"
	"testing"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	invitationv1 "org-access-control/api/invitation/v1"
	"org-access-control/internal/identity"
	"org-access-control/internal/invitation/domain"
	"org-access-control/internal/invitation/service"
	membershipdomain "org-access-control/internal/membership/domain"
	orgdomain "org-access-control/internal/organization/domain"
	"org-access-control/internal/platform/apperrors"
)

type stubService struct {
	res     *service.AcceptResult
	pending []*domain.Detail
	err     error
	caller  identity.Caller
}

func (s *stubService) AcceptInvitation(ctx context.Context, caller identity.Caller, invitationID string) (*service.AcceptResult, error) {
	s.caller = caller
	return s.res, s.err
}

func (s *stubService) GetPendingInvitations(ctx context.Context, caller identity.Caller) ([]*domain.Detail, error) {
	s.caller = caller
	return s.pending, s.err
}

func authed() context.Context {
	return identity.WithCaller(context.Background(), identity.Caller{UserID: "carol", Email: "carol@example.com"})
}

func TestAcceptInvitation_Added(t *testing.T) {
	svc := &stubService{res: &service.AcceptResult{
		Membership:   &membershipdomain.Membership{ID: "m1", UserID: "carol", OrgID: "org-1", Role: membershipdomain.RoleMember},
		Organization: &orgdomain.Org{ID: "org-1", Name: "Acme"},
		Message:      service.MsgAdded,
	}}
	resp, err := NewServer(svc).AcceptInvitation(authed(), &invitationv1.AcceptInvitationRequest{InvitationID: "inv-1"})
	if err != nil {
		t.Fatalf("AcceptInvitation: %v", err)
	}
	if resp.AlreadyMember || resp.Message != service.MsgAdded || resp.Membership == nil || resp.Organization.Name != "Acme" {
		t.Errorf("resp = %+v", resp)
	}
	if svc.caller.UserID != "carol" {
		t.Errorf("caller = %+v", svc.caller)
	}
}

func TestAcceptInvitation_AlreadyMember(t *testing.T) {
	svc := &stubService{res: &service.AcceptResult{
		Organization:  &orgdomain.Org{ID: "org-1", Name: "Acme"},
		AlreadyMember: true,
		Message:       service.MsgAlreadyMember,
	}}
	resp, err := NewServer(svc).AcceptInvitation(authed(), &invitationv1.AcceptInvitationRequest{InvitationID: "inv-1"})
	if err != nil {
		t.Fatalf("AcceptInvitation: %v", err)
	}
	if !resp.AlreadyMember || resp.Membership != nil || resp.Message != service.MsgAlreadyMember {
		t.Errorf("resp = %+v", resp)
	}
}

func TestAcceptInvitation_Errors(t *testing.T) {
	testCases := []struct {
		name string
		ctx  context.Context
		req  *invitationv1.AcceptInvitationRequest
		err  error
		code codes.Code
	}{
		{"no identity", context.Background(), &invitationv1.AcceptInvitationRequest{InvitationID: "inv-1"}, nil, codes.Unauthenticated},
		{"missing id", authed(), &invitationv1.AcceptInvitationRequest{}, nil, codes.InvalidArgument},
		{"not found", authed(), &invitationv1.AcceptInvitationRequest{InvitationID: "x"}, apperrors.NotFound(service.MsgInvitationNotFound), codes.NotFound},
		{"wrong email", authed(), &invitationv1.AcceptInvitationRequest{InvitationID: "x"}, apperrors.Forbidden(service.MsgNotForThisEmail), codes.PermissionDenied},
		{"store failure", authed(), &invitationv1.AcceptInvitationRequest{InvitationID: "x"}, errors.New("deadlock detected"), codes.Internal},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewServer(&stubService{err: tc.err}).AcceptInvitation(tc.ctx, tc.req)
			if status.Code(err) != tc.code {
				t.Fatalf("code = %v, want %v (err %v)", status.Code(err), tc.code, err)
			}
		})
	}
}

func TestGetPendingInvitations(t *testing.T) {
	svc := &stubService{pending: []*domain.Detail{{
		Invitation:     domain.Invitation{ID: "inv-1", Email: "carol@example.com", Role: membershipdomain.RoleAdmin, OrgID: "org-1"},
		InvitedByName:  "Alice",
		InvitedByEmail: "alice@example.com",
		Org:            &orgdomain.Org{ID: "org-1", Name: "Acme"},
	}}}
	resp, err := NewServer(svc).GetPendingInvitations(authed(), &invitationv1.GetPendingInvitationsRequest{})
	if err != nil {
		t.Fatalf("GetPendingInvitations: %v", err)
	}
	if len(resp.Invitations) != 1 {
		t.Fatalf("invitations = %d", len(resp.Invitations))
	}
	got := resp.Invitations[0]
	if got.Role != "ADMIN" || got.InvitedByEmail != "alice@example.com" || got.Organization == nil || got.Organization.Name != "Acme" {
		t.Errorf("invitation = %+v", got)
	}
}

func TestGetPendingInvitations_Empty(t *testing.T) {
	resp, err := NewServer(&stubService{}).GetPendingInvitations(authed(), &invitationv1.GetPendingInvitationsRequest{})
	if err != nil {
		t.Fatalf("GetPendingInvitations: %v", err)
	}
	if resp.Invitations == nil {
		t.Error("invitations must be an empty array, not null")
	}
}

func TestNilService(t *testing.T) {
	_, err := NewServer(nil).AcceptInvitation(authed(), &invitationv1.AcceptInvitationRequest{InvitationID: "x"})
	if status.Code(err) != codes.Unimplemented {
		t.Fatalf("code = %v, want Unimplemented", status.Code(err))
	}
}
