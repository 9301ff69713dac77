package server

import (
	"context"
	"os"
	"sync"
	"testing"
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	invitationv1 "org-access-control/api/invitation/v1"
	organizationv1 "org-access-control/api/organization/v1"
	"org-access-control/internal/identity"
	"org-access-control/internal/security"
	"org-access-control/internal/server/interceptors"
	"org-access-control/internal/testutil"
	"org-access-control/internal/user/domain"
	userrepo "org-access-control/internal/user/repository"
)

func TestMain(m *testing.M) {
	code := m.Run()
	testutil.Purge()
	os.Exit(code)
}

type stack struct {
	orgs        organizationv1.OrganizationServiceClient
	invitations invitationv1.InvitationServiceClient
	issuer      *security.Issuer
}

func newStack(t *testing.T) *stack {
	t.Helper()
	conn := testutil.Postgres(t)
	users := userrepo.NewPostgresRepository(conn)
	for _, u := range []domain.User{
		{ID: "alice", Name: "Alice", Email: "alice@example.com"},
		{ID: "bob", Name: "Bob", Email: "bob@example.com"},
		{ID: "carol", Name: "Carol", Email: "carol@example.com"},
	} {
		if err := users.Upsert(context.Background(), &u); err != nil {
			t.Fatalf("seed user %s: %v", u.ID, err)
		}
	}
	issuer, verifier, err := security.NewTestPair()
	if err != nil {
		t.Fatalf("NewTestPair: %v", err)
	}
	deps := PostgresDeps(conn, nil)
	deps.Health.Probe(context.Background())
	cc := startBufGRPC(t, New(Options{Authenticator: interceptors.AuthUnary(verifier, PublicMethods())}, deps))
	return &stack{
		orgs:        organizationv1.NewOrganizationServiceClient(cc),
		invitations: invitationv1.NewInvitationServiceClient(cc),
		issuer:      issuer,
	}
}

func (s *stack) as(t *testing.T, userID, email string) context.Context {
	t.Helper()
	token, _, err := s.issuer.Issue(identity.Caller{UserID: userID, Email: email})
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	t.Cleanup(cancel)
	return metadata.AppendToOutgoingContext(ctx, "authorization", "Bearer "+token)
}

func wantCode(t *testing.T, err error, code codes.Code) {
	t.Helper()
	if status.Code(err) != code {
		t.Fatalf("code = %v, want %v (err %v)", status.Code(err), code, err)
	}
}

func TestIntegration_InvitationLifecycle(t *testing.T) {
	s := newStack(t)
	alice := s.as(t, "alice", "alice@example.com")
	bob := s.as(t, "bob", "bob@example.com")
	carol := s.as(t, "carol", "carol@example.com")

	created, err := s.orgs.CreateOrganization(alice, &organizationv1.CreateOrganizationRequest{Name: "  Acme  ", Description: "Widgets"})
	if err != nil {
		t.Fatalf("CreateOrganization: %v", err)
	}
	orgID := created.Organization.ID
	if created.Organization.Name != "Acme" || created.Membership.Role != "ADMIN" {
		t.Fatalf("created = %+v / %+v", created.Organization, created.Membership)
	}

	_, err = s.orgs.GetOrganization(bob, &organizationv1.GetOrganizationRequest{OrgID: orgID})
	wantCode(t, err, codes.PermissionDenied)

	inv, err := s.orgs.InviteUser(alice, &organizationv1.InviteUserRequest{OrgID: orgID, Email: " Bob@Example.com "})
	if err != nil {
		t.Fatalf("InviteUser: %v", err)
	}
	if inv.Invitation.Email != "bob@example.com" || inv.Invitation.Role != "MEMBER" {
		t.Fatalf("invitation = %+v", inv.Invitation)
	}

	_, err = s.orgs.InviteUser(alice, &organizationv1.InviteUserRequest{OrgID: orgID, Email: "bob@example.com"})
	wantCode(t, err, codes.AlreadyExists)

	pending, err := s.invitations.GetPendingInvitations(bob, &invitationv1.GetPendingInvitationsRequest{})
	if err != nil {
		t.Fatalf("GetPendingInvitations: %v", err)
	}
	if len(pending.Invitations) != 1 || pending.Invitations[0].Organization == nil || pending.Invitations[0].Organization.Name != "Acme" {
		t.Fatalf("pending = %+v", pending.Invitations)
	}

	_, err = s.invitations.AcceptInvitation(carol, &invitationv1.AcceptInvitationRequest{InvitationID: inv.Invitation.ID})
	wantCode(t, err, codes.PermissionDenied)

	accepted, err := s.invitations.AcceptInvitation(bob, &invitationv1.AcceptInvitationRequest{InvitationID: inv.Invitation.ID})
	if err != nil {
		t.Fatalf("AcceptInvitation: %v", err)
	}
	if accepted.AlreadyMember || accepted.Membership == nil || accepted.Membership.Role != "MEMBER" {
		t.Fatalf("accepted = %+v", accepted)
	}

	again, err := s.invitations.AcceptInvitation(bob, &invitationv1.AcceptInvitationRequest{InvitationID: inv.Invitation.ID})
	if err != nil {
		t.Fatalf("second AcceptInvitation: %v", err)
	}
	if !again.AlreadyMember || again.Membership != nil {
		t.Errorf("second accept = %+v, want already member", again)
	}

	members, err := s.orgs.GetMembers(bob, &organizationv1.GetMembersRequest{OrgID: orgID})
	if err != nil {
		t.Fatalf("GetMembers: %v", err)
	}
	if len(members.Members) != 2 {
		t.Errorf("members = %d, want 2", len(members.Members))
	}

	_, err = s.orgs.UpdateOrganization(bob, &organizationv1.UpdateOrganizationRequest{OrgID: orgID, Name: "Bob's"})
	wantCode(t, err, codes.PermissionDenied)

	invs, err := s.orgs.GetInvitations(bob, &organizationv1.GetInvitationsRequest{OrgID: orgID})
	if err != nil {
		t.Fatalf("GetInvitations: %v", err)
	}
	if len(invs.Invitations) != 1 || !invs.Invitations[0].Accepted || invs.Invitations[0].InvitedByName != "Alice" {
		t.Errorf("invitations = %+v", invs.Invitations)
	}

	_, err = s.orgs.InviteUser(alice, &organizationv1.InviteUserRequest{OrgID: orgID, Email: "bob@example.com"})
	wantCode(t, err, codes.AlreadyExists)
}

func TestIntegration_ConcurrentAcceptCreatesOneMembership(t *testing.T) {
	s := newStack(t)
	alice := s.as(t, "alice", "alice@example.com")

	created, err := s.orgs.CreateOrganization(alice, &organizationv1.CreateOrganizationRequest{Name: "Acme"})
	if err != nil {
		t.Fatalf("CreateOrganization: %v", err)
	}
	orgID := created.Organization.ID
	inv, err := s.orgs.InviteUser(alice, &organizationv1.InviteUserRequest{OrgID: orgID, Email: "carol@example.com", Role: "ADMIN"})
	if err != nil {
		t.Fatalf("InviteUser: %v", err)
	}

	const n = 8
	var (
		wg           sync.WaitGroup
		mu           sync.Mutex
		createdCount int
		errs         []error
	)
	carol := s.as(t, "carol", "carol@example.com")
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			resp, err := s.invitations.AcceptInvitation(carol, &invitationv1.AcceptInvitationRequest{InvitationID: inv.Invitation.ID})
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				errs = append(errs, err)
				return
			}
			if resp.Membership != nil {
				createdCount++
			}
		}()
	}
	wg.Wait()
	if len(errs) > 0 {
		t.Fatalf("accept errors: %v", errs)
	}
	if createdCount != 1 {
		t.Errorf("memberships created = %d, want exactly 1", createdCount)
	}

	ms, err := s.orgs.GetMembership(carol, &organizationv1.GetMembershipRequest{OrgID: orgID})
	if err != nil {
		t.Fatalf("GetMembership: %v", err)
	}
	if ms.Membership.Role != "ADMIN" {
		t.Errorf("role = %q, want ADMIN", ms.Membership.Role)
	}
}
