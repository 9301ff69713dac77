package rbac

import (
	"context"
	"errors"
	"testing"

	"org-access-control/internal/membership/domain"
	"org-access-control/internal/platform/apperrors"
)

// mockMembershipGetter implements OrgMembershipGetter for tests.
type mockMembershipGetter struct {
	memberships map[string]*domain.Membership
	err         error
	calls       int
}

func (m *mockMembershipGetter) GetMembershipByUserAndOrg(ctx context.Context, userID, orgID string) (*domain.Membership, error) {
	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	return m.memberships[userID+":"+orgID], nil
}

func TestRequireMembership_AnyRole(t *testing.T) {
	testCases := []struct {
		name string
		role domain.Role
	}{
		{"admin", domain.RoleAdmin},
		{"member", domain.RoleMember},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			getter := &mockMembershipGetter{
				memberships: map[string]*domain.Membership{
					"user-1:org-1": {ID: "m1", UserID: "user-1", OrgID: "org-1", Role: tc.role},
				},
			}
			m, err := RequireMembership(context.Background(), getter, "user-1", "org-1")
			if err != nil {
				t.Fatalf("RequireMembership: %v", err)
			}
			if m.ID != "m1" || m.Role != tc.role {
				t.Errorf("membership = %+v, want id m1 role %s", m, tc.role)
			}
		})
	}
}

func TestRequireMembership_NotMember(t *testing.T) {
	getter := &mockMembershipGetter{
		memberships: map[string]*domain.Membership{
			"user-1:org-2": {ID: "m1", UserID: "user-1", OrgID: "org-2", Role: domain.RoleAdmin},
		},
	}
	_, err := RequireMembership(context.Background(), getter, "user-1", "org-1")
	if !errors.Is(err, apperrors.Forbidden(MsgNotMember)) {
		t.Fatalf("err = %v, want Forbidden(%q)", err, MsgNotMember)
	}
}

func TestRequireMembership_EmptyIDs(t *testing.T) {
	getter := &mockMembershipGetter{memberships: map[string]*domain.Membership{}}
	for _, ids := range [][2]string{{"", "org-1"}, {"user-1", ""}} {
		_, err := RequireMembership(context.Background(), getter, ids[0], ids[1])
		if !apperrors.IsForbidden(err) {
			t.Errorf("RequireMembership(%q, %q) err = %v, want forbidden", ids[0], ids[1], err)
		}
	}
	if getter.calls != 0 {
		t.Errorf("store consulted %d times for empty ids", getter.calls)
	}
}

func TestRequireMembership_RepositoryError(t *testing.T) {
	dbErr := errors.New("database error")
	getter := &mockMembershipGetter{err: dbErr}

	_, err := RequireMembership(context.Background(), getter, "user-1", "org-1")
	if !errors.Is(err, dbErr) {
		t.Fatalf("err = %v, want wrapped %v", err, dbErr)
	}
	if apperrors.IsForbidden(err) {
		t.Error("store failure must not be reported as forbidden")
	}
}

func TestRequireAdmin_Admin(t *testing.T) {
	getter := &mockMembershipGetter{
		memberships: map[string]*domain.Membership{
			"user-1:org-1": {ID: "m1", UserID: "user-1", OrgID: "org-1", Role: domain.RoleAdmin},
		},
	}
	m, err := RequireAdmin(context.Background(), getter, "user-1", "org-1")
	if err != nil {
		t.Fatalf("RequireAdmin: %v", err)
	}
	if m.ID != "m1" {
		t.Errorf("membership id = %q, want m1", m.ID)
	}
}

func TestRequireAdmin_Member(t *testing.T) {
	getter := &mockMembershipGetter{
		memberships: map[string]*domain.Membership{
			"user-1:org-1": {ID: "m1", UserID: "user-1", OrgID: "org-1", Role: domain.RoleMember},
		},
	}
	_, err := RequireAdmin(context.Background(), getter, "user-1", "org-1")
	if !errors.Is(err, apperrors.Forbidden(MsgMustBeAdmin)) {
		t.Fatalf("err = %v, want Forbidden(%q)", err, MsgMustBeAdmin)
	}
}

func TestRequireAdmin_PropagatesNotMember(t *testing.T) {
	getter := &mockMembershipGetter{memberships: map[string]*domain.Membership{}}
	_, err := RequireAdmin(context.Background(), getter, "user-1", "org-1")
	if !errors.Is(err, apperrors.Forbidden(MsgNotMember)) {
		t.Fatalf("err = %v, want Forbidden(%q)", err, MsgNotMember)
	}
}

func TestRequireAdmin_RepositoryError(t *testing.T) {
	getter := &mockMembershipGetter{err: errors.New("database error")}
	_, err := RequireAdmin(context.Background(), getter, "user-1", "org-1")
	if err == nil || apperrors.IsForbidden(err) {
		t.Fatalf("err = %v, want non-forbidden store error", err)
	}
}
