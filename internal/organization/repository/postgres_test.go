package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	membershipdomain "org-access-control/internal/membership/domain"
	"org-access-control/internal/organization/domain"
)

var orgRowColumns = []string{"id", "name", "description", "created_at", "updated_at"}

func newMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock) {
	t.Helper()
	conn, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { conn.Close() })
	return NewPostgresRepository(conn), mock
}

func newOrgAndAdmin() (*domain.Org, *membershipdomain.Membership) {
	now := time.Now().UTC()
	org := &domain.Org{ID: "org-1", Name: "Acme", Description: "Rockets", CreatedAt: now, UpdatedAt: now}
	admin := &membershipdomain.Membership{
		ID: "m1", UserID: "user-a", OrgID: "org-1", Role: membershipdomain.RoleAdmin, CreatedAt: now, UpdatedAt: now,
	}
	return org, admin
}

func TestCreateOrganizationWithAdmin_Commits(t *testing.T) {
	repo, mock := newMock(t)
	org, admin := newOrgAndAdmin()

	mock.ExpectBegin()
	mock.ExpectExec("insert into organizations").
		WithArgs("org-1", "Acme", "Rockets", org.CreatedAt, org.UpdatedAt).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("insert into memberships").
		WithArgs("m1", "user-a", "org-1", "ADMIN", admin.CreatedAt, admin.UpdatedAt).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	if err := repo.CreateOrganizationWithAdmin(context.Background(), org, admin); err != nil {
		t.Fatalf("CreateOrganizationWithAdmin: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}

func TestCreateOrganizationWithAdmin_MembershipFailureRollsBack(t *testing.T) {
	repo, mock := newMock(t)
	org, admin := newOrgAndAdmin()

	mock.ExpectBegin()
	mock.ExpectExec("insert into organizations").WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("insert into memberships").WillReturnError(errors.New("store unavailable"))
	mock.ExpectRollback()

	if err := repo.CreateOrganizationWithAdmin(context.Background(), org, admin); err == nil {
		t.Fatal("expected error when the admin membership cannot be written")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("organization insert must be rolled back: %v", err)
	}
}

func TestCreateOrganizationWithAdmin_OrganizationFailureRollsBack(t *testing.T) {
	repo, mock := newMock(t)
	org, admin := newOrgAndAdmin()

	mock.ExpectBegin()
	mock.ExpectExec("insert into organizations").WillReturnError(errors.New("check constraint"))
	mock.ExpectRollback()

	if err := repo.CreateOrganizationWithAdmin(context.Background(), org, admin); err == nil {
		t.Fatal("expected error")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}

func TestCreateOrganizationWithAdmin_MismatchedAdmin(t *testing.T) {
	repo, mock := newMock(t)
	org, admin := newOrgAndAdmin()
	admin.OrgID = "org-other"

	if err := repo.CreateOrganizationWithAdmin(context.Background(), org, admin); err == nil {
		t.Fatal("expected error for admin membership of another org")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("no statements should run: %v", err)
	}
}

func TestGetOrganizationByID(t *testing.T) {
	repo, mock := newMock(t)
	now := time.Now().UTC()
	mock.ExpectQuery("from organizations o where o.id = ").
		WithArgs("org-1").
		WillReturnRows(sqlmock.NewRows(orgRowColumns).AddRow("org-1", "Acme", nil, now, now))

	o, err := repo.GetOrganizationByID(context.Background(), "org-1")
	if err != nil {
		t.Fatalf("GetOrganizationByID: %v", err)
	}
	if o == nil || o.Name != "Acme" || o.Description != "" {
		t.Errorf("org = %+v", o)
	}
}

func TestGetOrganizationByID_NotFound(t *testing.T) {
	repo, mock := newMock(t)
	mock.ExpectQuery("from organizations").WithArgs("missing").WillReturnRows(sqlmock.NewRows(orgRowColumns))

	o, err := repo.GetOrganizationByID(context.Background(), "missing")
	if err != nil || o != nil {
		t.Errorf("GetOrganizationByID(missing) = %+v, %v; want nil, nil", o, err)
	}
}

func TestListOrganizationsByUser(t *testing.T) {
	repo, mock := newMock(t)
	now := time.Now().UTC()
	mock.ExpectQuery("join memberships m on m.org_id = o.id").
		WithArgs("user-a").
		WillReturnRows(sqlmock.NewRows(orgRowColumns).
			AddRow("org-1", "Acme", "Rockets", now, now).
			AddRow("org-2", "Beta", nil, now, now))

	orgs, err := repo.ListOrganizationsByUser(context.Background(), "user-a")
	if err != nil {
		t.Fatalf("ListOrganizationsByUser: %v", err)
	}
	if len(orgs) != 2 || orgs[0].ID != "org-1" || orgs[1].ID != "org-2" {
		t.Errorf("orgs = %+v", orgs)
	}
}

func TestUpdateOrganization(t *testing.T) {
	repo, mock := newMock(t)
	now := time.Now().UTC()
	mock.ExpectQuery("update organizations o set name").
		WithArgs("org-1", "Acme 2", sqlmock.AnyArg(), now).
		WillReturnRows(sqlmock.NewRows(orgRowColumns).AddRow("org-1", "Acme 2", nil, now, now))

	o, err := repo.UpdateOrganization(context.Background(), &domain.Org{ID: "org-1", Name: "Acme 2", UpdatedAt: now})
	if err != nil {
		t.Fatalf("UpdateOrganization: %v", err)
	}
	if o == nil || o.Name != "Acme 2" {
		t.Errorf("org = %+v", o)
	}
}

func TestUpdateOrganization_Missing(t *testing.T) {
	repo, mock := newMock(t)
	mock.ExpectQuery("update organizations").WillReturnRows(sqlmock.NewRows(orgRowColumns))

	o, err := repo.UpdateOrganization(context.Background(), &domain.Org{ID: "gone", Name: "x"})
	if err != nil || o != nil {
		t.Errorf("UpdateOrganization(gone) = %+v, %v; want nil, nil", o, err)
	}
}
