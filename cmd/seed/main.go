// seed inserts development sample data for local testing and prints a bearer token per user.
// Idempotent: rows that already exist are left alone.
package main

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"org-access-control/internal/config"
	"org-access-control/internal/db"
	"org-access-control/internal/identity"
	invitationdomain "org-access-control/internal/invitation/domain"
	invitationrepo "org-access-control/internal/invitation/repository"
	membershipdomain "org-access-control/internal/membership/domain"
	orgdomain "org-access-control/internal/organization/domain"
	orgrepo "org-access-control/internal/organization/repository"
	"org-access-control/internal/security"
	userdomain "org-access-control/internal/user/domain"
	userrepo "org-access-control/internal/user/repository"
)

const (
	devOrgID        = "dev-org-001"
	devMembershipID = "dev-membership-001"
	devInvitationID = "dev-invitation-001"
)

var devUsers = []userdomain.User{
	{ID: "dev-user-001", Name: "Dev Admin", Email: "dev@example.com"},
	{ID: "dev-user-002", Name: "Dev Member", Email: "member@example.com"},
	{ID: "dev-user-003", Name: "Dev Outsider", Email: "outsider@example.com"},
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("config: %v", err)
	}
	conn, err := db.Open(cfg.DatabaseURL)
	if err != nil {
		logrus.Fatalf("db: %v", err)
	}
	defer conn.Close()

	ctx := context.Background()
	users := userrepo.NewPostgresRepository(conn)
	orgs := orgrepo.NewPostgresRepository(conn)
	invitations := invitationrepo.NewPostgresRepository(conn)

	for i := range devUsers {
		if err := users.Upsert(ctx, &devUsers[i]); err != nil {
			logrus.Fatalf("upsert user %s: %v", devUsers[i].ID, err)
		}
	}

	now := time.Now().UTC()
	existing, err := orgs.GetOrganizationByID(ctx, devOrgID)
	if err != nil {
		logrus.Fatalf("seed check: %v", err)
	}
	if existing == nil {
		org := &orgdomain.Org{ID: devOrgID, Name: "Dev Org", Description: "Seeded for local development", CreatedAt: now, UpdatedAt: now}
		admin := &membershipdomain.Membership{
			ID: devMembershipID, UserID: devUsers[0].ID, OrgID: devOrgID,
			Role: membershipdomain.RoleAdmin, CreatedAt: now, UpdatedAt: now,
		}
		if err := orgs.CreateOrganizationWithAdmin(ctx, org, admin); err != nil {
			logrus.Fatalf("create org: %v", err)
		}
		logrus.WithField("org_id", devOrgID).Info("seeded organization")
	}

	inv, err := invitations.GetByID(ctx, devInvitationID)
	if err != nil {
		logrus.Fatalf("seed check: %v", err)
	}
	if inv == nil {
		if err := invitations.Create(ctx, &invitationdomain.Invitation{
			ID:              devInvitationID,
			Email:           devUsers[1].Email,
			Role:            membershipdomain.RoleMember,
			OrgID:           devOrgID,
			InvitedByUserID: devUsers[0].ID,
			CreatedAt:       now,
		}); err != nil && !errors.Is(err, invitationrepo.ErrDuplicatePendingInvitation) {
			logrus.Fatalf("create invitation: %v", err)
		}
		logrus.WithField("invitation_id", devInvitationID).Info("seeded pending invitation")
	}

	printTokens(cfg)
}

// printTokens mints a development token per seeded user when JWT_PRIVATE_KEY is set.
func printTokens(cfg *config.Config) {
	if cfg.IsProduction() {
		return
	}
	if cfg.JWTPrivateKey == "" {
		logrus.Info("JWT_PRIVATE_KEY not set; skipping development tokens")
		return
	}
	signer, err := security.ParsePrivateKey(cfg.JWTPrivateKey)
	if err != nil {
		logrus.Fatalf("private key: %v", err)
	}
	issuer, err := security.NewIssuer(signer, cfg.JWTIssuer, cfg.JWTAudience, cfg.DevTokenTTL())
	if err != nil {
		logrus.Fatalf("issuer: %v", err)
	}
	for _, u := range devUsers {
		token, exp, err := issuer.Issue(identity.Caller{UserID: u.ID, Email: u.Email, Name: u.Name})
		if err != nil {
			logrus.Fatalf("issue token for %s: %v", u.Email, err)
		}
		fmt.Printf("# %s (expires %s)\nexport TOKEN_%s=%s\n\n", u.Email, exp.Format(time.RFC3339), tokenVar(u.ID), token)
	}
}

func tokenVar(id string) string {
	return strings.ToUpper(strings.ReplaceAll(id, "-", "_"))
}
