package server

import (
	"database/sql"

	healthhandler "org-access-control/internal/health/handler"
	invitationrepo "org-access-control/internal/invitation/repository"
	invitationservice "org-access-control/internal/invitation/service"
	membershiprepo "org-access-control/internal/membership/repository"
	organizationrepo "org-access-control/internal/organization/repository"
	organizationservice "org-access-control/internal/organization/service"
	"org-access-control/internal/telemetry"
	userrepo "org-access-control/internal/user/repository"
)

// PostgresDeps builds every service on the Postgres repositories. The health server probes conn.
func PostgresDeps(conn *sql.DB, metrics telemetry.Recorder) Deps {
	orgs := organizationrepo.NewPostgresRepository(conn)
	memberships := membershiprepo.NewPostgresRepository(conn)
	invitations := invitationrepo.NewPostgresRepository(conn)
	users := userrepo.NewPostgresRepository(conn)

	invSvc := invitationservice.NewInvitationService(invitations, memberships, users, orgs, metrics)
	return Deps{
		Organizations:    organizationservice.NewOrganizationService(orgs, memberships, metrics),
		InvitationIssuer: invSvc,
		Invitations:      invSvc,
		Health:           healthhandler.NewServer(conn, ServiceNames...),
	}
}
