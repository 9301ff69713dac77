package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"org-access-control/internal/db"
	"org-access-control/internal/identity"
	"org-access-control/internal/invitation/domain"
	membershipdomain "org-access-control/internal/membership/domain"
	membershiprepo "org-access-control/internal/membership/repository"
	orgdomain "org-access-control/internal/organization/domain"
)

// PendingUniqueIndex is the partial unique index allowing one pending invitation per (email, org_id).
const PendingUniqueIndex = "invitations_pending_email_org_key"

type PostgresRepository struct {
	db *sql.DB
}

// NewPostgresRepository returns an invitation repository that uses the given db for persistence.
func NewPostgresRepository(conn *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: conn}
}

const invitationColumns = `i.id, i.email, i.role, i.org_id, i.invited_by_id, i.accepted, i.accepted_at, i.created_at`

// GetByID returns the invitation for id, or nil if not found.
// It returns an error only for database failures, not for missing rows.
func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*domain.Invitation, error) {
	row := r.db.QueryRowContext(ctx, `select `+invitationColumns+` from invitations i where i.id = $1`, id)
	return nilIfNoRows(scanInvitation(row))
}

// GetPendingByEmailAndOrg returns the pending invitation for (email, orgID), or nil if there is none.
func (r *PostgresRepository) GetPendingByEmailAndOrg(ctx context.Context, email, orgID string) (*domain.Invitation, error) {
	row := r.db.QueryRowContext(ctx, `
		select `+invitationColumns+`
		from invitations i
		where i.email = $1 and i.org_id = $2 and not i.accepted
	`, identity.NormalizeEmail(email), orgID)
	return nilIfNoRows(scanInvitation(row))
}

// Create persists a pending invitation. The invitation must have ID set.
// A concurrent duplicate rejected by the partial unique index is reported as ErrDuplicatePendingInvitation.
func (r *PostgresRepository) Create(ctx context.Context, inv *domain.Invitation) error {
	_, err := r.db.ExecContext(ctx, `
		insert into invitations (id, email, role, org_id, invited_by_id, accepted, accepted_at, created_at)
		values ($1, $2, $3, $4, $5, false, null, $6)
	`, inv.ID, identity.NormalizeEmail(inv.Email), string(inv.Role), inv.OrgID, inv.InvitedByUserID, inv.CreatedAt)
	if err != nil {
		if db.IsUniqueViolation(err, PendingUniqueIndex) {
			return ErrDuplicatePendingInvitation
		}
		return fmt.Errorf("insert invitation: %w", err)
	}
	return nil
}

// ListByOrg returns every invitation of orgID (pending and accepted) with inviter details, newest first.
func (r *PostgresRepository) ListByOrg(ctx context.Context, orgID string) ([]*domain.Detail, error) {
	rows, err := r.db.QueryContext(ctx, `
		select `+invitationColumns+`, u.name, u.email
		from invitations i
		left join users u on u.id = i.invited_by_id
		where i.org_id = $1
		order by i.created_at desc, i.id
	`, orgID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*domain.Detail
	for rows.Next() {
		var (
			d            domain.Detail
			role         string
			acceptedAt   sql.NullTime
			inviterName  sql.NullString
			inviterEmail sql.NullString
		)
		if err := rows.Scan(&d.ID, &d.Email, &role, &d.OrgID, &d.InvitedByUserID, &d.Accepted, &acceptedAt, &d.CreatedAt,
			&inviterName, &inviterEmail); err != nil {
			return nil, err
		}
		d.Role = membershipdomain.Role(role)
		d.AcceptedAt = timePtr(acceptedAt)
		d.InvitedByName = inviterName.String
		d.InvitedByEmail = inviterEmail.String
		out = append(out, &d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// ListPendingByEmail returns pending invitations addressed to email, with organization and inviter details.
func (r *PostgresRepository) ListPendingByEmail(ctx context.Context, email string) ([]*domain.Detail, error) {
	email = identity.NormalizeEmail(email)
	if email == "" {
		return nil, nil
	}
	rows, err := r.db.QueryContext(ctx, `
		select `+invitationColumns+`, u.name, u.email,
			o.id, o.name, o.description, o.created_at, o.updated_at
		from invitations i
		join organizations o on o.id = i.org_id
		left join users u on u.id = i.invited_by_id
		where i.email = $1 and not i.accepted
		order by i.created_at desc, i.id
	`, email)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*domain.Detail
	for rows.Next() {
		var (
			d            domain.Detail
			org          orgdomain.Org
			role         string
			acceptedAt   sql.NullTime
			inviterName  sql.NullString
			inviterEmail sql.NullString
			orgDesc      sql.NullString
		)
		if err := rows.Scan(&d.ID, &d.Email, &role, &d.OrgID, &d.InvitedByUserID, &d.Accepted, &acceptedAt, &d.CreatedAt,
			&inviterName, &inviterEmail,
			&org.ID, &org.Name, &orgDesc, &org.CreatedAt, &org.UpdatedAt); err != nil {
			return nil, err
		}
		d.Role = membershipdomain.Role(role)
		d.AcceptedAt = timePtr(acceptedAt)
		d.InvitedByName = inviterName.String
		d.InvitedByEmail = inviterEmail.String
		org.Description = orgDesc.String
		d.Org = &org
		out = append(out, &d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Accept locks the invitation row for the duration of the transaction, so concurrent acceptances of
// the same invitation serialize; the membership insert tolerates an existing (user, org) row.
func (r *PostgresRepository) Accept(ctx context.Context, invitationID string, candidate *membershipdomain.Membership) (*domain.AcceptOutcome, error) {
	var outcome *domain.AcceptOutcome
	err := db.WithTx(ctx, r.db, func(tx *sql.Tx) error {
		var (
			role       string
			orgID      string
			accepted   bool
			acceptedAt sql.NullTime
		)
		err := tx.QueryRowContext(ctx, `
			select role, org_id, accepted, accepted_at
			from invitations
			where id = $1
			for update
		`, invitationID).Scan(&role, &orgID, &accepted, &acceptedAt)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return ErrInvitationNotFound
			}
			return fmt.Errorf("lock invitation: %w", err)
		}
		if accepted {
			outcome = &domain.AcceptOutcome{AcceptedAt: acceptedAt.Time}
			return nil
		}

		m := *candidate
		m.OrgID = orgID
		m.Role = membershipdomain.Role(role)
		created, err := membershiprepo.InsertIfAbsent(ctx, tx, &m)
		if err != nil {
			return err
		}

		var at time.Time
		if err := tx.QueryRowContext(ctx, `
			update invitations
			set accepted = true, accepted_at = coalesce(accepted_at, $2)
			where id = $1
			returning accepted_at
		`, invitationID, candidate.CreatedAt).Scan(&at); err != nil {
			return fmt.Errorf("mark invitation accepted: %w", err)
		}

		outcome = &domain.AcceptOutcome{AcceptedAt: at}
		if created {
			outcome.Membership = &m
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return outcome, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanInvitation(s scanner) (*domain.Invitation, error) {
	var (
		inv        domain.Invitation
		role       string
		acceptedAt sql.NullTime
	)
	if err := s.Scan(&inv.ID, &inv.Email, &role, &inv.OrgID, &inv.InvitedByUserID, &inv.Accepted, &acceptedAt, &inv.CreatedAt); err != nil {
		return nil, err
	}
	inv.Role = membershipdomain.Role(role)
	inv.AcceptedAt = timePtr(acceptedAt)
	return &inv, nil
}

func nilIfNoRows(inv *domain.Invitation, err error) (*domain.Invitation, error) {
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	return inv, err
}

func timePtr(t sql.NullTime) *time.Time {
	if !t.Valid {
		return nil
	}
	v := t.Time
	return &v
}
