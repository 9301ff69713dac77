package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"org-access-control/internal/db"
	membershipdomain "org-access-control/internal/membership/domain"
	membershiprepo "org-access-control/internal/membership/repository"
	"org-access-control/internal/organization/domain"
)

type PostgresRepository struct {
	db *sql.DB
}

// NewPostgresRepository returns an organization repository that uses the given db for persistence.
func NewPostgresRepository(conn *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: conn}
}

const orgColumns = `o.id, o.name, o.description, o.created_at, o.updated_at`

// GetOrganizationByID returns the organization for id, or nil if not found.
// It returns an error only for database failures, not for missing rows.
func (r *PostgresRepository) GetOrganizationByID(ctx context.Context, id string) (*domain.Org, error) {
	row := r.db.QueryRowContext(ctx, `select `+orgColumns+` from organizations o where o.id = $1`, id)
	o, err := scanOrg(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return o, nil
}

// ListOrganizationsByUser returns every organization userID holds a membership in, ordered by name.
func (r *PostgresRepository) ListOrganizationsByUser(ctx context.Context, userID string) ([]*domain.Org, error) {
	rows, err := r.db.QueryContext(ctx, `
		select `+orgColumns+`
		from organizations o
		join memberships m on m.org_id = o.id
		where m.user_id = $1
		order by o.name, o.id
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*domain.Org
	for rows.Next() {
		o, err := scanOrg(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateOrganizationWithAdmin inserts o and admin in one transaction; if either insert fails,
// neither is visible. admin.OrgID must equal o.ID.
func (r *PostgresRepository) CreateOrganizationWithAdmin(ctx context.Context, o *domain.Org, admin *membershipdomain.Membership) error {
	if admin == nil || admin.OrgID != o.ID {
		return errors.New("create organization: admin membership must reference the new organization")
	}
	return db.WithTx(ctx, r.db, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `
			insert into organizations (id, name, description, created_at, updated_at)
			values ($1, $2, $3, $4, $5)
		`, o.ID, o.Name, nullString(o.Description), o.CreatedAt, o.UpdatedAt); err != nil {
			return fmt.Errorf("insert organization: %w", err)
		}
		return membershiprepo.Insert(ctx, tx, admin)
	})
}

// UpdateOrganization writes the mutable fields of o and returns the stored row.
func (r *PostgresRepository) UpdateOrganization(ctx context.Context, o *domain.Org) (*domain.Org, error) {
	row := r.db.QueryRowContext(ctx, `
		update organizations o
		set name = $2, description = $3, updated_at = $4
		where o.id = $1
		returning `+orgColumns, o.ID, o.Name, nullString(o.Description), o.UpdatedAt)
	updated, err := scanOrg(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return updated, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanOrg(s scanner) (*domain.Org, error) {
	var (
		o    domain.Org
		desc sql.NullString
	)
	if err := s.Scan(&o.ID, &o.Name, &desc, &o.CreatedAt, &o.UpdatedAt); err != nil {
		return nil, err
	}
	o.Description = desc.String
	return &o, nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
