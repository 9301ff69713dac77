package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"org-access-control/internal/db"
	"org-access-control/internal/membership/domain"
)

// UniqueConstraint is the store constraint enforcing one membership per (user_id, org_id).
const UniqueConstraint = "memberships_user_org_key"

type PostgresRepository struct {
	db *sql.DB
}

// NewPostgresRepository returns a membership repository that uses the given db for persistence.
func NewPostgresRepository(conn *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: conn}
}

// GetMembershipByUserAndOrg returns the membership for the given user and org, or nil if not found.
// It returns an error only for database failures, not for missing rows.
func (r *PostgresRepository) GetMembershipByUserAndOrg(ctx context.Context, userID, orgID string) (*domain.Membership, error) {
	return GetByUserAndOrg(ctx, r.db, userID, orgID)
}

// ListMembersByOrg returns all memberships of orgID with member display details, oldest first.
func (r *PostgresRepository) ListMembersByOrg(ctx context.Context, orgID string) ([]*domain.Member, error) {
	rows, err := r.db.QueryContext(ctx, `
		select m.id, m.user_id, m.org_id, m.role, m.created_at, m.updated_at, u.name, u.email
		from memberships m
		left join users u on u.id = m.user_id
		where m.org_id = $1
		order by m.created_at, m.id
	`, orgID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*domain.Member
	for rows.Next() {
		var (
			mem         domain.Member
			role        string
			name, email sql.NullString
		)
		if err := rows.Scan(&mem.ID, &mem.UserID, &mem.OrgID, &role, &mem.CreatedAt, &mem.UpdatedAt, &name, &email); err != nil {
			return nil, err
		}
		mem.Role = domain.Role(role)
		mem.UserName = name.String
		mem.UserEmail = email.String
		out = append(out, &mem)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// GetByUserAndOrg looks up a membership through q, which may be a transaction.
func GetByUserAndOrg(ctx context.Context, q db.Querier, userID, orgID string) (*domain.Membership, error) {
	var (
		m    domain.Membership
		role string
	)
	err := q.QueryRowContext(ctx, `
		select id, user_id, org_id, role, created_at, updated_at
		from memberships
		where user_id = $1 and org_id = $2
	`, userID, orgID).Scan(&m.ID, &m.UserID, &m.OrgID, &role, &m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	m.Role = domain.Role(role)
	return &m, nil
}

// Insert writes m through q. A unique violation on (user_id, org_id) is reported as ErrDuplicateMembership.
func Insert(ctx context.Context, q db.Querier, m *domain.Membership) error {
	if !m.Role.Valid() {
		return fmt.Errorf("insert membership: invalid role %q", m.Role)
	}
	_, err := q.ExecContext(ctx, `
		insert into memberships (id, user_id, org_id, role, created_at, updated_at)
		values ($1, $2, $3, $4, $5, $6)
	`, m.ID, m.UserID, m.OrgID, string(m.Role), m.CreatedAt, m.UpdatedAt)
	if err != nil {
		if db.IsUniqueViolation(err, UniqueConstraint) {
			return ErrDuplicateMembership
		}
		return fmt.Errorf("insert membership: %w", err)
	}
	return nil
}

// InsertIfAbsent writes m through q unless the pair already has a membership. It reports whether a
// row was written; a concurrent insert of the same pair therefore resolves to created == false
// instead of an error, and never aborts the surrounding transaction.
func InsertIfAbsent(ctx context.Context, q db.Querier, m *domain.Membership) (created bool, err error) {
	if !m.Role.Valid() {
		return false, fmt.Errorf("insert membership: invalid role %q", m.Role)
	}
	res, err := q.ExecContext(ctx, `
		insert into memberships (id, user_id, org_id, role, created_at, updated_at)
		values ($1, $2, $3, $4, $5, $6)
		on conflict on constraint memberships_user_org_key do nothing
	`, m.ID, m.UserID, m.OrgID, string(m.Role), m.CreatedAt, m.UpdatedAt)
	if err != nil {
		return false, fmt.Errorf("insert membership: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n == 1, nil
}
