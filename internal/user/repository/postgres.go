package repository

import (
	"context"
	"database/sql"
	"errors"

	"org-access-control/internal/identity"
	"org-access-control/internal/user/domain"
)

type PostgresRepository struct {
	db *sql.DB
}

// NewPostgresRepository returns a user repository that uses the given db for persistence.
func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// GetByEmail returns the user with the given email (compared normalized), or nil if not found.
// It returns an error only for database failures, not for missing rows.
func (r *PostgresRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	email = identity.NormalizeEmail(email)
	if email == "" {
		return nil, nil
	}
	row := r.db.QueryRowContext(ctx, `select id, name, email from users where lower(email) = $1`, email)
	return scanUser(row)
}

// Upsert inserts the user or refreshes its name and email.
func (r *PostgresRepository) Upsert(ctx context.Context, u *domain.User) error {
	_, err := r.db.ExecContext(ctx, `
		insert into users (id, name, email)
		values ($1, $2, $3)
		on conflict (id) do update set name = excluded.name, email = excluded.email
	`, u.ID, nullString(u.Name), nullString(identity.NormalizeEmail(u.Email)))
	return err
}

func scanUser(row *sql.Row) (*domain.User, error) {
	var (
		u     domain.User
		name  sql.NullString
		email sql.NullString
	)
	if err := row.Scan(&u.ID, &name, &email); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	u.Name = name.String
	u.Email = email.String
	return &u, nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
