package repository

import (
	"context"

	"org-access-control/internal/user/domain"
)

// Repository defines email lookup of identity-provider users, plus Upsert for provider sync and seeding.
type Repository interface {
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Upsert(ctx context.Context, u *domain.User) error
}
