package repository

import (
	"context"

	membershipdomain "org-access-control/internal/membership/domain"
	"org-access-control/internal/organization/domain"
)

// Repository defines persistence for organizations.
type Repository interface {
	GetOrganizationByID(ctx context.Context, id string) (*domain.Org, error)
	ListOrganizationsByUser(ctx context.Context, userID string) ([]*domain.Org, error)
	// CreateOrganizationWithAdmin writes the organization and its founding admin membership atomically.
	CreateOrganizationWithAdmin(ctx context.Context, o *domain.Org, admin *membershipdomain.Membership) error
	// UpdateOrganization persists name, description and updated_at. Returns nil, nil if the row is gone.
	UpdateOrganization(ctx context.Context, o *domain.Org) (*domain.Org, error)
}
